package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Text is a string field that also accepts JSON numbers and booleans,
// storing their literal text.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty value for text field")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*t = Text(strconv.FormatBool(b))
		return nil
	case '{', '[':
		return fmt.Errorf("cast to string failed for value %s", data)
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("cast to string failed for value %s", data)
	}
	*t = Text(n.String())
	return nil
}

func (t *Text) String() string {
	if t == nil {
		return ""
	}
	return string(*t)
}

// Number is a numeric field that also accepts numeric strings and booleans.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty value for number field")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("cast to number failed for value %q", s)
		}
		*n = Number(f)
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		if b {
			*n = 1
		} else {
			*n = 0
		}
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("cast to number failed for value %s", data)
	}
	*n = Number(f)
	return nil
}

// TextPtr and NumberPtr are shorthands for building optional fields.
func TextPtr(s string) *Text {
	t := Text(s)
	return &t
}

func NumberPtr(f float64) *Number {
	n := Number(f)
	return &n
}
