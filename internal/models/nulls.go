package models

import (
	"bytes"
	"encoding/json"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// blankString reports whether raw is a JSON string containing only whitespace.
func blankString(raw []byte) bool {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false
	}
	return strings.TrimSpace(s) == ""
}

// optionalNumber decodes a numeric field; absent, null and blank strings yield nil.
func optionalNumber(raw json.RawMessage) (*Number, error) {
	if len(bytes.TrimSpace(raw)) == 0 || isNull(raw) || blankString(raw) {
		return nil, nil
	}
	var n Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// nullKeys lists the fields of the JSON object data that are stored as null:
// any of keys sent as null, and any of numeric sent as null or a blank string.
func nullKeys(data []byte, keys, numeric []string) ([]string, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	var nulls []string
	for _, k := range keys {
		if v, ok := fields[k]; ok && v == nil {
			nulls = append(nulls, k)
		}
	}
	for _, k := range numeric {
		v, ok := fields[k]
		if !ok {
			continue
		}
		if s, isString := v.(string); v == nil || (isString && strings.TrimSpace(s) == "") {
			nulls = append(nulls, k)
		}
	}
	return nulls, nil
}

// marshalWithNulls encodes v and appends an explicit null for every key in nulls.
func marshalWithNulls(v interface{}, nulls []string) ([]byte, error) {
	raw, err := bson.Marshal(v)
	if err != nil || len(nulls) == 0 {
		return raw, err
	}

	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	for _, k := range nulls {
		doc = append(doc, bson.E{Key: k, Value: nil})
	}
	return bson.Marshal(doc)
}
