package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// MaxBodyBytes caps every JSON request body.
const MaxBodyBytes = 1 << 20

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

var errTrailingData = errors.New("request body must contain a single JSON value")

// decodeJSON decodes exactly one JSON value from the body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

// writeError reports any failure as a 500 carrying the underlying error text.
func writeError(w http.ResponseWriter, message string, err error) {
	log.WithError(err).Error(message)
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Message: message,
		Error:   err.Error(),
	})
}

// logPayload dumps a decoded request body at debug level.
func logPayload(msg string, v interface{}) {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Debug(msg)
		return
	}
	log.WithField("payload", string(b)).Debug(msg)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.WithError(err).Error("failed to encode JSON response")
	}
}
