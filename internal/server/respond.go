package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/stepdoc/pkg/errors"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error struct {
		Code      errors.Code `json:"code"`
		Message   string      `json:"message"`
		RequestID string      `json:"request_id,omitempty"`
	} `json:"error"`
}

// StatusFor maps an error to an HTTP status by its code.
func StatusFor(err error) int {
	code := errors.GetCode(err)
	switch {
	case code == errors.ErrCodeIndexRange, strings.HasPrefix(string(code), "INVALID_"):
		return http.StatusBadRequest
	case code == errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.IsCapacity(err):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func errNotFound(path string) error {
	return errors.New(errors.ErrCodeNotFound, "no route for %s", path)
}

func writeError(w http.ResponseWriter, r *http.Request, logger *log.Logger, err error) {
	status := StatusFor(err)
	var body errorBody
	body.Error.Code = errors.GetCode(err)
	if body.Error.Code == "" {
		body.Error.Code = errors.ErrCodeInternal
	}
	body.Error.Message = errors.UserMessage(err)
	body.Error.RequestID = middleware.GetReqID(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "err", err, "request_id", body.Error.RequestID)
		body.Error.Message = "internal error"
	}
	_ = writeJSON(w, status, body)
}

// internalErrorJSON is sent when a response body cannot be encoded.
const internalErrorJSON = `{"error":{"code":"` + string(errors.ErrCodeInternal) + `","message":"internal error"}}` + "\n"

// writeJSON encodes v before committing the status, so a value that
// cannot be encoded yields a 500 instead of a truncated 2xx body.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	w.Header().Set("Content-Type", "application/json")
	if err := enc.Encode(v); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorJSON))
		return errors.Wrap(errors.ErrCodeInternal, err, "encode response")
	}
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}

// respondJSON writes v with status, logging any encode failure.
func respondJSON(w http.ResponseWriter, r *http.Request, logger *log.Logger, status int, v any) {
	if err := writeJSON(w, status, v); err != nil {
		logger.Error("response failed", "err", err, "request_id", middleware.GetReqID(r.Context()))
	}
}
