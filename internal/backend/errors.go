package backend

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"encoding/json"
)

// APIError carries a non-2xx response from the commerce backend so
// handlers can forward the status instead of collapsing everything
// into a 500.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return "backend: " + http.StatusText(e.Status) + ": " + e.Message
}

func newAPIError(res *http.Response) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(res.Body, 1<<20))

	// the backend reports errors as {"message": "..."}; fall back to the
	// raw body when it doesn't
	var payload struct {
		Message string `json:"message"`
	}
	msg := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		msg = payload.Message
	}
	return &APIError{Status: res.StatusCode, Message: msg}
}

// StatusOf returns the backend status carried by err, or 0 when err is
// a transport-level failure.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

func IsConflict(err error) bool {
	return StatusOf(err) == http.StatusConflict
}
