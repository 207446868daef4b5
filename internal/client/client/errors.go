package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/houseconnect/internal/common"
)

var (
	ErrUnavailable  = fmt.Errorf("server unavailable: %w", common.ErrNetwork)
	ErrUnauthorized = fmt.Errorf("request rejected: %w", common.ErrUnauthorized)
)

// StatusError is a non-2xx backend answer. Message is the server-supplied
// error text when there is one.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps auth and lookup failures onto the shared sentinels so callers
// can use errors.Is(err, ErrUnauthorized) or errors.Is(err, common.ErrNotFound).
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	default:
		return nil
	}
}

// errorBody is the error envelope of the backend. Both fields occur.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func newStatusError(code int, body []byte) *StatusError {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Error != "" {
			return &StatusError{StatusCode: code, Message: eb.Error}
		}
		if eb.Message != "" {
			return &StatusError{StatusCode: code, Message: eb.Message}
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "{") {
		return &StatusError{StatusCode: code, Message: text}
	}
	return &StatusError{StatusCode: code, Message: http.StatusText(code)}
}
