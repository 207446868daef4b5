// Package common defines shared constants and sentinel errors used across
// client layers of HouseConnect. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// ErrValidation marks client-side input checks that failed before any
	// request was sent.
	ErrValidation = errors.New("validation error")

	// ErrAuthenticationRejected marks a non-2xx answer to a login or signup
	// request.
	ErrAuthenticationRejected = errors.New("authentication rejected")

	// ErrNetwork marks a transport failure: no response was received.
	ErrNetwork = errors.New("network error")

	// ErrNotFound marks absent data (404 or an empty lookup).
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized marks a bearer token the backend no longer accepts.
	ErrUnauthorized = errors.New("unauthorized")
)
