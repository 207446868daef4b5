// Package common contains shared constants and sentinel errors used across
// HouseConnect client components.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound API requests.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"

	// BearerPrefix precedes the token in the Authorization header value.
	BearerPrefix = "Bearer "
)

// Keys of the persisted client state.
const (
	AuthTokenKey = "authToken"
	UserKey      = "user"
)
