package session

import (
	"github.com/dmitrijs2005/houseconnect/internal/common"
)

const (
	msgLoginFailed  = "Login failed"
	msgNetworkError = "Network error. Please try again."
)

// LoginError is a failed login. Message is meant for the user; Err is
// common.ErrAuthenticationRejected or common.ErrNetwork.
type LoginError struct {
	Message string
	Err     error
}

func (e *LoginError) Error() string {
	return e.Message
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

func rejected(msg string) *LoginError {
	if msg == "" {
		msg = msgLoginFailed
	}
	return &LoginError{Message: msg, Err: common.ErrAuthenticationRejected}
}

func networkError() *LoginError {
	return &LoginError{Message: msgNetworkError, Err: common.ErrNetwork}
}
