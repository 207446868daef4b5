package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/houseconnect/internal/client/client"
	"github.com/dmitrijs2005/houseconnect/internal/client/services"
	"github.com/dmitrijs2005/houseconnect/internal/client/session"
	"github.com/dmitrijs2005/houseconnect/internal/common"
	"github.com/dmitrijs2005/houseconnect/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "validation fields sorted by name",
			err: fmt.Errorf("create: %w", &services.ValidationError{Fields: map[string]string{
				"rent":          "rent message",
				"numberOfRooms": "rooms message",
			}}),
			want: []string{"rooms message", "rent message"},
		},
		{
			name: "login error message",
			err:  &session.LoginError{Message: "Invalid credentials", Err: common.ErrAuthenticationRejected},
			want: []string{"Invalid credentials"},
		},
		{
			name: "network",
			err:  fmt.Errorf("list: %w", client.ErrUnavailable),
			want: []string{msgNetwork},
		},
		{
			name: "unauthorized",
			err:  fmt.Errorf("list: %w", client.ErrUnauthorized),
			want: []string{msgSessionExpired},
		},
		{
			name: "not found",
			err:  fmt.Errorf("get: %w", common.ErrNotFound),
			want: []string{msgNotFound},
		},
		{
			name: "missing student id",
			err:  services.ErrNoStudentID,
			want: []string{"Student ID not found. Please log in again."},
		},
		{
			name: "bad argument",
			err:  fmt.Errorf("%w: %q is not a valid id", errBadArgument, "x"),
			want: []string{`bad argument: "x" is not a valid id`},
		},
		{
			name: "status error message",
			err:  fmt.Errorf("create: %w", &client.StatusError{StatusCode: http.StatusConflict, Message: "Already booked"}),
			want: []string{"Already booked"},
		},
		{
			name: "anything else",
			err:  errors.New("boom"),
			want: []string{"Something went wrong: boom"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, describe(tc.err))
		})
	}
}

func TestReport_SilentOnNilAndEOF(t *testing.T) {
	out := &bytes.Buffer{}
	a := &App{logger: logging.NopLogger{}, out: out}

	a.report(context.Background(), nil)
	a.report(context.Background(), fmt.Errorf("read: %w", io.EOF))
	assert.Empty(t, out.String())

	a.report(context.Background(), errors.New("boom"))
	assert.Equal(t, "Something went wrong: boom\n", out.String())
}
