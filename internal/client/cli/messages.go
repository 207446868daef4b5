package cli

import (
	"context"
	"errors"
	"io"
	"sort"

	"github.com/dmitrijs2005/houseconnect/internal/client/client"
	"github.com/dmitrijs2005/houseconnect/internal/client/services"
	"github.com/dmitrijs2005/houseconnect/internal/client/session"
	"github.com/dmitrijs2005/houseconnect/internal/common"
)

var errBadArgument = errors.New("bad argument")

const (
	msgNetwork        = "Network error. Please try again."
	msgSessionExpired = "Your session has expired. Please log in again."
	msgNotFound       = "Nothing found."
)

// describe turns a view error into the lines shown to the user.
func describe(err error) []string {
	var (
		ve *services.ValidationError
		le *session.LoginError
		se *client.StatusError
	)
	switch {
	case errors.As(err, &ve):
		keys := make([]string, 0, len(ve.Fields))
		for k := range ve.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		lines := make([]string, len(keys))
		for i, k := range keys {
			lines[i] = ve.Fields[k]
		}
		return lines
	case errors.As(err, &le):
		return []string{le.Message}
	case errors.Is(err, common.ErrNetwork):
		return []string{msgNetwork}
	case errors.Is(err, common.ErrUnauthorized):
		return []string{msgSessionExpired}
	case errors.Is(err, common.ErrNotFound):
		return []string{msgNotFound}
	case errors.Is(err, services.ErrNoStudentID),
		errors.Is(err, services.ErrNoLandlordID),
		errors.Is(err, services.ErrNotSignedIn):
		return []string{err.Error()}
	case errors.Is(err, errBadArgument):
		return []string{err.Error()}
	case errors.As(err, &se):
		return []string{se.Message}
	default:
		return []string{"Something went wrong: " + err.Error()}
	}
}

// report shows err to the user and logs it. Input aborted by end of input is
// silent.
func (a *App) report(ctx context.Context, err error) {
	if err == nil || errors.Is(err, io.EOF) {
		return
	}
	a.logger.Warn(ctx, "view failed", "error", err)
	for _, line := range describe(err) {
		a.println(line)
	}
}
