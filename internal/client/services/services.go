// Package services contains the application services of the HouseConnect
// client. Each service checks its input, calls the backend through the API
// client and ends the session when the backend rejects the bearer token.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/houseconnect/internal/client/client"
	"github.com/dmitrijs2005/houseconnect/internal/client/models"
	"github.com/dmitrijs2005/houseconnect/internal/logging"
)

const dateLayout = "2006-01-02"

var (
	ErrNoStudentID  = errors.New("Student ID not found. Please log in again.")
	ErrNoLandlordID = errors.New("Landlord ID not found. Please log in again.")
	ErrNotSignedIn  = errors.New("Please log in to continue.")
)

// Session is the part of the session store the services depend on.
type Session interface {
	Identity() *models.Identity
	Invalidate(ctx context.Context, reason string)
}

// now is swapped in tests.
var now = time.Now

func today() string {
	return now().Format(dateLayout)
}

type base struct {
	session Session
	logger  logging.Logger
}

func newBase(s Session, l logging.Logger, name string) base {
	if l == nil {
		l = logging.NopLogger{}
	}
	return base{session: s, logger: l.With("service", name)}
}

// check ends the session if err says the token was rejected and passes err
// through.
func (b base) check(ctx context.Context, op string, err error) error {
	if err != nil && errors.Is(err, client.ErrUnauthorized) {
		b.logger.Warn(ctx, "token rejected", "op", op, "error", err)
		b.session.Invalidate(ctx, op+": "+err.Error())
	}
	return err
}

func (b base) identity() (*models.Identity, error) {
	id := b.session.Identity()
	if id == nil {
		return nil, ErrNotSignedIn
	}
	return id, nil
}

func (b base) studentID() (int64, error) {
	id, err := b.identity()
	if err != nil {
		return 0, err
	}
	if id.StudentID == nil {
		return 0, ErrNoStudentID
	}
	return *id.StudentID, nil
}

func (b base) landlordID() (int64, error) {
	id, err := b.identity()
	if err != nil {
		return 0, err
	}
	if id.LandlordID == nil {
		return 0, ErrNoLandlordID
	}
	return *id.LandlordID, nil
}
