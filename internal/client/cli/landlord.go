package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/houseconnect/internal/client/models"
	"github.com/dmitrijs2005/houseconnect/internal/common"
)

func (a *App) LandlordProfile(ctx context.Context) error {
	l, err := a.profiles.Landlord(ctx)
	if err != nil {
		return err
	}
	a.printf("Landlord #%d: %s %s\n", l.LandlordID, l.LandlordFirstName, l.LandlordLastName)
	a.printf("  Verified:   %s\n", yesNo(bool(l.IsVerified)))
	if l.DateRegistered != "" {
		a.printf("  Registered: %s\n", l.DateRegistered)
	}
	a.printContact(l.Contact)

	ok, err := a.confirm("Edit profile?")
	if err != nil || !ok {
		return err
	}
	a.println("Press Enter to keep the value in brackets.")
	if err := a.landlordForm(l); err != nil {
		return err
	}
	if _, err := a.profiles.UpdateLandlord(ctx, *l); err != nil {
		return err
	}
	a.println("Profile updated.")
	return nil
}

func (a *App) Applications(ctx context.Context) error {
	list, err := a.applications.ListForLandlord(ctx)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return err
	}
	if len(list) == 0 {
		a.println("No applications yet.")
		return nil
	}
	a.printApplications(list)
	return nil
}

// knownStatus looks the application up among the landlord's applications.
// It returns "" when the list is unavailable or does not contain id.
func (a *App) knownStatus(ctx context.Context, id int64) models.ApplicationStatus {
	list, err := a.applications.ListForLandlord(ctx)
	if err != nil {
		a.logger.Debug(ctx, "application status unknown", "id", id, "error", err)
		return ""
	}
	for _, app := range list {
		if app.ApplicationID == id {
			return app.ApplicationStatus
		}
	}
	return ""
}

func (a *App) Approve(ctx context.Context, id int64) error {
	app, err := a.applications.Approve(ctx, id, a.knownStatus(ctx, id))
	if err != nil {
		return err
	}
	a.printf("Application #%d is now %s.\n", id, app.ApplicationStatus)
	return nil
}

func (a *App) Reject(ctx context.Context, id int64) error {
	app, err := a.applications.Reject(ctx, id, a.knownStatus(ctx, id))
	if err != nil {
		return err
	}
	a.printf("Application #%d is now %s.\n", id, app.ApplicationStatus)
	return nil
}
