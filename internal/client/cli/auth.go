package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/houseconnect/internal/client/models"
	"github.com/dmitrijs2005/houseconnect/internal/common"
)

// Login prompts for credentials and signs in through the session store.
// The password is wiped before returning. On success the user's home
// view is suggested.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, userName, string(password)); err != nil {
		return err
	}

	id := a.session.Identity()
	a.printf("Welcome, %s!\n", id.Username)
	switch id.Role {
	case models.RoleStudent:
		a.println("Type 'dashboard' to see your dashboard.")
	case models.RoleLandlord:
		a.println("Type 'mylistings' to manage your listings.")
	}
	return nil
}

// Register asks for the account kind and runs the matching signup form.
func (a *App) Register(ctx context.Context) error {
	kind, err := a.askChoice("Register as", []string{"student", "landlord"}, "")
	if err != nil {
		return err
	}
	if kind == "landlord" {
		return a.registerLandlord(ctx)
	}
	return a.registerStudent(ctx)
}

func (a *App) registerStudent(ctx context.Context) error {
	var st models.Student
	if err := a.studentForm(&st); err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.registration.RegisterStudent(ctx, models.StudentSignup{Student: st, Password: string(password)}); err != nil {
		return err
	}
	a.println("Registration successful! You can now log in.")
	return nil
}

func (a *App) registerLandlord(ctx context.Context) error {
	var l models.Landlord
	if err := a.landlordForm(&l); err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.registration.RegisterLandlord(ctx, models.LandlordSignup{Landlord: l, Password: string(password)}); err != nil {
		return err
	}
	a.println("Registration successful! You can now log in.")
	return nil
}

// Logout ends the session. It is harmless when nobody is signed in.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.println("You have been logged out.")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	id := a.session.Identity()
	if id == nil {
		a.println("Not logged in.")
		return nil
	}

	parts := []string{id.Username, string(id.Role)}
	if id.StudentID != nil {
		parts = append(parts, "student #"+formatID(*id.StudentID))
	}
	if id.LandlordID != nil {
		parts = append(parts, "landlord #"+formatID(*id.LandlordID))
	}
	a.println(strings.Join(parts, ", "))
	return nil
}
