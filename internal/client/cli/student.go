package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/houseconnect/internal/common"
)

// Dashboard shows the student's profile, bookings and applications.
func (a *App) Dashboard(ctx context.Context) error {
	st, err := a.profiles.Student(ctx)
	if err != nil {
		return err
	}
	a.printf("Student #%d: %s %s\n", st.StudentID, st.StudentName, st.StudentSurname)
	a.printf("  Funding:    %s\n", st.FundingStatus)
	a.printf("  Verified:   %s\n", yesNo(bool(st.IsStudentVerified)))
	a.printContact(st.Contact)

	a.println()
	a.println("Bookings")
	if len(st.Bookings) == 0 {
		a.println("You have no bookings yet.")
	} else {
		a.printBookings(st.Bookings)
	}

	apps, err := a.applications.ListForStudent(ctx)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return err
	}
	a.println()
	a.println("Applications")
	if len(apps) == 0 {
		a.println("You have not applied anywhere yet.")
	} else {
		a.printApplications(apps)
	}
	return nil
}

func (a *App) EditStudentProfile(ctx context.Context) error {
	st, err := a.profiles.Student(ctx)
	if err != nil {
		return err
	}
	a.println("Press Enter to keep the value in brackets.")
	if err := a.studentForm(st); err != nil {
		return err
	}
	if _, err := a.profiles.UpdateStudent(ctx, *st); err != nil {
		return err
	}
	a.println("Profile updated.")
	return nil
}

func (a *App) Bookings(ctx context.Context) error {
	st, err := a.profiles.Student(ctx)
	if err != nil {
		return err
	}
	if len(st.Bookings) == 0 {
		a.println("You have no bookings yet.")
		return nil
	}
	a.printBookings(st.Bookings)
	return nil
}

// Book shows the listing, quotes the stay and creates the booking after
// confirmation.
func (a *App) Book(ctx context.Context, accommodationID int64) error {
	ac, err := a.accommodations.Get(ctx, accommodationID)
	if err != nil {
		return err
	}
	a.printf("%s, %s per month, %s room\n", ac.Address, formatMoney(ac.Rent), ac.RoomType)

	checkIn, err := a.askRequired("Check-in date (YYYY-MM-DD)", "")
	if err != nil {
		return err
	}
	checkOut, err := a.askRequired("Check-out date (YYYY-MM-DD)", "")
	if err != nil {
		return err
	}
	total, err := a.bookings.QuoteStay(ac.Rent, checkIn, checkOut)
	if err != nil {
		return err
	}
	a.printf("Total amount: %s\n", formatMoney(total))

	ok, err := a.confirm("Confirm booking?")
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled.")
		return nil
	}

	if _, err := a.bookings.Create(ctx, *ac, checkIn, checkOut); err != nil {
		return err
	}
	a.println("Booking created successfully!")
	return nil
}

func (a *App) Apply(ctx context.Context, accommodationID int64) error {
	if _, err := a.applications.Apply(ctx, accommodationID); err != nil {
		return err
	}
	a.println("Application submitted successfully!")
	return nil
}

func (a *App) MyApplications(ctx context.Context) error {
	list, err := a.applications.ListForStudent(ctx)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return err
	}
	if len(list) == 0 {
		a.println("You have not applied anywhere yet.")
		return nil
	}
	a.printApplications(list)
	return nil
}
