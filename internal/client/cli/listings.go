package cli

import (
	"context"

	"github.com/dmitrijs2005/houseconnect/internal/client/models"
)

func (a *App) Accommodations(ctx context.Context) error {
	list, err := a.accommodations.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println("No accommodations available.")
		return nil
	}
	a.printAccommodations(list)
	return nil
}

func (a *App) Show(ctx context.Context, id int64) error {
	ac, err := a.accommodations.Get(ctx, id)
	if err != nil {
		return err
	}
	a.printAccommodation(ac)
	if id := a.session.Identity(); id != nil && id.Role == models.RoleStudent {
		a.printf("\nType 'book %d' to book or 'apply %d' to apply.\n", ac.AccommodationID, ac.AccommodationID)
	}
	return nil
}

func (a *App) MyListings(ctx context.Context) error {
	list, err := a.accommodations.ListByLandlord(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println("You have no listings yet. Type 'addlisting' to create one.")
		return nil
	}
	a.printAccommodations(list)
	return nil
}

func (a *App) AddListing(ctx context.Context) error {
	var ac models.Accommodation
	if err := a.accommodationForm(&ac); err != nil {
		return err
	}
	created, err := a.accommodations.Create(ctx, ac)
	if err != nil {
		return err
	}
	if created.AccommodationID != 0 {
		a.printf("Listing #%d created.\n", created.AccommodationID)
	} else {
		a.println("Listing created.")
	}
	return nil
}

func (a *App) EditListing(ctx context.Context, id int64) error {
	ac, err := a.accommodations.Get(ctx, id)
	if err != nil {
		return err
	}
	a.println("Press Enter to keep the value in brackets.")
	if err := a.accommodationForm(ac); err != nil {
		return err
	}
	ac.AccommodationID = id
	if _, err := a.accommodations.Update(ctx, *ac); err != nil {
		return err
	}
	a.printf("Listing #%d updated.\n", id)
	return nil
}

func (a *App) DeleteListing(ctx context.Context, id int64) error {
	ok, err := a.confirm("Delete listing #" + formatID(id) + "?")
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled.")
		return nil
	}
	if err := a.accommodations.Delete(ctx, id); err != nil {
		return err
	}
	a.printf("Listing #%d deleted.\n", id)
	return nil
}

// Assign lists students and the landlord's listings, then places the
// chosen student.
func (a *App) Assign(ctx context.Context) error {
	students, err := a.profiles.Students(ctx)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		a.println("No students found.")
		return nil
	}
	listings, err := a.accommodations.ListByLandlord(ctx)
	if err != nil {
		return err
	}
	if len(listings) == 0 {
		a.println("You have no listings to assign.")
		return nil
	}

	a.printStudents(students)
	studentID, err := a.askInt("Student ID", 0)
	if err != nil {
		return err
	}
	a.printAccommodations(listings)
	accommodationID, err := a.askInt("Accommodation ID", 0)
	if err != nil {
		return err
	}

	if err := a.accommodations.Assign(ctx, models.Assignment{StudentID: studentID, AccommodationID: accommodationID}); err != nil {
		return err
	}
	a.printf("Student #%d assigned to accommodation #%d.\n", studentID, accommodationID)
	return nil
}
