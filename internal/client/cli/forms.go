package cli

import (
	"github.com/dmitrijs2005/houseconnect/internal/client/models"
)

// Forms fill a record in place. Existing values are offered as defaults so
// the same form serves create and edit.

func (a *App) contactForm(c *models.Contact) error {
	var err error
	if c.Email, err = a.askRequired("Email", c.Email); err != nil {
		return err
	}
	if c.PhoneNumber, err = a.askRequired("Phone number", c.PhoneNumber); err != nil {
		return err
	}
	if c.AlternatePhoneNumber, err = a.ask("Alternate phone number (optional)", c.AlternatePhoneNumber); err != nil {
		return err
	}
	current := c.PreferredContactMethod
	if current == "" {
		current = "EMAIL"
	}
	c.PreferredContactMethod, err = a.askChoice("Preferred contact method", []string{"EMAIL", "PHONE", "ALTERNATE_PHONE"}, current)
	return err
}

func (a *App) studentForm(st *models.Student) error {
	var err error
	if st.StudentName, err = a.askRequired("First name", st.StudentName); err != nil {
		return err
	}
	if st.StudentSurname, err = a.askRequired("Surname", st.StudentSurname); err != nil {
		return err
	}
	if st.DateOfBirth, err = a.askRequired("Date of birth (YYYY-MM-DD)", st.DateOfBirth); err != nil {
		return err
	}
	if st.Gender, err = a.askChoice("Gender", []string{"Male", "Female", "Other"}, st.Gender); err != nil {
		return err
	}
	if st.FundingStatus, err = a.askChoice("Funding status", []string{"FUNDED", "SELF_FUNDED", "NOT_FUNDED"}, st.FundingStatus); err != nil {
		return err
	}
	if st.Contact == nil {
		st.Contact = &models.Contact{}
	}
	return a.contactForm(st.Contact)
}

func (a *App) landlordForm(l *models.Landlord) error {
	var err error
	if l.LandlordFirstName, err = a.askRequired("First name", l.LandlordFirstName); err != nil {
		return err
	}
	if l.LandlordLastName, err = a.askRequired("Last name", l.LandlordLastName); err != nil {
		return err
	}
	if l.Contact == nil {
		l.Contact = &models.Contact{}
	}
	return a.contactForm(l.Contact)
}

func (a *App) addressForm(ad *models.Address) error {
	var err error
	if ad.StreetNumber, err = a.askRequired("Street number", ad.StreetNumber); err != nil {
		return err
	}
	if ad.StreetName, err = a.askRequired("Street name", ad.StreetName); err != nil {
		return err
	}
	if ad.Suburb, err = a.ask("Suburb (optional)", ad.Suburb); err != nil {
		return err
	}
	if ad.City, err = a.askRequired("City", ad.City); err != nil {
		return err
	}
	code, err := a.askInt("Postal code", int64(ad.PostalCode))
	if err != nil {
		return err
	}
	ad.PostalCode = int(code)
	return nil
}

func (a *App) accommodationForm(ac *models.Accommodation) error {
	var err error
	if ac.AccommodationName, err = a.ask("Name (optional)", ac.AccommodationName); err != nil {
		return err
	}
	rooms, err := a.askInt("Number of rooms", int64(ac.NumberOfRooms))
	if err != nil {
		return err
	}
	ac.NumberOfRooms = int(rooms)
	if ac.Rent, err = a.askFloat("Monthly rent", ac.Rent); err != nil {
		return err
	}
	if ac.DistanceFromCampus, err = a.askFloat("Distance from campus (km)", ac.DistanceFromCampus); err != nil {
		return err
	}

	room, err := a.askChoice("Room type", []string{string(models.RoomSingle), string(models.RoomDouble), string(models.RoomShared)}, string(ac.RoomType))
	if err != nil {
		return err
	}
	ac.RoomType = models.RoomType(room)

	bath, err := a.askChoice("Bathroom", []string{string(models.BathroomPrivate), string(models.BathroomShared)}, string(ac.BathroomType))
	if err != nil {
		return err
	}
	ac.BathroomType = models.BathroomType(bath)

	current := string(ac.AccommodationStatus)
	if current == "" {
		current = string(models.AccommodationAvailable)
	}
	status, err := a.askChoice("Status", []string{
		string(models.AccommodationAvailable), string(models.AccommodationOccupied), string(models.AccommodationMaintenance),
	}, current)
	if err != nil {
		return err
	}
	ac.AccommodationStatus = models.AccommodationStatus(status)

	if ac.WifiAvailable, err = a.askBool("WiFi available", ac.WifiAvailable); err != nil {
		return err
	}
	if ac.Furnished, err = a.askBool("Furnished", ac.Furnished); err != nil {
		return err
	}
	if ac.UtilitiesIncluded, err = a.askBool("Utilities included", ac.UtilitiesIncluded); err != nil {
		return err
	}

	desc, err := getMultiline(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}
	if desc != "" {
		ac.Description = desc
	}

	return a.addressForm(&ac.Address)
}
