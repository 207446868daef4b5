package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/houseconnect/internal/client/models"
)

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatMoney(v float64) string {
	return fmt.Sprintf("R %.2f", v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (a *App) table(header string, rows func(w *tabwriter.Writer)) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	rows(w)
	_ = w.Flush()
}

func (a *App) printAccommodations(list []models.Accommodation) {
	a.table("ID\tNAME\tADDRESS\tRENT\tROOM\tSTATUS", func(w *tabwriter.Writer) {
		for _, ac := range list {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				ac.AccommodationID, ac.AccommodationName, ac.Address, formatMoney(ac.Rent), ac.RoomType, ac.AccommodationStatus)
		}
	})
}

func (a *App) printAccommodation(ac *models.Accommodation) {
	a.printf("Accommodation #%d %s\n", ac.AccommodationID, ac.AccommodationName)
	a.printf("  Address:    %s\n", ac.Address)
	a.printf("  Rent:       %s per month\n", formatMoney(ac.Rent))
	a.printf("  Rooms:      %d (%s), bathroom %s\n", ac.NumberOfRooms, ac.RoomType, ac.BathroomType)
	a.printf("  Campus:     %.1f km\n", ac.DistanceFromCampus)
	a.printf("  WiFi: %s, furnished: %s, utilities included: %s\n",
		yesNo(ac.WifiAvailable), yesNo(ac.Furnished), yesNo(ac.UtilitiesIncluded))
	a.printf("  Status:     %s\n", ac.AccommodationStatus)
	if ac.Landlord != nil && ac.Landlord.LandlordFirstName != "" {
		a.printf("  Landlord:   %s %s\n", ac.Landlord.LandlordFirstName, ac.Landlord.LandlordLastName)
	}
	if ac.Description != "" {
		a.println()
		a.println(ac.Description)
	}
}

func (a *App) printApplications(list []models.Application) {
	a.table("ID\tSTUDENT\tACCOMMODATION\tDATE\tSTATUS", func(w *tabwriter.Writer) {
		for _, app := range list {
			student := fmt.Sprintf("#%d %s %s", app.Student.StudentID, app.Student.StudentName, app.Student.StudentSurname)
			place := fmt.Sprintf("#%d %s", app.Accommodation.AccommodationID, app.Accommodation.Address)
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", app.ApplicationID, student, place, app.ApplicationDate, app.ApplicationStatus)
		}
	})
}

func (a *App) printBookings(list []models.Booking) {
	a.table("ID\tACCOMMODATION\tCHECK-IN\tCHECK-OUT\tTOTAL\tPAYMENT\tSTATUS", func(w *tabwriter.Writer) {
		for _, b := range list {
			place := "-"
			if b.Accommodation != nil {
				place = fmt.Sprintf("#%d %s", b.Accommodation.AccommodationID, b.Accommodation.Address)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				b.BookingID, place, b.CheckInDate, b.CheckOutDate, formatMoney(b.TotalAmount), b.PaymentStatus, b.BookingStatus)
		}
	})
}

func (a *App) printStudents(list []models.Student) {
	a.table("ID\tNAME\tEMAIL", func(w *tabwriter.Writer) {
		for _, st := range list {
			email := ""
			if st.Contact != nil {
				email = st.Contact.Email
			}
			fmt.Fprintf(w, "%d\t%s %s\t%s\n", st.StudentID, st.StudentName, st.StudentSurname, email)
		}
	})
}

func (a *App) printContact(c *models.Contact) {
	if c == nil {
		return
	}
	a.printf("  Email:      %s\n", c.Email)
	a.printf("  Phone:      %s\n", c.PhoneNumber)
	if c.AlternatePhoneNumber != "" {
		a.printf("  Alt. phone: %s\n", c.AlternatePhoneNumber)
	}
	a.printf("  Preferred:  %s\n", c.PreferredContactMethod)
}
