package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/houseconnect/internal/client/client"
	"github.com/dmitrijs2005/houseconnect/internal/client/models"
	"github.com/dmitrijs2005/houseconnect/internal/logging"
)

type BookingService struct {
	base
	api client.BookingAPI
}

func NewBookingService(api client.BookingAPI, s Session, logger logging.Logger) *BookingService {
	return &BookingService{base: newBase(s, logger, "booking"), api: api}
}

// Quote prices a stay at rent per calendar month. Only the year and month of
// the two dates count, so 2025-01-31 to 2025-02-01 is one month. It returns
// zero unless checkOut is after checkIn.
func Quote(rent float64, checkIn, checkOut time.Time) float64 {
	if !checkOut.After(checkIn) {
		return 0
	}
	months := (checkOut.Year()-checkIn.Year())*12 + int(checkOut.Month()) - int(checkIn.Month())
	return rent * float64(months)
}

func parseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, invalid("checkInDate", "The field 'checkInDate' must be a date in the form YYYY-MM-DD.")
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, invalid("checkOutDate", "The field 'checkOutDate' must be a date in the form YYYY-MM-DD.")
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, invalid("checkOutDate", "Check-out date must be after check-in date.")
	}
	return in, out, nil
}

// QuoteStay is Quote for dates in YYYY-MM-DD form.
func (s *BookingService) QuoteStay(rent float64, checkIn, checkOut string) (float64, error) {
	in, out, err := parseStay(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return Quote(rent, in, out), nil
}

// Create books accommodation for the signed-in student. The amount, request
// date and both statuses are filled in here.
func (s *BookingService) Create(ctx context.Context, accommodation models.Accommodation, checkIn, checkOut string) (*models.Booking, error) {
	studentID, err := s.studentID()
	if err != nil {
		return nil, err
	}
	in, out, err := parseStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	b := models.Booking{
		Student:       &models.StudentRef{StudentID: studentID},
		Accommodation: &accommodation,
		RequestDate:   today(),
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		TotalAmount:   Quote(accommodation.Rent, in, out),
		PaymentStatus: models.PaymentPending,
		BookingStatus: models.BookingInProgress,
	}

	created, err := s.api.CreateBooking(ctx, b)
	if err != nil {
		return nil, s.check(ctx, "create booking", fmt.Errorf("book accommodation %d: %w", accommodation.AccommodationID, err))
	}
	s.logger.Info(ctx, "booking created", "accommodation", accommodation.AccommodationID, "amount", b.TotalAmount)
	return created, nil
}
