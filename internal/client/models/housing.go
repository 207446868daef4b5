package models

import (
	"encoding/json"
	"fmt"
)

// Flag is a boolean the backend stores as 0/1.
type Flag bool

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (f *Flag) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case "1", "true":
		*f = true
	case "0", "false", "null":
		*f = false
	default:
		return fmt.Errorf("invalid flag value %s", b)
	}
	return nil
}

type Contact struct {
	Email                  string `json:"email" validate:"required,email"`
	PhoneNumber            string `json:"phoneNumber" validate:"required"`
	AlternatePhoneNumber   string `json:"alternatePhoneNumber,omitempty"`
	IsEmailVerified        Flag   `json:"isEmailVerified"`
	IsPhoneVerified        Flag   `json:"isPhoneVerified"`
	PreferredContactMethod string `json:"preferredContactMethod" validate:"required,oneof=EMAIL PHONE ALTERNATE_PHONE"`
}

type Address struct {
	StreetNumber string `json:"streetNumber" validate:"required"`
	StreetName   string `json:"streetName" validate:"required"`
	Suburb       string `json:"suburb,omitempty"`
	City         string `json:"city" validate:"required"`
	PostalCode   int    `json:"postalCode" validate:"gte=0"`
}

func (a Address) String() string {
	return fmt.Sprintf("%s %s, %s", a.StreetNumber, a.StreetName, a.City)
}

type Student struct {
	StudentID         int64     `json:"studentID,omitempty"`
	StudentName       string    `json:"studentName" validate:"required"`
	StudentSurname    string    `json:"studentSurname" validate:"required"`
	DateOfBirth       string    `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Gender            string    `json:"gender" validate:"required,oneof=Male Female Other"`
	RegistrationDate  string    `json:"registrationDate,omitempty"`
	IsStudentVerified Flag      `json:"isStudentVerified"`
	FundingStatus     string    `json:"fundingStatus" validate:"required,oneof=FUNDED SELF_FUNDED NOT_FUNDED"`
	Contact           *Contact  `json:"contact,omitempty" validate:"omitempty"`
	Bookings          []Booking `json:"bookings,omitempty"`
}

type Landlord struct {
	LandlordID        int64    `json:"landlordID,omitempty"`
	LandlordFirstName string   `json:"landlordFirstName" validate:"required"`
	LandlordLastName  string   `json:"landlordLastName" validate:"required"`
	IsVerified        Flag     `json:"isVerified"`
	DateRegistered    string   `json:"dateRegistered,omitempty"`
	Contact           *Contact `json:"contact,omitempty" validate:"omitempty"`
}

type RoomType string

const (
	RoomSingle RoomType = "SINGLE"
	RoomDouble RoomType = "DOUBLE"
	RoomShared RoomType = "SHARED"
)

type BathroomType string

const (
	BathroomPrivate BathroomType = "PRIVATE"
	BathroomShared  BathroomType = "SHARED"
)

type AccommodationStatus string

const (
	AccommodationAvailable   AccommodationStatus = "AVAILABLE"
	AccommodationOccupied    AccommodationStatus = "OCCUPIED"
	AccommodationMaintenance AccommodationStatus = "MAINTENANCE"
)

type Accommodation struct {
	AccommodationID     int64               `json:"accommodationID,omitempty"`
	AccommodationName   string              `json:"accommodationName,omitempty"`
	NumberOfRooms       int                 `json:"numberOfRooms" validate:"gt=0"`
	Description         string              `json:"description,omitempty"`
	Rent                float64             `json:"rent" validate:"gt=0"`
	WifiAvailable       bool                `json:"wifiAvailable"`
	Furnished           bool                `json:"furnished"`
	DistanceFromCampus  float64             `json:"distanceFromCampus" validate:"gte=0"`
	UtilitiesIncluded   bool                `json:"utilitiesIncluded"`
	RoomType            RoomType            `json:"roomType" validate:"required,oneof=SINGLE DOUBLE SHARED"`
	BathroomType        BathroomType        `json:"bathroomType" validate:"required,oneof=PRIVATE SHARED"`
	AccommodationStatus AccommodationStatus `json:"accommodationStatus" validate:"required,oneof=AVAILABLE OCCUPIED MAINTENANCE"`
	Address             Address             `json:"address"`
	Landlord            *LandlordRef        `json:"landlord,omitempty"`
}

// LandlordRef is the landlord as nested in other records.
type LandlordRef struct {
	LandlordID        int64  `json:"landlordID"`
	LandlordFirstName string `json:"landlordFirstName,omitempty"`
	LandlordLastName  string `json:"landlordLastName,omitempty"`
}

// StudentRef is the student as nested in other records.
type StudentRef struct {
	StudentID      int64  `json:"studentID"`
	StudentName    string `json:"studentName,omitempty"`
	StudentSurname string `json:"studentSurname,omitempty"`
}

// AccommodationRef is the accommodation as nested in other records.
type AccommodationRef struct {
	AccommodationID int64 `json:"accommodationID"`
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

type Application struct {
	ApplicationID     int64             `json:"applicationID,omitempty"`
	Student           StudentRef        `json:"student"`
	Accommodation     Accommodation     `json:"accommodation"`
	ApplicationDate   string            `json:"applicationDate,omitempty"`
	ApplicationStatus ApplicationStatus `json:"applicationStatus,omitempty"`
}

// ApplicationRequest is the body of a new application.
type ApplicationRequest struct {
	Student           StudentRef        `json:"student"`
	Accommodation     AccommodationRef  `json:"accommodation"`
	ApplicationDate   string            `json:"applicationDate" validate:"required,datetime=2006-01-02"`
	ApplicationStatus ApplicationStatus `json:"applicationStatus" validate:"required"`
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

type BookingStatus string

const (
	BookingInProgress BookingStatus = "IN_PROGRESS"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingCancelled  BookingStatus = "CANCELLED"
)

// Booking is both the create payload and the record listed on a student.
// Accommodation is decoded as a full record so listings can show an address.
type Booking struct {
	BookingID     int64          `json:"bookingID,omitempty"`
	Student       *StudentRef    `json:"student,omitempty"`
	Accommodation *Accommodation `json:"accommodation,omitempty"`
	RequestDate   string         `json:"requestDate"`
	CheckInDate   string         `json:"checkInDate"`
	CheckOutDate  string         `json:"checkOutDate"`
	TotalAmount   float64        `json:"totalAmount"`
	PaymentStatus PaymentStatus  `json:"paymentStatus"`
	BookingStatus BookingStatus  `json:"bookingStatus"`
}

// bookingRequest narrows the nested accommodation to its id on the wire.
type bookingRequest struct {
	Student       *StudentRef       `json:"student,omitempty"`
	Accommodation *AccommodationRef `json:"accommodation,omitempty"`
	RequestDate   string            `json:"requestDate"`
	CheckInDate   string            `json:"checkInDate"`
	CheckOutDate  string            `json:"checkOutDate"`
	TotalAmount   float64           `json:"totalAmount"`
	PaymentStatus PaymentStatus     `json:"paymentStatus"`
	BookingStatus BookingStatus     `json:"bookingStatus"`
}

// CreatePayload renders the booking as the create endpoint expects it.
func (b Booking) CreatePayload() ([]byte, error) {
	req := bookingRequest{
		Student:       b.Student,
		RequestDate:   b.RequestDate,
		CheckInDate:   b.CheckInDate,
		CheckOutDate:  b.CheckOutDate,
		TotalAmount:   b.TotalAmount,
		PaymentStatus: b.PaymentStatus,
		BookingStatus: b.BookingStatus,
	}
	if b.Accommodation != nil {
		req.Accommodation = &AccommodationRef{AccommodationID: b.Accommodation.AccommodationID}
	}
	return json.Marshal(req)
}

// Assignment places a student in an accommodation.
type Assignment struct {
	StudentID       int64 `json:"studentId" validate:"gt=0"`
	AccommodationID int64 `json:"accommodationId" validate:"gt=0"`
}

// StudentSignup is the student registration payload.
type StudentSignup struct {
	Student
	Password string `json:"password" validate:"required"`
}

// LandlordSignup is the landlord registration payload.
type LandlordSignup struct {
	Landlord
	Password string `json:"password" validate:"required"`
}
