package client

import (
	"context"

	"github.com/dmitrijs2005/houseconnect/internal/client/models"
)

// AuthAPI covers the unauthenticated user-authentication endpoints.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	RegisterStudent(ctx context.Context, signup models.StudentSignup) error
	RegisterLandlord(ctx context.Context, signup models.LandlordSignup) error
}

// AccommodationAPI covers listing CRUD and student assignment.
type AccommodationAPI interface {
	ListAccommodations(ctx context.Context) ([]models.Accommodation, error)
	ListAccommodationsByLandlord(ctx context.Context, landlordID int64) ([]models.Accommodation, error)
	GetAccommodation(ctx context.Context, id int64) (*models.Accommodation, error)
	CreateAccommodation(ctx context.Context, a models.Accommodation) (*models.Accommodation, error)
	UpdateAccommodation(ctx context.Context, a models.Accommodation) (*models.Accommodation, error)
	DeleteAccommodation(ctx context.Context, id int64) error
	Assign(ctx context.Context, a models.Assignment) error
}

// ApplicationAPI covers the application/approval workflow.
type ApplicationAPI interface {
	ListApplicationsByLandlord(ctx context.Context, landlordID int64) ([]models.Application, error)
	ListApplicationsByStudent(ctx context.Context, studentID int64) ([]models.Application, error)
	CreateApplication(ctx context.Context, req models.ApplicationRequest) (*models.Application, error)
	ApproveApplication(ctx context.Context, id int64) (*models.Application, error)
	RejectApplication(ctx context.Context, id int64) (*models.Application, error)
}

// BookingAPI covers booking creation.
type BookingAPI interface {
	CreateBooking(ctx context.Context, b models.Booking) (*models.Booking, error)
}

// ProfileAPI covers student and landlord profiles.
type ProfileAPI interface {
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	UpdateStudent(ctx context.Context, s models.Student) (*models.Student, error)
	ListStudents(ctx context.Context) ([]models.Student, error)
	GetLandlord(ctx context.Context, id int64) (*models.Landlord, error)
	UpdateLandlord(ctx context.Context, l models.Landlord) (*models.Landlord, error)
}

// Client is the full HouseConnect backend contract.
type Client interface {
	AuthAPI
	AccommodationAPI
	ApplicationAPI
	BookingAPI
	ProfileAPI
	Ping(ctx context.Context) error
	Close() error
}
