package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/houseconnect/internal/client/client"
	"github.com/dmitrijs2005/houseconnect/internal/client/models"
)

// ---- fake client ----

// fakeClient implements client.Client. Each call records its argument and
// returns the configured error; successful writes echo their input.
type fakeClient struct {
	Err error

	Accommodations []models.Accommodation
	Applications   []models.Application
	Students       []models.Student
	Student        *models.Student
	Landlord       *models.Landlord

	LastStudentSignup  *models.StudentSignup
	LastLandlordSignup *models.LandlordSignup
	LastAccommodation  *models.Accommodation
	LastAssignment     *models.Assignment
	LastApplication    *models.ApplicationRequest
	LastBooking        *models.Booking
	LastStudent        *models.Student
	LastLandlord       *models.Landlord
	LastID             int64
	Calls              []string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) called(name string) { f.Calls = append(f.Calls, name) }

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	f.called("Login")
	return &models.LoginResponse{Username: username}, f.Err
}

func (f *fakeClient) RegisterStudent(ctx context.Context, s models.StudentSignup) error {
	f.called("RegisterStudent")
	f.LastStudentSignup = &s
	return f.Err
}

func (f *fakeClient) RegisterLandlord(ctx context.Context, l models.LandlordSignup) error {
	f.called("RegisterLandlord")
	f.LastLandlordSignup = &l
	return f.Err
}

func (f *fakeClient) ListAccommodations(ctx context.Context) ([]models.Accommodation, error) {
	f.called("ListAccommodations")
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Accommodations, nil
}

func (f *fakeClient) ListAccommodationsByLandlord(ctx context.Context, landlordID int64) ([]models.Accommodation, error) {
	f.called("ListAccommodationsByLandlord")
	f.LastID = landlordID
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Accommodations, nil
}

func (f *fakeClient) GetAccommodation(ctx context.Context, id int64) (*models.Accommodation, error) {
	f.called("GetAccommodation")
	f.LastID = id
	if f.Err != nil {
		return nil, f.Err
	}
	for _, a := range f.Accommodations {
		if a.AccommodationID == id {
			return &a, nil
		}
	}
	return &models.Accommodation{AccommodationID: id}, nil
}

func (f *fakeClient) CreateAccommodation(ctx context.Context, a models.Accommodation) (*models.Accommodation, error) {
	f.called("CreateAccommodation")
	f.LastAccommodation = &a
	if f.Err != nil {
		return nil, f.Err
	}
	a.AccommodationID = 100
	return &a, nil
}

func (f *fakeClient) UpdateAccommodation(ctx context.Context, a models.Accommodation) (*models.Accommodation, error) {
	f.called("UpdateAccommodation")
	f.LastAccommodation = &a
	if f.Err != nil {
		return nil, f.Err
	}
	return &a, nil
}

func (f *fakeClient) DeleteAccommodation(ctx context.Context, id int64) error {
	f.called("DeleteAccommodation")
	f.LastID = id
	return f.Err
}

func (f *fakeClient) Assign(ctx context.Context, a models.Assignment) error {
	f.called("Assign")
	f.LastAssignment = &a
	return f.Err
}

func (f *fakeClient) ListApplicationsByLandlord(ctx context.Context, landlordID int64) ([]models.Application, error) {
	f.called("ListApplicationsByLandlord")
	f.LastID = landlordID
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Applications, nil
}

func (f *fakeClient) ListApplicationsByStudent(ctx context.Context, studentID int64) ([]models.Application, error) {
	f.called("ListApplicationsByStudent")
	f.LastID = studentID
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Applications, nil
}

func (f *fakeClient) CreateApplication(ctx context.Context, req models.ApplicationRequest) (*models.Application, error) {
	f.called("CreateApplication")
	f.LastApplication = &req
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.Application{ApplicationID: 1, Student: req.Student, ApplicationStatus: req.ApplicationStatus}, nil
}

func (f *fakeClient) ApproveApplication(ctx context.Context, id int64) (*models.Application, error) {
	f.called("ApproveApplication")
	f.LastID = id
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.Application{ApplicationID: id, ApplicationStatus: models.ApplicationApproved}, nil
}

func (f *fakeClient) RejectApplication(ctx context.Context, id int64) (*models.Application, error) {
	f.called("RejectApplication")
	f.LastID = id
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.Application{ApplicationID: id, ApplicationStatus: models.ApplicationRejected}, nil
}

func (f *fakeClient) CreateBooking(ctx context.Context, b models.Booking) (*models.Booking, error) {
	f.called("CreateBooking")
	f.LastBooking = &b
	if f.Err != nil {
		return nil, f.Err
	}
	b.BookingID = 1
	return &b, nil
}

func (f *fakeClient) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	f.called("GetStudent")
	f.LastID = id
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Student, nil
}

func (f *fakeClient) UpdateStudent(ctx context.Context, s models.Student) (*models.Student, error) {
	f.called("UpdateStudent")
	f.LastStudent = &s
	if f.Err != nil {
		return nil, f.Err
	}
	return &s, nil
}

func (f *fakeClient) ListStudents(ctx context.Context) ([]models.Student, error) {
	f.called("ListStudents")
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Students, nil
}

func (f *fakeClient) GetLandlord(ctx context.Context, id int64) (*models.Landlord, error) {
	f.called("GetLandlord")
	f.LastID = id
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Landlord, nil
}

func (f *fakeClient) UpdateLandlord(ctx context.Context, l models.Landlord) (*models.Landlord, error) {
	f.called("UpdateLandlord")
	f.LastLandlord = &l
	if f.Err != nil {
		return nil, f.Err
	}
	return &l, nil
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.Err }
func (f *fakeClient) Close() error                   { return nil }

// ---- fake session ----

type fakeSession struct {
	identity    *models.Identity
	invalidated []string
}

func (f *fakeSession) Identity() *models.Identity { return f.identity }

func (f *fakeSession) Invalidate(ctx context.Context, reason string) {
	f.invalidated = append(f.invalidated, reason)
	f.identity = nil
}

func int64p(v int64) *int64 { return &v }

func studentSession() *fakeSession {
	return &fakeSession{identity: &models.Identity{Username: "joe", Role: models.RoleStudent, StudentID: int64p(7)}}
}

func landlordSession() *fakeSession {
	return &fakeSession{identity: &models.Identity{Username: "ann", Role: models.RoleLandlord, LandlordID: int64p(3)}}
}

// fixClock pins today() for the duration of the test.
func fixClock(t *testing.T, day string) {
	t.Helper()
	ts, err := time.Parse(dateLayout, day)
	if err != nil {
		t.Fatalf("bad day %q: %v", day, err)
	}
	prev := now
	now = func() time.Time { return ts }
	t.Cleanup(func() { now = prev })
}

func unauthorized() error {
	return &client.StatusError{StatusCode: 401, Message: "Unauthorized"}
}

func validContact() *models.Contact {
	return &models.Contact{Email: "joe@uni.ac.za", PhoneNumber: "0821234567", PreferredContactMethod: "EMAIL"}
}

func validAccommodation() models.Accommodation {
	return models.Accommodation{
		AccommodationName:  "Loft",
		NumberOfRooms:      2,
		Rent:               4500,
		DistanceFromCampus: 1.5,
		RoomType:           models.RoomSingle,
		BathroomType:       models.BathroomPrivate,
		Address:            models.Address{StreetNumber: "12", StreetName: "Main Rd", City: "Cape Town", PostalCode: 7700},
	}
}
