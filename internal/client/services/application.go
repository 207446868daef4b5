package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/houseconnect/internal/client/client"
	"github.com/dmitrijs2005/houseconnect/internal/client/models"
	"github.com/dmitrijs2005/houseconnect/internal/logging"
)

type ApplicationService struct {
	base
	api client.ApplicationAPI
}

func NewApplicationService(api client.ApplicationAPI, s Session, logger logging.Logger) *ApplicationService {
	return &ApplicationService{base: newBase(s, logger, "application"), api: api}
}

// ListForLandlord lists applications to the signed-in landlord's listings.
func (s *ApplicationService) ListForLandlord(ctx context.Context) ([]models.Application, error) {
	landlordID, err := s.landlordID()
	if err != nil {
		return nil, err
	}
	list, err := s.api.ListApplicationsByLandlord(ctx, landlordID)
	if err != nil {
		return nil, s.check(ctx, "list landlord applications", fmt.Errorf("list applications of landlord %d: %w", landlordID, err))
	}
	return list, nil
}

// ListForStudent lists the signed-in student's applications.
func (s *ApplicationService) ListForStudent(ctx context.Context) ([]models.Application, error) {
	studentID, err := s.studentID()
	if err != nil {
		return nil, err
	}
	list, err := s.api.ListApplicationsByStudent(ctx, studentID)
	if err != nil {
		return nil, s.check(ctx, "list student applications", fmt.Errorf("list applications of student %d: %w", studentID, err))
	}
	return list, nil
}

// Apply files a PENDING application dated today for the signed-in student.
func (s *ApplicationService) Apply(ctx context.Context, accommodationID int64) (*models.Application, error) {
	studentID, err := s.studentID()
	if err != nil {
		return nil, err
	}
	if accommodationID <= 0 {
		return nil, invalid("accommodationID", "The field 'accommodationID' must be greater than 0.")
	}
	req := models.ApplicationRequest{
		Student:           models.StudentRef{StudentID: studentID},
		Accommodation:     models.AccommodationRef{AccommodationID: accommodationID},
		ApplicationDate:   today(),
		ApplicationStatus: models.ApplicationPending,
	}
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	app, err := s.api.CreateApplication(ctx, req)
	if err != nil {
		return nil, s.check(ctx, "apply", fmt.Errorf("apply for accommodation %d: %w", accommodationID, err))
	}
	s.logger.Info(ctx, "application submitted", "accommodation", accommodationID)
	return app, nil
}

// Approve accepts an application. known is the status the caller last saw,
// or "" when it has none; only PENDING applications may change.
func (s *ApplicationService) Approve(ctx context.Context, id int64, known models.ApplicationStatus) (*models.Application, error) {
	if err := decidable(known); err != nil {
		return nil, err
	}
	app, err := s.api.ApproveApplication(ctx, id)
	if err != nil {
		return nil, s.check(ctx, "approve application", fmt.Errorf("approve application %d: %w", id, err))
	}
	return app, nil
}

// Reject declines an application; see Approve for known.
func (s *ApplicationService) Reject(ctx context.Context, id int64, known models.ApplicationStatus) (*models.Application, error) {
	if err := decidable(known); err != nil {
		return nil, err
	}
	app, err := s.api.RejectApplication(ctx, id)
	if err != nil {
		return nil, s.check(ctx, "reject application", fmt.Errorf("reject application %d: %w", id, err))
	}
	return app, nil
}

func decidable(known models.ApplicationStatus) error {
	if known == "" || known == models.ApplicationPending {
		return nil
	}
	return invalid("applicationStatus", fmt.Sprintf("The application is already %s.", known))
}
