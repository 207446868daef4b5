package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/houseconnect/internal/client/client"
	"github.com/dmitrijs2005/houseconnect/internal/client/models"
	"github.com/dmitrijs2005/houseconnect/internal/logging"
)

type AccommodationService struct {
	base
	api client.AccommodationAPI
}

func NewAccommodationService(api client.AccommodationAPI, s Session, logger logging.Logger) *AccommodationService {
	return &AccommodationService{base: newBase(s, logger, "accommodation"), api: api}
}

func (s *AccommodationService) ListAll(ctx context.Context) ([]models.Accommodation, error) {
	list, err := s.api.ListAccommodations(ctx)
	if err != nil {
		return nil, s.check(ctx, "list accommodations", fmt.Errorf("list accommodations: %w", err))
	}
	return list, nil
}

// ListByLandlord lists the signed-in landlord's own listings.
func (s *AccommodationService) ListByLandlord(ctx context.Context) ([]models.Accommodation, error) {
	landlordID, err := s.landlordID()
	if err != nil {
		return nil, err
	}
	list, err := s.api.ListAccommodationsByLandlord(ctx, landlordID)
	if err != nil {
		return nil, s.check(ctx, "list own accommodations", fmt.Errorf("list accommodations of landlord %d: %w", landlordID, err))
	}
	return list, nil
}

func (s *AccommodationService) Get(ctx context.Context, id int64) (*models.Accommodation, error) {
	a, err := s.api.GetAccommodation(ctx, id)
	if err != nil {
		return nil, s.check(ctx, "get accommodation", fmt.Errorf("get accommodation %d: %w", id, err))
	}
	return a, nil
}

// Create publishes a new listing owned by the signed-in landlord. A missing
// status defaults to AVAILABLE.
func (s *AccommodationService) Create(ctx context.Context, a models.Accommodation) (*models.Accommodation, error) {
	landlordID, err := s.landlordID()
	if err != nil {
		return nil, err
	}
	a.AccommodationID = 0
	a.Landlord = &models.LandlordRef{LandlordID: landlordID}
	if a.AccommodationStatus == "" {
		a.AccommodationStatus = models.AccommodationAvailable
	}
	if err := validateStruct(&a); err != nil {
		return nil, err
	}

	created, err := s.api.CreateAccommodation(ctx, a)
	if err != nil {
		return nil, s.check(ctx, "create accommodation", fmt.Errorf("create accommodation: %w", err))
	}
	s.logger.Info(ctx, "accommodation created", "id", created.AccommodationID)
	return created, nil
}

func (s *AccommodationService) Update(ctx context.Context, a models.Accommodation) (*models.Accommodation, error) {
	if a.AccommodationID <= 0 {
		return nil, invalid("accommodationID", "The field 'accommodationID' is required.")
	}
	landlordID, err := s.landlordID()
	if err != nil {
		return nil, err
	}
	a.Landlord = &models.LandlordRef{LandlordID: landlordID}
	if err := validateStruct(&a); err != nil {
		return nil, err
	}

	updated, err := s.api.UpdateAccommodation(ctx, a)
	if err != nil {
		return nil, s.check(ctx, "update accommodation", fmt.Errorf("update accommodation %d: %w", a.AccommodationID, err))
	}
	return updated, nil
}

func (s *AccommodationService) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteAccommodation(ctx, id); err != nil {
		return s.check(ctx, "delete accommodation", fmt.Errorf("delete accommodation %d: %w", id, err))
	}
	s.logger.Info(ctx, "accommodation deleted", "id", id)
	return nil
}

// Assign places a student in one of the landlord's listings.
func (s *AccommodationService) Assign(ctx context.Context, a models.Assignment) error {
	if err := validateStruct(&a); err != nil {
		return err
	}
	if err := s.api.Assign(ctx, a); err != nil {
		return s.check(ctx, "assign", fmt.Errorf("assign student %d to %d: %w", a.StudentID, a.AccommodationID, err))
	}
	return nil
}
