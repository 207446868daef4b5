package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/houseconnect/internal/client/client"
	"github.com/dmitrijs2005/houseconnect/internal/client/models"
	"github.com/dmitrijs2005/houseconnect/internal/logging"
)

// RegistrationService signs up new students and landlords. It needs no
// session.
type RegistrationService struct {
	api    client.AuthAPI
	logger logging.Logger
}

func NewRegistrationService(api client.AuthAPI, logger logging.Logger) *RegistrationService {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &RegistrationService{api: api, logger: logger.With("service", "registration")}
}

// RegisterStudent stamps the registration date and an unverified flag
// before sending.
func (s *RegistrationService) RegisterStudent(ctx context.Context, signup models.StudentSignup) error {
	signup.RegistrationDate = today()
	signup.IsStudentVerified = false
	if signup.Contact == nil {
		return invalid("contact", "The field 'contact' is required.")
	}
	contact := *signup.Contact
	contact.IsEmailVerified, contact.IsPhoneVerified = false, false
	signup.Contact = &contact
	if err := validateStruct(&signup); err != nil {
		return err
	}
	if err := s.api.RegisterStudent(ctx, signup); err != nil {
		return fmt.Errorf("register student: %w", err)
	}
	s.logger.Info(ctx, "student registered", "name", signup.StudentName)
	return nil
}

func (s *RegistrationService) RegisterLandlord(ctx context.Context, signup models.LandlordSignup) error {
	signup.DateRegistered = today()
	signup.IsVerified = false
	if signup.Contact == nil {
		return invalid("contact", "The field 'contact' is required.")
	}
	if err := validateStruct(&signup); err != nil {
		return err
	}
	if err := s.api.RegisterLandlord(ctx, signup); err != nil {
		return fmt.Errorf("register landlord: %w", err)
	}
	s.logger.Info(ctx, "landlord registered", "name", signup.LandlordFirstName)
	return nil
}
