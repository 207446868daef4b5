package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/houseconnect/internal/client/client"
	"github.com/dmitrijs2005/houseconnect/internal/client/models"
	"github.com/dmitrijs2005/houseconnect/internal/logging"
)

// ProfileService reads and edits the signed-in user's own record.
type ProfileService struct {
	base
	api client.ProfileAPI
}

func NewProfileService(api client.ProfileAPI, s Session, logger logging.Logger) *ProfileService {
	return &ProfileService{base: newBase(s, logger, "profile"), api: api}
}

func (s *ProfileService) Student(ctx context.Context) (*models.Student, error) {
	studentID, err := s.studentID()
	if err != nil {
		return nil, err
	}
	st, err := s.api.GetStudent(ctx, studentID)
	if err != nil {
		return nil, s.check(ctx, "get student", fmt.Errorf("get student %d: %w", studentID, err))
	}
	return st, nil
}

// UpdateStudent saves st as the signed-in student's profile. The id always
// comes from the session.
func (s *ProfileService) UpdateStudent(ctx context.Context, st models.Student) (*models.Student, error) {
	studentID, err := s.studentID()
	if err != nil {
		return nil, err
	}
	st.StudentID = studentID
	if err := validateStruct(&st); err != nil {
		return nil, err
	}
	updated, err := s.api.UpdateStudent(ctx, st)
	if err != nil {
		return nil, s.check(ctx, "update student", fmt.Errorf("update student %d: %w", studentID, err))
	}
	return updated, nil
}

func (s *ProfileService) Landlord(ctx context.Context) (*models.Landlord, error) {
	landlordID, err := s.landlordID()
	if err != nil {
		return nil, err
	}
	l, err := s.api.GetLandlord(ctx, landlordID)
	if err != nil {
		return nil, s.check(ctx, "get landlord", fmt.Errorf("get landlord %d: %w", landlordID, err))
	}
	return l, nil
}

func (s *ProfileService) UpdateLandlord(ctx context.Context, l models.Landlord) (*models.Landlord, error) {
	landlordID, err := s.landlordID()
	if err != nil {
		return nil, err
	}
	l.LandlordID = landlordID
	if err := validateStruct(&l); err != nil {
		return nil, err
	}
	updated, err := s.api.UpdateLandlord(ctx, l)
	if err != nil {
		return nil, s.check(ctx, "update landlord", fmt.Errorf("update landlord %d: %w", landlordID, err))
	}
	return updated, nil
}

// Students lists every student, for picking one to assign.
func (s *ProfileService) Students(ctx context.Context) ([]models.Student, error) {
	list, err := s.api.ListStudents(ctx)
	if err != nil {
		return nil, s.check(ctx, "list students", fmt.Errorf("list students: %w", err))
	}
	return list, nil
}
