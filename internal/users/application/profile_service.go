// Package application holds the use cases of the users service.
package application

import (
	"context"

	"github.com/ecomovil/platform/internal/users/domain"
	"github.com/ecomovil/platform/pkg/errors"
	"github.com/ecomovil/platform/pkg/logger"
)

// CreateProfileCommand carries the fields of a new profile.
type CreateProfileCommand struct {
	UserID      int64
	PlanID      *int64
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Ruc         string
}

// UpdateProfileCommand carries the mutable profile fields.
type UpdateProfileCommand struct {
	ProfileID   int64
	PlanID      *int64
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Ruc         string
}

// ProfileService implements the profile use cases.
type ProfileService struct {
	profiles domain.ProfileRepository
	plans    domain.PlanService
	log      logger.Logger
}

func NewProfileService(profiles domain.ProfileRepository, plans domain.PlanService, log logger.Logger) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		plans:    plans,
		log:      log.WithComponent("profile_service"),
	}
}

// Create registers a profile. When a plan is referenced it must be confirmed
// by the plans service first.
func (s *ProfileService) Create(ctx context.Context, cmd CreateProfileCommand) (*domain.Profile, error) {
	if cmd.UserID <= 0 {
		return nil, errors.ErrInvalidRequest.WithMessagef("user id is required")
	}
	if existing, err := s.profiles.FindByUserID(ctx, cmd.UserID); err == nil && existing != nil {
		return nil, errors.ErrConflict.WithMessagef("profile for user %d already exists", cmd.UserID)
	}
	if cmd.PlanID != nil && !s.plans.PlanExists(ctx, *cmd.PlanID) {
		return nil, errors.ErrInvalidRequest.WithMessagef("plan with id %d does not exist", *cmd.PlanID)
	}

	profile := &domain.Profile{
		UserID:      cmd.UserID,
		PlanID:      cmd.PlanID,
		FirstName:   cmd.FirstName,
		LastName:    cmd.LastName,
		Email:       cmd.Email,
		PhoneNumber: cmd.PhoneNumber,
		Ruc:         cmd.Ruc,
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Update rewrites the mutable fields of an existing profile.
func (s *ProfileService) Update(ctx context.Context, cmd UpdateProfileCommand) (*domain.Profile, error) {
	profile, err := s.profiles.FindByID(ctx, cmd.ProfileID)
	if err != nil {
		return nil, err
	}
	if cmd.PlanID != nil && !s.plans.PlanExists(ctx, *cmd.PlanID) {
		return nil, errors.ErrInvalidRequest.WithMessagef("plan with id %d does not exist", *cmd.PlanID)
	}

	profile.PlanID = cmd.PlanID
	profile.FirstName = cmd.FirstName
	profile.LastName = cmd.LastName
	profile.Email = cmd.Email
	profile.PhoneNumber = cmd.PhoneNumber
	profile.Ruc = cmd.Ruc
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	return s.profiles.FindByID(ctx, id)
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	return s.profiles.FindByUserID(ctx, userID)
}

func (s *ProfileService) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return s.profiles.FindByEmail(ctx, email)
}

func (s *ProfileService) GetByRuc(ctx context.Context, ruc string) (*domain.Profile, error) {
	return s.profiles.FindByRuc(ctx, ruc)
}

func (s *ProfileService) ListByPlan(ctx context.Context, planID int64) ([]domain.Profile, error) {
	return s.profiles.FindByPlanID(ctx, planID)
}

func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.FindAll(ctx)
}
