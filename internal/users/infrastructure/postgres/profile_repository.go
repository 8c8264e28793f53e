// Package postgres implements the profile repository on GORM.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/ecomovil/platform/internal/users/domain"
	"github.com/ecomovil/platform/pkg/errors"
)

// ProfileRepository is the GORM-backed profile repository.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a profile repository.
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Save(ctx context.Context, profile *domain.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return errors.ErrDatabase.WithError(err)
	}
	return nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id int64) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).First(&profile, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrEntityNotFound.WithMessagef("profile with id %d not found", id)
		}
		return nil, errors.ErrDatabase.WithError(err)
	}
	return &profile, nil
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	return r.findOne(ctx, "user_id = ?", userID, "profile for user %d not found", userID)
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return r.findOne(ctx, "email = ?", email, "profile with email %q not found", email)
}

func (r *ProfileRepository) FindByRuc(ctx context.Context, ruc string) (*domain.Profile, error) {
	return r.findOne(ctx, "ruc = ?", ruc, "profile with ruc %q not found", ruc)
}

func (r *ProfileRepository) findOne(ctx context.Context, query string, arg interface{}, notFoundFormat string, notFoundArg interface{}) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).Where(query, arg).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrEntityNotFound.WithMessagef(notFoundFormat, notFoundArg)
		}
		return nil, errors.ErrDatabase.WithError(err)
	}
	return &profile, nil
}

func (r *ProfileRepository) FindByPlanID(ctx context.Context, planID int64) ([]domain.Profile, error) {
	var profiles []domain.Profile
	err := r.db.WithContext(ctx).Where("plan_id = ?", planID).Find(&profiles).Error
	if err != nil {
		return nil, errors.ErrDatabase.WithError(err)
	}
	return profiles, nil
}

func (r *ProfileRepository) FindAll(ctx context.Context) ([]domain.Profile, error) {
	var profiles []domain.Profile
	if err := r.db.WithContext(ctx).Find(&profiles).Error; err != nil {
		return nil, errors.ErrDatabase.WithError(err)
	}
	return profiles, nil
}

// Migrate creates the users service schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&domain.Profile{}); err != nil {
		return errors.ErrDatabase.WithError(err)
	}
	return nil
}
