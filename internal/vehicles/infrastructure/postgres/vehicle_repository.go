// Package postgres implements the vehicle repository on GORM.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/ecomovil/platform/internal/vehicles/domain"
	"github.com/ecomovil/platform/pkg/errors"
)

// VehicleRepository is the GORM-backed vehicle repository.
type VehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a vehicle repository.
func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Save(ctx context.Context, vehicle *domain.Vehicle) error {
	if err := r.db.WithContext(ctx).Save(vehicle).Error; err != nil {
		return errors.ErrDatabase.WithError(err)
	}
	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	err := r.db.WithContext(ctx).First(&vehicle, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrEntityNotFound.WithMessagef("vehicle with id %d not found", id)
		}
		return nil, errors.ErrDatabase.WithError(err)
	}
	return &vehicle, nil
}

func (r *VehicleRepository) FindByOwnerID(ctx context.Context, ownerID int64) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&vehicles).Error
	if err != nil {
		return nil, errors.ErrDatabase.WithError(err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) FindByType(ctx context.Context, vehicleType string) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	err := r.db.WithContext(ctx).Where("type = ?", vehicleType).Find(&vehicles).Error
	if err != nil {
		return nil, errors.ErrDatabase.WithError(err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) FindAvailable(ctx context.Context) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	err := r.db.WithContext(ctx).Where("available = ?", true).Find(&vehicles).Error
	if err != nil {
		return nil, errors.ErrDatabase.WithError(err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) FindAll(ctx context.Context) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	if err := r.db.WithContext(ctx).Find(&vehicles).Error; err != nil {
		return nil, errors.ErrDatabase.WithError(err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Vehicle{}, id).Error; err != nil {
		return errors.ErrDatabase.WithError(err)
	}
	return nil
}

// Migrate creates the vehicles service schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&domain.Vehicle{}); err != nil {
		return errors.ErrDatabase.WithError(err)
	}
	return nil
}
