// Package postgres implements the reservation repository on GORM.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/ecomovil/platform/internal/reservations/domain"
	"github.com/ecomovil/platform/pkg/errors"
)

// ReservationRepository is the GORM-backed reservation repository.
type ReservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a reservation repository.
func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Save(ctx context.Context, reservation *domain.Reservation) error {
	if err := r.db.WithContext(ctx).Save(reservation).Error; err != nil {
		return errors.ErrDatabase.WithError(err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var reservation domain.Reservation
	err := r.db.WithContext(ctx).First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrEntityNotFound.WithMessagef("reservation with id %d not found", id)
		}
		return nil, errors.ErrDatabase.WithError(err)
	}
	return &reservation, nil
}

func (r *ReservationRepository) FindByUserID(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&reservations).Error
	if err != nil {
		return nil, errors.ErrDatabase.WithError(err)
	}
	return reservations, nil
}

func (r *ReservationRepository) FindByVehicleID(ctx context.Context, vehicleID int64) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	err := r.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID).Find(&reservations).Error
	if err != nil {
		return nil, errors.ErrDatabase.WithError(err)
	}
	return reservations, nil
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	if err := r.db.WithContext(ctx).Find(&reservations).Error; err != nil {
		return nil, errors.ErrDatabase.WithError(err)
	}
	return reservations, nil
}

// Migrate creates the reservations service schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&domain.Reservation{}); err != nil {
		return errors.ErrDatabase.WithError(err)
	}
	return nil
}
