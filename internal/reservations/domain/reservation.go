// Package domain holds the reservation aggregate of the reservations service.
package domain

import (
	"context"
	"time"
)

// Reservation statuses. Deletion is a soft delete: the booking is kept and
// moved to StatusDeleted.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"
	StatusDeleted   = "DELETED"
)

// Reservation is a vehicle rental booking. UserID and VehicleID reference
// aggregates owned by the users and vehicles services; they are validated
// through the cross-service ports at creation time.
type Reservation struct {
	ID        int64 `gorm:"primaryKey"`
	UserID    int64 `gorm:"index"`
	VehicleID int64 `gorm:"index"`
	StartDate time.Time
	EndDate   time.Time
	Status    string `gorm:"default:PENDING"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BelongsTo reports whether the booking was made by the given user.
func (r *Reservation) BelongsTo(userID int64) bool {
	return r.UserID == userID
}

// ValidStatus reports whether s is a settable lifecycle status. StatusDeleted
// is excluded: only the delete operation moves a booking there.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ReservationRepository is the persistence port of the reservations service.
type ReservationRepository interface {
	Save(ctx context.Context, reservation *Reservation) error
	FindByID(ctx context.Context, id int64) (*Reservation, error)
	FindByUserID(ctx context.Context, userID int64) ([]Reservation, error)
	FindByVehicleID(ctx context.Context, vehicleID int64) ([]Reservation, error)
	FindAll(ctx context.Context) ([]Reservation, error)
}

// UserService confirms user profiles against the users service. False means
// the profile could not be confirmed, whatever the cause.
type UserService interface {
	UserExists(ctx context.Context, userID int64) bool
}

// VehicleService confirms vehicle listings against the vehicles service.
type VehicleService interface {
	VehicleExists(ctx context.Context, vehicleID int64) bool
}
