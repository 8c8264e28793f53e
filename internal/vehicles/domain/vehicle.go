// Package domain holds the vehicle aggregate of the vehicles service.
package domain

import (
	"context"
	"time"
)

// Vehicle is a listed vehicle: an electric scooter or bike offered for rent
// or sale. OwnerID links the listing to the IAM account that created it.
type Vehicle struct {
	ID          int64 `gorm:"primaryKey"`
	Type        string
	Name        string
	Year        int
	Review      string
	PriceRent   float64
	PriceSell   float64
	Available   bool `gorm:"default:true"`
	ImageURL    string
	Lat         float64
	Lng         float64
	Description string
	OwnerID     int64 `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy reports whether the listing belongs to the given user.
func (v *Vehicle) OwnedBy(userID int64) bool {
	return v.OwnerID == userID
}

// VehicleRepository is the persistence port of the vehicles service.
type VehicleRepository interface {
	Save(ctx context.Context, vehicle *Vehicle) error
	FindByID(ctx context.Context, id int64) (*Vehicle, error)
	FindByOwnerID(ctx context.Context, ownerID int64) ([]Vehicle, error)
	FindByType(ctx context.Context, vehicleType string) ([]Vehicle, error)
	FindAvailable(ctx context.Context) ([]Vehicle, error)
	FindAll(ctx context.Context) ([]Vehicle, error)
	Delete(ctx context.Context, id int64) error
}
