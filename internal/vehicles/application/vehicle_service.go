// Package application holds the use cases of the vehicles service.
package application

import (
	"context"

	"github.com/ecomovil/platform/internal/vehicles/domain"
	"github.com/ecomovil/platform/pkg/errors"
	"github.com/ecomovil/platform/pkg/logger"
	"github.com/ecomovil/platform/pkg/security"
)

// CreateVehicleCommand carries the fields of a new listing. OwnerID comes
// from the authenticated principal, never from the request body.
type CreateVehicleCommand struct {
	Type        string
	Name        string
	Year        int
	Review      string
	PriceRent   float64
	PriceSell   float64
	ImageURL    string
	Lat         float64
	Lng         float64
	Description string
	OwnerID     int64
}

// UpdateVehicleCommand carries the mutable listing fields.
type UpdateVehicleCommand struct {
	VehicleID   int64
	Type        string
	Name        string
	Year        int
	Review      string
	PriceRent   float64
	PriceSell   float64
	Available   bool
	ImageURL    string
	Lat         float64
	Lng         float64
	Description string
}

// VehicleService implements the vehicle use cases.
type VehicleService struct {
	vehicles domain.VehicleRepository
	log      logger.Logger
}

func NewVehicleService(vehicles domain.VehicleRepository, log logger.Logger) *VehicleService {
	return &VehicleService{
		vehicles: vehicles,
		log:      log.WithComponent("vehicle_service"),
	}
}

// Create registers a listing for the authenticated owner.
func (s *VehicleService) Create(ctx context.Context, cmd CreateVehicleCommand) (*domain.Vehicle, error) {
	if cmd.Name == "" {
		return nil, errors.ErrInvalidRequest.WithMessagef("vehicle name is required")
	}
	if cmd.OwnerID <= 0 {
		return nil, errors.ErrInvalidRequest.WithMessagef("owner id is required")
	}

	vehicle := &domain.Vehicle{
		Type:        cmd.Type,
		Name:        cmd.Name,
		Year:        cmd.Year,
		Review:      cmd.Review,
		PriceRent:   cmd.PriceRent,
		PriceSell:   cmd.PriceSell,
		Available:   true,
		ImageURL:    cmd.ImageURL,
		Lat:         cmd.Lat,
		Lng:         cmd.Lng,
		Description: cmd.Description,
		OwnerID:     cmd.OwnerID,
	}
	if err := s.vehicles.Save(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Update rewrites a listing. Only the owner or an administrator may update.
func (s *VehicleService) Update(ctx context.Context, principal security.Principal, cmd UpdateVehicleCommand) (*domain.Vehicle, error) {
	vehicle, err := s.vehicles.FindByID(ctx, cmd.VehicleID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeOwnerOrAdmin(principal, vehicle); err != nil {
		return nil, err
	}

	vehicle.Type = cmd.Type
	vehicle.Name = cmd.Name
	vehicle.Year = cmd.Year
	vehicle.Review = cmd.Review
	vehicle.PriceRent = cmd.PriceRent
	vehicle.PriceSell = cmd.PriceSell
	vehicle.Available = cmd.Available
	vehicle.ImageURL = cmd.ImageURL
	vehicle.Lat = cmd.Lat
	vehicle.Lng = cmd.Lng
	vehicle.Description = cmd.Description
	if err := s.vehicles.Save(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Delete removes a listing. Route-level policy already restricts this to
// administrators; the existence check still yields a proper 404.
func (s *VehicleService) Delete(ctx context.Context, id int64) error {
	if _, err := s.vehicles.FindByID(ctx, id); err != nil {
		return err
	}
	return s.vehicles.Delete(ctx, id)
}

func (s *VehicleService) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return s.vehicles.FindByID(ctx, id)
}

// GetForUser returns one listing, visible to its owner or an administrator.
// The unauthenticated public lookup uses GetByID instead.
func (s *VehicleService) GetForUser(ctx context.Context, principal security.Principal, id int64) (*domain.Vehicle, error) {
	vehicle, err := s.vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeOwnerOrAdmin(principal, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) ListByType(ctx context.Context, vehicleType string) ([]domain.Vehicle, error) {
	if vehicleType == "" {
		return nil, errors.ErrInvalidRequest.WithMessagef("vehicle type is required")
	}
	return s.vehicles.FindByType(ctx, vehicleType)
}

func (s *VehicleService) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Vehicle, error) {
	return s.vehicles.FindByOwnerID(ctx, ownerID)
}

func (s *VehicleService) ListAvailable(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicles.FindAvailable(ctx)
}

func (s *VehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicles.FindAll(ctx)
}

func (s *VehicleService) authorizeOwnerOrAdmin(principal security.Principal, vehicle *domain.Vehicle) error {
	if principal.HasAuthority(security.RoleAdmin) {
		return nil
	}
	if principal.UserID != nil && vehicle.OwnedBy(*principal.UserID) {
		return nil
	}
	return errors.ErrForbidden.WithMessagef("vehicle %d belongs to another user", vehicle.ID)
}
