// Package application holds the use cases of the reservations service.
package application

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ecomovil/platform/internal/reservations/domain"
	"github.com/ecomovil/platform/pkg/errors"
	"github.com/ecomovil/platform/pkg/logger"
	"github.com/ecomovil/platform/pkg/security"
)

// CreateReservationCommand carries the fields of a new booking.
type CreateReservationCommand struct {
	UserID    int64
	VehicleID int64
	StartDate time.Time
	EndDate   time.Time
}

// ReservationService implements the reservation use cases.
type ReservationService struct {
	reservations domain.ReservationRepository
	users        domain.UserService
	vehicles     domain.VehicleService
	log          logger.Logger
}

func NewReservationService(
	reservations domain.ReservationRepository,
	users domain.UserService,
	vehicles domain.VehicleService,
	log logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		users:        users,
		vehicles:     vehicles,
		log:          log.WithComponent("reservation_service"),
	}
}

// Create books a vehicle. Both the user profile and the vehicle listing must
// be confirmed by their owning services; an unconfirmed reference is a
// validation failure regardless of whether the remote entity is missing or
// the remote service is unreachable.
func (s *ReservationService) Create(ctx context.Context, cmd CreateReservationCommand) (*domain.Reservation, error) {
	if !cmd.EndDate.After(cmd.StartDate) {
		return nil, errors.ErrInvalidRequest.WithMessagef("end date must be after start date")
	}

	// The two lookups hit different services, so run them in parallel.
	var userOK, vehicleOK bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		userOK = s.users.UserExists(gctx, cmd.UserID)
		return nil
	})
	g.Go(func() error {
		vehicleOK = s.vehicles.VehicleExists(gctx, cmd.VehicleID)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, errors.ErrDatabase.WithError(err)
	}
	if !userOK {
		return nil, errors.ErrInvalidRequest.WithMessagef("user with id %d does not exist", cmd.UserID)
	}
	if !vehicleOK {
		return nil, errors.ErrInvalidRequest.WithMessagef("vehicle with id %d does not exist", cmd.VehicleID)
	}

	reservation := &domain.Reservation{
		UserID:    cmd.UserID,
		VehicleID: cmd.VehicleID,
		StartDate: cmd.StartDate,
		EndDate:   cmd.EndDate,
		Status:    domain.StatusPending,
	}
	if err := s.reservations.Save(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// UpdateStatus moves a booking to a new status. Only the booking owner or an
// administrator may change it.
func (s *ReservationService) UpdateStatus(ctx context.Context, principal security.Principal, id int64, status string) (*domain.Reservation, error) {
	if !domain.ValidStatus(status) {
		return nil, errors.ErrInvalidRequest.WithMessagef("unknown reservation status %q", status)
	}
	reservation, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeOwnerOrAdmin(principal, reservation); err != nil {
		return nil, err
	}

	reservation.Status = status
	if err := s.reservations.Save(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// Delete soft-deletes a booking by moving it to the deleted status. Only the
// booking owner or an administrator may delete it.
func (s *ReservationService) Delete(ctx context.Context, principal security.Principal, id int64) error {
	reservation, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeOwnerOrAdmin(principal, reservation); err != nil {
		return err
	}

	reservation.Status = domain.StatusDeleted
	return s.reservations.Save(ctx, reservation)
}

// GetByID returns one booking, visible to its owner or an administrator.
func (s *ReservationService) GetByID(ctx context.Context, principal security.Principal, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeOwnerOrAdmin(principal, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// ListByUser returns the bookings of one user, visible to that user or an
// administrator.
func (s *ReservationService) ListByUser(ctx context.Context, principal security.Principal, userID int64) ([]domain.Reservation, error) {
	if !principal.HasAuthority(security.RoleAdmin) {
		if principal.UserID == nil || *principal.UserID != userID {
			return nil, errors.ErrForbidden.WithMessagef("reservations of user %d are not visible", userID)
		}
	}
	return s.reservations.FindByUserID(ctx, userID)
}

// ListByVehicle returns the bookings of one vehicle. Admin only by route
// policy.
func (s *ReservationService) ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Reservation, error) {
	return s.reservations.FindByVehicleID(ctx, vehicleID)
}

// List returns every booking. Admin only by route policy.
func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.reservations.FindAll(ctx)
}

func (s *ReservationService) authorizeOwnerOrAdmin(principal security.Principal, reservation *domain.Reservation) error {
	if principal.HasAuthority(security.RoleAdmin) {
		return nil
	}
	if principal.UserID != nil && reservation.BelongsTo(*principal.UserID) {
		return nil
	}
	return errors.ErrForbidden.WithMessagef("reservation %d belongs to another user", reservation.ID)
}
