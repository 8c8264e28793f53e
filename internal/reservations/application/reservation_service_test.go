package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ecomovil/platform/internal/reservations/domain"
	"github.com/ecomovil/platform/pkg/errors"
	"github.com/ecomovil/platform/pkg/logger"
	"github.com/ecomovil/platform/pkg/security"
)

type mockReservationRepository struct {
	mock.Mock
}

func (m *mockReservationRepository) Save(ctx context.Context, reservation *domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *mockReservationRepository) FindByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.Reservation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReservationRepository) FindByUserID(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, userID)
	if r := args.Get(0); r != nil {
		return r.([]domain.Reservation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReservationRepository) FindByVehicleID(ctx context.Context, vehicleID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, vehicleID)
	if r := args.Get(0); r != nil {
		return r.([]domain.Reservation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReservationRepository) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if r := args.Get(0); r != nil {
		return r.([]domain.Reservation), args.Error(1)
	}
	return nil, args.Error(1)
}

// stubResolver answers existence checks from fixed sets, standing in for the
// cross-service callers.
type stubResolver struct {
	users    map[int64]bool
	vehicles map[int64]bool
}

func (s stubResolver) UserExists(ctx context.Context, userID int64) bool { return s.users[userID] }
func (s stubResolver) VehicleExists(ctx context.Context, vehicleID int64) bool {
	return s.vehicles[vehicleID]
}

func datesFor(t *testing.T) (time.Time, time.Time) {
	t.Helper()
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	return start, start.Add(48 * time.Hour)
}

func principalFor(userID int64, authorities ...string) security.Principal {
	return security.Principal{Username: "someone", UserID: &userID, Authorities: authorities}
}

func TestCreateValidatesBothReferences(t *testing.T) {
	repo := &mockReservationRepository{}
	resolver := stubResolver{users: map[int64]bool{7: true}, vehicles: map[int64]bool{3: true}}
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Reservation")).Return(nil)

	svc := NewReservationService(repo, resolver, resolver, logger.NewNoopLogger())
	start, end := datesFor(t)

	reservation, err := svc.Create(context.Background(), CreateReservationCommand{
		UserID: 7, VehicleID: 3, StartDate: start, EndDate: end,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, reservation.Status)
	repo.AssertCalled(t, "Save", mock.Anything, mock.AnythingOfType("*domain.Reservation"))
}

func TestCreateRejectsUnconfirmedUser(t *testing.T) {
	repo := &mockReservationRepository{}
	resolver := stubResolver{users: map[int64]bool{}, vehicles: map[int64]bool{3: true}}

	svc := NewReservationService(repo, resolver, resolver, logger.NewNoopLogger())
	start, end := datesFor(t)

	_, err := svc.Create(context.Background(), CreateReservationCommand{
		UserID: 99, VehicleID: 3, StartDate: start, EndDate: end,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
	assert.Contains(t, err.Error(), "user with id 99")
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateRejectsUnconfirmedVehicle(t *testing.T) {
	repo := &mockReservationRepository{}
	resolver := stubResolver{users: map[int64]bool{7: true}, vehicles: map[int64]bool{}}

	svc := NewReservationService(repo, resolver, resolver, logger.NewNoopLogger())
	start, end := datesFor(t)

	_, err := svc.Create(context.Background(), CreateReservationCommand{
		UserID: 7, VehicleID: 55, StartDate: start, EndDate: end,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vehicle with id 55")
}

func TestCreateRejectsInvertedDates(t *testing.T) {
	repo := &mockReservationRepository{}
	resolver := stubResolver{users: map[int64]bool{7: true}, vehicles: map[int64]bool{3: true}}

	svc := NewReservationService(repo, resolver, resolver, logger.NewNoopLogger())
	start, end := datesFor(t)

	_, err := svc.Create(context.Background(), CreateReservationCommand{
		UserID: 7, VehicleID: 3, StartDate: end, EndDate: start,
	})
	assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
}

func TestGetByIDEnforcesOwnerOrAdmin(t *testing.T) {
	repo := &mockReservationRepository{}
	resolver := stubResolver{}
	stored := &domain.Reservation{ID: 10, UserID: 7, VehicleID: 3, Status: domain.StatusPending}
	repo.On("FindByID", mock.Anything, int64(10)).Return(stored, nil)

	svc := NewReservationService(repo, resolver, resolver, logger.NewNoopLogger())
	ctx := context.Background()

	_, err := svc.GetByID(ctx, principalFor(7, security.RoleUser), 10)
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, principalFor(8, security.RoleUser), 10)
	assert.True(t, errors.Is(err, errors.ErrForbidden))

	_, err = svc.GetByID(ctx, principalFor(8, security.RoleAdmin), 10)
	assert.NoError(t, err)
}

func TestUpdateStatusValidatesStatus(t *testing.T) {
	repo := &mockReservationRepository{}
	resolver := stubResolver{}

	svc := NewReservationService(repo, resolver, resolver, logger.NewNoopLogger())
	_, err := svc.UpdateStatus(context.Background(), principalFor(7, security.RoleUser), 10, "SHIPPED")
	assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
}

func TestUpdateStatusByOwner(t *testing.T) {
	repo := &mockReservationRepository{}
	resolver := stubResolver{}
	stored := &domain.Reservation{ID: 10, UserID: 7, Status: domain.StatusPending}
	repo.On("FindByID", mock.Anything, int64(10)).Return(stored, nil)
	repo.On("Save", mock.Anything, stored).Return(nil)

	svc := NewReservationService(repo, resolver, resolver, logger.NewNoopLogger())
	reservation, err := svc.UpdateStatus(context.Background(), principalFor(7, security.RoleUser), 10, domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, reservation.Status)
}

func TestUpdateStatusRejectsDeletedStatus(t *testing.T) {
	repo := &mockReservationRepository{}
	resolver := stubResolver{}

	svc := NewReservationService(repo, resolver, resolver, logger.NewNoopLogger())
	_, err := svc.UpdateStatus(context.Background(), principalFor(7, security.RoleUser), 10, domain.StatusDeleted)
	assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDeleteMarksReservationDeleted(t *testing.T) {
	repo := &mockReservationRepository{}
	resolver := stubResolver{}
	stored := &domain.Reservation{ID: 10, UserID: 7, Status: domain.StatusConfirmed}
	repo.On("FindByID", mock.Anything, int64(10)).Return(stored, nil)
	repo.On("Save", mock.Anything, stored).Return(nil)

	svc := NewReservationService(repo, resolver, resolver, logger.NewNoopLogger())
	err := svc.Delete(context.Background(), principalFor(7, security.RoleUser), 10)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDeleted, stored.Status)
}

func TestDeleteEnforcesOwnerOrAdmin(t *testing.T) {
	repo := &mockReservationRepository{}
	resolver := stubResolver{}
	stored := &domain.Reservation{ID: 10, UserID: 7, Status: domain.StatusPending}
	repo.On("FindByID", mock.Anything, int64(10)).Return(stored, nil)
	repo.On("Save", mock.Anything, stored).Return(nil)

	svc := NewReservationService(repo, resolver, resolver, logger.NewNoopLogger())
	ctx := context.Background()

	err := svc.Delete(ctx, principalFor(8, security.RoleUser), 10)
	assert.True(t, errors.Is(err, errors.ErrForbidden))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)

	err = svc.Delete(ctx, principalFor(8, security.RoleAdmin), 10)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusDeleted, stored.Status)
}

func TestListByUserVisibility(t *testing.T) {
	repo := &mockReservationRepository{}
	resolver := stubResolver{}
	repo.On("FindByUserID", mock.Anything, int64(7)).Return([]domain.Reservation{{ID: 1, UserID: 7}}, nil)

	svc := NewReservationService(repo, resolver, resolver, logger.NewNoopLogger())
	ctx := context.Background()

	own, err := svc.ListByUser(ctx, principalFor(7, security.RoleUser), 7)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	_, err = svc.ListByUser(ctx, principalFor(8, security.RoleUser), 7)
	assert.True(t, errors.Is(err, errors.ErrForbidden))

	asAdmin, err := svc.ListByUser(ctx, principalFor(8, security.RoleAdmin), 7)
	require.NoError(t, err)
	assert.Len(t, asAdmin, 1)
}
