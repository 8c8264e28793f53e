package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ecomovil/platform/internal/users/domain"
	"github.com/ecomovil/platform/pkg/errors"
	"github.com/ecomovil/platform/pkg/logger"
)

type mockProfileRepository struct {
	mock.Mock
}

func (m *mockProfileRepository) Save(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *mockProfileRepository) FindByID(ctx context.Context, id int64) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if p := args.Get(0); p != nil {
		return p.(*domain.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepository) FindByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	args := m.Called(ctx, email)
	if p := args.Get(0); p != nil {
		return p.(*domain.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepository) FindByRuc(ctx context.Context, ruc string) (*domain.Profile, error) {
	args := m.Called(ctx, ruc)
	if p := args.Get(0); p != nil {
		return p.(*domain.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepository) FindByPlanID(ctx context.Context, planID int64) ([]domain.Profile, error) {
	args := m.Called(ctx, planID)
	if p := args.Get(0); p != nil {
		return p.([]domain.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepository) FindAll(ctx context.Context) ([]domain.Profile, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]domain.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

type stubPlanService struct {
	known map[int64]bool
}

func (s stubPlanService) PlanExists(ctx context.Context, planID int64) bool { return s.known[planID] }

func notFound(format string, args ...interface{}) error {
	return errors.ErrEntityNotFound.WithMessagef(format, args...)
}

func TestCreateProfileChecksPlanReference(t *testing.T) {
	repo := &mockProfileRepository{}
	repo.On("FindByUserID", mock.Anything, int64(7)).Return(nil, notFound("profile for user %d not found", 7))

	svc := NewProfileService(repo, stubPlanService{known: map[int64]bool{}}, logger.NewNoopLogger())
	planID := int64(5)

	_, err := svc.Create(context.Background(), CreateProfileCommand{
		UserID: 7, PlanID: &planID, FirstName: "Ada", LastName: "Lovelace",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
	assert.Contains(t, err.Error(), "plan with id 5")
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateProfileWithConfirmedPlan(t *testing.T) {
	repo := &mockProfileRepository{}
	repo.On("FindByUserID", mock.Anything, int64(7)).Return(nil, notFound("profile for user %d not found", 7))
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

	svc := NewProfileService(repo, stubPlanService{known: map[int64]bool{5: true}}, logger.NewNoopLogger())
	planID := int64(5)

	profile, err := svc.Create(context.Background(), CreateProfileCommand{
		UserID: 7, PlanID: &planID, FirstName: "Ada", LastName: "Lovelace",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", profile.FullName())
}

func TestCreateProfileWithoutPlanSkipsTheCheck(t *testing.T) {
	repo := &mockProfileRepository{}
	repo.On("FindByUserID", mock.Anything, int64(7)).Return(nil, notFound("profile for user %d not found", 7))
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

	// A plan service that knows nothing must not matter when no plan is set.
	svc := NewProfileService(repo, stubPlanService{known: map[int64]bool{}}, logger.NewNoopLogger())

	_, err := svc.Create(context.Background(), CreateProfileCommand{UserID: 7, FirstName: "Ada"})
	assert.NoError(t, err)
}

func TestListByPlanReturnsSubscribedProfiles(t *testing.T) {
	repo := &mockProfileRepository{}
	repo.On("FindByPlanID", mock.Anything, int64(5)).
		Return([]domain.Profile{{ID: 1, UserID: 7}, {ID: 2, UserID: 8}}, nil)

	svc := NewProfileService(repo, stubPlanService{}, logger.NewNoopLogger())
	profiles, err := svc.ListByPlan(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
}

func TestCreateProfileRejectsDuplicateUser(t *testing.T) {
	repo := &mockProfileRepository{}
	repo.On("FindByUserID", mock.Anything, int64(7)).Return(&domain.Profile{ID: 1, UserID: 7}, nil)

	svc := NewProfileService(repo, stubPlanService{}, logger.NewNoopLogger())
	_, err := svc.Create(context.Background(), CreateProfileCommand{UserID: 7, FirstName: "Ada"})
	assert.True(t, errors.Is(err, errors.ErrConflict))
}
