// Package application implements the IAM command and query services:
// sign-up, sign-in with token issuance, and user queries.
package application

import (
	"context"
	"time"

	"github.com/ecomovil/platform/internal/iam/domain"
	"github.com/ecomovil/platform/internal/infrastructure/events"
	"github.com/ecomovil/platform/pkg/errors"
	"github.com/ecomovil/platform/pkg/logger"
	"github.com/ecomovil/platform/pkg/security"
)

// SignUpCommand carries the sign-up request data. Roles may be empty, in
// which case the default user role is assigned.
type SignUpCommand struct {
	Username string
	Password string
	Email    string
	Roles    []string
}

// SignInCommand carries the sign-in credentials.
type SignInCommand struct {
	Username string
	Password string
}

// HashingService is the pluggable password hashing capability.
type HashingService interface {
	Encode(password string) (string, error)
	Matches(password, encoded string) bool
}

// UserService handles the IAM commands and queries.
type UserService struct {
	users     domain.UserRepository
	roles     domain.RoleRepository
	hashing   HashingService
	issuer    *security.Issuer
	publisher events.Publisher
	log       logger.Logger
}

// NewUserService wires the IAM application service.
func NewUserService(
	users domain.UserRepository,
	roles domain.RoleRepository,
	hashing HashingService,
	issuer *security.Issuer,
	publisher events.Publisher,
	log logger.Logger,
) *UserService {
	return &UserService{
		users:     users,
		roles:     roles,
		hashing:   hashing,
		issuer:    issuer,
		publisher: publisher,
		log:       log.WithComponent("user_service"),
	}
}

// SignUp registers a new user. The username must be free; unknown role names
// are rejected; an empty role list means the default user role.
func (s *UserService) SignUp(ctx context.Context, cmd SignUpCommand) (*domain.User, error) {
	taken, err := s.users.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.ErrUsernameTaken
	}

	roleNames := cmd.Roles
	if len(roleNames) == 0 {
		roleNames = []string{security.RoleUser}
	}

	roles := make([]domain.Role, 0, len(roleNames))
	for _, name := range roleNames {
		role, err := s.roles.FindByName(ctx, name)
		if err != nil {
			if errors.Is(err, errors.ErrEntityNotFound) {
				return nil, errors.ErrInvalidRequest.WithMessagef("role not found: %s", name)
			}
			return nil, err
		}
		roles = append(roles, *role)
	}

	hashed, err := s.hashing.Encode(cmd.Password)
	if err != nil {
		return nil, errors.ErrDatabase.WithError(err)
	}

	user := &domain.User{
		Username: cmd.Username,
		Password: hashed,
		Email:    cmd.Email,
		IsActive: true,
		Roles:    roles,
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	// A broker outage must not fail the registration itself.
	if err := s.publisher.PublishUserRegistered(ctx, user.ID, user.Username); err != nil {
		s.log.Warn(ctx, "failed to publish user registered event", logger.Fields{"username": user.Username})
	}

	s.log.Info(ctx, "user registered", logger.Fields{"username": user.Username})
	return user, nil
}

// SignIn authenticates a user and issues a bearer token carrying the
// username, the role set, and the user id.
func (s *UserService) SignIn(ctx context.Context, cmd SignInCommand) (*domain.User, string, error) {
	user, err := s.users.FindByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.Is(err, errors.ErrEntityNotFound) {
			return nil, "", errors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !user.IsActive {
		return nil, "", errors.ErrAccountDeactivated
	}

	if !s.hashing.Matches(cmd.Password, user.Password) {
		return nil, "", errors.ErrInvalidCredentials
	}

	user.RecordLogin(time.Now())
	if err := s.users.Save(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.issuer.IssueForUser(user.Username, user.RoleNames(), user.ID)
	if err != nil {
		return nil, "", err
	}

	if err := s.publisher.PublishUserAuthenticated(ctx, user.ID, user.Username); err != nil {
		s.log.Warn(ctx, "failed to publish user authenticated event", logger.Fields{"username": user.Username})
	}

	s.log.Info(ctx, "user authenticated", logger.Fields{"username": user.Username})
	return user, token, nil
}

// GetByID returns one user.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// GetByUsername returns one user by name.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

// List returns all users. The admin-only route uses it.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}
