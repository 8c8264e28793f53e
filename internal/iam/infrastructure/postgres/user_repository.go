// Package postgres implements the IAM repositories on GORM.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/ecomovil/platform/internal/iam/domain"
	"github.com/ecomovil/platform/pkg/errors"
	"github.com/ecomovil/platform/pkg/security"
)

// UserRepository is the GORM-backed user repository.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return errors.ErrDatabase.WithError(err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Preload("Roles").First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrEntityNotFound.WithMessagef("user with id %d not found", id)
		}
		return nil, errors.ErrDatabase.WithError(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Preload("Roles").Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrEntityNotFound.WithMessagef("user %q not found", username)
		}
		return nil, errors.ErrDatabase.WithError(err)
	}
	return &user, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, errors.ErrDatabase.WithError(err)
	}
	return count > 0, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Preload("Roles").Find(&users).Error; err != nil {
		return nil, errors.ErrDatabase.WithError(err)
	}
	return users, nil
}

// RoleRepository is the GORM-backed role repository.
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a role repository.
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	var role domain.Role
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrEntityNotFound.WithMessagef("role %q not found", name)
		}
		return nil, errors.ErrDatabase.WithError(err)
	}
	return &role, nil
}

func (r *RoleRepository) EnsureExists(ctx context.Context, name string) error {
	err := r.db.WithContext(ctx).Where(domain.Role{Name: name}).FirstOrCreate(&domain.Role{Name: name}).Error
	if err != nil {
		return errors.ErrDatabase.WithError(err)
	}
	return nil
}

// Migrate creates the IAM schema and seeds the platform roles.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&domain.Role{}, &domain.User{}); err != nil {
		return errors.ErrDatabase.WithError(err)
	}
	roles := NewRoleRepository(db)
	for _, name := range []string{security.RoleUser, security.RoleAdmin} {
		if err := roles.EnsureExists(ctx, name); err != nil {
			return err
		}
	}
	return nil
}
