package domain

import "context"

// UserRepository is the persistence port for users. Implementations return
// errors.ErrEntityNotFound when a lookup misses.
type UserRepository interface {
	Save(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	FindAll(ctx context.Context) ([]User, error)
}

// RoleRepository is the persistence port for roles.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*Role, error)
	EnsureExists(ctx context.Context, name string) error
}
