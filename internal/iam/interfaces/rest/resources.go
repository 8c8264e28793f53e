// Package rest exposes the IAM REST endpoints.
package rest

import "github.com/ecomovil/platform/internal/iam/domain"

// SignUpResource is the sign-up request body.
type SignUpResource struct {
	Username string   `json:"username" binding:"required"`
	Password string   `json:"password" binding:"required"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// SignInResource is the sign-in request body.
type SignInResource struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResource is the public representation of a user.
type UserResource struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email,omitempty"`
	Roles    []string `json:"roles"`
}

// AuthenticatedUserResource is the sign-in response: the user identity plus
// the freshly issued bearer token.
type AuthenticatedUserResource struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

func userResourceFromEntity(user *domain.User) UserResource {
	return UserResource{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Roles:    user.RoleNames(),
	}
}
