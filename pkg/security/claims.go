// Package security implements the authentication core shared by every
// EcoMovil service: the token codec, issuer and verifier, the per-request
// bearer authentication filter, and the role-based authorization gates.
// Services verify tokens independently; there is no shared session store.
package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ecomovil/platform/pkg/errors"
)

// Claims is the claim set carried inside a signed token. Roles is mirrored
// into Authorities so gates that read either claim name see the same values.
type Claims struct {
	Roles       []string `json:"roles,omitempty"`
	Authorities []string `json:"authorities,omitempty"`
	UserID      *int64   `json:"userId,omitempty"`
	jwt.RegisteredClaims
}

// NewClaims builds a claim set for the given subject. Roles may be nil, in
// which case the token carries no role claim at all and resolves to zero
// authorities on the consuming side. userID is optional for the same reason.
func NewClaims(subject string, roles []string, userID *int64, issuedAt time.Time, expiresAt time.Time) *Claims {
	c := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: userID,
	}
	if len(roles) > 0 {
		c.Roles = roles
		c.Authorities = roles
	}
	return c
}

// Validate enforces the claim set invariants: non-empty subject and an
// expiry strictly after issuance.
func (c *Claims) Validate() error {
	if c.Subject == "" {
		return errors.ErrInvalidRequest.WithMessagef("claim set has an empty subject")
	}
	if c.IssuedAt == nil || c.ExpiresAt == nil || !c.ExpiresAt.Time.After(c.IssuedAt.Time) {
		return errors.ErrInvalidRequest.WithMessagef("claim set expiry must be after issuance")
	}
	return nil
}
