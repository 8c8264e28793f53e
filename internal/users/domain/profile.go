// Package domain holds the profile aggregate of the users service.
package domain

import (
	"context"
	"time"
)

// Profile is a rider or owner profile. UserID links the profile to the IAM
// account that owns it; PlanID references a subscription plan held by the
// plans service and may be unset.
type Profile struct {
	ID          int64  `gorm:"primaryKey"`
	UserID      int64  `gorm:"uniqueIndex"`
	PlanID      *int64 `gorm:"index"`
	FirstName   string
	LastName    string
	Email       string `gorm:"index"`
	PhoneNumber string
	Ruc         string `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName joins the first and last names for display.
func (p *Profile) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// ProfileRepository is the persistence port of the users service.
type ProfileRepository interface {
	Save(ctx context.Context, profile *Profile) error
	FindByID(ctx context.Context, id int64) (*Profile, error)
	FindByUserID(ctx context.Context, userID int64) (*Profile, error)
	FindByEmail(ctx context.Context, email string) (*Profile, error)
	FindByRuc(ctx context.Context, ruc string) (*Profile, error)
	FindByPlanID(ctx context.Context, planID int64) ([]Profile, error)
	FindAll(ctx context.Context) ([]Profile, error)
}

// PlanService checks subscription plans against the plans service. Ok reports
// whether the plan could be confirmed; callers treat false as unknown.
type PlanService interface {
	PlanExists(ctx context.Context, planID int64) bool
}
