// Package domain holds the IAM aggregates: users and their roles.
package domain

import "time"

// Role is a named authority grantable to users. The two platform roles are
// seeded at startup.
type Role struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:64;not null"`
}

// User is the IAM aggregate root. Password holds the bcrypt hash, never the
// plaintext.
type User struct {
	ID          int64  `gorm:"primaryKey"`
	Username    string `gorm:"uniqueIndex;size:128;not null"`
	Password    string `gorm:"size:128;not null"`
	Email       string `gorm:"size:256"`
	IsActive    bool   `gorm:"default:true"`
	LastLoginAt *time.Time
	Roles       []Role `gorm:"many2many:user_roles"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RoleNames returns the user's role names in declaration order.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// RecordLogin updates the last-login timestamp.
func (u *User) RecordLogin(at time.Time) {
	u.LastLoginAt = &at
}
