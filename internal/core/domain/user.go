package domain

import "time"

// UserRole is one of the two static application roles.
type UserRole string

const (
	// RoleAdmin has full read/write access including user management.
	RoleAdmin UserRole = "admin"
	// RoleObserver has read-only access; every mutating route rejects it.
	RoleObserver UserRole = "observer"
)

// IsValid reports whether the role is one of the known roles.
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleObserver
}

// User represents an application user.
type User struct {
	UserID       string     `json:"userID"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	Timestamps
}
