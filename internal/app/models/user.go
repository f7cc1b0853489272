package models

import (
	"strings"
	"time"
)

// Role defines the user role type
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleRegistrar Role = "registrar"
	RoleStudent   Role = "student"
)

// NormalizeRole whitelists a requested role. Unknown or empty values fall back
// to RoleStudent.
func NormalizeRole(role string) Role {
	r := Role(strings.ToLower(strings.TrimSpace(role)))
	switch r {
	case RoleAdmin, RoleRegistrar, RoleStudent:
		return r
	default:
		return RoleStudent
	}
}

// User defines the user model based on the 'users' table.
// Manual accounts carry username+password; Google accounts carry GoogleID.
// The schema does not enforce the exclusivity, registration and federated
// provisioning do.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	FullName  string    `json:"fullname" db:"fullname" example:"Maria Santos"`           // Display name
	Username  string    `json:"username" db:"username" example:"msantos"`                // Login name, empty for Google-only accounts
	Password  string    `json:"-" db:"password"`                                         // bcrypt hash, excluded from JSON; empty for Google-only accounts
	Role      Role      `json:"role" db:"role" example:"registrar"`                      // User's role
	Email     string    `json:"email" db:"email" example:"maria@school.edu"`             // Email address, may be empty for manual accounts
	GoogleID  string    `json:"-" db:"google_id"`                                        // Google subject id, empty for manual accounts
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2025-06-01T08:00:00Z"` // Timestamp when the account was created
}
