package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a storefront account
type User struct {
	ID           int        `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Do not expose password hash in JSON responses
	Name         *string    `json:"name,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Address      *string    `json:"address,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	Role         string     `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
}

// UpdateProfileRequest carries the self-service profile fields.
// DateOfBirth is an ISO date string (YYYY-MM-DD); null or omitted clears the stored date.
type UpdateProfileRequest struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
}
