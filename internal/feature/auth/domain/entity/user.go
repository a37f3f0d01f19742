// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and profile data.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the login name used for authentication.
	// It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:64;not null"`

	// Email is the user's email address.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// FirstName and LastName are the user's display name.
	FirstName string `gorm:"size:64"`
	LastName  string `gorm:"size:64"`

	// Password is the bcrypt hash of the user's password.
	// This field never stores a plaintext password.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
