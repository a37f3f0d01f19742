// Package entity defines the domain entities for the notes feature.
package entity

import (
	"time"

	authentity "notes_app/internal/feature/auth/domain/entity"
)

// Note represents a user-owned text note.
// Ownership is established at creation and never reassigned.
type Note struct {
	// ID is the unique identifier for the note.
	ID uint `gorm:"primaryKey"`

	// Title is the note's heading. Must not be blank.
	Title string `gorm:"size:255;not null"`

	// Body is the note's text content.
	Body string `gorm:"type:text;not null"`

	// UserID references the owning user.
	UserID uint `gorm:"index;not null"`

	// User carries the owning-user association so migration emits a
	// real foreign key. Removing a user removes their notes.
	User *authentity.User `gorm:"constraint:OnDelete:CASCADE"`

	// CreatedAt is the timestamp when the note was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the note was last edited.
	UpdatedAt time.Time
}
