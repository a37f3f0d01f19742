// Package usecase implements the business logic for the notes feature.
package usecase

import "errors"

var (
	// ErrNoteNotFound is returned when a note is absent or not owned by the
	// caller. The two cases are deliberately indistinguishable so foreign
	// note ids cannot be enumerated.
	ErrNoteNotFound = errors.New("note not found")

	// ErrTitleRequired is returned when a note is saved with a blank title.
	ErrTitleRequired = errors.New("title required")
)
