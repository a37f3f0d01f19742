package usecase

import (
	"context"
	"strings"

	"notes_app/internal/feature/notes/domain/entity"
)

// NoteRepository abstracts the persistence layer for note entities.
// Every owned operation takes the (id, owner) pair; implementations must
// filter on both in the same statement, never on the id alone.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type NoteRepository interface {
	// Create persists a new note for the given owner.
	Create(ctx context.Context, note *entity.Note) error

	// ListByOwner retrieves all notes of one owner, newest first.
	ListByOwner(ctx context.Context, ownerID uint) ([]*entity.Note, error)

	// FindOwned retrieves the note matching both id and owner.
	// Returns ErrNoteNotFound when no row matches the pair.
	FindOwned(ctx context.Context, id, ownerID uint) (*entity.Note, error)

	// UpdateOwned sets title and body on the note matching both id and
	// owner. Ownership is re-verified inside the statement; when no row
	// matches the pair it returns ErrNoteNotFound.
	UpdateOwned(ctx context.Context, id, ownerID uint, title, body string) error

	// DeleteOwned removes the note matching both id and owner, with the
	// same re-verification rule as UpdateOwned.
	DeleteOwned(ctx context.Context, id, ownerID uint) error

	// FindByID retrieves a note by id alone. Only the public shared view
	// may use this path.
	FindByID(ctx context.Context, id uint) (*entity.Note, error)
}

// notesUsecase implements note CRUD with the ownership filter applied to
// every private operation.
type notesUsecase struct {
	notes NoteRepository
}

// NewNotesUsecase creates a new instance of notesUsecase.
func NewNotesUsecase(notes NoteRepository) *notesUsecase {
	return &notesUsecase{notes: notes}
}

// Create saves a new note owned by ownerID.
func (u *notesUsecase) Create(ctx context.Context, ownerID uint, title, body string) (*entity.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	note := &entity.Note{
		Title:  title,
		Body:   body,
		UserID: ownerID,
	}
	if err := u.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// ListByOwner returns the caller's notes, newest first.
func (u *notesUsecase) ListByOwner(ctx context.Context, ownerID uint) ([]*entity.Note, error) {
	return u.notes.ListByOwner(ctx, ownerID)
}

// GetOwned returns the note only if it belongs to ownerID.
// A foreign note yields the same ErrNoteNotFound as a nonexistent one.
func (u *notesUsecase) GetOwned(ctx context.Context, id, ownerID uint) (*entity.Note, error) {
	return u.notes.FindOwned(ctx, id, ownerID)
}

// UpdateOwned edits title and body of an owned note. The ownership
// reference itself is never reassigned.
func (u *notesUsecase) UpdateOwned(ctx context.Context, id, ownerID uint, title, body string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	return u.notes.UpdateOwned(ctx, id, ownerID, title, body)
}

// DeleteOwned removes an owned note.
func (u *notesUsecase) DeleteOwned(ctx context.Context, id, ownerID uint) error {
	return u.notes.DeleteOwned(ctx, id, ownerID)
}

// GetShared returns a note by id alone for the public shared view.
// It still reports ErrNoteNotFound for a nonexistent id.
func (u *notesUsecase) GetShared(ctx context.Context, id uint) (*entity.Note, error) {
	return u.notes.FindByID(ctx, id)
}
