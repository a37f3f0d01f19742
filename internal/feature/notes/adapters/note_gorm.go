// Package adapters provides repository implementations for the notes feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"notes_app/internal/feature/notes/domain/entity"
	"notes_app/internal/feature/notes/usecase"
)

// noteGorm is a GORM implementation of the NoteRepository interface.
// All owned queries filter on (id, user_id) in one statement so a foreign
// note is indistinguishable from a missing one.
type noteGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure noteGorm implements NoteRepository.
var _ usecase.NoteRepository = (*noteGorm)(nil)

// NewNoteGorm creates a new instance of noteGorm with the given gorm.DB connection.
func NewNoteGorm(db *gorm.DB) *noteGorm {
	return &noteGorm{db: db}
}

// Create adds a note to the database.
func (r *noteGorm) Create(ctx context.Context, note *entity.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

// ListByOwner retrieves all notes of one owner, newest first.
func (r *noteGorm) ListByOwner(ctx context.Context, ownerID uint) ([]*entity.Note, error) {
	var notes []*entity.Note
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// FindOwned retrieves the note matching both id and owner.
func (r *noteGorm) FindOwned(ctx context.Context, id, ownerID uint) (*entity.Note, error) {
	var note entity.Note
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNoteNotFound
		}
		return nil, err
	}
	return &note, nil
}

// UpdateOwned sets title and body on the note matching both id and owner.
// RowsAffected == 0 means the note is missing or foreign; both collapse
// to ErrNoteNotFound.
func (r *noteGorm) UpdateOwned(ctx context.Context, id, ownerID uint, title, body string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Note{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(map[string]interface{}{"title": title, "body": body})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrNoteNotFound
	}
	return nil
}

// DeleteOwned removes the note matching both id and owner.
func (r *noteGorm) DeleteOwned(ctx context.Context, id, ownerID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&entity.Note{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrNoteNotFound
	}
	return nil
}

// FindByID retrieves a note by id alone, for the public shared view.
func (r *noteGorm) FindByID(ctx context.Context, id uint) (*entity.Note, error) {
	var note entity.Note
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNoteNotFound
		}
		return nil, err
	}
	return &note, nil
}
