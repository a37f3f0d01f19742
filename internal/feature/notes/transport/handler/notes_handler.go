// Package handler provides the HTTP handlers for the notes feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"notes_app/internal/feature/auth/transport/middleware"
	"notes_app/internal/feature/notes/domain/entity"
	"notes_app/internal/feature/notes/transport/http/dto"
	"notes_app/internal/feature/notes/usecase"
)

// sharedOwnerLabel replaces the owner's username on the public shared view.
const sharedOwnerLabel = "Shared note"

// NotesUsecase defines the note operations used by the handlers.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type NotesUsecase interface {
	Create(ctx context.Context, ownerID uint, title, body string) (*entity.Note, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*entity.Note, error)
	GetOwned(ctx context.Context, id, ownerID uint) (*entity.Note, error)
	UpdateOwned(ctx context.Context, id, ownerID uint, title, body string) error
	DeleteOwned(ctx context.Context, id, ownerID uint) error
	GetShared(ctx context.Context, id uint) (*entity.Note, error)
}

// NotesHandler handles the note routes and the home page.
type NotesHandler struct {
	notes NotesUsecase
}

// NewNotesHandler creates a new instance of NotesHandler.
func NewNotesHandler(notes NotesUsecase) *NotesHandler {
	return &NotesHandler{notes: notes}
}

// Home renders the home page for the authenticated user.
func (h *NotesHandler) Home(c *gin.Context) {
	username, _ := middleware.Username(c)
	c.HTML(http.StatusOK, "home.html", gin.H{
		"title":    "Notes",
		"username": username,
	})
}

// ShowCreate renders the note creation form.
func (h *NotesHandler) ShowCreate(c *gin.Context) {
	c.HTML(http.StatusOK, "note_create.html", gin.H{"title": "New note"})
}

// Save creates a note owned by the caller and redirects to the overview.
func (h *NotesHandler) Save(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		h.renderError(c, http.StatusInternalServerError)
		return
	}

	var req dto.NoteReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("note save validation failed", "error", err, "remote_addr", c.ClientIP())
		c.Redirect(http.StatusFound, "/note/create")
		return
	}

	note, err := h.notes.Create(c.Request.Context(), ownerID, req.Title, req.Body)
	if err != nil {
		if errors.Is(err, usecase.ErrTitleRequired) {
			c.Redirect(http.StatusFound, "/note/create")
			return
		}
		slog.Error("note save failed", "error", err, "user_id", ownerID, "remote_addr", c.ClientIP())
		h.renderError(c, http.StatusInternalServerError)
		return
	}

	slog.Info("note created", "note_id", note.ID, "user_id", ownerID)
	c.Redirect(http.StatusFound, "/note/overview")
}

// Overview lists the caller's notes, newest first.
func (h *NotesHandler) Overview(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		h.renderError(c, http.StatusInternalServerError)
		return
	}

	notes, err := h.notes.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		slog.Error("note overview failed", "error", err, "user_id", ownerID)
		h.renderError(c, http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "note_overview.html", gin.H{
		"title": "My notes",
		"notes": notes,
	})
}

// Show renders a single note, only if the caller owns it.
func (h *NotesHandler) Show(c *gin.Context) {
	h.renderOwned(c, "note_show.html")
}

// ShowEdit renders the edit form for an owned note.
func (h *NotesHandler) ShowEdit(c *gin.Context) {
	h.renderOwned(c, "note_edit.html")
}

// Edit updates title and body of an owned note. Ownership is re-verified
// inside the update itself, not only at the earlier form render.
func (h *NotesHandler) Edit(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		h.renderError(c, http.StatusInternalServerError)
		return
	}

	id, ok := h.noteID(c)
	if !ok {
		return
	}

	var req dto.NoteReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("note edit validation failed", "error", err, "remote_addr", c.ClientIP())
		c.Redirect(http.StatusFound, "/note/edit/"+strconv.FormatUint(uint64(id), 10))
		return
	}

	if err := h.notes.UpdateOwned(c.Request.Context(), id, ownerID, req.Title, req.Body); err != nil {
		if errors.Is(err, usecase.ErrTitleRequired) {
			c.Redirect(http.StatusFound, "/note/edit/"+strconv.FormatUint(uint64(id), 10))
			return
		}
		h.mapNoteError(c, err, "note edit", id, ownerID)
		return
	}

	slog.Info("note updated", "note_id", id, "user_id", ownerID)
	c.Redirect(http.StatusFound, "/note/overview")
}

// Delete removes an owned note.
func (h *NotesHandler) Delete(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		h.renderError(c, http.StatusInternalServerError)
		return
	}

	id, ok := h.noteID(c)
	if !ok {
		return
	}

	if err := h.notes.DeleteOwned(c.Request.Context(), id, ownerID); err != nil {
		h.mapNoteError(c, err, "note delete", id, ownerID)
		return
	}

	slog.Info("note deleted", "note_id", id, "user_id", ownerID)
	c.Redirect(http.StatusFound, "/note/overview")
}

// Shared renders a note without the owner's identity. This route is the
// one deliberate exemption from the ownership filter; it still 404s on a
// nonexistent id.
func (h *NotesHandler) Shared(c *gin.Context) {
	id, ok := h.noteID(c)
	if !ok {
		return
	}

	note, err := h.notes.GetShared(c.Request.Context(), id)
	if err != nil {
		h.mapNoteError(c, err, "note shared", id, 0)
		return
	}

	c.HTML(http.StatusOK, "note_shared.html", gin.H{
		"title": note.Title,
		"note":  note,
		"owner": sharedOwnerLabel,
	})
}

// renderOwned fetches an owned note and renders it with the given template.
func (h *NotesHandler) renderOwned(c *gin.Context, template string) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		h.renderError(c, http.StatusInternalServerError)
		return
	}

	id, ok := h.noteID(c)
	if !ok {
		return
	}

	note, err := h.notes.GetOwned(c.Request.Context(), id, ownerID)
	if err != nil {
		h.mapNoteError(c, err, "note show", id, ownerID)
		return
	}

	username, _ := middleware.Username(c)
	c.HTML(http.StatusOK, template, gin.H{
		"title":    note.Title,
		"note":     note,
		"username": username,
	})
}

// noteID parses the :id path parameter. A malformed id renders the 404
// view directly: it can never name an existing note.
func (h *NotesHandler) noteID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.renderError(c, http.StatusNotFound)
		return 0, false
	}
	return uint(id), true
}

// mapNoteError converts a usecase error into the matching error view.
func (h *NotesHandler) mapNoteError(c *gin.Context, err error, op string, id, ownerID uint) {
	if errors.Is(err, usecase.ErrNoteNotFound) {
		h.renderError(c, http.StatusNotFound)
		return
	}
	slog.Error(op+" failed", "error", err, "note_id", id, "user_id", ownerID)
	h.renderError(c, http.StatusInternalServerError)
}

// renderError renders the generic error view with the given status.
func (h *NotesHandler) renderError(c *gin.Context, status int) {
	c.HTML(status, "error.html", gin.H{"title": "Error", "status": status})
}
