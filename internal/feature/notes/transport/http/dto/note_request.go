// Package dto defines data transfer objects for the notes feature's HTTP transport layer.
package dto

// NoteReq represents the note form body used by both save and edit.
// The body field is named "note" in the form, matching the templates.
type NoteReq struct {
	Title string `form:"title" binding:"required"`
	Body  string `form:"note"`
}
