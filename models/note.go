package models

import (
	"time"

	"github.com/google/uuid"
)

// NoteTab is one named content section within a note.
// Persisted verbatim inside the note's tabs JSONB column.
type NoteTab struct {
	Content   string    `json:"content"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

// Note is a titled unit of content belonging to one project,
// optionally split into named tabs. DisplayOrder persists the
// user-chosen sequence of notes within a project.
type Note struct {
	ID           uuid.UUID          `json:"id"`
	ProjectID    uuid.UUID          `json:"project_id"`
	Title        string             `json:"title"`
	Content      *string            `json:"content"`
	Tabs         map[string]NoteTab `json:"tabs,omitempty"`
	ActiveTab    *string            `json:"active_tab,omitempty"`
	DefaultTabs  []string           `json:"default_tabs,omitempty"`
	DisplayOrder int                `json:"display_order"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type CreateNoteRequest struct {
	Title       string              `json:"title"`
	Content     *string             `json:"content"`
	Tabs        *map[string]NoteTab `json:"tabs"`
	ActiveTab   *string             `json:"active_tab"`
	DefaultTabs *[]string           `json:"default_tabs"`
}

// UpdateNoteRequest is a partial update; nil pointers mean the field
// was absent from the request.
type UpdateNoteRequest struct {
	Title       *string             `json:"title"`
	Content     *string             `json:"content"`
	Tabs        *map[string]NoteTab `json:"tabs"`
	ActiveTab   *string             `json:"active_tab"`
	DefaultTabs *[]string           `json:"default_tabs"`
}

// NoteCreate carries validated fields for inserting a note.
// display_order is assigned by the store, not the caller.
type NoteCreate struct {
	ProjectID   uuid.UUID
	Title       string
	Content     *string
	Tabs        map[string]NoteTab
	ActiveTab   *string
	DefaultTabs []string
}

// NoteUpdate carries validated partial-update fields. A value is
// applied only when its Has flag is set; a nil value with the flag
// set clears the column.
type NoteUpdate struct {
	Title          *string
	Content        *string
	HasContent     bool
	Tabs           map[string]NoteTab
	HasTabs        bool
	ActiveTab      *string
	HasActiveTab   bool
	DefaultTabs    []string
	HasDefaultTabs bool
}

// NoteOrder is one validated (id, order) pair in a reorder batch.
type NoteOrder struct {
	ID    uuid.UUID
	Order int
}

// ReorderItem is the wire form of a reorder pair. Pointers let the
// handler reject items missing either field before any write happens.
type ReorderItem struct {
	ID    *uuid.UUID `json:"id"`
	Order *int       `json:"order"`
}

type ReorderRequest struct {
	NoteOrders []ReorderItem `json:"noteOrders"`
}

type NotesResponse struct {
	Notes []Note `json:"notes"`
	Total int    `json:"total"`
}
