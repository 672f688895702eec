package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a named container grouping a user's research notes.
// Description is nullable; empty submissions are stored as NULL.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProjectRequest is the payload for creating a new project.
// Fields are validated and trimmed by the validation package, not
// by binding tags, so every route applies the same rule set.
type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// UpdateProjectRequest is a partial update; nil pointers mean the
// field was absent from the request and must be left untouched.
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ProjectUpdate carries validated partial-update fields.
// Description is applied only when HasDescription is set; a nil
// Description with the flag set clears the column.
type ProjectUpdate struct {
	Name           *string
	Description    *string
	HasDescription bool
}

// ProjectsResponse is the standard response format for project listings.
// Includes total count for potential pagination in the future.
type ProjectsResponse struct {
	Projects []Project `json:"projects"`
	Total    int       `json:"total"`
}
