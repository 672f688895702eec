package handlers

import (
	"context"

	"daftar/models"

	"github.com/google/uuid"
)

// Store is the persistence surface the handlers depend on.
// *database.DB implements it; tests substitute an in-memory fake.
type Store interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, name string, description *string) (*models.Project, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
	UpdateProject(ctx context.Context, projectID uuid.UUID, update models.ProjectUpdate) (*models.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error

	ListNotesByProject(ctx context.Context, projectID uuid.UUID) ([]models.Note, error)
	CreateNote(ctx context.Context, create models.NoteCreate) (*models.Note, error)
	UpdateNote(ctx context.Context, noteID uuid.UUID, update models.NoteUpdate) (*models.Note, error)
	DeleteNote(ctx context.Context, noteID uuid.UUID) error
	ReorderNotes(ctx context.Context, orders []models.NoteOrder) (int, error)
}
