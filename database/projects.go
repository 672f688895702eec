package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"daftar/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

func (db *DB) ListProjects(ctx context.Context) ([]models.Project, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC
	`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

func (db *DB) CreateProject(ctx context.Context, name string, description *string) (*models.Project, error) {
	query := `
		INSERT INTO projects (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at, updated_at
	`

	project, err := scanProject(db.Pool.QueryRow(ctx, query, name, description))
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	log.Info().Str("project", project.ID.String()).Str("name", project.Name).Msg("created project")
	return project, nil
}

func (db *DB) GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	project, err := scanProject(db.Pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

// UpdateProject applies a partial update. Absent fields are left
// untouched; updated_at is always refreshed.
func (db *DB) UpdateProject(ctx context.Context, projectID uuid.UUID, update models.ProjectUpdate) (*models.Project, error) {
	ub := NewUpdateBuilder()
	ub.Set(columnUpdatedAt, time.Now())
	if update.Name != nil {
		ub.Set(columnName, *update.Name)
	}
	if update.HasDescription {
		ub.Set(columnDescription, update.Description)
	}

	query := fmt.Sprintf(`
		UPDATE projects
		%s
		WHERE id = $%d
		RETURNING id, name, description, created_at, updated_at
	`, ub.SetClause(), ub.NextArgNum())

	args := append(ub.Args(), projectID)

	project, err := scanProject(db.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// DeleteProject removes a project. Its notes go with it via the
// ON DELETE CASCADE constraint on notes.project_id.
func (db *DB) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1`

	result, err := db.Pool.Exec(ctx, query, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	log.Info().Str("project", projectID.String()).Msg("deleted project")
	return nil
}

// Helper functions

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

type rowsScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanProjects(rows rowsScanner) ([]models.Project, error) {
	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}
