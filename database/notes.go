package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"daftar/models"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

// ListNotesByProject returns a project's notes in the user-chosen
// sequence: display_order ascending with created_at as the tiebreak.
func (db *DB) ListNotesByProject(ctx context.Context, projectID uuid.UUID) ([]models.Note, error) {
	query := `
		SELECT id, project_id, title, content, tabs, active_tab, default_tabs,
			display_order, created_at, updated_at
		FROM notes
		WHERE project_id = $1
		ORDER BY display_order ASC, created_at ASC
	`

	rows, err := db.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

// CreateNote inserts a note at the end of its project's sequence:
// display_order continues from the current maximum, starting at 0.
// A foreign-key violation on project_id surfaces as ErrNotFound.
func (db *DB) CreateNote(ctx context.Context, create models.NoteCreate) (*models.Note, error) {
	query := `
		INSERT INTO notes (project_id, title, content, tabs, active_tab, default_tabs, display_order)
		VALUES ($1, $2, $3, $4, $5, $6,
			(SELECT COALESCE(MAX(display_order) + 1, 0) FROM notes WHERE project_id = $1))
		RETURNING id, project_id, title, content, tabs, active_tab, default_tabs,
			display_order, created_at, updated_at
	`

	note, err := scanNote(db.Pool.QueryRow(ctx, query,
		create.ProjectID, create.Title, create.Content,
		create.Tabs, create.ActiveTab, create.DefaultTabs))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Info().
		Str("note", note.ID.String()).
		Str("project", note.ProjectID.String()).
		Int("display_order", note.DisplayOrder).
		Msg("created note")
	return note, nil
}

// UpdateNote applies a partial update. Absent fields are left
// untouched; updated_at is always refreshed.
func (db *DB) UpdateNote(ctx context.Context, noteID uuid.UUID, update models.NoteUpdate) (*models.Note, error) {
	ub := NewUpdateBuilder()
	ub.Set(columnUpdatedAt, time.Now())
	if update.Title != nil {
		ub.Set(columnTitle, *update.Title)
	}
	if update.HasContent {
		ub.Set(columnContent, update.Content)
	}
	if update.HasTabs {
		ub.Set(columnTabs, update.Tabs)
	}
	if update.HasActiveTab {
		ub.Set(columnActiveTab, update.ActiveTab)
	}
	if update.HasDefaultTabs {
		ub.Set(columnDefaultTabs, update.DefaultTabs)
	}

	query := fmt.Sprintf(`
		UPDATE notes
		%s
		WHERE id = $%d
		RETURNING id, project_id, title, content, tabs, active_tab, default_tabs,
			display_order, created_at, updated_at
	`, ub.SetClause(), ub.NextArgNum())

	args := append(ub.Args(), noteID)

	note, err := scanNote(db.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

func (db *DB) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	query := `DELETE FROM notes WHERE id = $1`

	result, err := db.Pool.Exec(ctx, query, noteID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	log.Info().Str("note", noteID.String()).Msg("deleted note")
	return nil
}

// Helper functions

func scanNote(row rowScanner) (*models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.ID,
		&note.ProjectID,
		&note.Title,
		&note.Content,
		&note.Tabs,
		&note.ActiveTab,
		&note.DefaultTabs,
		&note.DisplayOrder,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func scanNotes(rows rowsScanner) ([]models.Note, error) {
	notes := []models.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, *note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}

	return notes, nil
}
