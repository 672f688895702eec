package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"daftar/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReorderError reports the rows of a reorder batch that were not
// written. The batch is best-effort: rows that succeeded before or
// alongside the failures stay applied.
type ReorderError struct {
	FailedIDs []uuid.UUID
	Total     int
}

func (e *ReorderError) Error() string {
	return fmt.Sprintf("failed to update %d/%d note orders", len(e.FailedIDs), e.Total)
}

// ReorderNotes persists caller-assigned display_order values, one
// update per pair, issued concurrently. Order values are stored as
// given; no renumbering or gap-filling happens server-side. Returns
// the number of rows updated. A pair whose id matches no row counts
// as a failure; failures are collected into a ReorderError without
// rolling back the rest of the batch.
func (db *DB) ReorderNotes(ctx context.Context, orders []models.NoteOrder) (int, error) {
	if len(orders) == 0 {
		return 0, nil
	}

	start := time.Now()
	defer func() {
		log.Info().Dur("duration", time.Since(start)).Int("count", len(orders)).Msg("reordered notes")
	}()

	query := `
		UPDATE notes
		SET display_order = $1, updated_at = NOW()
		WHERE id = $2
	`

	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := []uuid.UUID{}

	for _, order := range orders {
		wg.Add(1)
		go func(order models.NoteOrder) {
			defer wg.Done()

			result, err := db.Pool.Exec(ctx, query, order.Order, order.ID)
			if err != nil {
				log.Error().Err(err).Str("note", order.ID.String()).Msg("failed to update note order")
			}
			if err != nil || result.RowsAffected() == 0 {
				mu.Lock()
				failed = append(failed, order.ID)
				mu.Unlock()
			}
		}(order)
	}
	wg.Wait()

	updated := len(orders) - len(failed)
	if len(failed) > 0 {
		return updated, &ReorderError{FailedIDs: failed, Total: len(orders)}
	}

	return updated, nil
}
