package application

import (
	"context"
	"fmt"

	"github.com/iwat/caesarfile/internal/domain"
)

func (app *App) ListRuns(ctx context.Context) ([]*domain.Run, error) {
	if app.journal == nil {
		return nil, ErrJournalDisabled
	}
	runs, err := app.journal.AllRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// PruneRuns deletes failed runs from the journal, or every run when all is
// set, and returns how many were removed.
func (app *App) PruneRuns(ctx context.Context, all bool) (int64, error) {
	if app.journal == nil {
		return 0, ErrJournalDisabled
	}

	tx, err := app.journal.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int64
	if all {
		count, err = tx.CountRuns(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count runs: %w", err)
		}
		err = tx.DeleteAllRuns(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to delete runs: %w", err)
		}
	} else {
		count, err = tx.CountRunsByStatus(ctx, domain.RunFailed)
		if err != nil {
			return 0, fmt.Errorf("failed to count failed runs: %w", err)
		}
		err = tx.DeleteRunsByStatus(ctx, domain.RunFailed)
		if err != nil {
			return 0, fmt.Errorf("failed to delete failed runs: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return count, nil
}
