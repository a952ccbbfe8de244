package dblib

import (
	"context"

	"github.com/iwat/caesarfile/internal/domain"
)

const allRuns = `-- name: AllRuns :many
SELECT
    id, mode, shift, input_path, output_path, bytes_processed,
    status, error, started_at, finished_at
FROM run
ORDER BY id
`

func (q *Queries) AllRuns(ctx context.Context) ([]*domain.Run, error) {
	rows, err := q.db.QueryContext(ctx, allRuns)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*domain.Run
	for rows.Next() {
		i, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createRun = `-- name: CreateRun :one
INSERT INTO run (
    mode, shift, input_path, output_path, bytes_processed,
    status, error, started_at, finished_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id
`

func (q *Queries) CreateRun(ctx context.Context, run *domain.Run) (*domain.Run, error) {
	row := q.db.QueryRowContext(ctx, createRun,
		run.Mode.String(),
		run.Shift,
		run.InputPath,
		run.OutputPath,
		run.BytesProcessed,
		string(run.Status),
		run.Error,
		run.StartedAt.UTC(),
		run.FinishedAt.UTC(),
	)
	created := *run
	if err := row.Scan(&created.ID); err != nil {
		return nil, err
	}
	return &created, nil
}

const countRunsByStatus = `-- name: CountRunsByStatus :one
SELECT COUNT(*) FROM run WHERE status = ?
`

func (q *Queries) CountRunsByStatus(ctx context.Context, status domain.RunStatus) (int64, error) {
	row := q.db.QueryRowContext(ctx, countRunsByStatus, string(status))
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countRuns = `-- name: CountRuns :one
SELECT COUNT(*) FROM run
`

func (q *Queries) CountRuns(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countRuns)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const deleteRunsByStatus = `-- name: DeleteRunsByStatus :exec
DELETE FROM run WHERE status = ?
`

func (q *Queries) DeleteRunsByStatus(ctx context.Context, status domain.RunStatus) error {
	_, err := q.db.ExecContext(ctx, deleteRunsByStatus, string(status))
	return err
}

const deleteAllRuns = `-- name: DeleteAllRuns :exec
DELETE FROM run
`

func (q *Queries) DeleteAllRuns(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllRuns)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*domain.Run, error) {
	var (
		i      domain.Run
		mode   string
		status string
	)
	if err := row.Scan(
		&i.ID,
		&mode,
		&i.Shift,
		&i.InputPath,
		&i.OutputPath,
		&i.BytesProcessed,
		&status,
		&i.Error,
		&i.StartedAt,
		&i.FinishedAt,
	); err != nil {
		return nil, err
	}
	parsed, err := domain.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	i.Mode = parsed
	i.Status = domain.RunStatus(status)
	return &i, nil
}
