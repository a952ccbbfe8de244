package dblib

import "context"

const schemaDefinition = `
CREATE TABLE IF NOT EXISTS run (
	id INTEGER PRIMARY KEY,
	mode TEXT NOT NULL,
	shift INTEGER NOT NULL,
	input_path TEXT NOT NULL,
	output_path TEXT NOT NULL,
	bytes_processed INTEGER NOT NULL,
	status TEXT NOT NULL,
	error TEXT NOT NULL DEFAULT '',
	started_at DATETIME NOT NULL,
	finished_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_run_status ON run (status);
`

func (q *Queries) InitializeDatabase(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, schemaDefinition)
	return err
}
