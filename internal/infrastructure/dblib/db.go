package dblib

import (
	"context"
	"database/sql"
	"fmt"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

// Begin starts a transaction. The returned Queries must be finished with
// Commit or Rollback.
func (q *Queries) Begin(ctx context.Context) (*Queries, error) {
	db, ok := q.db.(*sql.DB)
	if !ok {
		return nil, fmt.Errorf("nested transactions are not supported")
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Queries{db: tx}, nil
}

func (q *Queries) Commit() error {
	return q.db.(*sql.Tx).Commit()
}

func (q *Queries) Rollback() error {
	return q.db.(*sql.Tx).Rollback()
}
