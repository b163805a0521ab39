package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and
// pgx.Tx. Accepting this interface instead of *pgxpool.Pool directly allows
// integration tests to pass a transaction that is rolled back after each
// test, giving free per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres stores the document as the single row of the trip_document table.
// The table's check constraint pins id = 1, so concurrent savers overwrite
// the same row. Last writer wins, matching the store contract.
type Postgres struct {
	db db
}

// NewPostgres constructs a Postgres store. In production pass *pgxpool.Pool;
// in tests pass a pgx.Tx for rollback isolation.
func NewPostgres(db db) *Postgres {
	return &Postgres{db: db}
}

// Load reads the document blob, or (nil, nil) when the row does not exist.
func (p *Postgres) Load(ctx context.Context) ([]byte, error) {
	const q = `SELECT doc FROM trip_document WHERE id = 1`

	var raw []byte
	if err := p.db.QueryRow(ctx, q).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("store.Postgres.Load: %w", err)
	}
	return raw, nil
}

// Save upserts the single document row.
func (p *Postgres) Save(ctx context.Context, raw []byte) error {
	const q = `
		INSERT INTO trip_document (id, doc)
		VALUES (1, @doc)
		ON CONFLICT (id) DO UPDATE
		SET doc = excluded.doc, updated_at = now()`

	if _, err := p.db.Exec(ctx, q, pgx.NamedArgs{"doc": raw}); err != nil {
		return fmt.Errorf("store.Postgres.Save: %w", err)
	}
	return nil
}
