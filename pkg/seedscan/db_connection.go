package seedscan

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBConn abstracts the operations the store needs from a single connection.
// *pgx.Conn satisfies it, as does pgxmock's connection mock.
//
// Thread-Safety: NOT safe for concurrent use, like the underlying *pgx.Conn.
type DBConn interface {
	// Exec executes a statement (SQL text or prepared statement name) without returning rows.
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)

	// Query executes a statement (SQL text or prepared statement name) returning rows.
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)

	// QueryRow executes a statement expected to return at most one row.
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row

	// Prepare creates a named server-side prepared statement.
	Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error)

	// Close releases the connection.
	Close(ctx context.Context) error
}

// compile-time check that the real driver connection fits the interface
var _ DBConn = (*pgx.Conn)(nil)
