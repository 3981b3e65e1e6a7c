// Package store owns every SQL statement issued against the seed table.
//
// All statements are parameterized; user-supplied text (generated row content
// and search queries) is only ever passed as bind arguments.
package store

import (
	"context"
	"fmt"

	"github.com/vvka-141/seedscan/pkg/seedscan"
)

// Store runs the table operations of a seed run over one borrowed connection.
// It never closes the connection; the caller that opened it does.
//
// Thread-Safety: NOT safe for concurrent use.
type Store struct {
	conn           seedscan.DBConn
	logger         seedscan.Logger
	insertPrepared bool
}

// New creates a Store over conn.
//
// Panics if any dependency is nil.
func New(conn seedscan.DBConn, logger seedscan.Logger) *Store {
	if conn == nil {
		panic("conn cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Store{conn: conn, logger: logger}
}

// EnsureSchema creates the seed table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	s.logger.Verbose("Ensuring table '%s' exists", seedscan.TableName)
	if _, err := s.conn.Exec(ctx, queryCreateTable); err != nil {
		return fmt.Errorf("create table %s: %w: %w", seedscan.TableName, seedscan.ErrExecutionFailed, err)
	}
	return nil
}

// PrepareInsert prepares the insert statement used by Insert.
// Failures wrap seedscan.ErrPrepareFailed.
func (s *Store) PrepareInsert(ctx context.Context) error {
	if _, err := s.conn.Prepare(ctx, stmtInsertRecord, queryInsertRecord); err != nil {
		return fmt.Errorf("%w: %w", seedscan.ErrPrepareFailed, err)
	}
	s.insertPrepared = true
	return nil
}

// Insert adds one record through the prepared insert statement.
// PrepareInsert must have succeeded first.
func (s *Store) Insert(ctx context.Context, rec seedscan.Record) error {
	if !s.insertPrepared {
		return fmt.Errorf("insert statement not prepared: %w", seedscan.ErrPrepareFailed)
	}
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}

	if _, err := s.conn.Exec(ctx, stmtInsertRecord, rec.Name, rec.Normal, rec.Success); err != nil {
		return fmt.Errorf("%w: %w", seedscan.ErrExecutionFailed, err)
	}
	return nil
}

// Search returns every row whose normal or success column contains query.
// An empty query matches all rows. Rows come back in the engine's order.
//
// A prepare failure wraps seedscan.ErrPrepareFailed; a failure while
// running the query or reading rows wraps seedscan.ErrExecutionFailed.
func (s *Store) Search(ctx context.Context, query string) ([]seedscan.Record, error) {
	if _, err := s.conn.Prepare(ctx, stmtSearchRecords, querySearchRecords); err != nil {
		return nil, fmt.Errorf("%w: %w", seedscan.ErrPrepareFailed, err)
	}

	pattern := LikePattern(query)
	s.logger.Verbose("Searching %s with pattern %q", seedscan.TableName, pattern)

	rows, err := s.conn.Query(ctx, stmtSearchRecords, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", seedscan.ErrExecutionFailed, err)
	}
	defer rows.Close()

	var records []seedscan.Record
	for rows.Next() {
		var rec seedscan.Record
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Normal, &rec.Success, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan row: %w", seedscan.ErrExecutionFailed, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", seedscan.ErrExecutionFailed, err)
	}

	return records, nil
}

// Count returns the number of rows in the seed table.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.conn.QueryRow(ctx, queryCountRecords).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", seedscan.ErrExecutionFailed, err)
	}
	return n, nil
}

// LikePattern wraps query for a substring LIKE match. Wildcards inside
// query keep their LIKE meaning.
func LikePattern(query string) string {
	return "%" + query + "%"
}
