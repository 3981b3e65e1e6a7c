package store

// SQL for the single table owned by the seed workflow.
// Keep statement text here so store.go stays free of inline SQL.

const (
	// queryCreateTable is idempotent; an existing table is left untouched.
	queryCreateTable = `
		CREATE TABLE IF NOT EXISTS test (
			id         SERIAL PRIMARY KEY,
			name       VARCHAR(50) NOT NULL,
			normal     TEXT NOT NULL,
			success    TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`

	// queryInsertRecord adds one row; id and created_at come from column defaults.
	// Parameters: $1 name, $2 normal, $3 success
	queryInsertRecord = `
		INSERT INTO test (name, normal, success)
		VALUES ($1, $2, $3)
	`

	// querySearchRecords matches a LIKE pattern against either text column.
	// Parameter $1: LIKE pattern, already wrapped in %
	querySearchRecords = `
		SELECT id, name, normal, success, created_at
		FROM test
		WHERE normal LIKE $1 OR success LIKE $1
	`

	queryCountRecords = `SELECT count(*) FROM test`
)

// Server-side prepared statement names.
const (
	stmtInsertRecord  = "seedscan_insert_record"
	stmtSearchRecords = "seedscan_search_records"
)
