package seedscan

import "context"

// Connector establishes the single database connection used for a run.
type Connector interface {
	// Connect opens and verifies one connection.
	// The caller owns the returned connection and must Close it exactly once.
	Connect(ctx context.Context) (DBConn, error)
}
