package seedscan

import (
	"context"
	"io"
)

// Seeder runs the seed-and-search workflow against one database.
//
// Phase results are written to out as human-readable lines. Only a failed
// connection (or invalid configuration) is returned as an error; schema,
// fill and search failures are reported on out and recorded in the summary.
type Seeder interface {
	// Run connects, ensures the schema, fills, searches and disconnects.
	Run(ctx context.Context, config SeedConfig, out io.Writer) (*RunSummary, error)

	// SearchOnly connects, searches and disconnects.
	SearchOnly(ctx context.Context, config SeedConfig, out io.Writer) (*RunSummary, error)
}

// RunSummary records what each phase of a run achieved.
type RunSummary struct {
	SchemaReady  bool
	Inserted     int
	FailedInsert int
	PrepareError error
	Matches      int
	SearchError  error
}
