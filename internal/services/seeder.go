package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vvka-141/seedscan/internal/fakedata"
	"github.com/vvka-141/seedscan/internal/store"
	"github.com/vvka-141/seedscan/pkg/seedscan"
)

// closeTimeout bounds teardown so a cancelled run still releases its connection.
const closeTimeout = 5 * time.Second

// SeedService implements the Seeder interface.
// Thread-Safety: NOT safe for concurrent Run() calls on the same instance.
type SeedService struct {
	connectorFactory func(*seedscan.ConnectionConfig) (seedscan.Connector, error)
	textGen          seedscan.TextGenerator
	logger           seedscan.Logger
}

var _ seedscan.Seeder = (*SeedService)(nil)

// NewSeedService creates a new SeedService with all dependencies injected.
//
// Panics on nil dependencies.
func NewSeedService(
	connectorFactory func(*seedscan.ConnectionConfig) (seedscan.Connector, error),
	textGen seedscan.TextGenerator,
	logger seedscan.Logger,
) *SeedService {
	if connectorFactory == nil {
		panic("connectorFactory cannot be nil")
	}
	if textGen == nil {
		panic("textGen cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &SeedService{
		connectorFactory: connectorFactory,
		textGen:          textGen,
		logger:           logger,
	}
}

// Run executes Connect, Ensure Schema, Fill, Search and Teardown in order.
//
// A connection failure aborts the run and is returned. Later phases report
// their own failures on out and never stop the phases after them.
func (s *SeedService) Run(ctx context.Context, config seedscan.SeedConfig, out io.Writer) (*seedscan.RunSummary, error) {
	return s.run(ctx, config, out, true)
}

// SearchOnly executes Connect, Search and Teardown.
func (s *SeedService) SearchOnly(ctx context.Context, config seedscan.SeedConfig, out io.Writer) (*seedscan.RunSummary, error) {
	return s.run(ctx, config, out, false)
}

func (s *SeedService) run(ctx context.Context, config seedscan.SeedConfig, out io.Writer, seed bool) (*seedscan.RunSummary, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	conn, err := s.connect(ctx, &config.Connection)
	if err != nil {
		return nil, err
	}
	defer s.teardown(ctx, conn)

	st := store.New(conn, s.logger)
	summary := &seedscan.RunSummary{}

	if seed {
		if config.SkipSchema {
			s.logger.Verbose("Skipping schema creation")
		} else {
			summary.SchemaReady = s.ensureSchema(ctx, st, out)
		}

		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if config.SkipFill {
			s.logger.Verbose("Skipping fill")
		} else {
			s.fill(ctx, st, out, config.RecordCount, summary)
		}

		if err := ctx.Err(); err != nil {
			return summary, err
		}
	}

	s.search(ctx, st, out, config.Query, summary)
	return summary, ctx.Err()
}

// connect opens the run's only connection. Every failure carries
// seedscan.ErrConnectionFailed except invalid configuration.
func (s *SeedService) connect(ctx context.Context, connConfig *seedscan.ConnectionConfig) (seedscan.DBConn, error) {
	connector, err := s.connectorFactory(connConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connector: %w", err)
	}

	s.logger.Verbose("Connecting to %s/%s as %s", connConfig.Address(), connConfig.Database, connConfig.Username)
	conn, err := connector.Connect(ctx)
	if err != nil {
		if !errors.Is(err, seedscan.ErrConnectionFailed) {
			err = fmt.Errorf("%w: %w", seedscan.ErrConnectionFailed, err)
		}
		return nil, err
	}
	if conn == nil {
		return nil, fmt.Errorf("connector returned no connection: %w", seedscan.ErrConnectionFailed)
	}

	s.logger.Verbose("Connected")
	return conn, nil
}

// teardown closes conn once. Closing must survive a cancelled run context.
func (s *SeedService) teardown(ctx context.Context, conn seedscan.DBConn) {
	if conn == nil {
		return
	}

	closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
	defer cancel()

	if err := conn.Close(closeCtx); err != nil {
		s.logger.Error("Failed to close connection: %v", err)
		return
	}
	s.logger.Verbose("Connection closed")
}

func (s *SeedService) ensureSchema(ctx context.Context, st *store.Store, out io.Writer) bool {
	if err := st.EnsureSchema(ctx); err != nil {
		fmt.Fprintf(out, "Error creating table: %s\n", detail(err))
		return false
	}
	fmt.Fprintf(out, "Table '%s' created successfully!\n", seedscan.TableName)
	return true
}

func (s *SeedService) fill(ctx context.Context, st *store.Store, out io.Writer, count int, summary *seedscan.RunSummary) {
	if err := st.PrepareInsert(ctx); err != nil {
		summary.PrepareError = err
		fmt.Fprintf(out, "Error preparing statement: %s\n", detail(err))
		return
	}

	for i := 0; i < count; i++ {
		rec := fakedata.NewRecord(s.textGen)
		if err := st.Insert(ctx, rec); err != nil {
			summary.FailedInsert++
			fmt.Fprintf(out, "Error adding record %d: %s\n", i, detail(err))
			continue
		}
		summary.Inserted++
		fmt.Fprintf(out, "Record %d added successfully!\n", i)
	}

	s.logger.Verbose("Fill finished: %d inserted, %d failed", summary.Inserted, summary.FailedInsert)
}

func (s *SeedService) search(ctx context.Context, st *store.Store, out io.Writer, query string, summary *seedscan.RunSummary) {
	records, err := st.Search(ctx, query)
	if err != nil {
		summary.SearchError = err
		if errors.Is(err, seedscan.ErrPrepareFailed) {
			fmt.Fprintf(out, "Error preparing statement: %s\n", detail(err))
		} else {
			fmt.Fprintf(out, "Error executing search: %s\n", detail(err))
		}
		return
	}

	summary.Matches = len(records)
	if len(records) == 0 {
		fmt.Fprintf(out, "No records found for query '%s'.\n", query)
		return
	}

	for _, rec := range records {
		fmt.Fprintln(out, rec.String())
	}
}

// detail strips the leading sentinel from a "%w: %w" error so reports show
// the underlying cause.
func detail(err error) string {
	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		if errs := multi.Unwrap(); len(errs) > 0 {
			return errs[len(errs)-1].Error()
		}
	}
	return err.Error()
}
