package seedscan

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// Record is one row of the seeded table.
type Record struct {
	// ID is assigned by the database on insertion and never changes afterwards.
	ID int64

	// Name is a short display name, bounded by MaxNameLength.
	Name string

	// Normal holds a single sentence.
	Normal string

	// Success holds a single paragraph.
	Success string

	// CreatedAt defaults to the insertion time.
	CreatedAt time.Time
}

// Validate checks the non-empty and length invariants of a record before insertion.
func (r Record) Validate() error {
	var errs []error

	if r.Name == "" {
		errs = append(errs, errors.New("name is required"))
	} else if utf8.RuneCountInString(r.Name) > MaxNameLength {
		errs = append(errs, fmt.Errorf("name exceeds %d characters", MaxNameLength))
	}
	if r.Normal == "" {
		errs = append(errs, errors.New("normal is required"))
	}
	if r.Success == "" {
		errs = append(errs, errors.New("success is required"))
	}

	return errors.Join(errs...)
}

// String renders the record in the pipe-separated report layout.
func (r Record) String() string {
	return fmt.Sprintf("ID: %d | Name: %s | Normal: %s | Success: %s | Created At: %s",
		r.ID, r.Name, r.Normal, r.Success, r.CreatedAt.Format(time.DateTime))
}

// ConnectionConfig represents the resolved connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string

	// Additional connection parameters
	AppName        string
	ConnectTimeout time.Duration
}

// Address returns host:port for diagnostics.
func (c ConnectionConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate checks that every field needed to open a connection is set.
func (c *ConnectionConfig) Validate() error {
	var errs []error

	if c.Host == "" {
		errs = append(errs, fmt.Errorf("host is required: %w", ErrInvalidConfig))
	}
	if c.Database == "" {
		errs = append(errs, fmt.Errorf("database is required: %w", ErrInvalidConfig))
	}
	if c.Username == "" {
		errs = append(errs, fmt.Errorf("username is required: %w", ErrInvalidConfig))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d is out of range: %w", c.Port, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// SeedConfig contains all parameters needed for a seed-and-search run.
type SeedConfig struct {
	// Connection holds the resolved database connection parameters
	Connection ConnectionConfig

	// RecordCount is the number of rows inserted by the Fill phase
	RecordCount int

	// Query is the substring searched for in the normal and success columns.
	// An empty query matches every row.
	Query string

	// SkipSchema disables the Ensure Schema phase
	SkipSchema bool

	// SkipFill disables the Fill phase
	SkipFill bool

	// Timeout is the global timeout for the entire run
	Timeout time.Duration

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the SeedConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *SeedConfig) Validate() error {
	var errs []error

	if err := c.Connection.Validate(); err != nil {
		errs = append(errs, err)
	}

	if c.RecordCount < 0 {
		errs = append(errs, fmt.Errorf("record count cannot be negative: %w", ErrInvalidConfig))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
