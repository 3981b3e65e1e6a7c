package seedscan

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Command completed successfully
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Missing or invalid configuration
	ExitConnectionError   = 11 // Failed to connect to database
	ExitExecutionFailed   = 13 // SQL execution failed
	ExitDirectoryNotFound = 14 // Scanned directory does not exist
)

const (
	// TableName is the table created, filled and searched by the seed workflow.
	TableName = "test"

	// DefaultRecordCount is the number of synthetic rows inserted per seed run.
	DefaultRecordCount = 10

	// MaxNameLength mirrors the VARCHAR(50) bound on the name column.
	MaxNameLength = 50

	// DataDirName is the directory scanned by the find command, resolved
	// beside the executable unless overridden.
	DataDirName = "datafiles"

	// FileNamePattern matches one or more ASCII alphanumerics followed by ".ixt".
	FileNamePattern = `^[A-Za-z0-9]+\.ixt$`

	// DefaultEnvFile is the configuration file loaded into the environment at startup.
	DefaultEnvFile = ".env"

	// DefaultPort is the PostgreSQL port used when DB_PORT is not set.
	DefaultPort = 5432

	// DefaultSSLMode is the sslmode used when DB_SSLMODE is not set.
	DefaultSSLMode = "prefer"

	// DefaultTimeout bounds a whole seed or search run.
	// It is catastrophic failure protection, not a query timeout.
	DefaultTimeout = 2 * time.Minute

	// DefaultConnectTimeout bounds establishing the database connection.
	DefaultConnectTimeout = 10 * time.Second
)

// Environment variable names read during the Configure phase.
const (
	EnvHost     = "DB_HOST"
	EnvUsername = "DB_USERNAME"
	EnvPassword = "DB_PASSWORD"
	EnvDatabase = "DB_NAME"
	EnvPort     = "DB_PORT"
	EnvSSLMode  = "DB_SSLMODE"
)

// RequiredEnvKeys lists the keys that must be present after the .env file is loaded.
var RequiredEnvKeys = []string{EnvHost, EnvUsername, EnvPassword, EnvDatabase}
