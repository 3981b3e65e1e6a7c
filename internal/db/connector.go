package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vvka-141/seedscan/pkg/seedscan"
)

// StandardConnector implements the Connector interface for username/password
// authentication over a single, unpooled connection. There is no retry: a
// failed attempt is final for the run.
type StandardConnector struct {
	config *seedscan.ConnectionConfig
	logger seedscan.Logger
}

// NewStandardConnector creates a new StandardConnector with the given configuration.
// A nil logger discards server notices.
func NewStandardConnector(config *seedscan.ConnectionConfig, logger seedscan.Logger) *StandardConnector {
	if config == nil {
		panic("config cannot be nil")
	}
	return &StandardConnector{
		config: config,
		logger: logger,
	}
}

// Connect opens one connection and pings it.
// Every failure wraps seedscan.ErrConnectionFailed.
func (c *StandardConnector) Connect(ctx context.Context) (seedscan.DBConn, error) {
	connConfig, err := pgx.ParseConfig(BuildConnectionString(c.config))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse connection config: %w", seedscan.ErrConnectionFailed, err)
	}

	if c.logger != nil {
		logger := c.logger
		connConfig.OnNotice = func(_ *pgconn.PgConn, notice *pgconn.Notice) {
			logger.Verbose("NOTICE: %s", notice.Message)
		}
	}

	conn, err := pgx.ConnectConfig(ctx, connConfig)
	if err != nil {
		return nil, wrapConnectionError(err, c.config.Host, c.config.Port, c.config.Database)
	}

	if err := conn.Ping(ctx); err != nil {
		conn.Close(ctx) //nolint:errcheck
		return nil, wrapConnectionError(err, c.config.Host, c.config.Port, c.config.Database)
	}

	return conn, nil
}

// NewConnector is the factory used by the services layer.
func NewConnector(config *seedscan.ConnectionConfig, logger seedscan.Logger) (seedscan.Connector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return NewStandardConnector(config, logger), nil
}

// wrapConnectionError wraps raw pgx connection errors with actionable guidance
// and chains seedscan.ErrConnectionFailed so callers map it to the right exit code.
func wrapConnectionError(err error, host string, port int, database string) error {
	return fmt.Errorf("%w: %w", seedscan.ErrConnectionFailed, describeConnectionError(err, host, port, database))
}

func describeConnectionError(err error, host string, port int, database string) error {
	errStr := strings.ToLower(err.Error())
	addr := fmt.Sprintf("%s:%d", host, port)

	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		return fmt.Errorf(`connection refused to %s

Possible causes:
  - PostgreSQL is not running (check: pg_isready -h %s -p %d)
  - Wrong DB_HOST or DB_PORT
  - Firewall blocking the connection

Original error: %w`, addr, host, port, err)

	case strings.Contains(errStr, "no such host") || strings.Contains(errStr, "no host"):
		return fmt.Errorf(`cannot resolve host "%s"

Possible causes:
  - DB_HOST is misspelled
  - DNS is not configured or reachable
  - Network connection issue

Original error: %w`, host, err)

	case strings.Contains(errStr, "password authentication failed"):
		return fmt.Errorf(`password authentication failed for database "%s"

Possible causes:
  - Wrong DB_PASSWORD
  - Wrong DB_USERNAME
  - User does not have access to the database

Original error: %w`, database, err)

	case strings.Contains(errStr, "does not exist"):
		return fmt.Errorf(`database "%s" does not exist

To create it:
  createdb %s

Original error: %w`, database, database, err)

	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "timed out"):
		return fmt.Errorf(`connection timed out to %s

Possible causes:
  - Server is overloaded or unresponsive
  - Network latency or packet loss
  - Wrong host/port (server not listening)

Original error: %w`, addr, err)

	case strings.Contains(errStr, "ssl") || strings.Contains(errStr, "tls"):
		return fmt.Errorf(`SSL/TLS connection error

Possible causes:
  - Server requires SSL but DB_SSLMODE is disable
  - Server does not support SSL but DB_SSLMODE is require or stricter

Original error: %w`, err)

	case strings.Contains(errStr, "too many connections"):
		return fmt.Errorf(`too many connections to database "%s"

Possible causes:
  - max_connections limit reached in postgresql.conf
  - Stale sessions left behind by other clients

Original error: %w`, database, err)

	default:
		return fmt.Errorf("failed to connect to database: %w", err)
	}
}
