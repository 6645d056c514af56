package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-family-vault/internal/config"
	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/migrations"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Repositories only log the verdict; nothing retries automatically.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is a database/sql connection bundled with a dialect-aware query builder.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// newDB wraps an open connection. The squirrel placeholder format follows
// the driver: $n for PostgreSQL, ? for SQLite.
func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		driver:  driver,
		logger:  log,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}

	switch driver {
	case DriverPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// NewConnect opens the database named by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case DriverPostgres, "":
		return NewConnectPostgres(ctx, cfg, log)
	case DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded schema using the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.driver
}

func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// constraint is the dialect-independent kind of a constraint violation.
type constraint int

const (
	noConstraint constraint = iota
	uniqueConstraint
	foreignKeyConstraint
)

func constraintViolation(err error) constraint {
	if c := postgresConstraint(err); c != noConstraint {
		return c
	}
	return sqliteConstraint(err)
}

// now returns the timestamp stored for new rows. PostgreSQL keeps
// microseconds, so the value is truncated to round-trip exactly.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
