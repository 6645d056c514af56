package store

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps a mocked connection as a PostgreSQL-dialect DB.
func newDBFromSQL(db *sql.DB) *DB {
	return newDB(db, DriverPostgres, logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testEnvelope() models.Envelope {
	return models.Envelope{
		EncryptedData: "c2VjcmV0",
		Salt:          "AAAAAAAAAAAAAAAAAAAAAA==",
		IV:            "AAAAAAAAAAAAAAAA",
	}
}

func encodedTestEnvelope(t *testing.T) string {
	t.Helper()
	s, err := testEnvelope().Encode()
	require.NoError(t, err)
	return s
}
