package store

import (
	"errors"

	"github.com/MKhiriev/go-family-vault/models"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProfileNotFound is returned when no profile exists for a user id.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrFamilyNotFound is returned when joining a family id that does not exist.
	ErrFamilyNotFound = errors.New("family was not found")

	// ErrItemNotFound is returned when a vault item id matches no row.
	ErrItemNotFound = errors.New("vault item was not found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the share version supplied by the caller does not match the one stored
	// for the item, meaning another session replaced the grant set first.
	ErrVersionConflict = models.ErrShareVersionConflict

	// ErrGrantsExist is returned when deleting a vault item that is still
	// referenced by share grants. Grants must be removed first.
	ErrGrantsExist = errors.New("vault item still has share grants")

	// ErrUnknownReference is returned when an insert references a user,
	// family or item that does not exist.
	ErrUnknownReference = errors.New("referenced record does not exist")

	// ErrEmptyItemQuery is returned when an item selection has no filter.
	ErrEmptyItemQuery = errors.New("item query has no filter")

	// ErrUnsupportedDriver is returned for a database driver other than
	// DriverPostgres or DriverSQLite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails,
	// including rows whose envelope column is malformed.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
