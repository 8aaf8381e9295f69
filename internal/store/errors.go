package store

import "errors"

// Sentinel errors returned by the MySQL store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrDatabaseUnavailable is returned when the server did not answer a
	// ping before the wait deadline, or refused the credentials.
	ErrDatabaseUnavailable = errors.New("database server is unavailable")

	// ErrCreatingDatabase is returned when CREATE DATABASE fails.
	ErrCreatingDatabase = errors.New("failed to create database")

	// ErrImportingSQL is returned when a statement of a schema file fails.
	// The transaction of that file is rolled back.
	ErrImportingSQL = errors.New("failed to import sql")

	// ErrInvalidIdentifier is returned for database names that cannot be
	// used as a quoted MySQL identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
