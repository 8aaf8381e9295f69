package store

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It indicates whether a failed database
// operation should be retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. while the server is still starting up).
	Retryable
)

// ErrorClassificator decides whether a database error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// MySQL server error numbers.
// See https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html
const (
	erAccessDenied    = 1045
	erBadDB           = 1049
	erDBAccessDenied  = 1044
	erConCount        = 1040
	erServerShutdown  = 1053
	erLockDeadlock    = 1213
	erLockWaitTimeout = 1205
	erHostNotPrivileg = 1130
)

// MySQLErrorClassifier implements [ErrorClassificator] for MySQL and MariaDB.
//
// Errors that do not come from the server (refused TCP connections, broken
// pipes, driver timeouts) are retryable: they are what a client sees while
// the database container is still starting.
type MySQLErrorClassifier struct{}

// NewMySQLErrorClassifier constructs a [MySQLErrorClassifier] ready for use.
func NewMySQLErrorClassifier() *MySQLErrorClassifier {
	return &MySQLErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *MySQLErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return ClassifyMySQLError(myErr)
	}

	return Retryable
}

// ClassifyMySQLError maps a server error number to an [ErrorClassification].
//
// Retryable numbers: too many connections, server shutdown in progress,
// deadlock and lock wait timeout. Everything else (access denied, unknown
// database, syntax errors) is [NonRetryable].
func ClassifyMySQLError(myErr *mysql.MySQLError) ErrorClassification {
	switch myErr.Number {
	case erConCount, erServerShutdown, erLockDeadlock, erLockWaitTimeout:
		return Retryable
	case erAccessDenied, erDBAccessDenied, erBadDB, erHostNotPrivileg:
		return NonRetryable
	}

	return NonRetryable
}
