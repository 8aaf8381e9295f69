// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/seatable-init/internal/config"
	"github.com/MKhiriev/seatable-init/internal/logger"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForServer_RetriesUntilReady(t *testing.T) {
	// Arrange
	db, mock := newTestDB(t, sqlmock.MonitorPingsOption(true))
	mock.ExpectPing().WillReturnError(errors.New("dial tcp: connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("dial tcp: connection refused"))
	mock.ExpectPing()

	// Act
	err := db.WaitForServer(context.Background(), time.Millisecond, time.Second)

	// Assert
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForServer_StopsOnAccessDenied(t *testing.T) {
	// Arrange
	db, mock := newTestDB(t, sqlmock.MonitorPingsOption(true))
	mock.ExpectPing().WillReturnError(&mysql.MySQLError{Number: 1045, Message: "Access denied"})

	// Act
	err := db.WaitForServer(context.Background(), time.Millisecond, time.Second)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDatabaseUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForServer_ContextCancelled(t *testing.T) {
	db, mock := newTestDB(t, sqlmock.MonitorPingsOption(true))
	for range 10 {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := db.WaitForServer(ctx, 5*time.Millisecond, time.Minute)

	assert.ErrorIs(t, err, ErrDatabaseUnavailable)
}

func TestMySQLErrorClassifier(t *testing.T) {
	c := NewMySQLErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, Retryable, c.Classify(errors.New("dial tcp 10.0.0.2:3306: connect: connection refused")))
	assert.Equal(t, Retryable, c.Classify(&mysql.MySQLError{Number: 1040}))
	assert.Equal(t, Retryable, c.Classify(&mysql.MySQLError{Number: 1213}))
	assert.Equal(t, NonRetryable, c.Classify(&mysql.MySQLError{Number: 1045}))
	assert.Equal(t, NonRetryable, c.Classify(&mysql.MySQLError{Number: 1064}))
}

func TestMySQLDSN(t *testing.T) {
	dsn := mysqlDSN(config.Database{Host: "mariadb", Port: 3306, User: "root", Password: "p@ss"})

	assert.True(t, strings.HasPrefix(dsn, "root:p@ss@tcp(mariadb:3306)/"), dsn)
	assert.Contains(t, dsn, "timeout=5s")
}

func TestSplitStatements(t *testing.T) {
	content := "CREATE TABLE a (id INT);\n\n  ;\nCREATE TABLE b (id INT)  ;\n-- end\n"

	assert.Equal(t, []string{
		"CREATE TABLE a (id INT)",
		"CREATE TABLE b (id INT)",
		"-- end",
	}, SplitStatements(content))
	assert.Empty(t, SplitStatements(" ;\n; "))
}

func TestBuildCountProfilesQuery(t *testing.T) {
	query, args, err := buildCountProfilesQuery("admin@example.com")

	require.NoError(t, err)
	assert.Equal(t, countProfilesQuery, query)
	assert.Equal(t, []any{"admin@example.com"}, args)
}

func TestQuoteIdentifier(t *testing.T) {
	q, err := quoteIdentifier("dtable_db")
	require.NoError(t, err)
	assert.Equal(t, "`dtable_db`", q)

	_, err = quoteIdentifier("")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}
