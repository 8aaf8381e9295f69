// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/MKhiriev/seatable-init/internal/config"
	"github.com/MKhiriev/seatable-init/internal/logger"
	"github.com/cenkalti/backoff/v5"
	"github.com/go-sql-driver/mysql"
)

// DB is a MySQL connection pool shared by the repositories.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectMySQL opens a pool for cfg without selecting a default
// database. The server is not contacted; see [DB.WaitForServer].
func NewConnectMySQL(cfg config.Database, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("mysql", mysqlDSN(cfg))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(4)
	conn.SetMaxIdleConns(1)

	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewMySQLErrorClassifier(),
	}, nil
}

func mysqlDSN(cfg config.Database) string {
	dsn := mysql.NewConfig()
	dsn.User = cfg.User
	dsn.Passwd = cfg.Password
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	dsn.Timeout = 5 * time.Second

	return dsn.FormatDSN()
}

// WaitForServer pings the server until it answers, retrying with
// exponential backoff starting at interval. Errors the server reports
// itself (such as rejected credentials) stop the wait immediately.
func (db *DB) WaitForServer(ctx context.Context, interval, maxElapsed time.Duration) error {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = interval
	expBackoff.MaxInterval = 8 * interval

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := db.PingContext(ctx)
		if err == nil {
			return struct{}{}, nil
		}

		if db.errorClassificator.Classify(err) == NonRetryable {
			return struct{}{}, backoff.Permanent(err)
		}

		return struct{}{}, err
	},
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxElapsedTime(maxElapsed),
		backoff.WithNotify(func(err error, next time.Duration) {
			db.logger.Info().Err(err).Dur("retry_in", next).Msg("waiting for mysql server to be ready")
		}),
	)
	if err != nil {
		db.logger.Err(err).Str("func", "*DB.WaitForServer").Msg("mysql server did not become ready")
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	db.logger.Info().Msg("mysql server is ready")
	return nil
}
