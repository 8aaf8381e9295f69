package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/seatable-init/internal/logger"
)

// schemaRepository is the MySQL-backed implementation of [SchemaRepository].
type schemaRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSchemaRepository constructs a [SchemaRepository] backed by db.
func NewSchemaRepository(db *DB, logger *logger.Logger) SchemaRepository {
	logger.Debug().Msg("creating schema repository")
	return &schemaRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureDatabase runs CREATE DATABASE IF NOT EXISTS. MySQL reports one
// affected row when the database was created and zero when it already
// existed; the value only decides what is logged.
func (r *schemaRepository) EnsureDatabase(ctx context.Context, name string) (bool, error) {
	log := logger.FromContext(ctx)

	query, err := buildCreateDatabaseQuery(name)
	if err != nil {
		return false, err
	}

	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*schemaRepository.EnsureDatabase").Str("database", name).Msg("error creating database")
		return false, fmt.Errorf("%w %q: %w", ErrCreatingDatabase, name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Warn().Err(err).Str("database", name).Msg("rows affected is not available")
		return false, nil
	}

	return affected > 0, nil
}

// ImportSQL switches a dedicated connection to database and executes the
// statements in order inside one transaction. The first failing statement
// rolls the transaction back.
func (r *schemaRepository) ImportSQL(ctx context.Context, database string, statements []string) error {
	log := logger.FromContext(ctx)

	use, err := buildUseDatabaseQuery(database)
	if err != nil {
		return err
	}

	conn, err := r.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrImportingSQL, err)
	}
	defer conn.Close()

	if _, err = conn.ExecContext(ctx, use); err != nil {
		log.Err(err).Str("func", "*schemaRepository.ImportSQL").Str("database", database).Msg("error selecting database")
		return fmt.Errorf("%w: selecting %q: %w", ErrImportingSQL, database, err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for i, stmt := range statements {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			log.Err(err).Str("func", "*schemaRepository.ImportSQL").Str("database", database).Int("statement", i+1).Msg("error executing statement")
			return fmt.Errorf("%w: %q statement %d: %w", ErrImportingSQL, database, i+1, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
