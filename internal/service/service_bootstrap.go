// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/MKhiriev/seatable-init/internal/logger"
	"github.com/MKhiriev/seatable-init/internal/store"
)

// schemaFile ties a database to the file holding its schema.
type schemaFile struct {
	database string
	file     string
}

// schemaFiles is the import order of the deployment.
var schemaFiles = []schemaFile{
	{database: store.DatabaseCcnet, file: "ccnet.sql"},
	{database: store.DatabaseSeafile, file: "seafile.sql"},
	{database: store.DatabaseDtable, file: "dtable.sql"},
}

type schemaBootstrapper struct {
	repo    store.SchemaRepository
	sqlDir  fs.FS
	logger  *logger.Logger
	waitFor func(ctx context.Context) error
}

// NewSchemaBootstrapper returns a [SchemaBootstrapper] that creates the
// databases through repo and imports the schema files found in sqlDir.
// waitFor blocks until the server accepts connections; nil skips the wait.
func NewSchemaBootstrapper(repo store.SchemaRepository, sqlDir fs.FS, waitFor func(ctx context.Context) error, logger *logger.Logger) SchemaBootstrapper {
	return &schemaBootstrapper{
		repo:    repo,
		sqlDir:  sqlDir,
		logger:  logger,
		waitFor: waitFor,
	}
}

// Bootstrap waits for the server, creates the three databases and imports
// their schema files, stopping at the first failure.
func (s *schemaBootstrapper) Bootstrap(ctx context.Context) error {
	if s.waitFor != nil {
		if err := s.waitFor(ctx); err != nil {
			return err
		}
	}

	for _, sf := range schemaFiles {
		created, err := s.repo.EnsureDatabase(ctx, sf.database)
		if err != nil {
			return err
		}

		if created {
			s.logger.Info().Str("database", sf.database).Msg("successfully created database")
		} else {
			s.logger.Info().Str("database", sf.database).Msg("database already exists")
		}
	}

	for _, sf := range schemaFiles {
		content, err := fs.ReadFile(s.sqlDir, sf.file)
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrReadingSchemaFile, sf.file, err)
		}

		statements := store.SplitStatements(string(content))
		if err = s.repo.ImportSQL(ctx, sf.database, statements); err != nil {
			return fmt.Errorf("importing %q: %w", sf.file, err)
		}

		s.logger.Info().Str("file", sf.file).Int("statements", len(statements)).Msg("successfully imported")
	}

	return nil
}
