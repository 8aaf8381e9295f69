package service

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/MKhiriev/seatable-init/internal/logger"
	"github.com/MKhiriev/seatable-init/internal/mock"
	"github.com/MKhiriev/seatable-init/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func schemaFS() fstest.MapFS {
	return fstest.MapFS{
		"ccnet.sql":   {Data: []byte("CREATE TABLE a (id INT);\n\nCREATE TABLE b (id INT);\n")},
		"seafile.sql": {Data: []byte("CREATE TABLE c (id INT);")},
		"dtable.sql":  {Data: []byte(" ; CREATE TABLE d (id INT) ;")},
	}
}

func TestSchemaBootstrapper_Bootstrap_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	repo := mock.NewMockSchemaRepository(ctrl)
	ctx := context.Background()
	waited := false
	waitFor := func(context.Context) error {
		waited = true
		return nil
	}

	gomock.InOrder(
		repo.EXPECT().EnsureDatabase(ctx, store.DatabaseCcnet).Return(true, nil),
		repo.EXPECT().EnsureDatabase(ctx, store.DatabaseSeafile).Return(false, nil),
		repo.EXPECT().EnsureDatabase(ctx, store.DatabaseDtable).Return(true, nil),
		repo.EXPECT().ImportSQL(ctx, store.DatabaseCcnet, []string{"CREATE TABLE a (id INT)", "CREATE TABLE b (id INT)"}).Return(nil),
		repo.EXPECT().ImportSQL(ctx, store.DatabaseSeafile, []string{"CREATE TABLE c (id INT)"}).Return(nil),
		repo.EXPECT().ImportSQL(ctx, store.DatabaseDtable, []string{"CREATE TABLE d (id INT)"}).Return(nil),
	)

	svc := NewSchemaBootstrapper(repo, schemaFS(), waitFor, logger.Nop())

	// Act
	err := svc.Bootstrap(ctx)

	// Assert
	require.NoError(t, err)
	assert.True(t, waited)
}

func TestSchemaBootstrapper_Bootstrap_WaitFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSchemaRepository(ctrl)
	svc := NewSchemaBootstrapper(repo, schemaFS(), func(context.Context) error {
		return store.ErrDatabaseUnavailable
	}, logger.Nop())

	err := svc.Bootstrap(context.Background())

	assert.ErrorIs(t, err, store.ErrDatabaseUnavailable)
}

func TestSchemaBootstrapper_Bootstrap_CreateFailsStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSchemaRepository(ctrl)
	repo.EXPECT().EnsureDatabase(gomock.Any(), store.DatabaseCcnet).Return(false, store.ErrCreatingDatabase)

	svc := NewSchemaBootstrapper(repo, schemaFS(), nil, logger.Nop())

	err := svc.Bootstrap(context.Background())

	assert.ErrorIs(t, err, store.ErrCreatingDatabase)
}

func TestSchemaBootstrapper_Bootstrap_MissingSchemaFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSchemaRepository(ctrl)
	repo.EXPECT().EnsureDatabase(gomock.Any(), gomock.Any()).Return(false, nil).Times(3)
	repo.EXPECT().ImportSQL(gomock.Any(), store.DatabaseCcnet, gomock.Any()).Return(nil)

	files := schemaFS()
	delete(files, "seafile.sql")
	svc := NewSchemaBootstrapper(repo, files, nil, logger.Nop())

	err := svc.Bootstrap(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadingSchemaFile)
	assert.Contains(t, err.Error(), "seafile.sql")
}

func TestSchemaBootstrapper_Bootstrap_ImportFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSchemaRepository(ctrl)
	repo.EXPECT().EnsureDatabase(gomock.Any(), gomock.Any()).Return(false, nil).Times(3)
	repo.EXPECT().ImportSQL(gomock.Any(), store.DatabaseCcnet, gomock.Any()).Return(errors.Join(store.ErrImportingSQL, assert.AnError))

	svc := NewSchemaBootstrapper(repo, schemaFS(), nil, logger.Nop())

	err := svc.Bootstrap(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrImportingSQL)
	assert.Contains(t, err.Error(), "ccnet.sql")
}
