package service

import (
	"context"
	"os"

	"github.com/MKhiriev/seatable-init/internal/config"
	"github.com/MKhiriev/seatable-init/internal/logger"
	"github.com/MKhiriev/seatable-init/internal/store"
)

// Services groups the database collaborators of the generator.
type Services struct {
	SchemaBootstrapper SchemaBootstrapper
	AdminProvisioner   AdminProvisioner
}

// NewServices wires the services to db using cfg.
func NewServices(db *store.DB, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		SchemaBootstrapper: NewSchemaBootstrapper(
			store.NewSchemaRepository(db, logger),
			os.DirFS(cfg.Paths.SQLDir),
			newServerWaiter(db, cfg.Database),
			logger,
		),
		AdminProvisioner: NewAdminProvisioner(
			store.NewAdminRepository(db, logger),
			ExecRunner{},
			cfg.Admin.Command,
			logger,
		),
	}
}

func newServerWaiter(db *store.DB, cfg config.Database) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return db.WaitForServer(ctx, cfg.RetryInterval, cfg.WaitTimeout)
	}
}
