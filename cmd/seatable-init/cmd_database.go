package main

import (
	"fmt"

	"github.com/MKhiriev/seatable-init/internal/service"
	"github.com/MKhiriev/seatable-init/internal/store"
	"github.com/spf13/cobra"
)

func newInitDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create the SeaTable databases and import their schemas",
		Long: `Wait for MySQL to accept connections, create ccnet_db, seafile_db and
dtable_db when missing, and import ccnet.sql, seafile.sql and dtable.sql
from the SQL directory.`,
		Args: cobra.NoArgs,
		RunE: runInitDB,
	}
}

func newCreateAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-admin",
		Short: "Create the admin account unless it already exists",
		Long: `Look up SEATABLE_ADMIN_EMAIL in dtable_db and, when no profile uses it,
run the admin creation command with SEATABLE_ADMIN_EMAIL and
SEATABLE_ADMIN_PASSWORD in its environment.`,
		Args: cobra.NoArgs,
		RunE: runCreateAdmin,
	}
}

func runInitDB(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	db, err := store.NewConnectMySQL(cfg.Database, log)
	if err != nil {
		return fmt.Errorf("error connecting to mysql: %w", err)
	}
	defer db.Close()

	services := service.NewServices(db, *cfg, log)
	if err = services.SchemaBootstrapper.Bootstrap(cmd.Context()); err != nil {
		return fmt.Errorf("error bootstrapping databases: %w", err)
	}

	return nil
}

func runCreateAdmin(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	db, err := store.NewConnectMySQL(cfg.Database, log)
	if err != nil {
		return fmt.Errorf("error connecting to mysql: %w", err)
	}
	defer db.Close()

	if err = db.WaitForServer(cmd.Context(), cfg.Database.RetryInterval, cfg.Database.WaitTimeout); err != nil {
		return err
	}

	services := service.NewServices(db, *cfg, log)
	if err = services.AdminProvisioner.EnsureAdmin(cmd.Context(), cfg.Admin.Email, cfg.Admin.Password); err != nil {
		return fmt.Errorf("error provisioning admin: %w", err)
	}

	return nil
}
