package main

import (
	"fmt"

	"github.com/MKhiriev/seatable-init/internal/generator"
	"github.com/MKhiriev/seatable-init/internal/namespace"
	"github.com/MKhiriev/seatable-init/internal/writer"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write every configuration file into the config directory",
		Long: `Render seafile.conf, ccnet.conf, dtable_web_settings.py, gunicorn.py,
dtable_server_config.json, dtable-db.conf, dtable-storage-server.conf,
dtable-events.conf, dtable-api-gateway.conf and nginx.conf.

Existing files are overwritten. seatable_roles.json and
dtable_web_settings_overrides.py are read from the config directory when
present.`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	gen := generator.New(namespace.FromOS(), writer.New(cfg.Paths.ConfigDir, log), log)
	if err = gen.Run(cmd.Context()); err != nil {
		return fmt.Errorf("error generating configuration: %w", err)
	}

	return nil
}
