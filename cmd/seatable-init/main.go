// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command seatable-init generates the configuration files of a SeaTable
// deployment and bootstraps its MySQL databases.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/seatable-init/internal/config"
	"github.com/MKhiriev/seatable-init/internal/logger"
	"github.com/MKhiriev/seatable-init/internal/utils"
	"github.com/spf13/cobra"
)

const appName = "seatable-init"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		logger.NewLogger(appName, "", "").Fatal().Err(err).Msg("command failed")
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Generate SeaTable configuration files and bootstrap its databases",
		Long: `seatable-init renders the configuration files of a SeaTable deployment
from PREFIX__SECTION__FIELD environment variables and prepares the MySQL
databases the services need.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newGenerateCmd(),
		newInitDBCmd(),
		newCreateAdminCmd(),
		newVersionCmd(),
	)

	return root
}

// setup loads the configuration of cmd and returns it with a logger tagged
// by the command name and a fresh run id. The logger is attached to the
// command context.
func setup(cmd *cobra.Command) (*config.StructuredConfig, *logger.Logger, error) {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	log := logger.NewLogger(cmd.Name(), cfg.Log.Level, cfg.Log.Format).
		WithRunID(utils.NewRunID())
	log.Debug().Any("config", cfg).Msg("received configs")

	cmd.SetContext(log.WithContext(cmd.Context()))

	return cfg, log, nil
}
