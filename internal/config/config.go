// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// seatable-init commands. It aggregates all sub-configurations and is
// populated by merging values from flags, environment variables, an
// optional TOML file and struct defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - toml: key in the optional TOML file (BurntSushi/toml).
//   - default: fallback value applied last (creasty/defaults).
type StructuredConfig struct {
	// Log holds the level and output format of the command logger.
	Log Log `envPrefix:"SEATABLE_INIT_LOG_" toml:"log"`

	// Paths holds the directories the commands read from and write to.
	Paths Paths `envPrefix:"SEATABLE_INIT_" toml:"paths"`

	// Database holds the MySQL connection settings used by init-db and
	// create-admin. The variables are shared with the SeaTable containers,
	// hence the bare DB_ prefix.
	Database Database `envPrefix:"DB_" toml:"database"`

	// Admin holds the initial administrator account used by create-admin.
	Admin Admin `envPrefix:"SEATABLE_ADMIN_" toml:"admin"`

	// ConfigFilePath is the optional path to a TOML configuration file.
	// Populated via SEATABLE_INIT_CONFIG or the --config flag.
	ConfigFilePath string `env:"SEATABLE_INIT_CONFIG" toml:"-"`
}

// Log configures the command logger.
type Log struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	Level string `env:"LEVEL" toml:"level" default:"info"`

	// Format is "json" or "console".
	Format string `env:"FORMAT" toml:"format" default:"json"`
}

// Paths groups the file-system locations used by the commands.
type Paths struct {
	// ConfigDir is the directory the generated files are written to. The
	// optional roles and overrides documents are read from here too.
	ConfigDir string `env:"CONFIG_DIR" toml:"config_dir" default:"/opt/seatable/conf"`

	// SQLDir contains ccnet.sql, seafile.sql and dtable.sql.
	SQLDir string `env:"SQL_DIR" toml:"sql_dir" default:"/opt/seatable/seatable-server-latest/sql/mysql"`
}

// Database holds MySQL connection settings.
type Database struct {
	Host     string `env:"HOST" toml:"host" default:"db"`
	Port     int    `env:"PORT" toml:"port" default:"3306"`
	User     string `env:"USER" toml:"user" default:"root"`
	Password string `env:"ROOT_PASSWD" toml:"password"`

	// WaitTimeout bounds how long init-db waits for the server to answer.
	WaitTimeout time.Duration `env:"WAIT_TIMEOUT" toml:"wait_timeout" default:"2m"`

	// RetryInterval is the initial delay between connection attempts.
	RetryInterval time.Duration `env:"RETRY_INTERVAL" toml:"retry_interval" default:"2s"`
}

// Admin describes the administrator account created on first start.
type Admin struct {
	Email    string `env:"EMAIL" toml:"email"`
	Password string `env:"PASSWORD" toml:"password"`

	// Command creates the account; it is split on whitespace.
	Command string `env:"COMMAND" toml:"command" default:"/templates/seatable.sh auto-create-superuser"`
}
