package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names shared by all commands.
const (
	FlagConfig        = "config"
	FlagConfigDir     = "config-dir"
	FlagSQLDir        = "sql-dir"
	FlagLogLevel      = "log-level"
	FlagLogFormat     = "log-format"
	FlagDBHost        = "db-host"
	FlagDBPort        = "db-port"
	FlagDBWaitTimeout = "db-wait-timeout"
)

// RegisterFlags declares the configuration flags on fs. Flag defaults are
// empty on purpose: only flags set on the command line take part in the
// merge, everything else falls through to the environment and defaults.
//
// Flags:
//
//	--config          TOML config file path
//	--config-dir      directory of the generated files
//	--sql-dir         directory of the schema files
//	--log-level       log level (trace, debug, info, warn, error)
//	--log-format      log format (json, console)
//	--db-host         MySQL host
//	--db-port         MySQL port
//	--db-wait-timeout how long to wait for MySQL (e.g. 2m)
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "TOML config file path")
	fs.String(FlagConfigDir, "", "Directory the generated files are written to")
	fs.String(FlagSQLDir, "", "Directory containing the schema files")
	fs.String(FlagLogLevel, "", "Log level (trace, debug, info, warn, error)")
	fs.String(FlagLogFormat, "", "Log format (json, console)")
	fs.String(FlagDBHost, "", "MySQL host")
	fs.Int(FlagDBPort, 0, "MySQL port")
	fs.Duration(FlagDBWaitTimeout, 0, "How long to wait for MySQL (e.g. 2m)")
}

// parseFlags copies the flags that were set on the command line into a
// config layer. Unknown flags are ignored so a command may register only a
// subset.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var err error

	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}

		switch f.Name {
		case FlagConfig:
			cfg.ConfigFilePath = f.Value.String()
		case FlagConfigDir:
			cfg.Paths.ConfigDir = f.Value.String()
		case FlagSQLDir:
			cfg.Paths.SQLDir = f.Value.String()
		case FlagLogLevel:
			cfg.Log.Level = f.Value.String()
		case FlagLogFormat:
			cfg.Log.Format = f.Value.String()
		case FlagDBHost:
			cfg.Database.Host = f.Value.String()
		case FlagDBPort:
			cfg.Database.Port, err = fs.GetInt(FlagDBPort)
		case FlagDBWaitTimeout:
			cfg.Database.WaitTimeout, err = fs.GetDuration(FlagDBWaitTimeout)
		}
	})

	if err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	return cfg, nil
}
