package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidLogConfigs indicates an unknown log level or format.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidPathConfigs indicates an empty config or SQL directory.
	ErrInvalidPathConfigs = errors.New("invalid path configuration")
	// ErrInvalidDatabaseConfigs indicates invalid MySQL settings
	// (for example, an out-of-range port or a non-positive wait timeout).
	ErrInvalidDatabaseConfigs = errors.New("invalid database configuration")
	// ErrInvalidConfigFile indicates a TOML file with unknown keys.
	ErrInvalidConfigFile = errors.New("invalid config file")
)
