// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable by
// every command. Command-specific requirements (such as the admin
// credentials) are checked by the command that needs them.
func (cfg *StructuredConfig) validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil {
		return fmt.Errorf("%w: level %q", ErrInvalidLogConfigs, cfg.Log.Level)
	}

	switch strings.ToLower(cfg.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidLogConfigs, cfg.Log.Format)
	}

	if cfg.Paths.ConfigDir == "" || cfg.Paths.SQLDir == "" {
		return ErrInvalidPathConfigs
	}

	if cfg.Database.Port < 1 || cfg.Database.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidDatabaseConfigs, cfg.Database.Port)
	}

	if cfg.Database.WaitTimeout <= 0 || cfg.Database.RetryInterval <= 0 {
		return fmt.Errorf("%w: wait timeout and retry interval must be positive", ErrInvalidDatabaseConfigs)
	}

	return nil
}
