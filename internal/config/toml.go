package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// parseTOML decodes the optional config file. Keys the file does not know
// about are rejected so typos do not pass silently.
func parseTOML(path string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("error decoding toml config %q: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys in %q: %v", ErrInvalidConfigFile, path, undecoded)
	}

	return cfg, nil
}
