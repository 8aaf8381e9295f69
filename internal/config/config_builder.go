package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/creasty/defaults"
	"github.com/spf13/pflag"
)

// GetStructuredConfig loads the configuration from fs, the environment, the
// optional TOML file and struct defaults, merges and validates it.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withTOML().
		withDefaults().
		build()
}

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected layers in the order they were added; a field
// set by an earlier layer is never overwritten by a later one.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(fs *pflag.FlagSet) *configBuilder {
	if fs == nil {
		return b
	}

	flagCfg, err := parseFlags(fs)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

// withTOML loads the file named by the first layer that sets a path.
func (b *configBuilder) withTOML() *configBuilder {
	var tomlPath string
	for _, cfg := range b.configs {
		if cfg.ConfigFilePath != "" {
			tomlPath = cfg.ConfigFilePath
			break
		}
	}

	if tomlPath == "" {
		return b
	}

	tomlCfg, err := parseTOML(tomlPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, tomlCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	defaultCfg := &StructuredConfig{}
	if err := defaults.Set(defaultCfg); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error applying default configs: %w", err))
		return b
	}

	b.configs = append(b.configs, defaultCfg)
	return b
}
