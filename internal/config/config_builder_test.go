package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempTOMLConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seatable-init.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Log:   Log{Level: "info", Format: "json"},
		Paths: Paths{ConfigDir: "/opt/seatable/conf", SQLDir: "/opt/sql"},
		Database: Database{
			Host:          "db",
			Port:          3306,
			WaitTimeout:   time.Minute,
			RetryInterval: time.Second,
		},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a config without any
// layer is rejected.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierLayerWins verifies that a field set by an earlier layer
// is not overwritten and unset fields are filled from later layers.
func TestBuild_EarlierLayerWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Log: Log{Level: "debug"}},
		&StructuredConfig{Log: Log{Level: "error"}, Database: Database{Host: "mariadb"}},
		validConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "mariadb", cfg.Database.Host)
	assert.Equal(t, "json", cfg.Log.Format)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_AppliesStructDefaults verifies the default tags.
func TestWithDefaults_AppliesStructDefaults(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)

	d := b.configs[0]
	assert.Equal(t, "info", d.Log.Level)
	assert.Equal(t, "json", d.Log.Format)
	assert.Equal(t, "/opt/seatable/conf", d.Paths.ConfigDir)
	assert.Equal(t, "/opt/seatable/seatable-server-latest/sql/mysql", d.Paths.SQLDir)
	assert.Equal(t, "db", d.Database.Host)
	assert.Equal(t, 3306, d.Database.Port)
	assert.Equal(t, "root", d.Database.User)
	assert.Empty(t, d.Database.Password)
	assert.Equal(t, 2*time.Minute, d.Database.WaitTimeout)
	assert.Equal(t, 2*time.Second, d.Database.RetryInterval)
	assert.Equal(t, "/templates/seatable.sh auto-create-superuser", d.Admin.Command)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	clearEnvVars(t)
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SEATABLE_INIT_CONFIG_DIR": "/env/conf",
		"DB_HOST":                  "env-db",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "/env/conf", b.configs[0].Paths.ConfigDir)
	assert.Equal(t, "env-db", b.configs[0].Database.Host)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a conversion failure is
// recorded and no layer is appended.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"DB_WAIT_TIMEOUT": "soon"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_NilFlagSetIsNoOp verifies that commands without flags can
// still build a config.
func TestWithFlags_NilFlagSetIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
}

// ── withTOML ──────────────────────────────────────────────────────────────────

// TestWithTOML_NoOp_WhenNoPathSet verifies that withTOML does nothing when
// no layer names a file.
func TestWithTOML_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withTOML()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithTOML_AppendsConfig_WhenValidFile verifies that a valid file is
// parsed and appended.
func TestWithTOML_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempTOMLConfig(t, `
[paths]
config_dir = "/toml/conf"

[database]
host = "toml-db"
wait_timeout = "30s"
`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: path})
	b.withTOML()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "/toml/conf", b.configs[1].Paths.ConfigDir)
	assert.Equal(t, "toml-db", b.configs[1].Database.Host)
	assert.Equal(t, 30*time.Second, b.configs[1].Database.WaitTimeout)
}

// TestWithTOML_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithTOML_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: "/nonexistent/seatable-init.toml"})
	b.withTOML()

	assert.Error(t, b.err)
}

// TestWithTOML_SetsError_WhenMalformed verifies that invalid content sets
// b.err.
func TestWithTOML_SetsError_WhenMalformed(t *testing.T) {
	path := writeTempTOMLConfig(t, "[paths\nconfig_dir = ")

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: path})
	b.withTOML()

	assert.Error(t, b.err)
}

// TestWithTOML_RejectsUnknownKeys verifies that typos are reported.
func TestWithTOML_RejectsUnknownKeys(t *testing.T) {
	path := writeTempTOMLConfig(t, "[paths]\nconfig_dri = \"/typo\"\n")

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: path})
	b.withTOML()

	assert.ErrorIs(t, b.err, ErrInvalidConfigFile)
}

// TestWithTOML_UsesFirstPath verifies that the highest-priority layer that
// names a file wins.
func TestWithTOML_UsesFirstPath(t *testing.T) {
	first := writeTempTOMLConfig(t, "[log]\nlevel = \"debug\"\n")
	second := writeTempTOMLConfig(t, "[log]\nlevel = \"error\"\n")

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{ConfigFilePath: first},
		&StructuredConfig{ConfigFilePath: second},
	)
	b.withTOML()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "debug", b.configs[2].Log.Level)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Priority verifies flags > env > toml > defaults.
func TestGetStructuredConfig_Priority(t *testing.T) {
	// Arrange
	path := writeTempTOMLConfig(t, `
[log]
level = "error"
format = "console"

[paths]
config_dir = "/toml/conf"
sql_dir = "/toml/sql"

[database]
host = "toml-db"
`)
	setEnvVars(t, map[string]string{
		"SEATABLE_INIT_CONFIG":  path,
		"SEATABLE_INIT_SQL_DIR": "/env/sql",
		"DB_HOST":               "env-db",
	})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--db-host", "flag-db"}))

	// Act
	cfg, err := GetStructuredConfig(fs)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "flag-db", cfg.Database.Host)
	assert.Equal(t, "/env/sql", cfg.Paths.SQLDir)
	assert.Equal(t, "/toml/conf", cfg.Paths.ConfigDir)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "root", cfg.Database.User)
}

// TestGetStructuredConfig_DefaultsOnly verifies a run without any input.
func TestGetStructuredConfig_DefaultsOnly(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "/opt/seatable/conf", cfg.Paths.ConfigDir)
	assert.Empty(t, cfg.ConfigFilePath)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "console format", mutate: func(cfg *StructuredConfig) { cfg.Log.Format = "Console" }},
		{name: "unknown level", mutate: func(cfg *StructuredConfig) { cfg.Log.Level = "loud" }, wantErr: ErrInvalidLogConfigs},
		{name: "unknown format", mutate: func(cfg *StructuredConfig) { cfg.Log.Format = "xml" }, wantErr: ErrInvalidLogConfigs},
		{name: "empty config dir", mutate: func(cfg *StructuredConfig) { cfg.Paths.ConfigDir = "" }, wantErr: ErrInvalidPathConfigs},
		{name: "port out of range", mutate: func(cfg *StructuredConfig) { cfg.Database.Port = 70000 }, wantErr: ErrInvalidDatabaseConfigs},
		{name: "zero wait timeout", mutate: func(cfg *StructuredConfig) { cfg.Database.WaitTimeout = 0 }, wantErr: ErrInvalidDatabaseConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
