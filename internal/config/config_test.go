package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.ContinueOnError)
	assert.False(t, cfg.LockReads)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigValidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "srcdump.yaml")
	content := `root: ./Sources
log_level: debug
continue_on_error: true
lock_reads: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "./Sources", cfg.Root)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.ContinueOnError)
	assert.True(t, cfg.LockReads)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigPartialFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "srcdump.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log_level: warn\n"), 0644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Root, "root should keep its default")
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigExplicitFalse(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "srcdump.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("continue_on_error: false\nroot: \"\"\n"), 0644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.False(t, cfg.ContinueOnError)
	assert.Equal(t, ".", cfg.Root, "empty root in file falls back to default")
}

func TestLoadConfigMalformed(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "srcdump.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("root: [unclosed\n"), 0644))

	_, err := LoadConfig(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvRoot, "/src/app")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvContinueOnError, "true")
	t.Setenv(EnvLockReads, "1")

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "/src/app", cfg.Root)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.ContinueOnError)
	assert.True(t, cfg.LockReads)
}

func TestApplyEnvEmptyLeavesValues(t *testing.T) {
	t.Setenv(EnvRoot, "")
	t.Setenv(EnvLogLevel, "  ")
	t.Setenv(EnvContinueOnError, "")
	t.Setenv(EnvLockReads, "")

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestApplyEnvInvalidBool(t *testing.T) {
	t.Setenv(EnvContinueOnError, "maybe")

	err := DefaultConfig().ApplyEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvContinueOnError)
}

func TestLoadDotEnv(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("SRCDUMP_LOG_LEVEL=error\n"), 0644))

	// Register cleanup for the variable godotenv is about to set
	t.Setenv(EnvLogLevel, "")
	os.Unsetenv(EnvLogLevel)

	require.NoError(t, LoadDotEnv(envPath))
	assert.Equal(t, "error", os.Getenv(EnvLogLevel))

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("SRCDUMP_ROOT=/from/file\n"), 0644))
	t.Setenv(EnvRoot, "/from/shell")

	require.NoError(t, LoadDotEnv(envPath))
	assert.Equal(t, "/from/shell", os.Getenv(EnvRoot))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestMergeWithFlags(t *testing.T) {
	root := "/override"
	level := "trace"
	cont := true

	cfg := DefaultConfig()
	cfg.LockReads = true
	cfg.MergeWithFlags(&root, &level, &cont, nil)

	assert.Equal(t, "/override", cfg.Root)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.True(t, cfg.ContinueOnError)
	assert.True(t, cfg.LockReads, "nil flag must not override")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "upper-case level", mutate: func(c *Config) { c.LogLevel = "DEBUG" }},
		{name: "empty root", mutate: func(c *Config) { c.Root = " " }, wantErr: "root cannot be empty"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "verbose" }, wantErr: "invalid log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
