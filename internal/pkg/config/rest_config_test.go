//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeRestConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	content := `port: "9090"
logger:
  log_level: debug
  log_type: console
  log_format: json
cipher:
  default_key_size: 128
  workers: 2
  parallel_threshold: 8
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, LogFormatJSON, cfg.Logger.LogFormat)
	assert.Equal(t, uint32(128), cfg.Cipher.DefaultKeySize)
	assert.Equal(t, 2, cfg.Cipher.Workers)
	assert.Equal(t, 8, cfg.Cipher.ParallelThreshold)
}

func TestInitializeRestConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := InitializeRestConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.Equal(t, uint32(DefaultKeySizeBits), cfg.Cipher.DefaultKeySize)
}

func TestInitializeRestConfig_EnvironmentOverride(t *testing.T) {
	t.Setenv("AES_VAULT_PORT", "7000")
	t.Setenv("AES_VAULT_CIPHER_DEFAULT_KEY_SIZE", "192")

	cfg, err := InitializeRestConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, uint32(192), cfg.Cipher.DefaultKeySize)
}

func TestInitializeRestConfig_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cipher:\n  default_key_size: 100\n"), 0600))

	_, err := InitializeRestConfig(path)
	assert.Error(t, err)
}

func TestRestConfig_ValidateNestedSettings(t *testing.T) {
	cfg := &RestConfig{
		Port:   "8080",
		Logger: LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole},
		Cipher: *NewCipherSettings(),
	}

	require.NotPanics(t, func() {
		assert.NoError(t, cfg.Validate())
	})

	cfg.Cipher.DefaultKeySize = 512
	require.NotPanics(t, func() {
		assert.Error(t, cfg.Validate())
	})
}

func TestInitializeRestConfig_ShippedSample(t *testing.T) {
	cfg, err := InitializeRestConfig(filepath.Join("..", "..", "..", "configs", "rest-app.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, uint32(256), cfg.Cipher.DefaultKeySize)
	assert.Equal(t, 0, cfg.Cipher.Workers)
	assert.Equal(t, 64, cfg.Cipher.ParallelThreshold)
}
