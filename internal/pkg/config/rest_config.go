package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/MGTheTrain/aes-vault/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestConfig is the configuration of the REST API binary.
type RestConfig struct {
	Port   string         `mapstructure:"port" validate:"required,numeric"`
	Logger LoggerSettings `mapstructure:"logger"`
	Cipher CipherSettings `mapstructure:"cipher"`
}

// Validate checks the config and all nested settings.
func (c *RestConfig) Validate() error {
	validate := validator.New()
	// Struct walks into Cipher, so its custom rules must be known here too.
	if err := validators.Register(validate); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Cipher.Validate()
}

// InitializeRestConfig loads the YAML file at path, overlays AES_VAULT_* environment
// variables (e.g. AES_VAULT_LOGGER_LOG_LEVEL) and validates the result.
// A missing file is tolerated; defaults and the environment are used instead.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("AES_VAULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.log_format", LogFormatText)
	v.SetDefault("cipher.default_key_size", DefaultKeySizeBits)
	v.SetDefault("cipher.workers", 0)
	v.SetDefault("cipher.parallel_threshold", DefaultParallelThreshold)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
