package config

import (
	"fmt"

	"github.com/MGTheTrain/aes-vault/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// Cipher defaults
const (
	DefaultKeySizeBits       = 256
	DefaultParallelThreshold = 64
)

// CipherSettings controls key defaults and per-request block fan-out.
// Workers of 0 means one worker per available CPU.
type CipherSettings struct {
	DefaultKeySize    uint32 `mapstructure:"default_key_size" validate:"required,keysize"`
	Workers           int    `mapstructure:"workers" validate:"gte=0,lte=1024"`
	ParallelThreshold int    `mapstructure:"parallel_threshold" validate:"gte=1"`
}

// NewCipherSettings returns settings populated with defaults.
func NewCipherSettings() *CipherSettings {
	return &CipherSettings{
		DefaultKeySize:    DefaultKeySizeBits,
		ParallelThreshold: DefaultParallelThreshold,
	}
}

// Validate checks that all fields in CipherSettings are valid
func (s *CipherSettings) Validate() error {
	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CipherSettings: %w", err)
	}
	return nil
}
