package v1

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/aes-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/aes-vault/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// CipherRequest carries hex-encoded data and either a hex key or a passphrase with key size in bits.
type CipherRequest struct {
	Key        string `json:"key" validate:"required_without=Passphrase,excluded_with=Passphrase,omitempty,hexbytes"`
	Passphrase string `json:"passphrase" validate:"required_without=Key"`
	KeySize    uint32 `json:"key_size" validate:"required_with=Passphrase,omitempty,keysize"`
	Data       string `json:"data" validate:"omitempty,hexbytes"`
}

// Validate for validating CipherRequest struct
func (r *CipherRequest) Validate() error {
	return validateStruct(r)
}

// KeyMaterial decodes the request into domain key material.
func (r *CipherRequest) KeyMaterial() (*cryptoalg.KeyMaterial, error) {
	material := &cryptoalg.KeyMaterial{
		Passphrase: r.Passphrase,
		KeySize:    r.KeySize,
	}
	if r.Key != "" {
		key, err := hex.DecodeString(r.Key)
		if err != nil {
			return nil, fmt.Errorf("key is not valid hex: %w", err)
		}
		material.Key = key
	}
	return material, nil
}

// DataBytes decodes the hex payload.
func (r *CipherRequest) DataBytes() ([]byte, error) {
	data, err := hex.DecodeString(r.Data)
	if err != nil {
		return nil, fmt.Errorf("data is not valid hex: %w", err)
	}
	return data, nil
}

// EncryptResponse holds hex ciphertext.
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

// DecryptResponse holds hex plaintext, zero padding included.
type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
}

// GenerateKeyRequest asks for a key of KeySize bits. Zero selects the configured default.
type GenerateKeyRequest struct {
	KeySize uint32 `json:"key_size" validate:"omitempty,keysize"`
}

// Validate for validating GenerateKeyRequest struct
func (r *GenerateKeyRequest) Validate() error {
	return validateStruct(r)
}

// GeneratedKeyResponse describes a generated key. Key is hex encoded.
type GeneratedKeyResponse struct {
	ID              string    `json:"id"`
	Algorithm       string    `json:"algorithm"`
	Type            string    `json:"type"`
	KeySize         uint32    `json:"key_size"`
	Key             string    `json:"key"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

func validateStruct(s interface{}) error {
	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		return err
	}

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}
