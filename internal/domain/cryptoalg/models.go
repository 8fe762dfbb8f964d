package cryptoalg

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/aes-vault/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// KeyMaterial identifies the key for one cipher call: either raw key bytes or a passphrase
// plus the key size in bits to derive.
type KeyMaterial struct {
	Key        []byte `validate:"required_without=Passphrase,excluded_with=Passphrase"`
	Passphrase string `validate:"required_without=Key"`
	KeySize    uint32 `validate:"required_with=Passphrase,omitempty,keysize"`
}

// Validate for validating KeyMaterial struct
func (m *KeyMaterial) Validate() error {
	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		return err
	}

	err := validate.Struct(m)
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

// GeneratedKey is a freshly generated symmetric key with its metadata.
type GeneratedKey struct {
	ID              string
	Algorithm       string
	Type            string
	KeySize         uint32
	Key             []byte
	DateTimeCreated time.Time
}
