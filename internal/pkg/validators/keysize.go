package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// KeySizeTag is the struct tag that applies KeySizeValidation.
const KeySizeTag = "keysize"

// KeySizeValidation accepts AES key sizes in bits: 128, 192 or 256.
func KeySizeValidation(fl validator.FieldLevel) bool {
	switch fl.Field().Uint() {
	case 128, 192, 256:
		return true
	default:
		return false
	}
}

// Register adds the custom validations of this package to v.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation(KeySizeTag, KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register %s validation: %w", KeySizeTag, err)
	}
	if err := v.RegisterValidation(HexBytesTag, HexBytesValidation); err != nil {
		return fmt.Errorf("failed to register %s validation: %w", HexBytesTag, err)
	}
	return nil
}
