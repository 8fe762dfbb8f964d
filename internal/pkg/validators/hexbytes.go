package validators

import (
	"encoding/hex"

	"github.com/go-playground/validator/v10"
)

// HexBytesTag is the struct tag that applies HexBytesValidation.
const HexBytesTag = "hexbytes"

// HexBytesValidation accepts strings that encoding/hex decodes: an even number of
// hex digits and no 0x prefix.
func HexBytesValidation(fl validator.FieldLevel) bool {
	_, err := hex.DecodeString(fl.Field().String())
	return err == nil
}
