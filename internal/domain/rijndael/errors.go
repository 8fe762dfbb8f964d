package rijndael

import "fmt"

// ConfigError reports a key whose length is not 16, 24 or 32 bytes.
type ConfigError struct {
	KeyLength int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid key length %d bytes: must be 16, 24 or 32", e.KeyLength)
}

// InputError reports ciphertext that cannot be split into whole 16-byte blocks.
type InputError struct {
	Length int
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input of %d bytes: %s", e.Length, e.Reason)
}

// DomainError signals a broken internal invariant. It is only ever raised with panic.
type DomainError struct {
	Op  string
	Msg string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("rijndael: %s: %s", e.Op, e.Msg)
}
