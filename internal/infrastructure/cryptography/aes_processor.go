package cryptography

import (
	"crypto/md5" //nolint:gosec // 128-bit passphrase derivation, not used for integrity
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"github.com/MGTheTrain/aes-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/aes-vault/internal/domain/rijndael"
	"github.com/MGTheTrain/aes-vault/internal/pkg/logger"
)

// aesProcessor struct that implements the AESProcessor interface
type aesProcessor struct {
	logger  logger.Logger
	options []rijndael.Option
}

// NewAESProcessor creates and returns a new instance of aesProcessor.
// Cipher options (worker count, parallel threshold) apply to every Encrypt/Decrypt call.
func NewAESProcessor(logger logger.Logger, opts ...rijndael.Option) (cryptoalg.AESProcessor, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &aesProcessor{
		logger:  logger,
		options: opts,
	}, nil
}

// GenerateKey generates a random AES key of 16, 24 or 32 bytes.
func (a *aesProcessor) GenerateKey(keySize int) ([]byte, error) {
	if _, _, err := rijndael.Parameters(keySize); err != nil {
		return nil, fmt.Errorf("failed to generate AES key: %w", err)
	}

	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate AES key: %w", err)
	}

	a.logger.Info("Generated AES key of ", keySize*8, " bits")
	return key, nil
}

// DeriveKey hashes a passphrase into a key: MD5 for 16 bytes, the first 24 bytes of
// SHA-256 for 24 bytes and SHA-256 for 32 bytes.
func (a *aesProcessor) DeriveKey(passphrase string, keySize int) ([]byte, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase cannot be empty")
	}

	switch keySize {
	case cryptoalg.AESKeySize128:
		sum := md5.Sum([]byte(passphrase)) //nolint:gosec
		return sum[:], nil
	case cryptoalg.AESKeySize192:
		sum := sha256.Sum256([]byte(passphrase))
		return sum[:cryptoalg.AESKeySize192], nil
	case cryptoalg.AESKeySize256:
		sum := sha256.Sum256([]byte(passphrase))
		return sum[:], nil
	default:
		return nil, fmt.Errorf("failed to derive AES key: %w", &rijndael.ConfigError{KeyLength: keySize})
	}
}

// Encrypt zero-pads data to whole blocks and encrypts every block with key.
func (a *aesProcessor) Encrypt(data, key []byte) ([]byte, error) {
	c, err := rijndael.New(key, a.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	ciphertext := c.Encrypt(data)
	a.logger.With("rounds", c.Rounds(), "blocks", len(ciphertext)/rijndael.BlockSize).Debug("AES encryption succeeded")
	return ciphertext, nil
}

// Decrypt decrypts every 16-byte block of ciphertext with key.
func (a *aesProcessor) Decrypt(ciphertext, key []byte) ([]byte, error) {
	c, err := rijndael.New(key, a.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	plaintext, err := c.Decrypt(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	a.logger.With("rounds", c.Rounds(), "blocks", len(plaintext)/rijndael.BlockSize).Debug("AES decryption succeeded")
	return plaintext, nil
}
