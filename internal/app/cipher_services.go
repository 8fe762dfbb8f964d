package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/aes-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/aes-vault/internal/pkg/logger"

	"github.com/google/uuid"
)

// cipherService implements the CipherService interface on top of an AESProcessor
type cipherService struct {
	aesProcessor   cryptoalg.AESProcessor
	logger         logger.Logger
	defaultKeySize uint32
}

// CipherServiceOption configures a cipher service.
type CipherServiceOption func(*cipherService)

// WithDefaultKeySize sets the key size in bits used by GenerateKey when none is requested.
func WithDefaultKeySize(bits uint32) CipherServiceOption {
	return func(s *cipherService) {
		s.defaultKeySize = bits
	}
}

// NewCipherService creates a new cipherService instance
func NewCipherService(aesProcessor cryptoalg.AESProcessor, logger logger.Logger, opts ...CipherServiceOption) (cryptoalg.CipherService, error) {
	if aesProcessor == nil {
		return nil, fmt.Errorf("AES processor cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	s := &cipherService{
		aesProcessor:   aesProcessor,
		logger:         logger,
		defaultKeySize: 256,
	}
	for _, opt := range opts {
		opt(s)
	}
	if cryptoalg.KeySizeBytes(s.defaultKeySize) == 0 {
		return nil, fmt.Errorf("unsupported default AES key size: %d bits", s.defaultKeySize)
	}
	return s, nil
}

// Encrypt encrypts plaintext with the key resolved from material.
func (s *cipherService) Encrypt(ctx context.Context, material *cryptoalg.KeyMaterial, plaintext []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := s.resolveKey(material)
	if err != nil {
		return nil, err
	}

	ciphertext, err := s.aesProcessor.Encrypt(plaintext, key)
	if err != nil {
		return nil, fmt.Errorf("encryption failed: %w", err)
	}

	s.logger.Info("Encrypted ", len(plaintext), " bytes into ", len(ciphertext), " bytes")
	return ciphertext, nil
}

// Decrypt decrypts ciphertext with the key resolved from material.
func (s *cipherService) Decrypt(ctx context.Context, material *cryptoalg.KeyMaterial, ciphertext []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := s.resolveKey(material)
	if err != nil {
		return nil, err
	}

	plaintext, err := s.aesProcessor.Decrypt(ciphertext, key)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	s.logger.Info("Decrypted ", len(ciphertext), " bytes")
	return plaintext, nil
}

// GenerateKey creates a random key of keySize bits. A keySize of 0 selects the default.
func (s *cipherService) GenerateKey(ctx context.Context, keySize uint32) (*cryptoalg.GeneratedKey, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if keySize == 0 {
		keySize = s.defaultKeySize
	}

	keySizeInBytes := cryptoalg.KeySizeBytes(keySize)
	if keySizeInBytes == 0 {
		return nil, fmt.Errorf("unsupported AES key size: %d bits", keySize)
	}

	key, err := s.aesProcessor.GenerateKey(keySizeInBytes)
	if err != nil {
		return nil, err
	}

	return &cryptoalg.GeneratedKey{
		ID:              uuid.New().String(),
		Algorithm:       cryptoalg.AlgorithmAES,
		Type:            cryptoalg.KeyTypeSymmetric,
		KeySize:         keySize,
		Key:             key,
		DateTimeCreated: time.Now(),
	}, nil
}

func (s *cipherService) resolveKey(material *cryptoalg.KeyMaterial) ([]byte, error) {
	if material == nil {
		return nil, fmt.Errorf("key material cannot be nil")
	}
	if err := material.Validate(); err != nil {
		return nil, err
	}

	if material.Passphrase == "" {
		return material.Key, nil
	}

	key, err := s.aesProcessor.DeriveKey(material.Passphrase, cryptoalg.KeySizeBytes(material.KeySize))
	if err != nil {
		return nil, fmt.Errorf("failed to derive key from passphrase: %w", err)
	}
	return key, nil
}
