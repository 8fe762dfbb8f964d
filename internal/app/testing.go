//go:build unit
// +build unit

package app

import (
	"testing"

	"github.com/MGTheTrain/aes-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/aes-vault/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/aes-vault/internal/pkg/testutil"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// SetupTestCipherService wires a cipher service over the real AES processor.
func SetupTestCipherService(t *testing.T) cryptoalg.CipherService {
	t.Helper()

	log := testutil.SetupTestLogger(t)

	processor, err := cryptography.NewAESProcessor(log)
	require.NoError(t, err)

	service, err := NewCipherService(processor, log)
	require.NoError(t, err)

	return service
}

// MockAESProcessor is a mock implementation of AESProcessor
type MockAESProcessor struct {
	mock.Mock
}

func (m *MockAESProcessor) GenerateKey(keySize int) ([]byte, error) {
	args := m.Called(keySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAESProcessor) DeriveKey(passphrase string, keySize int) ([]byte, error) {
	args := m.Called(passphrase, keySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAESProcessor) Encrypt(data, key []byte) ([]byte, error) {
	args := m.Called(data, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAESProcessor) Decrypt(ciphertext, key []byte) ([]byte, error) {
	args := m.Called(ciphertext, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
