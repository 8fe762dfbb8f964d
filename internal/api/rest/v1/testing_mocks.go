//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/aes-vault/internal/domain/cryptoalg"

	"github.com/stretchr/testify/mock"
)

// MockCipherService is a mock implementation of CipherService
type MockCipherService struct {
	mock.Mock
}

func (m *MockCipherService) Encrypt(ctx context.Context, material *cryptoalg.KeyMaterial, plaintext []byte) ([]byte, error) {
	args := m.Called(ctx, material, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCipherService) Decrypt(ctx context.Context, material *cryptoalg.KeyMaterial, ciphertext []byte) ([]byte, error) {
	args := m.Called(ctx, material, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCipherService) GenerateKey(ctx context.Context, keySize uint32) (*cryptoalg.GeneratedKey, error) {
	args := m.Called(ctx, keySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoalg.GeneratedKey), args.Error(1)
}
