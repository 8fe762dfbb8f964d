//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/MGTheTrain/aes-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/aes-vault/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCipherService_RoundTripWithRawKey(t *testing.T) {
	service := SetupTestCipherService(t)
	ctx := context.Background()

	generated, err := service.GenerateKey(ctx, 192)
	require.NoError(t, err)
	assert.Len(t, generated.Key, 24)
	assert.Equal(t, cryptoalg.AlgorithmAES, generated.Algorithm)
	assert.Equal(t, cryptoalg.KeyTypeSymmetric, generated.Type)
	assert.NotEmpty(t, generated.ID)

	material := &cryptoalg.KeyMaterial{Key: generated.Key}
	plaintext := []byte("exactly sixteen!")

	ciphertext, err := service.Encrypt(ctx, material, plaintext)
	require.NoError(t, err)

	decrypted, err := service.Decrypt(ctx, material, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestCipherService_RoundTripWithPassphrase(t *testing.T) {
	service := SetupTestCipherService(t)
	ctx := context.Background()

	material := &cryptoalg.KeyMaterial{Passphrase: "correct horse battery staple", KeySize: 256}
	plaintext := []byte("hello")

	ciphertext, err := service.Encrypt(ctx, material, plaintext)
	require.NoError(t, err)
	assert.Len(t, ciphertext, 16)

	decrypted, err := service.Decrypt(ctx, material, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted[:5])
}

func TestCipherService_InvalidMaterial(t *testing.T) {
	service := SetupTestCipherService(t)
	ctx := context.Background()

	_, err := service.Encrypt(ctx, nil, []byte("x"))
	assert.Error(t, err)

	_, err = service.Encrypt(ctx, &cryptoalg.KeyMaterial{}, []byte("x"))
	assert.Error(t, err)

	_, err = service.Decrypt(ctx, &cryptoalg.KeyMaterial{Passphrase: "p"}, make([]byte, 16))
	assert.Error(t, err)
}

func TestCipherService_GenerateKeyRejectsUnsupportedSize(t *testing.T) {
	service := SetupTestCipherService(t)

	_, err := service.GenerateKey(context.Background(), 512)
	assert.Error(t, err)
}

func TestCipherService_CanceledContext(t *testing.T) {
	service := SetupTestCipherService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Encrypt(ctx, &cryptoalg.KeyMaterial{Key: make([]byte, 16)}, []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = service.GenerateKey(ctx, 128)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCipherService_PropagatesProcessorErrors(t *testing.T) {
	processor := new(MockAESProcessor)
	service, err := NewCipherService(processor, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	processorErr := errors.New("boom")
	processor.On("DeriveKey", "secret", 16).Return(make([]byte, 16), nil)
	processor.On("Decrypt", mock.Anything, mock.Anything).Return(nil, processorErr)

	_, err = service.Decrypt(context.Background(), &cryptoalg.KeyMaterial{Passphrase: "secret", KeySize: 128}, make([]byte, 16))
	assert.ErrorIs(t, err, processorErr)
	processor.AssertExpectations(t)
}

func TestNewCipherService_NilProcessor(t *testing.T) {
	_, err := NewCipherService(nil, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}

func TestNewCipherService_NilLogger(t *testing.T) {
	service, err := NewCipherService(new(MockAESProcessor), nil)
	assert.Error(t, err)
	assert.Nil(t, service)
}

func TestCipherService_GenerateKeyUsesDefaultSize(t *testing.T) {
	processor := new(MockAESProcessor)
	processor.On("GenerateKey", 24).Return(make([]byte, 24), nil)

	service, err := NewCipherService(processor, testutil.SetupTestLogger(t), WithDefaultKeySize(192))
	require.NoError(t, err)

	generated, err := service.GenerateKey(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(192), generated.KeySize)
	processor.AssertExpectations(t)
}

func TestNewCipherService_InvalidDefaultKeySize(t *testing.T) {
	_, err := NewCipherService(new(MockAESProcessor), testutil.SetupTestLogger(t), WithDefaultKeySize(160))
	assert.Error(t, err)
}
