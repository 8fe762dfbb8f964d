//go:build unit
// +build unit

package v1

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MGTheTrain/aes-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/aes-vault/internal/domain/rijndael"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestKeyHandler_GenerateKey_Success(t *testing.T) {
	mockService := new(MockCipherService)
	handler := NewKeyHandler(mockService)

	generated := &cryptoalg.GeneratedKey{
		ID:              "abc-123",
		Algorithm:       cryptoalg.AlgorithmAES,
		Type:            cryptoalg.KeyTypeSymmetric,
		KeySize:         128,
		Key:             []byte{0xde, 0xad, 0xbe, 0xef},
		DateTimeCreated: time.Now(),
	}

	mockService.On("GenerateKey", mock.Anything, uint32(128)).Return(generated, nil)

	c, w := newJSONContext(t, `{"key_size": 128}`)
	handler.GenerateKey(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
	assert.Contains(t, w.Body.String(), "deadbeef")
	mockService.AssertExpectations(t)
}

func TestKeyHandler_GenerateKey_InvalidSize(t *testing.T) {
	mockService := new(MockCipherService)
	handler := NewKeyHandler(mockService)

	c, w := newJSONContext(t, `{"key_size": 2048}`)
	handler.GenerateKey(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GenerateKey", mock.Anything, mock.Anything)
}

func TestKeyHandler_GenerateKey_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"entropy failure", errors.New("entropy exhausted"), http.StatusInternalServerError},
		{"canceled context", context.Canceled, http.StatusInternalServerError},
		{"rejected key size", &rijndael.ConfigError{KeyLength: 20}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCipherService)
			handler := NewKeyHandler(mockService)

			mockService.On("GenerateKey", mock.Anything, uint32(256)).Return(nil, tt.err)

			c, w := newJSONContext(t, `{"key_size": 256}`)
			handler.GenerateKey(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), "error generating key")
			mockService.AssertExpectations(t)
		})
	}
}
