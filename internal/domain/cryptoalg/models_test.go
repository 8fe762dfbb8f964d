//go:build unit
// +build unit

package cryptoalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyMaterialValidation(t *testing.T) {
	tests := []struct {
		name     string
		material *KeyMaterial
		wantErr  bool
	}{
		{"raw key", &KeyMaterial{Key: make([]byte, 16)}, false},
		{"passphrase with size", &KeyMaterial{Passphrase: "secret", KeySize: 192}, false},
		{"neither", &KeyMaterial{}, true},
		{"both", &KeyMaterial{Key: make([]byte, 16), Passphrase: "secret", KeySize: 128}, true},
		{"passphrase without size", &KeyMaterial{Passphrase: "secret"}, true},
		{"passphrase with bad size", &KeyMaterial{Passphrase: "secret", KeySize: 100}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.material.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKeySizeBytes(t *testing.T) {
	assert.Equal(t, AESKeySize128, KeySizeBytes(128))
	assert.Equal(t, AESKeySize192, KeySizeBytes(192))
	assert.Equal(t, AESKeySize256, KeySizeBytes(256))
	assert.Equal(t, 0, KeySizeBytes(512))
}
