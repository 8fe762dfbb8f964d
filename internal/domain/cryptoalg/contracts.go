package cryptoalg

import "context"

// CipherService defines the cipher operations exposed to the CLI and REST front ends.
type CipherService interface {
	// Encrypt encrypts plaintext with the resolved key material.
	Encrypt(ctx context.Context, material *KeyMaterial, plaintext []byte) ([]byte, error)

	// Decrypt decrypts ciphertext with the resolved key material. Padding is not stripped.
	Decrypt(ctx context.Context, material *KeyMaterial, ciphertext []byte) ([]byte, error)

	// GenerateKey creates a random key of keySize bits (128, 192 or 256).
	GenerateKey(ctx context.Context, keySize uint32) (*GeneratedKey, error)
}
