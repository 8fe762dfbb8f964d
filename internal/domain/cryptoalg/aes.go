package cryptoalg

// AESProcessor handles AES symmetric encryption operations.
// Blocks are encrypted independently with zero padding on the last block; there is no IV and no authentication.
type AESProcessor interface {
	// GenerateKey generates a random AES key of the specified size.
	// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
	GenerateKey(keySize int) ([]byte, error)

	// DeriveKey hashes a passphrase into a key of keySize bytes (16, 24 or 32).
	DeriveKey(passphrase string, keySize int) ([]byte, error)

	// Encrypt encrypts plaintext data using AES with the provided symmetric key.
	// The output length is the input length rounded up to whole 16-byte blocks.
	Encrypt(data, key []byte) ([]byte, error)

	// Decrypt decrypts AES ciphertext using the provided symmetric key.
	// Trailing zero padding added at encryption time is returned as-is.
	Decrypt(ciphertext, key []byte) ([]byte, error)
}
