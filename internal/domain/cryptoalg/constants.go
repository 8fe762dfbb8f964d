package cryptoalg

// AlgorithmAES represents the AES encryption algorithm
const AlgorithmAES = "AES"

// KeyTypeSymmetric represents a symmetric key
const KeyTypeSymmetric = "symmetric"

// AESKeySize128 is the 128-bit AES key size in bytes
const AESKeySize128 = 16

// AESKeySize192 is the 192-bit AES key size in bytes
const AESKeySize192 = 24

// AESKeySize256 is the 256-bit AES key size in bytes
const AESKeySize256 = 32

// KeySizeBytes converts a key size in bits (128, 192, 256) to bytes. Other sizes return 0.
func KeySizeBytes(bits uint32) int {
	switch bits {
	case 128:
		return AESKeySize128
	case 192:
		return AESKeySize192
	case 256:
		return AESKeySize256
	default:
		return 0
	}
}
