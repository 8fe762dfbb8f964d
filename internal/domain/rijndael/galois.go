package rijndael

// reduction is the low byte of the AES polynomial x^8 + x^4 + x^3 + x + 1 (0x11B).
const reduction = 0x1B

// Multiply returns a*b in GF(2^8) modulo the AES polynomial.
func Multiply(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		carry := a&0x80 != 0
		a <<= 1
		if carry {
			a ^= reduction
		}
		b >>= 1
	}
	return p
}

// Inverse returns the multiplicative inverse of a, computed as a^254.
// The inverse of 0 is defined as 0.
func Inverse(a byte) byte {
	if a == 0 {
		return 0
	}
	result, base := byte(1), a
	for e := 254; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = Multiply(result, base)
		}
		base = Multiply(base, base)
	}
	return result
}
