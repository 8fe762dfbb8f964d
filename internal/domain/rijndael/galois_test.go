//go:build unit
// +build unit

package rijndael

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiply_KnownProducts(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{0x57, 0x83, 0xC1},
		{0x57, 0x13, 0xFE},
		{0x57, 0x02, 0xAE},
		{0x57, 0x04, 0x47},
		{0x57, 0x08, 0x8E},
		{0x57, 0x10, 0x07},
		{0x80, 0x02, 0x1B},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Multiply(tt.a, tt.b), "0x%02x * 0x%02x", tt.a, tt.b)
	}
}

func TestMultiply_FieldLaws(t *testing.T) {
	for a := 0; a < 256; a++ {
		x := byte(a)
		assert.Equal(t, x, Multiply(x, 1))
		assert.Equal(t, byte(0), Multiply(x, 0))
		for b := 0; b < 256; b++ {
			y := byte(b)
			if Multiply(x, y) != Multiply(y, x) {
				t.Fatalf("multiply not commutative for 0x%02x, 0x%02x", x, y)
			}
		}
	}
}

func TestMultiply_DistributesOverXor(t *testing.T) {
	for a := 0; a < 256; a += 7 {
		for b := 0; b < 256; b += 5 {
			for c := 0; c < 256; c += 11 {
				x, y, z := byte(a), byte(b), byte(c)
				assert.Equal(t, Multiply(x, y^z), Multiply(x, y)^Multiply(x, z))
			}
		}
	}
}

func TestInverse(t *testing.T) {
	assert.Equal(t, byte(0), Inverse(0))
	assert.Equal(t, byte(0x01), Inverse(0x01))
	assert.Equal(t, byte(0xCA), Inverse(0x53))

	for a := 1; a < 256; a++ {
		assert.Equal(t, byte(1), Multiply(byte(a), Inverse(byte(a))), "inverse of 0x%02x", a)
	}
}
