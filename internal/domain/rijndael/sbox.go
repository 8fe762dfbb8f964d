package rijndael

import "math/bits"

var (
	sbox    [256]byte
	invSbox [256]byte
)

func init() {
	for i := 0; i < 256; i++ {
		x := byte(i)
		s := affine(Inverse(x))
		sbox[i] = s
		invSbox[s] = x
	}
}

// affine applies the FIPS-197 affine map: b ^ rotl(b,1) ^ rotl(b,2) ^ rotl(b,3) ^ rotl(b,4) ^ 0x63.
func affine(b byte) byte {
	return b ^
		bits.RotateLeft8(b, 1) ^
		bits.RotateLeft8(b, 2) ^
		bits.RotateLeft8(b, 3) ^
		bits.RotateLeft8(b, 4) ^
		0x63
}

// Substitute returns SBox[x].
func Substitute(x byte) byte {
	return sbox[x]
}

// InvSubstitute returns InvSBox[y].
func InvSubstitute(y byte) byte {
	return invSbox[y]
}

// SubBytes substitutes every byte of s through the S-box.
func SubBytes(s State) State {
	var out State
	for i, b := range s {
		out[i] = sbox[b]
	}
	return out
}

// InvSubBytes substitutes every byte of s through the inverse S-box.
func InvSubBytes(s State) State {
	var out State
	for i, b := range s {
		out[i] = invSbox[b]
	}
	return out
}
