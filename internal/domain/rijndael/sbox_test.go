//go:build unit
// +build unit

package rijndael

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitute_KnownEntries(t *testing.T) {
	assert.Equal(t, byte(0x63), Substitute(0x00))
	assert.Equal(t, byte(0x7C), Substitute(0x01))
	assert.Equal(t, byte(0xED), Substitute(0x53))
	assert.Equal(t, byte(0x16), Substitute(0xFF))
	assert.Equal(t, byte(0x52), InvSubstitute(0x00))
	assert.Equal(t, byte(0x53), InvSubstitute(0xED))
}

func TestSubstitute_InverseLaw(t *testing.T) {
	seen := make(map[byte]bool, 256)
	for x := 0; x < 256; x++ {
		b := byte(x)
		require.Equal(t, b, InvSubstitute(Substitute(b)))
		require.Equal(t, b, Substitute(InvSubstitute(b)))
		seen[Substitute(b)] = true
	}
	assert.Len(t, seen, 256, "S-box must be a permutation")
}

func TestSubBytes_DoesNotMutateInput(t *testing.T) {
	var s State
	for i := range s {
		s[i] = byte(i)
	}
	orig := s

	out := SubBytes(s)

	assert.Equal(t, orig, s)
	for i := range out {
		assert.Equal(t, Substitute(byte(i)), out[i])
	}
	assert.Equal(t, s, InvSubBytes(out))
}
