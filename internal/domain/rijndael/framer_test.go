//go:build unit
// +build unit

package rijndael

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBlocks_Padding(t *testing.T) {
	tests := []struct {
		name      string
		inputLen  int
		blocks    int
		padLength int
	}{
		{"empty", 0, 1, 16},
		{"ten bytes", 10, 1, 6},
		{"exact block", 16, 1, 0},
		{"twenty bytes", 20, 2, 12},
		{"two blocks", 32, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := bytes.Repeat([]byte{0xAB}, tt.inputLen)

			blocks := SplitBlocks(input)
			require.Len(t, blocks, tt.blocks)

			joined := JoinBlocks(blocks)
			assert.Len(t, joined, tt.blocks*BlockSize)
			assert.Equal(t, input, joined[:tt.inputLen])
			assert.Equal(t, make([]byte, tt.padLength), joined[tt.inputLen:])
		})
	}
}

func TestSplitCiphertext(t *testing.T) {
	blocks, err := SplitCiphertext(make([]byte, 48))
	require.NoError(t, err)
	assert.Len(t, blocks, 3)

	for _, n := range []int{0, 1, 15, 17, 33} {
		_, err := SplitCiphertext(make([]byte, n))
		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr, "length %d", n)
		assert.Equal(t, n, inputErr.Length)
	}
}
