//go:build unit
// +build unit

package rijndael

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func hexState(t *testing.T, s string) State {
	t.Helper()
	st, err := StateFromBlock(hexBytes(t, s))
	require.NoError(t, err)
	return st
}
