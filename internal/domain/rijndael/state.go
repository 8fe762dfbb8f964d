package rijndael

import "fmt"

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// State is the 4x4 cipher state. Bytes are stored column-major, exactly as they
// appear in a block: state[row][col] lives at index row + 4*col.
type State [BlockSize]byte

// StateFromBlock loads a 16-byte block into a State.
func StateFromBlock(block []byte) (State, error) {
	var s State
	if len(block) != BlockSize {
		return s, &InputError{Length: len(block), Reason: "block must be exactly 16 bytes"}
	}
	copy(s[:], block)
	return s, nil
}

// At returns the byte at the given row and column.
func (s State) At(row, col int) byte {
	return s[stateIndex(row, col)]
}

// Set stores v at the given row and column.
func (s *State) Set(row, col int, v byte) {
	s[stateIndex(row, col)] = v
}

// Bytes serializes the state column-major into a new 16-byte slice.
func (s State) Bytes() []byte {
	out := make([]byte, BlockSize)
	copy(out, s[:])
	return out
}

func stateIndex(row, col int) int {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		panic(&DomainError{Op: "state", Msg: fmt.Sprintf("coordinate (%d,%d) out of range", row, col)})
	}
	return row + 4*col
}

func xorStates(a, b State) State {
	var out State
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}
