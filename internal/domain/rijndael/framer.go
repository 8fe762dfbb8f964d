package rijndael

// SplitBlocks cuts data into 16-byte states, right-padding the last one with zeros.
// Empty input yields a single all-zero block.
func SplitBlocks(data []byte) []State {
	n := (len(data) + BlockSize - 1) / BlockSize
	if n == 0 {
		n = 1
	}
	blocks := make([]State, n)
	for i := range blocks {
		start := i * BlockSize
		if start < len(data) {
			copy(blocks[i][:], data[start:])
		}
	}
	return blocks
}

// SplitCiphertext cuts data into 16-byte states. Data must be a positive multiple of 16 bytes.
func SplitCiphertext(data []byte) ([]State, error) {
	if len(data) == 0 {
		return nil, &InputError{Length: 0, Reason: "ciphertext is empty"}
	}
	if len(data)%BlockSize != 0 {
		return nil, &InputError{Length: len(data), Reason: "ciphertext is not a multiple of 16 bytes"}
	}
	blocks := make([]State, len(data)/BlockSize)
	for i := range blocks {
		copy(blocks[i][:], data[i*BlockSize:])
	}
	return blocks, nil
}

// JoinBlocks concatenates states in order. Padding is kept.
func JoinBlocks(blocks []State) []byte {
	out := make([]byte, 0, len(blocks)*BlockSize)
	for _, b := range blocks {
		out = append(out, b[:]...)
	}
	return out
}
