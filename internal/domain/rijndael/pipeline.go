package rijndael

var (
	mixMatrix = [4][4]byte{
		{0x02, 0x03, 0x01, 0x01},
		{0x01, 0x02, 0x03, 0x01},
		{0x01, 0x01, 0x02, 0x03},
		{0x03, 0x01, 0x01, 0x02},
	}
	invMixMatrix = [4][4]byte{
		{0x0E, 0x0B, 0x0D, 0x09},
		{0x09, 0x0E, 0x0B, 0x0D},
		{0x0D, 0x09, 0x0E, 0x0B},
		{0x0B, 0x0D, 0x09, 0x0E},
	}
)

// AddRoundKey XORs the round key into the state.
func AddRoundKey(s, roundKey State) State {
	return xorStates(s, roundKey)
}

// ShiftRows rotates row r left by r positions.
func ShiftRows(s State) State {
	var out State
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.Set(row, col, s.At(row, (col+row)%4))
		}
	}
	return out
}

// InvShiftRows rotates row r right by r positions.
func InvShiftRows(s State) State {
	var out State
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.Set(row, (col+row)%4, s.At(row, col))
		}
	}
	return out
}

// MixColumns multiplies every column by the fixed MixColumns matrix.
func MixColumns(s State) State {
	return mixWith(&mixMatrix, s)
}

// InvMixColumns multiplies every column by the inverse MixColumns matrix.
func InvMixColumns(s State) State {
	return mixWith(&invMixMatrix, s)
}

func mixWith(m *[4][4]byte, s State) State {
	var out State
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var acc byte
			for k := 0; k < 4; k++ {
				acc ^= Multiply(m[row][k], s.At(k, col))
			}
			out.Set(row, col, acc)
		}
	}
	return out
}

// EncryptBlock runs the forward cipher over one state.
func EncryptBlock(ks *KeySchedule, s State) State {
	nr := ks.Rounds()

	s = AddRoundKey(s, ks.RoundKey(0))
	for round := 1; round < nr; round++ {
		s = SubBytes(s)
		s = ShiftRows(s)
		s = MixColumns(s)
		s = AddRoundKey(s, ks.RoundKey(round))
	}

	// Final round skips MixColumns.
	s = SubBytes(s)
	s = ShiftRows(s)
	return AddRoundKey(s, ks.RoundKey(nr))
}

// DecryptBlock runs the inverse cipher over one state, consuming round keys Nr..0.
func DecryptBlock(ks *KeySchedule, s State) State {
	nr := ks.Rounds()

	s = AddRoundKey(s, ks.RoundKey(nr))
	for round := nr - 1; round >= 1; round-- {
		s = InvShiftRows(s)
		s = InvSubBytes(s)
		s = AddRoundKey(s, ks.RoundKey(round))
		s = InvMixColumns(s)
	}

	s = InvShiftRows(s)
	s = InvSubBytes(s)
	return AddRoundKey(s, ks.RoundKey(0))
}
