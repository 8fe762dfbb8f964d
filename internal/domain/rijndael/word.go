package rijndael

// Word is a column of four bytes in the key schedule.
type Word [4]byte

func xorWords(a, b Word) Word {
	return Word{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

// xorRcon folds the round constant for expansion step j into the first byte of w.
func xorRcon(w Word, j int) Word {
	w[0] ^= Rcon(j)
	return w
}

func rotWord(w Word) Word {
	return Word{w[1], w[2], w[3], w[0]}
}

func subWord(w Word) Word {
	return Word{sbox[w[0]], sbox[w[1]], sbox[w[2]], sbox[w[3]]}
}
