package rijndael

import "fmt"

// maxRcon covers the deepest expansion step, i/Nk = 10 for 128-bit keys.
const maxRcon = 10

var rcon [maxRcon + 1]byte

func init() {
	r := byte(1)
	for j := 1; j <= maxRcon; j++ {
		rcon[j] = r
		r = Multiply(r, 0x02)
	}
}

// Rcon returns the round constant x^(j-1) in GF(2^8) for expansion step j >= 1.
func Rcon(j int) byte {
	if j < 1 || j > maxRcon {
		panic(&DomainError{Op: "rcon", Msg: fmt.Sprintf("index %d out of range 1..%d", j, maxRcon)})
	}
	return rcon[j]
}

// Parameters returns Nk (key words) and Nr (rounds) for a key of keyLen bytes.
func Parameters(keyLen int) (nk, nr int, err error) {
	switch keyLen {
	case 16:
		return 4, 10, nil
	case 24:
		return 6, 12, nil
	case 32:
		return 8, 14, nil
	default:
		return 0, 0, &ConfigError{KeyLength: keyLen}
	}
}

// KeySchedule is the expanded key: 4*(Nr+1) words. It is immutable once built.
type KeySchedule struct {
	words []Word
	nk    int
	nr    int
}

// ExpandKey derives the key schedule for a 16, 24 or 32 byte key.
func ExpandKey(key []byte) (*KeySchedule, error) {
	nk, nr, err := Parameters(len(key))
	if err != nil {
		return nil, err
	}

	total := 4 * (nr + 1)
	w := make([]Word, total)
	for i := 0; i < nk; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}

	for i := nk; i < total; i++ {
		temp := w[i-1]
		switch {
		case i%nk == 0:
			temp = xorRcon(subWord(rotWord(temp)), i/nk)
		case nk == 8 && i%nk == 4:
			temp = subWord(temp)
		}
		w[i] = xorWords(w[i-nk], temp)
	}

	return &KeySchedule{words: w, nk: nk, nr: nr}, nil
}

// Rounds returns Nr.
func (ks *KeySchedule) Rounds() int {
	return ks.nr
}

// KeyWords returns Nk.
func (ks *KeySchedule) KeyWords() int {
	return ks.nk
}

// RoundKeyCount returns Nr+1.
func (ks *KeySchedule) RoundKeyCount() int {
	return ks.nr + 1
}

// Words returns a copy of the expanded words.
func (ks *KeySchedule) Words() []Word {
	out := make([]Word, len(ks.words))
	copy(out, ks.words)
	return out
}

// RoundKey returns round key i, built from words 4i..4i+3 (one word per column).
func (ks *KeySchedule) RoundKey(i int) State {
	if i < 0 || i > ks.nr {
		panic(&DomainError{Op: "round key", Msg: fmt.Sprintf("index %d out of range 0..%d", i, ks.nr)})
	}
	var s State
	for col := 0; col < 4; col++ {
		copy(s[4*col:4*col+4], ks.words[4*i+col][:])
	}
	return s
}
