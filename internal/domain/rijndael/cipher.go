package rijndael

import (
	"crypto/cipher"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultParallelThreshold is the block count from which Encrypt and Decrypt fan out to workers.
const DefaultParallelThreshold = 64

// Cipher is a cipher context bound to one key schedule.
type Cipher struct {
	schedule  *KeySchedule
	workers   int
	threshold int
}

// Option configures a Cipher.
type Option func(*Cipher)

// WithWorkers bounds the number of goroutines used per call. n <= 1 disables fan-out.
func WithWorkers(n int) Option {
	return func(c *Cipher) {
		c.workers = n
	}
}

// WithParallelThreshold sets the minimum block count that triggers fan-out.
func WithParallelThreshold(blocks int) Option {
	return func(c *Cipher) {
		c.threshold = blocks
	}
}

// New expands key and returns a cipher context. key must be 16, 24 or 32 bytes.
func New(key []byte, opts ...Option) (*Cipher, error) {
	ks, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}
	c := &Cipher{
		schedule:  ks,
		workers:   runtime.GOMAXPROCS(0),
		threshold: DefaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Rounds returns Nr for the bound key.
func (c *Cipher) Rounds() int {
	return c.schedule.Rounds()
}

// Encrypt zero-pads plaintext to whole blocks and encrypts each block independently.
func (c *Cipher) Encrypt(plaintext []byte) []byte {
	blocks := SplitBlocks(plaintext)
	c.process(blocks, EncryptBlock)
	return JoinBlocks(blocks)
}

// Decrypt decrypts each 16-byte block independently. Zero padding is not removed.
func (c *Cipher) Decrypt(ciphertext []byte) ([]byte, error) {
	blocks, err := SplitCiphertext(ciphertext)
	if err != nil {
		return nil, err
	}
	c.process(blocks, DecryptBlock)
	return JoinBlocks(blocks), nil
}

// EncryptBlock encrypts exactly one 16-byte block.
func (c *Cipher) EncryptBlock(block []byte) ([]byte, error) {
	s, err := StateFromBlock(block)
	if err != nil {
		return nil, err
	}
	out := EncryptBlock(c.schedule, s)
	return out.Bytes(), nil
}

// DecryptBlock decrypts exactly one 16-byte block.
func (c *Cipher) DecryptBlock(block []byte) ([]byte, error) {
	s, err := StateFromBlock(block)
	if err != nil {
		return nil, err
	}
	out := DecryptBlock(c.schedule, s)
	return out.Bytes(), nil
}

// Block adapts the context to crypto/cipher.Block.
func (c *Cipher) Block() cipher.Block {
	return blockAdapter{c}
}

// process transforms blocks in place. Each worker writes only its own index, so order is kept.
func (c *Cipher) process(blocks []State, fn func(*KeySchedule, State) State) {
	if c.workers <= 1 || len(blocks) < c.threshold {
		for i := range blocks {
			blocks[i] = fn(c.schedule, blocks[i])
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(c.workers)
	for i := range blocks {
		g.Go(func() error {
			blocks[i] = fn(c.schedule, blocks[i])
			return nil
		})
	}
	_ = g.Wait()
}

type blockAdapter struct {
	c *Cipher
}

func (blockAdapter) BlockSize() int { return BlockSize }

func (b blockAdapter) Encrypt(dst, src []byte) {
	out := EncryptBlock(b.c.schedule, mustState("encrypt", dst, src))
	copy(dst, out[:])
}

func (b blockAdapter) Decrypt(dst, src []byte) {
	out := DecryptBlock(b.c.schedule, mustState("decrypt", dst, src))
	copy(dst, out[:])
}

func mustState(op string, dst, src []byte) State {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic(&DomainError{Op: op, Msg: fmt.Sprintf("buffers of %d and %d bytes are shorter than a block", len(dst), len(src))})
	}
	var s State
	copy(s[:], src[:BlockSize])
	return s
}
