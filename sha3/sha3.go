// Package sha3 implements the SHA-3 fixed-output hash functions, the
// SHAKE extendable-output functions, and the pre-standard Keccak variants,
// all built on the Keccak-f[1600] sponge.
//
// The pre-standard Keccak functions differ from SHA-3 only in the domain
// separation byte appended during padding; Ethereum and other systems that
// adopted Keccak before FIPS 202 was finalized still use them.
package sha3

import (
	"encoding/binary"

	"github.com/hashforge/hashkit/internal/block"
)

const (
	// Padding domain separation bytes.
	dsbyteKeccak = 0x01
	dsbyteSHA3   = 0x06
	dsbyteShake  = 0x1f

	// maxRate is the rate of SHAKE128, the widest sponge in this package.
	maxRate = 168
)

// state is the common sponge core. A state absorbs input until the first
// Read or Sum, then squeezes output. Write after Read panics; Sum leaves
// the absorbing state untouched so a caller can continue writing.
type state struct {
	a         [25]uint64
	buf       block.Buffer
	rate      int
	outputLen int
	dsbyte    byte

	squeezing bool
	out       [maxRate]byte
	readIdx   int
}

func newState(rate, outputLen int, dsbyte byte) *state {
	return &state{buf: block.New(rate), rate: rate, outputLen: outputLen, dsbyte: dsbyte}
}

// Reset returns the sponge to its initial absorbing state.
func (s *state) Reset() {
	s.a = [25]uint64{}
	s.buf.Reset()
	s.squeezing = false
	s.readIdx = 0
}

// Size returns the output length in bytes of Sum.
func (s *state) Size() int { return s.outputLen }

// BlockSize returns the sponge rate in bytes.
func (s *state) BlockSize() int { return s.rate }

func (s *state) xorIn(blk []byte) {
	n := len(blk) / 8
	for i := 0; i < n; i++ {
		s.a[i] ^= binary.LittleEndian.Uint64(blk[i*8:])
	}
}

func (s *state) extract() {
	for i := 0; i < s.rate/8; i++ {
		binary.LittleEndian.PutUint64(s.out[i*8:], s.a[i])
	}
}

func (s *state) absorb(blk []byte) {
	s.xorIn(blk)
	keccakF1600(&s.a)
}

// Write absorbs p into the sponge. It panics if called after Read.
func (s *state) Write(p []byte) (int, error) {
	if s.squeezing {
		panic("sha3: Write after Read")
	}
	return s.buf.Write(p, s.absorb), nil
}

func (s *state) padAndPermute() {
	s.absorb(s.buf.PadSponge(s.dsbyte))
	s.extract()
	s.squeezing = true
	s.readIdx = 0
}

// Read squeezes output from the sponge. The first call ends the absorbing
// phase; successive calls continue the same output stream. It never
// returns an error.
func (s *state) Read(out []byte) (int, error) {
	if !s.squeezing {
		s.padAndPermute()
	}
	n := len(out)
	for len(out) > 0 {
		x := copy(out, s.out[s.readIdx:s.rate])
		s.readIdx += x
		out = out[x:]
		if s.readIdx == s.rate {
			keccakF1600(&s.a)
			s.extract()
			s.readIdx = 0
		}
	}
	return n, nil
}

// Sum appends the digest to in. It operates on a copy of the sponge, so
// the caller can keep absorbing afterwards.
func (s *state) Sum(in []byte) []byte {
	dup := s.clone()
	hash := make([]byte, dup.outputLen)
	dup.Read(hash)
	return append(in, hash...)
}

func (s *state) clone() *state {
	dup := *s
	return &dup
}
