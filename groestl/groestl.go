// Package groestl implements the Groestl hash algorithm, a SHA-3 finalist
// built from AES-style P and Q permutations. Digest sizes up to 32 bytes
// run the 512-bit engine; larger sizes run the 1024-bit engine.
package groestl

import (
	"fmt"
	"hash"

	"github.com/hashforge/hashkit"
	"github.com/hashforge/hashkit/internal/block"
)

func init() {
	hashkit.Register("groestl-224", func() hash.Hash { return mustNew(28) })
	hashkit.Register("groestl-256", func() hash.Hash { return mustNew(32) })
	hashkit.Register("groestl-384", func() hash.Hash { return mustNew(48) })
	hashkit.Register("groestl-512", func() hash.Hash { return mustNew(64) })
}

const (
	// MaxSize is the largest supported digest size in bytes.
	MaxSize = 64
	// BlockSize512 is the block size of the small engine in bytes.
	BlockSize512 = 64
	// BlockSize1024 is the block size of the large engine in bytes.
	BlockSize1024 = 128
)

// state holds up to sixteen 8-byte columns; the small engine uses the
// first eight.
type state [16][8]byte

type digest struct {
	h      state
	buf    block.Buffer
	blocks uint64 // count of compressed blocks
	size   int
	cols   int
	rounds int
}

// New returns a Groestl hash producing a digest of size bytes, between
// 1 and 64.
func New(size int) (hash.Hash, error) {
	if size < 1 || size > MaxSize {
		return nil, &hashkit.ConstructionError{
			Alg: "groestl", Param: "size",
			Reason: fmt.Sprintf("%d not between 1 and %d", size, MaxSize),
		}
	}
	d := &digest{size: size}
	if size <= 32 {
		d.cols, d.rounds = 8, 10
		d.buf = block.New(BlockSize512)
	} else {
		d.cols, d.rounds = 16, 14
		d.buf = block.New(BlockSize1024)
	}
	d.Reset()
	return d, nil
}

func mustNew(size int) hash.Hash {
	h, err := New(size)
	if err != nil {
		panic(err)
	}
	return h
}

// New256 returns a Groestl-256 hash.
func New256() hash.Hash { return mustNew(32) }

// New512 returns a Groestl-512 hash.
func New512() hash.Hash { return mustNew(64) }

func (d *digest) Reset() {
	d.h = state{}
	// Initial state encodes the digest bit length in the last column.
	n := uint16(8 * d.size)
	d.h[d.cols-1][6] = byte(n >> 8)
	d.h[d.cols-1][7] = byte(n)
	d.buf.Reset()
	d.blocks = 0
}

func (d *digest) Size() int { return d.size }

func (d *digest) BlockSize() int { return d.buf.Size() }

func (d *digest) Write(p []byte) (int, error) {
	return d.buf.Write(p, d.compress), nil
}

func (d *digest) Sum(in []byte) []byte {
	d0 := *d
	return append(in, d0.checkSum()...)
}

// The final block carries a 0x80 terminator and the total block count as a
// big-endian 64-bit field; a near-full block spills into a second one.
func (d *digest) checkSum() []byte {
	bs := d.buf.Size()
	total := d.blocks + 1
	if d.buf.Len() >= bs-8 {
		total++
	}
	d.buf.PadSuffix(block.Suffix{Terminator: 0x80, Width: 8, BigEndian: true}, 0, total, d.compress)

	// Output transform: P(h) xor h, truncated to the last size bytes.
	p := d.h
	permute(&p, d.cols, d.rounds, false)
	out := make([]byte, 0, d.cols*8)
	for c := 0; c < d.cols; c++ {
		for r := 0; r < 8; r++ {
			out = append(out, d.h[c][r]^p[c][r])
		}
	}
	return out[len(out)-d.size:]
}

// Sum256 returns the Groestl-256 digest of data.
func Sum256(data []byte) [32]byte {
	d := mustNew(32).(*digest)
	d.Write(data)
	var out [32]byte
	copy(out[:], d.checkSum())
	return out
}

// Sum512 returns the Groestl-512 digest of data.
func Sum512(data []byte) [64]byte {
	d := mustNew(64).(*digest)
	d.Write(data)
	var out [64]byte
	copy(out[:], d.checkSum())
	return out
}

func (d *digest) compress(blk []byte) {
	var m, hm state
	for c := 0; c < d.cols; c++ {
		for r := 0; r < 8; r++ {
			m[c][r] = blk[8*c+r]
			hm[c][r] = d.h[c][r] ^ m[c][r]
		}
	}
	permute(&hm, d.cols, d.rounds, false)
	permute(&m, d.cols, d.rounds, true)
	for c := 0; c < d.cols; c++ {
		for r := 0; r < 8; r++ {
			d.h[c][r] ^= hm[c][r] ^ m[c][r]
		}
	}
	d.blocks++
}

// Row shift offsets for the four permutation variants.
var (
	shiftP512  = [8]int{0, 1, 2, 3, 4, 5, 6, 7}
	shiftQ512  = [8]int{1, 3, 5, 7, 0, 2, 4, 6}
	shiftP1024 = [8]int{0, 1, 2, 3, 4, 5, 6, 11}
	shiftQ1024 = [8]int{1, 3, 5, 11, 0, 2, 4, 6}
)

// MixBytes multiplier circulant (02 02 03 04 05 03 05 07).
var mix = [8]byte{2, 2, 3, 4, 5, 3, 5, 7}

func permute(s *state, cols, rounds int, q bool) {
	var shift *[8]int
	switch {
	case cols == 8 && q:
		shift = &shiftQ512
	case cols == 8:
		shift = &shiftP512
	case q:
		shift = &shiftQ1024
	default:
		shift = &shiftP1024
	}
	var ns state
	for rnd := 0; rnd < rounds; rnd++ {
		// AddRoundConstant
		if q {
			for c := 0; c < cols; c++ {
				for r := 0; r < 8; r++ {
					s[c][r] ^= 0xff
				}
				s[c][7] ^= byte(c<<4) ^ byte(rnd)
			}
		} else {
			for c := 0; c < cols; c++ {
				s[c][0] ^= byte(c<<4) ^ byte(rnd)
			}
		}
		// SubBytes and ShiftBytes
		for r := 0; r < 8; r++ {
			for c := 0; c < cols; c++ {
				ns[c][r] = sbox[s[(c+shift[r])%cols][r]]
			}
		}
		// MixBytes
		for c := 0; c < cols; c++ {
			col := ns[c]
			for r := 0; r < 8; r++ {
				var v byte
				for k := 0; k < 8; k++ {
					v ^= gmul(col[k], mix[(k-r+8)&7])
				}
				s[c][r] = v
			}
		}
	}
}

// gmul multiplies in GF(2^8) with the AES reduction polynomial.
func gmul(a, b byte) byte {
	var r byte
	for b != 0 {
		if b&1 != 0 {
			r ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return r
}

// sbox is the AES S-box.
var sbox = [256]byte{
	0x63, 0x7c, 0x77, 0x7b, 0xf2, 0x6b, 0x6f, 0xc5, 0x30, 0x01, 0x67, 0x2b,
	0xfe, 0xd7, 0xab, 0x76, 0xca, 0x82, 0xc9, 0x7d, 0xfa, 0x59, 0x47, 0xf0,
	0xad, 0xd4, 0xa2, 0xaf, 0x9c, 0xa4, 0x72, 0xc0, 0xb7, 0xfd, 0x93, 0x26,
	0x36, 0x3f, 0xf7, 0xcc, 0x34, 0xa5, 0xe5, 0xf1, 0x71, 0xd8, 0x31, 0x15,
	0x04, 0xc7, 0x23, 0xc3, 0x18, 0x96, 0x05, 0x9a, 0x07, 0x12, 0x80, 0xe2,
	0xeb, 0x27, 0xb2, 0x75, 0x09, 0x83, 0x2c, 0x1a, 0x1b, 0x6e, 0x5a, 0xa0,
	0x52, 0x3b, 0xd6, 0xb3, 0x29, 0xe3, 0x2f, 0x84, 0x53, 0xd1, 0x00, 0xed,
	0x20, 0xfc, 0xb1, 0x5b, 0x6a, 0xcb, 0xbe, 0x39, 0x4a, 0x4c, 0x58, 0xcf,
	0xd0, 0xef, 0xaa, 0xfb, 0x43, 0x4d, 0x33, 0x85, 0x45, 0xf9, 0x02, 0x7f,
	0x50, 0x3c, 0x9f, 0xa8, 0x51, 0xa3, 0x40, 0x8f, 0x92, 0x9d, 0x38, 0xf5,
	0xbc, 0xb6, 0xda, 0x21, 0x10, 0xff, 0xf3, 0xd2, 0xcd, 0x0c, 0x13, 0xec,
	0x5f, 0x97, 0x44, 0x17, 0xc4, 0xa7, 0x7e, 0x3d, 0x64, 0x5d, 0x19, 0x73,
	0x60, 0x81, 0x4f, 0xdc, 0x22, 0x2a, 0x90, 0x88, 0x46, 0xee, 0xb8, 0x14,
	0xde, 0x5e, 0x0b, 0xdb, 0xe0, 0x32, 0x3a, 0x0a, 0x49, 0x06, 0x24, 0x5c,
	0xc2, 0xd3, 0xac, 0x62, 0x91, 0x95, 0xe4, 0x79, 0xe7, 0xc8, 0x37, 0x6d,
	0x8d, 0xd5, 0x4e, 0xa9, 0x6c, 0x56, 0xf4, 0xea, 0x65, 0x7a, 0xae, 0x08,
	0xba, 0x78, 0x25, 0x2e, 0x1c, 0xa6, 0xb4, 0xc6, 0xe8, 0xdd, 0x74, 0x1f,
	0x4b, 0xbd, 0x8b, 0x8a, 0x70, 0x3e, 0xb5, 0x66, 0x48, 0x03, 0xf6, 0x0e,
	0x61, 0x35, 0x57, 0xb9, 0x86, 0xc1, 0x1d, 0x9e, 0xe1, 0xf8, 0x98, 0x11,
	0x69, 0xd9, 0x8e, 0x94, 0x9b, 0x1e, 0x87, 0xe9, 0xce, 0x55, 0x28, 0xdf,
	0x8c, 0xa1, 0x89, 0x0d, 0xbf, 0xe6, 0x42, 0x68, 0x41, 0x99, 0x2d, 0x0f,
	0xb0, 0x54, 0xbb, 0x16,
}
