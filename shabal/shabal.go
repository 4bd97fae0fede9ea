// Package shabal implements the Shabal hash algorithm, a first-round SHA-3
// candidate still used by the Burstcoin proof-of-capacity scheme. The five
// standard digest sizes from 192 to 512 bits share one engine and differ
// only in their derived initial state and output truncation.
package shabal

import (
	"encoding/binary"
	"fmt"
	"hash"
	"math/bits"

	"github.com/hashforge/hashkit"
	"github.com/hashforge/hashkit/internal/block"
)

func init() {
	for _, n := range [...]int{192, 224, 256, 384, 512} {
		size := n / 8
		hashkit.Register(fmt.Sprintf("shabal-%d", n), func() hash.Hash { return mustNew(size) })
	}
}

const (
	// BlockSize is the block size of Shabal in bytes.
	BlockSize = 64
	// MaxSize is the largest supported digest size in bytes.
	MaxSize = 64
)

type iv struct {
	a [12]uint32
	b [16]uint32
	c [16]uint32
}

// Initial states per digest size, derived once by absorbing two prefix
// blocks of counter words.
var ivs = map[int]*iv{}

func init() {
	for _, size := range [...]int{24, 28, 32, 48, 64} {
		ivs[size] = deriveIV(size * 8)
	}
}

func deriveIV(outBits int) *iv {
	var s iv
	w := uint64(0xffffffffffffffff)
	var m [16]uint32
	for blk := 0; blk < 2; blk++ {
		for i := range m {
			m[i] = uint32(outBits + 16*blk + i)
		}
		core(&s.a, &s.b, &s.c, &m, w)
		for i := range m {
			s.c[i] -= m[i]
		}
		s.b, s.c = s.c, s.b
		w++
	}
	return &s
}

type digest struct {
	a    [12]uint32
	b    [16]uint32
	c    [16]uint32
	w    uint64
	buf  block.Buffer
	size int
}

// New returns a Shabal hash with a digest of size bytes; supported sizes
// are 24, 28, 32, 48 and 64.
func New(size int) (hash.Hash, error) {
	if _, ok := ivs[size]; !ok {
		return nil, &hashkit.ConstructionError{
			Alg: "shabal", Param: "size",
			Reason: fmt.Sprintf("%d not one of 24, 28, 32, 48, 64", size),
		}
	}
	d := &digest{buf: block.New(BlockSize), size: size}
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

// New256 returns a Shabal-256 hash.
func New256() hash.Hash { return mustNew(32) }

func (d *digest) Reset() {
	s := ivs[d.size]
	d.a = s.a
	d.b = s.b
	d.c = s.c
	d.w = 1
	d.buf.Reset()
}

func (d *digest) Size() int { return d.size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	return d.buf.Write(p, d.compress), nil
}

func (d *digest) compress(blk []byte) {
	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(blk[i*4:])
	}
	core(&d.a, &d.b, &d.c, &m, d.w)
	for i := range m {
		d.c[i] -= m[i]
	}
	d.b, d.c = d.c, d.b
	d.w++
}

func (d *digest) Sum(in []byte) []byte {
	d0 := *d
	return append(in, d0.checkSum()...)
}

// Finalization absorbs the padded last block once, then repeats the
// permutation three more times over the same block without advancing the
// counter.
func (d *digest) checkSum() []byte {
	blk := d.buf.PadTerminated(0x80)
	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(blk[i*4:])
	}
	core(&d.a, &d.b, &d.c, &m, d.w)
	for j := 0; j < 3; j++ {
		d.b, d.c = d.c, d.b
		perm(&d.a, &d.b, &d.c, &m, d.w)
	}
	var out [64]byte
	for i, v := range d.b {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out[64-d.size:]
}

// Sum256 returns the Shabal-256 digest of data.
func Sum256(data []byte) [32]byte {
	d := mustNew(32).(*digest)
	d.Write(data)
	var out [32]byte
	copy(out[:], d.checkSum())
	return out
}

// core adds the message into B and runs the keyed permutation.
func core(a *[12]uint32, b, c *[16]uint32, m *[16]uint32, w uint64) {
	for i := range b {
		b[i] += m[i]
	}
	perm(a, b, c, m, w)
}

// perm is the Shabal permutation: a rotation sweep over B, 48 chained
// state updates, and a diffusion of C into A.
func perm(a *[12]uint32, b, c *[16]uint32, m *[16]uint32, w uint64) {
	a[0] ^= uint32(w)
	a[1] ^= uint32(w >> 32)
	for i := range b {
		b[i] = bits.RotateLeft32(b[i], 17)
	}
	for i := 0; i < 48; i++ {
		xa0 := i % 12
		xa1 := (i + 11) % 12
		xb0 := i & 15
		t := bits.RotateLeft32(a[xa1], 15) * 5
		a[xa0] = (a[xa0]^t^c[(16+8-i%16)&15])*3 ^
			b[(xb0+13)&15] ^ (b[(xb0+9)&15] & ^b[(xb0+6)&15]) ^ m[xb0]
		b[xb0] = ^(bits.RotateLeft32(b[xb0], 1) ^ a[xa0])
	}
	for i := 0; i < 12; i++ {
		a[i] += c[(11+i)&15] + c[(15+i)&15] + c[(3+i)&15]
	}
}
