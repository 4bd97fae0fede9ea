// Package sm3 implements the SM3 hash algorithm as defined in the Chinese
// national standard GB/T 32905-2016.
package sm3

import (
	"encoding/binary"
	"hash"
	"math/bits"

	"github.com/hashforge/hashkit"
	"github.com/hashforge/hashkit/internal/block"
)

func init() {
	hashkit.Register("sm3", New)
}

const (
	// Size is the size of an SM3 checksum in bytes.
	Size = 32
	// BlockSize is the block size of SM3 in bytes.
	BlockSize = 64
)

type digest struct {
	s   [8]uint32
	buf block.Buffer
	len uint64
}

// New returns a new hash.Hash computing the SM3 checksum.
func New() hash.Hash {
	d := &digest{buf: block.New(BlockSize)}
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.s = [8]uint32{
		0x7380166f, 0x4914b2b9, 0x172442d7, 0xda8a0600,
		0xa96f30bc, 0x163138aa, 0xe38dee4d, 0xb0fb0e4e,
	}
	d.buf.Reset()
	d.len = 0
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	d.len += uint64(len(p))
	return d.buf.Write(p, d.compress), nil
}

func (d *digest) Sum(in []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

func (d *digest) checkSum() [Size]byte {
	d.buf.PadSuffix(block.Suffix{Terminator: 0x80, Width: 8, BigEndian: true}, 0, d.len<<3, d.compress)
	var out [Size]byte
	for i, v := range d.s {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	return out
}

// Sum returns the SM3 checksum of data.
func Sum(data []byte) [Size]byte {
	d := digest{buf: block.New(BlockSize)}
	d.Reset()
	d.Write(data)
	return d.checkSum()
}

func p1(x uint32) uint32 {
	return x ^ bits.RotateLeft32(x, 15) ^ bits.RotateLeft32(x, 23)
}

func (d *digest) compress(p []byte) {
	var w [68]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(p[i*4:])
	}
	for i := 16; i < 68; i++ {
		w[i] = p1(w[i-16]^w[i-9]^bits.RotateLeft32(w[i-3], 15)) ^
			bits.RotateLeft32(w[i-13], 7) ^ w[i-6]
	}
	a, b, c, dd, e, f, g, h := d.s[0], d.s[1], d.s[2], d.s[3], d.s[4], d.s[5], d.s[6], d.s[7]
	for i := 0; i < 64; i++ {
		var t, ff, gg uint32
		if i < 16 {
			t = 0x79cc4519
			ff = a ^ b ^ c
			gg = e ^ f ^ g
		} else {
			t = 0x7a879d8a
			ff = (a & b) | (a & c) | (b & c)
			gg = (e & f) | (^e & g)
		}
		a12 := bits.RotateLeft32(a, 12)
		ss1 := bits.RotateLeft32(a12+e+bits.RotateLeft32(t, i&31), 7)
		ss2 := ss1 ^ a12
		tt1 := ff + dd + ss2 + (w[i] ^ w[i+4])
		tt2 := gg + h + ss1 + w[i]
		dd, c, b, a = c, bits.RotateLeft32(b, 9), a, tt1
		h, g, f, e = g, bits.RotateLeft32(f, 19), e, tt2^bits.RotateLeft32(tt2, 9)^bits.RotateLeft32(tt2, 17)
	}
	d.s[0] ^= a
	d.s[1] ^= b
	d.s[2] ^= c
	d.s[3] ^= dd
	d.s[4] ^= e
	d.s[5] ^= f
	d.s[6] ^= g
	d.s[7] ^= h
}
