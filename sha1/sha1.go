// Package sha1 implements the SHA-1 hash algorithm as defined in FIPS 180-4.
//
// SHA-1 is cryptographically broken and should not be used for secure
// applications.
package sha1

import (
	"encoding/binary"
	"hash"
	"math/bits"

	"github.com/hashforge/hashkit"
	"github.com/hashforge/hashkit/internal/block"
)

func init() {
	hashkit.Register("sha1", New)
}

const (
	// Size is the size of a SHA-1 checksum in bytes.
	Size = 20
	// BlockSize is the block size of SHA-1 in bytes.
	BlockSize = 64
)

const (
	_K0 = 0x5A827999
	_K1 = 0x6ED9EBA1
	_K2 = 0x8F1BBCDC
	_K3 = 0xCA62C1D6
)

type digest struct {
	s   [5]uint32
	buf block.Buffer
	len uint64
}

// New returns a new hash.Hash computing the SHA-1 checksum.
func New() hash.Hash {
	d := &digest{buf: block.New(BlockSize)}
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.s = [5]uint32{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0}
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

// Sum returns the SHA-1 checksum of data.
func Sum(data []byte) [Size]byte {
	d := digest{buf: block.New(BlockSize)}
	d.Reset()
	d.Write(data)
	return d.checkSum()
}

func (d *digest) compress(p []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(p[i*4:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}
	a, b, c, dd, e := d.s[0], d.s[1], d.s[2], d.s[3], d.s[4]
	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = (b & c) | (^b & dd)
			k = _K0
		case i < 40:
			f = b ^ c ^ dd
			k = _K1
		case i < 60:
			f = (b & c) | (b & dd) | (c & dd)
			k = _K2
		default:
			f = b ^ c ^ dd
			k = _K3
		}
		t := bits.RotateLeft32(a, 5) + f + e + k + w[i]
		a, b, c, dd, e = t, a, bits.RotateLeft32(b, 30), c, dd
	}
	d.s[0] += a
	d.s[1] += b
	d.s[2] += c
	d.s[3] += dd
	d.s[4] += e
}
