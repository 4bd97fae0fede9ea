// Package md5 implements the MD5 hash algorithm as defined in RFC 1321.
//
// MD5 is cryptographically broken and should not be used for secure
// applications; it remains in this module for interoperability with
// legacy formats.
package md5

import (
	"encoding/binary"
	"hash"
	"math/bits"

	"github.com/hashforge/hashkit"
	"github.com/hashforge/hashkit/internal/block"
)

func init() {
	hashkit.Register("md5", New)
}

const (
	// Size is the size of an MD5 checksum in bytes.
	Size = 16
	// BlockSize is the block size of MD5 in bytes.
	BlockSize = 64
)

const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
)

type digest struct {
	s   [4]uint32
	buf block.Buffer
	len uint64
}

// New returns a new hash.Hash computing the MD5 checksum.
func New() hash.Hash {
	d := &digest{buf: block.New(BlockSize)}
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.s = [4]uint32{init0, init1, init2, init3}
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
	// Make a copy of d so that the caller can keep writing and summing.
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

func (d *digest) checkSum() [Size]byte {
	d.buf.PadSuffix(block.Suffix{Terminator: 0x80, Width: 8}, 0, d.len<<3, d.compress)
	var out [Size]byte
	for i, v := range d.s {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out
}

// Sum returns the MD5 checksum of data.
func Sum(data []byte) [Size]byte {
	d := digest{buf: block.New(BlockSize)}
	d.Reset()
	d.Write(data)
	return d.checkSum()
}

var tab = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

var shift = [64]int{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

func (d *digest) compress(p []byte) {
	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(p[i*4:])
	}
	a, b, c, dd := d.s[0], d.s[1], d.s[2], d.s[3]
	for i := 0; i < 64; i++ {
		var f uint32
		var g int
		switch {
		case i < 16:
			f = (b & c) | (^b & dd)
			g = i
		case i < 32:
			f = (dd & b) | (^dd & c)
			g = (5*i + 1) & 15
		case i < 48:
			f = b ^ c ^ dd
			g = (3*i + 5) & 15
		default:
			f = c ^ (b | ^dd)
			g = (7 * i) & 15
		}
		a, dd, c, b = dd, c, b, b+bits.RotateLeft32(a+f+tab[i]+m[g], shift[i])
	}
	d.s[0] += a
	d.s[1] += b
	d.s[2] += c
	d.s[3] += dd
}
