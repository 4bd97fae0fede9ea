// Package ripemd implements the RIPEMD-160 and RIPEMD-320 hash algorithms.
//
// RIPEMD-320 provides no additional security over RIPEMD-160 against
// collision attacks; its wider output only hardens against accidental
// digest collisions in non-adversarial settings.
package ripemd

import (
	"encoding/binary"
	"hash"
	"math/bits"

	"github.com/hashforge/hashkit"
	"github.com/hashforge/hashkit/internal/block"
)

func init() {
	hashkit.Register("ripemd160", New160)
	hashkit.Register("ripemd320", New320)
}

const (
	// Size160 is the size of a RIPEMD-160 checksum in bytes.
	Size160 = 20
	// Size320 is the size of a RIPEMD-320 checksum in bytes.
	Size320 = 40
	// BlockSize is the block size of RIPEMD-160 and RIPEMD-320 in bytes.
	BlockSize = 64
)

// Message word order for the left and right lines across the five rounds.
var rl = [80]int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

var rr = [80]int{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

// Rotation amounts for the two lines.
var sl = [80]int{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

var sr = [80]int{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

var kl = [5]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}
var kr = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0x00000000}

func rmdf(j int, x, y, z uint32) uint32 {
	switch {
	case j < 16:
		return x ^ y ^ z
	case j < 32:
		return (x & y) | (^x & z)
	case j < 48:
		return (x | ^y) ^ z
	case j < 64:
		return (x & z) | (y & ^z)
	default:
		return x ^ (y | ^z)
	}
}

type digest struct {
	s     [10]uint32
	buf   block.Buffer
	len   uint64
	is320 bool
}

// New160 returns a new hash.Hash computing the RIPEMD-160 checksum.
func New160() hash.Hash {
	d := &digest{buf: block.New(BlockSize)}
	d.Reset()
	return d
}

// New320 returns a new hash.Hash computing the RIPEMD-320 checksum.
func New320() hash.Hash {
	d := &digest{buf: block.New(BlockSize), is320: true}
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.s = [10]uint32{
		0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0,
		0x76543210, 0xfedcba98, 0x89abcdef, 0x01234567, 0x3c2d1e0f,
	}
	d.buf.Reset()
	d.len = 0
}

func (d *digest) Size() int {
	if d.is320 {
		return Size320
	}
	return Size160
}

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	d.len += uint64(len(p))
	compress := d.compress160
	if d.is320 {
		compress = d.compress320
	}
	return d.buf.Write(p, compress), nil
}

func (d *digest) Sum(in []byte) []byte {
	d0 := *d
	return append(in, d0.checkSum()...)
}

func (d *digest) checkSum() []byte {
	compress := d.compress160
	if d.is320 {
		compress = d.compress320
	}
	d.buf.PadSuffix(block.Suffix{Terminator: 0x80, Width: 8}, 0, d.len<<3, compress)
	out := make([]byte, d.Size())
	for i := 0; i < d.Size()/4; i++ {
		binary.LittleEndian.PutUint32(out[i*4:], d.s[i])
	}
	return out
}

// Sum160 returns the RIPEMD-160 checksum of data.
func Sum160(data []byte) [Size160]byte {
	d := New160().(*digest)
	d.Write(data)
	var out [Size160]byte
	copy(out[:], d.checkSum())
	return out
}

// Sum320 returns the RIPEMD-320 checksum of data.
func Sum320(data []byte) [Size320]byte {
	d := New320().(*digest)
	d.Write(data)
	var out [Size320]byte
	copy(out[:], d.checkSum())
	return out
}

func (d *digest) compress160(p []byte) {
	var x [16]uint32
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(p[i*4:])
	}
	al, bl, cl, dl, el := d.s[0], d.s[1], d.s[2], d.s[3], d.s[4]
	ar, br, cr, dr, er := d.s[0], d.s[1], d.s[2], d.s[3], d.s[4]
	for j := 0; j < 80; j++ {
		t := bits.RotateLeft32(al+rmdf(j, bl, cl, dl)+x[rl[j]]+kl[j/16], sl[j]) + el
		al, el, dl, cl, bl = el, dl, bits.RotateLeft32(cl, 10), bl, t
		t = bits.RotateLeft32(ar+rmdf(79-j, br, cr, dr)+x[rr[j]]+kr[j/16], sr[j]) + er
		ar, er, dr, cr, br = er, dr, bits.RotateLeft32(cr, 10), br, t
	}
	t := d.s[1] + cl + dr
	d.s[1] = d.s[2] + dl + er
	d.s[2] = d.s[3] + el + ar
	d.s[3] = d.s[4] + al + br
	d.s[4] = d.s[0] + bl + cr
	d.s[0] = t
}

// The 320-bit variant runs both lines on separate halves of the state and
// exchanges one register pair after each round.
func (d *digest) compress320(p []byte) {
	var x [16]uint32
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(p[i*4:])
	}
	al, bl, cl, dl, el := d.s[0], d.s[1], d.s[2], d.s[3], d.s[4]
	ar, br, cr, dr, er := d.s[5], d.s[6], d.s[7], d.s[8], d.s[9]
	for j := 0; j < 80; j++ {
		t := bits.RotateLeft32(al+rmdf(j, bl, cl, dl)+x[rl[j]]+kl[j/16], sl[j]) + el
		al, el, dl, cl, bl = el, dl, bits.RotateLeft32(cl, 10), bl, t
		t = bits.RotateLeft32(ar+rmdf(79-j, br, cr, dr)+x[rr[j]]+kr[j/16], sr[j]) + er
		ar, er, dr, cr, br = er, dr, bits.RotateLeft32(cr, 10), br, t
		switch j {
		case 15:
			bl, br = br, bl
		case 31:
			dl, dr = dr, dl
		case 47:
			al, ar = ar, al
		case 63:
			cl, cr = cr, cl
		case 79:
			el, er = er, el
		}
	}
	d.s[0] += al
	d.s[1] += bl
	d.s[2] += cl
	d.s[3] += dl
	d.s[4] += el
	d.s[5] += ar
	d.s[6] += br
	d.s[7] += cr
	d.s[8] += dr
	d.s[9] += er
}
