// Package tiger implements the Tiger and Tiger2 hash algorithms designed by
// Anderson and Biham. The two differ only in the padding terminator: Tiger
// appends 0x01, Tiger2 the conventional 0x80.
package tiger

import (
	"encoding/binary"
	"hash"

	"github.com/hashforge/hashkit"
	"github.com/hashforge/hashkit/internal/block"
)

func init() {
	hashkit.Register("tiger", New)
	hashkit.Register("tiger2", New2)
}

const (
	// Size is the size of a Tiger digest in bytes.
	Size = 24
	// BlockSize is the block size of Tiger in bytes.
	BlockSize = 64
)

const (
	init0 = 0x0123456789abcdef
	init1 = 0xfedcba9876543210
	init2 = 0xf096a5b4c3b2e187
)

type digest struct {
	s    [3]uint64
	buf  block.Buffer
	len  uint64
	term byte
}

func newDigest(term byte) *digest {
	d := &digest{buf: block.New(BlockSize), term: term}
	d.Reset()
	return d
}

// New returns a new hash.Hash computing the Tiger digest.
func New() hash.Hash { return newDigest(0x01) }

// New2 returns a new hash.Hash computing the Tiger2 digest.
func New2() hash.Hash { return newDigest(0x80) }

func (d *digest) Reset() {
	d.s = [3]uint64{init0, init1, init2}
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
	d.buf.PadSuffix(block.Suffix{Terminator: d.term, Width: 8}, 0, d.len<<3, d.compress)
	var out [Size]byte
	for i, v := range d.s {
		binary.LittleEndian.PutUint64(out[i*8:], v)
	}
	return out
}

// Sum returns the Tiger digest of data.
func Sum(data []byte) [Size]byte {
	d := newDigest(0x01)
	d.Write(data)
	return d.checkSum()
}

// Sum2 returns the Tiger2 digest of data.
func Sum2(data []byte) [Size]byte {
	d := newDigest(0x80)
	d.Write(data)
	return d.checkSum()
}

func round(a, b, c, x, mul uint64) (uint64, uint64, uint64) {
	c ^= x
	a -= t1[c&0xff] ^ t2[(c>>16)&0xff] ^ t3[(c>>32)&0xff] ^ t4[(c>>48)&0xff]
	b += t4[(c>>8)&0xff] ^ t3[(c>>24)&0xff] ^ t2[(c>>40)&0xff] ^ t1[(c>>56)&0xff]
	b *= mul
	return a, b, c
}

func pass(a, b, c uint64, x *[8]uint64, mul uint64) (uint64, uint64, uint64) {
	a, b, c = round(a, b, c, x[0], mul)
	b, c, a = round(b, c, a, x[1], mul)
	c, a, b = round(c, a, b, x[2], mul)
	a, b, c = round(a, b, c, x[3], mul)
	b, c, a = round(b, c, a, x[4], mul)
	c, a, b = round(c, a, b, x[5], mul)
	a, b, c = round(a, b, c, x[6], mul)
	b, c, a = round(b, c, a, x[7], mul)
	return a, b, c
}

func keySchedule(x *[8]uint64) {
	x[0] -= x[7] ^ 0xa5a5a5a5a5a5a5a5
	x[1] ^= x[0]
	x[2] += x[1]
	x[3] -= x[2] ^ ((^x[1]) << 19)
	x[4] ^= x[3]
	x[5] += x[4]
	x[6] -= x[5] ^ ((^x[4]) >> 23)
	x[7] ^= x[6]
	x[0] += x[7]
	x[1] -= x[0] ^ ((^x[7]) << 19)
	x[2] ^= x[1]
	x[3] += x[2]
	x[4] -= x[3] ^ ((^x[2]) >> 23)
	x[5] ^= x[4]
	x[6] += x[5]
	x[7] -= x[6] ^ 0x0123456789abcdef
}

func (d *digest) compress(p []byte) {
	var x [8]uint64
	for i := range x {
		x[i] = binary.LittleEndian.Uint64(p[i*8:])
	}

	a, b, c := d.s[0], d.s[1], d.s[2]
	a, b, c = pass(a, b, c, &x, 5)
	keySchedule(&x)
	c, a, b = pass(c, a, b, &x, 7)
	keySchedule(&x)
	b, c, a = pass(b, c, a, &x, 9)

	d.s[0] = a ^ d.s[0]
	d.s[1] = b - d.s[1]
	d.s[2] = c + d.s[2]
}
