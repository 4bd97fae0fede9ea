// Package blake2b implements the BLAKE2b hash algorithm as defined in
// RFC 7693, with support for variable digest sizes, salting, and
// personalization. Keyed (MAC) mode is not provided; use a dedicated MAC
// construction instead.
package blake2b

import (
	"encoding/binary"
	"fmt"
	"hash"
	"math/bits"

	"github.com/hashforge/hashkit"
	"github.com/hashforge/hashkit/internal/block"
)

func init() {
	hashkit.Register("blake2b-256", New256)
	hashkit.Register("blake2b-384", New384)
	hashkit.Register("blake2b-512", New512)
}

const (
	// Size is the default and maximum digest size in bytes.
	Size = 64
	// BlockSize is the block size of BLAKE2b in bytes.
	BlockSize = 128
	// SaltSize is the maximum salt length in bytes.
	SaltSize = 16
	// PersonSize is the maximum personalization length in bytes.
	PersonSize = 16
)

var iv = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// Config parameterizes a BLAKE2b instance. The zero value of a field picks
// its default.
type Config struct {
	// Size is the digest length in bytes, between 1 and 64. Zero means 64.
	Size int
	// Salt is folded into the initial state; at most 16 bytes, zero-padded.
	Salt []byte
	// Person is a personalization string; at most 16 bytes, zero-padded.
	Person []byte
}

type digest struct {
	h     [8]uint64
	c     [2]uint64
	buf   block.Buffer
	size  int
	param [8]uint64 // initial state xor mask, kept for Reset
}

// New returns a BLAKE2b hash configured by cfg. A nil cfg yields the
// default 64-byte digest.
func New(cfg *Config) (hash.Hash, error) {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	if c.Size == 0 {
		c.Size = Size
	}
	if c.Size < 1 || c.Size > Size {
		return nil, &hashkit.ConstructionError{
			Alg: "blake2b", Param: "size",
			Reason: fmt.Sprintf("%d not between 1 and %d", c.Size, Size),
		}
	}
	if len(c.Salt) > SaltSize {
		return nil, &hashkit.ConstructionError{
			Alg: "blake2b", Param: "salt",
			Reason: fmt.Sprintf("%d bytes exceeds maximum %d", len(c.Salt), SaltSize),
		}
	}
	if len(c.Person) > PersonSize {
		return nil, &hashkit.ConstructionError{
			Alg: "blake2b", Param: "person",
			Reason: fmt.Sprintf("%d bytes exceeds maximum %d", len(c.Person), PersonSize),
		}
	}

	// Parameter block: digest length, fanout and depth one, then the salt
	// and personalization fields.
	var pb [64]byte
	pb[0] = byte(c.Size)
	pb[2] = 1
	pb[3] = 1
	copy(pb[32:48], c.Salt)
	copy(pb[48:64], c.Person)

	d := &digest{buf: block.New(BlockSize), size: c.Size}
	for i := range d.param {
		d.param[i] = binary.LittleEndian.Uint64(pb[i*8:])
	}
	d.Reset()
	return d, nil
}

func mustNew(size int) hash.Hash {
	h, err := New(&Config{Size: size})
	if err != nil {
		panic(err)
	}
	return h
}

// New512 returns a BLAKE2b hash with a 64-byte digest.
func New512() hash.Hash { return mustNew(64) }

// New384 returns a BLAKE2b hash with a 48-byte digest.
func New384() hash.Hash { return mustNew(48) }

// New256 returns a BLAKE2b hash with a 32-byte digest.
func New256() hash.Hash { return mustNew(32) }

func (d *digest) Reset() {
	for i := range d.h {
		d.h[i] = iv[i] ^ d.param[i]
	}
	d.c = [2]uint64{}
	d.buf.Reset()
}

func (d *digest) Size() int { return d.size }

func (d *digest) BlockSize() int { return BlockSize }

// Write buffers p, holding the last block back: BLAKE2 marks the final
// block with a flag, so a full block is compressed only once more input
// arrives.
func (d *digest) Write(p []byte) (int, error) {
	return d.buf.WriteLazy(p, d.compressFull), nil
}

func (d *digest) compressFull(blk []byte) {
	d.count(BlockSize)
	d.compress(blk, false)
}

func (d *digest) count(n int) {
	d.c[0] += uint64(n)
	if d.c[0] < uint64(n) {
		d.c[1]++
	}
}

func (d *digest) Sum(in []byte) []byte {
	d0 := *d
	return append(in, d0.checkSum()...)
}

func (d *digest) checkSum() []byte {
	blk, n := d.buf.PadZeroFill()
	d.count(n)
	d.compress(blk, true)
	var out [Size]byte
	for i, v := range d.h {
		binary.LittleEndian.PutUint64(out[i*8:], v)
	}
	return out[:d.size]
}

// Sum512 returns the 64-byte BLAKE2b digest of data.
func Sum512(data []byte) [Size]byte {
	d := mustNew(64).(*digest)
	d.Write(data)
	var out [Size]byte
	copy(out[:], d.checkSum())
	return out
}

// Sum256 returns the 32-byte BLAKE2b digest of data.
func Sum256(data []byte) [32]byte {
	d := mustNew(32).(*digest)
	d.Write(data)
	var out [32]byte
	copy(out[:], d.checkSum())
	return out
}

var sigma = [10][16]byte{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}

func (d *digest) compress(p []byte, final bool) {
	var m [16]uint64
	for i := range m {
		m[i] = binary.LittleEndian.Uint64(p[i*8:])
	}
	var v [16]uint64
	copy(v[:8], d.h[:])
	copy(v[8:], iv[:])
	v[12] ^= d.c[0]
	v[13] ^= d.c[1]
	if final {
		v[14] = ^v[14]
	}
	g := func(a, b, c, e int, x, y uint64) {
		v[a] += v[b] + x
		v[e] = bits.RotateLeft64(v[e]^v[a], -32)
		v[c] += v[e]
		v[b] = bits.RotateLeft64(v[b]^v[c], -24)
		v[a] += v[b] + y
		v[e] = bits.RotateLeft64(v[e]^v[a], -16)
		v[c] += v[e]
		v[b] = bits.RotateLeft64(v[b]^v[c], -63)
	}
	for r := 0; r < 12; r++ {
		s := &sigma[r%10]
		g(0, 4, 8, 12, m[s[0]], m[s[1]])
		g(1, 5, 9, 13, m[s[2]], m[s[3]])
		g(2, 6, 10, 14, m[s[4]], m[s[5]])
		g(3, 7, 11, 15, m[s[6]], m[s[7]])
		g(0, 5, 10, 15, m[s[8]], m[s[9]])
		g(1, 6, 11, 12, m[s[10]], m[s[11]])
		g(2, 7, 8, 13, m[s[12]], m[s[13]])
		g(3, 4, 9, 14, m[s[14]], m[s[15]])
	}
	for i := range d.h {
		d.h[i] ^= v[i] ^ v[i+8]
	}
}
