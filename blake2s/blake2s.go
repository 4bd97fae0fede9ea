// Package blake2s implements the BLAKE2s hash algorithm as defined in
// RFC 7693, with support for variable digest sizes, salting, and
// personalization. Keyed (MAC) mode is not provided.
package blake2s

import (
	"encoding/binary"
	"fmt"
	"hash"
	"math/bits"

	"github.com/hashforge/hashkit"
	"github.com/hashforge/hashkit/internal/block"
)

func init() {
	hashkit.Register("blake2s-256", New256)
	hashkit.Register("blake2s-128", New128)
}

const (
	// Size is the default and maximum digest size in bytes.
	Size = 32
	// BlockSize is the block size of BLAKE2s in bytes.
	BlockSize = 64
	// SaltSize is the maximum salt length in bytes.
	SaltSize = 8
	// PersonSize is the maximum personalization length in bytes.
	PersonSize = 8
)

var iv = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// Config parameterizes a BLAKE2s instance. The zero value of a field picks
// its default.
type Config struct {
	// Size is the digest length in bytes, between 1 and 32. Zero means 32.
	Size int
	// Salt is folded into the initial state; at most 8 bytes, zero-padded.
	Salt []byte
	// Person is a personalization string; at most 8 bytes, zero-padded.
	Person []byte
}

type digest struct {
	h     [8]uint32
	c     [2]uint32
	buf   block.Buffer
	size  int
	param [8]uint32
}

// New returns a BLAKE2s hash configured by cfg. A nil cfg yields the
// default 32-byte digest.
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
			Alg: "blake2s", Param: "size",
			Reason: fmt.Sprintf("%d not between 1 and %d", c.Size, Size),
		}
	}
	if len(c.Salt) > SaltSize {
		return nil, &hashkit.ConstructionError{
			Alg: "blake2s", Param: "salt",
			Reason: fmt.Sprintf("%d bytes exceeds maximum %d", len(c.Salt), SaltSize),
		}
	}
	if len(c.Person) > PersonSize {
		return nil, &hashkit.ConstructionError{
			Alg: "blake2s", Param: "person",
			Reason: fmt.Sprintf("%d bytes exceeds maximum %d", len(c.Person), PersonSize),
		}
	}

	var pb [32]byte
	pb[0] = byte(c.Size)
	pb[2] = 1
	pb[3] = 1
	copy(pb[16:24], c.Salt)
	copy(pb[24:32], c.Person)

	d := &digest{buf: block.New(BlockSize), size: c.Size}
	for i := range d.param {
		d.param[i] = binary.LittleEndian.Uint32(pb[i*4:])
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

// New256 returns a BLAKE2s hash with a 32-byte digest.
func New256() hash.Hash { return mustNew(32) }

// New128 returns a BLAKE2s hash with a 16-byte digest.
func New128() hash.Hash { return mustNew(16) }

func (d *digest) Reset() {
	for i := range d.h {
		d.h[i] = iv[i] ^ d.param[i]
	}
	d.c = [2]uint32{}
	d.buf.Reset()
}

func (d *digest) Size() int { return d.size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	return d.buf.WriteLazy(p, d.compressFull), nil
}

func (d *digest) compressFull(blk []byte) {
	d.count(BlockSize)
	d.compress(blk, false)
}

func (d *digest) count(n int) {
	d.c[0] += uint32(n)
	if d.c[0] < uint32(n) {
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
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out[:d.size]
}

// Sum256 returns the 32-byte BLAKE2s digest of data.
func Sum256(data []byte) [Size]byte {
	d := mustNew(32).(*digest)
	d.Write(data)
	var out [Size]byte
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
	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(p[i*4:])
	}
	var v [16]uint32
	copy(v[:8], d.h[:])
	copy(v[8:], iv[:])
	v[12] ^= d.c[0]
	v[13] ^= d.c[1]
	if final {
		v[14] = ^v[14]
	}
	g := func(a, b, c, e int, x, y uint32) {
		v[a] += v[b] + x
		v[e] = bits.RotateLeft32(v[e]^v[a], -16)
		v[c] += v[e]
		v[b] = bits.RotateLeft32(v[b]^v[c], -12)
		v[a] += v[b] + y
		v[e] = bits.RotateLeft32(v[e]^v[a], -8)
		v[c] += v[e]
		v[b] = bits.RotateLeft32(v[b]^v[c], -7)
	}
	for r := 0; r < 10; r++ {
		s := &sigma[r]
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
