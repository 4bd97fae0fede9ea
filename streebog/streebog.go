// Package streebog implements the Streebog (GOST R 34.11-2012) hash
// algorithm in its 256- and 512-bit variants.
package streebog

import (
	"encoding/binary"
	"hash"
	"math/bits"

	"github.com/hashforge/hashkit"
	"github.com/hashforge/hashkit/internal/block"
)

func init() {
	hashkit.Register("streebog-256", New256)
	hashkit.Register("streebog-512", New512)
}

const (
	// Size is the size of a Streebog-512 checksum in bytes.
	Size = 64
	// Size256 is the size of a Streebog-256 checksum in bytes.
	Size256 = 32
	// BlockSize is the block size of Streebog in bytes.
	BlockSize = 64
)

// Internal 512-bit quantities are eight little-endian 64-bit words.
type word512 = [8]uint64

type digest struct {
	h     word512
	n     word512 // processed bit count
	sigma word512 // running message sum
	buf   block.Buffer
	is256 bool
}

// New512 returns a new hash.Hash computing the Streebog-512 checksum.
func New512() hash.Hash {
	d := &digest{buf: block.New(BlockSize)}
	d.Reset()
	return d
}

// New256 returns a new hash.Hash computing the Streebog-256 checksum.
func New256() hash.Hash {
	d := &digest{buf: block.New(BlockSize), is256: true}
	d.Reset()
	return d
}

func (d *digest) Reset() {
	if d.is256 {
		// The 256-bit variant starts from a state of repeated 0x01 bytes.
		for i := range d.h {
			d.h[i] = 0x0101010101010101
		}
	} else {
		d.h = word512{}
	}
	d.n = word512{}
	d.sigma = word512{}
	d.buf.Reset()
}

func (d *digest) Size() int {
	if d.is256 {
		return Size256
	}
	return Size
}

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	return d.buf.Write(p, d.compress), nil
}

func (d *digest) compress(blk []byte) {
	var m word512
	for i := range m {
		m[i] = binary.LittleEndian.Uint64(blk[i*8:])
	}
	d.h = g(&d.h, &d.n, &m)
	addSmall(&d.n, 512)
	add512(&d.sigma, &m)
}

func (d *digest) Sum(in []byte) []byte {
	d0 := *d
	return append(in, d0.checkSum()...)
}

func (d *digest) checkSum() []byte {
	rem := d.buf.Len()
	blk := d.buf.PadTerminated(0x01)
	var m word512
	for i := range m {
		m[i] = binary.LittleEndian.Uint64(blk[i*8:])
	}
	d.h = g(&d.h, &d.n, &m)
	addSmall(&d.n, uint64(8*rem))
	add512(&d.sigma, &m)

	var zero word512
	d.h = g(&d.h, &zero, &d.n)
	d.h = g(&d.h, &zero, &d.sigma)

	var out [Size]byte
	for i, v := range d.h {
		binary.LittleEndian.PutUint64(out[i*8:], v)
	}
	if d.is256 {
		return out[32:]
	}
	return out[:]
}

// Sum512 returns the Streebog-512 checksum of data.
func Sum512(data []byte) [Size]byte {
	d := New512().(*digest)
	d.Write(data)
	var out [Size]byte
	copy(out[:], d.checkSum())
	return out
}

// Sum256 returns the Streebog-256 checksum of data.
func Sum256(data []byte) [Size256]byte {
	d := New256().(*digest)
	d.Write(data)
	var out [Size256]byte
	copy(out[:], d.checkSum())
	return out
}

// g is the compression function: a 12-round substitution-permutation
// cipher keyed by LPS(h xor n), applied to m, folded back into h.
func g(h, n, m *word512) word512 {
	key := lps(h, n)
	blk := *m
	for i := 0; i < 12; i++ {
		blk = lps(&blk, &key)
		key = lps(&key, &rc[i])
	}
	var out word512
	for i := range out {
		out[i] = h[i] ^ blk[i] ^ key[i] ^ m[i]
	}
	return out
}

// lps applies the combined X (xor), S (substitution), P (transposition)
// and L (linear) transforms via the precomputed lookup table.
func lps(x, y *word512) word512 {
	var t word512
	for i := range t {
		t[i] = x[i] ^ y[i]
	}
	var out word512
	for w := 0; w < 8; w++ {
		var v uint64
		for j := 0; j < 8; j++ {
			v ^= tbl[j][byte(t[j]>>(8*w))]
		}
		out[w] = v
	}
	return out
}

// add512 adds b into a as little-endian 512-bit integers.
func add512(a, b *word512) {
	var carry uint64
	for i := 0; i < 8; i++ {
		a[i], carry = bits.Add64(a[i], b[i], carry)
	}
}

func addSmall(a *word512, v uint64) {
	add512(a, &word512{v})
}

// tbl[j][b] is the L transform of S(b) placed at byte position j; built
// once from the S-box and the binary matrix rows.
var tbl [8][256]uint64

func init() {
	for j := 0; j < 8; j++ {
		for b := 0; b < 256; b++ {
			var v uint64
			x := pi[b]
			for k := 0; k < 8; k++ {
				if x&(0x80>>k) != 0 {
					v ^= matrix[8*(7-j)+k]
				}
			}
			tbl[j][b] = v
		}
	}
}
