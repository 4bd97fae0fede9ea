// Package block implements the fixed-capacity input accumulator shared by
// every hash core in this module, together with the padding rules used to
// complete the final partial block.
//
// A Buffer collects caller bytes into blocks of a fixed size and hands each
// completed block to a compression callback, in order. The padding helpers
// realize the finalization conventions of the supported algorithm families:
// a length-suffix pad for the Merkle-Damgard designs, the multi-rate pad for
// sponges, a bare terminator pad for designs that track length in their own
// state, and a PKCS#7-style value fill for MD2.
package block

import "encoding/binary"

// MaxSize is the largest block handled by any core in this module, the
// SHAKE128 sponge rate.
const MaxSize = 168

// Compress consumes exactly one full block.
type Compress func(block []byte)

// Buffer accumulates input into blocks of a fixed size. The zero value is
// not usable; construct with New.
type Buffer struct {
	x    [MaxSize]byte
	n    int
	size int
}

// New returns a buffer with the given block size.
func New(size int) Buffer {
	if size <= 0 || size > MaxSize {
		panic("block: invalid block size")
	}
	return Buffer{size: size}
}

// Size returns the block size in bytes.
func (b *Buffer) Size() int { return b.size }

// Len returns the number of pending bytes.
func (b *Buffer) Len() int { return b.n }

// Free returns the unused capacity of the pending block.
func (b *Buffer) Free() int { return b.size - b.n }

// Reset discards any pending bytes.
func (b *Buffer) Reset() { b.n = 0 }

// Write absorbs p, invoking compress once per completed block, in input
// order. After Write returns, fewer than a full block of bytes is pending.
func (b *Buffer) Write(p []byte, compress Compress) int {
	n := len(p)
	if b.n > 0 {
		c := copy(b.x[b.n:b.size], p)
		b.n += c
		p = p[c:]
		if b.n == b.size {
			compress(b.x[:b.size])
			b.n = 0
		}
	}
	for len(p) >= b.size {
		compress(p[:b.size])
		p = p[b.size:]
	}
	if len(p) > 0 {
		b.n = copy(b.x[:], p)
	}
	return n
}

// WriteLazy absorbs p but holds a completed block back until at least one
// more byte arrives. Cores that must treat the last block specially (BLAKE2
// marks it with a finalization flag) use this variant; for them a full
// pending block is legal and Len may equal Size.
func (b *Buffer) WriteLazy(p []byte, compress Compress) int {
	n := len(p)
	if len(p) == 0 {
		return 0
	}
	if b.n == b.size {
		compress(b.x[:b.size])
		b.n = 0
	}
	if b.n > 0 {
		c := copy(b.x[b.n:b.size], p)
		b.n += c
		p = p[c:]
		if len(p) == 0 {
			return n
		}
		compress(b.x[:b.size])
		b.n = 0
	}
	for len(p) > b.size {
		compress(p[:b.size])
		p = p[b.size:]
	}
	b.n = copy(b.x[:], p)
	return n
}

// Suffix describes a length-suffix padding rule: a terminator byte, a zero
// fill, and a trailing length field of Width bytes in the given byte order.
type Suffix struct {
	Terminator byte
	Width      int // 8 or 16
	BigEndian  bool
}

// PadSuffix completes the pending block under the rule s, invoking compress
// once or twice. The length field encodes hi:lo; hi is ignored when Width
// is 8. The buffer is left empty.
func (b *Buffer) PadSuffix(s Suffix, hi, lo uint64, compress Compress) {
	b.x[b.n] = s.Terminator
	b.n++
	if b.size-b.n < s.Width {
		for i := b.n; i < b.size; i++ {
			b.x[i] = 0
		}
		compress(b.x[:b.size])
		b.n = 0
	}
	for i := b.n; i < b.size-s.Width; i++ {
		b.x[i] = 0
	}
	switch {
	case s.Width == 8 && s.BigEndian:
		binary.BigEndian.PutUint64(b.x[b.size-8:], lo)
	case s.Width == 8:
		binary.LittleEndian.PutUint64(b.x[b.size-8:], lo)
	case s.BigEndian:
		binary.BigEndian.PutUint64(b.x[b.size-16:], hi)
		binary.BigEndian.PutUint64(b.x[b.size-8:], lo)
	default:
		binary.LittleEndian.PutUint64(b.x[b.size-16:], lo)
		binary.LittleEndian.PutUint64(b.x[b.size-8:], hi)
	}
	compress(b.x[:b.size])
	b.n = 0
}

// PadTerminated writes term at the cursor, zero-fills the rest, and returns
// the completed block. Used by cores that fold length or checksum counters
// into their own state instead of an in-block length field.
func (b *Buffer) PadTerminated(term byte) []byte {
	b.x[b.n] = term
	for i := b.n + 1; i < b.size; i++ {
		b.x[i] = 0
	}
	return b.x[:b.size]
}

// PadSponge applies the multi-rate pad: the domain separation byte at the
// cursor and the top bit of the final rate byte, OR-combined when the two
// positions coincide. Returns the completed block.
func (b *Buffer) PadSponge(ds byte) []byte {
	b.x[b.n] = ds
	for i := b.n + 1; i < b.size; i++ {
		b.x[i] = 0
	}
	b.x[b.size-1] |= 0x80
	return b.x[:b.size]
}

// PadValueFill fills the k free bytes of the pending block with the value k
// and returns the completed block. A block-aligned message therefore gains a
// whole block of value Size.
func (b *Buffer) PadValueFill() []byte {
	k := byte(b.size - b.n)
	for i := b.n; i < b.size; i++ {
		b.x[i] = k
	}
	return b.x[:b.size]
}

// PadZeroFill zero-fills the pending block and returns it along with the
// number of message bytes it holds. Used by cores that mark the final block
// out of band rather than in the block contents.
func (b *Buffer) PadZeroFill() ([]byte, int) {
	for i := b.n; i < b.size; i++ {
		b.x[i] = 0
	}
	return b.x[:b.size], b.n
}
