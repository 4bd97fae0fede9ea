package block

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects compressed blocks for inspection.
type recorder struct {
	blocks [][]byte
}

func (r *recorder) compress(b []byte) {
	r.blocks = append(r.blocks, append([]byte(nil), b...))
}

func TestWriteChunking(t *testing.T) {
	msg := make([]byte, 300)
	for i := range msg {
		msg[i] = byte(i)
	}
	var whole recorder
	b := New(64)
	b.Write(msg, whole.compress)
	wholeTail := append([]byte(nil), b.x[:b.n]...)

	for _, chunk := range []int{1, 3, 63, 64, 65, 199} {
		var r recorder
		c := New(64)
		for off := 0; off < len(msg); off += chunk {
			end := off + chunk
			if end > len(msg) {
				end = len(msg)
			}
			c.Write(msg[off:end], r.compress)
		}
		require.Equal(t, whole.blocks, r.blocks, "chunk size %d", chunk)
		assert.Equal(t, wholeTail, c.x[:c.n], "chunk size %d", chunk)
	}
}

func TestWriteKeepsPartial(t *testing.T) {
	var r recorder
	b := New(64)
	b.Write(make([]byte, 64), r.compress)
	assert.Equal(t, 0, b.Len(), "exact block must be flushed eagerly")
	assert.Len(t, r.blocks, 1)

	b.Write(make([]byte, 63), r.compress)
	assert.Equal(t, 63, b.Len())
	assert.Len(t, r.blocks, 1)
}

func TestWriteLazyHoldsLastBlock(t *testing.T) {
	var r recorder
	b := New(64)
	b.WriteLazy(make([]byte, 64), r.compress)
	assert.Equal(t, 64, b.Len(), "lazy write must keep a full final block")
	assert.Empty(t, r.blocks)

	b.WriteLazy([]byte{1}, r.compress)
	assert.Equal(t, 1, b.Len())
	assert.Len(t, r.blocks, 1)

	var r2 recorder
	c := New(64)
	c.WriteLazy(make([]byte, 128), r2.compress)
	assert.Equal(t, 64, c.Len())
	assert.Len(t, r2.blocks, 1)
}

func TestPadSuffixOneBlock(t *testing.T) {
	var r recorder
	b := New(64)
	b.Write([]byte("abc"), r.compress)
	b.PadSuffix(Suffix{Terminator: 0x80, Width: 8, BigEndian: true}, 0, 24, r.compress)
	require.Len(t, r.blocks, 1)
	blk := r.blocks[0]
	assert.Equal(t, []byte("abc"), blk[:3])
	assert.Equal(t, byte(0x80), blk[3])
	for i := 4; i < 56; i++ {
		assert.Zero(t, blk[i])
	}
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 24}, blk[56:])
	assert.Equal(t, 0, b.Len())
}

func TestPadSuffixSpill(t *testing.T) {
	// 60 message bytes leave no room for terminator plus length field.
	var r recorder
	b := New(64)
	b.Write(bytes.Repeat([]byte{0xaa}, 60), r.compress)
	b.PadSuffix(Suffix{Terminator: 0x80, Width: 8, BigEndian: true}, 0, 480, r.compress)
	require.Len(t, r.blocks, 2)
	assert.Equal(t, byte(0x80), r.blocks[0][60])
	assert.Equal(t, []byte{0, 0, 0}, r.blocks[0][61:])
	for i := 0; i < 56; i++ {
		assert.Zero(t, r.blocks[1][i])
	}
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 1, 224}, r.blocks[1][56:])
}

func TestPadSuffixWide(t *testing.T) {
	var r recorder
	b := New(128)
	b.PadSuffix(Suffix{Terminator: 0x80, Width: 16, BigEndian: true}, 1, 2, r.compress)
	require.Len(t, r.blocks, 1)
	blk := r.blocks[0]
	assert.Equal(t, byte(0x80), blk[0])
	assert.Equal(t, byte(1), blk[119])
	assert.Equal(t, byte(2), blk[127])
}

func TestPadSuffixLittleEndianWide(t *testing.T) {
	// 128-bit little-endian length field stores lo then hi.
	var r recorder
	b := New(128)
	b.PadSuffix(Suffix{Terminator: 0x80, Width: 16}, 1, 2, r.compress)
	require.Len(t, r.blocks, 1)
	blk := r.blocks[0]
	assert.Equal(t, byte(2), blk[112])
	assert.Equal(t, byte(1), blk[120])
}

func TestPadSponge(t *testing.T) {
	b := New(136)
	b.Write([]byte("abc"), func([]byte) { t.Fatal("unexpected compress") })
	blk := b.PadSponge(0x06)
	assert.Equal(t, byte(0x06), blk[3])
	assert.Equal(t, byte(0x80), blk[135])
	for i := 4; i < 135; i++ {
		assert.Zero(t, blk[i])
	}
}

func TestPadSpongeCoincident(t *testing.T) {
	// Domain byte and final-bit positions coincide on a full-minus-one block.
	b := New(136)
	b.Write(make([]byte, 135), func([]byte) {})
	blk := b.PadSponge(0x1f)
	assert.Equal(t, byte(0x9f), blk[135])
}

func TestPadValueFill(t *testing.T) {
	b := New(16)
	b.Write([]byte("hello"), func([]byte) {})
	blk := b.PadValueFill()
	for i := 5; i < 16; i++ {
		assert.Equal(t, byte(11), blk[i])
	}

	c := New(16)
	blk = c.PadValueFill()
	for i := 0; i < 16; i++ {
		assert.Equal(t, byte(16), blk[i])
	}
}

func TestPadTerminated(t *testing.T) {
	b := New(64)
	b.Write([]byte{1, 2}, func([]byte) {})
	blk := b.PadTerminated(0x01)
	assert.Equal(t, []byte{1, 2, 1}, blk[:3])
	for i := 3; i < 64; i++ {
		assert.Zero(t, blk[i])
	}
}

func TestPadZeroFill(t *testing.T) {
	b := New(64)
	b.WriteLazy([]byte{7, 7, 7}, func([]byte) {})
	blk, n := b.PadZeroFill()
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{7, 7, 7}, blk[:3])
	for i := 3; i < 64; i++ {
		assert.Zero(t, blk[i])
	}
}

func TestNewBounds(t *testing.T) {
	assert.Panics(t, func() { New(0) })
	assert.Panics(t, func() { New(MaxSize + 1) })
	assert.NotPanics(t, func() { New(MaxSize) })
}
