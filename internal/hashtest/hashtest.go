// Package hashtest provides shared helpers for the algorithm package tests.
package hashtest

import (
	"bytes"
	"encoding/hex"
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// KAT verifies a known-answer vector and that the digest is invariant under
// input chunking, reuse after Reset, and appending via Sum.
func KAT(t *testing.T, newHash func() hash.Hash, msg []byte, wantHex string) {
	t.Helper()
	want, err := hex.DecodeString(wantHex)
	require.NoError(t, err)

	h := newHash()
	h.Write(msg)
	assert.Equal(t, want, h.Sum(nil), "one-shot digest")
	assert.Equal(t, len(want), h.Size())

	// Sum must not disturb the running state.
	h.Write(msg)
	again := newHash()
	again.Write(msg)
	again.Write(msg)
	assert.Equal(t, again.Sum(nil), h.Sum(nil), "Sum must be side effect free")

	// Sum appends to its argument.
	pre := []byte{0xde, 0xad}
	assert.Equal(t, append([]byte{0xde, 0xad}, again.Sum(nil)...), again.Sum(pre))

	h.Reset()
	h.Write(msg)
	assert.Equal(t, want, h.Sum(nil), "digest after Reset")

	for _, chunk := range []int{1, 3, 7, h.BlockSize() - 1, h.BlockSize(), h.BlockSize() + 1} {
		if chunk <= 0 {
			continue
		}
		c := newHash()
		for off := 0; off < len(msg); off += chunk {
			end := off + chunk
			if end > len(msg) {
				end = len(msg)
			}
			n, err := c.Write(msg[off:end])
			require.NoError(t, err)
			require.Equal(t, end-off, n)
		}
		assert.Equal(t, want, c.Sum(nil), "chunk size %d", chunk)
	}
}

// MillionA verifies the digest of one million repetitions of 'a', written
// in uneven pieces.
func MillionA(t *testing.T, newHash func() hash.Hash, wantHex string) {
	t.Helper()
	want, err := hex.DecodeString(wantHex)
	require.NoError(t, err)

	h := newHash()
	piece := bytes.Repeat([]byte{'a'}, 64*1024)
	left := 1000000
	for left > 0 {
		n := len(piece)
		if n > left {
			n = left
		}
		h.Write(piece[:n])
		left -= n
	}
	assert.Equal(t, want, h.Sum(nil))
}

// Unrelated verifies that digests of the same message at two output sizes
// are not truncations of one another: the output size must be bound into
// the initial state, not applied by slicing one long digest.
func Unrelated(t *testing.T, short, long hash.Hash) {
	t.Helper()
	msg := []byte("size independence")
	short.Write(msg)
	long.Write(msg)
	s, l := short.Sum(nil), long.Sum(nil)
	require.Less(t, len(s), len(l))
	assert.False(t, bytes.HasPrefix(l, s), "short digest is a prefix of the long one")
	assert.False(t, bytes.HasSuffix(l, s), "short digest is a suffix of the long one")
}

// Equivalent verifies that two hash constructions produce identical digests
// over a set of messages of increasing length.
func Equivalent(t *testing.T, newA, newB func() hash.Hash) {
	t.Helper()
	msg := make([]byte, 300)
	for i := range msg {
		msg[i] = byte(i * 7)
	}
	for _, n := range []int{0, 1, 55, 56, 63, 64, 65, 127, 128, 129, 300} {
		a, b := newA(), newB()
		a.Write(msg[:n])
		b.Write(msg[:n])
		assert.Equal(t, b.Sum(nil), a.Sum(nil), "length %d", n)
	}
}
