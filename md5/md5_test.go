package md5

import (
	"encoding/hex"
	"hash"
	"testing"

	"github.com/hashforge/hashkit/internal/hashtest"
	"github.com/stretchr/testify/assert"
)

var golden = []struct {
	name string
	in   string
	out  string
}{
	{"empty", "", "d41d8cd98f00b204e9800998ecf8427e"},
	{"abc", "abc", "900150983cd24fb0d6963f7d28e17f72"},
	{"phrase", "hello world", "5eb63bbbe01eeed093cb22bb8f5acdc3"},
	{"pangram", "The quick brown fox jumps over the lazy dog", "9e107d9d372bb6826bd81d3542a419d6"},
	{"twoblock", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "8215ef0796a20bcaaae116d3876c664a"},
	{"fourblock", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu", "03dd8807a93175fb062dfb55dc7d359c"},
}

func TestGolden(t *testing.T) {
	for _, tt := range golden {
		t.Run(tt.name, func(t *testing.T) {
			hashtest.KAT(t, func() hash.Hash { return New() }, []byte(tt.in), tt.out)
		})
	}
}

func TestMillionA(t *testing.T) {
	hashtest.MillionA(t, func() hash.Hash { return New() }, "7707d6ae4e027c70eea2a935c2296f21")
}

func TestSum(t *testing.T) {
	sum := Sum([]byte("abc"))
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", hex.EncodeToString(sum[:]))
}
