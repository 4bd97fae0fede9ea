package sm3

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
	{"empty", "", "1ab21d8355cfa17f8e61194831e81a8f22bec8c728fefb747ed035eb5082aa2b"},
	{"abc", "abc", "66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0"},
	{"phrase", "hello world", "44f0061e69fa6fdfc290c494654a05dc0c053da7e5c52b84ef93a9d67d3fff88"},
	{"pangram", "The quick brown fox jumps over the lazy dog", "5fdfe814b8573ca021983970fc79b2218c9570369b4859684e2e4c3fc76cb8ea"},
	{"twoblock", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "639b6cc5e64d9e37a390b192df4fa1ea0720ab747ff692b9f38c4e66ad7b8c05"},
	{"fourblock", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu", "78bcfb586acd983d7fae8e6930157f1562019e2caf68f1c98a855f1a95bb89bb"},
}

func TestGolden(t *testing.T) {
	for _, tt := range golden {
		t.Run(tt.name, func(t *testing.T) {
			hashtest.KAT(t, func() hash.Hash { return New() }, []byte(tt.in), tt.out)
		})
	}
}

func TestMillionA(t *testing.T) {
	hashtest.MillionA(t, func() hash.Hash { return New() }, "c8aaf89429554029e231941a2acc0ad61ff2a5acd8fadd25847a3a732b3b02c3")
}

func TestSum(t *testing.T) {
	sum := Sum([]byte("abc"))
	assert.Equal(t, "66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0", hex.EncodeToString(sum[:]))
}
