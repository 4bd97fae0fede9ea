package sha256

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"testing"

	"github.com/hashforge/hashkit/internal/hashtest"
	"github.com/stretchr/testify/assert"
)

var golden256 = []struct {
	name string
	in   string
	out  string
}{
	{"empty", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	{"abc", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{"phrase", "hello world", "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
	{"pangram", "The quick brown fox jumps over the lazy dog", "d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592"},
	{"twoblock", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
	{"fourblock", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu", "cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1"},
}

var golden224 = []struct {
	name string
	in   string
	out  string
}{
	{"empty", "", "d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f"},
	{"abc", "abc", "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
	{"phrase", "hello world", "2f05477fc24bb4faefd86517156dafdecec45b8ad3cf2522a563582b"},
	{"pangram", "The quick brown fox jumps over the lazy dog", "730e109bd7a8a32b1cb9d9a09aa2325d2430587ddbc0c38bad911525"},
	{"twoblock", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "75388b16512776cc5dba5da1fd890150b0c6455cb4f58b1952522525"},
	{"fourblock", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu", "c97ca9a559850ce97a04a96def6d99a9e0e0e2ab14e6b8df265fc0b3"},
}

func TestGolden256(t *testing.T) {
	for _, tt := range golden256 {
		t.Run(tt.name, func(t *testing.T) {
			hashtest.KAT(t, func() hash.Hash { return New() }, []byte(tt.in), tt.out)
		})
	}
}

func TestGolden224(t *testing.T) {
	for _, tt := range golden224 {
		t.Run(tt.name, func(t *testing.T) {
			hashtest.KAT(t, func() hash.Hash { return New224() }, []byte(tt.in), tt.out)
		})
	}
}

func TestMillionA(t *testing.T) {
	hashtest.MillionA(t, func() hash.Hash { return New() }, "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0")
	hashtest.MillionA(t, func() hash.Hash { return New224() }, "20794655980c91d8bbb4c1ea97618a4bf03f42581948b2ee4ee7ad67")
}

func TestAgainstStdlib(t *testing.T) {
	hashtest.Equivalent(t, func() hash.Hash { return New() }, sha256.New)
	hashtest.Equivalent(t, func() hash.Hash { return New224() }, sha256.New224)
}

func TestSum(t *testing.T) {
	s256 := Sum256([]byte("abc"))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hex.EncodeToString(s256[:]))
	s224 := Sum224([]byte("abc"))
	assert.Equal(t, "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7", hex.EncodeToString(s224[:]))
}
