package tiger

import (
	"encoding/hex"
	"hash"
	"strings"
	"testing"

	"github.com/hashforge/hashkit/internal/hashtest"
	"github.com/stretchr/testify/assert"
)

var golden = []struct {
	name string
	in   string
	out  string
}{
	{"empty", "", "3293ac630c13f0245f92bbb1766e16167a4e58492dde73f3"},
	{"a", "a", "77befbef2e7ef8ab2ec8f93bf587a7fc613e247f5f247809"},
	{"abc", "abc", "2aab1484e8c158f2bfb8c5ff41b57a525129131c957b5f93"},
	{"digest", "message digest", "d981f8cb78201a950dcf3048751e441c517fca1aa55a29f6"},
	{"alphabet", "abcdefghijklmnopqrstuvwxyz", "1714a472eee57d30040412bfcc55032a0b11602ff37beee9"},
	{"twoblock", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "0f7bf9a19b9c58f2b7610df7e84f0ac3a71c631e7b53f78e"},
	{"alnum", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", "8dcea680a17583ee502ba38a3c368651890ffbccdc49a8cc"},
	{"digits", "12345678901234567890123456789012345678901234567890123456789012345678901234567890", "1c14795529fd9f207a958f84c52f11e887fa0cabdfd91bfd"},
	{"pangram", "The quick brown fox jumps over the lazy dog", "6d12a41e72e644f017b6f0e2f7b44c6285f06dd5d2c5b075"},
	{"a1024", strings.Repeat("A", 1024), "cdf0990c5c6b6b0bddd63a75ed20e2d448bf44e15fde0df4"},
	{"a1025", strings.Repeat("A", 1025), "89292aee0f82842abc080c57b3aadd9ca84d66bf0cae77aa"},
}

var golden2 = []struct {
	name string
	in   string
	out  string
}{
	{"empty", "", "4441be75f6018773c206c22745374b924aa8313fef919f41"},
	{"pangram", "The quick brown fox jumps over the lazy dog", "976abff8062a2e9dcea3a1ace966ed9c19cb85558b4976d8"},
	{"pangram cog", "The quick brown fox jumps over the lazy cog", "09c11330283a27efb51930aa7dc1ec624ff738a8d9bdd3df"},
}

func TestGolden(t *testing.T) {
	for _, tt := range golden {
		t.Run(tt.name, func(t *testing.T) {
			hashtest.KAT(t, func() hash.Hash { return New() }, []byte(tt.in), tt.out)
		})
	}
}

func TestGolden2(t *testing.T) {
	for _, tt := range golden2 {
		t.Run(tt.name, func(t *testing.T) {
			hashtest.KAT(t, func() hash.Hash { return New2() }, []byte(tt.in), tt.out)
		})
	}
}

func TestSplitWrites(t *testing.T) {
	h := New()
	h.Write([]byte("It's the eye of the tiger, it's the thrill of the fight"))
	h.Write([]byte("Rising up to the challenge of our rival!"))
	assert.Equal(t, "a7bbad36cc17918e399ae8ee893e4595e4d24e1639fe822c", hex.EncodeToString(h.Sum(nil)))

	h2 := New2()
	h2.Write([]byte("It's the eye of the tiger, it's the thrill of the fight"))
	h2.Write([]byte("Rising up to the challenge of our rival!"))
	assert.Equal(t, "c86695c2a639506682de2c12c2d23b61a12db78ea1ee1001", hex.EncodeToString(h2.Sum(nil)))
}

func TestMillionA(t *testing.T) {
	hashtest.MillionA(t, func() hash.Hash { return New() }, "6db0e2729cbead93d715c6a7d36302e9b3cee0d2bc314b41")
	hashtest.MillionA(t, func() hash.Hash { return New2() }, "e068281f060f551628cc5715b9d0226796914d45f7717cf4")
}

func TestSum(t *testing.T) {
	s := Sum([]byte("abc"))
	assert.Equal(t, "2aab1484e8c158f2bfb8c5ff41b57a525129131c957b5f93", hex.EncodeToString(s[:]))
	s2 := Sum2([]byte(""))
	assert.Equal(t, "4441be75f6018773c206c22745374b924aa8313fef919f41", hex.EncodeToString(s2[:]))
}
