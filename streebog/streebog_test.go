package streebog

import (
	"encoding/hex"
	"hash"
	"testing"

	"github.com/hashforge/hashkit/internal/hashtest"
	"github.com/stretchr/testify/assert"
)

var golden = []struct {
	name   string
	in     string
	out256 string
	out512 string
}{
	{
		"empty", "",
		"3f539a213e97c802cc229d474c6aa32a825a360b2a933a949fd925208d9ce1bb",
		"8e945da209aa869f0455928529bcae4679e9873ab707b55315f56ceb98bef0a7362f715528356ee83cda5f2aac4c6ad2ba3a715c1bcd81cb8e9f90bf4c1c1a8a",
	},
	{
		"abc", "abc",
		"4e2919cf137ed41ec4fb6270c61826cc4fffb660341e0af3688cd0626d23b481",
		"28156e28317da7c98f4fe2bed6b542d0dab85bb224445fcedaf75d46e26d7eb8d5997f3e0915dd6b7f0aab08d9c8beb0d8c64bae2ab8b3c8c6bc53b3bf0db728",
	},
	{
		"phrase", "hello world",
		"c600fd9dd049cf8abd2f5b32e840d2cb0e41ea44de1c155dcd88dc84fe58a855",
		"84d883ede9fa6ce855d82d8c278ecd9f5fc88bf0602831ae0c38b9b506ea3cb02f3fa076b8f5664adf1ff862c0157da4cc9a83e141b738ff9268a9ba3ed6f563",
	},
	{
		"pangram", "The quick brown fox jumps over the lazy dog",
		"3e7dea7f2384b6c5a3d0e24aaa29c05e89ddd762145030ec22c71a6db8b2c1f4",
		"d2b793a0bb6cb5904828b5b6dcfb443bb8f33efc06ad09368878ae4cdc8245b97e60802469bed1e7c21a64ff0b179a6a1e0bb74d92965450a0adab69162c00fe",
	},
	{
		"twoblock", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		"47440b6ca733f24c7b80dada8055796a2742cb729f92cb7fedf5188f5f3f1cfc",
		"859190f728250159b34a08b1d3262279a19668c571fc7a7e724c0910318fd4a251974e67592dbc96919d282de2da875488d59dc37a2876296f633f451a488e24",
	},
	{
		"fourblock", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
		"f8347c4720f6401ab97c7c89ca9654480a28859ae4047ad78903986ed85e0d3a",
		"93d2536173be5dc1af1348a7b627e12cefb98603ce5ec7ea5f7fec77760970b2ad8bcfef9a1e1ce88b9a052251f831d3d411a75b34afd6f8938e9c9e5309035c",
	},
}

func TestGolden(t *testing.T) {
	for _, tt := range golden {
		t.Run(tt.name, func(t *testing.T) {
			msg := []byte(tt.in)
			hashtest.KAT(t, func() hash.Hash { return New256() }, msg, tt.out256)
			hashtest.KAT(t, func() hash.Hash { return New512() }, msg, tt.out512)
		})
	}
}

func TestMillionA(t *testing.T) {
	hashtest.MillionA(t, func() hash.Hash { return New256() }, "841af1a0b2f92a800fb1b7e4aabc8e48763153c448a0fc57c90ba830e130f152")
	hashtest.MillionA(t, func() hash.Hash { return New512() }, "d396a40b126b1f324465bfa7aa159859ab33fac02dcdd4515ad231206396a266d0102367e4c544ef47d2294064e1a25342d0cd25ae3d904b45abb1425ae41095")
}

func TestSum(t *testing.T) {
	s256 := Sum256([]byte("abc"))
	assert.Equal(t, golden[1].out256, hex.EncodeToString(s256[:]))
	s512 := Sum512([]byte("abc"))
	assert.Equal(t, golden[1].out512, hex.EncodeToString(s512[:]))
}

func TestSizeIndependence(t *testing.T) {
	hashtest.Unrelated(t, New256(), New512())
}
