package sha3

import (
	"encoding/hex"
	"hash"
	"testing"

	"github.com/hashforge/hashkit"
	"github.com/hashforge/hashkit/internal/hashtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xsha3 "golang.org/x/crypto/sha3"
)

// Digests at the conventional default output lengths, 32 bytes for
// SHAKE128 and 64 for SHAKE256.
var goldenShake = []struct {
	name   string
	in     string
	out128 string
	out256 string
}{
	{
		"empty", "",
		"7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26",
		"46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762fd75dc4ddd8c0f200cb05019d67b592f6fc821c49479ab48640292eacb3b7c4be",
	},
	{
		"abc", "abc",
		"5881092dd818bf5cf8a3ddb793fbcba74097d5c526a6d35f97b83351940f2cc8",
		"483366601360a8771c6863080cc4114d8db44530f8f1e1ee4f94ea37e78b5739d5a15bef186a5386c75744c0527e1faa9f8726e462a12a4feb06bd8801e751e4",
	},
	{
		"phrase", "hello world",
		"3a9159f071e4dd1c8c4f968607c30942e120d8156b8b1e72e0d376e8871cb8b8",
		"369771bb2cb9d2b04c1d54cca487e372d9f187f73f7ba3f65b95c8ee7798c527f4f3c2d55c2d46a29f2e945d469c3df27853a8735271f5cc2d9e889544357116",
	},
	{
		"pangram", "The quick brown fox jumps over the lazy dog",
		"f4202e3c5852f9182a0430fd8144f0a74b95e7417ecae17db0f8cfeed0e3e66e",
		"2f671343d9b2e1604dc9dcf0753e5fe15c7c64a0d283cbbf722d411a0e36f6ca1d01d1369a23539cd80f7c054b6e5daf9c962cad5b8ed5bd11998b40d5734442",
	},
	{
		"twoblock", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		"1a96182b50fb8c7e74e0a707788f55e98209b8d91fade8f32f8dd5cff7bf21f5",
		"4d8c2dd2435a0128eefbb8c36f6f87133a7911e18d979ee1ae6be5d4fd2e332940d8688a4e6a59aa8060f1f9bc996c05aca3c696a8b66279dc672c740bb224ec",
	},
	{
		"fourblock", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
		"7b6df6ff181173b6d7898d7ff63fb07b7c237daf471a5ae5602adbccef9ccf4b",
		"98be04516c04cc73593fef3ed0352ea9f6443942d6950e29a372a681c3deaf4535423709b02843948684e029010badcc0acd8303fc85fdad3eabf4f78cae1656",
	},
}

const (
	// 96 bytes squeezed from SHAKE128 over "abc".
	shake128abcStream = "5881092dd818bf5cf8a3ddb793fbcba74097d5c526a6d35f97b83351940f2cc844c50af32acd3f2cdd066568706f509bc1bdde58295dae3f891a9a0fca5783789a41f8611214ce612394df286a62d1a2252aa94db9c538956c717dc2bed4f232"
	// 200 bytes squeezed from SHAKE256 over "abc".
	shake256abcStream = "483366601360a8771c6863080cc4114d8db44530f8f1e1ee4f94ea37e78b5739d5a15bef186a5386c75744c0527e1faa9f8726e462a12a4feb06bd8801e751e41385141204f329979fd3047a13c5657724ada64d2470157b3cdc288620944d78dbcddbd912993f0913f164fb2ce95131a2d09a3e6d51cbfc622720d7a75c6334e8a2d7ec71a7cc29cf0ea610eeff1a588290a53000faa79932becec0bd3cd0b33a7e5d397fed1ada9442b99903f4dcfd8559ed3950faf40fe6f3b5d710ed3b677513771af6bfe119"
)

func TestGoldenShake(t *testing.T) {
	for _, tt := range goldenShake {
		t.Run(tt.name, func(t *testing.T) {
			msg := []byte(tt.in)
			hashtest.KAT(t, func() hash.Hash { return NewShake128().(hash.Hash) }, msg, tt.out128)
			hashtest.KAT(t, func() hash.Hash { return NewShake256().(hash.Hash) }, msg, tt.out256)
		})
	}
}

func TestMillionAShake(t *testing.T) {
	hashtest.MillionA(t, func() hash.Hash { return NewShake128().(hash.Hash) }, "9d222c79c4ff9d092cf6ca86143aa411e369973808ef97093255826c5572ef58")
	hashtest.MillionA(t, func() hash.Hash { return NewShake256().(hash.Hash) }, "3578a7a4ca9137569cdf76ed617d31bb994fca9c1bbf8b184013de8234dfd13a3fd124d4df76c0a539ee7dd2f6e1ec346124c815d9410e145eb561bcd97b18ab")
}

// The output stream must not depend on how it is read.
func TestShakeStream(t *testing.T) {
	cases := []struct {
		name    string
		newXOF  func() hashkit.XOF
		wantHex string
	}{
		{"shake128", NewShake128, shake128abcStream},
		{"shake256", NewShake256, shake256abcStream},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			want, err := hex.DecodeString(tt.wantHex)
			require.NoError(t, err)

			x := tt.newXOF()
			x.Write([]byte("abc"))
			oneShot := make([]byte, len(want))
			_, err = x.Read(oneShot)
			require.NoError(t, err)
			assert.Equal(t, want, oneShot)

			x = tt.newXOF()
			x.Write([]byte("a"))
			x.Write([]byte("bc"))
			var pieces []byte
			buf := make([]byte, 7)
			for len(pieces) < len(want) {
				n, err := x.Read(buf)
				require.NoError(t, err)
				pieces = append(pieces, buf[:n]...)
			}
			assert.Equal(t, want, pieces[:len(want)])
		})
	}
}

func TestShakeClone(t *testing.T) {
	want, err := hex.DecodeString(shake128abcStream)
	require.NoError(t, err)

	x := NewShake128()
	x.Write([]byte("abc"))

	// Cloning before squeezing forks the absorbed state.
	y := x.Clone()
	out := make([]byte, len(want))
	x.Read(out)
	assert.Equal(t, want, out)

	// Cloning mid-squeeze must preserve the read offset.
	y.Read(out[:10])
	z := y.Clone()
	rest1 := make([]byte, len(want)-10)
	rest2 := make([]byte, len(want)-10)
	y.Read(rest1)
	z.Read(rest2)
	assert.Equal(t, want[10:], rest1)
	assert.Equal(t, want[10:], rest2)
}

func TestWriteAfterRead(t *testing.T) {
	x := NewShake128()
	x.Write([]byte("abc"))
	x.Read(make([]byte, 1))
	assert.PanicsWithValue(t, "sha3: Write after Read", func() {
		x.Write([]byte("more"))
	})

	// Reset returns the sponge to the absorbing phase.
	x.Reset()
	x.Write([]byte("abc"))
	out := make([]byte, 32)
	x.Read(out)
	assert.Equal(t, goldenShake[1].out128, hex.EncodeToString(out))
}

func TestShakeSum(t *testing.T) {
	out := make([]byte, 96)
	ShakeSum128(out, []byte("abc"))
	assert.Equal(t, shake128abcStream, hex.EncodeToString(out))

	xout := make([]byte, 96)
	xsha3.ShakeSum128(xout, []byte("abc"))
	assert.Equal(t, xout, out)

	out = make([]byte, 200)
	ShakeSum256(out, []byte("abc"))
	assert.Equal(t, shake256abcStream, hex.EncodeToString(out))

	xout = make([]byte, 200)
	xsha3.ShakeSum256(xout, []byte("abc"))
	assert.Equal(t, xout, out)
}
