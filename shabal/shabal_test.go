package shabal

import (
	"encoding/hex"
	"hash"
	"testing"

	"github.com/hashforge/hashkit"
	"github.com/hashforge/hashkit/internal/hashtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var golden = map[int][]struct {
	name string
	in   string
	out  string
}{
	24: {
		{"empty", "", "e10dc32232f98b039dbbcfa41269b9cdf67a73c841214c81"},
		{"abc", "abc", "fc0e7b3568c6daef93e7b9a44e83739a75ae2722c6713ce8"},
		{"phrase", "hello world", "ef94344e1da01e9691ef566fceb33c217c6582728e2b8255"},
		{"pangram", "The quick brown fox jumps over the lazy dog", "c0629db89b2911e0febaabd7618a5da22ad6ea2638e13d40"},
		{"twoblock", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "2cb1c10393f5d19f73ca5a4bf8ff7560a915801dd173852e"},
		{"fourblock", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu", "cc58498304029a8ca753d1fc4e7fe59b90332524a2478341"},
	},
	28: {
		{"empty", "", "562b4fdbe1706247552927f814b66a3d74b465a090af23e277bf8029"},
		{"abc", "abc", "f47578239607af492d5f7df9241818adf6fba4180ddcbef6e39ac1e9"},
		{"phrase", "hello world", "6d4860c913cbc7007c331d0d191a129ff27e29d5aac726b65bb61887"},
		{"pangram", "The quick brown fox jumps over the lazy dog", "0afa60c76a61bcc73773ec8e2694862506f7782a088ce8a30ba5e789"},
		{"twoblock", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "44780e1f0aa440a1d27c60541de9e0a7b8827b742dfec5f83e01e69a"},
		{"fourblock", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu", "869ac3542e5a6345d357675ec6dd9598a445da4c74dcb011368ae966"},
	},
	32: {
		{"empty", "", "aec750d11feee9f16271922fbaf5a9be142f62019ef8d720f858940070889014"},
		{"abc", "abc", "07225fab83ca48fb480d22219410d5ca008359efbfd315829029afe2cb3f0404"},
		{"phrase", "hello world", "d55e745e7bfb395e6cc13a5c57b2972100ce2fb18a25041ab2fea333c2e9e425"},
		{"pangram", "The quick brown fox jumps over the lazy dog", "cdee2d6e35a1aa235c09e3d1a94e59207459c8da37cfaed0c2d51fab9a59f932"},
		{"twoblock", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "ea446f857487e6c18c6661742cc362f21f1d92d4f4e74a4c501ffaa98d5c0673"},
		{"fourblock", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu", "199321a8e5187b8fea84913200ffb2026c95e10908d46b0d04e684330e7246ef"},
	},
	48: {
		{"empty", "", "ff093d67d22b06a674b5f384719150d617e0ff9c8923569a2ab60cda886df63c91a25f33cd71cc22c9eebc5cd6aee52a"},
		{"abc", "abc", "66613058865271722c0295774aa77258a5082bebbb5a02f9d6aee9ad303fc71cbf19e2f599ddfde88cf0bf30a028e530"},
		{"phrase", "hello world", "8a13489b1978d8465a71ea58b2b03ed4ee8e9e2208d7971b8efb6f930920fbbc4f8738bf4d14f76b529ddea2f5249c83"},
		{"pangram", "The quick brown fox jumps over the lazy dog", "c08623c184f728d3e35c15bd74a27f0480de3a837f3a14bef7df70edc0e4a9500e100092d3e3f3b464ed18cbc1121bc5"},
		{"twoblock", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "19df382bad56aefed2b9b022a99a0185780c76e0b09c25796181b3899a8dc03015d2ea2160a46903614a950af25d0779"},
		{"fourblock", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu", "72a3615b7b0f0807d120fabecc55511e11b5f41baf9ddca132ac0b59bf1f820af264750a64ff489cbf68a66cf19156a7"},
	},
	64: {
		{"empty", "", "fc2d5dff5d70b7f6b1f8c2fcc8c1f9fe9934e54257eded0cf2b539a2ef0a19ccffa84f8d9fa135e4bd3c09f590f3a927ebd603ac29eb729e6f2a9af031ad8dc6"},
		{"abc", "abc", "4a7f0f707c1b0c1d12ddcfa8aa0f9d2410dd9bab57c2d56705fc1acb02066f99678738cedb20a2aba94842a441e77bc02656fe5690f98b421d029bfc4df09f91"},
		{"phrase", "hello world", "c795f31c021b4c8e98bd83087b22f9e2e79ef0484e9eb7ad5d62527ab5736b81ff176ff712912da4a9449bdffd7865e8912ee0840b49a1834959ceed5d7bea16"},
		{"pangram", "The quick brown fox jumps over the lazy dog", "f12f6893f4535d360b07ec15be706e5921b0358d736e61cb2e7ffd2157cd119dc1aeecbf2f1ac73552dc052ad4edcf8cbe87073a4db4d1b4f6a31e39edf5a96d"},
		{"twoblock", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "6c40a5eaaae40a50bff9e530a4254c3e2fd2975f9d19f4eafa84c87de1c728acd89ce23c3c4af5ba0d38032ad327629d204fd8090435f3e79032e676bf1b55ff"},
		{"fourblock", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu", "67a9f8d365bd78e009d1935268ed48435bdd5a788d0acd10877ad677408b0a81a863acfc2772e20202c59e7f33c2838c43520cdeaf391c63fdcab3c14d4bd614"},
	},
}

func TestGolden(t *testing.T) {
	for size, vectors := range golden {
		for _, tt := range vectors {
			t.Run(tt.name, func(t *testing.T) {
				hashtest.KAT(t, func() hash.Hash { return mustNew(size) }, []byte(tt.in), tt.out)
			})
		}
	}
}

func TestMillionA(t *testing.T) {
	hashtest.MillionA(t, New256, "0af0b321d33503449f1a1a099abad4e3999867a4ff8112ff48f0d56278a9658f")
}

func TestConstructionErrors(t *testing.T) {
	for _, size := range []int{0, 20, 33, 65} {
		_, err := New(size)
		var cerr *hashkit.ConstructionError
		require.ErrorAs(t, err, &cerr, "size %d", size)
		assert.Equal(t, "shabal", cerr.Alg)
		assert.Equal(t, "size", cerr.Param)
	}
}

func TestSum(t *testing.T) {
	s := Sum256([]byte("abc"))
	assert.Equal(t, golden[32][1].out, hex.EncodeToString(s[:]))
}

func TestSizeIndependence(t *testing.T) {
	for _, pair := range [][2]int{{24, 32}, {48, 64}} {
		short, err := New(pair[0])
		require.NoError(t, err)
		long, err := New(pair[1])
		require.NoError(t, err)
		hashtest.Unrelated(t, short, long)
	}
}
