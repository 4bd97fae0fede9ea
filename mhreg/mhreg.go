// Package mhreg registers this module's hash implementations with the
// go-multihash registry. It has no API of its own and is meant to be used
// as a side-effecting import:
//
//	import (
//		_ "github.com/hashforge/hashkit/mhreg"
//	)
//
// After the import, multihash.GetHasher and multihash.Sum resolve the
// registered indicator codes to the implementations in this module,
// overriding the stdlib defaults that go-multihash installs for the
// SHA and MD5 families.
package mhreg

import (
	"hash"

	multihash "github.com/multiformats/go-multihash/core"

	"github.com/hashforge/hashkit/blake2b"
	"github.com/hashforge/hashkit/blake2s"
	"github.com/hashforge/hashkit/md5"
	"github.com/hashforge/hashkit/ripemd"
	"github.com/hashforge/hashkit/sha1"
	"github.com/hashforge/hashkit/sha256"
	"github.com/hashforge/hashkit/sha512"
	"github.com/hashforge/hashkit/sha3"
	"github.com/hashforge/hashkit/sm3"
)

// Indicator codes reserved in the multicodec table but not exported by
// go-multihash/core.
const (
	ripemd160  = 0x1053
	ripemd320  = 0x1055
	sm3_256    = 0x534d
	blake2bMin = 0xb201
	blake2sMin = 0xb241
)

func init() {
	multihash.Register(multihash.MD5, md5.New)
	multihash.Register(multihash.SHA1, sha1.New)
	multihash.Register(multihash.SHA2_224, sha256.New224)
	multihash.Register(multihash.SHA2_256, sha256.New)
	multihash.Register(multihash.SHA2_384, sha512.New384)
	multihash.Register(multihash.SHA2_512, sha512.New)
	multihash.Register(multihash.SHA2_512_224, sha512.New512_224)
	multihash.Register(multihash.SHA2_512_256, sha512.New512_256)

	multihash.Register(multihash.SHA3_224, sha3.New224)
	multihash.Register(multihash.SHA3_256, sha3.New256)
	multihash.Register(multihash.SHA3_384, sha3.New384)
	multihash.Register(multihash.SHA3_512, sha3.New512)
	multihash.Register(multihash.KECCAK_256, sha3.NewLegacyKeccak256)
	multihash.Register(multihash.KECCAK_512, sha3.NewLegacyKeccak512)

	// SHAKE digests default to twice the security level, matching the
	// multihash convention.
	multihash.Register(multihash.SHAKE_128, func() hash.Hash { return sha3.NewShake128().(hash.Hash) })
	multihash.Register(multihash.SHAKE_256, func() hash.Hash { return sha3.NewShake256().(hash.Hash) })

	multihash.Register(ripemd160, ripemd.New160)
	multihash.Register(ripemd320, ripemd.New320)
	multihash.Register(sm3_256, sm3.New)

	// The multicodec table reserves one code per BLAKE2 digest length.
	for size := 1; size <= blake2b.Size; size++ {
		size := size
		multihash.Register(blake2bMin+uint64(size)-1, func() hash.Hash {
			h, err := blake2b.New(&blake2b.Config{Size: size})
			if err != nil {
				panic(err)
			}
			return h
		})
	}
	for size := 1; size <= blake2s.Size; size++ {
		size := size
		multihash.Register(blake2sMin+uint64(size)-1, func() hash.Hash {
			h, err := blake2s.New(&blake2s.Config{Size: size})
			if err != nil {
				panic(err)
			}
			return h
		})
	}
}
