package sha3

import (
	"hash"

	"github.com/hashforge/hashkit"
)

func init() {
	hashkit.Register("sha3-224", New224)
	hashkit.Register("sha3-256", New256)
	hashkit.Register("sha3-384", New384)
	hashkit.Register("sha3-512", New512)
	hashkit.Register("keccak256", NewLegacyKeccak256)
	hashkit.Register("keccak512", NewLegacyKeccak512)
}

// New224 returns a new hash.Hash computing the SHA3-224 digest.
func New224() hash.Hash { return newState(144, 28, dsbyteSHA3) }

// New256 returns a new hash.Hash computing the SHA3-256 digest.
func New256() hash.Hash { return newState(136, 32, dsbyteSHA3) }

// New384 returns a new hash.Hash computing the SHA3-384 digest.
func New384() hash.Hash { return newState(104, 48, dsbyteSHA3) }

// New512 returns a new hash.Hash computing the SHA3-512 digest.
func New512() hash.Hash { return newState(72, 64, dsbyteSHA3) }

// NewLegacyKeccak256 returns a new hash.Hash computing the pre-standard
// Keccak-256 digest used by Ethereum.
func NewLegacyKeccak256() hash.Hash { return newState(136, 32, dsbyteKeccak) }

// NewLegacyKeccak512 returns a new hash.Hash computing the pre-standard
// Keccak-512 digest.
func NewLegacyKeccak512() hash.Hash { return newState(72, 64, dsbyteKeccak) }

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) [28]byte {
	var out [28]byte
	sumInto(New224(), data, out[:])
	return out
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) [32]byte {
	var out [32]byte
	sumInto(New256(), data, out[:])
	return out
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) [48]byte {
	var out [48]byte
	sumInto(New384(), data, out[:])
	return out
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) [64]byte {
	var out [64]byte
	sumInto(New512(), data, out[:])
	return out
}

func sumInto(h hash.Hash, data, out []byte) {
	h.Write(data)
	copy(out, h.Sum(nil))
}
