package sha3

import (
	"hash"

	"github.com/hashforge/hashkit"
)

func init() {
	// Registered with their conventional default output lengths.
	hashkit.Register("shake128", func() hash.Hash { return shake{newState(168, 32, dsbyteShake)} })
	hashkit.Register("shake256", func() hash.Hash { return shake{newState(136, 64, dsbyteShake)} })
}

// shake wraps the sponge state to expose cloning, which extendable-output
// use cases need and fixed hashes do not.
type shake struct {
	*state
}

// Clone returns a copy of the XOF with independent state.
func (s shake) Clone() hashkit.XOF {
	return shake{s.state.clone()}
}

// NewShake128 returns a new SHAKE128 extendable-output function. Its Sum
// output defaults to 32 bytes for a 128-bit security level.
func NewShake128() hashkit.XOF { return shake{newState(168, 32, dsbyteShake)} }

// NewShake256 returns a new SHAKE256 extendable-output function. Its Sum
// output defaults to 64 bytes for a 256-bit security level.
func NewShake256() hashkit.XOF { return shake{newState(136, 64, dsbyteShake)} }

// ShakeSum128 writes an arbitrary-length digest of data into hash.
func ShakeSum128(hash, data []byte) {
	x := NewShake128()
	x.Write(data)
	x.Read(hash)
}

// ShakeSum256 writes an arbitrary-length digest of data into hash.
func ShakeSum256(hash, data []byte) {
	x := NewShake256()
	x.Write(data)
	x.Read(hash)
}
