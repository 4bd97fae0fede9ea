// Package hashkit defines the common surface of the hash packages in this
// module: the capability interfaces beyond hash.Hash, the construction
// error type, and a name-keyed registry that the algorithm packages
// populate from their init functions.
//
// Importing the all subpackage pulls in every algorithm:
//
//	import _ "github.com/hashforge/hashkit/all"
//	h, _ := hashkit.New("sha3-256")
package hashkit

import (
	"fmt"
	"hash"
	"io"
	"sort"
	"sync"
)

// XOF is an extendable-output function. Write absorbs input and Read
// squeezes an arbitrary amount of output; the first Read permanently ends
// the absorbing phase, and a Write after that panics. Successive Reads
// continue the same output stream.
type XOF interface {
	io.Writer
	io.Reader
	// Clone returns a copy with independent state, preserving which phase
	// the function is in.
	Clone() XOF
	// Reset returns the function to its initial absorbing state.
	Reset()
}

// VariableHash is a hash.Hash whose output length was chosen at
// construction time rather than fixed by the algorithm.
type VariableHash interface {
	hash.Hash
}

// ConstructionError reports invalid parameters passed to a hash
// constructor. It is the only error kind the constructors in this module
// return; all other misuse (such as writing to a sponge after reading)
// panics.
type ConstructionError struct {
	Alg    string // algorithm name, e.g. "blake2b"
	Param  string // offending parameter, e.g. "size"
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Alg, e.Param, e.Reason)
}

var (
	mu       sync.RWMutex
	registry = make(map[string]func() hash.Hash)
)

// Register makes a hash constructor available under name. It is intended
// to be called from the init function of an algorithm package and panics
// on a duplicate name.
func Register(name string, ctor func() hash.Hash) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[name]; dup {
		panic("hashkit: duplicate registration of " + name)
	}
	registry[name] = ctor
}

// New returns a fresh hash for the named algorithm, or a ConstructionError
// if no such algorithm was registered.
func New(name string) (hash.Hash, error) {
	mu.RLock()
	ctor, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, &ConstructionError{Alg: name, Param: "name", Reason: "unknown algorithm"}
	}
	return ctor(), nil
}

// Sum computes the named algorithm's digest of data in one call.
func Sum(name string, data []byte) ([]byte, error) {
	h, err := New(name)
	if err != nil {
		return nil, err
	}
	h.Write(data)
	return h.Sum(nil), nil
}

// SumXOF absorbs data into x and reads an n-byte digest from it. The
// function is left in the squeezing phase; callers wanting more output
// can keep reading from x.
func SumXOF(x XOF, data []byte, n int) []byte {
	x.Write(data)
	out := make([]byte, n)
	io.ReadFull(x, out)
	return out
}

// Names returns the registered algorithm names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
