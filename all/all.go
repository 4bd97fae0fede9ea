// Package all pulls in every algorithm package in the module so that each
// registers its named constructions. Import it for its side effects:
//
//	import (
//		_ "github.com/hashforge/hashkit/all"
//	)
//
// Applications that only need a few algorithms can import those packages
// directly instead and keep the rest out of the binary.
package all

import (
	_ "github.com/hashforge/hashkit/blake2b"
	_ "github.com/hashforge/hashkit/blake2s"
	_ "github.com/hashforge/hashkit/groestl"
	_ "github.com/hashforge/hashkit/md2"
	_ "github.com/hashforge/hashkit/md5"
	_ "github.com/hashforge/hashkit/ripemd"
	_ "github.com/hashforge/hashkit/sha1"
	_ "github.com/hashforge/hashkit/sha256"
	_ "github.com/hashforge/hashkit/sha512"
	_ "github.com/hashforge/hashkit/sha3"
	_ "github.com/hashforge/hashkit/shabal"
	_ "github.com/hashforge/hashkit/sm3"
	_ "github.com/hashforge/hashkit/streebog"
	_ "github.com/hashforge/hashkit/tiger"
)
