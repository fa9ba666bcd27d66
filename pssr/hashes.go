package pssr

// The imports below register hash implementations with the crypto
// package, so that the corresponding crypto.Hash identifiers are
// usable wherever this package is linked in: SHA-1 and the SHA-2
// family from the standard library, SHA-3, BLAKE2b, BLAKE2s and
// RIPEMD-160 from golang.org/x/crypto. Hashes not in this set work
// too, once the application registers them with crypto.RegisterHash.

import (
	"crypto"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
	_ "golang.org/x/crypto/blake2b"
	_ "golang.org/x/crypto/blake2s"
	_ "golang.org/x/crypto/ripemd160"
	_ "golang.org/x/crypto/sha3"
	"hash"
)

// Instantiate the hash engine for an identifier.
func new_hash(id crypto.Hash) (hash.Hash, error) {
	if !id.Available() {
		return nil, ErrHashUnavailable
	}
	return id.New(), nil
}
