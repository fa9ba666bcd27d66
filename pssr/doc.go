// This package implements the PSS signature padding scheme, also known
// as EMSA4 (IEEE 1363a) or EMSA-PSS (PKCS#1 v2.1, RFC 8017 section 9.1).
//
// PSS prepares a message digest for a raw asymmetric signature
// primitive: the digest is mixed with a fresh random salt, expanded
// through the MGF1 mask generation function, and laid out into a
// fixed-length encoded block (EM) whose size is derived from the bit
// length of the key modulus. Verification reverses the process: it
// unmasks the block, recovers the embedded salt, recomputes the
// expected hash and compares it in constant time. This package produces
// and consumes the encoded block only; the modular exponentiation that
// actually signs or verifies it is the caller's business, as are key
// encoding and algorithm negotiation.
//
// Two encoder variants are provided, differing only in how the message
// is accumulated before encoding. [PSSR] hashes streamed input
// incrementally: bytes passed to Update are fed straight into the hash
// function, and the digest is taken when the encoding is made. [PSSRRaw]
// buffers raw bytes instead, for callers that computed the digest
// upstream and merely pass it through; its buffered input must be
// exactly one digest long. Both variants are configured with a
// [crypto.Hash] identifier and a salt size; when the salt size is given
// explicitly (with [NewWithSaltSize] or [NewRawWithSaltSize]), a
// signature whose recovered salt has any other length is rejected
// during verification.
//
// Encoding failures (a digest of the wrong length, an output size too
// small for the chosen hash and salt) are reported as errors, since
// they are configuration mistakes. Verification never explains itself:
// whatever the reason, a bad encoding yields a plain false, so that the
// caller cannot build an oracle out of the failure mode.
//
// Random salts are drawn from an [io.Reader]; passing nil selects the
// operating system's RNG (through crypto/rand.Reader), which is the
// recommended choice. An explicit reader MUST be cryptographically
// secure; deterministic readers are acceptable only for tests.
//
// Importing this package makes the SHA-3, BLAKE2b, BLAKE2s and
// RIPEMD-160 hash families available through their crypto.Hash
// identifiers, in addition to the SHA-1 and SHA-2 families from the
// standard library. Other hashes can be used after registering them
// with crypto.RegisterHash.
package pssr
