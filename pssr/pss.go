package pssr

import (
	"crypto/subtle"
	"hash"
	"math/bits"
)

// Core PSS encode and verify operations, shared by both encoder
// variants.

// Assemble the PSS encoded message block.
//
//	- h is the hash function (consumed, left reset)
//	- msg is the message digest; its length must equal the hash output
//	  length
//	- salt is the already-generated salt, of any length
//	- output_bits is the bit size the block is encoded for; with an
//	  n-bit modulus and the usual top-bit convention this is n-1
//
// The returned block has length ceil(output_bits/8) and layout
// masked(PS || 0x01 || salt) || H || 0xBC, where PS is a run of zero
// bytes, H = Hash(0x00*8 || msg || salt), and the mask is MGF1 output
// seeded with H. The top 8*ceil(output_bits/8) - output_bits bits of
// the first byte are cleared so that the block fits under the modulus.
// An error is returned if the digest length does not match the hash,
// or if output_bits is smaller than 8*hash_size + 8*salt_size + 9 (the
// minimum that leaves room for the marker, trailer and top-bit slack).
func pss_encode(h hash.Hash, msg []byte, salt []byte, output_bits int) ([]byte, error) {
	hash_size := h.Size()
	salt_size := len(salt)

	if len(msg) != hash_size {
		return nil, ErrMessageLength
	}
	if output_bits < 8*hash_size+8*salt_size+9 {
		return nil, ErrOutputTooSmall
	}

	output_length := (output_bits + 7) / 8

	// H = Hash(0x00*8 || msg || salt). The eight zero bytes are a
	// fixed domain separation prefix.
	var prefix [8]byte
	h.Write(prefix[:])
	h.Write(msg)
	h.Write(salt)
	H := h.Sum(nil)
	h.Reset()

	em := make([]byte, output_length)
	em[output_length-hash_size-salt_size-2] = 0x01
	copy(em[output_length-1-hash_size-salt_size:], salt)
	MGF1XOR(h, H, em[:output_length-hash_size-1])
	em[0] &= 0xFF >> (8*output_length - output_bits)
	copy(em[output_length-1-hash_size:], H)
	em[output_length-1] = 0xBC
	return em, nil
}

// Recover and check a PSS encoded message block.
//
//	- h is the hash function (consumed, left reset)
//	- pss_repr is the candidate block, as recovered from the signature
//	  primitive (public, attacker-controlled)
//	- message_hash is the expected digest, computed by the caller
//	- key_bits is the maximum input bit size of the signature
//	  primitive; for an n-bit modulus this is n-1, the same value used
//	  as output_bits when the block was made
//
// Returns the length of the recovered salt and true on success, or
// (0, false) on any failure. Failures are deliberately not
// distinguished from one another. The final digest comparison runs in
// constant time; the padding scan does not, because by then the data
// block has been unmasked and carries no secrets (the block it was
// recovered from is public).
func pss_verify(h hash.Hash, pss_repr []byte, message_hash []byte, key_bits int) (int, bool) {
	hash_size := h.Size()
	key_bytes := (key_bits + 7) / 8

	if key_bits < 8*hash_size+9 {
		return 0, false
	}
	if len(message_hash) != hash_size {
		return 0, false
	}
	if len(pss_repr) > key_bytes || len(pss_repr) <= 1 {
		return 0, false
	}
	if pss_repr[len(pss_repr)-1] != 0xBC {
		return 0, false
	}

	// The primitive output may have dropped leading zero bytes;
	// left-pad back to the full length before slicing the block up.
	coded := make([]byte, key_bytes)
	copy(coded[key_bytes-len(pss_repr):], pss_repr)

	// Bits above the key size must not be set.
	top_bits := 8*key_bytes - key_bits
	if top_bits > 8-bits.Len8(coded[0]) {
		return 0, false
	}

	db := coded[:key_bytes-hash_size-1]
	H := coded[key_bytes-hash_size-1 : key_bytes-1]

	MGF1XOR(h, H, db)
	db[0] &= 0xFF >> top_bits

	// The first non-zero byte of the data block must be the 0x01
	// marker; everything after it is the salt.
	salt_offset := 0
	for j := 0; j < len(db); j++ {
		if db[j] == 0x01 {
			salt_offset = j + 1
			break
		}
		if db[j] != 0 {
			return 0, false
		}
	}
	if salt_offset == 0 {
		return 0, false
	}
	salt := db[salt_offset:]

	var prefix [8]byte
	h.Write(prefix[:])
	h.Write(message_hash)
	h.Write(salt)
	H2 := h.Sum(nil)
	h.Reset()

	if subtle.ConstantTimeCompare(H, H2) != 1 {
		return 0, false
	}
	return len(salt), true
}
