package pssr

import (
	"hash"
)

// Apply an MGF1 mask to a caller-provided buffer, in place.
//
//	- h is the underlying hash function (consumed, left reset)
//	- seed is the mask seed
//	- out is the buffer the mask is XORed into; its length sets the
//	  mask length
//
// MGF1 (PKCS#1 v2.1, appendix B.2.1) derives the mask by hashing the
// seed followed by a 4-byte big-endian block counter, for counter
// values 0, 1, 2, ... until enough bytes have been produced; the last
// hash output is truncated as needed. The mask length does not have to
// be a multiple of the hash output size, and may be zero. The function
// is deterministic and cannot fail.
func MGF1XOR(h hash.Hash, seed []byte, out []byte) {
	var counter [4]byte
	var block []byte
	done := 0
	for done < len(out) {
		h.Write(seed)
		h.Write(counter[:])
		block = h.Sum(block[:0])
		h.Reset()
		for i := 0; i < len(block) && done < len(out); i++ {
			out[done] ^= block[i]
			done++
		}
		inc_counter(&counter)
	}
}

// Increment a 4-byte big-endian counter.
func inc_counter(c *[4]byte) {
	if c[3]++; c[3] != 0 {
		return
	}
	if c[2]++; c[2] != 0 {
		return
	}
	if c[1]++; c[1] != 0 {
		return
	}
	c[0]++
}
