package pssr

import (
	"crypto"
	"crypto/rand"
	"errors"
	"fmt"
	"hash"
	"io"
)

// Errors reported for encoding-side mistakes. These are configuration
// or programmer errors and are safe to report explicitly. Verification
// failures are never reported this way: whatever went wrong, Verify
// returns a plain false.
var (
	ErrHashUnavailable = errors.New("hash function is not available")
	ErrSaltSize        = errors.New("invalid salt size")
	ErrMessageLength   = errors.New("input length does not match hash output length")
	ErrOutputTooSmall  = errors.New("output length too small for hash and salt")
)

// An Encoder accumulates a message, turns it into the encoded block
// consumed by a raw signature primitive, and checks candidate blocks
// during signature verification. The two implementations, [PSSR] and
// [PSSRRaw], share the same encoding; they differ only in what Update
// does with its input.
//
// The usual signing sequence is Update* then RawData then EncodingOf;
// the verifying sequence is Update* then RawData then Verify. An
// Encoder owns a single hash engine, so operations on one instance
// must not overlap: finish one sequence before starting the next, and
// do not share an instance between goroutines without locking.
type Encoder interface {
	// Feed message bytes into the encoder.
	Update(data []byte)

	// Finish accumulating the message and return its digest.
	RawData() ([]byte, error)

	// Produce the encoded block for a digest returned by RawData,
	// using a fresh random salt. outputBits is the bit size of the
	// target block: n-1 for an n-bit modulus under the usual top-bit
	// convention. rng supplies the salt; nil selects the OS RNG.
	EncodingOf(msg []byte, outputBits int, rng io.Reader) ([]byte, error)

	// Check a candidate encoded block (as recovered by the signature
	// primitive) against the expected digest. keyBits is the maximum
	// input bit size of the primitive, i.e. the outputBits the block
	// was encoded for. Returns true only for a valid encoding.
	Verify(coded []byte, raw []byte, keyBits int) bool

	// Canonical algorithm name, for identification purposes.
	Name() string
}

var (
	_ Encoder = (*PSSR)(nil)
	_ Encoder = (*PSSRRaw)(nil)
)

// PSSR is the streaming encoder variant: bytes passed to Update are
// hashed as they arrive, and RawData returns the digest of everything
// streamed so far. This is the variant to use when this package sees
// the whole message.
//
// A PSSR owns its hash engine; see [Encoder] for the sequencing and
// concurrency rules.
type PSSR struct {
	id     crypto.Hash
	eng    hash.Hash
	slen   int
	strict bool
}

// Create a streaming PSS encoder using the given hash function. The
// salt size defaults to the hash output length, and verification
// accepts any recovered salt length.
//
// An error is returned if the hash function is not linked into the
// binary (see the package comment for the set linked in by default).
func New(id crypto.Hash) (*PSSR, error) {
	eng, err := new_hash(id)
	if err != nil {
		return nil, err
	}
	return &PSSR{id: id, eng: eng, slen: eng.Size()}, nil
}

// Create a streaming PSS encoder with an explicit salt size, in bytes.
// The size may be zero. Fixing the salt size also makes it a policy:
// Verify rejects any encoding whose recovered salt length differs from
// slen, even if the encoding is otherwise consistent.
func NewWithSaltSize(id crypto.Hash, slen int) (*PSSR, error) {
	if slen < 0 {
		return nil, ErrSaltSize
	}
	eng, err := new_hash(id)
	if err != nil {
		return nil, err
	}
	return &PSSR{id: id, eng: eng, slen: slen, strict: true}, nil
}

// Feed message bytes into the hash function.
func (p *PSSR) Update(data []byte) {
	p.eng.Write(data)
}

// Finish accumulating the message and return its digest. The hash
// state is reset for the next operation.
func (p *PSSR) RawData() ([]byte, error) {
	d := p.eng.Sum(nil)
	p.eng.Reset()
	return d, nil
}

// Produce the encoded block for the digest msg, drawing a fresh salt
// from rng (nil to use the OS RNG). A failure of the random source is
// returned as-is. See [Encoder] for the meaning of outputBits.
func (p *PSSR) EncodingOf(msg []byte, outputBits int, rng io.Reader) ([]byte, error) {
	salt, err := random_salt(rng, p.slen)
	if err != nil {
		return nil, err
	}
	return pss_encode(p.eng, msg, salt, outputBits)
}

// Check a candidate encoded block against the expected digest raw.
// Returns true only for a valid encoding whose recovered salt length
// satisfies the configured policy. See [Encoder] for the meaning of
// keyBits.
func (p *PSSR) Verify(coded []byte, raw []byte, keyBits int) bool {
	slen, ok := pss_verify(p.eng, coded, raw, keyBits)
	if p.strict && slen != p.slen {
		return false
	}
	return ok
}

// Salt size, in bytes, used when encoding.
func (p *PSSR) SaltSize() int {
	return p.slen
}

// Canonical algorithm name, e.g. "EMSA4(SHA-256,MGF1,32)".
func (p *PSSR) Name() string {
	return fmt.Sprintf("EMSA4(%s,MGF1,%d)", p.id.String(), p.slen)
}

// PSSRRaw is the raw-buffering encoder variant: bytes passed to Update
// are kept as-is, and RawData requires that they add up to exactly one
// digest. This is the variant to use when the message was hashed
// upstream and the digest is merely passed through.
//
// A PSSRRaw owns its hash engine (used for the encoding itself); see
// [Encoder] for the sequencing and concurrency rules.
type PSSRRaw struct {
	id     crypto.Hash
	eng    hash.Hash
	msg    []byte
	slen   int
	strict bool
}

// Create a raw-buffering PSS encoder using the given hash function.
// The salt size defaults to the hash output length, and verification
// accepts any recovered salt length.
func NewRaw(id crypto.Hash) (*PSSRRaw, error) {
	eng, err := new_hash(id)
	if err != nil {
		return nil, err
	}
	return &PSSRRaw{id: id, eng: eng, slen: eng.Size()}, nil
}

// Create a raw-buffering PSS encoder with an explicit salt size, in
// bytes. As with [NewWithSaltSize], the size becomes a policy enforced
// during verification.
func NewRawWithSaltSize(id crypto.Hash, slen int) (*PSSRRaw, error) {
	if slen < 0 {
		return nil, ErrSaltSize
	}
	eng, err := new_hash(id)
	if err != nil {
		return nil, err
	}
	return &PSSRRaw{id: id, eng: eng, slen: slen, strict: true}, nil
}

// Append message bytes to the internal buffer without hashing them.
func (p *PSSRRaw) Update(data []byte) {
	p.msg = append(p.msg, data...)
}

// Swap out the buffered input and return it as the digest. The buffer
// is emptied even on failure. An error is returned unless the buffered
// length equals the hash output length exactly.
func (p *PSSRRaw) RawData() ([]byte, error) {
	ret := p.msg
	p.msg = nil
	if len(ret) != p.eng.Size() {
		return nil, ErrMessageLength
	}
	return ret, nil
}

// Produce the encoded block for the digest msg, drawing a fresh salt
// from rng (nil to use the OS RNG). A failure of the random source is
// returned as-is. See [Encoder] for the meaning of outputBits.
func (p *PSSRRaw) EncodingOf(msg []byte, outputBits int, rng io.Reader) ([]byte, error) {
	salt, err := random_salt(rng, p.slen)
	if err != nil {
		return nil, err
	}
	return pss_encode(p.eng, msg, salt, outputBits)
}

// Check a candidate encoded block against the expected digest raw.
// Returns true only for a valid encoding whose recovered salt length
// satisfies the configured policy. See [Encoder] for the meaning of
// keyBits.
func (p *PSSRRaw) Verify(coded []byte, raw []byte, keyBits int) bool {
	slen, ok := pss_verify(p.eng, coded, raw, keyBits)
	if p.strict && slen != p.slen {
		return false
	}
	return ok
}

// Salt size, in bytes, used when encoding.
func (p *PSSRRaw) SaltSize() int {
	return p.slen
}

// Canonical algorithm name, e.g. "PSSR_Raw(SHA-256,MGF1,32)".
func (p *PSSRRaw) Name() string {
	return fmt.Sprintf("PSSR_Raw(%s,MGF1,%d)", p.id.String(), p.slen)
}

// Draw a fresh salt of slen bytes from the provided random source, or
// from the OS RNG if rng is nil.
func random_salt(rng io.Reader, slen int) ([]byte, error) {
	if rng == nil {
		rng = rand.Reader
	}
	salt := make([]byte, slen)
	if _, err := io.ReadFull(rng, salt); err != nil {
		return nil, err
	}
	return salt, nil
}
