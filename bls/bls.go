package bls

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"

	"github.com/f3rmion/pbc/bls381"
)

// Encoded sizes in bytes.
const (
	SeedSize       = 32
	PrivateKeySize = bls381.ScalarSize
	PublicKeySize  = bls381.G2CompressedSize
	SignatureSize  = bls381.G1CompressedSize
)

// dst is the ciphersuite domain separation tag under which messages are
// hashed to G1.
var dst = []byte("BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_NUL_")

// ErrInvalidSignature is returned by [PublicKey.Verify] when the signature
// does not verify under the key and message.
var ErrInvalidSignature = errors.New("bls: invalid signature")

// PrivateKey is a BLS signing key.
type PrivateKey struct {
	s *bls381.Scalar
}

// PublicKey is a BLS verification key.
type PublicKey struct {
	p *bls381.G2
}

// Signature is a BLS signature.
type Signature struct {
	p *bls381.G1
}

// GenerateKey returns a new private key sampled from the provided random
// source.
func GenerateKey(r io.Reader) (*PrivateKey, error) {
	s, err := bls381.RandomScalar(r)
	if err != nil {
		return nil, fmt.Errorf("bls: generate key: %w", err)
	}
	if s.IsZero() {
		// Statistically unreachable with a sound source; a zero key would
		// make every public key the identity.
		return nil, errors.New("bls: generate key: zero scalar")
	}
	return &PrivateKey{s: s}, nil
}

// NewPrivateKeyFromSeed derives a private key deterministically from a
// 32-byte seed. The same seed always yields the same key.
func NewPrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("bls: seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	h := blake2b.Sum512(seed)
	s, err := bls381.NewScalar().SetBytesWide(h[:])
	if err != nil {
		return nil, fmt.Errorf("bls: derive key: %w", err)
	}
	return &PrivateKey{s: s}, nil
}

// Public returns the public key corresponding to sk.
func (sk *PrivateKey) Public() *PublicKey {
	return &PublicKey{p: bls381.NewG2().ScalarMult(sk.s, bls381.G2Generator())}
}

// Sign signs msg and returns the signature.
func (sk *PrivateKey) Sign(msg []byte) (*Signature, error) {
	h, err := bls381.HashToG1(msg, dst)
	if err != nil {
		return nil, fmt.Errorf("bls: sign: %w", err)
	}
	return &Signature{p: h.ScalarMult(sk.s, h)}, nil
}

// Bytes returns the 32-byte encoding of sk.
func (sk *PrivateKey) Bytes() []byte {
	return sk.s.Bytes()
}

// ParsePrivateKey decodes a private key from its 32-byte encoding.
func ParsePrivateKey(data []byte) (*PrivateKey, error) {
	s, err := bls381.NewScalar().SetBytes(data)
	if err != nil {
		return nil, fmt.Errorf("bls: parse private key: %w", err)
	}
	return &PrivateKey{s: s}, nil
}

// Verify checks that sig is a valid signature on msg under pk. It returns
// nil on success and [ErrInvalidSignature] when the signature does not
// verify.
func (pk *PublicKey) Verify(msg []byte, sig *Signature) error {
	h, err := bls381.HashToG1(msg, dst)
	if err != nil {
		return fmt.Errorf("bls: verify: %w", err)
	}
	h.Neg(h)

	ok, err := bls381.PairingCheck(
		[]*bls381.G1{h, sig.p},
		[]*bls381.G2{pk.p, bls381.G2Generator()},
	)
	if err != nil {
		return fmt.Errorf("bls: verify: %w", err)
	}
	if !ok {
		return ErrInvalidSignature
	}
	return nil
}

// Bytes returns the 96-byte compressed encoding of pk.
func (pk *PublicKey) Bytes() []byte {
	return pk.p.Bytes()
}

// Equal reports whether pk and other are the same key.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.p.Equal(other.p)
}

// ParsePublicKey decodes a public key from its compressed encoding,
// validating subgroup membership.
func ParsePublicKey(data []byte) (*PublicKey, error) {
	p, err := bls381.NewG2().SetBytes(data)
	if err != nil {
		return nil, fmt.Errorf("bls: parse public key: %w", err)
	}
	return &PublicKey{p: p}, nil
}

// Bytes returns the 48-byte compressed encoding of sig.
func (sig *Signature) Bytes() []byte {
	return sig.p.Bytes()
}

// ParseSignature decodes a signature from its compressed encoding,
// validating subgroup membership.
func ParseSignature(data []byte) (*Signature, error) {
	p, err := bls381.NewG1().SetBytes(data)
	if err != nil {
		return nil, fmt.Errorf("bls: parse signature: %w", err)
	}
	return &Signature{p: p}, nil
}
