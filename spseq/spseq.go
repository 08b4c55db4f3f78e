package spseq

import (
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/pbc/bls381"
)

// ErrInvalidSignature is returned by [PublicKey.Verify] when the signature
// does not verify under the key and message.
var ErrInvalidSignature = errors.New("spseq: invalid signature")

// PrivateKey is an SPS-EQ signing key for message vectors of a fixed length.
type PrivateKey struct {
	x []*bls381.Scalar
}

// PublicKey is an SPS-EQ verification key for message vectors of a fixed
// length.
type PublicKey struct {
	x []*bls381.G2
}

// Signature is an SPS-EQ signature on a message vector.
type Signature struct {
	Z    *bls381.G1
	Y    *bls381.G1
	Yhat *bls381.G2
}

// GenerateKey returns a new private key for message vectors of length n,
// sampled from the provided random source.
func GenerateKey(r io.Reader, n int) (*PrivateKey, error) {
	if n < 1 {
		return nil, fmt.Errorf("spseq: message length must be positive, got %d", n)
	}
	x := make([]*bls381.Scalar, n)
	for i := range x {
		s, err := bls381.RandomScalar(r)
		if err != nil {
			return nil, fmt.Errorf("spseq: generate key: %w", err)
		}
		x[i] = s
	}
	return &PrivateKey{x: x}, nil
}

// Public returns the public key corresponding to sk.
func (sk *PrivateKey) Public() *PublicKey {
	g2 := bls381.G2Generator()
	x := make([]*bls381.G2, len(sk.x))
	for i, s := range sk.x {
		x[i] = bls381.NewG2().ScalarMult(s, g2)
	}
	return &PublicKey{x: x}
}

// MessageLength returns the message vector length sk signs.
func (sk *PrivateKey) MessageLength() int { return len(sk.x) }

// MessageLength returns the message vector length pk verifies.
func (pk *PublicKey) MessageLength() int { return len(pk.x) }

// Sign signs the message vector msg with fresh randomness from r. The
// vector length must match the key.
func (sk *PrivateKey) Sign(r io.Reader, msg []*bls381.G1) (*Signature, error) {
	if len(msg) != len(sk.x) {
		return nil, fmt.Errorf("spseq: message length %d does not match key length %d", len(msg), len(sk.x))
	}

	y, err := randomNonZeroScalar(r)
	if err != nil {
		return nil, fmt.Errorf("spseq: sign: %w", err)
	}
	yInv, err := bls381.NewScalar().Inverse(y)
	if err != nil {
		return nil, fmt.Errorf("spseq: sign: %w", err)
	}

	z, err := bls381.NewG1().MultiScalarMult(msg, sk.x)
	if err != nil {
		return nil, fmt.Errorf("spseq: sign: %w", err)
	}
	z.ScalarMult(y, z)

	return &Signature{
		Z:    z,
		Y:    bls381.NewG1().ScalarMult(yInv, bls381.G1Generator()),
		Yhat: bls381.NewG2().ScalarMult(yInv, bls381.G2Generator()),
	}, nil
}

// Verify checks that sig is a valid signature on msg under pk. It returns
// nil on success and [ErrInvalidSignature] when the signature does not
// verify.
func (pk *PublicKey) Verify(msg []*bls381.G1, sig *Signature) error {
	if len(msg) != len(pk.x) {
		return fmt.Errorf("spseq: message length %d does not match key length %d", len(msg), len(pk.x))
	}

	// e(Z, Yhat) = prod_i e(M_i, X_i)
	ps := make([]*bls381.G1, 0, len(msg)+1)
	qs := make([]*bls381.G2, 0, len(msg)+1)
	ps = append(ps, bls381.NewG1().Neg(sig.Z))
	qs = append(qs, sig.Yhat)
	for i := range msg {
		ps = append(ps, msg[i])
		qs = append(qs, pk.x[i])
	}
	ok, err := bls381.PairingCheck(ps, qs)
	if err != nil {
		return fmt.Errorf("spseq: verify: %w", err)
	}
	if !ok {
		return ErrInvalidSignature
	}

	// e(Y, g2) = e(g1, Yhat)
	ok, err = bls381.PairingCheck(
		[]*bls381.G1{sig.Y, bls381.NewG1().Neg(bls381.G1Generator())},
		[]*bls381.G2{bls381.G2Generator(), sig.Yhat},
	)
	if err != nil {
		return fmt.Errorf("spseq: verify: %w", err)
	}
	if !ok {
		return ErrInvalidSignature
	}
	return nil
}

// ChangeRepresentation moves msg to the representative mu*msg of its
// equivalence class and adapts sig into a fresh signature on it, using
// randomness from r. The returned pair verifies under the same public key
// and is unlinkable to the input pair. mu must be non-zero.
func ChangeRepresentation(r io.Reader, msg []*bls381.G1, sig *Signature, mu *bls381.Scalar) ([]*bls381.G1, *Signature, error) {
	if mu.IsZero() {
		return nil, nil, errors.New("spseq: representation change factor must be non-zero")
	}

	psi, err := randomNonZeroScalar(r)
	if err != nil {
		return nil, nil, fmt.Errorf("spseq: change representation: %w", err)
	}
	psiInv, err := bls381.NewScalar().Inverse(psi)
	if err != nil {
		return nil, nil, fmt.Errorf("spseq: change representation: %w", err)
	}

	newMsg := make([]*bls381.G1, len(msg))
	for i := range msg {
		newMsg[i] = bls381.NewG1().ScalarMult(mu, msg[i])
	}

	muPsi := bls381.NewScalar().Mul(mu, psi)
	newSig := &Signature{
		Z:    bls381.NewG1().ScalarMult(muPsi, sig.Z),
		Y:    bls381.NewG1().ScalarMult(psiInv, sig.Y),
		Yhat: bls381.NewG2().ScalarMult(psiInv, sig.Yhat),
	}
	return newMsg, newSig, nil
}

func randomNonZeroScalar(r io.Reader) (*bls381.Scalar, error) {
	for {
		s, err := bls381.RandomScalar(r)
		if err != nil {
			return nil, err
		}
		if !s.IsZero() {
			return s, nil
		}
	}
}
