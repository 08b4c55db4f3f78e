package bls381

import (
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// GtSize is the length in bytes of the Gt encoding.
const GtSize = bls12381.SizeOfGT

// Gt is an element of the target group of the pairing. The group operation
// is multiplication in an extension field, but the API keeps the same
// additive vocabulary as the source groups: Add multiplies, Neg inverts and
// ScalarMult exponentiates.
type Gt struct {
	inner bls12381.GT
}

// NewGt returns a new element set to the identity.
func NewGt() *Gt {
	return new(Gt).SetIdentity()
}

// GtGenerator returns a new element set to the fixed group generator, the
// pairing of the G1 and G2 generators.
func GtGenerator() *Gt {
	return new(Gt).SetGenerator()
}

// RandomGt returns a uniformly distributed element derived from the provided
// random source, as the pairing of independently sampled source elements.
func RandomGt(r io.Reader) (*Gt, error) {
	p, err := RandomG1(r)
	if err != nil {
		return nil, err
	}
	q, err := RandomG2(r)
	if err != nil {
		return nil, err
	}
	return Pair(p, q), nil
}

// SetIdentity sets g to the identity element and returns g.
func (g *Gt) SetIdentity() *Gt {
	g.inner.SetOne()
	return g
}

// SetGenerator sets g to the fixed group generator and returns g.
func (g *Gt) SetGenerator() *Gt {
	g.inner.Set(&getInstance().gtGen)
	return g
}

// Set sets g to a and returns g.
func (g *Gt) Set(a *Gt) *Gt {
	g.inner.Set(&a.inner)
	return g
}

// Add sets g to a+b and returns g.
func (g *Gt) Add(a, b *Gt) *Gt {
	g.inner.Mul(&a.inner, &b.inner)
	return g
}

// Sub sets g to a-b and returns g.
func (g *Gt) Sub(a, b *Gt) *Gt {
	var inv bls12381.GT
	inv.Inverse(&b.inner)
	g.inner.Mul(&a.inner, &inv)
	return g
}

// Neg sets g to -a and returns g.
func (g *Gt) Neg(a *Gt) *Gt {
	g.inner.Inverse(&a.inner)
	return g
}

// Double sets g to 2*a and returns g.
func (g *Gt) Double(a *Gt) *Gt {
	g.inner.Square(&a.inner)
	return g
}

// ScalarMult sets g to s*a and returns g.
func (g *Gt) ScalarMult(s *Scalar, a *Gt) *Gt {
	var k big.Int
	s.inner.BigInt(&k)
	g.inner.Exp(a.inner, &k)
	return g
}

// Finalize returns g in its fully reduced form. Pairing results from this
// package are already reduced, so this is a no-op kept for callers that want
// to state the reduction point explicitly.
func (g *Gt) Finalize() *Gt {
	return g
}

// Equal reports whether g and b represent the same group element.
func (g *Gt) Equal(b *Gt) bool {
	return g.inner.Equal(&b.inner)
}

// IsIdentity reports whether g is the identity element.
func (g *Gt) IsIdentity() bool {
	return g.inner.IsOne()
}

// Bytes returns the 576-byte encoding of g.
func (g *Gt) Bytes() []byte {
	b := g.inner.Bytes()
	return b[:]
}

// SetBytes sets g from its 576-byte encoding and returns g. The input is
// rejected with an error wrapping [ErrInvalidEncoding] unless it parses to a
// field element inside the prime-order target subgroup.
func (g *Gt) SetBytes(data []byte) (*Gt, error) {
	if _, err := g.SetBytesUnchecked(data); err != nil {
		return nil, err
	}
	if !g.inner.IsInSubGroup() {
		return nil, fmt.Errorf("%w: element outside the target subgroup", ErrInvalidEncoding)
	}
	return g, nil
}

// SetBytesUnchecked is like [Gt.SetBytes] but skips the subgroup membership
// check. Use only on inputs whose membership is guaranteed by construction,
// such as pairing outputs.
func (g *Gt) SetBytesUnchecked(data []byte) (*Gt, error) {
	if len(data) != GtSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidEncoding, GtSize, len(data))
	}
	if err := g.inner.SetBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return g, nil
}
