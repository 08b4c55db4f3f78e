package bls381

import (
	"errors"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Encoded sizes of a G2 element in bytes.
const (
	G2CompressedSize   = bls12381.SizeOfG2AffineCompressed
	G2UncompressedSize = bls12381.SizeOfG2AffineUncompressed
)

// G2 is an element of the second source group, kept in working (projective)
// form. The zero value is not meaningful; construct values with [NewG2],
// [G2Generator] or one of the Set methods.
type G2 struct {
	inner bls12381.G2Jac
}

// NewG2 returns a new element set to the identity.
func NewG2() *G2 {
	return new(G2).SetIdentity()
}

// G2Generator returns a new element set to the fixed group generator.
func G2Generator() *G2 {
	return new(G2).SetGenerator()
}

// RandomG2 returns a uniformly distributed element derived from the provided
// random source by hashing 64 fresh bytes to the curve.
func RandomG2(r io.Reader) (*G2, error) {
	var seed [64]byte
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return nil, err
	}
	return HashToG2(seed[:], randomDST)
}

// HashToG2 hashes msg to a group element under the domain separation tag
// dst, using the engine's standard hash-to-curve suite. Distinct tags yield
// independent hash functions; the tag must not be empty and must be at most
// 255 bytes.
func HashToG2(msg, dst []byte) (*G2, error) {
	if len(dst) == 0 {
		return nil, errors.New("bls381: empty domain separation tag")
	}
	a, err := bls12381.HashToG2(msg, dst)
	if err != nil {
		return nil, engineErr("hash to G2", err)
	}
	p := new(G2)
	p.inner.FromAffine(&a)
	return p, nil
}

// SetIdentity sets p to the identity element and returns p.
func (p *G2) SetIdentity() *G2 {
	var a bls12381.G2Affine
	p.inner.FromAffine(&a)
	return p
}

// SetGenerator sets p to the fixed group generator and returns p.
func (p *G2) SetGenerator() *G2 {
	p.inner.Set(&getInstance().g2Gen)
	return p
}

// Set sets p to q and returns p.
func (p *G2) Set(q *G2) *G2 {
	p.inner.Set(&q.inner)
	return p
}

// Add sets p to a+b and returns p.
func (p *G2) Add(a, b *G2) *G2 {
	var r bls12381.G2Jac
	r.Set(&a.inner)
	r.AddAssign(&b.inner)
	p.inner.Set(&r)
	return p
}

// Sub sets p to a-b and returns p.
func (p *G2) Sub(a, b *G2) *G2 {
	var r bls12381.G2Jac
	r.Set(&a.inner)
	r.SubAssign(&b.inner)
	p.inner.Set(&r)
	return p
}

// Neg sets p to -a and returns p.
func (p *G2) Neg(a *G2) *G2 {
	p.inner.Neg(&a.inner)
	return p
}

// Double sets p to 2*a and returns p.
func (p *G2) Double(a *G2) *G2 {
	p.inner.Double(&a.inner)
	return p
}

// ScalarMult sets p to s*q and returns p.
func (p *G2) ScalarMult(s *Scalar, q *G2) *G2 {
	var k big.Int
	s.inner.BigInt(&k)
	p.inner.ScalarMultiplication(&q.inner, &k)
	return p
}

// MultiScalarMult sets p to the sum of scalars[i]*points[i] over all i and
// returns p. For more than a handful of terms this is substantially faster
// than summing individual scalar multiplications. With no terms p is set to
// the identity. The two slices must have equal length.
func (p *G2) MultiScalarMult(points []*G2, scalars []*Scalar) (*G2, error) {
	if len(points) != len(scalars) {
		return nil, errors.New("bls381: multi scalar mult: mismatched slice lengths")
	}
	switch len(points) {
	case 0:
		return p.SetIdentity(), nil
	case 1:
		return p.ScalarMult(scalars[0], points[0]), nil
	}

	affs := make([]bls12381.G2Affine, len(points))
	exps := make([]fr.Element, len(scalars))
	for i := range points {
		affs[i].FromJacobian(&points[i].inner)
		exps[i].Set(&scalars[i].inner)
	}
	if _, err := p.inner.MultiExp(affs, exps, ecc.MultiExpConfig{}); err != nil {
		return nil, engineErr("multi scalar mult", err)
	}
	return p, nil
}

// Equal reports whether p and q represent the same group element, regardless
// of the underlying coordinate representation.
func (p *G2) Equal(q *G2) bool {
	return p.inner.Equal(&q.inner)
}

// IsIdentity reports whether p is the identity element.
func (p *G2) IsIdentity() bool {
	var a bls12381.G2Affine
	a.FromJacobian(&p.inner)
	return a.IsInfinity()
}

// Bytes returns the 96-byte compressed encoding of p.
func (p *G2) Bytes() []byte {
	var a bls12381.G2Affine
	a.FromJacobian(&p.inner)
	b := a.Bytes()
	return b[:]
}

// RawBytes returns the 192-byte uncompressed encoding of p.
func (p *G2) RawBytes() []byte {
	var a bls12381.G2Affine
	a.FromJacobian(&p.inner)
	b := a.RawBytes()
	return b[:]
}

// SetBytes sets p from a compressed or uncompressed encoding and returns p.
// The input is rejected with an error wrapping [ErrInvalidEncoding] unless it
// parses to a point on the curve inside the prime-order subgroup.
func (p *G2) SetBytes(data []byte) (*G2, error) {
	if err := p.decode(data, true); err != nil {
		return nil, err
	}
	return p, nil
}

// SetBytesUnchecked is like [G2.SetBytes] but skips the subgroup membership
// check. Use only on inputs whose membership is guaranteed by construction.
func (p *G2) SetBytesUnchecked(data []byte) (*G2, error) {
	if err := p.decode(data, false); err != nil {
		return nil, err
	}
	return p, nil
}

// Capability surface consumed by the generic Affine adapter.

func (p *G2) clonePoint() *G2 {
	return new(G2).Set(p)
}

func (p *G2) normalize() {
	var a bls12381.G2Affine
	a.FromJacobian(&p.inner)
	p.inner.FromAffine(&a)
}

func (p *G2) setIdentity()  { p.SetIdentity() }
func (p *G2) setGenerator() { p.SetGenerator() }

func (p *G2) addAssign(q *G2) { p.Add(p, q) }
func (p *G2) subAssign(q *G2) { p.Sub(p, q) }
func (p *G2) negAssign()      { p.Neg(p) }

func (p *G2) scalarMulAssign(s *Scalar) { p.ScalarMult(s, p) }

func (p *G2) equalPoint(q *G2) bool { return p.Equal(q) }
func (p *G2) isIdentity() bool      { return p.IsIdentity() }

func (p *G2) encode(compressed bool) []byte {
	if compressed {
		return p.Bytes()
	}
	return p.RawBytes()
}

func (p *G2) decode(data []byte, subgroupCheck bool) error {
	var a bls12381.G2Affine
	if err := decodeAffine(&a, data, G2CompressedSize, G2UncompressedSize, subgroupCheck); err != nil {
		return err
	}
	p.inner.FromAffine(&a)
	return nil
}
