package bls381

import (
	"errors"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Encoded sizes of a G1 element in bytes.
const (
	G1CompressedSize   = bls12381.SizeOfG1AffineCompressed
	G1UncompressedSize = bls12381.SizeOfG1AffineUncompressed
)

// randomDST is the fixed domain separation tag under which RandomG1 and
// RandomG2 hash fresh entropy to the curve. It is distinct from any
// protocol-level tag so sampled points never collide with hashed messages.
var randomDST = []byte("randrandrandrandrandrandrandrand")

// G1 is an element of the first source group, kept in working (projective)
// form. The zero value is not meaningful; construct values with [NewG1],
// [G1Generator] or one of the Set methods.
type G1 struct {
	inner bls12381.G1Jac
}

// NewG1 returns a new element set to the identity.
func NewG1() *G1 {
	return new(G1).SetIdentity()
}

// G1Generator returns a new element set to the fixed group generator.
func G1Generator() *G1 {
	return new(G1).SetGenerator()
}

// RandomG1 returns a uniformly distributed element derived from the provided
// random source by hashing 64 fresh bytes to the curve.
func RandomG1(r io.Reader) (*G1, error) {
	var seed [64]byte
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return nil, err
	}
	return HashToG1(seed[:], randomDST)
}

// HashToG1 hashes msg to a group element under the domain separation tag
// dst, using the engine's standard hash-to-curve suite. Distinct tags yield
// independent hash functions; the tag must not be empty and must be at most
// 255 bytes.
func HashToG1(msg, dst []byte) (*G1, error) {
	if len(dst) == 0 {
		return nil, errors.New("bls381: empty domain separation tag")
	}
	a, err := bls12381.HashToG1(msg, dst)
	if err != nil {
		return nil, engineErr("hash to G1", err)
	}
	p := new(G1)
	p.inner.FromAffine(&a)
	return p, nil
}

// SetIdentity sets p to the identity element and returns p.
func (p *G1) SetIdentity() *G1 {
	var a bls12381.G1Affine
	p.inner.FromAffine(&a)
	return p
}

// SetGenerator sets p to the fixed group generator and returns p.
func (p *G1) SetGenerator() *G1 {
	p.inner.Set(&getInstance().g1Gen)
	return p
}

// Set sets p to q and returns p.
func (p *G1) Set(q *G1) *G1 {
	p.inner.Set(&q.inner)
	return p
}

// Add sets p to a+b and returns p.
func (p *G1) Add(a, b *G1) *G1 {
	var r bls12381.G1Jac
	r.Set(&a.inner)
	r.AddAssign(&b.inner)
	p.inner.Set(&r)
	return p
}

// Sub sets p to a-b and returns p.
func (p *G1) Sub(a, b *G1) *G1 {
	var r bls12381.G1Jac
	r.Set(&a.inner)
	r.SubAssign(&b.inner)
	p.inner.Set(&r)
	return p
}

// Neg sets p to -a and returns p.
func (p *G1) Neg(a *G1) *G1 {
	p.inner.Neg(&a.inner)
	return p
}

// Double sets p to 2*a and returns p.
func (p *G1) Double(a *G1) *G1 {
	p.inner.Double(&a.inner)
	return p
}

// ScalarMult sets p to s*q and returns p.
func (p *G1) ScalarMult(s *Scalar, q *G1) *G1 {
	var k big.Int
	s.inner.BigInt(&k)
	p.inner.ScalarMultiplication(&q.inner, &k)
	return p
}

// MultiScalarMult sets p to the sum of scalars[i]*points[i] over all i and
// returns p. For more than a handful of terms this is substantially faster
// than summing individual scalar multiplications. With no terms p is set to
// the identity. The two slices must have equal length.
func (p *G1) MultiScalarMult(points []*G1, scalars []*Scalar) (*G1, error) {
	if len(points) != len(scalars) {
		return nil, errors.New("bls381: multi scalar mult: mismatched slice lengths")
	}
	switch len(points) {
	case 0:
		return p.SetIdentity(), nil
	case 1:
		return p.ScalarMult(scalars[0], points[0]), nil
	}

	affs := make([]bls12381.G1Affine, len(points))
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
func (p *G1) Equal(q *G1) bool {
	return p.inner.Equal(&q.inner)
}

// IsIdentity reports whether p is the identity element.
func (p *G1) IsIdentity() bool {
	var a bls12381.G1Affine
	a.FromJacobian(&p.inner)
	return a.IsInfinity()
}

// Bytes returns the 48-byte compressed encoding of p.
func (p *G1) Bytes() []byte {
	var a bls12381.G1Affine
	a.FromJacobian(&p.inner)
	b := a.Bytes()
	return b[:]
}

// RawBytes returns the 96-byte uncompressed encoding of p.
func (p *G1) RawBytes() []byte {
	var a bls12381.G1Affine
	a.FromJacobian(&p.inner)
	b := a.RawBytes()
	return b[:]
}

// SetBytes sets p from a compressed or uncompressed encoding and returns p.
// The input is rejected with an error wrapping [ErrInvalidEncoding] unless it
// parses to a point on the curve inside the prime-order subgroup.
func (p *G1) SetBytes(data []byte) (*G1, error) {
	if err := p.decode(data, true); err != nil {
		return nil, err
	}
	return p, nil
}

// SetBytesUnchecked is like [G1.SetBytes] but skips the subgroup membership
// check. Use only on inputs whose membership is guaranteed by construction.
func (p *G1) SetBytesUnchecked(data []byte) (*G1, error) {
	if err := p.decode(data, false); err != nil {
		return nil, err
	}
	return p, nil
}

// Capability surface consumed by the generic Affine adapter.

func (p *G1) clonePoint() *G1 {
	return new(G1).Set(p)
}

func (p *G1) normalize() {
	var a bls12381.G1Affine
	a.FromJacobian(&p.inner)
	p.inner.FromAffine(&a)
}

func (p *G1) setIdentity()  { p.SetIdentity() }
func (p *G1) setGenerator() { p.SetGenerator() }

func (p *G1) addAssign(q *G1) { p.Add(p, q) }
func (p *G1) subAssign(q *G1) { p.Sub(p, q) }
func (p *G1) negAssign()      { p.Neg(p) }

func (p *G1) scalarMulAssign(s *Scalar) { p.ScalarMult(s, p) }

func (p *G1) equalPoint(q *G1) bool { return p.Equal(q) }
func (p *G1) isIdentity() bool      { return p.IsIdentity() }

func (p *G1) encode(compressed bool) []byte {
	if compressed {
		return p.Bytes()
	}
	return p.RawBytes()
}

func (p *G1) decode(data []byte, subgroupCheck bool) error {
	var a bls12381.G1Affine
	if err := decodeAffine(&a, data, G1CompressedSize, G1UncompressedSize, subgroupCheck); err != nil {
		return err
	}
	p.inner.FromAffine(&a)
	return nil
}
