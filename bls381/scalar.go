package bls381

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ScalarSize is the length in bytes of the canonical scalar encoding.
const ScalarSize = 32

// TwoAdicity is the largest k such that 2^k divides the group order minus
// one.
const TwoAdicity = 32

// Scalar is an element of the prime field induced by the order of the
// elliptic curve groups. The canonical encoding is 32 bytes, big-endian.
//
// Scalars are typically secret key material: [Scalar.Equal] and
// [Scalar.Select] run in time independent of the scalar values.
type Scalar struct {
	inner fr.Element
}

// NewScalar returns a new scalar set to zero.
func NewScalar() *Scalar {
	return &Scalar{}
}

// RandomScalar returns a scalar sampled uniformly from the field using the
// provided random source. It draws 8 bytes beyond the field size and reduces
// modulo the order, avoiding the modulo bias of reducing exactly-sized
// output.
func RandomScalar(r io.Reader) (*Scalar, error) {
	var buf [ScalarSize + 8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := NewScalar()
	s.inner.SetBytes(buf[:])
	return s, nil
}

// Set sets s to a and returns s.
func (s *Scalar) Set(a *Scalar) *Scalar {
	s.inner.Set(&a.inner)
	return s
}

// SetZero sets s to the additive identity and returns s.
func (s *Scalar) SetZero() *Scalar {
	s.inner.SetZero()
	return s
}

// SetOne sets s to the multiplicative identity and returns s.
func (s *Scalar) SetOne() *Scalar {
	s.inner.SetOne()
	return s
}

// SetUint64 sets s to v and returns s.
func (s *Scalar) SetUint64(v uint64) *Scalar {
	s.inner.SetUint64(v)
	return s
}

// Add sets s to a+b and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.inner.Add(&a.inner, &b.inner)
	return s
}

// Sub sets s to a-b and returns s.
func (s *Scalar) Sub(a, b *Scalar) *Scalar {
	s.inner.Sub(&a.inner, &b.inner)
	return s
}

// Mul sets s to a*b and returns s.
func (s *Scalar) Mul(a, b *Scalar) *Scalar {
	s.inner.Mul(&a.inner, &b.inner)
	return s
}

// Neg sets s to -a and returns s.
func (s *Scalar) Neg(a *Scalar) *Scalar {
	s.inner.Neg(&a.inner)
	return s
}

// Double sets s to 2*a and returns s.
func (s *Scalar) Double(a *Scalar) *Scalar {
	s.inner.Double(&a.inner)
	return s
}

// Square sets s to a*a and returns s.
func (s *Scalar) Square(a *Scalar) *Scalar {
	s.inner.Square(&a.inner)
	return s
}

// Inverse sets s to a^(-1) and returns s. It returns [ErrZeroInverse] if a
// is zero, as zero has no multiplicative inverse.
func (s *Scalar) Inverse(a *Scalar) (*Scalar, error) {
	if a.IsZero() {
		return nil, ErrZeroInverse
	}
	s.inner.Inverse(&a.inner)
	return s, nil
}

// Equal reports whether s and b represent the same field element. The
// comparison runs over the canonical encodings in time independent of the
// values.
func (s *Scalar) Equal(b *Scalar) bool {
	sb := s.inner.Bytes()
	bb := b.inner.Bytes()
	return subtle.ConstantTimeCompare(sb[:], bb[:]) == 1
}

// Select sets s to x0 if c is zero and to x1 otherwise, in time independent
// of the values, and returns s.
func (s *Scalar) Select(c int, x0, x1 *Scalar) *Scalar {
	s.inner.Select(c, &x0.inner, &x1.inner)
	return s
}

// IsZero reports whether s is the additive identity.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// Bytes returns the canonical 32-byte big-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	b := s.inner.Bytes()
	return b[:]
}

// SetBytes sets s from a 32-byte big-endian encoding and returns s. Inputs
// numerically larger than the group order are accepted and reduced modulo
// the order, so decoding never fails on in-length input; callers that need
// to detect non-canonical encodings should compare Bytes of the result with
// the input.
func (s *Scalar) SetBytes(data []byte) (*Scalar, error) {
	if len(data) != ScalarSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidEncoding, ScalarSize, len(data))
	}
	s.inner.SetBytes(data)
	return s, nil
}

// SetBytesWide sets s from a 64-byte big-endian encoding reduced modulo the
// order and returns s. The doubled width makes the reduction statistically
// indistinguishable from uniform, which suits deriving scalars from hash
// output.
func (s *Scalar) SetBytesWide(data []byte) (*Scalar, error) {
	if len(data) != 2*ScalarSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidEncoding, 2*ScalarSize, len(data))
	}
	s.inner.SetBytes(data)
	return s, nil
}

// String returns the decimal representation of s.
func (s *Scalar) String() string {
	return s.inner.String()
}

// Field constants fixed by the scalar field modulus
// 0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001.
const (
	twoInvHex         = "39f6d3a994cebea4199cec0404d0ec02a9ded2017fff2dff7fffffff80000001"
	rootOfUnityHex    = "16a2a19edfe81f20d09b681922c813b4b63683508c2280b93829971f439f0d2b"
	rootOfUnityInvHex = "0538a6f66e19c653ed4f2f74a35d01686f67d4a2b566f8330fb4d6e13cf19a78"
	deltaHex          = "08634d0aa021aaf843cab354fabb0062f6502437c6a09c006c083479590189d7"
)

func scalarFromHex(h string) *Scalar {
	b, err := hex.DecodeString(h)
	if err != nil {
		panic("bls381: malformed scalar constant: " + err.Error())
	}
	s := NewScalar()
	s.inner.SetBytes(b)
	return s
}

// ScalarZero returns the additive identity of the scalar field.
func ScalarZero() *Scalar { return NewScalar() }

// ScalarOne returns the multiplicative identity of the scalar field.
func ScalarOne() *Scalar { return NewScalar().SetOne() }

// TwoInverse returns the inverse of 2.
func TwoInverse() *Scalar { return scalarFromHex(twoInvHex) }

// MultiplicativeGenerator returns the fixed generator 7 of the
// multiplicative group of the field.
func MultiplicativeGenerator() *Scalar { return NewScalar().SetUint64(7) }

// RootOfUnity returns a fixed primitive 2^[TwoAdicity]-th root of unity.
func RootOfUnity() *Scalar { return scalarFromHex(rootOfUnityHex) }

// RootOfUnityInverse returns the inverse of [RootOfUnity].
func RootOfUnityInverse() *Scalar { return scalarFromHex(rootOfUnityInvHex) }

// Delta returns the generator of the multiplicative subgroup of order
// (order-1)/2^[TwoAdicity], i.e. [MultiplicativeGenerator] raised to
// 2^[TwoAdicity].
func Delta() *Scalar { return scalarFromHex(deltaHex) }
