package bls381

// affinePoint is the capability surface a source-group element exposes to
// the generic [Affine] adapter. All its methods are unexported, so the set
// of admissible type arguments is closed within this package.
type affinePoint[P any] interface {
	clonePoint() P
	normalize()
	setIdentity()
	setGenerator()
	addAssign(P)
	subAssign(P)
	negAssign()
	scalarMulAssign(*Scalar)
	equalPoint(P) bool
	isIdentity() bool
	encode(compressed bool) []byte
	decode(data []byte, subgroupCheck bool) error
}

// Affine is a normalized view of a source-group element. The wrapped point
// is normalized on construction and on decode and is never handed out by
// reference, so an Affine stays normalized for its lifetime.
//
// Operations that produce a new group value return a working-form point: the
// result of an addition is generally not in normalized form, and pretending
// otherwise would force a normalization on every operation. Re-wrap results
// with [ToAffine] when a normalized value is needed.
type Affine[P affinePoint[P]] struct {
	p P
}

// Convenience aliases for the two instantiations.
type (
	G1Affine = Affine[*G1]
	G2Affine = Affine[*G2]
)

// ToAffine returns the normalized view of p. The input is copied and left
// untouched.
func ToAffine[P affinePoint[P]](p P) Affine[P] {
	c := p.clonePoint()
	c.normalize()
	return Affine[P]{p: c}
}

// AffineIdentity returns the normalized identity element.
func AffineIdentity[T any, P interface {
	affinePoint[P]
	*T
}]() Affine[P] {
	p := P(new(T))
	p.setIdentity()
	p.normalize()
	return Affine[P]{p: p}
}

// AffineGenerator returns the normalized group generator.
func AffineGenerator[T any, P interface {
	affinePoint[P]
	*T
}]() Affine[P] {
	p := P(new(T))
	p.setGenerator()
	p.normalize()
	return Affine[P]{p: p}
}

// AffineFromBytes decodes a compressed or uncompressed point encoding into a
// normalized element, validating curve and subgroup membership.
func AffineFromBytes[T any, P interface {
	affinePoint[P]
	*T
}](data []byte) (Affine[P], error) {
	return affineDecode[T, P](data, true)
}

// AffineFromBytesUnchecked is like [AffineFromBytes] but skips the subgroup
// membership check.
func AffineFromBytesUnchecked[T any, P interface {
	affinePoint[P]
	*T
}](data []byte) (Affine[P], error) {
	return affineDecode[T, P](data, false)
}

func affineDecode[T any, P interface {
	affinePoint[P]
	*T
}](data []byte, subgroupCheck bool) (Affine[P], error) {
	p := P(new(T))
	if err := p.decode(data, subgroupCheck); err != nil {
		return Affine[P]{}, err
	}
	p.normalize()
	return Affine[P]{p: p}, nil
}

// Point returns a working-form copy of the wrapped element.
func (a Affine[P]) Point() P {
	return a.p.clonePoint()
}

// Add returns a+b as a working-form point.
func (a Affine[P]) Add(b Affine[P]) P {
	r := a.p.clonePoint()
	r.addAssign(b.p)
	return r
}

// AddPoint returns a+q as a working-form point.
func (a Affine[P]) AddPoint(q P) P {
	r := a.p.clonePoint()
	r.addAssign(q)
	return r
}

// Sub returns a-b as a working-form point.
func (a Affine[P]) Sub(b Affine[P]) P {
	r := a.p.clonePoint()
	r.subAssign(b.p)
	return r
}

// SubPoint returns a-q as a working-form point.
func (a Affine[P]) SubPoint(q P) P {
	r := a.p.clonePoint()
	r.subAssign(q)
	return r
}

// Neg returns -a. Negation flips the sign of one normalized coordinate, so
// the result is itself normalized and stays an Affine.
func (a Affine[P]) Neg() Affine[P] {
	r := a.p.clonePoint()
	r.negAssign()
	return Affine[P]{p: r}
}

// ScalarMult returns s*a as a working-form point.
func (a Affine[P]) ScalarMult(s *Scalar) P {
	r := a.p.clonePoint()
	r.scalarMulAssign(s)
	return r
}

// Equal reports whether a and b represent the same group element.
func (a Affine[P]) Equal(b Affine[P]) bool {
	return a.p.equalPoint(b.p)
}

// IsIdentity reports whether a is the identity element.
func (a Affine[P]) IsIdentity() bool {
	return a.p.isIdentity()
}

// Bytes returns the compressed encoding of a.
func (a Affine[P]) Bytes() []byte {
	return a.p.encode(true)
}

// RawBytes returns the uncompressed encoding of a.
func (a Affine[P]) RawBytes() []byte {
	return a.p.encode(false)
}
