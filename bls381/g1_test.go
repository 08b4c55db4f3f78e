package bls381

import (
	"crypto/rand"
	"errors"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

func TestG1Basics(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		if !NewG1().IsIdentity() {
			t.Fatal("new element is not the identity")
		}
		if G1Generator().IsIdentity() {
			t.Fatal("generator is the identity")
		}
	})

	t.Run("add identity", func(t *testing.T) {
		g := G1Generator()
		if !NewG1().Add(g, NewG1()).Equal(g) {
			t.Fatal("g + 0 != g")
		}
	})

	t.Run("sub self", func(t *testing.T) {
		g := G1Generator()
		if !NewG1().Sub(g, g).IsIdentity() {
			t.Fatal("g - g != 0")
		}
	})

	t.Run("neg", func(t *testing.T) {
		g := G1Generator()
		if !NewG1().Add(g, NewG1().Neg(g)).IsIdentity() {
			t.Fatal("g + (-g) != 0")
		}
	})

	t.Run("double", func(t *testing.T) {
		g := G1Generator()
		if !NewG1().Double(g).Equal(NewG1().Add(g, g)) {
			t.Fatal("2g != g+g")
		}
	})

	t.Run("aliasing", func(t *testing.T) {
		g := G1Generator()
		want := NewG1().Add(g, g)
		got := G1Generator()
		got.Add(got, got)
		if !got.Equal(want) {
			t.Fatal("aliased add differs")
		}
	})
}

func TestG1ScalarMult(t *testing.T) {
	g := G1Generator()

	t.Run("by one", func(t *testing.T) {
		if !NewG1().ScalarMult(ScalarOne(), g).Equal(g) {
			t.Fatal("1*g != g")
		}
	})

	t.Run("by zero", func(t *testing.T) {
		if !NewG1().ScalarMult(ScalarZero(), g).IsIdentity() {
			t.Fatal("0*g != 0")
		}
	})

	t.Run("small multiple", func(t *testing.T) {
		sum := NewG1()
		for i := 0; i < 5; i++ {
			sum.Add(sum, g)
		}
		if !NewG1().ScalarMult(NewScalar().SetUint64(5), g).Equal(sum) {
			t.Fatal("5*g != g+g+g+g+g")
		}
	})

	t.Run("distributive", func(t *testing.T) {
		a, _ := RandomScalar(rand.Reader)
		b, _ := RandomScalar(rand.Reader)
		lhs := NewG1().ScalarMult(NewScalar().Add(a, b), g)
		rhs := NewG1().Add(NewG1().ScalarMult(a, g), NewG1().ScalarMult(b, g))
		if !lhs.Equal(rhs) {
			t.Fatal("(a+b)g != ag + bg")
		}
	})
}

func TestG1MultiScalarMult(t *testing.T) {
	t.Run("matches naive sum", func(t *testing.T) {
		const n = 8
		points := make([]*G1, n)
		scalars := make([]*Scalar, n)
		naive := NewG1()
		for i := range points {
			p, err := RandomG1(rand.Reader)
			if err != nil {
				t.Fatal(err)
			}
			s, err := RandomScalar(rand.Reader)
			if err != nil {
				t.Fatal(err)
			}
			points[i], scalars[i] = p, s
			naive.Add(naive, NewG1().ScalarMult(s, p))
		}
		got, err := NewG1().MultiScalarMult(points, scalars)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(naive) {
			t.Fatal("multi scalar mult differs from naive sum")
		}
	})

	t.Run("empty", func(t *testing.T) {
		got, err := NewG1().MultiScalarMult(nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if !got.IsIdentity() {
			t.Fatal("empty sum is not the identity")
		}
	})

	t.Run("single term", func(t *testing.T) {
		s, _ := RandomScalar(rand.Reader)
		g := G1Generator()
		got, err := NewG1().MultiScalarMult([]*G1{g}, []*Scalar{s})
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(NewG1().ScalarMult(s, g)) {
			t.Fatal("single-term sum differs from scalar mult")
		}
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		if _, err := NewG1().MultiScalarMult([]*G1{G1Generator()}, nil); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestHashToG1(t *testing.T) {
	dst := []byte("pbc-test-v1")

	p, err := HashToG1([]byte("message"), dst)
	if err != nil {
		t.Fatal(err)
	}
	if p.IsIdentity() {
		t.Fatal("hash output is the identity")
	}

	q, err := HashToG1([]byte("message"), dst)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Equal(q) {
		t.Fatal("hashing is not deterministic")
	}

	q, err = HashToG1([]byte("other message"), dst)
	if err != nil {
		t.Fatal(err)
	}
	if p.Equal(q) {
		t.Fatal("distinct messages hash to the same point")
	}

	q, err = HashToG1([]byte("message"), []byte("pbc-test-v2"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Equal(q) {
		t.Fatal("distinct tags hash to the same point")
	}

	if _, err := HashToG1([]byte("message"), nil); err == nil {
		t.Fatal("empty tag accepted")
	}
	if _, err := HashToG1([]byte("message"), make([]byte, 256)); err == nil {
		t.Fatal("oversized tag accepted")
	}
}

func TestG1Bytes(t *testing.T) {
	p, err := RandomG1(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("compressed round trip", func(t *testing.T) {
		enc := p.Bytes()
		if len(enc) != G1CompressedSize {
			t.Fatalf("encoding is %d bytes", len(enc))
		}
		q, err := NewG1().SetBytes(enc)
		if err != nil {
			t.Fatal(err)
		}
		if !p.Equal(q) {
			t.Fatal("round trip differs")
		}
	})

	t.Run("uncompressed round trip", func(t *testing.T) {
		enc := p.RawBytes()
		if len(enc) != G1UncompressedSize {
			t.Fatalf("encoding is %d bytes", len(enc))
		}
		q, err := NewG1().SetBytes(enc)
		if err != nil {
			t.Fatal(err)
		}
		if !p.Equal(q) {
			t.Fatal("round trip differs")
		}
	})

	t.Run("unchecked round trip", func(t *testing.T) {
		q, err := NewG1().SetBytesUnchecked(p.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		if !p.Equal(q) {
			t.Fatal("round trip differs")
		}
	})

	t.Run("identity round trip", func(t *testing.T) {
		q, err := NewG1().SetBytes(NewG1().Bytes())
		if err != nil {
			t.Fatal(err)
		}
		if !q.IsIdentity() {
			t.Fatal("decoded identity is not the identity")
		}
	})

	t.Run("wrong length", func(t *testing.T) {
		if _, err := NewG1().SetBytes(make([]byte, G1CompressedSize-1)); !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("expected ErrInvalidEncoding, got %v", err)
		}
	})

	t.Run("length must match the flagged form", func(t *testing.T) {
		// A compressed point padded to the uncompressed width would give
		// every point a second accepted encoding.
		padded := append(G1Generator().Bytes(), make([]byte, G1UncompressedSize-G1CompressedSize)...)
		for i := G1CompressedSize; i < len(padded); i++ {
			padded[i] = 0xab
		}
		if _, err := NewG1().SetBytes(padded); !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("expected ErrInvalidEncoding, got %v", err)
		}
		if _, err := NewG1().SetBytesUnchecked(padded); !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("expected ErrInvalidEncoding, got %v", err)
		}

		// The converse: an uncompressed prefix truncated to the compressed
		// width claims the wrong form too.
		truncated := G1Generator().RawBytes()[:G1CompressedSize]
		if _, err := NewG1().SetBytes(truncated); !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("expected ErrInvalidEncoding, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		garbage := make([]byte, G1CompressedSize)
		for i := range garbage {
			garbage[i] = 0xff
		}
		if _, err := NewG1().SetBytes(garbage); !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("expected ErrInvalidEncoding, got %v", err)
		}
	})
}

// nonSubgroupG1 finds a point on the curve but outside the prime-order
// subgroup, by walking small x coordinates of y^2 = x^3 + 4.
func nonSubgroupG1(t *testing.T) []byte {
	t.Helper()
	var four fp.Element
	four.SetUint64(4)
	for x := uint64(1); x < 100; x++ {
		var xe, rhs, y fp.Element
		xe.SetUint64(x)
		rhs.Square(&xe)
		rhs.Mul(&rhs, &xe)
		rhs.Add(&rhs, &four)
		if y.Sqrt(&rhs) == nil {
			continue
		}
		var a bls12381.G1Affine
		a.X = xe
		a.Y = y
		if a.IsOnCurve() && !a.IsInSubGroup() {
			raw := a.RawBytes()
			return raw[:]
		}
	}
	t.Fatal("no small non-subgroup point found")
	return nil
}

func TestG1SubgroupCheck(t *testing.T) {
	enc := nonSubgroupG1(t)

	if _, err := NewG1().SetBytes(enc); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("checked decode accepted a non-subgroup point: %v", err)
	}
	if _, err := NewG1().SetBytesUnchecked(enc); err != nil {
		t.Fatalf("unchecked decode rejected an on-curve point: %v", err)
	}
}

func TestRandomG1(t *testing.T) {
	p, err := RandomG1(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	q, err := RandomG1(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	if p.Equal(q) {
		t.Fatal("two random points are equal")
	}
	if p.IsIdentity() {
		t.Fatal("random point is the identity")
	}
}
