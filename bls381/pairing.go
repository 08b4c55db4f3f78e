package bls381

import (
	"errors"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Pair computes the pairing e(p, q), fully reduced.
func Pair(p *G1, q *G2) *Gt {
	var pa bls12381.G1Affine
	var qa bls12381.G2Affine
	pa.FromJacobian(&p.inner)
	qa.FromJacobian(&q.inner)

	gt, err := bls12381.Pair([]bls12381.G1Affine{pa}, []bls12381.G2Affine{qa})
	if err != nil {
		// The engine only rejects empty or mismatched inputs, and a
		// single-term call is neither.
		panic(engineErr("pair", err))
	}
	return &Gt{inner: gt}
}

// PairAffine computes the pairing e(p, q) of two normalized elements, fully
// reduced.
func PairAffine(p G1Affine, q G2Affine) *Gt {
	return Pair(p.Point(), q.Point())
}

// PairingSum computes the sum of pairings e(ps[i], qs[i]) over all i in one
// combined computation, sharing a single final reduction across the terms.
// With no terms the result is the identity. The two slices must have equal
// length.
func PairingSum(ps []*G1, qs []*G2) (*Gt, error) {
	if len(ps) != len(qs) {
		return nil, errors.New("bls381: pairing sum: mismatched slice lengths")
	}
	if len(ps) == 0 {
		return NewGt(), nil
	}

	pa := make([]bls12381.G1Affine, len(ps))
	qa := make([]bls12381.G2Affine, len(qs))
	for i := range ps {
		pa[i].FromJacobian(&ps[i].inner)
		qa[i].FromJacobian(&qs[i].inner)
	}
	gt, err := bls12381.Pair(pa, qa)
	if err != nil {
		return nil, engineErr("pairing sum", err)
	}
	return &Gt{inner: gt}, nil
}

// PairingCheck reports whether the sum of pairings e(ps[i], qs[i]) over all
// i equals the identity, without materializing the intermediate Gt element.
// With no terms the check holds trivially. The two slices must have equal
// length.
func PairingCheck(ps []*G1, qs []*G2) (bool, error) {
	if len(ps) != len(qs) {
		return false, errors.New("bls381: pairing check: mismatched slice lengths")
	}
	if len(ps) == 0 {
		return true, nil
	}

	pa := make([]bls12381.G1Affine, len(ps))
	qa := make([]bls12381.G2Affine, len(qs))
	for i := range ps {
		pa[i].FromJacobian(&ps[i].inner)
		qa[i].FromJacobian(&qs[i].inner)
	}
	ok, err := bls12381.PairingCheck(pa, qa)
	if err != nil {
		return false, engineErr("pairing check", err)
	}
	return ok, nil
}
