package bls381

import (
	"math/big"
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// instance holds the engine parameters shared by every operation in this
// package: the fixed generators of the three groups and the common group
// order. It is initialized exactly once, lazily, on first use; all
// arithmetic entry points reach the engine through it rather than through
// ambient global state.
//
// The engine keeps no process-wide state that requires teardown, so the
// instance simply lives for the lifetime of the process.
type instance struct {
	g1Gen    bls12381.G1Jac
	g2Gen    bls12381.G2Jac
	g1GenAff bls12381.G1Affine
	g2GenAff bls12381.G2Affine
	gtGen    bls12381.GT
	order    *big.Int
}

var (
	curveOnce sync.Once
	curve     instance
)

func getInstance() *instance {
	curveOnce.Do(func() {
		curve.g1Gen, curve.g2Gen, curve.g1GenAff, curve.g2GenAff = bls12381.Generators()

		// The Gt generator is defined as the pairing of the two source
		// generators.
		gt, err := bls12381.Pair(
			[]bls12381.G1Affine{curve.g1GenAff},
			[]bls12381.G2Affine{curve.g2GenAff},
		)
		if err != nil {
			panic(engineErr("generator pairing", err))
		}
		curve.gtGen = gt
		curve.order = fr.Modulus()
	})
	return &curve
}

// Order returns the order of G1, G2 and Gt, which is also the modulus of the
// scalar field. The returned value is a copy and may be modified freely.
func Order() *big.Int {
	return new(big.Int).Set(getInstance().order)
}
