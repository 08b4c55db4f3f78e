// Package bls381 provides a type-safe algebraic layer over the BLS12-381
// pairing-friendly curve, backed by gnark-crypto as the underlying
// arithmetic engine.
//
// The package exposes the four algebraic structures needed by pairing-based
// protocols:
//
//   - [Scalar]: Elements of the prime-order scalar field shared by all groups
//   - [G1], [G2]: The two source groups of the pairing, kept in working
//     (projective) form
//   - [Gt]: The target group of the pairing, written additively
//   - [Affine]: A normalized view of a source-group element
//
// Pairings are evaluated with [Pair] for a single term and [PairingSum] for
// a batched sum of several terms in one combined computation.
//
// # Design Philosophy
//
// All arithmetic methods use a mutable receiver pattern: they set the
// receiver to the result and return it, allowing method chaining while
// minimizing allocations:
//
//	// Compute s*g1 + t*h
//	p := bls381.NewG1().ScalarMult(s, bls381.G1Generator())
//	p.Add(p, bls381.NewG1().ScalarMult(t, h))
//
// Group notation is uniformly additive. For Gt, whose natural operation is
// multiplication in an extension field, Add multiplies the underlying field
// elements and ScalarMult exponentiates; the algebraic laws read the same
// for every group.
//
// Decoding and scalar inversion are the only fallible operations; everything
// else is total on well-formed inputs. No operation substitutes a default
// value on failure.
//
// # Representations
//
// Group elements carry an engine-owned working (projective) representation.
// Equality is delegated to the engine's group arithmetic: two distinct
// coordinate tuples that represent the same point compare equal. The only
// way to obtain a value guaranteed to be in normalized form is to hold an
// [Affine], which normalizes on construction and on decode.
//
// # Wire Formats
//
// Elements encode to fixed-width byte strings following the engine's
// serialization (flag bits packed into the top bits of the first byte):
//
//	G1: 48 bytes compressed, 96 bytes uncompressed
//	G2: 96 bytes compressed, 192 bytes uncompressed
//	Gt: 576 bytes (the engine defines a single canonical form)
//
// SetBytes validates that the input parses to a point on the curve and lies
// in the prime-order subgroup. SetBytesUnchecked skips the subgroup check;
// it is intended for inputs whose subgroup membership is already guaranteed
// by protocol construction, and callers choosing it accept the risk of
// small-subgroup attacks.
//
// # Security Considerations
//
// Scalar equality and conditional selection run in time independent of the
// scalar values, as scalars are typically secret key material. Random
// scalars and points must be derived from cryptographically secure sources;
// the sampling helpers take an io.Reader for that purpose.
package bls381
