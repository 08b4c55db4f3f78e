// Package bls implements BLS signatures over BLS12-381, with signatures in
// G1 and public keys in G2 (the minimal-signature-size variant).
//
// A signature on a message m under secret key sk is sk*H(m), where H hashes
// messages to G1 under a fixed ciphersuite domain separation tag.
// Verification checks the pairing equation
//
//	e(H(m), pk) = e(sig, g2)
//
// as a single batched sum of pairings, so a verify costs one combined
// pairing computation rather than two.
//
// Keys can be generated from a random source or derived deterministically
// from a 32-byte seed.
package bls
