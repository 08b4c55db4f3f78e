// Package spseq implements structure-preserving signatures on equivalence
// classes (SPS-EQ) over BLS12-381.
//
// Messages are vectors of G1 elements, and a signature signs the whole
// projective equivalence class of its message: [ChangeRepresentation] maps a
// valid message/signature pair to a fresh valid pair on a scaled
// representative of the same class, unlinkable to the original. This makes
// the scheme a building block for anonymous credentials, where showing a
// credential reveals a randomized representative instead of the issued one.
//
// Verification evaluates two pairing product equations, each as one batched
// sum of pairings.
package spseq
