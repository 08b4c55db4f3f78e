package bls381

import (
	"bytes"
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

type enginePoint interface {
	*bls12381.G1Affine | *bls12381.G2Affine
}

// compressionFlag is the top bit of byte 0, which selects between the
// compressed and uncompressed forms.
const compressionFlag = 0x80

// decodeAffine parses a fixed-width point encoding into p. The compression
// flag in byte 0 fixes which form the input claims to be, and the input must
// be exactly that form's width; a valid prefix with trailing bytes is not a
// second accepted encoding. With subgroupCheck the decoded point is
// additionally verified to lie in the prime-order subgroup.
func decodeAffine[P enginePoint](p P, data []byte, compressedSize, uncompressedSize int, subgroupCheck bool) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty input", ErrInvalidEncoding)
	}
	want := uncompressedSize
	if data[0]&compressionFlag != 0 {
		want = compressedSize
	}
	if len(data) != want {
		return fmt.Errorf("%w: expected %d bytes, got %d",
			ErrInvalidEncoding, want, len(data))
	}

	var opts []func(*bls12381.Decoder)
	if !subgroupCheck {
		opts = append(opts, bls12381.NoSubgroupChecks())
	}
	dec := bls12381.NewDecoder(bytes.NewReader(data), opts...)
	if err := dec.Decode(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return nil
}
