package bls

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	sk, err := GenerateKey(rand.Reader)
	require.NoError(t, err)
	pk := sk.Public()

	msg := []byte("the quick brown fox")
	sig, err := sk.Sign(msg)
	require.NoError(t, err)

	require.NoError(t, pk.Verify(msg, sig))
}

func TestVerifyRejects(t *testing.T) {
	sk, err := GenerateKey(rand.Reader)
	require.NoError(t, err)
	pk := sk.Public()

	msg := []byte("the quick brown fox")
	sig, err := sk.Sign(msg)
	require.NoError(t, err)

	t.Run("wrong message", func(t *testing.T) {
		err := pk.Verify([]byte("a different message"), sig)
		require.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := GenerateKey(rand.Reader)
		require.NoError(t, err)
		err = other.Public().Verify(msg, sig)
		require.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("wrong signature", func(t *testing.T) {
		otherSig, err := sk.Sign([]byte("a different message"))
		require.NoError(t, err)
		err = pk.Verify(msg, otherSig)
		require.ErrorIs(t, err, ErrInvalidSignature)
	})
}

func TestKeyFromSeed(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, SeedSize)

	sk1, err := NewPrivateKeyFromSeed(seed)
	require.NoError(t, err)
	sk2, err := NewPrivateKeyFromSeed(seed)
	require.NoError(t, err)
	require.Equal(t, sk1.Bytes(), sk2.Bytes())
	require.True(t, sk1.Public().Equal(sk2.Public()))

	other := bytes.Repeat([]byte{0x43}, SeedSize)
	sk3, err := NewPrivateKeyFromSeed(other)
	require.NoError(t, err)
	require.NotEqual(t, sk1.Bytes(), sk3.Bytes())

	_, err = NewPrivateKeyFromSeed(seed[:SeedSize-1])
	require.Error(t, err)

	// Keys from seeds sign like random keys.
	msg := []byte("seeded")
	sig, err := sk1.Sign(msg)
	require.NoError(t, err)
	require.NoError(t, sk1.Public().Verify(msg, sig))
}

func TestEncodings(t *testing.T) {
	sk, err := GenerateKey(rand.Reader)
	require.NoError(t, err)
	pk := sk.Public()
	sig, err := sk.Sign([]byte("encode me"))
	require.NoError(t, err)

	t.Run("private key", func(t *testing.T) {
		enc := sk.Bytes()
		require.Len(t, enc, PrivateKeySize)
		dec, err := ParsePrivateKey(enc)
		require.NoError(t, err)
		require.Equal(t, enc, dec.Bytes())
		require.True(t, pk.Equal(dec.Public()))
	})

	t.Run("public key", func(t *testing.T) {
		enc := pk.Bytes()
		require.Len(t, enc, PublicKeySize)
		dec, err := ParsePublicKey(enc)
		require.NoError(t, err)
		require.True(t, pk.Equal(dec))
	})

	t.Run("signature", func(t *testing.T) {
		enc := sig.Bytes()
		require.Len(t, enc, SignatureSize)
		dec, err := ParseSignature(enc)
		require.NoError(t, err)
		require.NoError(t, pk.Verify([]byte("encode me"), dec))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParsePublicKey(make([]byte, PublicKeySize))
		require.Error(t, err)
		_, err = ParseSignature(make([]byte, 3))
		require.Error(t, err)
		_, err = ParsePrivateKey(make([]byte, PrivateKeySize+1))
		require.Error(t, err)
	})
}
