package pubkey

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha512"
	"crypto/x509"
	"encoding/hex"
	"testing"

	"filippo.io/edwards25519"
	dcrsecp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/require"
	secp256k1secec "gitlab.com/yawning/secp256k1-voi/secec"
	"golang.org/x/crypto/sha3"
)

// Signing helpers. This package never handles private keys; these exist only to produce signatures for the tests.

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

type testSigner interface {
	PublicKey(t *testing.T) *PublicKey
	Sign(t *testing.T, digest []byte) []byte
}

type signerK256 struct {
	priv []byte
}

func (s signerK256) PublicKey(t *testing.T) *PublicKey {
	sk, err := secp256k1secec.NewPrivateKey(s.priv)
	require.NoError(t, err)
	pub, err := NewPublicKey(sk.PublicKey().Point().CompressedBytes(), Secp256k1Compressed)
	require.NoError(t, err)
	return pub
}

func (s signerK256) Sign(t *testing.T, digest []byte) []byte {
	sk, err := secp256k1secec.NewPrivateKey(s.priv)
	require.NoError(t, err)
	sig, err := sk.Sign(rand.Reader, digest, k256Options)
	require.NoError(t, err)
	return sig
}

// `[R | S | V]`, re-packed from the decred compact format
func (s signerK256) SignRecoverable(t *testing.T, digest []byte) []byte {
	sk := dcrsecp256k1.PrivKeyFromBytes(s.priv)
	compact := dcrecdsa.SignCompact(sk, digest, false)
	require.Len(t, compact, 65)
	out := make([]byte, 65)
	copy(out, compact[1:])
	out[64] = compact[0] - compactSigMagicOffset
	return out
}

type signerP256 struct {
	priv []byte
}

// elaborately parse as an ecdh.PrivateKey, then get to ecdsa.PrivateKey via x509 PKCS8 encoding
func (s signerP256) ecdsaKey(t *testing.T) *ecdsa.PrivateKey {
	skECDH, err := ecdh.P256().NewPrivateKey(s.priv)
	require.NoError(t, err)
	enc, err := x509.MarshalPKCS8PrivateKey(skECDH)
	require.NoError(t, err)
	sk, err := x509.ParsePKCS8PrivateKey(enc)
	require.NoError(t, err)
	skECDSA, ok := sk.(*ecdsa.PrivateKey)
	require.True(t, ok)
	return skECDSA
}

func (s signerP256) PublicKey(t *testing.T) *PublicKey {
	skECDH, err := ecdh.P256().NewPrivateKey(s.priv)
	require.NoError(t, err)
	pub, err := NewPublicKey(skECDH.PublicKey().Bytes(), Nist256p1Extended)
	require.NoError(t, err)
	return pub
}

func (s signerP256) Sign(t *testing.T, digest []byte) []byte {
	r, ss, err := ecdsa.Sign(rand.Reader, s.ecdsaKey(t), digest)
	require.NoError(t, err)
	sig := make([]byte, 64)
	r.FillBytes(sig[:32])
	ss.FillBytes(sig[32:])
	return sig
}

// stdlib does not return a recovery ID, so find it by trial recovery
func (s signerP256) SignRecoverable(t *testing.T, digest []byte) []byte {
	pub := s.PublicKey(t)
	sig := append(s.Sign(t, digest), 0)
	for v := byte(0); v < 4; v++ {
		sig[64] = v
		rec, err := RecoverCurve(sig, digest, CurveNist256p1)
		if err == nil && rec.Equal(pub) {
			return sig
		}
	}
	t.Fatal("no P-256 recovery id matched signing key")
	return nil
}

type signerEd25519 struct {
	seed []byte
}

func (s signerEd25519) PublicKey(t *testing.T) *PublicKey {
	sk := ed25519.NewKeyFromSeed(s.seed)
	pub, err := NewPublicKey(sk.Public().(ed25519.PublicKey), Ed25519)
	require.NoError(t, err)
	return pub
}

func (s signerEd25519) Sign(t *testing.T, digest []byte) []byte {
	return ed25519.Sign(ed25519.NewKeyFromSeed(s.seed), digest)
}

// ed25519 with BLAKE2b-512 in place of SHA-512, as used by nano
type signerEd25519Blake2b struct {
	seed []byte
}

func blake2bSum(parts ...[]byte) []byte {
	h := newBlake2b512()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

func (s signerEd25519Blake2b) expand(t *testing.T) (*edwards25519.Scalar, []byte) {
	h := blake2bSum(s.seed)
	a, err := edwards25519.NewScalar().SetBytesWithClamping(h[:32])
	require.NoError(t, err)
	return a, h[32:]
}

func (s signerEd25519Blake2b) PublicKey(t *testing.T) *PublicKey {
	a, _ := s.expand(t)
	A := new(edwards25519.Point).ScalarBaseMult(a)
	pub, err := NewPublicKey(A.Bytes(), Ed25519Blake2b)
	require.NoError(t, err)
	return pub
}

func (s signerEd25519Blake2b) Sign(t *testing.T, digest []byte) []byte {
	a, prefix := s.expand(t)
	A := new(edwards25519.Point).ScalarBaseMult(a)
	return signEdwards(t, blake2bSum, a, A.Bytes(), prefix, digest)
}

func signEdwards(t *testing.T, sum func(...[]byte) []byte, a *edwards25519.Scalar, pub, prefix, msg []byte) []byte {
	r, err := edwards25519.NewScalar().SetUniformBytes(sum(prefix, msg))
	require.NoError(t, err)
	R := new(edwards25519.Point).ScalarBaseMult(r)
	k, err := edwards25519.NewScalar().SetUniformBytes(sum(R.Bytes(), pub, msg))
	require.NoError(t, err)
	S := edwards25519.NewScalar().MultiplyAdd(k, a, r)
	sig := make([]byte, 0, 64)
	sig = append(sig, R.Bytes()...)
	return append(sig, S.Bytes()...)
}

// curve25519 private keys are clamped Montgomery scalars; the ed25519 sign bit travels in the signature
type signerCurve25519 struct {
	priv []byte
}

func sha512Sum(parts ...[]byte) []byte {
	h := sha512.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

func (s signerCurve25519) point(t *testing.T) (*edwards25519.Scalar, *edwards25519.Point) {
	a, err := edwards25519.NewScalar().SetBytesWithClamping(s.priv)
	require.NoError(t, err)
	return a, new(edwards25519.Point).ScalarBaseMult(a)
}

func (s signerCurve25519) PublicKey(t *testing.T) *PublicKey {
	_, A := s.point(t)
	pub, err := NewPublicKey(A.BytesMontgomery(), Curve25519)
	require.NoError(t, err)
	return pub
}

func (s signerCurve25519) Sign(t *testing.T, digest []byte) []byte {
	a, A := s.point(t)
	edPub := A.Bytes()
	prefix := sha512Sum(s.priv)[32:]
	sig := signEdwards(t, sha512Sum, a, edPub, prefix, digest)
	sig[63] |= edPub[31] & 0x80
	return sig
}
