package pubkey

import (
	"bytes"
	"crypto/ed25519"
	"hash"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
	"golang.org/x/crypto/blake2b"
)

// EdDSA backends: ed25519, ed25519 with BLAKE2b-512, and curve25519 (Montgomery) keys.

const edSignatureSize = 64

// sig length is checked by the stdlib; returns false for anything other than 64 bytes
func verifyEd25519(pub, msg, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), msg, sig)
}

func newBlake2b512() hash.Hash {
	// New512 only errors for over-length keys
	h, _ := blake2b.New512(nil)
	return h
}

// Same algorithm as crypto/ed25519 verification, with the hash function swapped out. This is the signature scheme used by Nano.
//
//	k = H(R || A || M)
//	[S]B == R + [k]A
func verifyEd25519Blake2b(pub, msg, sig []byte) bool {
	if len(pub) != edwardsSize || len(sig) != edSignatureSize || sig[63]&224 != 0 {
		return false
	}
	A, err := new(edwards25519.Point).SetBytes(pub)
	if err != nil {
		return false
	}

	kh := newBlake2b512()
	kh.Write(sig[:32])
	kh.Write(pub)
	kh.Write(msg)
	k, err := edwards25519.NewScalar().SetUniformBytes(kh.Sum(nil))
	if err != nil {
		return false
	}

	S, err := edwards25519.NewScalar().SetCanonicalBytes(sig[32:])
	if err != nil {
		return false
	}

	// [S]B = R + [k]A --> [k](-A) + [S]B = R
	minusA := new(edwards25519.Point).Negate(A)
	R := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(k, minusA, S)
	return bytes.Equal(sig[:32], R.Bytes())
}

// Curve25519 keys are Montgomery u-coordinates. The signer folds the sign bit of its ed25519 public key in to the top bit of the signature; verification converts u to the Edwards y-coordinate and checks a regular ed25519 signature.
func verifyCurve25519(pub, msg, sig []byte) bool {
	if len(pub) != edwardsSize || len(sig) != edSignatureSize {
		return false
	}
	edPub, err := montgomeryToEdwards(pub, sig[63]&0x80)
	if err != nil {
		return false
	}
	edSig := make([]byte, edSignatureSize)
	copy(edSig, sig)
	edSig[63] &= 0x7f
	return verifyEd25519(edPub, msg, edSig)
}

// y = (u - 1) / (u + 1)
func montgomeryToEdwards(u []byte, signBit byte) ([]byte, error) {
	fu, err := new(field.Element).SetBytes(u)
	if err != nil {
		return nil, err
	}
	one := new(field.Element).One()
	num := new(field.Element).Subtract(fu, one)
	den := new(field.Element).Add(fu, one)
	y := new(field.Element).Multiply(num, new(field.Element).Invert(den))

	out := y.Bytes()
	out[31] &= 0x7f
	out[31] |= signBit & 0x80
	return out, nil
}
