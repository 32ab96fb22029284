package pubkey

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"fmt"
	"math/big"
)

// NIST P-256 / secp256r1 / nist256p1 backend, using the stdlib.

var curveP256 = elliptic.P256()
var curveN_P256 *big.Int = curveP256.Params().N
var curveP_P256 *big.Int = curveP256.Params().P

func parseCompressedP256(data []byte) (*ecdsa.PublicKey, error) {
	x, y := elliptic.UnmarshalCompressed(curveP256, data)
	if x == nil {
		return nil, fmt.Errorf("%w: invalid P-256 public key (x==nil)", ErrInvalidEncoding)
	}
	return checkCurveP256(x, y)
}

func parseUncompressedP256(data []byte) (*ecdsa.PublicKey, error) {
	x, y := elliptic.Unmarshal(curveP256, data)
	if x == nil {
		return nil, fmt.Errorf("%w: invalid P-256 public key (x==nil)", ErrInvalidEncoding)
	}
	return checkCurveP256(x, y)
}

func checkCurveP256(x, y *big.Int) (*ecdsa.PublicKey, error) {
	if !curveP256.Params().IsOnCurve(x, y) {
		return nil, fmt.Errorf("%w: invalid P-256 public key (not on curve)", ErrInvalidEncoding)
	}
	return &ecdsa.PublicKey{
		Curve: curveP256,
		X:     x,
		Y:     y,
	}, nil
}

func parseP256(k *PublicKey) (*ecdsa.PublicKey, error) {
	switch k.keyType {
	case Nist256p1Compressed:
		return parseCompressedP256(k.data)
	case Nist256p1Extended:
		return parseUncompressedP256(k.data)
	default:
		return nil, fmt.Errorf("%w: %s is not a P-256 key", ErrUnsupportedOperation, k.keyType)
	}
}

// sig is exactly 64 bytes, digest is exactly DigestSize bytes. ecdsa.Verify rejects r or s outside [1, N-1].
func verifyP256(k *PublicKey, sig, digest []byte) bool {
	pub, err := parseP256(k)
	if err != nil {
		return false
	}
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	return ecdsa.Verify(pub, digest, r, s)
}

func verifyDERP256(k *PublicKey, der, digest []byte) bool {
	pub, err := parseP256(k)
	if err != nil {
		return false
	}
	return ecdsa.VerifyASN1(pub, digest, der)
}

// Recovers the signing key from `[R | S]`, recovery ID and digest. Returns uncompressed bytes.
//
// Q = r^-1 * (s*R - e*G), where R is the point with x coordinate r (or r+N, if bit 1 of the recovery ID is set) and y parity from bit 0 of the recovery ID.
func recoverP256(sig []byte, recID byte, digest []byte) ([]byte, error) {
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if r.Sign() == 0 || r.Cmp(curveN_P256) >= 0 {
		return nil, fmt.Errorf("%w: P-256 signature R out of range", ErrMalformedSignature)
	}
	if s.Sign() == 0 || s.Cmp(curveN_P256) >= 0 {
		return nil, fmt.Errorf("%w: P-256 signature S out of range", ErrMalformedSignature)
	}

	x := new(big.Int).Set(r)
	if recID&2 != 0 {
		x.Add(x, curveN_P256)
		if x.Cmp(curveP_P256) >= 0 {
			return nil, fmt.Errorf("%w: P-256 signature R + N >= P", ErrMalformedSignature)
		}
	}
	enc := make([]byte, compressedSize)
	enc[0] = prefixEven | (recID & 1)
	x.FillBytes(enc[1:])
	rx, ry := elliptic.UnmarshalCompressed(curveP256, enc)
	if rx == nil {
		return nil, fmt.Errorf("%w: P-256 signature R is not on the curve", ErrMalformedSignature)
	}

	// digest is exactly the curve size, so no truncation is needed
	e := new(big.Int).SetBytes(digest)
	e.Mod(e, curveN_P256)

	rInv := new(big.Int).ModInverse(r, curveN_P256)
	u1 := new(big.Int).Mul(e, rInv)
	u1.Neg(u1)
	u1.Mod(u1, curveN_P256)
	u2 := new(big.Int).Mul(s, rInv)
	u2.Mod(u2, curveN_P256)

	x1, y1 := curveP256.ScalarBaseMult(u1.FillBytes(make([]byte, 32)))
	x2, y2 := curveP256.ScalarMult(rx, ry, u2.FillBytes(make([]byte, 32)))
	qx, qy := curveP256.Add(x1, y1, x2, y2)
	if qx.Sign() == 0 && qy.Sign() == 0 {
		return nil, fmt.Errorf("%w: P-256 recovered point at infinity", ErrMalformedSignature)
	}
	if !curveP256.IsOnCurve(qx, qy) {
		return nil, fmt.Errorf("%w: P-256 recovered point not on curve", ErrMalformedSignature)
	}
	return elliptic.Marshal(curveP256, qx, qy), nil
}
