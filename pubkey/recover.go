package pubkey

import (
	"fmt"
)

const (
	// `[R | S | V]`
	RecoverableSignatureSize = 65

	// Ethereum-style "legacy" recovery IDs are offset by 27
	legacyRecoveryOffset = 27
)

// Reconstructs the K-256 / secp256k1 public key which produced a recoverable signature over the digest.
//
// Equivalent to [RecoverCurve] with [CurveSecp256k1].
func Recover(sig, digest []byte) (*PublicKey, error) {
	return RecoverCurve(sig, digest, CurveSecp256k1)
}

// Reconstructs the public key which produced a recoverable ECDSA signature over the digest, on the indicated curve.
//
// The signature must be 65 bytes: `[R | S | V]`, where the recovery ID V is 0-3 (27-30 is also accepted). Bit 0 of V selects the parity of the y coordinate of the signature's random point, and bit 1 indicates that its x coordinate is R+N. The digest must be 32 bytes.
//
// The result always has the extended encoding of the curve (eg, [Secp256k1Extended]), and verifies the same signature and digest. Returns [ErrMalformedSignature] when no key can be recovered, and [ErrUnsupportedOperation] for EdDSA curves.
func RecoverCurve(sig, digest []byte, curve Curve) (*PublicKey, error) {
	kt, ok := curve.ExtendedType()
	if !ok {
		return nil, fmt.Errorf("%w: recovery is not defined for %s", ErrUnsupportedOperation, curve)
	}
	if len(sig) != RecoverableSignatureSize {
		return nil, fmt.Errorf("%w: recoverable signatures must be %d bytes, got len=%d", ErrMalformedSignature, RecoverableSignatureSize, len(sig))
	}
	if len(digest) != DigestSize {
		return nil, fmt.Errorf("%w: digest must be %d bytes, got len=%d", ErrMalformedSignature, DigestSize, len(digest))
	}
	recID, err := parseRecoveryID(sig[64])
	if err != nil {
		return nil, err
	}

	var raw []byte
	switch curve {
	case CurveSecp256k1:
		raw, err = recoverK256(sig, recID, digest)
	case CurveNist256p1:
		raw, err = recoverP256(sig, recID, digest)
	}
	if err != nil {
		return nil, err
	}
	// re-validate backend output; never hand out an unchecked point
	return NewPublicKey(raw, kt)
}

func parseRecoveryID(v byte) (byte, error) {
	if v >= legacyRecoveryOffset {
		v -= legacyRecoveryOffset
	}
	if v > 3 {
		return 0, fmt.Errorf("%w: invalid recovery id %d", ErrMalformedSignature, v)
	}
	return v, nil
}
