package pubkey

import (
	"crypto"
	"fmt"

	dcrsecp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	secp256k1 "gitlab.com/yawning/secp256k1-voi"
	secp256k1secec "gitlab.com/yawning/secp256k1-voi/secec"
)

// K-256 / secp256k1 backend.
//
// Parsing, point (de)compression and verification use secp256k1-voi. Recovery and DER signatures use the decred implementation, which exposes the "compact" recoverable signature format.

var k256Options = &secp256k1secec.ECDSAOptions{
	// Used to *verify* digest, not to re-hash
	Hash: crypto.SHA256,
	// Use `[R | S]` encoding.
	Encoding: secp256k1secec.EncodingCompact,
	// Wallet signatures are not normalized to low-S, so high-S signatures are accepted.
	RejectMalleable: false,
}

const (
	// decred "compact" recovery code offset, for the uncompressed public key variant
	compactSigMagicOffset = 27
)

func parseCompressedK256(data []byte) (*secp256k1secec.PublicKey, error) {
	// secp256k1secec.NewPublicKey accepts any valid encoding, while we
	// explicitly want compressed, so use the explicit point
	// decompression routine.
	p, err := secp256k1.NewIdentityPoint().SetCompressedBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid K-256/secp256k1 public key: %w", ErrInvalidEncoding, err)
	}
	pub, err := secp256k1secec.NewPublicKeyFromPoint(p)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid K-256/secp256k1 public key: %w", ErrInvalidEncoding, err)
	}
	if err := ensurePointK256(pub); err != nil {
		return nil, err
	}
	return pub, nil
}

func parseUncompressedK256(data []byte) (*secp256k1secec.PublicKey, error) {
	if len(data) != extendedSize || data[0] != prefixUncompressed {
		return nil, fmt.Errorf("%w: K-256/secp256k1 public key is not uncompressed", ErrInvalidEncoding)
	}
	pub, err := secp256k1secec.NewPublicKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid K-256/secp256k1 public key: %w", ErrInvalidEncoding, err)
	}
	if err := ensurePointK256(pub); err != nil {
		return nil, err
	}
	return pub, nil
}

// verifies that this public key is safe to export as bytes later on
func ensurePointK256(pub *secp256k1secec.PublicKey) error {
	p := pub.Point()
	if p.IsIdentity() != 0 {
		return fmt.Errorf("%w: K-256/secp256k1 public key is the point at infinity", ErrInvalidEncoding)
	}
	return nil
}

func parseK256(k *PublicKey) (*secp256k1secec.PublicKey, error) {
	switch k.keyType {
	case Secp256k1Compressed:
		return parseCompressedK256(k.data)
	case Secp256k1Extended:
		return parseUncompressedK256(k.data)
	default:
		return nil, fmt.Errorf("%w: %s is not a K-256/secp256k1 key", ErrUnsupportedOperation, k.keyType)
	}
}

// sig is exactly 64 bytes, digest is exactly DigestSize bytes
func verifyK256(k *PublicKey, sig, digest []byte) bool {
	pub, err := parseK256(k)
	if err != nil {
		return false
	}
	return pub.Verify(digest, sig, k256Options)
}

func verifyDERK256(k *PublicKey, der, digest []byte) bool {
	pub, err := dcrsecp256k1.ParsePubKey(k.data)
	if err != nil {
		return false
	}
	sig, err := dcrecdsa.ParseDERSignature(der)
	if err != nil {
		return false
	}
	return sig.Verify(digest, pub)
}

// Re-packs `[R | S | V]` as the decred compact `[27+V | R | S]` layout, then recovers. Returns uncompressed bytes.
//
// RecoverCompact rejects R or S outside [1, N-1], an overflow bit with R+N >= P, and X coordinates which are not on the curve.
func recoverK256(sig []byte, recID byte, digest []byte) ([]byte, error) {
	compact := make([]byte, 65)
	compact[0] = compactSigMagicOffset + recID
	copy(compact[1:], sig[:64])
	pub, _, err := dcrecdsa.RecoverCompact(compact, digest)
	if err != nil {
		return nil, fmt.Errorf("%w: K-256/secp256k1 recovery failed: %w", ErrMalformedSignature, err)
	}
	return pub.SerializeUncompressed(), nil
}
