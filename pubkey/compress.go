package pubkey

import (
	"crypto/elliptic"
	"fmt"
)

// Converts an ECDSA key to the extended ("uncompressed") encoding: 0x04 prefix, then x and y coordinates.
//
// For a compressed key the y coordinate is recovered from the curve equation and the parity in the prefix byte. An already extended key returns an equal copy. EdDSA keys return [ErrUnsupportedOperation].
func (k *PublicKey) Extended() (*PublicKey, error) {
	if k == nil {
		return nil, errNilKey
	}
	switch k.keyType {
	case Secp256k1Compressed:
		pub, err := parseCompressedK256(k.data)
		if err != nil {
			return nil, err
		}
		return newPublicKeyUnchecked(pub.Point().UncompressedBytes(), Secp256k1Extended), nil
	case Nist256p1Compressed:
		pub, err := parseCompressedP256(k.data)
		if err != nil {
			return nil, err
		}
		return newPublicKeyUnchecked(elliptic.Marshal(curveP256, pub.X, pub.Y), Nist256p1Extended), nil
	case Secp256k1Extended, Nist256p1Extended:
		return NewPublicKey(k.data, k.keyType)
	default:
		return nil, fmt.Errorf("%w: can not extend %s key", ErrUnsupportedOperation, k.keyType)
	}
}

// Converts an ECDSA key to the compressed encoding: 0x02 (even y) or 0x03 (odd y) prefix, then the x coordinate.
//
// Compression is lossless for these curves. An already compressed key returns an equal copy. EdDSA keys return [ErrUnsupportedOperation].
func (k *PublicKey) Compressed() (*PublicKey, error) {
	if k == nil {
		return nil, errNilKey
	}
	switch k.keyType {
	case Secp256k1Extended:
		pub, err := parseUncompressedK256(k.data)
		if err != nil {
			return nil, err
		}
		return newPublicKeyUnchecked(pub.Point().CompressedBytes(), Secp256k1Compressed), nil
	case Nist256p1Extended:
		pub, err := parseUncompressedP256(k.data)
		if err != nil {
			return nil, err
		}
		return newPublicKeyUnchecked(elliptic.MarshalCompressed(curveP256, pub.X, pub.Y), Nist256p1Compressed), nil
	case Secp256k1Compressed, Nist256p1Compressed:
		return NewPublicKey(k.data, k.keyType)
	default:
		return nil, fmt.Errorf("%w: can not compress %s key", ErrUnsupportedOperation, k.keyType)
	}
}
