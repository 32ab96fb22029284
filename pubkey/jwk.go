package pubkey

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Representation of a JSON Web Key (JWK), as relevant to the keys supported by this package.
//
// Expected to be marshalled/unmarshalled as JSON.
type JWK struct {
	KeyType string  `json:"kty"`
	Curve   string  `json:"crv"`
	X       string  `json:"x"`           // base64url, no padding
	Y       string  `json:"y,omitempty"` // base64url, no padding; EC keys only
	Use     string  `json:"use,omitempty"`
	KeyID   *string `json:"kid,omitempty"`
}

// Loads a [PublicKey] from JWK (serialized as JSON bytes)
func ParsePublicJWKBytes(jwkBytes []byte) (*PublicKey, error) {
	var jwk JWK
	if err := json.Unmarshal(jwkBytes, &jwk); err != nil {
		return nil, fmt.Errorf("parsing JWK JSON: %w", err)
	}
	return ParsePublicJWK(jwk)
}

// Loads a [PublicKey] from JWK struct.
//
// "EC" keys ("secp256k1" and "P-256") parse to the extended type of their curve. "OKP" keys support "Ed25519" and "X25519". An "X25519" key (registered by RFC 8037 for ECDH) loads as [Curve25519], the same u-coordinate used here for signature verification; see [PublicKey.JWK].
func ParsePublicJWK(jwk JWK) (*PublicKey, error) {

	// base64url with no encoding
	xbuf, err := base64.RawURLEncoding.DecodeString(jwk.X)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWK base64 encoding: %w", ErrInvalidEncoding, err)
	}

	switch jwk.KeyType {
	case "EC":
		var kt KeyType
		switch jwk.Curve {
		case "secp256k1":
			kt = Secp256k1Extended
		case "P-256":
			kt = Nist256p1Extended
		default:
			return nil, fmt.Errorf("%w: unsupported JWK cryptography: %s", ErrUnknownKeyType, jwk.Curve)
		}
		ybuf, err := base64.RawURLEncoding.DecodeString(jwk.Y)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid JWK base64 encoding: %w", ErrInvalidEncoding, err)
		}
		if len(xbuf) != 32 || len(ybuf) != 32 {
			return nil, fmt.Errorf("%w: invalid %s JWK coordinates", ErrInvalidLength, jwk.Curve)
		}
		raw := make([]byte, 0, extendedSize)
		raw = append(raw, prefixUncompressed)
		raw = append(raw, xbuf...)
		raw = append(raw, ybuf...)
		return NewPublicKey(raw, kt)
	case "OKP":
		switch jwk.Curve {
		case "Ed25519":
			return NewPublicKey(xbuf, Ed25519)
		case "X25519":
			return NewPublicKey(xbuf, Curve25519)
		default:
			return nil, fmt.Errorf("%w: unsupported JWK cryptography: %s", ErrUnknownKeyType, jwk.Curve)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported JWK key type: %s", ErrUnknownKeyType, jwk.KeyType)
	}
}

// Exports the public key as a JWK. ed25519-blake2b keys have no JWK representation, and return [ErrUnsupportedOperation].
//
// [Curve25519] keys export as OKP "X25519", the only JOSE curve name for a Montgomery u-coordinate. RFC 8037 registers "X25519" for ECDH only; the exported JWK carries the same public value, but no JOSE signature algorithm will accept it for the XEdDSA-style signatures checked by [PublicKey.Verify].
func (k *PublicKey) JWK() (*JWK, error) {
	if k == nil {
		return nil, errNilKey
	}
	switch k.keyType {
	case Secp256k1Compressed, Secp256k1Extended, Nist256p1Compressed, Nist256p1Extended:
		ext, err := k.Extended()
		if err != nil {
			return nil, err
		}
		raw := ext.data
		if len(raw) != extendedSize {
			return nil, fmt.Errorf("unexpected %s bytes size", k.keyType)
		}
		crv := "secp256k1"
		if k.keyType.Curve() == CurveNist256p1 {
			crv = "P-256"
		}
		return &JWK{
			KeyType: "EC",
			Curve:   crv,
			X:       base64.RawURLEncoding.EncodeToString(raw[1:33]),
			Y:       base64.RawURLEncoding.EncodeToString(raw[33:65]),
		}, nil
	case Ed25519:
		return &JWK{
			KeyType: "OKP",
			Curve:   "Ed25519",
			X:       base64.RawURLEncoding.EncodeToString(k.data),
		}, nil
	case Curve25519:
		return &JWK{
			KeyType: "OKP",
			Curve:   "X25519",
			X:       base64.RawURLEncoding.EncodeToString(k.data),
		}, nil
	default:
		return nil, fmt.Errorf("%w: no JWK representation for %s keys", ErrUnsupportedOperation, k.keyType)
	}
}
