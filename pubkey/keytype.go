package pubkey

import (
	"fmt"
	"strings"
)

// Enumeration of supported public key variants. The zero value is not a valid type.
//
// Each variant statically determines its encoded size, whether it is a compressed ECDSA encoding, and the [Curve] (and thus [Algorithm]) it belongs to.
type KeyType uint8

const (
	// 33 bytes: 0x02/0x03 prefix, then x coordinate
	Secp256k1Compressed KeyType = iota + 1
	// 65 bytes: 0x04 prefix, then x and y coordinates
	Secp256k1Extended
	// 33 bytes: 0x02/0x03 prefix, then x coordinate
	Nist256p1Compressed
	// 65 bytes: 0x04 prefix, then x and y coordinates
	Nist256p1Extended
	// 32 bytes: packed Edwards point
	Ed25519
	// 32 bytes: packed Edwards point, keys and signatures use BLAKE2b-512 internally
	Ed25519Blake2b
	// 32 bytes: Montgomery u-coordinate
	Curve25519
)

const (
	compressedSize = 33
	extendedSize   = 65
	edwardsSize    = 32

	// Size of digests consumed by ECDSA operations
	DigestSize = 32
)

// Cryptographic backend of a [KeyType].
type Curve uint8

const (
	CurveSecp256k1 Curve = iota + 1
	CurveNist256p1
	CurveEd25519
	CurveEd25519Blake2b
	CurveCurve25519
)

// Signature algorithm family of a [Curve].
type Algorithm uint8

const (
	ECDSA Algorithm = iota + 1
	EdDSA
)

// Returns every supported [KeyType], in declaration order.
func KeyTypes() []KeyType {
	return []KeyType{
		Secp256k1Compressed,
		Secp256k1Extended,
		Nist256p1Compressed,
		Nist256p1Extended,
		Ed25519,
		Ed25519Blake2b,
		Curve25519,
	}
}

// Expected length of the encoded key, in bytes. Returns 0 for unknown types.
func (kt KeyType) Size() int {
	switch kt {
	case Secp256k1Compressed, Nist256p1Compressed:
		return compressedSize
	case Secp256k1Extended, Nist256p1Extended:
		return extendedSize
	case Ed25519, Ed25519Blake2b, Curve25519:
		return edwardsSize
	default:
		return 0
	}
}

// Whether this is the compressed encoding of an ECDSA curve point. Always false for EdDSA types.
func (kt KeyType) IsCompressed() bool {
	switch kt {
	case Secp256k1Compressed, Nist256p1Compressed:
		return true
	default:
		return false
	}
}

// Returns 0 for unknown types.
func (kt KeyType) Curve() Curve {
	switch kt {
	case Secp256k1Compressed, Secp256k1Extended:
		return CurveSecp256k1
	case Nist256p1Compressed, Nist256p1Extended:
		return CurveNist256p1
	case Ed25519:
		return CurveEd25519
	case Ed25519Blake2b:
		return CurveEd25519Blake2b
	case Curve25519:
		return CurveCurve25519
	default:
		return 0
	}
}

func (kt KeyType) Algorithm() Algorithm {
	return kt.Curve().Algorithm()
}

func (kt KeyType) String() string {
	switch kt {
	case Secp256k1Compressed:
		return "secp256k1"
	case Secp256k1Extended:
		return "secp256k1-extended"
	case Nist256p1Compressed:
		return "nist256p1"
	case Nist256p1Extended:
		return "nist256p1-extended"
	case Ed25519:
		return "ed25519"
	case Ed25519Blake2b:
		return "ed25519-blake2b"
	case Curve25519:
		return "curve25519"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(kt))
	}
}

// Parses a [KeyType] from its String() form, or from one of the common aliases (eg, "k256", "ES256K", "p256", "secp256r1", "nano").
//
// Curve names without an encoding suffix resolve to the compressed type.
func ParseKeyType(raw string) (KeyType, error) {
	switch strings.ToLower(raw) {
	case "secp256k1", "k256", "k-256", "es256k", "secp256k1-compressed":
		return Secp256k1Compressed, nil
	case "secp256k1-extended", "secp256k1-uncompressed", "k256-extended":
		return Secp256k1Extended, nil
	case "nist256p1", "p256", "p-256", "es256", "secp256r1", "nist256p1-compressed":
		return Nist256p1Compressed, nil
	case "nist256p1-extended", "nist256p1-uncompressed", "p256-extended":
		return Nist256p1Extended, nil
	case "ed25519":
		return Ed25519, nil
	case "ed25519-blake2b", "ed25519blake2b", "nano":
		return Ed25519Blake2b, nil
	case "curve25519", "x25519":
		return Curve25519, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKeyType, raw)
	}
}

func (c Curve) Algorithm() Algorithm {
	switch c {
	case CurveSecp256k1, CurveNist256p1:
		return ECDSA
	case CurveEd25519, CurveEd25519Blake2b, CurveCurve25519:
		return EdDSA
	default:
		return 0
	}
}

// The compressed [KeyType] of an ECDSA curve. Returns false for EdDSA curves.
func (c Curve) CompressedType() (KeyType, bool) {
	switch c {
	case CurveSecp256k1:
		return Secp256k1Compressed, true
	case CurveNist256p1:
		return Nist256p1Compressed, true
	default:
		return 0, false
	}
}

// The extended (uncompressed) [KeyType] of an ECDSA curve. Returns false for EdDSA curves.
func (c Curve) ExtendedType() (KeyType, bool) {
	switch c {
	case CurveSecp256k1:
		return Secp256k1Extended, true
	case CurveNist256p1:
		return Nist256p1Extended, true
	default:
		return 0, false
	}
}

func (c Curve) String() string {
	switch c {
	case CurveSecp256k1:
		return "secp256k1"
	case CurveNist256p1:
		return "nist256p1"
	case CurveEd25519:
		return "ed25519"
	case CurveEd25519Blake2b:
		return "ed25519-blake2b"
	case CurveCurve25519:
		return "curve25519"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// Parses a [Curve] name; accepts the same aliases as [ParseKeyType].
func ParseCurve(raw string) (Curve, error) {
	kt, err := ParseKeyType(raw)
	if err != nil {
		return 0, err
	}
	return kt.Curve(), nil
}

func (a Algorithm) String() string {
	switch a {
	case ECDSA:
		return "ECDSA"
	case EdDSA:
		return "EdDSA"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}
