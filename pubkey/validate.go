package pubkey

import (
	"fmt"
)

const (
	prefixEven         = 0x02
	prefixOdd          = 0x03
	prefixUncompressed = 0x04
)

// Checks whether raw bytes are a valid public key of the indicated [KeyType].
//
//   - the length must always match [KeyType.Size]
//   - compressed ECDSA types need a 0x02/0x03 prefix, and an x coordinate which is on the curve
//   - extended ECDSA types need a 0x04 prefix, and (x,y) must satisfy the curve equation
//   - EdDSA types (ed25519, ed25519-blake2b, curve25519) only have their length checked. Points which do not decode fail later, during verification.
func IsValid(data []byte, kt KeyType) bool {
	return validate(data, kt) == nil
}

func validate(data []byte, kt KeyType) error {
	if kt.Size() == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownKeyType, kt)
	}
	if len(data) != kt.Size() {
		return fmt.Errorf("%w: %s keys must be %d bytes, got len=%d", ErrInvalidLength, kt, kt.Size(), len(data))
	}

	switch kt {
	case Secp256k1Compressed:
		if data[0] != prefixEven && data[0] != prefixOdd {
			return fmt.Errorf("%w: unexpected compressed prefix 0x%02x", ErrInvalidEncoding, data[0])
		}
		if _, err := parseCompressedK256(data); err != nil {
			return err
		}
	case Secp256k1Extended:
		if data[0] != prefixUncompressed {
			return fmt.Errorf("%w: unexpected uncompressed prefix 0x%02x", ErrInvalidEncoding, data[0])
		}
		if _, err := parseUncompressedK256(data); err != nil {
			return err
		}
	case Nist256p1Compressed:
		if data[0] != prefixEven && data[0] != prefixOdd {
			return fmt.Errorf("%w: unexpected compressed prefix 0x%02x", ErrInvalidEncoding, data[0])
		}
		if _, err := parseCompressedP256(data); err != nil {
			return err
		}
	case Nist256p1Extended:
		if data[0] != prefixUncompressed {
			return fmt.Errorf("%w: unexpected uncompressed prefix 0x%02x", ErrInvalidEncoding, data[0])
		}
		if _, err := parseUncompressedP256(data); err != nil {
			return err
		}
	case Ed25519, Ed25519Blake2b, Curve25519:
		// length only
	}
	return nil
}
