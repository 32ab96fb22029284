package pubkey

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// An immutable public key: encoded bytes tagged with a [KeyType].
//
// Values are only constructed through validating factories ([NewPublicKey], [ParsePublicHex], [Recover], and the multibase/JWK parsers), so the byte length always matches the type. Nothing in the API mutates a key after construction, and "derived" keys (eg, from [PublicKey.Extended]) are new values. A *PublicKey can be shared between goroutines without synchronization.
type PublicKey struct {
	keyType KeyType
	data    []byte
}

// Loads a [PublicKey] from raw bytes, checking them against the indicated [KeyType] (see [IsValid] for the rules).
//
// Calling code needs to know the key type ahead of time, and must remove any string encoding (hex encoding, base64, etc) before calling this function. The input slice is copied, and not retained.
func NewPublicKey(data []byte, kt KeyType) (*PublicKey, error) {
	if err := validate(data, kt); err != nil {
		return nil, err
	}
	return newPublicKeyUnchecked(data, kt), nil
}

// Same as [NewPublicKey], with hex-encoded input (eg, from a CLI argument or test vector).
func ParsePublicHex(s string, kt KeyType) (*PublicKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: hex decoding: %w", ErrInvalidEncoding, err)
	}
	return NewPublicKey(data, kt)
}

// only for bytes which were already validated, or produced by a curve backend
func newPublicKeyUnchecked(data []byte, kt KeyType) *PublicKey {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &PublicKey{keyType: kt, data: buf}
}

// Serializes the key in its own encoding (eg, 33 bytes for compressed ECDSA types). Returns a copy.
func (k *PublicKey) Bytes() []byte {
	if k == nil {
		return nil
	}
	buf := make([]byte, len(k.data))
	copy(buf, k.data)
	return buf
}

// Zero (not a valid [KeyType]) for a nil key.
func (k *PublicKey) Type() KeyType {
	if k == nil {
		return 0
	}
	return k.keyType
}

// Whether the key uses a compressed ECDSA encoding. False for all EdDSA types.
func (k *PublicKey) IsCompressed() bool {
	if k == nil {
		return false
	}
	return k.keyType.IsCompressed()
}

// Checks if the two public keys are the same: equal type and equal bytes. A compressed and an extended encoding of the same point are not equal; convert first.
func (k *PublicKey) Equal(other *PublicKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.keyType == other.keyType && bytes.Equal(k.data, other.data)
}

// Lower-case hex encoding of [PublicKey.Bytes]. Empty for a nil key.
func (k *PublicKey) String() string {
	if k == nil {
		return ""
	}
	return hex.EncodeToString(k.data)
}
