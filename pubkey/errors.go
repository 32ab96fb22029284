package pubkey

import (
	"errors"
	"fmt"
)

// Returned when a byte buffer does not have the size required by the declared [KeyType].
var ErrInvalidLength = errors.New("invalid public key length")

// Returned for a bad prefix byte, or bytes which do not decode to a point on the curve.
var ErrInvalidEncoding = errors.New("invalid public key encoding")

// Returned when a signature has the wrong length, an out-of-range scalar, or does not correspond to a curve point.
var ErrMalformedSignature = errors.New("malformed signature")

// Returned when an operation is not defined for the key type, eg compressing an ed25519 key.
var ErrUnsupportedOperation = errors.New("unsupported operation for key type")

// a nil *PublicKey (eg, from a failed parse) supports no operations
var errNilKey = fmt.Errorf("%w: nil public key", ErrUnsupportedOperation)

// Returned when parsing an unknown key type or curve name, or for a [KeyType] value outside the enumeration.
var ErrUnknownKeyType = errors.New("unknown key type")
