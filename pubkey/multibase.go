package pubkey

import (
	"fmt"
	"strings"

	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-varint"
)

// multicodec codes for public keys; these are varint-encoded as a prefix to the key bytes
const (
	// secp256k1-pub, varint bytes: [0xE7, 0x01]
	MCSecp256k1 = 0xE7
	// p256-pub, varint bytes: [0x80, 0x24]
	MCP256 = 0x1200
	// ed25519-pub, varint bytes: [0xED, 0x01]
	MCEd25519 = 0xED
	// x25519-pub, varint bytes: [0xEC, 0x01]
	MCX25519 = 0xEC
)

// Returns a multibase string encoding of the public key, including a multicodec indicator. ECDSA keys are always encoded using compressed curve bytes.
//
// ed25519-blake2b keys have no registered multicodec, and return [ErrUnsupportedOperation].
func (k *PublicKey) Multibase() (string, error) {
	if k == nil {
		return "", errNilKey
	}
	var code uint64
	kbytes := k.data
	switch k.keyType {
	case Secp256k1Compressed, Secp256k1Extended:
		comp, err := k.Compressed()
		if err != nil {
			return "", err
		}
		code, kbytes = MCSecp256k1, comp.data
	case Nist256p1Compressed, Nist256p1Extended:
		comp, err := k.Compressed()
		if err != nil {
			return "", err
		}
		code, kbytes = MCP256, comp.data
	case Ed25519:
		code = MCEd25519
	case Curve25519:
		code = MCX25519
	default:
		return "", fmt.Errorf("%w: no multicodec for %s keys", ErrUnsupportedOperation, k.keyType)
	}

	buf := make([]byte, varint.UvarintSize(code)+len(kbytes))
	n := varint.PutUvarint(buf, code)
	copy(buf[n:], kbytes)
	return multibase.Encode(multibase.Base58BTC, buf)
}

// Returns a did:key string encoding of the public key:
//
//   - compressed / compacted binary representation
//   - prefix with appropriate curve multicodec bytes
//   - encode bytes with base58btc
//   - add "z" prefix to indicate encoding
//   - add "did:key:" prefix
func (k *PublicKey) DIDKey() (string, error) {
	mb, err := k.Multibase()
	if err != nil {
		return "", err
	}
	return "did:key:" + mb, nil
}

// Parses a public key in multibase encoding, as returned by [PublicKey.Multibase]. Any multibase encoding is accepted, though keys are conventionally base58btc ("z" prefix).
//
// ECDSA keys parse to the compressed type of their curve.
func ParsePublicMultibase(encoded string) (*PublicKey, error) {
	_, data, err := multibase.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: multibase decoding: %w", ErrInvalidEncoding, err)
	}
	code, n, err := varint.FromUvarint(data)
	if err != nil {
		return nil, fmt.Errorf("%w: multicodec prefix: %w", ErrInvalidEncoding, err)
	}
	kbytes := data[n:]
	if len(kbytes) == 0 {
		return nil, fmt.Errorf("%w: multibase key too short", ErrInvalidLength)
	}
	switch code {
	case MCSecp256k1:
		return NewPublicKey(kbytes, Secp256k1Compressed)
	case MCP256:
		return NewPublicKey(kbytes, Nist256p1Compressed)
	case MCEd25519:
		return NewPublicKey(kbytes, Ed25519)
	case MCX25519:
		return NewPublicKey(kbytes, Curve25519)
	default:
		return nil, fmt.Errorf("%w: unsupported multicodec 0x%x", ErrUnknownKeyType, code)
	}
}

// Parses a did:key string, as returned by [PublicKey.DIDKey].
func ParsePublicDIDKey(didKey string) (*PublicKey, error) {
	mb, ok := strings.CutPrefix(didKey, "did:key:")
	if !ok {
		return nil, fmt.Errorf("%w: string is not a did:key: %s", ErrInvalidEncoding, didKey)
	}
	return ParsePublicMultibase(mb)
}
