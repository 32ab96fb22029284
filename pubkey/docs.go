// Public keys for a multi-chain wallet engine
//
// This package represents an asymmetric public key as an immutable byte buffer tagged with a [KeyType]. It hides the differences between curves and encodings behind one small value type, which can be checked, converted between ECDSA encodings, used to verify signatures, and recovered from ECDSA signatures.
//
// The supported curve families are:
//
//   - secp256k1 / K-256, internally implemented using <gitlab.com/yawning/secp256k1-voi>, with public key recovery from <github.com/decred/dcrd/dcrec/secp256k1/v4>
//   - nist256p1 / P-256 / secp256r1, internally implemented using golang's stdlib cryptographic library
//   - ed25519, using golang's stdlib
//   - ed25519 with BLAKE2b-512 in place of SHA-512 (as used by Nano), implemented using <filippo.io/edwards25519>
//   - curve25519 (Montgomery form) keys verified XEdDSA-style against an ed25519 signature
//
// Callers are responsible for hashing: every operation consumes an already computed digest. ECDSA digests must be 32 bytes. EdDSA keys treat the digest as the signed message.
//
// ECDSA keys are checked against the curve when constructed. EdDSA keys only have their length checked; an invalid point simply fails verification later on.
//
// Keys can also be serialized as multibase (did:key) strings and as JWK.
//
// No private key material is handled by this package.
package pubkey
