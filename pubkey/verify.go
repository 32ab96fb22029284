package pubkey

// Verifies a signature over an already-computed digest, returning true only for valid signatures.
//
// ECDSA keys expect a 64 byte `[R | S]` signature, or 65 bytes with a trailing recovery ID (which is ignored here), and a 32 byte digest. Both "low-S" and "high-S" signatures are accepted. EdDSA keys expect a 64 byte signature, and the digest is the signed message, of any length.
//
// Malformed signatures, out-of-range scalars, and unexpected digest lengths all return false: verification never distinguishes "malformed" from "does not verify".
func (k *PublicKey) Verify(sig, digest []byte) bool {
	if k == nil {
		return false
	}
	switch k.keyType.Algorithm() {
	case ECDSA:
		if len(digest) != DigestSize {
			return false
		}
		if len(sig) != 64 && len(sig) != 65 {
			return false
		}
		sig = sig[:64]
	case EdDSA:
		if len(sig) != edSignatureSize {
			return false
		}
	default:
		return false
	}

	switch k.keyType {
	case Secp256k1Compressed, Secp256k1Extended:
		return verifyK256(k, sig, digest)
	case Nist256p1Compressed, Nist256p1Extended:
		return verifyP256(k, sig, digest)
	case Ed25519:
		return verifyEd25519(k.data, digest, sig)
	case Ed25519Blake2b:
		return verifyEd25519Blake2b(k.data, digest, sig)
	case Curve25519:
		return verifyCurve25519(k.data, digest, sig)
	default:
		return false
	}
}

// Same as [PublicKey.Verify], for ECDSA signatures in ASN.1 DER encoding. Always false for EdDSA keys.
func (k *PublicKey) VerifyDER(sig, digest []byte) bool {
	if k == nil || len(digest) != DigestSize || len(sig) == 0 {
		return false
	}
	switch k.keyType {
	case Secp256k1Compressed, Secp256k1Extended:
		return verifyDERK256(k, sig, digest)
	case Nist256p1Compressed, Nist256p1Extended:
		return verifyDERP256(k, sig, digest)
	default:
		return false
	}
}
