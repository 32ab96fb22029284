package pubkey

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublicKeyCompressed(t *testing.T) {
	assert := assert.New(t)

	data := mustHex(t, "0399c6f51ad6f98c9c583f8e92bb7758ab2ca9a04110c0a1126ec43e5453d196c1")
	assert.True(IsValid(data, Secp256k1Compressed))

	pub, err := NewPublicKey(data, Secp256k1Compressed)
	require.NoError(t, err)
	assert.Equal(Secp256k1Compressed, pub.Type())
	assert.True(pub.IsCompressed())
	assert.Equal(data, pub.Bytes())
	assert.Equal("0399c6f51ad6f98c9c583f8e92bb7758ab2ca9a04110c0a1126ec43e5453d196c1", pub.String())

	ext, err := pub.Extended()
	require.NoError(t, err)
	assert.Len(ext.Bytes(), 65)
	assert.Equal(byte(0x04), ext.Bytes()[0])
	assert.False(ext.IsCompressed())
}

func TestNewPublicKeyInvalid(t *testing.T) {
	assert := assert.New(t)

	pub, err := NewPublicKey(mustHex(t, "deadbeef"), Secp256k1Compressed)
	assert.ErrorIs(err, ErrInvalidLength)
	assert.Nil(pub)

	_, err = NewPublicKey(make([]byte, 32), KeyType(0))
	assert.ErrorIs(err, ErrUnknownKeyType)
	_, err = NewPublicKey(make([]byte, 32), KeyType(42))
	assert.ErrorIs(err, ErrUnknownKeyType)

	_, err = ParsePublicHex("zz", Ed25519)
	assert.ErrorIs(err, ErrInvalidEncoding)
}

// every length other than the declared size is rejected, for every key type
func TestKeyLength(t *testing.T) {
	assert := assert.New(t)

	for _, kt := range KeyTypes() {
		for size := 0; size <= 70; size++ {
			if size == kt.Size() {
				continue
			}
			data := make([]byte, size)
			if size > 0 {
				data[0] = prefixEven
			}
			assert.False(IsValid(data, kt), "type=%s len=%d", kt, size)
			_, err := NewPublicKey(data, kt)
			assert.ErrorIs(err, ErrInvalidLength, "type=%s len=%d", kt, size)
		}
	}
}

func TestEdwardsLengthOnly(t *testing.T) {
	assert := assert.New(t)

	for _, kt := range []KeyType{Ed25519, Ed25519Blake2b, Curve25519} {
		for _, fill := range []byte{0x00, 0x01, 0xff} {
			data := bytes.Repeat([]byte{fill}, 32)
			assert.True(IsValid(data, kt), "type=%s fill=%x", kt, fill)
		}
	}
}

func TestPublicKeyImmutable(t *testing.T) {
	assert := assert.New(t)

	data := mustHex(t, "0399c6f51ad6f98c9c583f8e92bb7758ab2ca9a04110c0a1126ec43e5453d196c1")
	pub, err := NewPublicKey(data, Secp256k1Compressed)
	require.NoError(t, err)

	// neither the input nor the output slice alias the key
	data[5] ^= 0xff
	out := pub.Bytes()
	out[6] ^= 0xff
	assert.Equal("0399c6f51ad6f98c9c583f8e92bb7758ab2ca9a04110c0a1126ec43e5453d196c1", pub.String())
}

func TestPublicKeyEqual(t *testing.T) {
	assert := assert.New(t)

	a, err := ParsePublicHex("0399c6f51ad6f98c9c583f8e92bb7758ab2ca9a04110c0a1126ec43e5453d196c1", Secp256k1Compressed)
	require.NoError(t, err)
	b, err := ParsePublicHex("0399c6f51ad6f98c9c583f8e92bb7758ab2ca9a04110c0a1126ec43e5453d196c1", Secp256k1Compressed)
	require.NoError(t, err)
	assert.True(a.Equal(b))

	ext, err := a.Extended()
	require.NoError(t, err)
	assert.False(a.Equal(ext))

	// same bytes, different type
	ed, err := NewPublicKey(bytes.Repeat([]byte{0x09}, 32), Ed25519)
	require.NoError(t, err)
	nano, err := NewPublicKey(bytes.Repeat([]byte{0x09}, 32), Ed25519Blake2b)
	require.NoError(t, err)
	assert.False(ed.Equal(nano))

	var nilKey *PublicKey
	assert.False(a.Equal(nil))
	assert.True(nilKey.Equal(nil))
}

// a key left nil by a failed parse errors out instead of panicking
func TestNilKeyOperations(t *testing.T) {
	assert := assert.New(t)

	pub, err := NewPublicKey([]byte{0xde, 0xad}, Secp256k1Compressed)
	assert.ErrorIs(err, ErrInvalidLength)
	require.Nil(t, pub)

	assert.Nil(pub.Bytes())
	assert.Equal("", pub.String())
	assert.Equal(KeyType(0), pub.Type())
	assert.False(pub.IsCompressed())

	ext, err := pub.Extended()
	assert.ErrorIs(err, ErrUnsupportedOperation)
	assert.Nil(ext)
	comp, err := pub.Compressed()
	assert.ErrorIs(err, ErrUnsupportedOperation)
	assert.Nil(comp)

	mb, err := pub.Multibase()
	assert.ErrorIs(err, ErrUnsupportedOperation)
	assert.Empty(mb)
	did, err := pub.DIDKey()
	assert.ErrorIs(err, ErrUnsupportedOperation)
	assert.Empty(did)
	jwk, err := pub.JWK()
	assert.ErrorIs(err, ErrUnsupportedOperation)
	assert.Nil(jwk)

	assert.False(pub.Verify(make([]byte, 64), make([]byte, 32)))
}
