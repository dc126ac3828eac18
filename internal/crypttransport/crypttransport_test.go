package crypttransport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rchillyard/tableparser/tperr"
)

func TestEncryptDecryptRoundTripHex(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	c := NewCipher(Hex)

	opaque, err := c.Encrypt(key, "hello row")
	require.NoError(t, err)

	plain, err := c.Decrypt(key, opaque)
	require.NoError(t, err)
	assert.Equal(t, "hello row", plain)
}

func TestEncryptDecryptRoundTripBase64(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	c := NewCipher(Base64)

	opaque, err := c.Encrypt(key, "another value")
	require.NoError(t, err)

	plain, err := c.Decrypt(key, opaque)
	require.NoError(t, err)
	assert.Equal(t, "another value", plain)
}

func TestDecryptPreservesLeadingZeroByte(t *testing.T) {
	key := make([]byte, KeySize)
	c := NewCipher(Hex)

	opaque, err := c.Encrypt(key, "x")
	require.NoError(t, err)
	opaque = "00" + opaque

	raw, err := c.decode(opaque)
	require.NoError(t, err)
	assert.Equal(t, byte(0), raw[0])
}

func TestDecryptTruncatedCiphertextRejected(t *testing.T) {
	key, _ := GenerateKey()
	c := NewCipher(Hex)

	_, err := c.Decrypt(key, "AB")
	require.Error(t, err)
	kind, ok := tperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, tperr.TruncatedCiphertext, kind)
}

func TestDecryptRowMissingKeyReported(t *testing.T) {
	c := NewCipher(Hex)
	keys := MapKeyMap{}

	_, err := DecryptRow(c, keys, Payload{RowID: "3", Opaque: "AB"})
	require.Error(t, err)
	kind, ok := tperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, tperr.KeyNotFound, kind)
}

func TestKeyMapFromSeedIsDeterministic(t *testing.T) {
	a := KeyMapFromSeed("seed", []string{"1", "2", "3"})
	b := KeyMapFromSeed("seed", []string{"1", "2", "3"})
	assert.Equal(t, a, b)
	assert.Len(t, a["1"], KeySize)
}
