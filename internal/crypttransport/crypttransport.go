// Package crypttransport implements row-level field encryption over
// AES-128-CTR, with the ciphertext (IV prefix + stream) carried as a
// hex or base64 payload string inside an otherwise ordinary cell.
package crypttransport

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/rchillyard/tableparser/tperr"
)

// KeySize is the AES-128 key length in bytes.
const KeySize = 16

// Encoding selects how a ciphertext byte string is carried inside a
// text cell.
type Encoding int

const (
	// Hex renders ciphertext as uppercase hex (the default encoding).
	Hex Encoding = iota
	// Base64 renders ciphertext as standard base64.
	Base64
)

// Payload is an encrypted row-level field: RowID is the plaintext
// row-identifier cell that the key map is indexed by, Opaque is the
// still-encoded ciphertext string as it appeared in the cell.
type Payload struct {
	RowID  string
	Opaque string
}

// KeyMap resolves a row's encryption key by its plaintext row-id.
// Callers build one however suits them (a map, a KMS client,
// KeyMapFromSeed below).
type KeyMap interface {
	KeyFor(rowID string) ([]byte, bool)
}

// MapKeyMap is the simplest KeyMap: a fixed table of per-row keys.
type MapKeyMap map[string][]byte

// KeyFor implements KeyMap.
func (m MapKeyMap) KeyFor(rowID string) ([]byte, bool) {
	k, ok := m[rowID]
	return k, ok
}

// Cipher encrypts and decrypts single cell values under AES-128-CTR,
// encoding the IV-prefixed stream per enc.
type Cipher struct {
	Enc Encoding
}

// NewCipher builds a Cipher using enc.
func NewCipher(enc Encoding) *Cipher {
	return &Cipher{Enc: enc}
}

// Encrypt encrypts plaintext under key, prefixing a fresh random IV,
// and returns the encoded payload string.
func (c *Cipher) Encrypt(key []byte, plaintext string) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", tperr.New(tperr.EncodingError, "crypttransport: bad key", err)
	}
	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", tperr.New(tperr.EncodingError, "crypttransport: iv generation failed", err)
	}
	out := make([]byte, aes.BlockSize+len(plaintext))
	copy(out, iv)
	stream := cipher.NewCTR(block, iv)
	stream.XORKeyStream(out[aes.BlockSize:], []byte(plaintext))
	return c.encode(out), nil
}

// Decrypt reverses Encrypt: decodes opaque, splits the IV prefix, and
// recovers the plaintext.
func (c *Cipher) Decrypt(key []byte, opaque string) (string, error) {
	raw, err := c.decode(opaque)
	if err != nil {
		return "", err
	}
	if len(raw) < aes.BlockSize {
		return "", tperr.New(tperr.TruncatedCiphertext, opaque, nil)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", tperr.New(tperr.EncodingError, "crypttransport: bad key", err)
	}
	iv, ct := raw[:aes.BlockSize], raw[aes.BlockSize:]
	plain := make([]byte, len(ct))
	stream := cipher.NewCTR(block, iv)
	stream.XORKeyStream(plain, ct)
	return string(plain), nil
}

func (c *Cipher) encode(b []byte) string {
	if c.Enc == Base64 {
		return base64.StdEncoding.EncodeToString(b)
	}
	return strings.ToUpper(hex.EncodeToString(b))
}

// decode preserves leading zero bytes: hex.DecodeString and
// base64.StdEncoding.DecodeString both round-trip leading 0x00 bytes
// faithfully since neither is a variable-length integer encoding, so
// no special-casing is needed beyond picking the matching decoder.
func (c *Cipher) decode(s string) ([]byte, error) {
	if c.Enc == Base64 {
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, tperr.New(tperr.EncodingError, s, err)
		}
		return b, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, tperr.New(tperr.EncodingError, s, err)
	}
	return b, nil
}

// DecryptRow decrypts payload using keys, reporting KeyNotFound if
// payload's row has no entry in keys.
func DecryptRow(c *Cipher, keys KeyMap, payload Payload) (string, error) {
	key, ok := keys.KeyFor(payload.RowID)
	if !ok {
		return "", tperr.New(tperr.KeyNotFound, payload.RowID, nil)
	}
	plain, err := c.Decrypt(key, payload.Opaque)
	if err != nil {
		return "", err
	}
	return plain, nil
}

// keyAlphabet is the character set GenerateKey samples from. Its length
// (64) is a power of two, so masking a random byte to 6 bits indexes it
// with no rejection sampling or modulo bias.
const keyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

// GenerateKey samples a fresh KeySize-character AES-128 key from
// [A-Za-z0-9_-] using crypto/rand (never math/rand: these bytes back a
// cipher key, not a test fixture or a UI token).
func GenerateKey() ([]byte, error) {
	raw := make([]byte, KeySize)
	if _, err := rand.Read(raw); err != nil {
		return nil, tperr.New(tperr.EncodingError, "crypttransport: key generation failed", err)
	}
	key := make([]byte, KeySize)
	for i, b := range raw {
		key[i] = keyAlphabet[b&0x3F]
	}
	return key, nil
}
