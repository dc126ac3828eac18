// Package crypt is the public facade over internal/crypttransport: the
// row-level field encryption used by a Config's EncryptionPredicate,
// KeyMap, and Cipher settings.
package crypt

import "github.com/rchillyard/tableparser/internal/crypttransport"

// Encoding selects how ciphertext is carried inside a cell.
type Encoding = crypttransport.Encoding

const (
	Hex    = crypttransport.Hex
	Base64 = crypttransport.Base64
)

// KeySize is the AES-128 key length in bytes.
const KeySize = crypttransport.KeySize

// Payload is a row's encrypted cell value paired with its row identity.
type Payload = crypttransport.Payload

// KeyMap resolves a row's decryption key by its plaintext row-id.
type KeyMap = crypttransport.KeyMap

// MapKeyMap is the simplest KeyMap: a fixed table of per-row keys.
type MapKeyMap = crypttransport.MapKeyMap

// Cipher encrypts and decrypts cell values under AES-128-CTR.
type Cipher = crypttransport.Cipher

// NewCipher builds a Cipher using enc. NewCipher takes the encoding
// explicitly; the zero Encoding is Hex.
func NewCipher(enc Encoding) *Cipher { return crypttransport.NewCipher(enc) }

// GenerateKey samples a fresh AES-128 key.
func GenerateKey() ([]byte, error) { return crypttransport.GenerateKey() }

// KeyMapFromSeed builds a deterministic MapKeyMap, useful for tests and
// fixture generation.
func KeyMapFromSeed(seed string, rowIDs []string) MapKeyMap {
	return crypttransport.KeyMapFromSeed(seed, rowIDs)
}

// DecryptRow decrypts payload using keys.
func DecryptRow(c *Cipher, keys KeyMap, payload Payload) (string, error) {
	return crypttransport.DecryptRow(c, keys, payload)
}
