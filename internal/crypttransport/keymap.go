package crypttransport

import (
	"crypto/sha256"

	"github.com/google/uuid"
)

// KeyMapFromSeed builds a deterministic MapKeyMap for rowIDs: each row's
// key is derived from a UUIDv5 of seed and the row-id string, hashed
// down to KeySize bytes. Intended for tests and fixture generation, not
// production key management — production callers should supply their
// own KeyMap backed by a real key store.
func KeyMapFromSeed(seed string, rowIDs []string) MapKeyMap {
	ns := uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))
	out := make(MapKeyMap, len(rowIDs))
	for _, id := range rowIDs {
		rowUUID := uuid.NewSHA1(ns, []byte(id))
		sum := sha256.Sum256(rowUUID[:])
		out[id] = sum[:KeySize]
	}
	return out
}
