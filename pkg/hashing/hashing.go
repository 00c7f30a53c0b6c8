package hashing

import (
	"encoding/hex"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// Hasher derives the opaque hex tokens used as primary keys and cookie
// values. Account hashes are a keyed MAC over the provider user id, so
// the same osu! account always maps to the same user_hash for a given
// server secret. Team and invite tokens are keyed with throwaway random
// material instead, so they are unguessable and unique per call.
type Hasher struct {
	secret []byte
}

func New(secret string) *Hasher {
	return &Hasher{secret: []byte(secret)}
}

// HashWithSecret returns the 64-char hex BLAKE2b-256 MAC of s under the
// server secret. Deterministic across calls and restarts.
func (h *Hasher) HashWithSecret(s string) string {
	return keyedDigest(h.secret, s)
}

// HashWithRandom returns a 64-char hex digest of s keyed with a fresh
// UUID. Two calls with the same input yield different outputs.
func HashWithRandom(s string) string {
	return keyedDigest([]byte(uuid.NewString()), s)
}

func keyedDigest(key []byte, s string) string {
	// blake2b accepts keys up to 64 bytes; both the UUID string and any
	// sane server secret fit, but truncate rather than panic.
	if len(key) > 64 {
		key = key[:64]
	}
	mac, err := blake2b.New256(key)
	if err != nil {
		// Only reachable with an oversized key, which is truncated above.
		panic(err)
	}
	mac.Write([]byte(s))
	return hex.EncodeToString(mac.Sum(nil))
}
