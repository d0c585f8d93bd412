package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/rwandev/busfleet/internal/common"
)

const apiKeyBytes = 32

// NewAPIKey generates a device API key and the hash under which it is
// stored. Only the hash is persisted; the plaintext key is shown once at
// device registration.
func NewAPIKey() (key string, keyHash string, err error) {
	key, err = common.MakeRandHexString(apiKeyBytes)
	if err != nil {
		return "", "", err
	}
	return key, HashAPIKey(key), nil
}

// HashAPIKey returns the lookup hash of an API key. SHA-256 rather than
// bcrypt: the key is high-entropy and the hash must be usable as an index key.
func HashAPIKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
