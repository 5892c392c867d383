package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// SimplificationKey generates a cache key for a simplification request.
// The same clause text with a different length budget is a different entry.
func SimplificationKey(clauseText string, maxLength int) string {
	hash := sha256.Sum256([]byte(strconv.Itoa(maxLength) + ":" + clauseText))
	return "lexsift:simplify:v1:" + hex.EncodeToString(hash[:])
}
