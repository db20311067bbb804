// Package cache provides a TTL-bounded page cache for fetched Reddit JSON,
// so repeated runs against the same profile do not re-crawl unchanged pages.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Cache stores raw page bodies keyed by request URL.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Clear() error
}

// Key derives a stable cache key from a request URL.
func Key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "reddit-persona:v1:" + hex.EncodeToString(sum[:])
}
