package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Disk is the persistent cache layer. Each entry is a small JSON file named
// by its key hash.
type Disk struct {
	dir string
	ttl time.Duration
}

// NewDisk creates a disk cache rooted at dir.
func NewDisk(dir string, ttl time.Duration) *Disk {
	return &Disk{dir: dir, ttl: ttl}
}

type diskEntry struct {
	Body      []byte    `json:"body"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (d *Disk) Get(key string) ([]byte, bool) {
	raw, err := os.ReadFile(d.path(key))
	if err != nil {
		return nil, false
	}

	var entry diskEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(d.path(key))
		return nil, false
	}
	return entry.Body, true
}

func (d *Disk) Set(key string, value []byte) {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return
	}

	raw, err := json.Marshal(diskEntry{
		Body:      value,
		ExpiresAt: time.Now().Add(d.ttl),
	})
	if err != nil {
		return
	}
	_ = os.WriteFile(d.path(key), raw, 0o644)
}

func (d *Disk) Clear() error {
	return os.RemoveAll(d.dir)
}

func (d *Disk) path(key string) string {
	return filepath.Join(d.dir, key+".json")
}
