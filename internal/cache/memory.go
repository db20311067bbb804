package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is the in-process cache layer.
type Memory struct {
	store *gocache.Cache
	ttl   time.Duration
}

// NewMemory creates a memory cache whose entries expire after ttl.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		store: gocache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

func (m *Memory) Get(key string) ([]byte, bool) {
	if v, ok := m.store.Get(key); ok {
		return v.([]byte), true
	}
	return nil, false
}

func (m *Memory) Set(key string, value []byte) {
	m.store.Set(key, value, m.ttl)
}

func (m *Memory) Clear() error {
	m.store.Flush()
	return nil
}
