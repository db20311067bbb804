package cache

import "time"

// Layered checks memory first, then disk, promoting disk hits into memory.
type Layered struct {
	memory Cache
	disk   Cache
}

// NewLayered creates the standard memory+disk cache.
func NewLayered(memoryTTL time.Duration, dir string, diskTTL time.Duration) *Layered {
	return &Layered{
		memory: NewMemory(memoryTTL),
		disk:   NewDisk(dir, diskTTL),
	}
}

func (l *Layered) Get(key string) ([]byte, bool) {
	if v, ok := l.memory.Get(key); ok {
		return v, true
	}
	if v, ok := l.disk.Get(key); ok {
		l.memory.Set(key, v)
		return v, true
	}
	return nil, false
}

func (l *Layered) Set(key string, value []byte) {
	l.memory.Set(key, value)
	l.disk.Set(key, value)
}

func (l *Layered) Clear() error {
	if err := l.memory.Clear(); err != nil {
		return err
	}
	return l.disk.Clear()
}
