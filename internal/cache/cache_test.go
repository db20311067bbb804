package cache

import (
	"testing"
	"time"
)

func TestKey_StableAndNamespaced(t *testing.T) {
	a := Key("https://www.reddit.com/user/alice/about/.json")
	b := Key("https://www.reddit.com/user/alice/about/.json")
	c := Key("https://www.reddit.com/user/bob/about/.json")

	if a != b {
		t.Error("Expected identical URLs to produce identical keys")
	}
	if a == c {
		t.Error("Expected different URLs to produce different keys")
	}
	if len(a) <= len("reddit-persona:v1:") {
		t.Errorf("Key too short: %q", a)
	}
}

func TestMemory_SetGet(t *testing.T) {
	m := NewMemory(time.Minute)

	if _, ok := m.Get("missing"); ok {
		t.Error("Expected miss for unknown key")
	}

	m.Set("k", []byte("page"))
	got, ok := m.Get("k")
	if !ok || string(got) != "page" {
		t.Errorf("Get = %q, %v; want page, true", got, ok)
	}

	if err := m.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := m.Get("k"); ok {
		t.Error("Expected miss after Clear")
	}
}

func TestLayered_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	l := NewLayered(time.Minute, dir, time.Minute)

	l.Set("k", []byte("body"))

	// Drop the memory layer; the disk copy should still answer and get
	// promoted back into memory.
	if err := l.memory.Clear(); err != nil {
		t.Fatalf("Clear memory: %v", err)
	}

	got, ok := l.Get("k")
	if !ok || string(got) != "body" {
		t.Fatalf("Get after memory clear = %q, %v; want body, true", got, ok)
	}
	if _, ok := l.memory.Get("k"); !ok {
		t.Error("Expected disk hit to be promoted into memory")
	}
}

func TestDisk_ExpiredEntryIsMiss(t *testing.T) {
	dir := t.TempDir()
	d := NewDisk(dir, -time.Second)

	d.Set("k", []byte("old"))
	if _, ok := d.Get("k"); ok {
		t.Error("Expected expired entry to be a miss")
	}
}
