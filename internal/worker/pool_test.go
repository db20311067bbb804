package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/laasya2505/reddit-persona/internal/model"
)

type stubGenerator struct {
	calls   atomic.Int32
	failFor string
}

func (s *stubGenerator) Generate(ctx context.Context, username string) (*model.Persona, error) {
	s.calls.Add(1)
	if username == s.failFor {
		return nil, fmt.Errorf("boom")
	}
	return &model.Persona{Username: username}, nil
}

func TestPool_ResultsInInputOrder(t *testing.T) {
	gen := &stubGenerator{}
	pool := NewPool(gen, 4)

	usernames := []string{"alice", "bob", "carol", "dave", "erin"}
	results := pool.Run(context.Background(), usernames)

	if len(results) != len(usernames) {
		t.Fatalf("Expected %d results, got %d", len(usernames), len(results))
	}
	var got []string
	for _, r := range results {
		got = append(got, r.Username)
	}
	if !reflect.DeepEqual(got, usernames) {
		t.Errorf("Order = %v, want %v", got, usernames)
	}
	if gen.calls.Load() != int32(len(usernames)) {
		t.Errorf("Expected %d generate calls, got %d", len(usernames), gen.calls.Load())
	}
}

func TestPool_FailureIsPerJob(t *testing.T) {
	gen := &stubGenerator{failFor: "bob"}
	results := NewPool(gen, 2).Run(context.Background(), []string{"alice", "bob", "carol"})

	for _, r := range results {
		if r.Username == "bob" {
			if r.Err == nil {
				t.Error("Expected error for bob")
			}
			continue
		}
		if r.Err != nil {
			t.Errorf("Unexpected error for %s: %v", r.Username, r.Err)
		}
		if r.Persona == nil {
			t.Errorf("Expected persona for %s", r.Username)
		}
	}
}

func TestReadUsernames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	content := "alice\n\n# a comment\nbob\nalice\nu/carol\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadUsernames(path)
	if err != nil {
		t.Fatalf("ReadUsernames: %v", err)
	}
	want := []string{"alice", "bob", "u/carol"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadUsernames = %v, want %v", got, want)
	}
}

func TestReadUsernames_MissingFile(t *testing.T) {
	if _, err := ReadUsernames(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}
