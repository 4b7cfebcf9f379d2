package internal

import (
	"strings"
	"testing"
)

func TestNewIDShape(t *testing.T) {
	id := NewID()
	if len(id) != 32 {
		t.Fatalf("id length = %d, want 32", len(id))
	}
	if strings.Contains(id, "-") {
		t.Fatalf("id contains dashes: %s", id)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
