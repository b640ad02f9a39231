package idgen

import (
	"strings"
	"testing"
)

func TestUUIDv7_Unique(t *testing.T) {
	gen := UUIDv7()
	seen := make(map[string]bool)
	for range 100 {
		id := gen()
		if len(id) != 36 {
			t.Fatalf("UUIDv7: got length %d, want 36", len(id))
		}
		if seen[id] {
			t.Fatalf("UUIDv7: duplicate %s", id)
		}
		seen[id] = true
	}
}

func TestPrefixed(t *testing.T) {
	gen := Prefixed("cap_", Default)
	id := gen()
	if !strings.HasPrefix(id, "cap_") {
		t.Errorf("Prefixed: got %q, want cap_ prefix", id)
	}
}
