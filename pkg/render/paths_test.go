package render

import (
	"math"
	"strings"
	"testing"
)

func TestHash(t *testing.T) {
	if hash("test", 42) != hash("test", 42) {
		t.Errorf("hash() should be deterministic")
	}
	if hash("test", 42) == hash("test", 43) {
		t.Errorf("hash() with different seed should produce different hash")
	}
	if hash("test", 42) == hash("other", 42) {
		t.Errorf("hash() with different input should produce different hash")
	}
	if hash("test", 0) != hash("test", 0) {
		t.Errorf("hash() with zero seed should be deterministic")
	}
}

func TestJitter(t *testing.T) {
	for i := 0; i < 100; i++ {
		key := string(rune('a' + i%26))
		v := jitter(key, uint64(i), 1.5)
		if math.Abs(v) > 1.5 {
			t.Errorf("jitter(%q) = %v outside [-1.5, 1.5]", key, v)
		}
	}
	if jitter("k", 1, 2) != jitter("k", 1, 2) {
		t.Errorf("jitter() should be deterministic")
	}
}

func TestWobbledLine(t *testing.T) {
	path := wobbledLine(0, 0, 100, 100, 42, "edge-0")

	if !strings.HasPrefix(path, "M") {
		t.Errorf("wobbledLine() should start with M, got: %s", path)
	}
	if !strings.Contains(path, "Q") {
		t.Errorf("wobbledLine() should contain Q commands, got: %s", path)
	}

	// Deterministic for the same inputs.
	if path != wobbledLine(0, 0, 100, 100, 42, "edge-0") {
		t.Errorf("wobbledLine() should be deterministic")
	}
	// Different ids wiggle differently.
	if path == wobbledLine(0, 0, 100, 100, 42, "edge-1") {
		t.Errorf("wobbledLine() should produce different paths for different ids")
	}
}

func TestWobbledLine_Short(t *testing.T) {
	path := wobbledLine(0, 0, 5, 5, 42, "tiny")
	if path == "" || !strings.HasPrefix(path, "M") {
		t.Errorf("short wobbledLine() should still produce a path, got: %s", path)
	}
	// A short line is a single bezier segment.
	if strings.Count(path, "Q") != 1 {
		t.Errorf("short line should use one segment, got: %s", path)
	}
}
