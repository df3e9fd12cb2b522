package clipboard

import (
	"testing"
)

func TestWrite(t *testing.T) {
	// Needs a desktop session; headless runs only check that Write doesn't panic.
	err := Write("test text")
	if err != nil {
		t.Logf("Failed to write to clipboard: %v", err)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	first := Init()
	if second := Init(); second != first {
		t.Fatalf("Expected the same Init result, got %v then %v", first, second)
	}
}
