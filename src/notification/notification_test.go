package notification

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	short := "DPI: 120"
	if got := truncate(short); got != short {
		t.Errorf("Expected short text unchanged, got %q", got)
	}

	long := strings.Repeat("ä", maxMessageLen+5)
	got := truncate(long)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("Expected ellipsis, got suffix %q", got[len(got)-5:])
	}
	if n := len([]rune(got)); n != maxMessageLen+3 {
		t.Errorf("Expected %d runes, got %d", maxMessageLen+3, n)
	}
}
