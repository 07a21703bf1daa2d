package textdiff

import (
	"strings"
	"testing"
)

func TestLinesEqual(t *testing.T) {
	if d := Lines("a\nb\n", "a\nb\n"); d != "" {
		t.Errorf("expected empty diff, got:\n%s", d)
	}
}

func TestLinesDiff(t *testing.T) {
	d := Lines("a\nb\nc\n", "a\nx\nc\n")
	if !strings.Contains(d, "- b") {
		t.Errorf("missing removal of b:\n%s", d)
	}
	if !strings.Contains(d, "+ x") {
		t.Errorf("missing addition of x:\n%s", d)
	}
	if !strings.Contains(d, "  a") {
		t.Errorf("missing context line a:\n%s", d)
	}
}
