// Package textdiff renders line diffs of rendered documents, used by tests
// to report output mismatches readably.
package textdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines returns a line-oriented diff from want to got, with "-" prefixing
// removed lines and "+" prefixing added ones. Empty result means the
// inputs are equal.
func Lines(want, got string) string {
	if want == got {
		return ""
	}
	diffCfg := diffpatch.New()
	wantRunes, gotRunes, lineArray := diffCfg.DiffLinesToRunes(want, got)
	diffs := diffCfg.DiffMainRunes(wantRunes, gotRunes, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lineArray)

	sb := &strings.Builder{}
	for _, diff := range diffs {
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, ln := range splitLines(diff.Text) {
			sb.WriteString(prefix)
			sb.WriteString(ln)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func splitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
