package output

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line-oriented diff from old to new. Removed lines are
// prefixed with "-", added lines with "+", unchanged lines with a space.
func Diff(old, new string) string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(old, new)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range splitLines(d.Text) {
			out.WriteString(prefix + line + "\n")
		}
	}
	return out.String()
}

// splitLines splits s into lines without their terminators. A trailing
// newline does not produce an empty last line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
