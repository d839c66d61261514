// Package diff renders the difference between a document on disk and its
// synced rendering, for the check command.
package diff

import (
	"strings"

	"github.com/muesli/termenv"
	"github.com/pmezard/go-difflib/difflib"
)

// Unified returns a unified diff from the on-disk document to its synced
// rendering. The result is empty when the two are identical.
func Unified(path string, original, synced []byte) (string, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(string(synced)),
		FromFile: path,
		ToFile:   path + " (synced)",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(ud)
}

// Colorize applies ANSI colors to a unified diff. On terminals without
// color support termenv degrades this to a no-op.
func Colorize(unified string) string {
	p := termenv.ColorProfile()
	added := p.Color("#22c55e")
	removed := p.Color("#ef4444")
	header := p.Color("#818cf8")

	lines := strings.Split(unified, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"), strings.HasPrefix(line, "@@"):
			lines[i] = termenv.String(line).Foreground(header).String()
		case strings.HasPrefix(line, "+"):
			lines[i] = termenv.String(line).Foreground(added).String()
		case strings.HasPrefix(line, "-"):
			lines[i] = termenv.String(line).Foreground(removed).String()
		}
	}
	return strings.Join(lines, "\n")
}
