package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// Render renders a synced document for terminal display using glamour.
// When stdout is not a terminal the document is returned as-is, so preview
// output can still be piped or redirected without ANSI noise.
func Render(doc []byte) (string, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return string(doc), nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("init renderer: %w", err)
	}
	return r.Render(string(doc))
}
