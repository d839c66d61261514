package docsync

import (
	"log/slog"

	"github.com/aretw0/docsync/internal/rewriter"
)

// Version is the current docsync release.
const Version = "0.3.1"

// Drift describes the difference between a document on disk and its
// synced rendering.
type Drift struct {
	// Original is the document as it is on disk.
	Original []byte
	// Synced is the rendering the sync would produce.
	Synced []byte
	// Changed reports whether the two differ.
	Changed bool
}

// Option defines a functional option for configuring a sync.
type Option = rewriter.Option

// WithLogger sets a structured logger for scan diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return rewriter.WithLogger(logger)
}

// Sync synchronizes the document at path in place, injecting each include
// marker's referenced file into the rust fenced block that follows it.
// It reports whether the document was actually rewritten; an unchanged
// document is left untouched on disk.
func Sync(path string, opts ...Option) (changed bool, err error) {
	return rewriter.New(opts...).ProcessFile(path)
}

// Check runs the sync without writing anything and returns the drift
// between the document and its synced rendering.
func Check(path string, opts ...Option) (*Drift, error) {
	original, synced, changed, err := rewriter.New(opts...).CheckFile(path)
	if err != nil {
		return nil, err
	}
	return &Drift{Original: original, Synced: synced, Changed: changed}, nil
}
