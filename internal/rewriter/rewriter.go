package rewriter

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aretw0/docsync/internal/logging"
)

// Sentinel errors for the failure classes the rewriter can hit.
// Callers classify with errors.Is; the wrapped message carries the path.
var (
	// ErrMissingInput indicates the document itself could not be read.
	ErrMissingInput = errors.New("document not found")
	// ErrMissingReference indicates a file named by an include marker could not be read.
	ErrMissingReference = errors.New("referenced file not found")
)

// Fence literals. Only blocks opened with the rust tag are injection
// targets; any other fence passes through untouched.
const (
	openingFence = "```rust"
	closingFence = "```"
)

var (
	// markerPattern matches an include marker and captures the referenced path.
	markerPattern = regexp.MustCompile(`<!-- INCLUDE-RUST: (.+?) -->`)

	// emptyCommentPattern matches a line comment (plain or doc) followed by
	// nothing but whitespace. Injected Rust examples tend to carry these.
	emptyCommentPattern = regexp.MustCompile(`(?m)^(//!?)[ \t]+$`)
)

// scanState tracks where the scan is relative to an active include.
type scanState int

const (
	stateOutside scanState = iota
	stateInsideInclude
	stateInsideCode
)

// ResolveFunc loads the contents of a file referenced by an include marker.
type ResolveFunc func(path string) ([]byte, error)

// Rewriter applies include markers to documents.
type Rewriter struct {
	logger *slog.Logger
}

// Option defines a functional option for configuring the Rewriter.
type Option func(*Rewriter)

// WithLogger sets a structured logger for scan diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Rewriter) {
		r.logger = logger
	}
}

// New creates a Rewriter. Without options it logs nowhere.
func New(opts ...Option) *Rewriter {
	r := &Rewriter{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rewrite runs the single-pass scan over doc and returns the synced
// rendering. Referenced files are loaded eagerly through resolve at the
// moment their marker is encountered; any resolution failure aborts the
// whole rewrite.
//
// The scan is a three-state machine. Outside an include everything passes
// through. After a marker, lines still pass through until the opening
// rust fence, where the referenced content is emitted verbatim. Inside
// the target block old lines are dropped until the closing fence.
func (r *Rewriter) Rewrite(doc []byte, resolve ResolveFunc) ([]byte, error) {
	lines := strings.Split(string(doc), "\n")
	out := make([]string, 0, len(lines))

	state := stateOutside
	var pending string

	for _, line := range lines {
		switch {
		case state == stateOutside && markerPattern.MatchString(line):
			ref := strings.TrimSpace(markerPattern.FindStringSubmatch(line)[1])
			content, err := resolve(ref)
			if err != nil {
				return nil, err
			}
			r.logger.Debug("Include marker", "ref", ref, "bytes", len(content))
			pending = strings.TrimSuffix(string(content), "\n")
			out = append(out, line)
			state = stateInsideInclude

		case state == stateInsideInclude && line == openingFence:
			out = append(out, line)
			if pending != "" {
				out = append(out, pending)
			}
			state = stateInsideCode

		case state == stateInsideCode && line == closingFence:
			out = append(out, line)
			state = stateOutside

		case state == stateInsideCode:
			// Old block content. The injected file replaces it.

		default:
			out = append(out, line)
		}
	}

	result := strings.Join(out, "\n")
	result = emptyCommentPattern.ReplaceAllString(result, "$1")
	return []byte(result), nil
}

// errContext is a small helper to keep wrap messages uniform.
func errContext(op, path string, err error) error {
	return fmt.Errorf("%s %s: %w", op, path, err)
}
