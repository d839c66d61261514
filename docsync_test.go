package docsync_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/docsync"
	"github.com/aretw0/docsync/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSync_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.rs"), []byte("fn main() {}\n"), 0644))
	docPath := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(docPath,
		[]byte("A\n<!-- INCLUDE-RUST: lib.rs -->\n```rust\nOLD\n```\nB\n"), 0644))

	changed, err := docsync.Sync(docPath, docsync.WithLogger(logging.NewNop()))
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := os.ReadFile(docPath)
	require.NoError(t, err)
	assert.Equal(t,
		"A\n<!-- INCLUDE-RUST: lib.rs -->\n```rust\nfn main() {}\n```\nB\n",
		string(got))

	changed, err = docsync.Sync(docPath)
	require.NoError(t, err)
	assert.False(t, changed, "sync must be idempotent")
}

func TestCheck_ReportsDrift(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.rs"), []byte("fresh()\n"), 0644))
	docPath := filepath.Join(dir, "README.md")
	content := "<!-- INCLUDE-RUST: lib.rs -->\n```rust\nstale()\n```\n"
	require.NoError(t, os.WriteFile(docPath, []byte(content), 0644))

	drift, err := docsync.Check(docPath)
	require.NoError(t, err)
	assert.True(t, drift.Changed)
	assert.Equal(t, content, string(drift.Original))
	assert.Contains(t, string(drift.Synced), "fresh()")

	onDisk, err := os.ReadFile(docPath)
	require.NoError(t, err)
	assert.Equal(t, content, string(onDisk), "check must not write")
}
