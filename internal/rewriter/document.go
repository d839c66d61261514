package rewriter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/docsync/internal/atomicfile"
)

// FileResolver returns a ResolveFunc that reads referenced files from disk.
// Relative references resolve against dir, the document's own directory, so
// results do not depend on the caller's working directory.
func FileResolver(dir string) ResolveFunc {
	return func(ref string) ([]byte, error) {
		path := ref
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrMissingReference, ref)
			}
			return nil, errContext("read referenced file", ref, err)
		}
		return data, nil
	}
}

// ProcessFile syncs the document at path in place. It reports whether the
// document was actually rewritten. Nothing is written unless the synced
// rendering differs byte-for-byte from what is on disk, and the write
// itself goes through a temp-file-and-rename so no partial document is
// ever visible.
func (r *Rewriter) ProcessFile(path string) (changed bool, err error) {
	_, synced, changed, err := r.CheckFile(path)
	if err != nil {
		return false, err
	}
	if !changed {
		r.logger.Debug("Document already in sync", "path", path)
		return false, nil
	}

	if err := atomicfile.WriteFile(path, synced); err != nil {
		return false, errContext("replace document", path, err)
	}
	r.logger.Info("Document updated", "path", path, "bytes", len(synced))
	return true, nil
}

// CheckFile runs the scan without writing anything. It returns the document
// as it is on disk, its synced rendering, and whether they differ.
func (r *Rewriter) CheckFile(path string) (original, synced []byte, changed bool, err error) {
	original, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, false, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return nil, nil, false, errContext("read document", path, err)
	}

	synced, err = r.Rewrite(original, FileResolver(filepath.Dir(path)))
	if err != nil {
		return nil, nil, false, err
	}

	return original, synced, !bytes.Equal(original, synced), nil
}
