/*
Package docsync keeps documentation code samples in sync with their
source-of-truth files.

A document opts in with an include marker on its own line:

	<!-- INCLUDE-RUST: examples/simulated_device_and_reader.rs -->

The contents of the first fenced code block tagged "rust" after the marker
are replaced with the referenced file, verbatim. Differently tagged fences
pass through untouched. After injection, lines consisting of a "//" or
"//!" comment prefix followed only by whitespace are trimmed to the bare
prefix, since generated Rust examples tend to carry them.

The document is rewritten in place only when the synced rendering differs
byte-for-byte from what is on disk, and the write goes through a sibling
temp file and rename so readers never observe a partial document. If any
referenced file is missing the whole operation fails and the document is
left exactly as it was.

# Usage

	changed, err := docsync.Sync("README.md")
	if err != nil {
		log.Fatal(err)
	}
	if changed {
		fmt.Println("README.md updated")
	}

The docsync command in cmd/docsync wraps the same operations for CI and
pre-commit use.
*/
package docsync
