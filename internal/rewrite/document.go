// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package rewrite implements the in-place image tag rewrite.

A run reads one [Document], applies two rules in order and writes the result
back to the same path:

  - Import insertion: add the import line after the anchor line when absent.
  - Tag substitution: replace every exact match of the tag template.

Both rules are idempotent, so running the command twice leaves the file as the
first run left it.
*/
package rewrite

import "io/fs"

// # Domain Model

// Document is the full text of the target artifact.
type Document struct {
	// Path is where the document was read from and will be written to.
	Path string
	// Text is the raw content, unmodified.
	Text string
	// Mode is the permission bits observed at load time.
	Mode fs.FileMode
}

// Occurrence is one replaced tag.
type Occurrence struct {
	// Offset is the byte offset of the match in the input text.
	Offset int
	// Expr is the captured src expression, copied verbatim into the output.
	Expr string
}

// Result is the outcome of applying the rules to a text.
type Result struct {
	Text           string
	ImportInserted bool
	Occurrences    []Occurrence
}

// Replacements returns how many tags were rewritten.
func (r *Result) Replacements() int {
	return len(r.Occurrences)
}

// Changed reports whether the output differs from the input.
func (r *Result) Changed() bool {
	return r.ImportInserted || len(r.Occurrences) > 0
}
