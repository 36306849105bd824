// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rewrite

import (
	"regexp"
	"strings"

	"github.com/taibuivan/imagefix/internal/platform/constants"
)

// Rules is the compiled form of the rewrite configuration.
type Rules struct {
	AnchorLine  string
	ImportLine  string
	Pattern     *regexp.Regexp
	Replacement string
}

// NewRules compiles pattern and bundles it with the import lines.
func NewRules(anchorLine, importLine, pattern, replacement string) (*Rules, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Rules{
		AnchorLine:  anchorLine,
		ImportLine:  importLine,
		Pattern:     re,
		Replacement: replacement,
	}, nil
}

// DefaultRules returns the built-in DarkMode rules.
func DefaultRules() *Rules {
	return &Rules{
		AnchorLine:  constants.DefaultAnchorLine,
		ImportLine:  constants.DefaultImportLine,
		Pattern:     regexp.MustCompile(constants.DefaultMatchPattern),
		Replacement: constants.DefaultReplacement,
	}
}

// # Rules

// InsertImport places the import line on the line after the first anchor.
//
// It is a no-op when the import line already appears anywhere in text, and
// also when the anchor is missing.
func (r *Rules) InsertImport(text string) (string, bool) {
	if strings.Contains(text, r.ImportLine) {
		return text, false
	}
	if !strings.Contains(text, r.AnchorLine) {
		return text, false
	}

	return strings.Replace(text, r.AnchorLine, r.AnchorLine+"\n"+r.ImportLine, 1), true
}

// ReplaceTags rewrites every non-overlapping match of the pattern, leftmost
// first. Text outside the matches is copied unchanged.
func (r *Rules) ReplaceTags(text string) (string, []Occurrence) {
	matches := r.Pattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, nil
	}

	var (
		b     strings.Builder
		out   []byte
		occs  = make([]Occurrence, 0, len(matches))
		start int
	)
	b.Grow(len(text))

	for _, m := range matches {
		b.WriteString(text[start:m[0]])

		out = r.Pattern.ExpandString(out[:0], r.Replacement, text, m)
		b.Write(out)

		occ := Occurrence{Offset: m[0]}
		if len(m) >= 4 && m[2] >= 0 {
			occ.Expr = text[m[2]:m[3]]
		}
		occs = append(occs, occ)

		start = m[1]
	}
	b.WriteString(text[start:])

	return b.String(), occs
}

// Apply runs import insertion and then tag substitution.
func (r *Rules) Apply(text string) *Result {
	text, inserted := r.InsertImport(text)
	text, occs := r.ReplaceTags(text)

	return &Result{
		Text:           text,
		ImportInserted: inserted,
		Occurrences:    occs,
	}
}
