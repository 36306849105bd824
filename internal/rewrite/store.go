// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rewrite

// DocumentStore reads and persists documents.
//
// Implementations return [apperr.ReadFailure] from Load and
// [apperr.WriteFailure] from Save.
type DocumentStore interface {
	Load(path string) (*Document, error)
	Save(doc *Document, text string) error
}
