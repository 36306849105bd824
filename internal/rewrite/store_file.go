// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rewrite

import (
	"os"

	"github.com/taibuivan/imagefix/internal/platform/apperr"
	"github.com/taibuivan/imagefix/internal/platform/constants"
)

// FileStore is the filesystem-backed [DocumentStore].
//
// Save overwrites the file directly. There is no backup and no rename.
type FileStore struct{}

// NewFileStore creates a new [FileStore].
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Load reads the whole file at path.
func (s *FileStore) Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, apperr.ReadFailure(path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.ReadFailure(path, err)
	}

	return &Document{
		Path: path,
		Text: string(data),
		Mode: info.Mode().Perm(),
	}, nil
}

// Save replaces the content of doc.Path with text.
func (s *FileStore) Save(doc *Document, text string) error {
	mode := doc.Mode
	if mode == 0 {
		mode = constants.DefaultFileMode
	}

	if err := os.WriteFile(doc.Path, []byte(text), mode); err != nil {
		return apperr.WriteFailure(doc.Path, err)
	}
	return nil
}
