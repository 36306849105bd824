// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rewrite

import (
	"log/slog"

	"github.com/taibuivan/imagefix/internal/platform/constants"
)

// Service runs one read, transform, write cycle.
type Service struct {
	store  DocumentStore
	rules  *Rules
	log    *slog.Logger
	dryRun bool
}

// NewService constructs a new [Service].
func NewService(store DocumentStore, rules *Rules, log *slog.Logger, dryRun bool) *Service {
	return &Service{
		store:  store,
		rules:  rules,
		log:    log,
		dryRun: dryRun,
	}
}

// Run rewrites the document at path.
//
// A read failure returns before anything is written. The file is always
// written on success, even when the rules changed nothing, unless the
// service is in dry-run mode.
func (s *Service) Run(path string) (*Result, error) {
	doc, err := s.store.Load(path)
	if err != nil {
		return nil, err
	}

	res := s.rules.Apply(doc.Text)

	if res.ImportInserted {
		s.log.Debug("import_inserted", slog.String("line", s.rules.ImportLine))
	}
	for _, occ := range res.Occurrences {
		s.log.Debug("tag_replaced",
			slog.Int("offset", occ.Offset),
			slog.String("expr", occ.Expr),
		)
	}

	if !s.dryRun {
		if err := s.store.Save(doc, res.Text); err != nil {
			return nil, err
		}
	}

	s.log.Info(constants.CompletionNotice,
		slog.String("path", doc.Path),
		slog.Bool("import_inserted", res.ImportInserted),
		slog.Int("replacements", res.Replacements()),
		slog.Bool("dry_run", s.dryRun),
	)

	return res, nil
}
