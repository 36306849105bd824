// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command imagefix rewrites plain img tags in the DarkMode component into
// next/image elements, in place.
//
// # Run Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (defaults need none).
//  3. Compile the rewrite rules.
//  4. Read, rewrite and overwrite the target file.
//
// Running it again on an already fixed file changes nothing.
package main

import (
	"log/slog"
	"os"

	"github.com/taibuivan/imagefix/internal/platform/apperr"
	"github.com/taibuivan/imagefix/internal/platform/config"
	"github.com/taibuivan/imagefix/internal/platform/constants"
	"github.com/taibuivan/imagefix/internal/rewrite"
	"github.com/taibuivan/imagefix/pkg/uuidv7"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	runID := uuidv7.New()
	log := newLogger(slog.LevelInfo, runID)
	slog.SetDefault(log)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug, runID)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Debug("configuration_loaded",
		slog.String("target_path", cfg.TargetPath),
		slog.Bool("default_rules", cfg.IsDefault()),
		slog.Bool("dry_run", cfg.DryRun),
	)

	// ── 3. Rules ──────────────────────────────────────────────────────────
	rules, err := rewrite.NewRules(cfg.AnchorLine, cfg.ImportLine, cfg.MatchPattern, cfg.Replacement)
	must(log, err, "compile rewrite rules")

	// ── 4. Rewrite ────────────────────────────────────────────────────────
	svc := rewrite.NewService(rewrite.NewFileStore(), rules, log, cfg.DryRun)
	_, err = svc.Run(cfg.TargetPath)
	must(log, err, "rewrite "+cfg.TargetPath)
}

func newLogger(level slog.Level, runID string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With(
		slog.String("app", constants.AppName),
		slog.String("run_id", runID),
	)
}

// must logs a structured fatal error and terminates the process if err is non-nil.
func must(log *slog.Logger, err error, context string) {
	if err == nil {
		return
	}

	attrs := []any{
		slog.String("context", context),
		slog.Any("error", err),
	}
	if ae := apperr.As(err); ae != nil {
		attrs = append(attrs, slog.String("code", ae.Code))
		for _, d := range ae.Details {
			attrs = append(attrs, slog.String("field."+d.Field, d.Message))
		}
	}

	log.Error("run failure", attrs...)
	os.Exit(apperr.ExitCode(err))
}
