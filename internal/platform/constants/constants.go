// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for imagefix.

Categories:

  - Metadata: application name and version used in log entries.
  - Rewrite Defaults: the literal target path, import lines and tag templates.
  - Filesystem: the mode used when the target has to be created.

The defaults target the DarkMode component of the marketing site. Changing
them changes the default behavior of the command.
*/
package constants

import "io/fs"

// # Metadata

const (
	AppName    = "imagefix"
	AppVersion = "0.1.0-dev"
)

// # Rewrite Defaults

const (
	// DefaultTargetPath is the file rewritten when no override is configured.
	DefaultTargetPath = "src/components/DarkMode.tsx"

	// DefaultAnchorLine is the import the new import is placed after.
	DefaultAnchorLine = "import React from 'react';"

	// DefaultImportLine is inserted when absent from the document.
	DefaultImportLine = "import Image from 'next/image';"

	// DefaultMatchPattern matches the exact img template. Group 1 is the
	// src expression.
	DefaultMatchPattern = `<img alt="" className="block max-w-none size-full" src=\{([^}]+)\} />`

	// DefaultReplacement rewrites a match into a next/image element.
	// There is no space before "fill"; existing output depends on it.
	DefaultReplacement = `<Image alt="" className="block max-w-none size-full" src={${1}}fill unoptimized />`
)

// # Filesystem

// DefaultFileMode is applied when the target does not exist at write time.
const DefaultFileMode fs.FileMode = 0o644

// # Log Messages

// CompletionNotice is logged once the rewrite finished.
const CompletionNotice = "Replaced img tags with Image components."
