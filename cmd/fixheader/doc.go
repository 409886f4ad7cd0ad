// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Fixheader normalizes the license header of text files.

It is designed to run as a pre-commit hook: for each file given on the
command line it checks whether the file's leading comment block matches
the expected header and, when it doesn't, rewrites the file in place.
Lines matching a -keep-before prefix (a shebang, for example) are
preserved ahead of the header; lines matching a -keep-after prefix are
preserved right after it.

The header is built from the first lines of -license-file (when given)
followed by any -add lines. The comment prefix is either set explicitly
with -comment-prefix or inferred per file from its extension.

# Usage

	$ fixheader [flags...] <file>...

Fixheader exits with status 0 when no file needed changes and with a
nonzero status when at least one file was rewritten, printing the path
of every rewritten file to standard output.

If a header line carries a copyright notice whose end year is not the
current year, a warning is printed to standard error; this never affects
the outcome.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/fixheader/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
