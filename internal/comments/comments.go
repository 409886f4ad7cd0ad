// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package comments maps file types to their line comment prefixes.
package comments

import (
	"path/filepath"
	"strings"
)

// byExtension maps a file extension to the line comment prefix used by
// that language, without the trailing space.
var byExtension = map[string]string{
	// Hash comments.
	".py":         "#",
	".pyi":        "#",
	".sh":         "#",
	".bash":       "#",
	".zsh":        "#",
	".fish":       "#",
	".rb":         "#",
	".pl":         "#",
	".pm":         "#",
	".r":          "#",
	".jl":         "#",
	".tcl":        "#",
	".yaml":       "#",
	".yml":        "#",
	".toml":       "#",
	".mk":         "#",
	".cmake":      "#",
	".tf":         "#",
	".tfvars":     "#",
	".nix":        "#",
	".ps1":        "#",
	".dockerfile": "#",

	// Slash comments.
	".go":     "//",
	".c":      "//",
	".h":      "//",
	".cc":     "//",
	".cpp":    "//",
	".cxx":    "//",
	".hh":     "//",
	".hpp":    "//",
	".cs":     "//",
	".java":   "//",
	".kt":     "//",
	".kts":    "//",
	".scala":  "//",
	".swift":  "//",
	".rs":     "//",
	".js":     "//",
	".mjs":    "//",
	".cjs":    "//",
	".jsx":    "//",
	".ts":     "//",
	".tsx":    "//",
	".dart":   "//",
	".proto":  "//",
	".php":    "//",
	".zig":    "//",
	".groovy": "//",
	".m":      "//",
	".mm":     "//",

	// Everything else.
	".sql":  "--",
	".lua":  "--",
	".hs":   "--",
	".lhs":  "--",
	".elm":  "--",
	".vhd":  "--",
	".vhdl": "--",
	".lisp": ";",
	".el":   ";",
	".clj":  ";",
	".cljs": ";",
	".cljc": ";",
	".scm":  ";",
	".rkt":  ";",
	".ini":  ";",
	".tex":  "%",
	".sty":  "%",
	".cls":  "%",
	".erl":  "%",
	".hrl":  "%",
	".vim":  "\"",
}

// byBasename covers well-known files that carry no extension.
var byBasename = map[string]string{
	"Makefile":   "#",
	"makefile":   "#",
	"Dockerfile": "#",
	"Rakefile":   "#",
}

// ForFile returns the line comment prefix for the file at path, based
// on its extension (or, for extensionless files like Makefile, its
// base name). The prefix comes without a trailing space. It reports
// false when the file type is not recognized.
func ForFile(path string) (prefix string, ok bool) {
	base := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(base))
	if ext == "" {
		prefix, ok = byBasename[base]
		return prefix, ok
	}
	prefix, ok = byExtension[ext]
	return prefix, ok
}
