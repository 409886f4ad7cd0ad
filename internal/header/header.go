// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package header rewrites the leading comment block of text files to
// match a canonical license header.
//
// A file's leading lines are partitioned into three regions: lines
// matching a keep-before prefix (a shebang, for example) are preserved
// verbatim ahead of the header, lines matching a keep-after prefix are
// preserved verbatim after it, and the remaining comment lines form the
// header region, the only part subject to replacement. Everything from
// the first line that is neither a comment nor a keep line onward is
// the file body and is carried through byte-for-byte.
package header

import (
	"bufio"
	"bytes"
	"io"
	"slices"
)

// File is the subset of [*os.File] that [Fixer.Fix] needs to rewrite a
// file in place.
type File interface {
	io.ReadWriteSeeker
	Truncate(size int64) error
}

// Fixer describes the canonical license header and how to recognize it
// in a file. The zero value matches an empty header with an empty
// prefix, which is rarely what you want.
type Fixer struct {
	// Lines are the canonical header lines, without comment prefix or
	// line ending, already trimmed of surrounding whitespace.
	Lines [][]byte

	// Prefix is the comment prefix that precedes every written header
	// line and identifies header lines while scanning (usually the
	// comment marker plus a space, e.g. "# " or "// ").
	Prefix []byte

	// KeepBefore lists raw-line prefixes whose matching leading lines
	// are kept verbatim ahead of the header.
	KeepBefore [][]byte

	// KeepAfter lists raw-line prefixes whose matching leading lines
	// are kept verbatim after the header, separated from it by one
	// blank line.
	KeepAfter [][]byte
}

var (
	lf   = []byte("\n")
	crlf = []byte("\r\n")
)

// Fix checks whether f already begins with the canonical header and, if
// not, rewrites it in place so that it does. It reports whether the
// file was modified.
//
// The file's line ending is detected once, from its first physical
// line, and used for every line Fix writes. A file is considered
// conforming only when its header lines match exactly and the body is
// separated from the header by a blank line; a matching header with the
// body running immediately after it is still rewritten.
//
// Fix leaves the file open and makes no attempt at atomicity: a failed
// write can leave the file partially rewritten.
func (fx *Fixer) Fix(f File) (modified bool, err error) {
	br := bufio.NewReader(f)

	line, err := readLine(br)
	if err != nil {
		return false, err
	}

	ending := lf
	if bytes.HasSuffix(line, crlf) {
		ending = crlf
	}

	var (
		before, after bytes.Buffer
		got           [][]byte
	)
	// Keep-before and keep-after checks are made on the raw line and
	// take priority over treating it as header content, so a comment
	// prefix that is a proper prefix of a keep prefix ("#" vs. "#!")
	// classifies correctly.
	for len(line) > 0 && (bytes.HasPrefix(line, fx.Prefix) || matchesAny(line, fx.KeepBefore)) {
		switch {
		case matchesAny(line, fx.KeepBefore):
			before.Write(line)
		case matchesAny(line, fx.KeepAfter):
			after.Write(line)
		default:
			got = append(got, bytes.TrimSpace(line[len(fx.Prefix):]))
		}
		line, err = readLine(br)
		if err != nil {
			return false, err
		}
	}

	rest, err := io.ReadAll(br)
	if err != nil {
		return false, err
	}
	remainder := append(line, rest...)

	if slices.EqualFunc(got, fx.Lines, bytes.Equal) &&
		(len(remainder) == 0 || bytes.HasPrefix(remainder, ending)) {
		return false, nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	if err := f.Truncate(0); err != nil {
		return false, err
	}

	w := bufio.NewWriter(f)
	w.Write(before.Bytes())
	for _, l := range fx.Lines {
		w.Write(fx.Prefix)
		w.Write(l)
		w.Write(ending)
	}
	if after.Len() > 0 {
		w.Write(ending)
		w.Write(after.Bytes())
	}
	if len(remainder) > 0 && !bytes.HasPrefix(remainder, ending) {
		w.Write(ending)
	}
	w.Write(remainder)

	return true, w.Flush()
}

// readLine reads a single line including its line ending. At the end of
// the file it returns whatever bytes remain (possibly none) and no
// error; subsequent calls return an empty line.
func readLine(br *bufio.Reader) ([]byte, error) {
	line, err := br.ReadBytes('\n')
	if err == io.EOF {
		err = nil
	}
	return line, err
}

func matchesAny(line []byte, prefixes [][]byte) bool {
	for _, p := range prefixes {
		if bytes.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
