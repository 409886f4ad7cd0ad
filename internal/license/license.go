// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package license extracts header lines from a license file and
// inspects copyright notices.
package license

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
)

// Lines reads num lines from the license file at path, skipping the
// first start lines. Each returned line is trimmed of surrounding
// whitespace. Reading past the end of the file yields empty lines,
// matching how short license files behave when over-read.
func Lines(path string, start, num int) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading license file: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	for range start {
		if _, err := br.ReadBytes('\n'); err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading license file: %w", err)
		}
	}

	var lines [][]byte
	for range num {
		line, err := br.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading license file: %w", err)
		}
		lines = append(lines, bytes.TrimSpace(line))
	}
	return lines, nil
}

var yearRe = regexp.MustCompile(`(?i)copyright\s+(?:\(c\)\s+|©\s+)?(\d{4})(?:\s*-\s*(\d{4}))?`)

// Year reports the final year of the first copyright notice found in
// line: the end year of a "copyright 2021-2024" range, or the single
// year of "copyright 2024". Recognition is case-insensitive. It reports
// false when line carries no recognizable copyright notice.
func Year(line []byte) (int, bool) {
	m := yearRe.FindSubmatch(line)
	if m == nil {
		return 0, false
	}
	y := m[1]
	if len(m[2]) > 0 {
		y = m[2]
	}
	year, err := strconv.Atoi(string(y))
	if err != nil {
		return 0, false
	}
	return year, true
}
