// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.astrophena.name/fixheader/internal/cli"
	"go.astrophena.name/fixheader/internal/comments"
	"go.astrophena.name/fixheader/internal/header"
	"go.astrophena.name/fixheader/internal/license"
	"go.astrophena.name/fixheader/internal/logger"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

func main() { cli.Main(new(app)) }

type app struct {
	licenseFile string
	start       int
	num         int
	add         repeatedFlag
	keepBefore  repeatedFlag
	keepAfter   repeatedFlag
	prefix      string
	verbose     bool

	now func() time.Time
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.licenseFile, "license-file", "", "Read header lines from `file`.")
	fs.IntVar(&a.start, "start", 0, "Number of license file lines to skip.")
	fs.IntVar(&a.num, "num", 1, "Number of license file lines to copy.")
	fs.Var(&a.add, "add", "Add `line` to the header after any license file lines. Can be specified multiple times.")
	fs.Var(&a.keepBefore, "keep-before", "Keep lines starting with `prefix` before the header. Can be specified multiple times.")
	fs.Var(&a.keepAfter, "keep-after", "Keep lines starting with `prefix` after the header. Can be specified multiple times.")
	fs.StringVar(&a.prefix, "comment-prefix", "", "Comment `prefix` to use. If empty, it is inferred from each file's extension.")
	fs.BoolVar(&a.verbose, "verbose", false, "Log the outcome for every processed file.")
}

// repeatedFlag is a string flag that can be specified multiple times.
type repeatedFlag []string

func (f *repeatedFlag) String() string { return strings.Join(*f, ",") }

func (f *repeatedFlag) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) == 0 {
		return fmt.Errorf("%w: at least one file is required", cli.ErrInvalidArgs)
	}

	l := logger.New(nil)
	if a.verbose {
		l.Level.Set(slog.LevelDebug)
	}
	l.Attach(tint.NewHandler(env.Stderr, &tint.Options{
		Level:   l.Level,
		NoColor: !isTerminal(env.Stderr),
	}))
	ctx = logger.Put(ctx, l)

	lines, err := a.headerLines()
	if err != nil {
		return err
	}

	if a.now == nil {
		a.now = time.Now
	}
	cur := a.now().Year()
	for _, line := range lines {
		if year, ok := license.Year(line); ok && year != cur {
			logger.Warn(ctx, "copyright year in header is out of date",
				slog.Int("header", year),
				slog.Int("current", cur),
			)
		}
	}

	fx := &header.Fixer{
		Lines:      lines,
		KeepBefore: toBytes(a.keepBefore),
		KeepAfter:  toBytes(a.keepAfter),
	}

	var modified bool
	for _, path := range env.Args {
		prefix := a.prefix
		if prefix == "" {
			p, ok := comments.ForFile(path)
			if !ok {
				return fmt.Errorf("%w: no known comment prefix for %q, pass -comment-prefix", cli.ErrInvalidArgs, path)
			}
			prefix = p
		}
		fx.Prefix = []byte(prefix + " ")

		changed, err := fixFile(fx, path)
		if err != nil {
			return err
		}
		if changed {
			fmt.Fprintf(env.Stdout, "Updated license header in %s\n", path)
			modified = true
		}
		logger.Debug(ctx, "processed file",
			slog.String("file", path),
			slog.Bool("modified", changed),
		)
	}

	if modified {
		return cli.ErrExitFailure
	}
	return nil
}

// headerLines builds the canonical header: the license file excerpt, if
// any, followed by the -add lines.
func (a *app) headerLines() ([][]byte, error) {
	var lines [][]byte
	if a.licenseFile != "" {
		var err error
		lines, err = license.Lines(a.licenseFile, a.start, a.num)
		if err != nil {
			return nil, err
		}
	}
	for _, l := range a.add {
		lines = append(lines, []byte(l))
	}
	return lines, nil
}

func fixFile(fx *header.Fixer, path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return false, err
	}
	defer f.Close()
	return fx.Fix(f)
}

func toBytes(ss []string) [][]byte {
	var bs [][]byte
	for _, s := range ss {
		bs = append(bs, []byte(s))
	}
	return bs
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
