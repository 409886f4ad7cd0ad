// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package syncx

import (
	"errors"
	"testing"

	"go.astrophena.name/fixheader/internal/testutil"
)

func TestLazyGet(t *testing.T) {
	t.Parallel()

	var (
		l     Lazy[int]
		calls int
	)
	f := func() int {
		calls++
		return 42
	}

	testutil.AssertEqual(t, l.Get(f), 42)
	testutil.AssertEqual(t, l.Get(f), 42)
	testutil.AssertEqual(t, calls, 1)
}

func TestLazyGetErr(t *testing.T) {
	t.Parallel()

	var (
		l       Lazy[string]
		calls   int
		wantErr = errors.New("compute failed")
	)
	f := func() (string, error) {
		calls++
		return "", wantErr
	}

	_, err := l.GetErr(f)
	if !errors.Is(err, wantErr) {
		t.Fatalf("got error %v, want %v", err, wantErr)
	}
	// The error is remembered, not recomputed.
	_, err = l.GetErr(f)
	if !errors.Is(err, wantErr) {
		t.Fatalf("got error %v, want %v", err, wantErr)
	}
	testutil.AssertEqual(t, calls, 1)
}
