// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solvecache

import (
	"errors"
	"testing"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestGetOnEmptyCacheReturnsErrNotFound(t *testing.T) {
	c := openTestCache(t)
	if _, err := c.Get("some board text"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on empty cache = %v, want ErrNotFound", err)
	}
}

func TestPutThenGetRoundTrips(t *testing.T) {
	c := openTestCache(t)
	rec := Record{
		Actions:         "D W:F1 R",
		States:          166066,
		Minimal:         true,
		FoundationScore: 104,
	}
	if err := c.Put("board-text", rec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := c.Get("board-text")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Actions != rec.Actions || got.States != rec.States || got.Minimal != rec.Minimal || got.FoundationScore != rec.FoundationScore {
		t.Errorf("Get = %+v, want %+v (modulo CachedAt)", got, rec)
	}
	if got.CachedAt.IsZero() {
		t.Error("Get: CachedAt was not stamped by Put")
	}
}

func TestDistinctBoardTextsDoNotCollide(t *testing.T) {
	c := openTestCache(t)
	if err := c.Put("board A", Record{States: 1}); err != nil {
		t.Fatalf("Put A: %v", err)
	}
	if err := c.Put("board B", Record{States: 2}); err != nil {
		t.Fatalf("Put B: %v", err)
	}

	a, err := c.Get("board A")
	if err != nil {
		t.Fatalf("Get A: %v", err)
	}
	b, err := c.Get("board B")
	if err != nil {
		t.Fatalf("Get B: %v", err)
	}
	if a.States != 1 || b.States != 2 {
		t.Errorf("Get A/B = %+v / %+v, want States 1 and 2", a, b)
	}
}

func TestPutOverwritesExistingRecord(t *testing.T) {
	c := openTestCache(t)
	if err := c.Put("board-text", Record{States: 1}); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	if err := c.Put("board-text", Record{States: 2}); err != nil {
		t.Fatalf("second Put: %v", err)
	}
	got, err := c.Get("board-text")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.States != 2 {
		t.Errorf("Get after overwrite = %+v, want States 2", got)
	}
}
