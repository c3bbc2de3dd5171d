// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"container/heap"
	"testing"
)

func TestMovePacking(t *testing.T) {
	cases := []struct {
		from, to, count uint8
		flip            bool
	}{
		{0, 1, 1, false},
		{PileTableauStart, PileFoundationStart, 1, true},
		{PileTableauEnd, PileTableauStart, 13, false},
	}
	for _, c := range cases {
		m := NewMove(c.from, c.to, c.count, c.flip)
		if m.From() != c.from || m.To() != c.to || m.Count() != c.count || m.Flip() != c.flip {
			t.Errorf("NewMove(%d,%d,%d,%v) round-trip = (%d,%d,%d,%v)",
				c.from, c.to, c.count, c.flip, m.From(), m.To(), m.Count(), m.Flip())
		}
	}
}

func TestNullMove(t *testing.T) {
	if !NullMove.IsNull() {
		t.Error("NullMove.IsNull() = false")
	}
	m := NewMove(1, 2, 1, false)
	if m.IsNull() {
		t.Error("non-null move reports IsNull() = true")
	}
}

func TestEstimateTotalSaturates(t *testing.T) {
	e := Estimate{Current: 200, Remaining: 200}
	if got := e.Total(); got != 255 {
		t.Errorf("Total() = %d, want 255 (saturated)", got)
	}
	e = Estimate{Current: 10, Remaining: 20}
	if got := e.Total(); got != 30 {
		t.Errorf("Total() = %d, want 30", got)
	}
}

func TestOpenQueueOrdersByPriorityThenSeq(t *testing.T) {
	q := &openQueue{}
	heap.Init(q)

	heap.Push(q, openNode{nodeIndex: 1, priority: 5, seq: 0})
	heap.Push(q, openNode{nodeIndex: 2, priority: 1, seq: 1})
	heap.Push(q, openNode{nodeIndex: 3, priority: 1, seq: 2})
	heap.Push(q, openNode{nodeIndex: 4, priority: 3, seq: 3})

	var order []uint32
	for q.Len() > 0 {
		order = append(order, heap.Pop(q).(openNode).nodeIndex)
	}

	want := []uint32{2, 3, 4, 1}
	if len(order) != len(want) {
		t.Fatalf("pop order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("pop order = %v, want %v", order, want)
		}
	}
}
