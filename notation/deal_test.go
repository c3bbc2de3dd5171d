// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import (
	"testing"

	"github.com/zurichess/klondike/engine"
)

func TestNewDealFromSeedIsDeterministic(t *testing.T) {
	a := NewDealFromSeed(12345)
	b := NewDealFromSeed(12345)

	if len(a.Stock) != len(b.Stock) {
		t.Fatalf("Stock length differs across identical seeds: %d vs %d", len(a.Stock), len(b.Stock))
	}
	for i := range a.Stock {
		if a.Stock[i] != b.Stock[i] {
			t.Fatalf("Stock[%d] differs across identical seeds: %v vs %v", i, a.Stock[i], b.Stock[i])
		}
	}
	for col := range a.Tableaus {
		if len(a.Tableaus[col].Cards) != len(b.Tableaus[col].Cards) {
			t.Fatalf("Tableau%d length differs across identical seeds", col+1)
		}
		for i := range a.Tableaus[col].Cards {
			if a.Tableaus[col].Cards[i] != b.Tableaus[col].Cards[i] {
				t.Fatalf("Tableau%d[%d] differs across identical seeds", col+1, i)
			}
		}
	}
}

func TestNewDealFromSeedDifferentSeedsDiffer(t *testing.T) {
	a := NewDealFromSeed(1)
	b := NewDealFromSeed(2)

	same := len(a.Stock) == len(b.Stock)
	if same {
		for i := range a.Stock {
			if a.Stock[i] != b.Stock[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatal("two distinct seeds produced an identical deal")
	}
}

func TestNewDealFromSeedIsALegalDeal(t *testing.T) {
	b := NewDealFromSeed(42)

	seen := map[engine.Card]bool{}
	total := 0
	record := func(c engine.Card) {
		if seen[c] {
			t.Fatalf("card %+v dealt more than once", c)
		}
		seen[c] = true
		total++
	}
	for _, c := range b.Stock {
		record(c)
	}
	for col := 0; col < totalTableaus; col++ {
		want := col + 1
		if len(b.Tableaus[col].Cards) != want {
			t.Errorf("Tableau%d has %d cards, want %d", col+1, len(b.Tableaus[col].Cards), want)
		}
		if b.Tableaus[col].FaceUpCount != 1 {
			t.Errorf("Tableau%d.FaceUpCount = %d, want 1", col+1, b.Tableaus[col].FaceUpCount)
		}
		for _, c := range b.Tableaus[col].Cards {
			record(c)
		}
	}
	if total != 52 {
		t.Errorf("dealt %d distinct cards, want 52", total)
	}
	wantStock := 52 - 28 // 28 cards across the 7 triangular tableaus
	if len(b.Stock) != wantStock {
		t.Errorf("len(Stock) = %d, want %d", len(b.Stock), wantStock)
	}
	if b.DrawCount() != 1 {
		t.Errorf("DrawCount() = %d, want 1", b.DrawCount())
	}
}
