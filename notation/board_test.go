// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation_test

import (
	"testing"

	"github.com/zurichess/klondike/engine"
	"github.com/zurichess/klondike/notation"
)

const sampleBoard = `
Stock: 5♣3♣6♦Q♦A♠5♦K♠4♥5♥4♣7♠Q♣J♣6♠2♥2♣3♠9♥K♦7♦7♥J♠A♦8♣
Tableau1: |9♦
Tableau2: 7♣|9♣
Tableau3: A♣2♠|3♦
Tableau4: K♥T♠T♣|T♦
Tableau5: 8♠Q♥6♥6♣|J♦
Tableau6: 8♥Q♠5♠3♥K♣|4♦
Tableau7: 8♦A♥9♠J♥2♦4♠|T♥
DrawCount: 1
`

func TestParseSampleBoardToBoardSpec(t *testing.T) {
	board, err := notation.Parse(sampleBoard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	spec := board.ToBoardSpec()
	if spec.DrawCount != 1 {
		t.Errorf("DrawCount = %d, want 1", spec.DrawCount)
	}
	if len(spec.Stock) != 24 {
		t.Errorf("len(Stock) = %d, want 24", len(spec.Stock))
	}

	// Tableau1 is "|9♦": no face-down prefix, one face-up card.
	if len(spec.Tableaus[0]) != 1 || spec.TableauFaceUp[0] != 1 {
		t.Errorf("Tableau1 = %v (faceUp %d), want one face-up card", spec.Tableaus[0], spec.TableauFaceUp[0])
	}
	// Tableau7 is "8♦A♥9♠J♥2♦4♠|T♥": six face-down, one face-up.
	if len(spec.Tableaus[6]) != 7 || spec.TableauFaceUp[6] != 1 {
		t.Errorf("Tableau7 = %v (faceUp %d), want 7 cards with 1 face-up", spec.Tableaus[6], spec.TableauFaceUp[6])
	}

	// A board this otherwise-standard should load into Engine cleanly:
	// all 52 cards accounted for with no duplicates.
	eng := engine.NewEngine(engine.Options{}, nil)
	if err := eng.SetBoard(spec); err != nil {
		t.Fatalf("SetBoard: %v", err)
	}
}

func TestParseFoundationLine(t *testing.T) {
	board, err := notation.Parse("Foundation2: A♦2♦3♦\nDrawCount: 1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	top := board.Foundations[1]
	if top.IsUnknown() || top.Rank != 2 || top.Suit != engine.Diamonds {
		t.Errorf("Foundation2 top = %+v, want Three of Diamonds", top)
	}
	for i, c := range board.Foundations {
		if i != 1 && !c.IsUnknown() {
			t.Errorf("Foundation%d = %+v, want Unknown", i+1, c)
		}
	}
}

func TestPrettyStringRoundTrip(t *testing.T) {
	board, err := notation.Parse(sampleBoard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	reparsed, err := notation.Parse(board.PrettyString())
	if err != nil {
		t.Fatalf("Parse(PrettyString()): %v", err)
	}

	specA, specB := board.ToBoardSpec(), reparsed.ToBoardSpec()
	if len(specA.Stock) != len(specB.Stock) {
		t.Errorf("round-tripped Stock length = %d, want %d", len(specB.Stock), len(specA.Stock))
	}
	for i := range specA.Tableaus {
		if len(specA.Tableaus[i]) != len(specB.Tableaus[i]) || specA.TableauFaceUp[i] != specB.TableauFaceUp[i] {
			t.Errorf("round-tripped Tableau%d = %v (faceUp %d), want %v (faceUp %d)",
				i+1, specB.Tableaus[i], specB.TableauFaceUp[i], specA.Tableaus[i], specA.TableauFaceUp[i])
		}
	}
}

func TestDrawCountOnlyAcceptsOneOrThree(t *testing.T) {
	board := notation.NewBoard()
	board.SetDrawCount(5)
	if got := board.DrawCount(); got != 1 {
		t.Errorf("DrawCount() after SetDrawCount(5) = %d, want 1 (fallback)", got)
	}
	board.SetDrawCount(3)
	if got := board.DrawCount(); got != 3 {
		t.Errorf("DrawCount() after SetDrawCount(3) = %d, want 3", got)
	}
}

// TestDrawResetsVisibleCountOnShortFinalDraw covers a draw_count=3
// stock whose size isn't a multiple of 3: the final draw only exposes
// 1 card, and VisibleCount must drop back to 1 (not stay at the
// previous draw's 3), matching the reference board's
// `visible_count = num.max(1)` on every non-redeal draw.
func TestDrawResetsVisibleCountOnShortFinalDraw(t *testing.T) {
	board := notation.NewBoard()
	board.SetDrawCount(3)
	board.Stock = []engine.Card{
		engine.NewCardRankSuit(0, 0),
		engine.NewCardRankSuit(1, 0),
		engine.NewCardRankSuit(2, 0),
		engine.NewCardRankSuit(3, 0),
	}

	board.Draw() // draws 3, exposes stock[1..3]
	if board.Waste.VisibleCount != 3 {
		t.Fatalf("VisibleCount after first draw = %d, want 3", board.Waste.VisibleCount)
	}

	board.Draw() // only 1 card left in stock
	if len(board.Stock) != 0 {
		t.Fatalf("Stock after second draw = %v, want empty", board.Stock)
	}
	if board.Waste.VisibleCount != 1 {
		t.Errorf("VisibleCount after short final draw = %d, want 1 (reset, not stale 3)", board.Waste.VisibleCount)
	}
}

func TestDrawRotatesIntoRedeal(t *testing.T) {
	board := notation.NewBoard()
	board.SetDrawCount(1)
	board.Stock = []engine.Card{engine.NewCardRankSuit(0, 0)}
	board.Draw()
	if len(board.Stock) != 0 || len(board.Waste.Cards) != 1 {
		t.Fatalf("after first Draw: Stock=%v Waste=%v", board.Stock, board.Waste.Cards)
	}
	if !board.NeedRedeal() {
		t.Fatal("NeedRedeal() = false with empty stock and non-empty waste")
	}
	board.Draw() // performs the redeal
	if len(board.Stock) != 1 || len(board.Waste.Cards) != 0 {
		t.Fatalf("after redeal: Stock=%v Waste=%v", board.Stock, board.Waste.Cards)
	}
}
