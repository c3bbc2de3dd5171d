// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export_test

import (
	"strings"
	"testing"

	"github.com/zurichess/klondike/engine"
	"github.com/zurichess/klondike/export"
	"github.com/zurichess/klondike/notation"
)

func countToken(encoded, tok string) int {
	n := 0
	for _, f := range strings.Fields(encoded) {
		if f == tok {
			n++
		}
	}
	return n
}

// TestExportWasteMoveRequiringOneRedeal covers a draw_count=3 flip
// move with the stock empty that reaches the waste's top card again
// by cycling the whole talon: it takes exactly one redeal followed by
// one draw, and the exported action list must contain exactly one "R"
// token for it.
func TestExportWasteMoveRequiringOneRedeal(t *testing.T) {
	board := notation.NewBoard()
	board.SetDrawCount(3)
	target := engine.NewCardRankSuit(0, 0) // Ace of Clubs
	board.Waste.Cards = []engine.Card{engine.NewCardRankSuit(4, 1), target}
	board.Waste.VisibleCount = 1

	moves := []engine.Move{
		engine.NewMove(engine.PileWaste, engine.PileFoundationStart, 2, true),
	}

	actions := export.Actions(board, moves)
	encoded := notation.EncodeActions(actions)

	if got := countToken(encoded, "R"); got != 1 {
		t.Errorf("EncodeActions(%v) = %q, contains %d \"R\" tokens, want exactly 1", moves, encoded, got)
	}
	if got := countToken(encoded, "W:F1"); got != 1 {
		t.Errorf("EncodeActions(%v) = %q, want exactly one W:F1 token", moves, encoded)
	}
}

// TestExportFoundationToTableauToken covers unwinding a foundation
// card back onto a tableau to free an opposite-color sequence
// underneath it: the exported action list must contain the
// corresponding F<i>:T<j> token.
func TestExportFoundationToTableauToken(t *testing.T) {
	board := notation.NewBoard()
	board.SetDrawCount(1)
	board.Foundations[0] = engine.NewCardRankSuit(3, 0) // Four of Clubs on foundation 1
	board.Tableaus[2].Cards = []engine.Card{engine.NewCardRankSuit(4, 1)} // Five of Diamonds
	board.Tableaus[2].FaceUpCount = 1

	moves := []engine.Move{
		engine.NewMove(engine.PileFoundationStart, engine.PileTableauStart+2, 1, false),
	}

	actions := export.Actions(board, moves)
	if len(actions) != 1 || actions[0].Kind != notation.ActionFoundationToTableau {
		t.Fatalf("Actions(%v) = %v, want a single ActionFoundationToTableau", moves, actions)
	}
	encoded := notation.EncodeActions(actions)
	if want := "F1:T3"; encoded != want {
		t.Errorf("EncodeActions(%v) = %q, want %q", moves, encoded, want)
	}
}

// TestActionsRoundTripThroughNotation checks that a small, ordinary
// move sequence survives Actions -> EncodeActions -> ParseActions
// unchanged, the path solvecache relies on to persist a solve.
func TestActionsRoundTripThroughNotation(t *testing.T) {
	board := notation.NewBoard()
	board.SetDrawCount(1)
	board.Stock = []engine.Card{engine.NewCardRankSuit(0, 0)}
	board.Tableaus[0].Cards = []engine.Card{engine.NewCardRankSuit(1, 1)}
	board.Tableaus[0].FaceUpCount = 1

	moves := []engine.Move{
		engine.NewMove(engine.PileWaste, engine.PileFoundationStart, 1, false),
	}

	actions := export.Actions(board, moves)
	encoded := notation.EncodeActions(actions)
	decoded, err := notation.ParseActions(encoded)
	if err != nil {
		t.Fatalf("ParseActions(%q): %v", encoded, err)
	}
	if len(decoded) != len(actions) {
		t.Fatalf("round-trip action count = %d, want %d", len(decoded), len(actions))
	}
	for i := range actions {
		if decoded[i] != actions[i] {
			t.Errorf("round-trip[%d] = %+v, want %+v", i, decoded[i], actions[i])
		}
	}
}
