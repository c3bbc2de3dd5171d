// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export implements ActionExporter: it expands the compact
// Move list a solve returns into the user-facing Draw/Redeal/placement
// actions notation.FormatActions knows how to render. It is the only
// package that imports both engine (for the move list) and notation
// (for the Board mirror and Action vocabulary it replays moves
// against), keeping those two packages themselves decoupled.
package export

import (
	"github.com/zurichess/klondike/engine"
	"github.com/zurichess/klondike/notation"
)

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// Actions expands moves — a solved Engine's move list — into the
// equivalent notation.Action sequence, replaying each against a clone
// of initial (the board that was originally passed to SetBoard) so
// that multi-draw waste moves and mid-sequence redeals are expanded
// faithfully.
func Actions(initial *notation.Board, moves []engine.Move) []notation.Action {
	var actions []notation.Action
	board := initial.Clone()
	stockSize := len(initial.Stock)
	wasteSize := len(initial.Waste.Cards)
	drawCount := initial.DrawCount()

	emit := func(a notation.Action) {
		actions = append(actions, a)
		notation.ApplyAction(board, a)
	}

	for _, mov := range moves {
		from := int(mov.From())
		to := int(mov.To())
		count := int(mov.Count())
		flip := mov.Flip()

		if from == engine.PileWaste {
			if !flip {
				for i := 0; i < ceilDiv(count, drawCount); i++ {
					emit(notation.Action{Kind: notation.ActionDraw})
				}
				stockSize -= count
				wasteSize += count
			} else {
				if stockSize == 0 {
					emit(notation.Action{Kind: notation.ActionRedeal})
				}
				times := ceilDiv(stockSize, drawCount)
				for i := 0; i < times; i++ {
					emit(notation.Action{Kind: notation.ActionDraw})
					if board.NeedRedeal() {
						emit(notation.Action{Kind: notation.ActionRedeal})
					}
				}
				times = ceilDiv(count-stockSize, drawCount)
				for i := 0; i < times; i++ {
					emit(notation.Action{Kind: notation.ActionDraw})
				}
				delta := stockSize + wasteSize - count
				wasteSize -= delta
				stockSize += delta
			}

			wasteSize--

			if to >= engine.PileFoundationStart && to <= engine.PileFoundationEnd {
				idx := to - engine.PileFoundationStart
				emit(notation.Action{Kind: notation.ActionWasteToFoundation, From: idx})
			} else if to >= engine.PileTableauStart && to <= engine.PileTableauEnd {
				idx := to - engine.PileTableauStart
				emit(notation.Action{Kind: notation.ActionWasteToTableau, To: idx})
			}
		} else if from >= engine.PileTableauStart && from <= engine.PileTableauEnd {
			fromIdx := from - engine.PileTableauStart
			if to >= engine.PileFoundationStart && to <= engine.PileFoundationEnd {
				toIdx := to - engine.PileFoundationStart
				emit(notation.Action{Kind: notation.ActionTableauToFoundation, From: fromIdx, To: toIdx})
			} else if to >= engine.PileTableauStart && to <= engine.PileTableauEnd {
				toIdx := to - engine.PileTableauStart
				emit(notation.Action{Kind: notation.ActionTableauToTableau, From: fromIdx, To: toIdx, Count: count})
			}
		} else if from >= engine.PileFoundationStart && from <= engine.PileFoundationEnd {
			fromIdx := from - engine.PileFoundationStart
			if to >= engine.PileTableauStart && to <= engine.PileTableauEnd {
				toIdx := to - engine.PileTableauStart
				emit(notation.Action{Kind: notation.ActionFoundationToTableau, From: fromIdx, To: toIdx})
			}
		}
	}

	return actions
}
