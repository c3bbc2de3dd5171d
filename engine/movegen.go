// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// movegen.go generates the candidate moves Solve considers at each
// search node. It runs in four phases, stopping early only when a
// phase reports a forced move: a follow-up foundation move forced by
// the previous move, a tableau-to-foundation-or-tableau scan, a talon
// scan, and finally a foundation-to-tableau scan. This phase ordering,
// and the early "forced move" short-circuits within each phase, are
// load-bearing for search performance: they let the search commit to
// a clearly-good move without paying A*'s full branching-factor cost
// at every node.
package engine

// computePossibleMoves fills and returns e.candidates with the moves
// legal from the current position, in the fixed phase order described
// above.
func (e *Engine) computePossibleMoves() []Move {
	e.candidates = e.candidates[:0]
	e.foundationMinimum = e.computeFoundationMinimum()

	if e.computeWithLastMove() {
		return e.candidates
	}
	if e.computeMoveFromTableau() {
		return e.candidates
	}
	if e.computeMoveFromWaste() {
		return e.candidates
	}
	e.computeMoveFromFoundation()
	return e.candidates
}

// computeFoundationMinimum is one more than the number of cards on the
// shortest foundation; canMoveToFoundation aside, a tableau or talon
// card at or below this rank can never be blocked from completing a
// run to the foundations by a card still below it in play, so such a
// move is always safe to play immediately and never needs to be
// weighed against alternatives.
func (e *Engine) computeFoundationMinimum() uint8 {
	min := e.piles[PileFoundationStart].size
	for i := PileFoundationStart + 1; i <= PileFoundationEnd; i++ {
		if e.piles[i].size < min {
			min = e.piles[i].size
		}
	}
	return uint8(min) + 1
}

// computeWithLastMove reports whether the move immediately before this
// one (a tableau-to-tableau move that did not itself flip a card)
// exposed a card that can go straight to a foundation. When it did,
// that single move is the only candidate generated: undoing a
// tableau-to-tableau move to try something else can never be better
// than completing the foundation run it just set up.
func (e *Engine) computeWithLastMove() bool {
	from, to := int(e.lastMove.From()), int(e.lastMove.To())
	if e.lastMove.Flip() || from < PileTableauStart || from > PileTableauEnd ||
		to < PileTableauStart || to > PileTableauEnd {
		return false
	}
	src := &e.piles[from]
	if src.size == 0 {
		return false
	}
	top := src.PeekTopUnchecked()
	fIdx, ok := e.canMoveToFoundation(top)
	if !ok {
		return false
	}
	flip := src.size > 1 && src.FaceUpCount() == 1
	e.candidates = append(e.candidates, NewMove(uint8(from), fIdx, 1, flip))
	return true
}

// computeMoveFromTableau scans every non-empty tableau for a move to a
// foundation or to another tableau. It reports true when it found a
// foundation move at or below computeFoundationMinimum, in which case
// that move replaces all candidates found so far: a guaranteed-safe
// foundation move dominates every other option.
func (e *Engine) computeMoveFromTableau() bool {
	var nonEmpty [TotalTableaus]int
	n := 0
	emptyCount := 0
	for idx := PileTableauStart; idx <= PileTableauEnd; idx++ {
		if e.piles[idx].size > 0 {
			nonEmpty[n] = idx
			n++
		} else {
			emptyCount++
		}
	}

	for k := 0; k < n; k++ {
		srcIdx := nonEmpty[k]
		src := &e.piles[srcIdx]
		srcSize := src.size
		top := src.PeekTopUnchecked()

		if fIdx, ok := e.canMoveToFoundation(top); ok {
			flip := srcSize > 1 && src.FaceUpCount() == 1
			mov := NewMove(uint8(srcIdx), fIdx, 1, flip)
			if top.Rank <= e.foundationMinimum {
				e.candidates = e.candidates[:0]
				e.candidates = append(e.candidates, mov)
				return true
			}
			e.candidates = append(e.candidates, mov)
		}

		firstFaceUp := src.PeekFirstFaceUpUnchecked()
		srcFaceUpCount := int(firstFaceUp.Rank) - int(top.Rank) + 1
		kingMoved := !firstFaceUp.IsKing()

		for destIdx := PileTableauStart; destIdx <= PileTableauEnd; destIdx++ {
			if destIdx == srcIdx {
				continue
			}
			dest := &e.piles[destIdx]

			if dest.size == 0 {
				if !kingMoved && srcSize != srcFaceUpCount {
					e.candidates = append(e.candidates, NewMove(uint8(srcIdx), uint8(destIdx), uint8(srcFaceUpCount), true))
					kingMoved = true
				}
				continue
			}

			destTop := dest.PeekTopUnchecked()
			if int(destTop.Rank)-int(firstFaceUp.Rank) > 1 || top.RedEven != destTop.RedEven || top.Rank >= destTop.Rank {
				continue
			}

			srcMovedCount := int(destTop.Rank) - int(top.Rank)
			movesWholeRun := srcMovedCount == srcFaceUpCount && (srcMovedCount != srcSize || emptyCount == 0)
			var unburiesFoundationCard bool
			if srcMovedCount < srcFaceUpCount {
				_, unburiesFoundationCard = e.canMoveToFoundation(src.PeekNthFromTopUnchecked(srcMovedCount))
			}
			if movesWholeRun || unburiesFoundationCard {
				flip := srcSize > srcMovedCount && srcMovedCount == srcFaceUpCount
				e.candidates = append(e.candidates, NewMove(uint8(srcIdx), uint8(destIdx), uint8(srcMovedCount), flip))
			}
		}
	}
	return false
}

// computeMoveFromWaste scans every talon candidate (see TalonHelper)
// for a move to a foundation or tableau.
//
// A candidate at or below computeFoundationMinimum is always safe to
// take, but how "safe" plays out differs by draw count: with
// draw_count > 1 a single draw can expose several talon cards at once,
// so taking this one doesn't forfeit the others the way it would with
// draw_count == 1 — the loop moves on to the next candidate instead of
// stopping. With draw_count == 1, a reachable-with-zero-extra-draws
// candidate (or the very first candidate found overall) short-circuits
// the whole search node the way computeMoveFromTableau's forced move
// does; otherwise the talon scan simply stops, since nothing past a
// safe-but-not-free candidate can matter more than it did.
func (e *Engine) computeMoveFromWaste() bool {
	n := e.helper.Calculate(e.drawCount, &e.piles[PileWaste], &e.piles[PileStock])
	for i := 0; i < n; i++ {
		cand := e.helper.candidates[i]
		talonCard := cand.card
		flip := cand.cardsDrawn < 0
		cardsToDraw := cand.cardsDrawn
		if flip {
			cardsToDraw = -cardsToDraw
		}

		if fIdx, ok := e.canMoveToFoundation(talonCard); ok {
			e.candidates = append(e.candidates, NewMove(PileWaste, fIdx, uint8(cardsToDraw), flip))
			if talonCard.Rank <= e.foundationMinimum {
				if e.drawCount > 1 {
					continue
				}
				if cand.cardsDrawn == 0 || len(e.candidates) == 1 {
					return true
				}
				break
			}
		}

		for tIdx := PileTableauStart; tIdx <= PileTableauEnd; tIdx++ {
			tTop := e.piles[tIdx].PeekTop()
			if int(tTop.Rank)-int(talonCard.Rank) == 1 && talonCard.Color != tTop.Color {
				e.candidates = append(e.candidates, NewMove(PileWaste, uint8(tIdx), uint8(cardsToDraw), flip))
				if talonCard.IsKing() {
					break
				}
			}
		}
	}
	return false
}

// computeMoveFromFoundation scans every foundation whose top card is
// above computeFoundationMinimum for a move back onto a tableau.
// Unwinding a foundation is legal but never advances the game on its
// own, so this phase runs last, and only when no earlier phase
// reported a forced move.
func (e *Engine) computeMoveFromFoundation() {
	for fIdx := PileFoundationStart; fIdx <= PileFoundationEnd; fIdx++ {
		fp := &e.piles[fIdx]
		if fp.size <= int(e.foundationMinimum) {
			continue
		}
		fc := fp.PeekTopUnchecked()
		for tIdx := PileTableauStart; tIdx <= PileTableauEnd; tIdx++ {
			tTop := e.piles[tIdx].PeekTop()
			if int(tTop.Rank)-int(fc.Rank) == 1 && tTop.Color != fc.Color {
				e.candidates = append(e.candidates, NewMove(uint8(fIdx), uint8(tIdx), 1, false))
				if fc.IsKing() {
					break
				}
			}
		}
	}
}
