// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// heuristic.go implements the A* admissible lower bound
// (minimumMovesRemaining) and the canonicalizing state fingerprint
// (fingerprint) the search uses to deduplicate permutation-equivalent
// boards. Unlike the teacher's zobrist.go, which maintains an
// incremental hash updated on every DoMove/UndoMove, fingerprint is
// recomputed from scratch at each node: Klondike's canonicalization
// (sorting tableaus by their face-up boundary) is not incrementally
// maintainable the way a XOR-based zobrist hash is, since a single
// move can change the sort order of all seven tableaus at once.
package engine

import "github.com/cespare/xxhash/v2"

// minimumMovesRemaining returns an admissible lower bound on the
// number of moves still needed to clear the board, given the current
// pile contents. The buried-waste-card scan always runs with draw
// count 1; with draw count 3 it runs only when isLastRound is set
// (the caller sets it once roundCount has reached MaxRounds).
func (e *Engine) minimumMovesRemaining(isLastRound bool) uint8 {
	stock := &e.piles[PileStock]
	waste := &e.piles[PileWaste]

	num := stock.size + ceilDiv(stock.size, e.drawCount) + waste.size

	if e.drawCount == 1 || isLastRound {
		var mins [MaxSuit]int
		for s := range mins {
			mins[s] = MaxRank
		}
		for i := 0; i < waste.size; i++ {
			c := waste.Get(i)
			if int(c.Rank) < mins[c.Suit] {
				mins[c.Suit] = int(c.Rank)
			} else {
				num++
			}
		}
	}

	for t := PileTableauStart; t <= PileTableauEnd; t++ {
		pile := &e.piles[t]
		num += pile.size

		var mins [MaxSuit]int
		for s := range mins {
			mins[s] = MaxRank
		}
		first := pile.firstFaceUp
		for j := 0; j < pile.size; j++ {
			c := pile.Get(j)
			suit := int(c.Suit)
			if int(c.Rank) < mins[suit] {
				if first >= 0 && j < first {
					mins[suit] = int(c.Rank)
				}
			} else {
				num++
				if first >= 0 && j >= first {
					break
				}
			}
		}
	}

	if num > 255 {
		return 255
	}
	return uint8(num)
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// fingerprint canonicalizes the working piles into a 32-byte encoding
// and hashes it with xxhash. Tableaus are sorted by the descending
// ID2 of their first face-up card so that two boards differing only in
// which physical column holds a given face-up run hash identically —
// this is what lets StateMap merge permutation-equivalent states.
func (e *Engine) fingerprint() uint64 {
	var buf [32]byte

	waste := &e.piles[PileWaste]
	buf[0] = uint8(waste.size)

	f0 := e.piles[PileFoundationStart].size
	f1 := e.piles[PileFoundationStart+1].size
	f2 := e.piles[PileFoundationStart+2].size
	f3 := e.piles[PileFoundationStart+3].size
	buf[1] = uint8(f0<<4) | uint8(f2)
	buf[2] = uint8(f1<<4) | uint8(f3)

	var order [7]int
	for i := range order {
		order[i] = PileTableauStart + i
	}
	// Insertion sort: seven elements, and this runs once per node, so
	// a simple O(n^2) sort is the clearest choice here.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && e.piles[order[j]].PeekFirstFaceUp().ID2 > e.piles[order[j-1]].PeekFirstFaceUp().ID2; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	for i, idx := range order {
		pile := &e.piles[idx]
		faceUp := pile.FaceUpCount()
		off := 4 * (i + 1)
		buf[off] = uint8(faceUp)
		if faceUp > 0 {
			first := pile.PeekFirstFaceUpUnchecked()
			buf[off+1] = first.ID
			var flags uint16
			for o := 0; o < faceUp-1; o++ {
				flags |= uint16(pile.PeekNthFromTopUnchecked(o).Order) << uint(o)
			}
			buf[off+2] = uint8(flags >> 8)
			buf[off+3] = uint8(flags)
		}
	}

	return xxhash.Sum64(buf[:])
}
