// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// talon.go implements TalonHelper, the stock/waste (talon) enumerator.
// Given the current stock and waste piles and the deal's draw count,
// it lists every card MoveGen could draw to, along with a signed
// "cards drawn" count: non-negative when reachable by drawing forward
// from the current position, negative when it first requires a
// redeal. TalonHelper never fails: an empty stock and waste simply
// yields zero candidates.

package engine

// talonCandidate is one card MoveGen can consider moving off the
// talon, together with the (possibly negative) number of cards that
// would need to be drawn to expose it.
type talonCandidate struct {
	card       Card
	cardsDrawn int32
}

// TalonHelper enumerates talon candidates into a reusable, fixed-size
// buffer so MoveGen's hot path never allocates.
type TalonHelper struct {
	candidates [pileCapacity]talonCandidate
	stockUsed  [pileCapacity]bool
}

// Calculate fills h's candidate buffer for the given draw count, waste
// and stock piles, and returns how many candidates were produced.
func (h *TalonHelper) Calculate(drawCount int, waste, stock *Pile) int {
	n := 0
	stockSize := stock.size
	wasteSize := waste.size

	// 1. The waste's top card is always reachable with zero extra draws.
	if wasteSize > 0 {
		h.candidates[n] = talonCandidate{card: waste.PeekTopUnchecked(), cardsDrawn: 0}
		n++
	}

	// 2. Walk the stock downward in steps of drawCount, starting from
	// the position that a draw would expose.
	start := stockSize - drawCount
	if stockSize < drawCount && stockSize > 0 {
		start = 0
	}
	for i := 0; i < stockSize; i++ {
		h.stockUsed[i] = false
	}
	for pos := start; pos >= 0 && pos < stockSize; pos -= drawCount {
		h.stockUsed[pos] = true
		h.candidates[n] = talonCandidate{
			card:       stock.Get(pos),
			cardsDrawn: int32(stockSize - pos),
		}
		n++
		if pos < drawCount {
			break
		}
	}

	// 3. Walk the waste upward (cards below its current top, which can
	// only be reached after the cards above them are redrawn from
	// stock and the talon cycles back around).
	posWaste := drawCount - 1
	for posWaste < wasteSize-1 {
		h.candidates[n] = talonCandidate{
			card:       waste.Get(wasteSize - 1 - posWaste),
			cardsDrawn: -(int32(stockSize) + 1 + int32(posWaste)),
		}
		n++
		posWaste += drawCount
	}

	// 4. If step 3 overshot the waste, the remaining reach continues
	// into the stock positions a redeal would expose next.
	if posWaste > wasteSize-1 && wasteSize > 0 {
		pos := stockSize - posWaste + (wasteSize - 1)
		for pos > 0 {
			if pos < stockSize && h.stockUsed[pos] {
				break
			}
			h.candidates[n] = talonCandidate{
				card:       stockCardAt(stock, pos),
				cardsDrawn: -(int32(stockSize) + 1 + int32(posWaste)),
			}
			n++
			pos -= drawCount
			posWaste += drawCount
		}
	}

	return n
}

// stockCardAt returns the stock card at pos, treating an out-of-range
// pos (reachable only after a redeal cycles cards back from the
// waste) as Unknown — callers only use the returned card's identity
// for foundation/tableau matching, which correctly never matches
// Unknown.
func stockCardAt(stock *Pile, pos int) Card {
	if pos < 0 || pos >= stock.size {
		return Unknown
	}
	return stock.Get(pos)
}
