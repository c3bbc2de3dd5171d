// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// pileCapacity bounds every pile's backing array. 24 matches the
// maximum stock/waste length and, empirically, is never exceeded by
// any tableau reached while searching a standard 52-card deal (see
// DESIGN.md); it is the same bound the reference solver this package
// is ported from uses for every pile uniformly.
const pileCapacity = 24

// Pile is a bottom-to-top stack of cards with a face-up boundary.
// Indices below firstFaceUp are face-down; indices at or above it, up
// to size, form the face-up run. firstFaceUp == -1 means the pile has
// no face-up cards (including being empty).
type Pile struct {
	cards       [pileCapacity]Card
	size        int
	firstFaceUp int
}

// Reset empties the pile.
func (p *Pile) Reset() {
	for i := range p.cards {
		p.cards[i] = Unknown
	}
	p.size = 0
	p.firstFaceUp = -1
}

// Len returns the number of cards in the pile.
func (p *Pile) Len() int { return p.size }

// SetFaceUpCount marks the top count cards as face-up.
func (p *Pile) SetFaceUpCount(count int) {
	if count <= 0 {
		p.firstFaceUp = -1
		return
	}
	p.firstFaceUp = p.size - count
}

// FaceUpCount returns how many cards at the top of the pile are
// face-up.
func (p *Pile) FaceUpCount() int {
	if p.firstFaceUp < 0 {
		return 0
	}
	return p.size - p.firstFaceUp
}

// Push appends c to the top of the pile as a face-up card.
func (p *Pile) Push(c Card) {
	p.cards[p.size] = c
	if p.firstFaceUp < 0 {
		p.firstFaceUp = p.size
	}
	p.size++
}

// PopTo removes the top card of p and pushes it onto dst.
func (p *Pile) PopTo(dst *Pile) {
	p.size--
	c := p.cards[p.size]
	p.cards[p.size] = Unknown
	if p.firstFaceUp >= p.size {
		p.firstFaceUp = -1
	}
	dst.Push(c)
}

// MoveNTo moves the top n cards of p onto dst, preserving their
// relative order (the card that was p's n-th-from-top lands on the
// bottom of the transferred run).
func (p *Pile) MoveNTo(dst *Pile, n int) {
	start := p.size - n
	for i := 0; i < n; i++ {
		dst.cards[dst.size+i] = p.cards[start+i]
	}
	if dst.firstFaceUp < 0 {
		dst.firstFaceUp = dst.size
	}
	dst.size += n
	p.truncate(n, start)
}

// MoveNReversedTo moves the top n cards of p onto dst in reversed
// order (used for stock<->waste transfers, where drawing/redealing
// flips the run).
func (p *Pile) MoveNReversedTo(dst *Pile, n int) {
	start := p.size - n
	for i := 0; i < n; i++ {
		dst.cards[dst.size+i] = p.cards[p.size-1-i]
	}
	if dst.firstFaceUp < 0 {
		dst.firstFaceUp = dst.size
	}
	dst.size += n
	p.truncate(n, start)
}

func (p *Pile) truncate(n, start int) {
	for i := start; i < p.size; i++ {
		p.cards[i] = Unknown
	}
	p.size = start
	if p.firstFaceUp > p.size || p.size == 0 {
		p.firstFaceUp = -1
	}
}

// Get returns the card at index i, or Unknown if out of range.
func (p *Pile) Get(i int) Card {
	if i < 0 || i >= p.size {
		return Unknown
	}
	return p.cards[i]
}

// PeekTop returns the top card, or Unknown if the pile is empty.
func (p *Pile) PeekTop() Card {
	if p.size == 0 {
		return Unknown
	}
	return p.cards[p.size-1]
}

// PeekTopUnchecked assumes the pile is non-empty.
func (p *Pile) PeekTopUnchecked() Card { return p.cards[p.size-1] }

// PeekFirstFaceUp returns the bottom-most face-up card (the deepest
// card of the face-up run), or Unknown if there is none.
func (p *Pile) PeekFirstFaceUp() Card {
	if p.firstFaceUp < 0 {
		return Unknown
	}
	return p.cards[p.firstFaceUp]
}

// PeekFirstFaceUpUnchecked assumes firstFaceUp >= 0.
func (p *Pile) PeekFirstFaceUpUnchecked() Card { return p.cards[p.firstFaceUp] }

// PeekNthFromTopUnchecked returns the card offset cards down from the
// top (offset 0 is the top card itself). Caller must ensure offset is
// in range.
func (p *Pile) PeekNthFromTopUnchecked(offset int) Card {
	return p.cards[p.size-offset-1]
}
