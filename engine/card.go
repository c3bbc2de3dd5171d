// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// card.go implements the packed card representation shared by every
// other component: all derived bits are computed once, at construction,
// so the search hot path never recomputes them.

package engine

const (
	// MaxRank is the number of ranks (Ace..King).
	MaxRank = 13
	// MaxSuit is the number of suits.
	MaxSuit = 4
	// MaxCard is the number of cards in a deck, and also Card.ID's
	// sentinel value for the unknown card.
	MaxCard = MaxRank * MaxSuit
)

// Suit identifies one of the four suits. The numeric values match the
// board text format's suit ordering (club, diamond, spade, heart).
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Spades
	Hearts
)

var suitGlyph = [MaxSuit]rune{'♣', '♦', '♠', '♥'}

func (s Suit) String() string {
	if int(s) >= MaxSuit {
		return "?"
	}
	return string(suitGlyph[s])
}

var rankGlyph = [MaxRank]byte{'A', '2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K'}

// Card is a packed playing card with every field the solver's hot path
// needs precomputed: Rank and Suit, Color (0 = black, 1 = red), whether
// the rank is even, the color/evenness parity used by the heuristic's
// buried-card scan, and Order, a single bit that canonically encodes
// which of the two same-color suits this card belongs to.
type Card struct {
	ID      uint8 // 0..51, MaxCard == unknown
	ID2     uint8 // (Rank<<2)|Suit, used to sort tableaus canonically
	Suit    Suit
	Rank    uint8
	Color   uint8 // 0 = black, 1 = red == Suit&1
	Even    uint8 // Rank&1
	RedEven uint8 // Color^Even
	Order   uint8 // Suit>>1
}

// Unknown is the sentinel card occupying empty pile slots.
var Unknown = Card{ID: MaxCard, Suit: Suit(MaxSuit), Rank: MaxRank, Even: 1, Color: 2, RedEven: 2}

var cardByID [MaxCard + 1]Card

func init() {
	for id := uint8(0); id < MaxCard; id++ {
		rank := id % MaxRank
		suit := id / MaxRank
		cardByID[id] = Card{
			ID:      id,
			ID2:     (rank << 2) | suit,
			Suit:    Suit(suit),
			Rank:    rank,
			Color:   suit & 1,
			Even:    rank & 1,
			RedEven: (suit & 1) ^ (rank & 1),
			Order:   suit >> 1,
		}
	}
	cardByID[MaxCard] = Unknown
}

// NewCard returns the Card for id, or Unknown if id is out of range.
func NewCard(id uint8) Card {
	if id >= MaxCard {
		return Unknown
	}
	return cardByID[id]
}

// NewCardRankSuit returns the Card with the given rank and suit.
func NewCardRankSuit(rank, suit uint8) Card {
	return NewCard(suit*MaxRank + rank)
}

// IsUnknown reports whether c is the sentinel empty-slot card.
func (c Card) IsUnknown() bool { return c.ID >= MaxCard }

// IsKing reports whether c is a king.
func (c Card) IsKing() bool { return c.Rank == MaxRank-1 }

// PrettyString renders c in the board text format, e.g. "A♣", "T♥".
func (c Card) PrettyString() string {
	if c.IsUnknown() {
		return "??"
	}
	return string([]byte{rankGlyph[c.Rank]}) + c.Suit.String()
}
