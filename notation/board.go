// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package notation implements the board text format and the
// user-facing action vocabulary that sit outside the search core:
// parsing and pretty-printing boards, applying/describing actions
// against a live Board mirror, and building boards from a numeric
// seed. None of this is on Engine's hot path — it exists so fixtures,
// the CLI, and ActionExporter have a shared, human-readable board
// representation to work against.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zurichess/klondike/engine"
)

const (
	totalFoundations = 4
	totalTableaus    = 7
)

// WastePile is the waste mirror: all drawn cards, with VisibleCount
// tracking how many of the top cards are considered "this draw" for
// display purposes (it has no effect on legality, which Board.draw
// derives independently).
type WastePile struct {
	Cards        []engine.Card
	VisibleCount int
}

func (w *WastePile) PeekTop() engine.Card {
	if len(w.Cards) == 0 {
		return engine.Unknown
	}
	return w.Cards[len(w.Cards)-1]
}

func (w *WastePile) popUnchecked() engine.Card {
	n := len(w.Cards)
	if n == 0 {
		return engine.Unknown
	}
	card := w.Cards[n-1]
	w.Cards = w.Cards[:n-1]
	if len(w.Cards) == 0 {
		w.VisibleCount = 0
	} else if w.VisibleCount > 1 {
		w.VisibleCount--
	} else {
		w.VisibleCount = 1
	}
	return card
}

// Tableau is one tableau column mirror: the full card stack plus how
// many cards at the top are face-up.
type Tableau struct {
	Cards       []engine.Card
	FaceUpCount int
}

func (t *Tableau) PeekTop() engine.Card {
	if len(t.Cards) == 0 {
		return engine.Unknown
	}
	return t.Cards[len(t.Cards)-1]
}

func (t *Tableau) popUnchecked() engine.Card {
	n := len(t.Cards)
	if n == 0 {
		return engine.Unknown
	}
	card := t.Cards[n-1]
	t.Cards = t.Cards[:n-1]
	if len(t.Cards) == 0 {
		t.FaceUpCount = 0
	} else if t.FaceUpCount > 1 {
		t.FaceUpCount--
	} else {
		t.FaceUpCount = 1
	}
	return card
}

func (t *Tableau) drainUnchecked(count int) []engine.Card {
	n := len(t.Cards)
	cards := append([]engine.Card(nil), t.Cards[n-count:]...)
	t.Cards = t.Cards[:n-count]
	if len(t.Cards) == 0 {
		t.FaceUpCount = 0
	} else if t.FaceUpCount > count {
		t.FaceUpCount -= count
	} else {
		t.FaceUpCount = 1
	}
	return cards
}

func (t *Tableau) push(card engine.Card) {
	t.FaceUpCount++
	t.Cards = append(t.Cards, card)
}

// Board is a plain, fully-mutable mirror of a Klondike position: it
// tracks only enough state to replay a move list and render it as
// text, unlike engine.Engine, which tracks the rest of what A* needs.
// Foundations only remember their top card, since that's all a
// foundation's rank-from-Ace invariant requires to be reconstructed.
type Board struct {
	Stock        []engine.Card
	Waste        WastePile
	Foundations  [totalFoundations]engine.Card
	Tableaus     [totalTableaus]Tableau
	drawCountVal int
}

// NewBoard returns an empty board with the default draw count of 1.
func NewBoard() *Board {
	b := &Board{drawCountVal: 1}
	for i := range b.Foundations {
		b.Foundations[i] = engine.Unknown
	}
	return b
}

func (b *Board) DrawCount() int {
	if b.drawCountVal == 3 {
		return 3
	}
	return 1
}

func (b *Board) SetDrawCount(v int) {
	b.drawCountVal = v
	if b.Waste.VisibleCount > v {
		b.Waste.VisibleCount = v
	}
}

// FoundationScore is the sum of (rank+1) across all non-empty
// foundations — the same quantity Engine tracks incrementally as
// foundationScore.
func (b *Board) FoundationScore() uint8 {
	var score uint8
	for _, c := range b.Foundations {
		if !c.IsUnknown() {
			score += c.Rank + 1
		}
	}
	return score
}

// NeedRedeal reports whether the stock is empty while the waste still
// holds cards, the condition under which Draw performs a redeal
// instead of drawing.
func (b *Board) NeedRedeal() bool {
	return len(b.Stock) == 0 && len(b.Waste.Cards) > 0
}

// Draw draws up to DrawCount cards from the stock onto the waste,
// reversing their order, or — when the stock is empty — turns the
// entire waste back into the stock (a redeal).
func (b *Board) Draw() {
	stockLen := len(b.Stock)
	if stockLen == 0 {
		if len(b.Waste.Cards) > 0 {
			for i := len(b.Waste.Cards) - 1; i >= 0; i-- {
				b.Stock = append(b.Stock, b.Waste.Cards[i])
			}
			b.Waste.Cards = b.Waste.Cards[:0]
			b.Waste.VisibleCount = 0
		}
		return
	}
	num := b.DrawCount()
	if num > stockLen {
		num = stockLen
	}
	for i := 0; i < num; i++ {
		b.Waste.Cards = append(b.Waste.Cards, b.Stock[len(b.Stock)-1-i])
	}
	b.Stock = b.Stock[:stockLen-num]
	b.Waste.VisibleCount = max(num, 1)
}

func (b *Board) MoveWasteToFoundation(idx int) {
	b.Foundations[idx] = b.Waste.popUnchecked()
}

func (b *Board) MoveWasteToTableau(idx int) {
	b.Tableaus[idx].push(b.Waste.popUnchecked())
}

func (b *Board) MoveTableauToFoundation(tableauIdx, foundationIdx int) {
	b.Foundations[foundationIdx] = b.Tableaus[tableauIdx].popUnchecked()
}

func (b *Board) MoveTableauToTableau(fromIdx, toIdx, count int) {
	cards := b.Tableaus[fromIdx].drainUnchecked(count)
	b.Tableaus[toIdx].FaceUpCount += len(cards)
	b.Tableaus[toIdx].Cards = append(b.Tableaus[toIdx].Cards, cards...)
}

func (b *Board) MoveFoundationToTableau(foundationIdx, tableauIdx int) {
	card := b.Foundations[foundationIdx]
	if card.Rank == 0 {
		b.Foundations[foundationIdx] = engine.Unknown
	} else {
		b.Foundations[foundationIdx] = engine.NewCardRankSuit(card.Rank-1, uint8(card.Suit))
	}
	b.Tableaus[tableauIdx].push(card)
}

// Clone returns a deep, independent copy of b.
func (b *Board) Clone() *Board {
	clone := *b
	clone.Stock = append([]engine.Card(nil), b.Stock...)
	clone.Waste.Cards = append([]engine.Card(nil), b.Waste.Cards...)
	for i := range b.Tableaus {
		clone.Tableaus[i].Cards = append([]engine.Card(nil), b.Tableaus[i].Cards...)
	}
	return &clone
}

// ToBoardSpec converts b into the plain-data form engine.SetBoard
// accepts.
func (b *Board) ToBoardSpec() engine.BoardSpec {
	spec := engine.BoardSpec{
		Stock:     b.Stock,
		Waste:     b.Waste.Cards,
		DrawCount: b.DrawCount(),
	}
	for i := range b.Foundations {
		spec.FoundationTop[i] = b.Foundations[i]
	}
	for i := range b.Tableaus {
		spec.Tableaus[i] = b.Tableaus[i].Cards
		spec.TableauFaceUp[i] = b.Tableaus[i].FaceUpCount
	}
	return spec
}

var rankRunes = [14]rune{'A', '2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K', '?'}
var suitRunes = [5]rune{'♣', '♦', '♠', '♥', '?'}

func parseCard(rank, suit rune) (engine.Card, error) {
	rankIdx := -1
	for i, r := range rankRunes {
		if r == rank {
			rankIdx = i
			break
		}
	}
	suitIdx := -1
	for i, s := range suitRunes {
		if s == suit {
			suitIdx = i
			break
		}
	}
	if rankIdx < 0 || rankIdx >= engine.MaxRank || suitIdx < 0 || suitIdx >= engine.MaxSuit {
		return engine.Unknown, fmt.Errorf("notation: invalid card %c%c", rank, suit)
	}
	return engine.NewCardRankSuit(uint8(rankIdx), uint8(suitIdx)), nil
}

func parseCards(s string) ([]engine.Card, error) {
	var cards []engine.Card
	runes := []rune(strings.TrimSpace(s))
	i := 0
	for i < len(runes) {
		if runes[i] == ' ' || runes[i] == '|' {
			i++
			continue
		}
		if i+1 >= len(runes) {
			break
		}
		card, err := parseCard(runes[i], runes[i+1])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
		i += 2
	}
	return cards, nil
}

// Parse reads the board text format described by the package's
// fixtures: one "Stock:"/"Waste:"/"Foundation<i>:"/"Tableau<i>:"/
// "DrawCount:" line per populated section, with "|" separating a
// pile's face-down prefix from its face-up suffix.
func Parse(content string) (*Board, error) {
	b := NewBoard()
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "Stock:"):
			cards, err := parseCards(strings.TrimPrefix(line, "Stock:"))
			if err != nil {
				return nil, err
			}
			b.Stock = append(b.Stock, cards...)

		case strings.HasPrefix(line, "Waste:"):
			rest := strings.TrimPrefix(line, "Waste:")
			before, after, _ := strings.Cut(rest, "|")
			downCards, err := parseCards(before)
			if err != nil {
				return nil, err
			}
			upCards, err := parseCards(after)
			if err != nil {
				return nil, err
			}
			b.Waste.VisibleCount = len(upCards)
			b.Waste.Cards = append(append(b.Waste.Cards, downCards...), upCards...)

		case strings.HasPrefix(line, "Foundation"):
			rest := strings.TrimPrefix(line, "Foundation")
			idxStr, cardsStr, ok := strings.Cut(rest, ":")
			if !ok {
				return nil, fmt.Errorf("notation: malformed foundation line %q", line)
			}
			idx, err := strconv.Atoi(strings.TrimSpace(idxStr))
			if err != nil {
				return nil, fmt.Errorf("notation: invalid foundation index in %q: %w", line, err)
			}
			cards, err := parseCards(cardsStr)
			if err != nil {
				return nil, err
			}
			if len(cards) > 0 {
				b.Foundations[idx-1] = cards[len(cards)-1]
			}

		case strings.HasPrefix(line, "Tableau"):
			rest := strings.TrimPrefix(line, "Tableau")
			idxStr, cardsStr, ok := strings.Cut(rest, ":")
			if !ok {
				return nil, fmt.Errorf("notation: malformed tableau line %q", line)
			}
			idx, err := strconv.Atoi(strings.TrimSpace(idxStr))
			if err != nil {
				return nil, fmt.Errorf("notation: invalid tableau index in %q: %w", line, err)
			}
			cardsStr = strings.TrimSpace(cardsStr)
			before, after, _ := strings.Cut(cardsStr, "|")
			downCards, err := parseCards(before)
			if err != nil {
				return nil, err
			}
			upCards, err := parseCards(after)
			if err != nil {
				return nil, err
			}
			t := &b.Tableaus[idx-1]
			t.FaceUpCount = len(upCards)
			t.Cards = append(append(t.Cards, downCards...), upCards...)

		case strings.HasPrefix(line, "DrawCount:"):
			v, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "DrawCount:")))
			if err != nil {
				return nil, fmt.Errorf("notation: invalid draw count in %q: %w", line, err)
			}
			b.SetDrawCount(v)
		}
	}
	return b, nil
}

// PrettyString renders b back into the board text format.
func (b *Board) PrettyString() string {
	var out strings.Builder

	if len(b.Stock) > 0 {
		out.WriteString("Stock: ")
		for _, c := range b.Stock {
			out.WriteString(c.PrettyString())
		}
		out.WriteByte('\n')
	}

	if len(b.Waste.Cards) > 0 {
		out.WriteString("Waste: ")
		n := len(b.Waste.Cards)
		vis := b.Waste.VisibleCount
		if vis > n {
			vis = n
		}
		sep := n - vis
		for i, c := range b.Waste.Cards {
			if i == sep && vis > 0 {
				out.WriteByte('|')
			}
			out.WriteString(c.PrettyString())
		}
		out.WriteByte('\n')
	}

	for i, c := range b.Foundations {
		if !c.IsUnknown() {
			fmt.Fprintf(&out, "Foundation%d: %s\n", i+1, c.PrettyString())
		}
	}

	for i, t := range b.Tableaus {
		if len(t.Cards) == 0 {
			continue
		}
		fmt.Fprintf(&out, "Tableau%d: ", i+1)
		n := len(t.Cards)
		faceUp := t.FaceUpCount
		if faceUp > n {
			faceUp = n
		}
		sep := n - faceUp
		for j, c := range t.Cards {
			if j == sep && faceUp > 0 {
				out.WriteByte('|')
			}
			out.WriteString(c.PrettyString())
		}
		out.WriteByte('\n')
	}

	fmt.Fprintf(&out, "DrawCount: %d", b.DrawCount())
	return out.String()
}
