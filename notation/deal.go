// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import "github.com/zurichess/klondike/engine"

// NewDealFromSeed deterministically builds a legal Klondike deal (the
// top card of each tableau face-up, every other card face-down) from
// a 32-bit seed, using the reference deal's own
// minimal-standard LCG and Fisher-Yates-style shuffle so that a given
// seed always reproduces the exact same deal across implementations.
// The resulting board has draw count 1; callers needing draw count 3
// must call SetDrawCount themselves.
func NewDealFromSeed(seed uint32) *Board {
	state := seed
	next := func() uint32 {
		state = uint32((uint64(state) * 16807) % 0x7fffffff)
		return state
	}

	var deck [52]engine.Card
	i := 0
	for id := 0; id < 26; id++ {
		deck[i] = engine.NewCard(uint8(id))
		i++
	}
	for id := 39; id < 52; id++ {
		deck[i] = engine.NewCard(uint8(id))
		i++
	}
	for id := 26; id < 39; id++ {
		deck[i] = engine.NewCard(uint8(id))
		i++
	}

	for pass := 0; pass < 7; pass++ {
		for j := 0; j < 52; j++ {
			k := int(next() % 52)
			deck[j], deck[k] = deck[k], deck[j]
		}
	}

	rotateLeft(deck[:], 24)

	orig := 27
	for i := 0; i < 7; i++ {
		pos := (i+1)*(i+2)/2 - 1
		for j := 6 - i; j >= 0; j-- {
			if j >= i {
				deck[pos], deck[orig] = deck[orig], deck[pos]
			}
			orig--
			pos += 6 - j + 1
		}
	}

	b := NewBoard()
	m := 0
	for col := 0; col < totalTableaus; col++ {
		for row := 0; row <= col; row++ {
			b.Tableaus[col].Cards = append(b.Tableaus[col].Cards, deck[m])
			m++
		}
		b.Tableaus[col].FaceUpCount = 1
	}
	b.Stock = append(b.Stock, deck[m:]...)
	return b
}

func rotateLeft(s []engine.Card, n int) {
	n %= len(s)
	rotated := append(append([]engine.Card(nil), s[n:]...), s[:n]...)
	copy(s, rotated)
}
