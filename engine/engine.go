// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// engine.go is the A* orchestrator: it owns the working piles, drives
// MoveGen/Heuristic/StateMap/MoveTree, and exposes Solve, the package's
// single externally visible entry point. Its Options/Stats/Logger
// shape, and the NewEngine constructor, are carried over
// directly from the teacher's chess search engine.go — only the
// search payload (cards instead of positions) changed.
package engine

import (
	"container/heap"
	"fmt"
	"time"
)

// Pile indices, matching the board layout spec.md fixes: stock,
// waste, four foundations, seven tableaus.
const (
	PileStock           = 0
	PileWaste           = 1
	PileFoundationStart = 2
	TotalFoundations    = 4
	PileFoundationEnd   = PileFoundationStart + TotalFoundations - 1
	PileTableauStart    = PileFoundationEnd + 1
	TotalTableaus       = 7
	PileTableauEnd      = PileTableauStart + TotalTableaus - 1
	PileSize            = TotalFoundations + TotalTableaus + 2
)

// MaxRounds bounds how many times the stock/waste talon may be
// redealt before the search treats the round as final (enabling the
// heuristic's extra buried-waste-card scan).
const MaxRounds = 15

// MaxMoves bounds the length of any single solution this engine will
// track (and the Move arena used to record it).
const MaxMoves = 255

// Options configures an Engine's search. There are currently no
// tunables beyond the node budget and minimality flag passed directly
// to Solve; Options exists, empty, to match the teacher's constructor
// shape and give future tunables (e.g. an alternate fingerprint hash)
// a home without breaking NewEngine's signature.
type Options struct{}

// Stats reports search progress, both mid-search (via Logger) and in
// the final SolveResult.
type Stats struct {
	States  int
	Elapsed time.Duration
}

// Logger receives search progress events. Engine never logs directly;
// it only calls through this interface, exactly as the teacher's
// chess Engine does.
type Logger interface {
	BeginSearch()
	EndSearch()
	PrintProgress(stats Stats)
}

// NulLogger discards every event; it is Engine's default Log.
type NulLogger struct{}

func (NulLogger) BeginSearch()          {}
func (NulLogger) EndSearch()            {}
func (NulLogger) PrintProgress(Stats)   {}

// BoardSpec is the plain-data board description SetBoard consumes.
// The notation package, which knows how to parse the board text
// format, builds one of these from a parsed board; Engine itself has
// no notion of text formats.
type BoardSpec struct {
	Stock         []Card
	Waste         []Card
	FoundationTop [TotalFoundations]Card // Unknown if that foundation is empty
	Tableaus      [TotalTableaus][]Card
	TableauFaceUp [TotalTableaus]int
	DrawCount     int
}

// Engine runs the A* search described in spec.md over the piles
// SetBoard populates.
type Engine struct {
	Options Options
	Log     Logger
	Stats   Stats

	helper TalonHelper

	initialPiles           [PileSize]Pile
	initialFoundationScore uint8

	piles             [PileSize]Pile
	moves             [MaxMoves]Move
	movesTotal        int
	lastMove          Move
	foundationScore   uint8
	foundationMinimum uint8
	roundCount        int
	suitsToFoundations [MaxSuit]int
	drawCount          int

	candidates []Move
}

// NewEngine returns an Engine ready to accept a board via SetBoard.
func NewEngine(opts Options, log Logger) *Engine {
	if log == nil {
		log = NulLogger{}
	}
	e := &Engine{Options: opts, Log: log}
	e.candidates = make([]Move, 0, 64)
	return e
}

// SetBoard installs spec as the engine's initial position. It
// validates the board (52 distinct cards, a supported draw count) and
// lazily binds each suit to a foundation slot: suits already present
// on a foundation bind to that slot; any suit with an empty foundation
// binds to the first unused slot. This mirrors the reference solver's
// set_board exactly, including the greedy fallback assignment.
func (e *Engine) SetBoard(spec BoardSpec) error {
	if spec.DrawCount != 1 && spec.DrawCount != 3 {
		return newError(ErrInvalidBoard, fmt.Sprintf("unsupported draw count %d", spec.DrawCount))
	}
	var seen [MaxCard]bool
	count := 0
	checkCard := func(c Card) error {
		if c.IsUnknown() || seen[c.ID] {
			return newError(ErrInvalidBoard, "duplicate or unknown card")
		}
		seen[c.ID] = true
		count++
		return nil
	}

	e.initialPiles[PileStock].Reset()
	for _, c := range spec.Stock {
		if err := checkCard(c); err != nil {
			return err
		}
		e.initialPiles[PileStock].Push(c)
	}

	e.initialPiles[PileWaste].Reset()
	for _, c := range spec.Waste {
		if err := checkCard(c); err != nil {
			return err
		}
		e.initialPiles[PileWaste].Push(c)
	}

	var foundationScore uint8
	var foundationSlots uint8
	for s := range e.suitsToFoundations {
		e.suitsToFoundations[s] = MaxSuit // sentinel: unassigned
	}

	for i := 0; i < TotalFoundations; i++ {
		pile := &e.initialPiles[PileFoundationStart+i]
		pile.Reset()
		top := spec.FoundationTop[i]
		if top.IsUnknown() {
			continue
		}
		for j := uint8(0); j <= top.Rank; j++ {
			card := NewCardRankSuit(j, uint8(top.Suit))
			if j == top.Rank {
				if err := checkCard(card); err != nil {
					return err
				}
			} else {
				seen[card.ID] = true
				count++
			}
			pile.Push(card)
		}
		foundationScore += top.Rank + 1
		e.suitsToFoundations[top.Suit] = PileFoundationStart + i
		foundationSlots |= 1 << uint(i)
	}
	for s := 0; s < MaxSuit; s++ {
		if e.suitsToFoundations[s] == MaxSuit {
			for j := 0; j < TotalFoundations; j++ {
				if foundationSlots&(1<<uint(j)) == 0 {
					e.suitsToFoundations[s] = PileFoundationStart + j
					foundationSlots |= 1 << uint(j)
					break
				}
			}
		}
	}

	for i := 0; i < TotalTableaus; i++ {
		pile := &e.initialPiles[PileTableauStart+i]
		pile.Reset()
		for _, c := range spec.Tableaus[i] {
			if err := checkCard(c); err != nil {
				return err
			}
			pile.Push(c)
		}
		pile.SetFaceUpCount(spec.TableauFaceUp[i])
	}

	if count != MaxCard {
		return newError(ErrInvalidBoard, fmt.Sprintf("expected %d cards, found %d", MaxCard, count))
	}

	e.initialFoundationScore = foundationScore
	e.drawCount = spec.DrawCount
	e.reset()
	return nil
}

// reset restores the engine's working state to the initial position.
func (e *Engine) reset() {
	e.piles = e.initialPiles
	e.foundationScore = e.initialFoundationScore
	e.foundationMinimum = 0
	e.movesTotal = 0
	e.roundCount = 1
	e.lastMove = NullMove
}

// SolveResult is the successful outcome of Solve.
type SolveResult struct {
	Moves           []Move
	Elapsed         time.Duration
	States          int
	Minimal         bool
	FoundationScore uint8
}

func saturatingAddU8(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

func ceilDivU8(a, b uint8) uint8 {
	if b == 0 {
		return 0
	}
	return uint8((uint16(a) + uint16(b) - 1) / uint16(b))
}

func (e *Engine) calculateAdditionalMoves(mov Move) uint8 {
	count := uint8(1)
	movCount := mov.Count()
	if int(mov.From()) == PileWaste && movCount != 0 {
		drawCount := uint8(e.drawCount)
		if !mov.Flip() {
			count += ceilDivU8(movCount, drawCount)
		} else {
			stockSize := uint8(e.piles[PileStock].size)
			count += ceilDivU8(stockSize, drawCount)
			count += ceilDivU8(movCount-stockSize, drawCount)
		}
	}
	return count
}

func (e *Engine) applyMove(mov Move) {
	e.moves[e.movesTotal] = mov
	e.movesTotal++
	e.lastMove = mov

	from := int(mov.From())
	to := int(mov.To())
	count := int(mov.Count())
	flip := mov.Flip()

	if from == PileWaste && count != 0 {
		if !flip {
			e.piles[PileStock].MoveNReversedTo(&e.piles[PileWaste], count)
		} else {
			e.roundCount++
			size := e.piles[PileStock].size + e.piles[PileWaste].size - count
			if size >= 1 {
				e.piles[PileWaste].MoveNReversedTo(&e.piles[PileStock], size)
			} else {
				e.piles[PileStock].MoveNReversedTo(&e.piles[PileWaste], -size)
			}
		}
	}

	if from == PileWaste || count == 1 {
		e.piles[from].PopTo(&e.piles[to])
		if to >= PileFoundationStart && to <= PileFoundationEnd {
			e.foundationScore++
		} else if from >= PileFoundationStart && from <= PileFoundationEnd {
			e.foundationScore--
		}
	} else {
		e.piles[from].MoveNTo(&e.piles[to], count)
	}

	if flip && from >= PileTableauStart && from <= PileTableauEnd {
		e.piles[from].SetFaceUpCount(1)
	}
}

func (e *Engine) undoMove() {
	e.movesTotal--
	mov := e.moves[e.movesTotal]
	if e.movesTotal > 0 {
		e.lastMove = e.moves[e.movesTotal-1]
	} else {
		e.lastMove = NullMove
	}

	from := int(mov.From())
	to := int(mov.To())
	count := int(mov.Count())
	flip := mov.Flip()

	if from == PileWaste || count == 1 {
		e.piles[to].PopTo(&e.piles[from])
		if to >= PileFoundationStart && to <= PileFoundationEnd {
			e.foundationScore--
		} else if from >= PileFoundationStart && from <= PileFoundationEnd {
			e.foundationScore++
		}
	} else {
		e.piles[to].MoveNTo(&e.piles[from], count)
	}

	if flip && from >= PileTableauStart && from <= PileTableauEnd {
		e.piles[from].SetFaceUpCount(count)
	}

	if from == PileWaste && count != 0 {
		if !flip {
			e.piles[PileWaste].MoveNReversedTo(&e.piles[PileStock], count)
		} else {
			e.roundCount--
			size := e.piles[PileStock].size + e.piles[PileWaste].size - count
			if size >= 1 {
				e.piles[PileStock].MoveNReversedTo(&e.piles[PileWaste], size)
			} else {
				e.piles[PileWaste].MoveNReversedTo(&e.piles[PileStock], -size)
			}
		}
	}
}

func (e *Engine) canMoveToFoundation(card Card) (uint8, bool) {
	if card.IsUnknown() {
		return 0, false
	}
	idx := e.suitsToFoundations[card.Suit]
	if idx >= PileSize {
		return 0, false
	}
	if e.piles[idx].size == int(card.Rank) {
		return uint8(idx), true
	}
	return 0, false
}

// Solve runs the A* search described in spec.md §4.6 against the
// board installed by SetBoard. It returns ErrNoSolution if the search
// space was exhausted without reaching all 52 foundation cards, or
// ErrBudget if maxStates was reached first without that answer being
// known either way.
func (e *Engine) Solve(maxStates int, minimal bool) (SolveResult, error) {
	start := time.Now()
	e.Log.BeginSearch()
	defer e.Log.EndSearch()

	e.reset()
	if e.foundationScore == MaxCard {
		// A won board has nothing left to move: computePossibleMoves
		// would find no candidates, and the search loop below never
		// gets a chance to record a solution node. Catch it here
		// rather than letting it fall through to ErrNoSolution.
		e.Stats = Stats{States: 1, Elapsed: time.Since(start)}
		return SolveResult{Minimal: true, States: 1, Elapsed: time.Since(start), FoundationScore: MaxCard}, nil
	}

	tree := NewMoveTree(maxStates + 1)
	closed := NewStateMap(maxStates + 1)
	openBuf := make(openQueue, 0, maxStates/10+1)
	open := &openBuf
	heap.Init(open)

	rootEstimate := Estimate{Current: 0, Remaining: e.minimumMovesRemaining(false)}
	closed.PutIfBetter(e.fingerprint(), rootEstimate)
	heap.Push(open, openNode{nodeIndex: tree.Root(), priority: 0, estimate: rootEstimate})

	bestSolutionMoveCount := uint8(MaxMoves)
	solutionNodeIndex := int32(-1)
	maxFoundationScore := uint8(0)
	var moveBuf [MaxMoves]Move
	var seq uint32

	stop := false
	for !stop && open.Len() > 0 {
		node := heap.Pop(open).(openNode)
		if tree.Len() >= maxStates {
			break
		}

		estimate := node.estimate
		if estimate.Total() >= bestSolutionMoveCount {
			continue
		}

		movesToMake := tree.Path(node.nodeIndex, moveBuf[:])
		e.reset()
		for i := movesToMake - 1; i >= 0; i-- {
			e.applyMove(moveBuf[i])
		}

		candidates := e.computePossibleMoves()
		for _, mov := range candidates {
			additional := e.calculateAdditionalMoves(mov)
			e.applyMove(mov)

			newEstimate := Estimate{
				Current:   saturatingAddU8(estimate.Current, additional),
				Remaining: e.minimumMovesRemaining(e.roundCount == MaxRounds),
			}

			if newEstimate.Total() < bestSolutionMoveCount && e.roundCount <= MaxRounds {
				if accepted := closed.PutIfBetter(e.fingerprint(), newEstimate); accepted {
					nodeIndex := tree.Add(node.nodeIndex, mov)
					solved := e.foundationScore == MaxCard

					if e.foundationScore > maxFoundationScore || solved {
						solutionNodeIndex = int32(nodeIndex)
						maxFoundationScore = e.foundationScore
					}

					if solved {
						bestSolutionMoveCount = newEstimate.Total()
						if !minimal {
							*open = (*open)[:0]
							stop = true
							break
						}
					} else {
						priority := uint32(newEstimate.Total())<<1 +
							uint32(additional) +
							uint32(MaxCard-e.foundationScore) +
							uint32(e.roundCount)<<1
						seq++
						heap.Push(open, openNode{nodeIndex: nodeIndex, priority: priority, estimate: newEstimate, seq: seq})
						if tree.Len() >= maxStates {
							stop = true
							break
						}
					}
				}
			}

			e.undoMove()
		}

		e.Log.PrintProgress(Stats{States: tree.Len(), Elapsed: time.Since(start)})
	}

	if solutionNodeIndex >= 0 {
		movesToMake := tree.Path(uint32(solutionNodeIndex), moveBuf[:])
		e.reset()
		for i := movesToMake - 1; i >= 0; i-- {
			e.applyMove(moveBuf[i])
		}
	}

	e.Stats = Stats{States: tree.Len(), Elapsed: time.Since(start)}

	if maxFoundationScore != MaxCard {
		if tree.Len() < maxStates {
			return SolveResult{}, newError(ErrNoSolution, "")
		}
		return SolveResult{}, newError(ErrBudget, fmt.Sprintf("reached max states %d", maxStates))
	}

	result := SolveResult{
		Minimal:         minimal && tree.Len() < maxStates,
		States:          tree.Len(),
		Elapsed:         time.Since(start),
		FoundationScore: e.foundationScore,
	}
	result.Moves = append(result.Moves, e.moves[:e.movesTotal]...)
	return result, nil
}
