// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import (
	"fmt"
	"strconv"
	"strings"
)

// ActionKind distinguishes the seven user-facing action shapes a
// solved game decomposes into.
type ActionKind uint8

const (
	ActionWasteToFoundation ActionKind = iota
	ActionWasteToTableau
	ActionTableauToFoundation
	ActionFoundationToTableau
	ActionTableauToTableau
	ActionDraw
	ActionRedeal
)

// Action is one user-facing move, as ActionExporter emits and
// FormatActions renders. From/To/Count are only meaningful for the
// kinds that use them; zero otherwise.
type Action struct {
	Kind  ActionKind
	From  int
	To    int
	Count int
}

func (a Action) IsRedeal() bool { return a.Kind == ActionRedeal }

// ApplyAction replays a against board, mutating it in place.
func ApplyAction(board *Board, a Action) {
	switch a.Kind {
	case ActionWasteToFoundation:
		board.MoveWasteToFoundation(a.From)
	case ActionWasteToTableau:
		board.MoveWasteToTableau(a.To)
	case ActionTableauToFoundation:
		board.MoveTableauToFoundation(a.From, a.To)
	case ActionFoundationToTableau:
		board.MoveFoundationToTableau(a.From, a.To)
	case ActionTableauToTableau:
		board.MoveTableauToTableau(a.From, a.To, a.Count)
	case ActionDraw, ActionRedeal:
		board.Draw()
	}
}

// DescribeAction renders a as a human-readable sentence against
// board's state immediately before a is applied.
func DescribeAction(board *Board, a Action) string {
	formatCard := func(ok bool, s string) string {
		if !ok {
			return ""
		}
		return s
	}
	foundationCard := func(idx int) string {
		c := board.Foundations[idx]
		return formatCard(!c.IsUnknown(), c.PrettyString())
	}

	switch a.Kind {
	case ActionWasteToFoundation:
		from := formatCard(len(board.Waste.Cards) > 0, board.Waste.PeekTop().PrettyString())
		return fmt.Sprintf("(Waste) %s -> (Foundation%d) %s", from, a.From+1, foundationCard(a.From))
	case ActionWasteToTableau:
		from := formatCard(len(board.Waste.Cards) > 0, board.Waste.PeekTop().PrettyString())
		to := formatCard(len(board.Tableaus[a.To].Cards) > 0, board.Tableaus[a.To].PeekTop().PrettyString())
		return fmt.Sprintf("(Waste) %s -> (Tableau%d) %s", from, a.To+1, to)
	case ActionTableauToFoundation:
		from := formatCard(len(board.Tableaus[a.From].Cards) > 0, board.Tableaus[a.From].PeekTop().PrettyString())
		return fmt.Sprintf("(Tableau%d) %s -> (Foundation%d) %s", a.From+1, from, a.To+1, foundationCard(a.To))
	case ActionFoundationToTableau:
		to := formatCard(len(board.Tableaus[a.To].Cards) > 0, board.Tableaus[a.To].PeekTop().PrettyString())
		return fmt.Sprintf("(Foundation%d) %s -> (Tableau%d) %s", a.From+1, foundationCard(a.From), a.To+1, to)
	case ActionTableauToTableau:
		cards := board.Tableaus[a.From].Cards
		var moved strings.Builder
		for _, c := range cards[len(cards)-a.Count:] {
			moved.WriteString(c.PrettyString())
		}
		to := formatCard(len(board.Tableaus[a.To].Cards) > 0, board.Tableaus[a.To].PeekTop().PrettyString())
		return fmt.Sprintf("(Tableau%d) %s -> (Tableau%d) %s", a.From+1, moved.String(), a.To+1, to)
	case ActionDraw:
		clone := board.Clone()
		clone.Draw()
		return fmt.Sprintf("Draw %s", formatCard(len(clone.Waste.Cards) > 0, clone.Waste.PeekTop().PrettyString()))
	case ActionRedeal:
		return "Redeal"
	}
	return ""
}

// actionToken renders the single non-Draw action a as its compressed
// token; Draw runs are handled separately by the callers since they
// collapse across multiple actions.
func actionToken(a Action) string {
	switch a.Kind {
	case ActionWasteToFoundation:
		return fmt.Sprintf("W:F%d", a.From+1)
	case ActionWasteToTableau:
		return fmt.Sprintf("W:T%d", a.To+1)
	case ActionTableauToFoundation:
		return fmt.Sprintf("T%d:F%d", a.From+1, a.To+1)
	case ActionFoundationToTableau:
		return fmt.Sprintf("F%d:T%d", a.From+1, a.To+1)
	case ActionTableauToTableau:
		if a.Count > 1 {
			return fmt.Sprintf("T%d:T%d@%d", a.From+1, a.To+1, a.Count)
		}
		return fmt.Sprintf("T%d:T%d", a.From+1, a.To+1)
	case ActionRedeal:
		return "R"
	}
	return ""
}

// tokensFor collapses actions into the package's token vocabulary,
// folding consecutive Draw actions into a single "<N>D" token.
func tokensFor(actions []Action) []string {
	var tokens []string
	for i := 0; i < len(actions); {
		if actions[i].Kind == ActionDraw {
			count := 1
			for i+count < len(actions) && actions[i+count].Kind == ActionDraw {
				count++
			}
			if count == 1 {
				tokens = append(tokens, "D")
			} else {
				tokens = append(tokens, fmt.Sprintf("%dD", count))
			}
			i += count
			continue
		}
		tokens = append(tokens, actionToken(actions[i]))
		i++
	}
	return tokens
}

// EncodeActions renders actions as a single space-separated line of
// tokens, with no column padding or line wrapping — meant to be
// round-tripped through ParseActions (e.g. by solvecache), not read
// by a person. Use FormatActions for display.
func EncodeActions(actions []Action) string {
	return strings.Join(tokensFor(actions), " ")
}

// ParseActions is EncodeActions' inverse: it also accepts
// FormatActions' padded, multi-line output, since whitespace is
// collapsed on read.
func ParseActions(s string) ([]Action, error) {
	var actions []Action
	for _, tok := range strings.Fields(s) {
		if tok == "D" {
			actions = append(actions, Action{Kind: ActionDraw})
			continue
		}
		if n, ok := parseDrawRun(tok); ok {
			for i := 0; i < n; i++ {
				actions = append(actions, Action{Kind: ActionDraw})
			}
			continue
		}
		if tok == "R" {
			actions = append(actions, Action{Kind: ActionRedeal})
			continue
		}
		a, err := parseMoveToken(tok)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func parseDrawRun(tok string) (int, bool) {
	if !strings.HasSuffix(tok, "D") {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(tok, "D"))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func pileIndex(tok string) (kind byte, idx int, err error) {
	if tok == "W" {
		return 'W', 0, nil
	}
	if len(tok) < 2 {
		return 0, 0, fmt.Errorf("notation: invalid pile token %q", tok)
	}
	idx, err = strconv.Atoi(tok[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("notation: invalid pile token %q: %w", tok, err)
	}
	return tok[0], idx - 1, nil
}

func parseMoveToken(tok string) (Action, error) {
	from, to, found := strings.Cut(tok, ":")
	if !found {
		return Action{}, fmt.Errorf("notation: invalid action token %q", tok)
	}
	toPart, countPart, hasCount := strings.Cut(to, "@")

	fromKind, fromIdx, err := pileIndex(from)
	if err != nil {
		return Action{}, err
	}
	toKind, toIdx, err := pileIndex(toPart)
	if err != nil {
		return Action{}, err
	}

	count := 1
	if hasCount {
		count, err = strconv.Atoi(countPart)
		if err != nil {
			return Action{}, fmt.Errorf("notation: invalid count in %q: %w", tok, err)
		}
	}

	switch {
	case fromKind == 'W' && toKind == 'F':
		return Action{Kind: ActionWasteToFoundation, From: toIdx}, nil
	case fromKind == 'W' && toKind == 'T':
		return Action{Kind: ActionWasteToTableau, To: toIdx}, nil
	case fromKind == 'T' && toKind == 'F':
		return Action{Kind: ActionTableauToFoundation, From: fromIdx, To: toIdx}, nil
	case fromKind == 'F' && toKind == 'T':
		return Action{Kind: ActionFoundationToTableau, From: fromIdx, To: toIdx}, nil
	case fromKind == 'T' && toKind == 'T':
		return Action{Kind: ActionTableauToTableau, From: fromIdx, To: toIdx, Count: count}, nil
	}
	return Action{}, fmt.Errorf("notation: invalid action token %q", tok)
}

// FormatActions renders actions as the package's compressed notation:
// space-separated tokens, ten per line, runs of consecutive Draw
// actions collapsed into a single "<N>D" token.
func FormatActions(actions []Action) string {
	tokens := tokensFor(actions)

	maxWidth := 0
	for _, t := range tokens {
		if len(t) > maxWidth {
			maxWidth = len(t)
		}
	}
	maxWidth++

	var out strings.Builder
	for i := 0; i < len(tokens); i += 10 {
		end := i + 10
		if end > len(tokens) {
			end = len(tokens)
		}
		for _, t := range tokens[i:end] {
			out.WriteString(t)
			for pad := len(t); pad < maxWidth; pad++ {
				out.WriteByte(' ')
			}
		}
		out.WriteByte('\n')
	}
	return out.String()
}
