// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation_test

import (
	"testing"

	"github.com/zurichess/klondike/notation"
)

func TestEncodeActionsCollapsesDrawRuns(t *testing.T) {
	actions := []notation.Action{
		{Kind: notation.ActionDraw},
		{Kind: notation.ActionDraw},
		{Kind: notation.ActionDraw},
		{Kind: notation.ActionRedeal},
		{Kind: notation.ActionWasteToFoundation, From: 2},
	}
	got := notation.EncodeActions(actions)
	want := "3D R W:F3"
	if got != want {
		t.Errorf("EncodeActions(%v) = %q, want %q", actions, got, want)
	}
}

func TestEncodeActionsSingleDrawIsNotCollapsed(t *testing.T) {
	actions := []notation.Action{{Kind: notation.ActionDraw}}
	if got := notation.EncodeActions(actions); got != "D" {
		t.Errorf("EncodeActions(single draw) = %q, want %q", got, "D")
	}
}

func TestActionsRoundTripThroughEncodeAndParse(t *testing.T) {
	actions := []notation.Action{
		{Kind: notation.ActionDraw},
		{Kind: notation.ActionDraw},
		{Kind: notation.ActionRedeal},
		{Kind: notation.ActionWasteToFoundation, From: 0},
		{Kind: notation.ActionWasteToTableau, To: 4},
		{Kind: notation.ActionTableauToFoundation, From: 1, To: 3},
		{Kind: notation.ActionFoundationToTableau, From: 2, To: 5},
		{Kind: notation.ActionTableauToTableau, From: 0, To: 6, Count: 1},
		{Kind: notation.ActionTableauToTableau, From: 6, To: 0, Count: 4},
	}

	encoded := notation.EncodeActions(actions)
	decoded, err := notation.ParseActions(encoded)
	if err != nil {
		t.Fatalf("ParseActions(%q): %v", encoded, err)
	}
	if len(decoded) != len(actions) {
		t.Fatalf("decoded %d actions, want %d (encoded: %q)", len(decoded), len(actions), encoded)
	}
	for i := range actions {
		if decoded[i] != actions[i] {
			t.Errorf("decoded[%d] = %+v, want %+v", i, decoded[i], actions[i])
		}
	}
}

func TestParseActionsAcceptsFormatActionsOutput(t *testing.T) {
	actions := []notation.Action{
		{Kind: notation.ActionDraw},
		{Kind: notation.ActionWasteToTableau, To: 1},
		{Kind: notation.ActionTableauToTableau, From: 2, To: 3, Count: 5},
	}
	formatted := notation.FormatActions(actions)

	decoded, err := notation.ParseActions(formatted)
	if err != nil {
		t.Fatalf("ParseActions(%q): %v", formatted, err)
	}
	if len(decoded) != len(actions) {
		t.Fatalf("decoded %d actions from padded output, want %d", len(decoded), len(actions))
	}
	for i := range actions {
		if decoded[i] != actions[i] {
			t.Errorf("decoded[%d] = %+v, want %+v", i, decoded[i], actions[i])
		}
	}
}

func TestParseActionsRejectsGarbage(t *testing.T) {
	if _, err := notation.ParseActions("X9:Y2"); err == nil {
		t.Error("ParseActions(garbage) returned nil error, want an error")
	}
}
