// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// movetree.go implements MoveTree, an append-only arena of MoveNodes
// used to reconstruct the path from the search root to any open-queue
// entry without storing a full board snapshot per node.
//
// This plays the same role the teacher's pv.go principal-variation
// table played for chess search: instead of re-deriving a line by
// re-running search, a line is recovered cheaply by walking parent
// pointers and replaying the moves found.

package engine

// moveNode is one arena slot: the move that was applied to reach this
// node, and the index of the node it was applied from. Index 0 is the
// arena's root and is never a real move.
type moveNode struct {
	parent uint32
	mov    Move
}

// MoveTree is a fixed-capacity, append-only arena of moveNodes.
type MoveTree struct {
	nodes []moveNode
}

// NewMoveTree returns a MoveTree with room for capacity nodes plus the
// root sentinel at index 0.
func NewMoveTree(capacity int) *MoveTree {
	t := &MoveTree{nodes: make([]moveNode, 1, capacity+1)}
	t.nodes[0] = moveNode{parent: 0, mov: NullMove}
	return t
}

// Root is the index of the arena's root node.
func (t *MoveTree) Root() uint32 { return 0 }

// Add appends a new node recording that mov was applied from parent,
// and returns the new node's index.
func (t *MoveTree) Add(parent uint32, mov Move) uint32 {
	t.nodes = append(t.nodes, moveNode{parent: parent, mov: mov})
	return uint32(len(t.nodes) - 1)
}

// Len returns the number of nodes currently stored, including the
// root.
func (t *MoveTree) Len() int { return len(t.nodes) }

// Path fills dst, most-recent-move-first, with the sequence of moves
// from the root to index, and returns how many moves were written.
// Walking stops at the root or at a NULL move, whichever comes first.
func (t *MoveTree) Path(index uint32, dst []Move) int {
	n := 0
	for index != 0 && n < len(dst) {
		node := t.nodes[index]
		if node.mov.IsNull() {
			break
		}
		dst[n] = node.mov
		n++
		index = node.parent
	}
	return n
}
