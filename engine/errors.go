// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "errors"

// ErrInvalidBoard is returned by SetBoard when the supplied board does
// not describe a legal, complete 52-card Klondike deal.
var ErrInvalidBoard = errors.New("engine: invalid board")

// ErrNoSolution is returned by Solve when the search ran out of
// positions to explore, within its node budget, without ever getting
// all 52 cards onto the foundations.
var ErrNoSolution = errors.New("engine: no solution found")

// ErrBudget is returned by Solve when the node budget was exhausted
// before the search could determine whether a solution exists.
var ErrBudget = errors.New("engine: node budget exhausted")

// Error wraps one of the three sentinel kinds above with additional
// context, while still satisfying errors.Is against the sentinel.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newError(sentinel error, message string) error {
	return &Error{Err: sentinel, Message: message}
}
