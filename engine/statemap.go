// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// statemap.go implements StateMap, the closed set of the A* search:
// every fingerprint seen so far, mapped to the best Estimate known for
// it. It plays the same role the teacher's hash_table.go transposition
// table played for chess search, but cannot tolerate the teacher's
// lock-based probabilistic collisions — two distinct fingerprints must
// never be silently conflated, since doing so would merge two
// genuinely different boards and could make the search miss the
// actual optimum (or, worse, no solution at all). So, unlike
// hash_table.go, each slot stores the full 64-bit key and collisions
// are resolved by linear probing rather than by a 32-bit lock.
package engine

import "math"

// emptyKey marks an unused slot.
const emptyKey = math.MaxUint64

type stateEntry struct {
	key   uint64
	value Estimate
}

// StateMap is an open-addressed fingerprint -> Estimate map sized to a
// fixed capacity at construction.
type StateMap struct {
	table []stateEntry
}

// NewStateMap returns a StateMap able to hold roughly capacity
// entries before the load factor degrades probing performance; the
// backing table is sized to the next prime at least capacity*2 to
// keep linear probing cheap near the configured node budget.
func NewStateMap(capacity int) *StateMap {
	size := findPrime(capacity*2 + 1)
	table := make([]stateEntry, size)
	for i := range table {
		table[i].key = emptyKey
	}
	return &StateMap{table: table}
}

func (m *StateMap) index(key uint64) int {
	return int(key % uint64(len(m.table)))
}

// Get returns the stored Estimate for key and true, or a zero Estimate
// and false if key has not been seen.
func (m *StateMap) Get(key uint64) (Estimate, bool) {
	n := len(m.table)
	i := m.index(key)
	for probed := 0; probed < n; probed++ {
		e := &m.table[i]
		if e.key == emptyKey {
			return Estimate{}, false
		}
		if e.key == key {
			return e.value, true
		}
		i++
		if i == n {
			i = 0
		}
	}
	return Estimate{}, false
}

// PutIfBetter records value for key if key is unseen, or if value is
// strictly better (a lower Total()) than the previously recorded
// estimate. It reports whether the map now reflects value (true), or
// whether an existing, at-least-as-good estimate made this one
// redundant (false) — the latter tells the caller to prune this
// search branch. A tie is treated as redundant: re-exploring a state
// at the same cost it was already reached at can never improve on the
// first path found to it.
func (m *StateMap) PutIfBetter(key uint64, value Estimate) bool {
	n := len(m.table)
	i := m.index(key)
	for probed := 0; probed < n; probed++ {
		e := &m.table[i]
		if e.key == emptyKey {
			e.key = key
			e.value = value
			return true
		}
		if e.key == key {
			if value.Total() < e.value.Total() {
				e.value = value
				return true
			}
			return false
		}
		i++
		if i == n {
			i = 0
		}
	}
	// Table exhausted: capacity was undersized for the search budget.
	// This can only happen if the caller sized NewStateMap below the
	// actual max_states budget, a programming error.
	panic("engine: StateMap capacity exceeded")
}

// findPrime returns the smallest prime >= n, via trial division. This
// mirrors the reference solver's find_prime helper, used there (and
// here) to size hash-style tables without the clustering a power-of-
// two modulus can produce under this workload's fingerprint
// distribution.
func findPrime(n int) int {
	if n < 2 {
		return 2
	}
	for {
		if isPrime(n) {
			return n
		}
		n++
	}
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
