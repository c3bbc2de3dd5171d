// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solvecache persists solve results across cmd/klondike-solve
// invocations, keyed by a hash of the board text that produced them.
// It follows the JSON-marshal-then-txn.Set / txn.Get-then-unmarshal
// pattern the example pack's chess app uses for its own badger-backed
// preferences store — just with a solve Record in place of user
// preferences, and a content hash in place of a fixed key name.
package solvecache

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned by Get when boardText has no cached Record.
var ErrNotFound = errors.New("solvecache: not found")

// Record is what gets cached per solved board: just enough to answer
// a repeat CLI invocation without calling Engine.Solve again.
type Record struct {
	Actions         string        `json:"actions"`
	States          int           `json:"states"`
	Minimal         bool          `json:"minimal"`
	FoundationScore uint8         `json:"foundation_score"`
	Elapsed         time.Duration `json:"elapsed"`
	CachedAt        time.Time     `json:"cached_at"`
}

// Cache wraps a badger database of Records.
type Cache struct {
	db *badger.DB
}

// Open opens (creating if necessary) a badger database rooted at dir.
func Open(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// key hashes boardText (the notation.Board.PrettyString of the deal
// that was solved) into the fixed-width badger key. Two boards that
// render to identical text are, by construction, the identical deal.
func key(boardText string) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], xxhash.Sum64String(boardText))
	return buf[:]
}

// Get returns the cached Record for boardText, or ErrNotFound.
func (c *Cache) Get(boardText string) (*Record, error) {
	var rec Record
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(boardText))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Put stores rec under boardText's key, stamping CachedAt.
func (c *Cache) Put(boardText string, rec Record) error {
	rec.CachedAt = time.Now()
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(boardText), data)
	})
}
