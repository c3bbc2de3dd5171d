// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command klondike-solve reads a Klondike deal (from a file, a
// --deal seed, or stdin) and prints the shortest action sequence
// Engine finds to clear it, in notation's compressed format.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/zurichess/klondike/config"
	"github.com/zurichess/klondike/engine"
	"github.com/zurichess/klondike/export"
	"github.com/zurichess/klondike/notation"
	"github.com/zurichess/klondike/solvecache"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "klondike-solve:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := config.Load(config.Path())

	fs := flag.NewFlagSet("klondike-solve", flag.ContinueOnError)
	deal := fs.Uint("deal", 0, "solve a deterministic deal generated from this seed instead of reading a board")
	draw := fs.Int("draw", cfg.DrawCount, "cards drawn per turn (1 or 3)")
	maxStates := fs.Int("max-states", cfg.MaxStates, "maximum number of states to explore")
	fast := fs.Bool("fast", !cfg.Minimal, "stop at the first solution found, which may not be minimal")
	preview := fs.Bool("preview", false, "print the initial board and exit without solving")
	noCache := fs.Bool("no-cache", false, "skip the solve-result cache")
	if err := fs.Parse(args); err != nil {
		return err
	}

	board, err := loadBoard(fs.Args(), *deal)
	if err != nil {
		return err
	}
	if *draw != 1 && *draw != 3 {
		return errors.New("draw count must be 1 or 3")
	}
	board.SetDrawCount(*draw)

	if *preview {
		fmt.Println(board.PrettyString())
		return nil
	}

	minimal := !*fast
	actions, stats, err := doSolve(board, *maxStates, minimal, *noCache, cfg.CacheDir)
	if err != nil {
		return err
	}
	printSummary(stats)
	fmt.Println(notation.FormatActions(actions))
	return nil
}

// loadBoard resolves the board from (in priority order) a positional
// file argument, a --deal seed, or piped stdin, matching the reference
// CLI's own source precedence.
func loadBoard(posArgs []string, seed uint) (*notation.Board, error) {
	if len(posArgs) > 0 {
		data, err := os.ReadFile(posArgs[0])
		if err != nil {
			return nil, fmt.Errorf("read board file: %w", err)
		}
		return notation.Parse(string(data))
	}
	if seed != 0 {
		return notation.NewDealFromSeed(uint32(seed)), nil
	}
	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read board from stdin: %w", err)
		}
		return notation.Parse(string(data))
	}
	return nil, errors.New("no board file or --deal seed given, and stdin is not piped")
}

type solveSummary struct {
	actionCount int
	redealCount int
	elapsed     time.Duration
	states      int
	minimal     bool
	fromCache   bool
}

// doSolve runs Engine.Solve against board, consulting and populating
// solvecache unless disabled, and logs progress through a Logger
// adapter that forwards to slog.
func doSolve(board *notation.Board, maxStates int, minimal, noCache bool, cacheDir string) ([]notation.Action, solveSummary, error) {
	boardText := board.PrettyString()

	var cache *solvecache.Cache
	if !noCache {
		c, err := solvecache.Open(cacheDir)
		if err != nil {
			slog.Warn("open solve cache", "error", err)
		} else {
			cache = c
			defer cache.Close()
		}
	}

	if cache != nil {
		if rec, err := cache.Get(boardText); err == nil {
			actions, err := notation.ParseActions(rec.Actions)
			if err == nil {
				return actions, summarize(actions, rec.Elapsed, rec.States, rec.Minimal, true), nil
			}
			slog.Warn("decode cached actions", "error", err)
		} else if !errors.Is(err, solvecache.ErrNotFound) {
			slog.Warn("read solve cache", "error", err)
		}
	}

	log := &progressLogger{}
	eng := engine.NewEngine(engine.Options{}, log)
	if err := eng.SetBoard(board.ToBoardSpec()); err != nil {
		return nil, solveSummary{}, fmt.Errorf("set board: %w", err)
	}

	result, err := eng.Solve(maxStates, minimal)
	if err != nil {
		return nil, solveSummary{}, err
	}

	actions := export.Actions(board, result.Moves)
	summary := summarize(actions, result.Elapsed, result.States, result.Minimal, false)

	if cache != nil {
		rec := solvecache.Record{
			Actions:         notation.EncodeActions(actions),
			States:          result.States,
			Minimal:         result.Minimal,
			FoundationScore: result.FoundationScore,
			Elapsed:         result.Elapsed,
		}
		if err := cache.Put(boardText, rec); err != nil {
			slog.Warn("write solve cache", "error", err)
		}
	}

	return actions, summary, nil
}

func summarize(actions []notation.Action, elapsed time.Duration, states int, minimal, fromCache bool) solveSummary {
	redeals := 0
	for _, a := range actions {
		if a.IsRedeal() {
			redeals++
		}
	}
	return solveSummary{
		actionCount: len(actions) - redeals,
		redealCount: redeals,
		elapsed:     elapsed,
		states:      states,
		minimal:     minimal,
		fromCache:   fromCache,
	}
}

func printSummary(s solveSummary) {
	steps := fmt.Sprintf("%d Moves", s.actionCount)
	if s.redealCount > 0 {
		if s.redealCount > 1 {
			steps += fmt.Sprintf(", %d Redeals", s.redealCount)
		} else {
			steps += ", 1 Redeal"
		}
	}
	suffix := ""
	if s.fromCache {
		suffix = " (cached)"
	}
	fmt.Fprintf(os.Stderr, "Solved in %s - Minimal: %t, Time: %s, States: %d%s\n",
		steps, s.minimal, formatElapsed(s.elapsed), s.states, suffix)
}

func formatElapsed(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 90 {
		ms := (d % time.Second) / time.Millisecond
		return fmt.Sprintf("%d.%03ds", secs, ms)
	}
	return fmt.Sprintf("%dm %ds", secs/60, secs%60)
}

// progressLogger adapts engine.Logger to slog, counting search
// iterations so PrintProgress only logs every so often instead of on
// every node.
type progressLogger struct {
	calls atomic.Int64
}

func (p *progressLogger) BeginSearch() { slog.Info("search started") }
func (p *progressLogger) EndSearch()   { slog.Info("search finished") }

func (p *progressLogger) PrintProgress(stats engine.Stats) {
	if n := p.calls.Add(1); n%1000 != 0 {
		return
	}
	slog.Info("search progress", "states", stats.States, "elapsed", stats.Elapsed)
}
