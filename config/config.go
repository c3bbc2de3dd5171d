// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config implements cmd/klondike-solve's persisted defaults:
// an optional YAML file, read once at startup and overridable by
// flags. It follows the example pack's save/restore pattern of a
// partial update followed by a full marshal/write, logging rather
// than failing on a missing or corrupt file, since a config file is a
// convenience, never a requirement.
package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds cmd/klondike-solve's flag defaults.
type Config struct {
	file string

	MaxStates  int    `yaml:"max_states"`
	Minimal    bool   `yaml:"minimal"`
	DrawCount  int    `yaml:"draw_count"`
	CacheDir   string `yaml:"cache_dir"`
}

// Default returns the built-in defaults, used when no config file
// exists yet.
func Default() *Config {
	return &Config{
		MaxStates: 200_000,
		Minimal:   true,
		DrawCount: 1,
		CacheDir:  defaultCacheDir(),
	}
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".klondike-solve-cache"
	}
	return filepath.Join(dir, "klondike-solve", "solves")
}

// Path returns the default config file path,
// ~/.config/klondike-solve/config.yaml (or its platform equivalent).
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "klondike-solve.yaml"
	}
	return filepath.Join(dir, "klondike-solve", "config.yaml")
}

// Load reads path into a fresh Config seeded with Default, logging
// (not failing) if the file is missing or malformed.
func Load(path string) *Config {
	c := Default()
	c.file = path

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("read config", "path", path, "error", err)
		}
		return c
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		slog.Warn("parse config", "path", path, "error", err)
	}
	return c
}

// Save writes c back to its file, creating the parent directory if
// necessary. Failures are logged, not returned: persisting config is
// a convenience, not something callers should need to handle.
func (c *Config) Save() {
	if c.file == "" {
		c.file = Path()
	}
	if err := os.MkdirAll(filepath.Dir(c.file), 0o755); err != nil {
		slog.Warn("create config dir", "path", c.file, "error", err)
		return
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		slog.Warn("encode config", "error", err)
		return
	}
	if err := os.WriteFile(c.file, data, 0o644); err != nil {
		slog.Warn("write config", "path", c.file, "error", err)
	}
}
