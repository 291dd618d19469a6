// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config has the settings of the editor tools: where the game
// data lives, how coordinates are written back, the model cache, and
// the colors used to draw content.
package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/DomGries/FreelancerModStudio-sub001/base/errors"
	"github.com/DomGries/FreelancerModStudio-sub001/content"
)

const (
	// FileName is the default name of the settings file.
	FileName = "lancer.toml"

	// EnvDataDir is the environment variable that overrides
	// [Settings.DataDir].
	EnvDataDir = "LANCER_DATA_DIR"
)

// Settings are the settings of the editor tools.
type Settings struct {

	// DataDir is the game data directory; game paths are relative to it.
	// It may start with ~ for the home directory.
	DataDir string `toml:"data_dir"`

	// Universe is the path of the universe file within DataDir.
	Universe string `toml:"universe"`

	// Archetypes is the path of the solar archetype file within DataDir.
	Archetypes string `toml:"archetypes"`

	// Round is whether written coordinates are rounded to one decimal.
	Round bool `toml:"round"`

	// ModelCacheSize is the number of loaded models kept in memory.
	ModelCacheSize int `toml:"model_cache_size"`

	// WatchModels is whether cached models are reloaded when their
	// files change on disk.
	WatchModels bool `toml:"watch_models"`

	// Style overrides the color of content kinds, as kind name to
	// "#rrggbb" hex color.
	Style map[string]string `toml:"style"`
}

// Default returns the default settings.
func Default() *Settings {
	return &Settings{
		DataDir:        ".",
		Universe:       `DATA\UNIVERSE\universe.ini`,
		Archetypes:     `DATA\SOLAR\solararch.ini`,
		ModelCacheSize: 256,
	}
}

// Open reads settings from the given TOML file. Fields missing from
// the file keep their default values.
func Open(path string) (*Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := Default()
	if err := toml.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return s, nil
}

// Save writes the settings to the given TOML file.
func (s *Settings) Save(path string) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Load loads a .env file from the current directory if there is one,
// then the settings from path if it exists, and finally applies
// environment overrides. An empty path uses [FileName].
func Load(path string) (*Settings, error) {
	_ = godotenv.Load()
	if path == "" {
		path = FileName
	}
	s, err := Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		s, err = Default(), nil
	}
	if err != nil {
		return nil, err
	}
	if dir := strings.TrimSpace(os.Getenv(EnvDataDir)); dir != "" {
		s.DataDir = dir
	}
	return s, nil
}

// Dir returns the data directory with ~ expanded.
func (s *Settings) Dir() (string, error) {
	dir, err := homedir.Expand(s.DataDir)
	if err != nil {
		return "", err
	}
	return filepath.Clean(dir), nil
}

// FS returns the file system of the data directory.
func (s *Settings) FS() (fs.FS, error) {
	dir, err := s.Dir()
	if err != nil {
		return nil, err
	}
	return os.DirFS(dir), nil
}

// NewStyle returns the default style with the color overrides of
// the settings applied. Invalid overrides are skipped and reported
// in the returned error.
func (s *Settings) NewStyle() (*content.Style, error) {
	st := content.DefaultStyle()
	var errs []error
	for kind, hex := range s.Style {
		errs = append(errs, st.SetHex(kind, hex))
	}
	return st, errors.Join(errs...)
}
