// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DomGries/FreelancerModStudio-sub001/content"
)

func TestOpenSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), FileName)
	s := Default()
	s.DataDir = "~/games/data"
	s.Round = true
	s.WatchModels = true
	s.Style = map[string]string{"planet": "#ff0000"}
	require.NoError(t, s.Save(fn))

	o, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, s, o)

	require.NoError(t, os.WriteFile(fn, []byte("round = true\n"), 0o644))
	o, err = Open(fn)
	require.NoError(t, err)
	assert.True(t, o.Round)
	assert.Equal(t, Default().Universe, o.Universe)
	assert.Equal(t, 256, o.ModelCacheSize)

	require.NoError(t, os.WriteFile(fn, []byte("round = \n"), 0o644))
	_, err = Open(fn)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDataDir, "")
	s, err := Load(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	fn := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(fn, []byte("data_dir = \"/srv/game\"\n"), 0o644))
	s, err = Load(fn)
	require.NoError(t, err)
	assert.Equal(t, "/srv/game", s.DataDir)

	t.Setenv(EnvDataDir, dir)
	s, err = Load(fn)
	require.NoError(t, err)
	assert.Equal(t, dir, s.DataDir)
	got, err := s.Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(dir), got)
	_, err = s.FS()
	assert.NoError(t, err)
}

func TestDir(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)
	s := &Settings{DataDir: "~/data"}
	dir, err := s.Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data"), dir)
}

func TestNewStyle(t *testing.T) {
	s := &Settings{Style: map[string]string{
		"Planet": "#ff0000",
		"nebula": "#00ff00",
		"sun":    "yellow",
	}}
	st, err := s.NewStyle()
	assert.Error(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, st.Color(content.Planet))
	assert.Equal(t, content.DefaultStyle().Color(content.Sun), st.Color(content.Sun))

	st, err = Default().NewStyle()
	assert.NoError(t, err)
	assert.Equal(t, content.DefaultStyle(), st)
}
