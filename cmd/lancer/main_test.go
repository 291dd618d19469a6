// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dataFiles = map[string]string{
	"DATA/SOLAR/solararch.ini": `[Solar]
nickname = GateX
type = jump_gate
da_archetype = solar\gate.cmp

[Solar]
nickname = HoleY
type = jump_hole
da_archetype = solar\hole.cmp
`,
	"DATA/UNIVERSE/universe.ini": `[System]
nickname = S1
file = systems\s1\s1.ini
pos = 10, 5

[System]
nickname = S2
file = systems\s2\s2.ini
pos = 7.5, 7.5
`,
	"DATA/UNIVERSE/SYSTEMS/S1/s1.ini": `[Object]
nickname = O1
archetype = GateX
goto = S2, O2, gate
pos = 100, 200, 300

[Zone]
nickname = Z1
shape = SPHERE
size = 50
`,
	"DATA/UNIVERSE/SYSTEMS/S2/s2.ini": `[Object]
nickname = O2
archetype = HoleY
goto = S1, O1, hole
`,
}

func writeData(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, text := range dataFiles {
		fn := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(fn), 0o755))
		require.NoError(t, os.WriteFile(fn, []byte(text), 0o644))
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--color", "off", "--config", filepath.Join(t.TempDir(), "none.toml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestGraphCmd(t *testing.T) {
	dir := writeData(t)
	out, err := run(t, "--data", dir, "graph")
	require.NoError(t, err)
	assert.Contains(t, out, "S1 [gate] <-> S2 [hole]")
	assert.Contains(t, out, "1 connections")

	_, err = run(t, "--data", dir, "graph", "missing.ini")
	assert.Error(t, err)
}

func TestClassifyCmd(t *testing.T) {
	dir := writeData(t)
	out, err := run(t, "--data", dir, "classify", `data\universe\systems\s1\s1.ini`)
	require.NoError(t, err)
	assert.Contains(t, out, "JumpGate")
	assert.Contains(t, out, "ZoneSphere")
	assert.Contains(t, out, "model solar\\gate.cmp")

	out, err = run(t, "--data", dir, "classify", "--type", "universe", "DATA/UNIVERSE/universe.ini")
	require.NoError(t, err)
	assert.Contains(t, out, "System: 2")

	_, err = run(t, "--data", dir, "classify", "--type", "bogus", "DATA/UNIVERSE/universe.ini")
	assert.Error(t, err)
}

func TestClassifyStyle(t *testing.T) {
	dir := writeData(t)
	cfg := filepath.Join(t.TempDir(), "lancer.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[style]\nJumpGate = \"#ff0000\"\nbogus = \"#00ff00\"\n"), 0o644))
	t.Cleanup(func() { color.NoColor = true })

	out, err := run(t, "--data", dir, "--color", "on", "--config", cfg, "classify", `data\universe\systems\s1\s1.ini`)
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[38;2;255;0;0mJumpGate\x1b[0m")
	assert.Contains(t, out, "invalid style color")
}

func TestModelCmd(t *testing.T) {
	dir := writeData(t)
	out, err := run(t, "--data", dir, "model", "solar/gate.cmp")
	require.NoError(t, err)
	assert.Contains(t, out, "no model")
}
