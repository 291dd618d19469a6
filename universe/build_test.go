// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package universe

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DomGries/FreelancerModStudio-sub001/content"
	"github.com/DomGries/FreelancerModStudio-sub001/ini"
)

var archetypes = content.Archetypes{
	"gatex":  {Name: "GateX", Kind: content.JumpGate, ModelPath: "gate.cmp"},
	"holey":  {Name: "HoleY", Kind: content.JumpHole, ModelPath: "hole.cmp"},
	"planet": {Name: "planet", Kind: content.Planet, Radius: 1000},
}

func system(nick, file string) *ini.Section {
	if file == "" {
		return ini.NewSection("system", "nickname", nick)
	}
	return ini.NewSection("system", "nickname", nick, "file", file)
}

func jump(nick, arch, gotoValue string) *ini.Section {
	return ini.NewSection("object", "nickname", nick, "archetype", arch, "goto", gotoValue)
}

func systemFile(sections ...*ini.Section) *ini.File {
	return &ini.File{Sections: sections}
}

func TestBuildExample(t *testing.T) {
	open := ini.MapOpener{
		`systems\s1\s1.ini`: systemFile(jump("O1", "GateX", "S2,0,0")),
		`systems\s2\s2.ini`: systemFile(jump("O2", "HoleY", "S1,0,0")),
	}
	s1 := system("S1", `systems\s1\s1.ini`)
	s2 := system("S2", `systems\s2\s2.ini`)

	for _, order := range [][]*ini.Section{{s1, s2}, {s2, s1}} {
		g := BuildFile(&ini.File{Sections: order}, open, archetypes)
		require.Equal(t, 1, g.Len())

		var id1, id2 int
		for id, nm := range g.Names {
			switch nm {
			case "S1":
				id1 = id
			case "S2":
				id2 = id
			}
		}
		c, ok := g.Connection(id1, id2)
		require.True(t, ok)
		_, ok = g.Connection(id2, id1)
		require.True(t, ok)
		assert.Equal(t, KeyOf(id1, id2), g.Keys()[0])
		assert.Equal(t, Endpoint{ID: id1, JumpGate: true}, *c.Endpoint(id1))
		assert.Equal(t, Endpoint{ID: id2, JumpHole: true}, *c.Endpoint(id2))
	}
}

func TestBuildEdgeCases(t *testing.T) {
	open := ini.MapOpener{
		"a.ini": systemFile(
			jump("a_to_b", "GateX", "B, b_to_a, tunnel"),
			jump("a_to_b_hole", "HoleY", "b"),
			jump("a_to_b_again", "gatex", "B"),
			jump("a_self", "GateX", "A"),
			jump("a_to_nowhere", "GateX", "Z"),
			jump("a_unknown_arch", "nope", "C"),
			jump("a_planet", "planet", "C"),
			ini.NewSection("object", "nickname", "a_no_goto", "archetype", "GateX"),
			ini.NewSection("zone", "nickname", "gate_zone", "goto", "C"),
		),
		"b.ini": systemFile(jump("b_to_a", "GateX", "A")),
		"c.ini": nil,
	}
	uni := &ini.File{Sections: []*ini.Section{
		ini.NewSection("Time"),
		system("A", "a.ini"),
		system("B", "b.ini"),
		system("C", "c.ini"),
		system("D", "missing.ini"),
		system("E", ""),
	}}
	g := BuildFile(uni, open, archetypes)
	require.Equal(t, 1, g.Len())
	assert.Len(t, g.Names, 5)

	c := g.Connections()[0]
	assert.NotEqual(t, c.A.ID, c.B.ID)
	assert.Equal(t, "A", g.Names[c.A.ID])
	assert.Equal(t, Endpoint{ID: c.A.ID, JumpGate: true, JumpHole: true}, c.A)
	assert.Equal(t, Endpoint{ID: c.B.ID, JumpGate: true}, c.B)
}

func TestBuildFS(t *testing.T) {
	fsys := fstest.MapFS{
		"Universe/Systems/S1/S1.ini": {Data: []byte("[Object]\nnickname = O1\narchetype = GateX\ngoto = S2, O2, tunnel\n")},
		"Universe/Systems/S2/S2.ini": {Data: []byte("[Object]\nnickname = O2\narchetype = GateX\ngoto = S1, O1, tunnel\n")},
		"Universe/Systems/S3/S3.ini": {Data: []byte("not ini\n")},
	}
	uni := &ini.File{Sections: []*ini.Section{
		system("S1", `universe\systems\s1\s1.ini`),
		system("S2", `universe\systems\s2\s2.ini`),
		system("S3", `universe\systems\s3\s3.ini`),
	}}
	g := BuildFile(uni, &ini.FSOpener{FS: fsys}, archetypes)
	require.Equal(t, 1, g.Len())
	c := g.Connections()[0]
	assert.True(t, c.A.JumpGate)
	assert.True(t, c.B.JumpGate)
	assert.False(t, c.A.JumpHole || c.B.JumpHole)
}

func TestGraph(t *testing.T) {
	g := NewGraph()
	assert.False(t, g.Add(3, 3, true, false))
	assert.True(t, g.Add(5, 2, true, false))
	assert.True(t, g.Add(2, 5, false, true))
	assert.True(t, g.Add(5, 2, false, false))
	assert.True(t, g.Add(2, 9, true, false))
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []Key{{Lo: 2, Hi: 5}, {Lo: 2, Hi: 9}}, g.Keys())

	c, ok := g.Connection(2, 5)
	require.True(t, ok)
	assert.Equal(t, Endpoint{ID: 5, JumpGate: true}, c.A)
	assert.Equal(t, Endpoint{ID: 2, JumpHole: true}, c.B)
	assert.Nil(t, c.Endpoint(7))

	// products of offset ids collide, ordered pairs do not
	assert.NotEqual(t, KeyOf(1, 6), KeyOf(2, 3))

	g.Clear()
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Names)
}
