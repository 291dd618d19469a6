// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ini

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const systemText = `; Li01
[SystemInfo]
space_color = 0, 0, 0

[Object]
nickname = Li01_to_Li02
archetype = jumpgate ; trailing comment
pos = 100, 0, -300
goto = Li02, Li02_to_Li01, gate_tunnel_bretonia

[zone]
nickname = Zone_Li01_path
encounter = patrol_p1, 5, 0.4
encounter = area_bh, 3, 0.2
`

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(systemText))
	require.NoError(t, err)
	require.Len(t, f.Sections, 3)

	obj := f.Sections[1]
	assert.True(t, obj.Is("object"))
	assert.Equal(t, "Li01_to_Li02", obj.Nickname())
	v, ok := obj.Value("ARCHETYPE")
	assert.True(t, ok)
	assert.Equal(t, "jumpgate", v)

	zone := f.SectionsNamed("ZONE")
	require.Len(t, zone, 1)
	enc := zone[0].Option("encounter")
	require.NotNil(t, enc)
	assert.Equal(t, []string{"patrol_p1, 5, 0.4", "area_bh, 3, 0.2"}, enc.Values)
	assert.Equal(t, "patrol_p1, 5, 0.4", enc.First())

	_, ok = obj.Value("rotate")
	assert.False(t, ok)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(strings.NewReader("pos = 1, 2, 3\n"))
	assert.ErrorContains(t, err, "outside of a section")
	_, err = Parse(strings.NewReader("[Object\n"))
	assert.ErrorContains(t, err, "unclosed")
}

func TestParseRepeated(t *testing.T) {
	f, err := Parse(strings.NewReader("\ufeff[Object]\nvisit = 1\nbare\nvisit = 2\nempty =\n\n[Object]\nvisit = 1\n[ zone ]\n"))
	require.NoError(t, err)
	require.Len(t, f.Sections, 3)
	require.Len(t, f.SectionsNamed("object"), 2)
	assert.Equal(t, "zone", f.Sections[2].Name)

	obj := f.Sections[0]
	assert.Equal(t, []string{"1", "2"}, obj.Option("visit").Values)
	assert.Equal(t, []string{"true"}, obj.Option("BARE").Values)
	assert.Equal(t, []string{""}, obj.Option("empty").Values)
	assert.Equal(t, []string{"1"}, f.Sections[1].Option("visit").Values)
}

func TestWriteBack(t *testing.T) {
	sc := NewSection("Object", "nickname", "Li01_sun", "pos", "0, 0, 0")
	sc.SetFirst("pos", "1, 2, 3")
	sc.SetFirst("rotate", "0, 90, 0")
	v, _ := sc.Value("pos")
	assert.Equal(t, "1, 2, 3", v)
	v, _ = sc.Value("Rotate")
	assert.Equal(t, "0, 90, 0", v)

	assert.True(t, sc.ClearFirst("rotate"))
	assert.Nil(t, sc.Option("rotate"))
	assert.False(t, sc.ClearFirst("rotate"))

	sc.Add("encounter", "a")
	sc.Add("encounter", "b")
	assert.True(t, sc.ClearFirst("encounter"))
	assert.Equal(t, []string{"b"}, sc.Option("encounter").Values)

	sc.Add("encounter", "b")
	sc.Add("comment", "a ; b")
	var b bytes.Buffer
	zone := NewSection("zone", "nickname", "z")
	require.NoError(t, Write(&b, &File{Sections: []*Section{sc, zone, NewSection("Object", "nickname", "Li01_sun")}}))
	assert.True(t, strings.HasPrefix(b.String(), "[Object]\n"))

	f, err := Parse(&b)
	require.NoError(t, err)
	require.Len(t, f.Sections, 3)
	assert.Equal(t, []string{"Object", "zone", "Object"}, []string{f.Sections[0].Name, f.Sections[1].Name, f.Sections[2].Name})
	got := f.Sections[0]
	assert.Equal(t, "Li01_sun", got.Nickname())
	assert.Equal(t, []string{"1, 2, 3"}, got.Option("pos").Values)
	assert.Equal(t, []string{"b", "b"}, got.Option("encounter").Values)
	assert.Equal(t, []string{"a ; b"}, got.Option("comment").Values)
	assert.Equal(t, "z", f.Sections[1].Nickname())
}

func TestSplitValues(t *testing.T) {
	assert.Nil(t, SplitValues("  "))
	assert.Equal(t, []string{"trade", "patrol"}, SplitValues(" trade ,patrol"))
}

func TestFSOpener(t *testing.T) {
	fsys := fstest.MapFS{
		"Universe/Systems/Li01/li01.ini": &fstest.MapFile{Data: []byte(systemText)},
		"Universe/Systems/Li02/li02.ini": &fstest.MapFile{Data: []byte("garbage\n")},
	}
	fo := &FSOpener{FS: fsys}

	f, ok := fo.Open(`universe\systems\LI01\Li01.ini`)
	require.True(t, ok)
	assert.Len(t, f.Sections, 3)
	assert.Equal(t, `universe\systems\LI01\Li01.ini`, f.Path)

	_, ok = fo.Open(`universe\systems\Li02\li02.ini`)
	assert.False(t, ok, "unparsable file is not available")
	_, ok = fo.Open(`universe\systems\Li03\li03.ini`)
	assert.False(t, ok)
	_, ok = fo.Open("")
	assert.False(t, ok)

	p, ok := Resolve(fsys, `\UNIVERSE\systems\li01`)
	assert.True(t, ok)
	assert.Equal(t, "Universe/Systems/Li01", p)
}

func TestMapOpener(t *testing.T) {
	f := &File{}
	mo := MapOpener{`systems\li01\li01.ini`: f}
	got, ok := mo.Open("Systems/Li01/LI01.ini")
	assert.True(t, ok)
	assert.Same(t, f, got)
	_, ok = mo.Open("systems/li02/li02.ini")
	assert.False(t, ok)
}
