// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package universe builds the graph of jump connections between the
// star systems of a universe file by scanning the jump gates and jump
// holes of every system file.
package universe

import (
	"log/slog"
	"strings"

	"github.com/DomGries/FreelancerModStudio-sub001/base/ordmap"
	"github.com/DomGries/FreelancerModStudio-sub001/content"
	"github.com/DomGries/FreelancerModStudio-sub001/ini"
)

// link is a jump from the scanned system to a target system.
type link struct {
	gate, hole bool
}

// Build returns the connection graph of the systems of the universe
// layer. System files that cannot be opened, gates with an unknown
// archetype, and gotos to unknown systems contribute nothing.
// The lookup resolves the archetypes of the system objects.
func Build(uni *content.Layer, open ini.Opener, lookup content.ArchetypeLookup) *Graph {
	g := NewGraph()
	systems := uni.OfKind(content.System)
	byName := make(map[string]int, len(systems))
	for _, sys := range systems {
		nm := strings.ToLower(strings.TrimSpace(sys.Nickname()))
		if _, has := byName[nm]; !has && nm != "" {
			byName[nm] = sys.ID
		}
		g.Names[sys.ID] = sys.Nickname()
	}
	for _, sys := range systems {
		for _, kv := range scanSystem(sys, byName, open, lookup).Order {
			g.Add(sys.ID, kv.Key, kv.Value.gate, kv.Value.hole)
		}
	}
	return g
}

// scanSystem returns the links of one system by target identity.
func scanSystem(sys *content.Object, byName map[string]int, open ini.Opener, lookup content.ArchetypeLookup) *ordmap.Map[int, link] {
	links := ordmap.New[int, link]()
	path, ok := sys.Section.Value("file")
	if !ok || strings.TrimSpace(path) == "" {
		return links
	}
	f, ok := open.Open(path)
	if !ok || f == nil {
		slog.Debug("universe: system file not available", "system", sys.Nickname(), "path", path)
		return links
	}
	for _, sc := range f.SectionsNamed("object") {
		kind, _ := content.Classify(sc, content.SystemFile, lookup)
		if kind != content.JumpGate && kind != content.JumpHole {
			continue
		}
		to, ok := sc.Value("goto")
		if !ok {
			continue
		}
		target, _, _ := strings.Cut(to, ",")
		dst, ok := byName[strings.ToLower(strings.TrimSpace(target))]
		if !ok {
			slog.Debug("universe: unknown goto target", "system", sys.Nickname(), "object", sc.Nickname(), "target", target)
			continue
		}
		if dst == sys.ID {
			continue
		}
		l := links.ValueByKey(dst)
		l.gate = l.gate || kind == content.JumpGate
		l.hole = l.hole || kind == content.JumpHole
		links.Add(dst, l)
	}
	return links
}

// BuildFile places the sections of a universe file and returns the
// connection graph of its systems. See [Build].
func BuildFile(f *ini.File, open ini.Opener, lookup content.ArchetypeLookup) *Graph {
	return Build(content.NewLayer(f, content.UniverseFile, nil), open, lookup)
}
