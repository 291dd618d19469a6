// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package content classifies the sections of game data files into
// renderable kinds and keeps the placed objects of a file with their
// scene transforms.
package content

import (
	"strconv"
	"strings"

	"github.com/DomGries/FreelancerModStudio-sub001/ini"
)

// FileTypes are the kinds of data file a section can come from.
// Some section names only mean something in one type of file.
type FileTypes int32

const (
	// SystemFile is the file of a single star system.
	SystemFile FileTypes = iota

	// UniverseFile is the universe file listing all systems.
	UniverseFile

	// ArchetypeFile is the solar archetype file.
	ArchetypeFile

	// AnyFile matches every file type in a [Rule].
	AnyFile
)

// Rule classifies sections with a given name.
type Rule struct {
	// Section is the section name the rule applies to (case-insensitive).
	Section string

	// File restricts the rule to sections of one file type.
	File FileTypes

	// Classify returns the kind and optional archetype of the section.
	Classify func(sc *ini.Section, lookup ArchetypeLookup) (Kinds, *Archetype)
}

// Matches returns whether the rule applies to the section in a file of the given type.
func (r *Rule) Matches(sc *ini.Section, file FileTypes) bool {
	return sc.Is(r.Section) && (r.File == AnyFile || r.File == file)
}

// Rules is the ordered rule cascade used by [Classify]; the first
// matching rule decides.
var Rules = []Rule{
	{Section: "lightsource", File: AnyFile, Classify: func(*ini.Section, ArchetypeLookup) (Kinds, *Archetype) {
		return LightSource, nil
	}},
	{Section: "object", File: AnyFile, Classify: classifyObject},
	{Section: "zone", File: AnyFile, Classify: classifyZone},
	{Section: "system", File: UniverseFile, Classify: func(*ini.Section, ArchetypeLookup) (Kinds, *Archetype) {
		return System, nil
	}},
	{Section: "solar", File: ArchetypeFile, Classify: classifySolar},
}

// Classify returns the kind of the section, and its archetype if it
// has one. Sections no rule matches are [None]. The lookup may be nil,
// in which case objects are never resolved.
func Classify(sc *ini.Section, file FileTypes, lookup ArchetypeLookup) (Kinds, *Archetype) {
	for i := range Rules {
		r := &Rules[i]
		if r.Matches(sc, file) {
			return r.Classify(sc, lookup)
		}
	}
	return None, nil
}

func classifyObject(sc *ini.Section, lookup ArchetypeLookup) (Kinds, *Archetype) {
	name, ok := sc.Value("archetype")
	if !ok || lookup == nil {
		return None, nil
	}
	a, ok := lookup.TypeOf(name)
	if !ok || a == nil {
		return None, nil
	}
	return a.Kind, a
}

// exclusionFlags are the zone property flags that make a zone an exclusion zone.
const exclusionFlags = 0x10000 | 0x20000

// zoneScan is the state of a scan over the options of a zone.
type zoneScan struct {
	shape string
	flags int64

	// kind is set by fields that decide the kind on their own.
	kind Kinds
}

// zoneFields handles the zone options that affect the kind, keyed by
// lower case option name. A handler sets zoneScan.kind to stop the scan.
var zoneFields = map[string]func(zs *zoneScan, value string){
	"shape": func(zs *zoneScan, value string) {
		zs.shape = strings.ToLower(strings.TrimSpace(value))
	},
	"property_flags": scanZoneFlags,
	"flags":          scanZoneFlags,
	"lane_id": func(zs *zoneScan, value string) {
		zs.kind = ZonePathTradeLane
	},
	"usage": func(zs *zoneScan, value string) {
		for _, u := range ini.SplitValues(value) {
			if strings.EqualFold(u, "trade") {
				zs.kind = ZonePathTrade
				return
			}
		}
		zs.kind = ZonePath
	},
	"vignette_type": func(zs *zoneScan, value string) {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "open", "field", "exclusion":
			zs.kind = ZoneVignette
		}
	},
}

func scanZoneFlags(zs *zoneScan, value string) {
	f, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		f = 0
	}
	zs.flags = f
}

// zoneShapes maps the zone shape to the plain and exclusion kinds.
var zoneShapes = map[string][2]Kinds{
	"box":       {ZoneBox, ZoneBoxExclusion},
	"sphere":    {ZoneSphere, ZoneSphereExclusion},
	"cylinder":  {ZoneCylinder, ZoneCylinderExclusion},
	"ring":      {ZoneRing, ZoneRing},
	"ellipsoid": {ZoneEllipsoid, ZoneEllipsoidExclusion},
}

func classifyZone(sc *ini.Section, _ ArchetypeLookup) (Kinds, *Archetype) {
	zs := zoneScan{shape: "box"}
	for _, o := range sc.Options {
		fn, ok := zoneFields[strings.ToLower(o.Name)]
		if !ok {
			continue
		}
		fn(&zs, o.First())
		if zs.kind != None {
			return zs.kind, nil
		}
	}
	kinds, ok := zoneShapes[zs.shape]
	if !ok {
		kinds = zoneShapes["ellipsoid"]
	}
	if zs.flags&exclusionFlags != 0 {
		return kinds[1], nil
	}
	return kinds[0], nil
}
