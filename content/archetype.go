// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

import (
	"strings"

	"github.com/DomGries/FreelancerModStudio-sub001/ini"
	"github.com/DomGries/FreelancerModStudio-sub001/math32"
)

// Archetype is the shared metadata of a named object template.
// Celestial bodies have a Radius, everything else a ModelPath.
type Archetype struct {
	// Name is the nickname of the archetype.
	Name string

	// Kind is the content kind of objects using the archetype.
	Kind Kinds

	// Radius is the physical radius in file units (Sun and Planet only).
	Radius float32

	// ModelPath is the path of the model file, relative to the data directory.
	ModelPath string
}

// ArchetypeLookup resolves archetype nicknames.
type ArchetypeLookup interface {
	TypeOf(name string) (*Archetype, bool)
}

// Archetypes is an [ArchetypeLookup] keyed by lower case nickname.
// It is built once with [NewArchetypes] and read-only afterward.
type Archetypes map[string]*Archetype

// NewArchetypes builds the archetype table from the solar sections of
// a solar archetype file.
func NewArchetypes(f *ini.File) Archetypes {
	at := Archetypes{}
	for _, sc := range f.Sections {
		_, a := Classify(sc, ArchetypeFile, nil)
		if a != nil {
			at[strings.ToLower(a.Name)] = a
		}
	}
	return at
}

// TypeOf implements [ArchetypeLookup].
func (at Archetypes) TypeOf(name string) (*Archetype, bool) {
	a, ok := at[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

// solarTypes maps the type field of solar archetypes to kinds.
var solarTypes = map[string]Kinds{
	"jump_hole":         JumpHole,
	"jump_gate":         JumpGate,
	"airlock_gate":      JumpGate,
	"sun":               Sun,
	"planet":            Planet,
	"station":           Station,
	"destroyable_depot": Depot,
	"satellite":         Satellite,
	"mission_satellite": Ship,
	"weapons_platform":  WeaponsPlatform,
	"docking_ring":      DockingRing,
	"tradelane_ring":    TradeLane,
	"non_targetable":    Construct,
}

// classifySolar derives the archetype of a solar section. The kind is
// returned even when the section has no usable radius or model path,
// in which case there is no archetype.
func classifySolar(sc *ini.Section, _ ArchetypeLookup) (Kinds, *Archetype) {
	a := &Archetype{Name: sc.Nickname()}
	if tp, ok := sc.Value("type"); ok {
		a.Kind = solarTypes[strings.ToLower(strings.TrimSpace(tp))]
	}
	if a.Name == "" || a.Kind == None {
		return a.Kind, nil
	}
	switch {
	case a.Kind.HasRadius():
		rs, _ := sc.Value("solar_radius")
		r, err := math32.ParseFloat32(rs)
		if err != nil || r <= 0 {
			return a.Kind, nil
		}
		a.Radius = r
	case a.Kind.HasModel():
		p, _ := sc.Value("da_archetype")
		a.ModelPath = strings.TrimSpace(p)
		if a.ModelPath == "" {
			return a.Kind, nil
		}
	}
	return a.Kind, a
}
