// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

import (
	"fmt"
	"strings"

	"github.com/DomGries/FreelancerModStudio-sub001/coords"
)

// Kinds are the renderable kinds of content a section can represent.
type Kinds int32

const (
	// None is content that is not rendered.
	None Kinds = iota
	LightSource
	Sun
	Planet
	Station
	Satellite
	Construct
	Depot
	Ship
	WeaponsPlatform
	TradeLane
	JumpHole
	JumpGate
	DockingRing

	// System is a star system on the universe map.
	System

	ZoneSphere
	ZoneSphereExclusion
	ZoneEllipsoid
	ZoneEllipsoidExclusion
	ZoneCylinder
	ZoneCylinderExclusion
	ZoneBox
	ZoneBoxExclusion
	ZoneRing
	ZonePath
	ZonePathTrade
	ZonePathTradeLane
	ZoneVignette

	KindsN
)

var kindNames = [KindsN]string{
	"None", "LightSource", "Sun", "Planet", "Station", "Satellite", "Construct",
	"Depot", "Ship", "WeaponsPlatform", "TradeLane", "JumpHole", "JumpGate",
	"DockingRing", "System", "ZoneSphere", "ZoneSphereExclusion", "ZoneEllipsoid",
	"ZoneEllipsoidExclusion", "ZoneCylinder", "ZoneCylinderExclusion", "ZoneBox",
	"ZoneBoxExclusion", "ZoneRing", "ZonePath", "ZonePathTrade", "ZonePathTradeLane",
	"ZoneVignette",
}

// String returns the string representation of this Kinds value.
func (k Kinds) String() string {
	if k < 0 || k >= KindsN {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return kindNames[k]
}

// SetString sets the Kinds value from its string representation,
// ignoring case.
func (k *Kinds) SetString(s string) error {
	for i, nm := range kindNames {
		if strings.EqualFold(nm, s) {
			*k = Kinds(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Kinds", s)
}

// KindsValues returns all possible values for the type Kinds.
func KindsValues() []Kinds {
	vals := make([]Kinds, KindsN)
	for i := range vals {
		vals[i] = Kinds(i)
	}
	return vals
}

// IsZone returns whether the kind is one of the zone kinds.
func (k Kinds) IsZone() bool {
	return k >= ZoneSphere && k <= ZoneVignette
}

// IsExclusion returns whether the kind is an exclusion zone.
func (k Kinds) IsExclusion() bool {
	switch k {
	case ZoneSphereExclusion, ZoneEllipsoidExclusion, ZoneCylinderExclusion, ZoneBoxExclusion:
		return true
	}
	return false
}

// IsCylinder returns whether the kind is drawn with the cylinder base
// mesh, which needs a rotation offset.
func (k Kinds) IsCylinder() bool {
	switch k {
	case ZoneCylinder, ZoneCylinderExclusion, ZoneRing, ZonePath, ZonePathTrade, ZonePathTradeLane:
		return true
	}
	return false
}

// ScaleShape returns the layout of the size field of the kind.
func (k Kinds) ScaleShape() coords.ScaleShape {
	switch {
	case k == ZoneSphere || k == ZoneSphereExclusion || k == ZoneVignette:
		return coords.ScaleSingle
	case k.IsCylinder():
		return coords.ScaleCylinder
	}
	return coords.ScaleBox
}

// HasModel returns whether the kind is a physical object drawn with a
// model file rather than a sphere.
func (k Kinds) HasModel() bool {
	switch k {
	case Station, Satellite, Construct, Depot, Ship, WeaponsPlatform,
		TradeLane, JumpHole, JumpGate, DockingRing:
		return true
	}
	return false
}

// HasRadius returns whether the kind is a celestial body drawn as a
// sphere of the archetype radius.
func (k Kinds) HasRadius() bool {
	return k == Sun || k == Planet
}
