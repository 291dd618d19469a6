// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Style has the colors used to draw each kind of content.
// It is passed to whatever builds geometry for placed objects.
type Style struct {
	// Colors are the colors by kind.
	Colors map[Kinds]color.RGBA

	// Default is used for kinds without a color.
	Default color.RGBA
}

// DefaultStyle returns the built-in style.
func DefaultStyle() *Style {
	st := &Style{Default: color.RGBA{128, 128, 128, 255}, Colors: map[Kinds]color.RGBA{}}
	set := func(alpha uint8, hex string, kinds ...Kinds) {
		c, _ := colorful.Hex(hex)
		r, g, b := c.RGB255()
		for _, k := range kinds {
			st.Colors[k] = color.RGBA{r, g, b, alpha}
		}
	}
	set(255, "#ffffff", LightSource)
	set(255, "#ffcc33", Sun)
	set(255, "#3399ff", Planet)
	set(255, "#66cc66", Station, DockingRing)
	set(255, "#999966", Satellite, Construct, Depot, WeaponsPlatform)
	set(255, "#cc6666", Ship)
	set(255, "#cccc99", TradeLane)
	set(255, "#cc9933", JumpGate)
	set(255, "#9933cc", JumpHole)
	set(255, "#33cccc", System)
	set(32, "#336699", ZoneSphere, ZoneEllipsoid, ZoneCylinder, ZoneBox, ZoneRing)
	set(32, "#993333", ZoneSphereExclusion, ZoneEllipsoidExclusion, ZoneCylinderExclusion, ZoneBoxExclusion)
	set(32, "#669933", ZonePath, ZonePathTrade, ZonePathTradeLane)
	set(16, "#999999", ZoneVignette)
	return st
}

// Color returns the color for the kind.
func (st *Style) Color(kind Kinds) color.RGBA {
	if c, ok := st.Colors[kind]; ok {
		return c
	}
	return st.Default
}

// SetHex sets the color of the named kind from a "#rrggbb" hex string,
// keeping the existing alpha.
func (st *Style) SetHex(kind string, hex string) error {
	var k Kinds
	if err := k.SetString(kind); err != nil {
		return err
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("style color for %s: %w", kind, err)
	}
	r, g, b := c.RGB255()
	old := st.Color(k)
	if st.Colors == nil {
		st.Colors = map[Kinds]color.RGBA{}
	}
	st.Colors[k] = color.RGBA{r, g, b, old.A}
	return nil
}
