// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coords converts the textual position, rotation and size
// fields of data file records to and from 3D vectors.
//
// Two coordinate spaces are supported. System space is the space of
// objects within a star system: file (x, y, z) maps to (x, -z, y)
// scaled by [SystemScale], so the ecliptic plane of the file becomes
// the XY plane of the scene. Universe space is the galaxy map grid used
// by the system records of the universe file: file (x, y) maps to
// (x - [UniverseCenter], -y + [UniverseCenter], 0) scaled by [UniverseScale].
//
// Parsing never fails: a missing or malformed number becomes 0 for
// positions and rotations, and 1 for sizes.
package coords

import (
	"strings"

	"github.com/DomGries/FreelancerModStudio-sub001/math32"
)

const (
	// SystemScale is the factor from file units to scene units in system space.
	SystemScale float32 = 0.005

	// UniverseCenter is the grid coordinate placed at the scene origin
	// in universe space.
	UniverseCenter float32 = 7.5

	// UniverseScale is the factor from grid units to scene units in universe space.
	UniverseScale float32 = 1

	// CylinderOffset is the rotation in degrees about the first axis that
	// turns the base cylinder mesh into the orientation the game uses.
	CylinderOffset float32 = 90

	// rotationEpsilon is the magnitude below which a rotation component
	// counts as zero when deciding whether to write a rotation at all.
	rotationEpsilon float32 = 0.5
)

// ScaleShape determines how many numbers a size field has and how they
// map to the axes of the scene.
type ScaleShape int32

const (
	// ScaleBox has three numbers (x, y, z) mapped like a position.
	ScaleBox ScaleShape = iota

	// ScaleSingle has one number (the radius) applied to all axes.
	ScaleSingle

	// ScaleCylinder has two numbers (radius, length) mapped to (r, l, r).
	ScaleCylinder
)

// ParseFloats returns n numbers parsed from the comma-separated text,
// substituting def for each missing or malformed number.
func ParseFloats(text string, n int, def float32) []float32 {
	vals := make([]float32, n)
	toks := strings.Split(text, ",")
	for i := range vals {
		vals[i] = def
		if i >= len(toks) {
			continue
		}
		if v, err := math32.ParseFloat32(toks[i]); err == nil {
			vals[i] = v
		}
	}
	return vals
}

// ParsePosition parses a system space position.
func ParsePosition(text string) math32.Vector3 {
	v := ParseFloats(text, 3, 0)
	return math32.Vec3(v[0], -v[2], v[1]).MulScalar(SystemScale)
}

// ParseUniversePosition parses a universe space position.
// Only the first two numbers are used.
func ParseUniversePosition(text string) math32.Vector3 {
	v := ParseFloats(text, 2, 0)
	return math32.Vec3(v[0]-UniverseCenter, -v[1]+UniverseCenter, 0).MulScalar(UniverseScale)
}

// ParseRotation parses a rotation in degrees. Cylinder shaped content
// is turned by [CylinderOffset] about the first axis.
func ParseRotation(text string, cylinder bool) math32.Vector3 {
	v := ParseFloats(text, 3, 0)
	rot := math32.Vec3(v[0], -v[2], v[1])
	if cylinder {
		rot.X += CylinderOffset
	}
	return rot
}

// ParseScale parses a size field for the given shape.
func ParseScale(text string, shape ScaleShape) math32.Vector3 {
	var s math32.Vector3
	switch shape {
	case ScaleSingle:
		v := ParseFloats(text, 1, 1)
		s = math32.Vector3Scalar(v[0])
	case ScaleCylinder:
		v := ParseFloats(text, 2, 1)
		s = math32.Vec3(v[0], v[1], v[0])
	default:
		v := ParseFloats(text, 3, 1)
		s = math32.Vec3(v[0], v[2], v[1])
	}
	return s.MulScalar(SystemScale)
}

// significantDigits is the number of decimal digits a float32 holds.
const significantDigits = 7

// FormatFloats writes the numbers comma-separated, rounding each to
// one decimal if round is set, and otherwise to the digits a float32
// can hold.
func FormatFloats(round bool, vals ...float32) string {
	var b strings.Builder
	for i, v := range vals {
		if i > 0 {
			b.WriteString(", ")
		}
		if round {
			v = math32.RoundTo(v, 1)
		} else {
			v = math32.RoundSignificant(v, significantDigits)
		}
		b.WriteString(math32.FormatFloat32(v))
	}
	return b.String()
}

// WritePosition is the inverse of [ParsePosition].
func WritePosition(v math32.Vector3, round bool) string {
	v = v.DivScalar(SystemScale)
	return FormatFloats(round, v.X, v.Z, -v.Y)
}

// WriteUniversePosition is the inverse of [ParseUniversePosition].
func WriteUniversePosition(v math32.Vector3, round bool) string {
	v = v.DivScalar(UniverseScale)
	return FormatFloats(round, v.X+UniverseCenter, UniverseCenter-v.Y)
}

// WriteRotation is the inverse of [ParseRotation]. It returns false
// when every component is within half a degree of zero, in which case
// no rotation should be written and any existing value cleared.
func WriteRotation(v math32.Vector3, cylinder bool, round bool) (string, bool) {
	if cylinder {
		v.X -= CylinderOffset
	}
	x, y, z := v.X, v.Z, -v.Y
	if math32.Abs(x) < rotationEpsilon && math32.Abs(y) < rotationEpsilon && math32.Abs(z) < rotationEpsilon {
		return "", false
	}
	return FormatFloats(round, x, y, z), true
}

// WriteScale is the inverse of [ParseScale].
func WriteScale(v math32.Vector3, shape ScaleShape, round bool) string {
	v = v.DivScalar(SystemScale)
	switch shape {
	case ScaleSingle:
		return FormatFloats(round, v.X)
	case ScaleCylinder:
		return FormatFloats(round, v.X, v.Y)
	default:
		return FormatFloats(round, v.X, v.Z, v.Y)
	}
}
