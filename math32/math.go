// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is the float32 vector and matrix package used for
// placing game content and compound model parts in 3D space.
// The scalar functions are thin wrappers around chewxy/math32.
package math32

import (
	"math"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

const (
	Pi = math.Pi

	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180
)

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// DegToRad converts a number from degrees to radians
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 {
	return math32.Round(x)
}

// RoundTo rounds x to the given number of decimal places.
func RoundTo(x float32, decimals int) float32 {
	pow := math32.Pow(10, float32(decimals))
	return Round(x*pow) / pow
}

// RoundSignificant rounds x to the given number of significant decimal
// digits, dropping the noise float32 arithmetic leaves in the last digits.
func RoundSignificant(x float32, digits int) float32 {
	if x == 0 || IsNaN(x) || IsInf(x, 0) {
		return x
	}
	f, err := strconv.ParseFloat(strconv.FormatFloat(float64(x), 'g', digits, 32), 32)
	if err != nil {
		return x
	}
	return float32(f)
}

// Sincos returns Sin(x), Cos(x).
func Sincos(x float32) (sin, cos float32) {
	return math32.Sincos(x)
}

// Min returns the smaller of x or y.
func Min(x, y float32) float32 {
	return math32.Min(x, y)
}

// Max returns the larger of x or y.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// IsNaN reports whether x is an IEEE 754 "not-a-number" value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// IsInf reports whether f is an infinity, according to sign.
func IsInf(x float32, sign int) bool {
	return math32.IsInf(x, sign)
}

// ParseFloat32 parses a float32 from s, ignoring surrounding whitespace.
// NaN and infinite values are reported as syntax errors since they
// can never be stored in a data file.
func ParseFloat32(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, err
	}
	v := float32(f)
	if IsNaN(v) || IsInf(v, 0) {
		return 0, &strconv.NumError{Func: "ParseFloat32", Num: s, Err: strconv.ErrSyntax}
	}
	return v, nil
}

// FormatFloat32 returns the shortest decimal representation of x that
// parses back to the same float32. Negative zero is written as "0".
func FormatFloat32(x float32) string {
	if x == 0 {
		x = 0
	}
	return strconv.FormatFloat(float64(x), 'f', -1, 32)
}
