// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const StandardTol = float32(1.0e-6)

func TolAssertEqualVector3(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	assert.InDelta(t, vt.X, va.X, float64(tol))
	assert.InDelta(t, vt.Y, va.Y, float64(tol))
	assert.InDelta(t, vt.Z, va.Z, float64(tol))
}

func TestMatrix4(t *testing.T) {
	vx := Vec3(1, 0, 0)
	assert.Equal(t, vx, vx.MulMatrix4AsPoint(Identity4()))
	assert.True(t, Identity4().IsIdentity())

	trans := &Matrix4{}
	trans.SetRotationTranslation([9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}, Vec3(1, 2, 3))
	assert.Equal(t, Vec3(2, 2, 3), vx.MulMatrix4AsPoint(trans))
	assert.Equal(t, Vec3(1, 2, 3), trans.Translation())

	// 90 degrees about z: x -> y
	rot := &Matrix4{}
	rot.SetRotationTranslation([9]float32{0, -1, 0, 1, 0, 0, 0, 0, 1}, Vector3{})
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 1, 0), vx.MulMatrix4AsPoint(rot))

	// multiplication order is *reverse* of "logical" order:
	// rotate first, then translate
	TolAssertEqualVector3(t, StandardTol, Vec3(1, 3, 3), vx.MulMatrix4AsPoint(trans.Mul(rot)))
	TolAssertEqualVector3(t, StandardTol, Vec3(-2, 2, 3), vx.MulMatrix4AsPoint(rot.Mul(trans)))
}

func TestBox3(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())
	b.ExpandByPoint(Vec3(-1, -2, -3))
	b.ExpandByPoint(Vec3(1, 2, 3))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, Vec3(0, 0, 0), b.Center())
	assert.Equal(t, Vec3(2, 4, 6), b.Size())

	m := Matrix4FromRows(
		2, 0, 0, 1,
		0, 2, 0, 0,
		0, 0, 2, 0,
		0, 0, 0, 1,
	)
	mb := b.MulMatrix4(m)
	assert.Equal(t, Vec3(-1, -4, -6), mb.Min)
	assert.Equal(t, Vec3(3, 4, 6), mb.Max)

	e := B3Empty()
	e.ExpandByBox(B3Empty())
	assert.True(t, e.IsEmpty())
}

func TestFormatFloat32(t *testing.T) {
	assert.Equal(t, "0", FormatFloat32(-0.0*1))
	var nz float32
	nz = -nz
	assert.Equal(t, "0", FormatFloat32(nz))
	assert.Equal(t, "100", FormatFloat32(100))
	assert.Equal(t, "0.5", FormatFloat32(0.5))
	assert.Equal(t, "-12.3", FormatFloat32(-12.3))

	v, err := ParseFloat32(" 1.5 ")
	assert.NoError(t, err)
	assert.Equal(t, float32(1.5), v)
	_, err = ParseFloat32("abc")
	assert.Error(t, err)
	_, err = ParseFloat32("NaN")
	assert.Error(t, err)

	assert.Equal(t, float32(12.3), RoundTo(12.34, 1))
	assert.Equal(t, float32(-12.4), RoundTo(-12.36, 1))

	assert.Equal(t, "-0.05", FormatFloat32(RoundSignificant(-0.050000004, 7)))
	assert.Equal(t, "123.456", FormatFloat32(RoundSignificant(123.45601, 7)))
	assert.Equal(t, "12.35", FormatFloat32(RoundSignificant(12.345678, 4)))
	assert.Equal(t, float32(0), RoundSignificant(0, 7))
	assert.True(t, IsInf(RoundSignificant(Infinity, 7), 1))
}

func TestSetTransform(t *testing.T) {
	vx := Vec3(1, 0, 0)
	m := &Matrix4{}
	m.SetTransform(Vector3{}, Vector3{}, Vector3Scalar(1))
	TolAssertEqualVector3(t, StandardTol, vx, vx.MulMatrix4AsPoint(m))

	m.SetTransform(Vector3{}, Vec3(0, 0, 90), Vector3Scalar(1))
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 1, 0), vx.MulMatrix4AsPoint(m))
	m.SetTransform(Vector3{}, Vec3(0, 90, 0), Vector3Scalar(1))
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 0, -1), vx.MulMatrix4AsPoint(m))
	m.SetTransform(Vector3{}, Vec3(90, 0, 0), Vector3Scalar(1))
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 0, 1), Vec3(0, 1, 0).MulMatrix4AsPoint(m))

	// x rotation applies before z
	m.SetTransform(Vec3(1, 2, 3), Vec3(90, 0, 90), Vec3(2, 2, 2))
	TolAssertEqualVector3(t, StandardTol, Vec3(1, 2, 5), Vec3(0, 1, 0).MulMatrix4AsPoint(m))
	TolAssertEqualVector3(t, StandardTol, Vec3(1, 4, 3), vx.MulMatrix4AsPoint(m))
}
