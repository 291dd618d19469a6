// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix4 is 4x4 matrix organized internally as column matrix.
// Points are column vectors, so in A.Mul(B) the transform B applies first.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// Matrix4FromRows returns a new matrix from the given values given in
// row-major order, which is the order they read in source code.
func Matrix4FromRows(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float32) *Matrix4 {
	m := &Matrix4{}
	m.Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44)
	return m
}

// Set sets all the elements of this matrix row by row starting at row1, column1,
// row1, column2, row1, column3 and so forth.
func (m *Matrix4) Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float32) {
	m[0] = n11
	m[4] = n12
	m[8] = n13
	m[12] = n14
	m[1] = n21
	m[5] = n22
	m[9] = n23
	m[13] = n24
	m[2] = n31
	m[6] = n32
	m[10] = n33
	m[14] = n34
	m[3] = n41
	m[7] = n42
	m[11] = n43
	m[15] = n44
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	m.Set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// IsIdentity returns whether this matrix is exactly the identity matrix.
func (m *Matrix4) IsIdentity() bool {
	return *m == *Identity4()
}

// SetRotationTranslation sets this matrix to the 3x3 rotation (given in
// row-major order) followed by a translation by pos.
func (m *Matrix4) SetRotationTranslation(rot [9]float32, pos Vector3) {
	m.Set(
		rot[0], rot[1], rot[2], pos.X,
		rot[3], rot[4], rot[5], pos.Y,
		rot[6], rot[7], rot[8], pos.Z,
		0, 0, 0, 1,
	)
}

// SetTransform sets this matrix to scale, then rotate by the Euler
// angles rot in degrees (about x first, then y, then z), then translate
// by pos.
func (m *Matrix4) SetTransform(pos, rot, scale Vector3) {
	sx, cx := Sincos(DegToRad(rot.X))
	sy, cy := Sincos(DegToRad(rot.Y))
	sz, cz := Sincos(DegToRad(rot.Z))
	m.Set(
		cz*cy*scale.X, (cz*sy*sx-sz*cx)*scale.Y, (cz*sy*cx+sz*sx)*scale.Z, pos.X,
		sz*cy*scale.X, (sz*sy*sx+cz*cx)*scale.Y, (sz*sy*cx-cz*sx)*scale.Z, pos.Y,
		-sy*scale.X, cy*sx*scale.Y, cy*cx*scale.Z, pos.Z,
		0, 0, 0, 1,
	)
}

// Translation returns the translation component of this matrix.
func (m *Matrix4) Translation() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// Mul returns this matrix times other matrix (this matrix is unchanged)
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	nm.MulMatrices(m, other)
	return nm
}

// MulMatrices sets this matrix as matrix multiplication a by b (i.e., a*b).
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	a11, a12, a13, a14 := a[0], a[4], a[8], a[12]
	a21, a22, a23, a24 := a[1], a[5], a[9], a[13]
	a31, a32, a33, a34 := a[2], a[6], a[10], a[14]
	a41, a42, a43, a44 := a[3], a[7], a[11], a[15]

	b11, b12, b13, b14 := b[0], b[4], b[8], b[12]
	b21, b22, b23, b24 := b[1], b[5], b[9], b[13]
	b31, b32, b33, b34 := b[2], b[6], b[10], b[14]
	b41, b42, b43, b44 := b[3], b[7], b[11], b[15]

	m[0] = a11*b11 + a12*b21 + a13*b31 + a14*b41
	m[4] = a11*b12 + a12*b22 + a13*b32 + a14*b42
	m[8] = a11*b13 + a12*b23 + a13*b33 + a14*b43
	m[12] = a11*b14 + a12*b24 + a13*b34 + a14*b44

	m[1] = a21*b11 + a22*b21 + a23*b31 + a24*b41
	m[5] = a21*b12 + a22*b22 + a23*b32 + a24*b42
	m[9] = a21*b13 + a22*b23 + a23*b33 + a24*b43
	m[13] = a21*b14 + a22*b24 + a23*b34 + a24*b44

	m[2] = a31*b11 + a32*b21 + a33*b31 + a34*b41
	m[6] = a31*b12 + a32*b22 + a33*b32 + a34*b42
	m[10] = a31*b13 + a32*b23 + a33*b33 + a34*b43
	m[14] = a31*b14 + a32*b24 + a33*b34 + a34*b44

	m[3] = a41*b11 + a42*b21 + a43*b31 + a44*b41
	m[7] = a41*b12 + a42*b22 + a43*b32 + a44*b42
	m[11] = a41*b13 + a42*b23 + a43*b33 + a44*b43
	m[15] = a41*b14 + a42*b24 + a43*b34 + a44*b44
}
