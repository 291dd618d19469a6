// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmp

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/DomGries/FreelancerModStudio-sub001/math32"
	"github.com/DomGries/FreelancerModStudio-sub001/utf"
)

// JointTypes are the kinds of construct joining a part to its parent.
type JointTypes int32

const (
	// Fix is a fixed joint.
	Fix JointTypes = iota

	// Rev is a revolute joint (rotates about an axis).
	Rev

	// Pris is a prismatic joint (slides along an axis).
	Pris

	// Sphere is a ball joint.
	Sphere
)

// nameSize is the size of the zero padded names of a construct record.
const nameSize = 64

// jointLayouts has the record size of each joint type, keyed by the
// lower case name of the construct leaf. All records start with the
// parent name, child name and origin; all but fixed joints then have
// an offset before the rotation.
var jointLayouts = map[string]struct {
	typ       JointTypes
	size      int
	hasOffset bool
}{
	"fix":    {Fix, 176, false},
	"rev":    {Rev, 208, true},
	"pris":   {Pris, 208, true},
	"sphere": {Sphere, 212, true},
}

// Joint is a named transform node of the part hierarchy.
type Joint struct {
	Type JointTypes

	// Name is the name of the child part.
	Name string

	// Parent is the name of the parent part.
	Parent string

	// Local is the transform from the child to the parent part.
	Local math32.Matrix4
}

// Joints are the joints of a model, keyed by lower case child name.
type Joints map[string]*Joint

// DecodeJoints parses the leaves of a constructs node. Unknown leaves
// and trailing partial records are ignored.
func DecodeJoints(cons *utf.Node) Joints {
	js := Joints{}
	if cons == nil {
		return js
	}
	le := binary.LittleEndian
	for _, leaf := range cons.Children {
		lay, ok := jointLayouts[strings.ToLower(leaf.Name)]
		if !ok || !leaf.Leaf {
			continue
		}
		for off := 0; off+lay.size <= len(leaf.Data); off += lay.size {
			rec := leaf.Data[off : off+lay.size]
			f32 := func(o int) float32 { return math.Float32frombits(le.Uint32(rec[o:])) }
			j := &Joint{
				Type:   lay.typ,
				Parent: cString(rec[:nameSize]),
				Name:   cString(rec[nameSize : 2*nameSize]),
			}
			o := 2 * nameSize
			pos := math32.Vec3(f32(o), f32(o+4), f32(o+8))
			o += 12
			if lay.hasOffset {
				pos = pos.Add(math32.Vec3(f32(o), f32(o+4), f32(o+8)))
				o += 12
			}
			var rot [9]float32
			for i := range rot {
				rot[i] = f32(o + 4*i)
			}
			j.Local.SetRotationTranslation(rot, pos)
			js[strings.ToLower(j.Name)] = j
		}
	}
	return js
}

// World returns the transform from the named part to the model root:
// the product of the local transforms along the chain of parents.
// Parts without a joint are at the root. A chain that loops back on
// itself is invalid, and yields the identity.
func (js Joints) World(name string) *math32.Matrix4 {
	m := math32.Identity4()
	visited := map[string]bool{}
	cur := strings.ToLower(name)
	for {
		j, ok := js[cur]
		if !ok {
			return m
		}
		if visited[cur] {
			return math32.Identity4()
		}
		visited[cur] = true
		m = j.Local.Mul(m)
		cur = strings.ToLower(j.Parent)
	}
}

// cString returns the zero terminated string at the start of b.
func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// EncodeJoint writes the record of a joint with the given origin and
// row-major rotation, in the layout of its type. It is the inverse of
// [DecodeJoints] for one record.
func EncodeJoint(typ JointTypes, parent, child string, origin math32.Vector3, rot [9]float32) []byte {
	var name string
	for nm, lay := range jointLayouts {
		if lay.typ == typ {
			name = nm
		}
	}
	lay := jointLayouts[name]
	le := binary.LittleEndian
	b := make([]byte, 2*nameSize, lay.size)
	copy(b[:nameSize-1], parent)
	copy(b[nameSize:2*nameSize-1], child)
	put := func(v ...float32) {
		for _, f := range v {
			b = le.AppendUint32(b, math.Float32bits(f))
		}
	}
	put(origin.X, origin.Y, origin.Z)
	if lay.hasOffset {
		put(0, 0, 0)
	}
	put(rot[:]...)
	return append(b, make([]byte, lay.size-len(b))...)
}
