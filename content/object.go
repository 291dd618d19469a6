// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

import (
	"strings"

	"github.com/DomGries/FreelancerModStudio-sub001/base/ordmap"
	"github.com/DomGries/FreelancerModStudio-sub001/coords"
	"github.com/DomGries/FreelancerModStudio-sub001/ini"
	"github.com/DomGries/FreelancerModStudio-sub001/math32"
)

// Object is a classified section placed in the scene.
type Object struct {
	// ID is the identity of the object within its [Layer].
	ID int

	// Section is the underlying section, owned by the file.
	Section *ini.Section

	// Kind is the classified kind.
	Kind Kinds

	// Archetype is the resolved archetype, if any.
	Archetype *Archetype

	// Visible is whether the object is drawn.
	Visible bool

	// Position, Rotation (degrees) and Scale in scene space.
	Position math32.Vector3
	Rotation math32.Vector3
	Scale    math32.Vector3
}

// Nickname returns the nickname of the underlying section.
func (ob *Object) Nickname() string {
	return ob.Section.Nickname()
}

// Matrix returns the scene transform of the object: scale, then
// rotation, then translation to its position.
func (ob *Object) Matrix() *math32.Matrix4 {
	m := &math32.Matrix4{}
	m.SetTransform(ob.Position, ob.Rotation, ob.Scale)
	return m
}

// BBox returns the scene bounds of the unit cube from -1 to 1 placed
// by [Object.Matrix], which for a zone is the bounds of its shape.
func (ob *Object) BBox() math32.Box3 {
	bb := math32.Box3{Min: math32.Vector3Scalar(-1), Max: math32.Vector3Scalar(1)}
	return bb.MulMatrix4(ob.Matrix())
}

// Refresh reclassifies the object and re-reads its transform.
// It must be called whenever the options of the section change.
func (ob *Object) Refresh(file FileTypes, lookup ArchetypeLookup) {
	ob.Kind, ob.Archetype = Classify(ob.Section, file, lookup)
	ob.UpdateTransform()
}

// UpdateTransform re-reads the position, rotation and scale from the section.
func (ob *Object) UpdateTransform() {
	pos, _ := ob.Section.Value("pos")
	rot, _ := ob.Section.Value("rotate")
	ob.Rotation = math32.Vector3{}
	ob.Scale = math32.Vector3Scalar(1)
	switch {
	case ob.Kind == System:
		ob.Position = coords.ParseUniversePosition(pos)
	case ob.Kind.IsZone():
		size, _ := ob.Section.Value("size")
		ob.Position = coords.ParsePosition(pos)
		ob.Rotation = coords.ParseRotation(rot, ob.Kind.IsCylinder())
		ob.Scale = coords.ParseScale(size, ob.Kind.ScaleShape())
	default:
		ob.Position = coords.ParsePosition(pos)
		if ob.Kind != LightSource {
			ob.Rotation = coords.ParseRotation(rot, false)
		}
		if ob.Archetype != nil && ob.Archetype.Radius > 0 {
			ob.Scale = math32.Vector3Scalar(ob.Archetype.Radius * coords.SystemScale)
		}
	}
}

// SetPosition moves the object and writes the position to the section.
func (ob *Object) SetPosition(pos math32.Vector3, round bool) {
	ob.Position = pos
	if ob.Kind == System {
		ob.Section.SetFirst("pos", coords.WriteUniversePosition(pos, round))
		return
	}
	ob.Section.SetFirst("pos", coords.WritePosition(pos, round))
}

// SetRotation rotates the object and writes the rotation to the section.
// A rotation of zero removes the rotate option. Systems and light
// sources are never rotated, and false is returned for them.
func (ob *Object) SetRotation(rot math32.Vector3, round bool) bool {
	if ob.Kind == System || ob.Kind == LightSource {
		return false
	}
	ob.Rotation = rot
	s, ok := coords.WriteRotation(rot, ob.Kind.IsCylinder(), round)
	if !ok {
		ob.Section.ClearFirst("rotate")
		return true
	}
	ob.Section.SetFirst("rotate", s)
	return true
}

// SetScale resizes a zone and writes its size to the section.
// The size of other kinds comes from their archetype, and false is
// returned for them.
func (ob *Object) SetScale(scale math32.Vector3, round bool) bool {
	if !ob.Kind.IsZone() {
		return false
	}
	ob.Scale = scale
	ob.Section.SetFirst("size", coords.WriteScale(scale, ob.Kind.ScaleShape(), round))
	return true
}

// Layer is the set of placed objects of one file. Objects get
// increasing identities in the order they are added.
type Layer struct {
	// File is the file the sections belong to.
	File *ini.File

	// Type is the type of the file.
	Type FileTypes

	// Lookup resolves the archetypes of objects.
	Lookup ArchetypeLookup

	objects *ordmap.Map[int, *Object]
	nextID  int
}

// NewLayer places every section of the file.
func NewLayer(f *ini.File, file FileTypes, lookup ArchetypeLookup) *Layer {
	ly := &Layer{File: f, Type: file, Lookup: lookup, objects: ordmap.New[int, *Object]()}
	for _, sc := range f.Sections {
		ly.place(sc)
	}
	return ly
}

func (ly *Layer) place(sc *ini.Section) *Object {
	ob := &Object{ID: ly.nextID, Section: sc, Visible: true}
	ly.nextID++
	ob.Refresh(ly.Type, ly.Lookup)
	ly.objects.Add(ob.ID, ob)
	return ob
}

// Add appends the section to the file and places it.
func (ly *Layer) Add(sc *ini.Section) *Object {
	ly.File.Sections = append(ly.File.Sections, sc)
	return ly.place(sc)
}

// Remove removes the object and its section from the file.
func (ly *Layer) Remove(id int) bool {
	ob, ok := ly.objects.ValueByKeyTry(id)
	if !ok {
		return false
	}
	ly.File.Remove(ob.Section)
	return ly.objects.DeleteKey(id)
}

// ByID returns the object with the given identity, or nil.
func (ly *Layer) ByID(id int) *Object {
	return ly.objects.ValueByKey(id)
}

// ByNickname returns the first object with the given nickname
// (case-insensitive), or nil.
func (ly *Layer) ByNickname(name string) *Object {
	name = strings.TrimSpace(name)
	for _, kv := range ly.objects.Order {
		if strings.EqualFold(kv.Value.Nickname(), name) {
			return kv.Value
		}
	}
	return nil
}

// Objects returns the objects in the order they were added.
func (ly *Layer) Objects() []*Object {
	return ly.objects.Values()
}

// OfKind returns the objects of the given kind in order.
func (ly *Layer) OfKind(kind Kinds) []*Object {
	var obs []*Object
	for _, kv := range ly.objects.Order {
		if kv.Value.Kind == kind {
			obs = append(obs, kv.Value)
		}
	}
	return obs
}
