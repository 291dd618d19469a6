// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmp loads compiled compound models: a container holding a
// library of shared vertex pools, a hierarchy of parts joined by
// constructs, and per-part references into the pools. Loading resolves
// every referenced submesh into a renderable mesh with a world transform.
//
// Loading never fails loudly: corrupt or truncated data yields fewer
// meshes, or no model at all.
package cmp

import (
	"log/slog"
	"strings"

	"github.com/DomGries/FreelancerModStudio-sub001/coords"
	"github.com/DomGries/FreelancerModStudio-sub001/math32"
	"github.com/DomGries/FreelancerModStudio-sub001/utf"
)

// HashFunc maps a mesh pool name to the identifier mesh references use.
type HashFunc func(name string) uint32

// RootFile is the file name of the root part.
const RootFile = `\`

// RootObject is the object name the root file maps to unless the
// model names it otherwise.
const RootObject = "Model"

// modelExt is the extension of the part files embedded in a compound model.
const modelExt = ".3db"

// Mesh is a renderable submesh with its world transform.
type Mesh struct {
	// Part is the object name of the part the mesh belongs to.
	Part string

	// Material is the material identifier of the submesh.
	Material uint32

	// Transform places the mesh in scene space.
	Transform math32.Matrix4

	// Vertex, Normal and TexCoord are the per-vertex arrays in part space.
	Vertex   math32.ArrayF32
	Normal   math32.ArrayF32
	TexCoord math32.ArrayF32

	// Index is the triangle list, indexing the vertex arrays.
	Index math32.ArrayU32
}

// BBox returns the bounding box of the mesh in scene space.
func (ms *Mesh) BBox() math32.Box3 {
	bb := math32.B3Empty()
	var v math32.Vector3
	for i := 0; i+2 < len(ms.Vertex); i += 3 {
		v.FromSlice(ms.Vertex, i)
		bb.ExpandByPoint(v)
	}
	return bb.MulMatrix4(&ms.Transform)
}

// Model is a loaded model.
type Model struct {
	Meshes []*Mesh
}

// BBox returns the bounding box of all meshes in scene space.
func (md *Model) BBox() math32.Box3 {
	bb := math32.B3Empty()
	for _, ms := range md.Meshes {
		bb.ExpandByBox(ms.BBox())
	}
	return bb
}

// Conversion is the transform from model space to scene space:
// the same axis swap and scale as system space positions.
func Conversion() *math32.Matrix4 {
	s := coords.SystemScale
	return math32.Matrix4FromRows(
		s, 0, 0, 0,
		0, 0, -s, 0,
		0, s, 0, 0,
		0, 0, 0, 1,
	)
}

// attachment is a mesh reference found in the part with the given file name.
type attachment struct {
	file string
	ref  *MeshRef
}

// Load loads a model from the bytes of a model file, using hash to key
// the mesh library. It returns nil if there is no model to draw.
func Load(b []byte, hash HashFunc) *Model {
	root, err := utf.Decode(b)
	if err != nil {
		slog.Debug("cmp: not a model container", "err", err)
		return nil
	}
	if root == nil || len(root.Children) == 0 {
		return nil
	}
	pools := meshLibrary(root.Child("VMeshLibrary"), hash)
	if len(pools) == 0 {
		return nil
	}
	cmpnd := root.Child("Cmpnd")
	joints := DecodeJoints(cmpnd.Child("Cons"))
	objects := partObjects(cmpnd)

	conv := Conversion()
	md := &Model{}
	for _, at := range attachments(root) {
		obj, ok := objects[strings.ToLower(at.file)]
		if !ok {
			slog.Debug("cmp: mesh ref of unknown part", "file", at.file)
			continue
		}
		pool, ok := pools[at.ref.LibraryID]
		if !ok {
			slog.Debug("cmp: mesh ref to unknown pool", "file", at.file, "id", at.ref.LibraryID)
			continue
		}
		xf := conv.Mul(joints.World(obj))
		md.Meshes = append(md.Meshes, sliceMeshes(pool, at.ref, obj, xf)...)
	}
	if len(md.Meshes) == 0 {
		return nil
	}
	return md
}

// meshLibrary decodes the mesh pools of the library node, keyed by the
// hash of their names.
func meshLibrary(lib *utf.Node, hash HashFunc) map[uint32]*MeshData {
	pools := map[uint32]*MeshData{}
	if lib == nil {
		return pools
	}
	for _, c := range lib.Children {
		if len(c.Children) == 0 {
			continue
		}
		data := c.Child("VMeshData")
		if data == nil || !data.Leaf {
			continue
		}
		md, err := DecodeMeshData(data.Data)
		if err != nil {
			slog.Debug("cmp: bad mesh data", "name", c.Name, "err", err)
			continue
		}
		pools[hash(c.Name)] = md
	}
	return pools
}

// partObjects maps the lower case file names of the parts of the
// compound node to their object names.
func partObjects(cmpnd *utf.Node) map[string]string {
	objs := map[string]string{strings.ToLower(RootFile): RootObject}
	if cmpnd == nil {
		return objs
	}
	for _, p := range cmpnd.Children {
		nm := strings.ToLower(p.Name)
		if nm != "root" && !strings.HasPrefix(nm, "part_") {
			continue
		}
		obj := trimName(p.Child("Object name").Text())
		file := trimName(p.Child("File name").Text())
		if obj == "" || file == "" {
			continue
		}
		objs[strings.ToLower(file)] = obj
	}
	return objs
}

// trimName trims the padding some writers leave after names.
func trimName(s string) string {
	return strings.TrimRight(s, "\x00 \r\n\t")
}

// attachments finds the mesh references of the top level nodes.
func attachments(root *utf.Node) []attachment {
	var ats []attachment
	if ref := partRef(root); ref != nil {
		ats = append(ats, attachment{file: RootFile, ref: ref})
	}
	for _, c := range root.Children {
		if !strings.HasSuffix(strings.ToLower(c.Name), modelExt) {
			continue
		}
		if ref := partRef(c); ref != nil {
			ats = append(ats, attachment{file: c.Name, ref: ref})
		}
	}
	return ats
}

// partRef returns the mesh reference directly under the node: the
// level 0 mesh of a multi level part, or the mesh of a single level part.
func partRef(n *utf.Node) *MeshRef {
	leaf := n.Find("MultiLevel", "Level0", "VMeshPart", "VMeshRef")
	if leaf == nil {
		leaf = n.Find("VMeshPart", "VMeshRef")
	}
	if leaf == nil || !leaf.Leaf {
		return nil
	}
	ref, err := DecodeMeshRef(leaf.Data)
	if err != nil {
		slog.Debug("cmp: bad mesh ref", "node", n.Name, "err", err)
		return nil
	}
	return ref
}

// sliceMeshes cuts the submeshes of the reference out of the pool.
// Submeshes whose ranges do not fit the pool are skipped.
func sliceMeshes(pool *MeshData, ref *MeshRef, part string, xf *math32.Matrix4) []*Mesh {
	var mss []*Mesh
	nv := pool.NumVertex()
	start := ref.StartIndex
	end := ref.StartMesh + ref.NumMesh
	if end > len(pool.Meshes) {
		slog.Debug("cmp: mesh ref past end of pool", "part", part, "meshes", end, "pool", len(pool.Meshes))
		end = len(pool.Meshes)
	}
	for mi := ref.StartMesh; mi < end; mi++ {
		h := pool.Meshes[mi]
		istart := start
		start += h.NumIndex
		vbase := ref.StartVertex + h.StartVertex
		vcount := h.EndVertex - h.StartVertex + 1
		if vcount <= 0 || vbase+vcount > nv || istart+h.NumIndex > len(pool.Index) {
			slog.Debug("cmp: submesh out of pool bounds", "part", part, "mesh", mi)
			continue
		}
		if ms := sliceMesh(pool, vbase, vcount, pool.Index[istart:istart+h.NumIndex]); ms != nil {
			ms.Part = part
			ms.Material = h.Material
			ms.Transform = *xf
			mss = append(mss, ms)
		} else {
			slog.Debug("cmp: submesh index out of range", "part", part, "mesh", mi)
		}
	}
	return mss
}

// sliceMesh copies the vertex range and the triangles indexing it,
// returning nil if any index is outside the range.
func sliceMesh(pool *MeshData, vbase, vcount int, index []uint16) *Mesh {
	ms := &Mesh{Index: make(math32.ArrayU32, len(index))}
	for i, ix := range index {
		if int(ix) >= vcount {
			return nil
		}
		ms.Index[i] = uint32(ix)
	}
	ms.Vertex = append(ms.Vertex, pool.Vertex[vbase*3:(vbase+vcount)*3]...)
	if len(pool.Normal) > 0 {
		ms.Normal = append(ms.Normal, pool.Normal[vbase*3:(vbase+vcount)*3]...)
	}
	if len(pool.TexCoord) > 0 {
		ms.TexCoord = append(ms.TexCoord, pool.TexCoord[vbase*2:(vbase+vcount)*2]...)
	}
	return ms
}
