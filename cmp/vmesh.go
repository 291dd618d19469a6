// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmp

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/DomGries/FreelancerModStudio-sub001/math32"
	"github.com/DomGries/FreelancerModStudio-sub001/utf"
)

// Flexible vertex format flags of mesh data.
const (
	FVFPosition = 0x002
	FVFNormal   = 0x010
	FVFDiffuse  = 0x040
	FVFSpecular = 0x080
	FVFTexMask  = 0xf00
)

const (
	meshDataHeaderSize = 16
	meshHeaderSize     = 12
)

// MeshHeader is the header of one submesh of a [MeshData] pool.
type MeshHeader struct {
	Material    uint32
	StartVertex int
	EndVertex   int
	NumIndex    int
}

// MeshData is a shared pool of vertices and triangle indices that
// several parts slice their submeshes from.
type MeshData struct {
	// Meshes are the submesh headers, in pool order.
	Meshes []MeshHeader

	// Index is the triangle index list.
	Index []uint16

	// FVF is the flexible vertex format of the vertices.
	FVF uint16

	// Vertex, Normal and TexCoord are the per-vertex arrays.
	// Normal and TexCoord are empty if the format does not have them.
	Vertex   math32.ArrayF32
	Normal   math32.ArrayF32
	TexCoord math32.ArrayF32
}

// NumVertex returns the number of vertices in the pool.
func (md *MeshData) NumVertex() int {
	return len(md.Vertex) / 3
}

// vertexStride returns the size in bytes of one vertex of the format.
func vertexStride(fvf uint16) int {
	n := 0
	if fvf&FVFPosition != 0 {
		n += 12
	}
	if fvf&FVFNormal != 0 {
		n += 12
	}
	if fvf&FVFDiffuse != 0 {
		n += 4
	}
	if fvf&FVFSpecular != 0 {
		n += 4
	}
	n += 8 * int((fvf&FVFTexMask)>>8)
	return n
}

// DecodeMeshData parses the payload of a mesh data leaf.
func DecodeMeshData(b []byte) (*MeshData, error) {
	if len(b) < meshDataHeaderSize {
		return nil, fmt.Errorf("mesh data: header: %w", utf.ErrTruncated)
	}
	le := binary.LittleEndian
	nMesh := int(le.Uint16(b[8:]))
	nIndex := int(le.Uint16(b[10:]))
	md := &MeshData{FVF: le.Uint16(b[12:])}
	nVertex := int(le.Uint16(b[14:]))
	if md.FVF&FVFPosition == 0 {
		return nil, fmt.Errorf("mesh data: vertex format %#x has no position", md.FVF)
	}
	stride := vertexStride(md.FVF)
	need := meshDataHeaderSize + nMesh*meshHeaderSize + nIndex*2 + nVertex*stride
	if len(b) < need {
		return nil, fmt.Errorf("mesh data: %d bytes, need %d: %w", len(b), need, utf.ErrTruncated)
	}

	off := meshDataHeaderSize
	md.Meshes = make([]MeshHeader, nMesh)
	for i := range md.Meshes {
		h := b[off:]
		md.Meshes[i] = MeshHeader{
			Material:    le.Uint32(h),
			StartVertex: int(le.Uint16(h[4:])),
			EndVertex:   int(le.Uint16(h[6:])),
			NumIndex:    int(le.Uint16(h[8:])),
		}
		off += meshHeaderSize
	}
	md.Index = make([]uint16, nIndex)
	for i := range md.Index {
		md.Index[i] = le.Uint16(b[off:])
		off += 2
	}

	f32 := func(o int) float32 { return math.Float32frombits(le.Uint32(b[o:])) }
	nTex := int((md.FVF & FVFTexMask) >> 8)
	md.Vertex = make(math32.ArrayF32, 0, nVertex*3)
	if md.FVF&FVFNormal != 0 {
		md.Normal = make(math32.ArrayF32, 0, nVertex*3)
	}
	if nTex > 0 {
		md.TexCoord = make(math32.ArrayF32, 0, nVertex*2)
	}
	for i := 0; i < nVertex; i++ {
		o := off + i*stride
		md.Vertex.Append(f32(o), f32(o+4), f32(o+8))
		o += 12
		if md.FVF&FVFNormal != 0 {
			md.Normal.Append(f32(o), f32(o+4), f32(o+8))
			o += 12
		}
		if md.FVF&FVFDiffuse != 0 {
			o += 4
		}
		if md.FVF&FVFSpecular != 0 {
			o += 4
		}
		if nTex > 0 {
			md.TexCoord.Append(f32(o), f32(o+4))
		}
	}
	return md, nil
}

// EncodeMeshData writes mesh data in the form [DecodeMeshData] reads.
// Only the position, normal and first texture coordinate are written.
func EncodeMeshData(md *MeshData) []byte {
	le := binary.LittleEndian
	fvf := uint16(FVFPosition)
	if len(md.Normal) > 0 {
		fvf |= FVFNormal
	}
	if len(md.TexCoord) > 0 {
		fvf |= 0x100
	}
	nv := md.NumVertex()
	b := make([]byte, meshDataHeaderSize)
	le.PutUint32(b[0:], 1)
	le.PutUint32(b[4:], 4)
	le.PutUint16(b[8:], uint16(len(md.Meshes)))
	le.PutUint16(b[10:], uint16(len(md.Index)))
	le.PutUint16(b[12:], fvf)
	le.PutUint16(b[14:], uint16(nv))
	for _, h := range md.Meshes {
		b = le.AppendUint32(b, h.Material)
		b = le.AppendUint16(b, uint16(h.StartVertex))
		b = le.AppendUint16(b, uint16(h.EndVertex))
		b = le.AppendUint16(b, uint16(h.NumIndex))
		b = le.AppendUint16(b, 0)
	}
	for _, ix := range md.Index {
		b = le.AppendUint16(b, ix)
	}
	put := func(v ...float32) {
		for _, f := range v {
			b = le.AppendUint32(b, math.Float32bits(f))
		}
	}
	for i := 0; i < nv; i++ {
		put(md.Vertex[i*3 : i*3+3]...)
		if fvf&FVFNormal != 0 {
			put(md.Normal[i*3 : i*3+3]...)
		}
		if fvf&FVFTexMask != 0 {
			put(md.TexCoord[i*2 : i*2+2]...)
		}
	}
	return b
}

// meshRefSize is the size of a mesh reference leaf.
const meshRefSize = 60

// MeshRef references a range of submeshes of a [MeshData] pool.
type MeshRef struct {
	// LibraryID is the hash of the name of the pool in the mesh library.
	LibraryID uint32

	StartVertex int
	NumVertex   int
	StartIndex  int
	NumIndex    int
	StartMesh   int
	NumMesh     int
}

// DecodeMeshRef parses the payload of a mesh reference leaf.
func DecodeMeshRef(b []byte) (*MeshRef, error) {
	if len(b) < meshRefSize {
		return nil, fmt.Errorf("mesh ref: %w", utf.ErrTruncated)
	}
	le := binary.LittleEndian
	return &MeshRef{
		LibraryID:   le.Uint32(b[4:]),
		StartVertex: int(le.Uint16(b[8:])),
		NumVertex:   int(le.Uint16(b[10:])),
		StartIndex:  int(le.Uint16(b[12:])),
		NumIndex:    int(le.Uint16(b[14:])),
		StartMesh:   int(le.Uint16(b[16:])),
		NumMesh:     int(le.Uint16(b[18:])),
	}, nil
}

// EncodeMeshRef writes a mesh reference in the form [DecodeMeshRef] reads.
// The bounds are left zero.
func EncodeMeshRef(ref *MeshRef) []byte {
	le := binary.LittleEndian
	b := make([]byte, meshRefSize)
	le.PutUint32(b[0:], meshRefSize)
	le.PutUint32(b[4:], ref.LibraryID)
	le.PutUint16(b[8:], uint16(ref.StartVertex))
	le.PutUint16(b[10:], uint16(ref.NumVertex))
	le.PutUint16(b[12:], uint16(ref.StartIndex))
	le.PutUint16(b[14:], uint16(ref.NumIndex))
	le.PutUint16(b[16:], uint16(ref.StartMesh))
	le.PutUint16(b[18:], uint16(ref.NumMesh))
	return b
}
