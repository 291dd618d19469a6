// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package utf reads and writes the hierarchical binary container used by
// compiled model files. A container is a tree of named nodes; inner nodes
// have child nodes and leaf nodes have a raw byte payload.
//
// The file starts with a fixed header locating three blocks: the node
// block (fixed size node entries linked by offsets), the string block
// (zero terminated node names) and the data block (leaf payloads).
package utf

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/DomGries/FreelancerModStudio-sub001/base/errors"
)

const (
	// Signature is the first four bytes of every container.
	Signature = "UTF "

	// Version is the only supported container version.
	Version = 0x101

	// HeaderSize is the size of the file header.
	HeaderSize = 56

	// EntrySize is the size of one node entry in the node block.
	EntrySize = 44

	// RootName is the name of the root node.
	RootName = `\`

	flagInner = 0x10
	flagLeaf  = 0x80

	// maxDepth bounds the nesting of nodes.
	maxDepth = 64
)

var (
	// ErrSignature is returned for data that is not a container.
	ErrSignature = errors.New("utf: bad signature")

	// ErrTruncated is returned when an offset or size points outside the data.
	ErrTruncated = errors.New("utf: truncated or corrupt data")

	// ErrCycle is returned when node links form a loop.
	ErrCycle = errors.New("utf: node links form a cycle")
)

// Node is a node of the container tree.
type Node struct {
	// Name is the node name.
	Name string

	// Children are the child nodes of an inner node.
	Children []*Node

	// Data is the payload of a leaf node.
	Data []byte

	// Leaf is whether the node is a leaf.
	Leaf bool
}

// NewInner returns a new inner node with the given children.
func NewInner(name string, children ...*Node) *Node {
	return &Node{Name: name, Children: children}
}

// NewLeaf returns a new leaf node with the given payload.
func NewLeaf(name string, data []byte) *Node {
	return &Node{Name: name, Data: data, Leaf: true}
}

// Child returns the first child with the given name (case-insensitive), or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}

// Find returns the node at the given path of child names, or nil.
func (n *Node) Find(path ...string) *Node {
	for _, p := range path {
		n = n.Child(p)
		if n == nil {
			return nil
		}
	}
	return n
}

// Text returns the payload of a leaf as a string, cut at the first
// zero byte.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	s := string(n.Data)
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return s
}

type header struct {
	nodeOffset, nodeSize     uint32
	entrySize                uint32
	stringOffset, stringSize uint32
	dataOffset               uint32
}

// decoder holds the state of one [Decode].
type decoder struct {
	b       []byte
	hdr     header
	nodes   []byte
	strs    []byte
	visited map[uint32]bool
}

// Decode parses a container and returns its root node.
func Decode(b []byte) (*Node, error) {
	if len(b) < HeaderSize {
		return nil, ErrTruncated
	}
	if string(b[:4]) != Signature {
		return nil, ErrSignature
	}
	if v := binary.LittleEndian.Uint32(b[4:]); v != Version {
		return nil, fmt.Errorf("utf: unsupported version %#x", v)
	}
	le := binary.LittleEndian
	d := &decoder{b: b, visited: map[uint32]bool{}}
	d.hdr = header{
		nodeOffset:   le.Uint32(b[8:]),
		nodeSize:     le.Uint32(b[12:]),
		entrySize:    le.Uint32(b[20:]),
		stringOffset: le.Uint32(b[24:]),
		stringSize:   le.Uint32(b[28:]),
		dataOffset:   le.Uint32(b[36:]),
	}
	if d.hdr.entrySize < EntrySize {
		return nil, fmt.Errorf("utf: node entry size %d: %w", d.hdr.entrySize, ErrTruncated)
	}
	var ok bool
	if d.nodes, ok = d.slice(d.hdr.nodeOffset, d.hdr.nodeSize); !ok {
		return nil, fmt.Errorf("utf: node block: %w", ErrTruncated)
	}
	if d.strs, ok = d.slice(d.hdr.stringOffset, d.hdr.stringSize); !ok {
		return nil, fmt.Errorf("utf: string block: %w", ErrTruncated)
	}
	if uint64(d.hdr.dataOffset) > uint64(len(b)) {
		return nil, fmt.Errorf("utf: data block: %w", ErrTruncated)
	}
	return d.node(0, 0)
}

// slice returns b[off:off+size] if it is in bounds.
func (d *decoder) slice(off, size uint32) ([]byte, bool) {
	end := uint64(off) + uint64(size)
	if end > uint64(len(d.b)) {
		return nil, false
	}
	return d.b[off:end], true
}

func (d *decoder) name(off uint32) (string, error) {
	if uint64(off) >= uint64(len(d.strs)) {
		return "", fmt.Errorf("utf: name offset %d: %w", off, ErrTruncated)
	}
	s := d.strs[off:]
	if i := strings.IndexByte(string(s), 0); i >= 0 {
		s = s[:i]
	}
	return string(s), nil
}

// node decodes the node at the given node block offset and its subtree.
func (d *decoder) node(off uint32, depth int) (*Node, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("utf: nesting deeper than %d: %w", maxDepth, ErrCycle)
	}
	if d.visited[off] {
		return nil, ErrCycle
	}
	d.visited[off] = true
	if uint64(off)+EntrySize > uint64(len(d.nodes)) {
		return nil, fmt.Errorf("utf: node offset %d: %w", off, ErrTruncated)
	}
	le := binary.LittleEndian
	e := d.nodes[off:]
	name, err := d.name(le.Uint32(e[4:]))
	if err != nil {
		return nil, err
	}
	flags := le.Uint32(e[8:])
	child := le.Uint32(e[16:])
	n := &Node{Name: name}
	if flags&flagLeaf != 0 {
		n.Leaf = true
		start := uint64(d.hdr.dataOffset) + uint64(child)
		end := start + uint64(le.Uint32(e[24:]))
		if end > uint64(len(d.b)) {
			return nil, fmt.Errorf("utf: data of node %q: %w", name, ErrTruncated)
		}
		n.Data = d.b[start:end]
		return n, nil
	}
	if flags&flagInner == 0 || child == 0 {
		return n, nil
	}
	for next := child; ; {
		c, err := d.node(next, depth+1)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, c)
		next = le.Uint32(d.nodes[next:])
		if next == 0 {
			break
		}
	}
	return n, nil
}

// Encode writes the tree rooted at root as a container.
func Encode(root *Node) []byte {
	var flat []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		flat = append(flat, n)
		if !n.Leaf {
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	walk(root)
	index := make(map[*Node]uint32, len(flat))
	for i, n := range flat {
		index[n] = uint32(i * EntrySize)
	}

	strs := []byte{0}
	strOff := map[string]uint32{}
	var data []byte
	le := binary.LittleEndian
	nodes := make([]byte, len(flat)*EntrySize)

	// peers links each node to the following sibling
	peers := map[*Node]uint32{}
	for _, n := range flat {
		for i := 0; i+1 < len(n.Children) && !n.Leaf; i++ {
			peers[n.Children[i]] = index[n.Children[i+1]]
		}
	}
	for _, n := range flat {
		e := nodes[index[n]:]
		so, ok := strOff[n.Name]
		if !ok {
			so = uint32(len(strs))
			strOff[n.Name] = so
			strs = append(append(strs, n.Name...), 0)
		}
		le.PutUint32(e[0:], peers[n])
		le.PutUint32(e[4:], so)
		if n.Leaf {
			alloc := (len(n.Data) + 3) &^ 3
			le.PutUint32(e[8:], flagLeaf)
			le.PutUint32(e[16:], uint32(len(data)))
			le.PutUint32(e[20:], uint32(alloc))
			le.PutUint32(e[24:], uint32(len(n.Data)))
			le.PutUint32(e[28:], uint32(len(n.Data)))
			data = append(data, n.Data...)
			data = append(data, make([]byte, alloc-len(n.Data))...)
			continue
		}
		le.PutUint32(e[8:], flagInner)
		if len(n.Children) > 0 {
			le.PutUint32(e[16:], index[n.Children[0]])
		}
	}

	strs = append(strs, make([]byte, ((len(strs)+3)&^3)-len(strs))...)
	nodeOff := uint32(HeaderSize)
	strOffset := nodeOff + uint32(len(nodes))
	dataOff := strOffset + uint32(len(strs))

	out := make([]byte, HeaderSize, int(dataOff)+len(data))
	copy(out, Signature)
	le.PutUint32(out[4:], Version)
	le.PutUint32(out[8:], nodeOff)
	le.PutUint32(out[12:], uint32(len(nodes)))
	le.PutUint32(out[20:], EntrySize)
	le.PutUint32(out[24:], strOffset)
	le.PutUint32(out[28:], uint32(len(strs)))
	le.PutUint32(out[32:], uint32(len(strs)))
	le.PutUint32(out[36:], dataOff)
	out = append(out, nodes...)
	out = append(out, strs...)
	out = append(out, data...)
	return out
}
