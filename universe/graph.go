// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package universe

import (
	"github.com/DomGries/FreelancerModStudio-sub001/base/ordmap"
)

// Endpoint is one side of a [Connection].
type Endpoint struct {
	// ID is the identity of the system object.
	ID int

	// JumpGate is whether this system has a jump gate to the other one.
	JumpGate bool

	// JumpHole is whether this system has a jump hole to the other one.
	JumpHole bool
}

// Connection is an unordered pair of systems linked by jump gates or holes.
// The endpoints always have different identities.
type Connection struct {
	A Endpoint
	B Endpoint
}

// Endpoint returns the endpoint with the given identity, or nil.
func (c *Connection) Endpoint(id int) *Endpoint {
	switch id {
	case c.A.ID:
		return &c.A
	case c.B.ID:
		return &c.B
	}
	return nil
}

// Key is the order-independent key of a pair of identities.
type Key struct {
	Lo, Hi int
}

// KeyOf returns the key of the pair; KeyOf(a, b) == KeyOf(b, a).
func KeyOf(a, b int) Key {
	if a > b {
		a, b = b, a
	}
	return Key{Lo: a, Hi: b}
}

// Graph is the set of connections between systems, in discovery order.
type Graph struct {
	// Names are the nicknames of the systems by identity.
	Names map[int]string

	conns *ordmap.Map[Key, *Connection]
}

// NewGraph returns a new empty graph.
func NewGraph() *Graph {
	return &Graph{Names: map[int]string{}, conns: ordmap.New[Key, *Connection]()}
}

// Add records that system src links to system dst with a jump gate
// and/or hole. Links discovered from either side merge into one
// connection, with the flags set on the src endpoint. Self links are
// ignored and false is returned for them.
func (g *Graph) Add(src, dst int, gate, hole bool) bool {
	if src == dst {
		return false
	}
	k := KeyOf(src, dst)
	c, ok := g.conns.ValueByKeyTry(k)
	if !ok {
		c = &Connection{A: Endpoint{ID: src}, B: Endpoint{ID: dst}}
		g.conns.Add(k, c)
	}
	ep := c.Endpoint(src)
	ep.JumpGate = ep.JumpGate || gate
	ep.JumpHole = ep.JumpHole || hole
	return true
}

// Connection returns the connection between the two systems, if any.
func (g *Graph) Connection(a, b int) (*Connection, bool) {
	return g.conns.ValueByKeyTry(KeyOf(a, b))
}

// Connections returns the connections in discovery order.
func (g *Graph) Connections() []*Connection {
	return g.conns.Values()
}

// Keys returns the keys of the connections in discovery order.
func (g *Graph) Keys() []Key {
	return g.conns.Keys()
}

// Len returns the number of connections.
func (g *Graph) Len() int {
	return g.conns.Len()
}

// Clear removes all connections and names.
func (g *Graph) Clear() {
	g.conns.Reset()
	g.Names = map[int]string{}
}
