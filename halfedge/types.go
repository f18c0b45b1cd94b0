// SPDX-License-Identifier: MIT
package halfedge

import "github.com/go-gl/mathgl/mgl64"

// Vertex is a live point in the mesh: an identity, a position, and a
// back-reference to one outgoing half-edge. The back-reference is
// chosen arbitrarily among the vertex's outgoing half-edges at
// construction/contraction time; any one works since the fan can be
// walked from any starting spoke.
//
// Invariant: for a live vertex v, v.Edge is a live half-edge with
// v.Edge.Tail() == v.
type Vertex struct {
	ID       int
	Position mgl64.Vec3
	Edge     *HalfEdge
}

// HalfEdge is a directed edge of a triangle. Head is the vertex this
// half-edge points to; Next is the following half-edge counter-clockwise
// around Face; Twin is the oppositely-directed half-edge between the
// same two vertices.
//
// Invariants: Twin.Twin == e; Next.Next.Next == e; Next.Face == Face;
// Head(Twin) == Tail(e).
type HalfEdge struct {
	Head *Vertex
	Next *HalfEdge
	Twin *HalfEdge
	Face *Face
}

// Tail returns the vertex this half-edge originates from.
func (e *HalfEdge) Tail() *Vertex {
	return e.Twin.Head
}

// NextOutgoing rotates to the next half-edge outgoing from Tail(e) in
// counter-clockwise order around the one-ring. Because Vertex.Edge is
// an outgoing reference (tail == v), a single Next step lands on an
// edge that no longer touches v; the correct rotation for an outgoing
// reference is next-next-then-twin (see DESIGN.md "Vertex.Edge
// orientation" for the derivation).
func (e *HalfEdge) NextOutgoing() *HalfEdge {
	return e.Next.Next.Twin
}

// EdgeKey addresses a half-edge by (tail id, head id); twins occupy
// distinct keys.
type EdgeKey struct {
	Tail int
	Head int
}

func edgeKeyOf(e *HalfEdge) EdgeKey {
	return EdgeKey{Tail: e.Tail().ID, Head: e.Head.ID}
}

// CanonicalEdge returns, of e and its twin, the one whose head has the
// smaller vertex id — the address used for candidate-queue keys and
// for visiting every unordered edge exactly once.
func CanonicalEdge(e *HalfEdge) *HalfEdge {
	if e.Head.ID < e.Tail().ID {
		return e
	}
	return e.Twin
}

// Face is a triangle stored with its three vertices in canonical
// rotation (the vertex with the smallest id first, winding preserved),
// plus its precomputed unit normal and area.
type Face struct {
	V0, V1, V2 *Vertex
	Normal     mgl64.Vec3
	Area       float64
}

// FaceKey addresses a face by its three vertex ids in canonical
// rotation; reversing winding changes the key, matching spec's
// canonicalization law.
type FaceKey struct {
	A, B, C int
}

func faceKeyOf(f *Face) FaceKey {
	return FaceKey{A: f.V0.ID, B: f.V1.ID, C: f.V2.ID}
}

// canonicalOrder rotates (a,b,c) so the minimum-id vertex comes first,
// preserving cyclic (and thus winding) order.
func canonicalOrder(a, b, c *Vertex) (*Vertex, *Vertex, *Vertex) {
	switch {
	case a.ID <= b.ID && a.ID <= c.ID:
		return a, b, c
	case b.ID <= a.ID && b.ID <= c.ID:
		return b, c, a
	default:
		return c, a, b
	}
}

// Mesh owns all live vertex, half-edge, and face records, each keyed
// by a stable identity so lookups survive mutation.
type Mesh struct {
	Vertices  map[int]*Vertex
	HalfEdges map[EdgeKey]*HalfEdge
	Faces     map[FaceKey]*Face
}

func newMesh() *Mesh {
	return &Mesh{
		Vertices:  make(map[int]*Vertex),
		HalfEdges: make(map[EdgeKey]*HalfEdge),
		Faces:     make(map[FaceKey]*Face),
	}
}

// getOrCreateEdge returns the half-edge a->b, creating it and its twin
// b->a together (and registering both under their keys) if neither
// exists yet.
func (m *Mesh) getOrCreateEdge(a, b *Vertex) *HalfEdge {
	key := EdgeKey{Tail: a.ID, Head: b.ID}
	if e, ok := m.HalfEdges[key]; ok {
		return e
	}
	ab := &HalfEdge{Head: b}
	ba := &HalfEdge{Head: a}
	ab.Twin = ba
	ba.Twin = ab
	m.HalfEdges[key] = ab
	m.HalfEdges[EdgeKey{Tail: b.ID, Head: a.ID}] = ba
	return ab
}

// addTriangle wires three half-edges a->b->c->a into a new canonical
// face, registers the face, sets each half-edge's Face pointer, and
// gives any still-edge-less vertex one of these as its back-reference.
func (m *Mesh) addTriangle(a, b, c *Vertex) (*Face, error) {
	c0, c1, c2 := canonicalOrder(a, b, c)
	normal, area, err := faceGeometry(c0, c1, c2)
	if err != nil {
		return nil, err
	}
	face := &Face{V0: c0, V1: c1, V2: c2, Normal: normal, Area: area}
	m.Faces[faceKeyOf(face)] = face

	eab := m.getOrCreateEdge(a, b)
	ebc := m.getOrCreateEdge(b, c)
	eca := m.getOrCreateEdge(c, a)
	eab.Next, ebc.Next, eca.Next = ebc, eca, eab
	eab.Face, ebc.Face, eca.Face = face, face, face

	if a.Edge == nil {
		a.Edge = eab
	}
	if b.Edge == nil {
		b.Edge = ebc
	}
	if c.Edge == nil {
		c.Edge = eca
	}
	return face, nil
}

// faceGeometry computes a face's unit normal and area from its three
// (canonically ordered) vertex positions, rejecting collinear input.
func faceGeometry(v0, v1, v2 *Vertex) (mgl64.Vec3, float64, error) {
	cross := v1.Position.Sub(v0.Position).Cross(v2.Position.Sub(v0.Position))
	length := cross.Len()
	if length == 0 {
		return mgl64.Vec3{}, 0, ErrDegenerateTriangle
	}
	return cross.Mul(1 / length), 0.5 * length, nil
}

// FanEdges returns every half-edge outgoing from v, in counter-clockwise
// order, visiting the one-ring exactly once.
//
// For an interior vertex the fan is closed: rotating forward with
// NextOutgoing from v.Edge eventually returns to v.Edge, and a single
// pass visits everything. For a boundary vertex the fan is open — the
// half-edge at one end has no Next (it belongs to no face), so forward
// rotation stops there and cannot reach the spokes beyond the gap. In
// that case this also rotates backward from v.Edge (via Twin.Next, the
// inverse of NextOutgoing) to pick up whatever the forward pass could
// not, stopping at the other open end.
func FanEdges(v *Vertex) []*HalfEdge {
	start := v.Edge
	var edges []*HalfEdge

	e := start
	for {
		edges = append(edges, e)
		if e.Next == nil {
			// e is the forward-most spoke; no further rotation possible.
			break
		}
		next := e.NextOutgoing()
		if next == start {
			return edges
		}
		e = next
	}

	e = start
	for e.Twin.Next != nil {
		prev := e.Twin.Next
		edges = append([]*HalfEdge{prev}, edges...)
		e = prev
	}
	return edges
}
