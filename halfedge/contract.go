// SPDX-License-Identifier: MIT
package halfedge

// Contract collapses edge01 (v0->v1) into vNew, per spec §4.1. The
// two faces incident to edge01/edge10 disappear; every other face
// touching v0 or v1 is replaced by an equivalent triangle with vNew in
// place of v0/v1; v0 and v1 are deleted and vNew is registered.
//
// Preconditions (violations are programmer errors and panic, not
// error-returned, per spec §4.1/§7): edge01 must be a live half-edge
// of this mesh; vNew.ID must not already name a live vertex; the
// caller must have pre-screened the contraction with the degeneracy
// predicate.
//
// Implementation note: rather than literally transliterating the
// delete-while-walking-a-linked-structure sequence from the source
// (fragile once half-edges are Go pointers subject to GC, not manually
// freed arena slots), this walks both one-rings to completion first,
// builds every replacement triangle, and only then removes the old
// face/edge records by key — same topology, same resulting mesh,
// without a delete-during-iteration hazard.
func (m *Mesh) Contract(edge01 *HalfEdge, vNew *Vertex) error {
	if existing, ok := m.HalfEdges[edgeKeyOf(edge01)]; !ok || existing != edge01 {
		panic(panicUnknownEdge)
	}
	if _, exists := m.Vertices[vNew.ID]; exists {
		panic(panicVertexIDInUse)
	}

	edge10 := edge01.Twin
	v0 := edge10.Head
	v1 := edge01.Head
	v0Next := edge10.Next.Head
	v1Next := edge01.Next.Head

	oldFaceKeys := make(map[FaceKey]struct{})
	oldEdgeKeys := make(map[EdgeKey]struct{})
	for _, vi := range [2]*Vertex{v0, v1} {
		for _, e := range FanEdges(vi) {
			if e.Face != nil {
				oldFaceKeys[faceKeyOf(e.Face)] = struct{}{}
			}
			oldEdgeKeys[edgeKeyOf(e)] = struct{}{}
			oldEdgeKeys[edgeKeyOf(e.Twin)] = struct{}{}
		}
	}

	rim0 := m.walkRim(v0, v1Next, v0Next)
	rim1 := m.walkRim(v1, v0Next, v1Next)

	for i := 0; i < len(rim0)-1; i++ {
		if _, err := m.addTriangle(vNew, rim0[i], rim0[i+1]); err != nil {
			return err
		}
	}
	for i := 0; i < len(rim1)-1; i++ {
		if _, err := m.addTriangle(vNew, rim1[i], rim1[i+1]); err != nil {
			return err
		}
	}

	// Deletion of a face/edge key this walk collected but that is no
	// longer (or never was) present is the same class of inconsistency
	// as deleting an unknown vertex below: a fatal assertion, not a
	// recoverable error (spec §4.1's "deletion of a nonexistent
	// vertex/edge/face" failure mode).
	for k := range oldFaceKeys {
		if _, ok := m.Faces[k]; !ok {
			panic(panicUnknownFace)
		}
		delete(m.Faces, k)
	}
	for k := range oldEdgeKeys {
		if _, ok := m.HalfEdges[k]; !ok {
			panic(panicUnknownEdgeDeletion)
		}
		delete(m.HalfEdges, k)
	}

	// Every rim vertex just gained a fresh spoke to vNew, so re-point its
	// back-reference there unconditionally. Without this, a rim vertex
	// whose Edge happened to be one of the half-edges just deleted above
	// (e.g. its spoke directly to v0 or v1) would be left dangling: its
	// Next/Twin/Face chain still resolves (the struct itself isn't
	// freed), but it no longer describes this mesh's live topology, and
	// the next FanEdges(vi) walk from it would wander stale triangles.
	for _, rim := range [2][]*Vertex{rim0, rim1} {
		for _, r := range rim {
			r.Edge = m.HalfEdges[EdgeKey{Tail: r.ID, Head: vNew.ID}]
		}
	}

	if _, ok := m.Vertices[v0.ID]; !ok {
		panic(panicUnknownVertex)
	}
	if _, ok := m.Vertices[v1.ID]; !ok {
		panic(panicUnknownVertex)
	}
	delete(m.Vertices, v0.ID)
	delete(m.Vertices, v1.ID)

	m.Vertices[vNew.ID] = vNew
	return nil
}

// walkRim collects the ordered spoke vertices outgoing from vTarget,
// starting at vStart and ending at vEnd inclusive, by repeatedly
// taking the third vertex of the current triangle and rotating to the
// next outgoing spoke. Used to rebuild the sector of vTarget's fan
// that survives a contraction (spec §4.1 steps 2-3).
//
// vTarget's fan can run out before the walk reaches vEnd: if the two
// triangles being removed were vTarget's entire incident fan on this
// side, the spoke past vStart is a boundary half-edge with no Next.
// The rim then closes directly on vEnd with nothing between.
func (m *Mesh) walkRim(vTarget, vStart, vEnd *Vertex) []*Vertex {
	rim := []*Vertex{vStart}
	e := m.HalfEdges[EdgeKey{Tail: vTarget.ID, Head: vStart.ID}]
	cur := vStart
	for cur != vEnd {
		if e.Next == nil {
			break
		}
		next := e.Next.Head
		rim = append(rim, next)
		e = e.Next.Next.Twin
		cur = next
	}
	if cur != vEnd {
		rim = append(rim, vEnd)
	}
	return rim
}
