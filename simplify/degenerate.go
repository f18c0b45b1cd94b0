// SPDX-License-Identifier: MIT
package simplify

import "github.com/arcmesh/qemsimplify/halfedge"

// degenerate implements the link-condition predicate (spec §4.4):
// contracting edge01 is rejected if the one-ring neighborhoods of its
// two endpoints share any vertex beyond the two apexes the
// contraction itself removes.
//
// A boundary edge (missing a face on one side or the other) is also
// rejected here: Contract's rewrite always removes exactly the two
// faces incident to edge01/edge10, so an edge that does not have two
// does not fit its contract.
func degenerate(edge01 *halfedge.HalfEdge) bool {
	edge10 := edge01.Twin
	if edge01.Face == nil || edge10.Face == nil {
		return true
	}

	v0 := edge01.Tail()
	v1 := edge01.Head
	v1Next := edge01.Next.Head
	v0Next := edge10.Next.Head

	// The two apexes must be distinct. If they coincide, the two faces
	// being removed are both triangles over the same three vertices
	// (v0, v1, apex): contracting would collapse the rest of v0's and
	// v1's fans rather than leave a single bridging triangle behind.
	if v0Next.ID == v1Next.ID {
		return true
	}

	n0 := make(map[int]struct{})
	for _, e := range halfedge.FanEdges(v0) {
		head := e.Head
		if head.ID == v1.ID || head.ID == v0Next.ID || head.ID == v1Next.ID {
			continue
		}
		n0[head.ID] = struct{}{}
	}

	for _, e := range halfedge.FanEdges(v1) {
		head := e.Head
		if head.ID == v0.ID || head.ID == v0Next.ID || head.ID == v1Next.ID {
			continue
		}
		if _, shared := n0[head.ID]; shared {
			return true
		}
	}

	return false
}
