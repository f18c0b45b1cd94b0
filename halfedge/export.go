// SPDX-License-Identifier: MIT
package halfedge

import (
	"sort"

	"github.com/arcmesh/qemsimplify/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// Export walks the live vertex map in id order, assigning each vertex
// a fresh compact index [0,M), and emits positions, recomputed
// weighted-average face normals, and canonically ordered face
// indices. Texture coordinates never survive; transform is carried
// through opaquely.
func (m *Mesh) Export(transform mgl64.Mat4) (mesh.Indexed, error) {
	ids := make([]int, 0, len(m.Vertices))
	for id := range m.Vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	indexOf := make(map[int]int, len(ids))
	positions := make([]mgl64.Vec3, len(ids))
	normals := make([]mgl64.Vec3, len(ids))
	for compact, id := range ids {
		v := m.Vertices[id]
		indexOf[id] = compact
		positions[compact] = v.Position
		normals[compact] = weightedVertexNormal(v)
	}

	faces := make([]*Face, 0, len(m.Faces))
	for _, f := range m.Faces {
		faces = append(faces, f)
	}
	sort.Slice(faces, func(i, j int) bool {
		a, b := faceKeyOf(faces[i]), faceKeyOf(faces[j])
		if a.A != b.A {
			return a.A < b.A
		}
		if a.B != b.B {
			return a.B < b.B
		}
		return a.C < b.C
	})

	indices := make([]uint32, 0, 3*len(faces))
	for _, f := range faces {
		indices = append(indices, uint32(indexOf[f.V0.ID]), uint32(indexOf[f.V1.ID]), uint32(indexOf[f.V2.ID]))
	}

	return mesh.NewIndexed(positions, normals, nil, indices, transform)
}

// weightedVertexNormal sums face.Normal*face.Area over v's incident
// face fan (walked by repeated NextOutgoing, per spec §4.1) and
// normalizes. FanEdges includes v's boundary spokes, if any, which own
// no face and contribute nothing. The mesh is assumed manifold; an
// all-cancelling fan is undefined input, not handled here.
func weightedVertexNormal(v *Vertex) mgl64.Vec3 {
	var sum mgl64.Vec3
	for _, e := range FanEdges(v) {
		if e.Face == nil {
			continue
		}
		sum = sum.Add(e.Face.Normal.Mul(e.Face.Area))
	}
	return sum.Normalize()
}
