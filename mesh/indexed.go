// SPDX-License-Identifier: MIT
package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Indexed is the parallel-array triangle mesh exchanged at the core's
// boundary with its external collaborators (OBJ loader on the way in,
// renderer/GPU buffers on the way out). It carries no topology beyond the
// flat index list: the half-edge package is solely responsible for turning
// this into, and back out of, a traversable mesh.
//
// Normals and TextureCoords are optional on input and are ignored by
// simplification (TextureCoords never survive a round trip; Normals are
// always regenerated as area-weighted face-normal averages).
type Indexed struct {
	Positions     []mgl64.Vec3 // N entries; required
	Normals       []mgl64.Vec3 // empty, or N entries aligned with Positions
	TextureCoords []mgl64.Vec2 // empty, or N entries aligned with Positions; input only
	Indices       []uint32     // length divisible by 3; CCW triangles into Positions

	// Transform is carried opaquely through simplification; the core never
	// reads or writes it beyond copying it to the output mesh.
	Transform mgl64.Mat4
}

// NewIndexed validates and constructs an Indexed mesh.
//
// Validation rules (input errors, never panics):
//   - Positions must be non-empty.
//   - If Indices is empty, len(Positions) must be a multiple of 3 (every
//     three consecutive positions form an implicit triangle).
//   - If Indices is non-empty, its length must be a multiple of 3 and every
//     entry must reference a valid position.
//   - Normals and TextureCoords, if present, must have exactly len(Positions) entries.
func NewIndexed(positions []mgl64.Vec3, normals []mgl64.Vec3, texCoords []mgl64.Vec2, indices []uint32, transform mgl64.Mat4) (Indexed, error) {
	// Stage 1: positions must exist.
	if len(positions) == 0 {
		return Indexed{}, ErrNoPositions
	}

	// Stage 2: triangle-count consistency.
	if len(indices) == 0 {
		if len(positions)%3 != 0 {
			return Indexed{}, fmt.Errorf("NewIndexed: %d positions: %w", len(positions), ErrImplicitTriangleCount)
		}
	} else if len(indices)%3 != 0 {
		return Indexed{}, fmt.Errorf("NewIndexed: %d indices: %w", len(indices), ErrBadIndexCount)
	}

	// Stage 3: attribute alignment.
	if len(normals) != 0 && len(normals) != len(positions) {
		return Indexed{}, fmt.Errorf("NewIndexed: %d normals vs %d positions: %w", len(normals), len(positions), ErrAttributeLengthMismatch)
	}
	if len(texCoords) != 0 && len(texCoords) != len(positions) {
		return Indexed{}, fmt.Errorf("NewIndexed: %d texcoords vs %d positions: %w", len(texCoords), len(positions), ErrAttributeLengthMismatch)
	}

	// Stage 4: every explicit index must reference a real position.
	for i, idx := range indices {
		if int(idx) >= len(positions) {
			return Indexed{}, fmt.Errorf("NewIndexed: indices[%d]=%d: %w", i, idx, ErrIndexOutOfRange)
		}
	}

	return Indexed{
		Positions:     positions,
		Normals:       normals,
		TextureCoords: texCoords,
		Indices:       indices,
		Transform:     transform,
	}, nil
}

// Triangles returns the explicit index list, synthesizing one if the mesh
// was constructed with implicit (every-three-consecutive-positions) triangles.
func (m Indexed) Triangles() []uint32 {
	if len(m.Indices) != 0 {
		return m.Indices
	}
	synthesized := make([]uint32, len(m.Positions))
	for i := range synthesized {
		synthesized[i] = uint32(i)
	}
	return synthesized
}

// FaceCount returns the number of triangles in the mesh.
func (m Indexed) FaceCount() int {
	return len(m.Triangles()) / 3
}
