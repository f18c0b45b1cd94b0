// SPDX-License-Identifier: MIT
package simplify

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/arcmesh/qemsimplify/halfedge"
	"github.com/arcmesh/qemsimplify/mesh"
	"github.com/arcmesh/qemsimplify/quadric"
)

// Simplify reduces an indexed triangle mesh toward (1-rate)*F0 faces by
// greedy, quadric-cost-ordered half-edge contraction (spec §4.5). rate
// must be in [0,1]; out of range is a programmer error and panics.
func Simplify(input mesh.Indexed, rate float64, opts ...Option) (mesh.Indexed, error) {
	if rate < 0 || rate > 1 {
		panic(panicRateRange)
	}

	options := defaultOptions()
	for _, o := range opts {
		o(&options)
	}

	start := time.Now()

	m, err := halfedge.NewFromIndexed(input)
	if err != nil {
		return mesh.Indexed{}, fmt.Errorf("simplify: %w", err)
	}

	s := &scheduler{
		mesh:       m,
		quadrics:   make(map[int]quadric.Quadric, len(m.Vertices)),
		validEdges: make(map[halfedge.EdgeKey]*candidate),
		epsilon:    options.Epsilon,
		nextID:     len(m.Vertices),
	}

	for id, v := range m.Vertices {
		s.quadrics[id] = vertexQuadric(v)
	}

	s.queue = &candidatePQ{}
	heap.Init(s.queue)

	seen := make(map[halfedge.EdgeKey]bool)
	for _, e := range m.HalfEdges {
		ce := halfedge.CanonicalEdge(e)
		key := canonicalKey(ce)
		if seen[key] {
			continue
		}
		seen[key] = true
		s.pushNew(ce)
	}

	initialFaces := len(m.Faces)
	target := (1 - rate) * float64(initialFaces)

	// Stop on "<=" rather than spec's literal "<": at rate=0 the target
	// equals the starting face count, and the boundary behavior
	// (output equals input, zero contractions) requires the loop to
	// stop before accepting anything when faces already sit at the
	// target, not one contraction past it.
	for s.queue.Len() > 0 && float64(len(m.Faces)) > target {
		top := (*s.queue)[0]

		if !top.valid {
			heap.Pop(s.queue)
			continue
		}
		if degenerate(top.edge) {
			heap.Pop(s.queue)
			continue
		}

		// Pop top now, while the heap invariant still guarantees it is
		// the root: accept's 2-ring regeneration pushes fresh candidates
		// below, and a heap.Pop after those pushes would remove whatever
		// now sorts first rather than the entry just processed, leaving
		// top's spent candidate (pointing at an edge Contract is about
		// to delete) live in the queue to resurface and panic later.
		heap.Pop(s.queue)

		if err := s.accept(top); err != nil {
			return mesh.Indexed{}, fmt.Errorf("simplify: %w", err)
		}
	}

	if options.Telemetry {
		options.Logger.Info("mesh simplified",
			"initial_faces", initialFaces,
			"final_faces", len(m.Faces),
			"rate", rate,
			"elapsed", time.Since(start),
		)
	}

	return m.Export(input.Transform)
}

// scheduler owns the live mesh plus the per-call mutable state of the
// greedy loop: per-vertex quadrics, the candidate priority queue, the
// canonical-edge-key index of currently-authoritative candidates, the
// singular-quadric epsilon, and the next fresh vertex id (spec §4.5's
// "State" list).
type scheduler struct {
	mesh       *halfedge.Mesh
	quadrics   map[int]quadric.Quadric
	queue      *candidatePQ
	validEdges map[halfedge.EdgeKey]*candidate
	epsilon    float64
	nextID     int
}

func canonicalKey(canonical *halfedge.HalfEdge) halfedge.EdgeKey {
	return halfedge.EdgeKey{Tail: canonical.Tail().ID, Head: canonical.Head.ID}
}

// vertexQuadric sums the per-face quadric of every triangle incident
// to v (spec §4.2: Q(v) = sum of outer(plane,plane) over incident
// faces, evaluated with each face's plane through v's own position).
// FanEdges includes v's boundary spokes, if any, which own no face and
// contribute no term.
func vertexQuadric(v *halfedge.Vertex) quadric.Quadric {
	var sum quadric.Quadric
	first := true
	for _, e := range halfedge.FanEdges(v) {
		if e.Face == nil {
			continue
		}
		pq := quadric.NewFromPlane(e.Face.Normal, v.Position)
		if first {
			sum = pq
			first = false
		} else {
			sum = sum.Add(pq)
		}
	}
	return sum
}

// newCandidate builds a fresh (unassigned-id) candidate for canonical
// edge e using the current quadric sum of its endpoints.
func (s *scheduler) newCandidate(e *halfedge.HalfEdge) *candidate {
	v0 := e.Tail()
	v1 := e.Head
	sum := s.quadrics[v0.ID].Add(s.quadrics[v1.ID])
	pos, cost := sum.OptimalPlacement(v0.Position, v1.Position, s.epsilon)
	return &candidate{
		edge:   e,
		vertex: &halfedge.Vertex{Position: pos},
		cost:   cost,
		valid:  true,
	}
}

// pushNew builds and registers a fresh candidate for canonical edge e,
// pushing it onto the queue and installing it in validEdges.
func (s *scheduler) pushNew(e *halfedge.HalfEdge) {
	c := s.newCandidate(e)
	s.validEdges[canonicalKey(e)] = c
	heap.Push(s.queue, c)
}

// invalidate marks stale (and removes from validEdges) the candidate
// currently registered for the canonical key of e, if any.
func (s *scheduler) invalidate(e *halfedge.HalfEdge) {
	key := canonicalKey(halfedge.CanonicalEdge(e))
	if c, ok := s.validEdges[key]; ok {
		c.valid = false
		delete(s.validEdges, key)
	}
}

// accept performs one contraction: assigns the new vertex id,
// propagates the quadric, invalidates every candidate touching either
// endpoint (step 5), contracts the mesh (step 6), and regenerates
// candidates across the 2-ring of the new vertex (step 7) — spec
// §4.5's main-loop steps 3-7.
func (s *scheduler) accept(top *candidate) error {
	v0 := top.edge.Tail()
	v1 := top.edge.Head

	top.vertex.ID = s.nextID
	s.nextID++

	s.quadrics[top.vertex.ID] = s.quadrics[v0.ID].Add(s.quadrics[v1.ID])

	for _, vi := range [2]*halfedge.Vertex{v0, v1} {
		for _, e := range halfedge.FanEdges(vi) {
			s.invalidate(e)
		}
	}

	if err := s.mesh.Contract(top.edge, top.vertex); err != nil {
		return err
	}

	delete(s.quadrics, v0.ID)
	delete(s.quadrics, v1.ID)

	visited := make(map[halfedge.EdgeKey]bool)
	for _, eNew := range halfedge.FanEdges(top.vertex) {
		vj := eNew.Head
		for _, eRing := range halfedge.FanEdges(vj) {
			ce := halfedge.CanonicalEdge(eRing)
			key := canonicalKey(ce)
			if visited[key] {
				continue
			}
			visited[key] = true
			if c, ok := s.validEdges[key]; ok {
				c.valid = false
			}
			s.pushNew(ce)
		}
	}

	return nil
}
