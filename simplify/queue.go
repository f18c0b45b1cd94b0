// SPDX-License-Identifier: MIT
package simplify

import "github.com/arcmesh/qemsimplify/halfedge"

// candidate is a scheduled contraction: collapsing edge into vertex at
// the recorded cost. valid is turned off the moment a fresher
// candidate for the same canonical edge supersedes this one; the heap
// entry itself is left in place and skipped lazily on pop (spec §4.5
// — "the valid flag exists because heap entries cannot be updated in
// place").
type candidate struct {
	edge   *halfedge.HalfEdge
	vertex *halfedge.Vertex
	cost   float64
	valid  bool
}

// candidatePQ implements heap.Interface for a min-heap of *candidate,
// ordered by cost.
type candidatePQ []*candidate

func (pq candidatePQ) Len() int            { return len(pq) }
func (pq candidatePQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq candidatePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(*candidate)) }
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]
	return c
}
