// Copyright 2026 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hemesh

// HalfEdge is one directed side of an Edge. It bounds exactly one polygon,
// or the boundary when Polygon returns nil.
//
// All relations are non-owning; the Mesh that created the half-edge owns it.
type HalfEdge[V, E, P any] struct {
	slot

	next    *HalfEdge[V, E, P]
	pair    *HalfEdge[V, E, P]
	origin  *Vertex[V, E, P]
	edge    *Edge[V, E, P]
	polygon *Polygon[V, E, P]
}

// Next returns the next half-edge around the polygon or boundary loop.
func (he *HalfEdge[V, E, P]) Next() *HalfEdge[V, E, P] { return he.next }

// Pair returns the opposite half-edge of the same edge.
func (he *HalfEdge[V, E, P]) Pair() *HalfEdge[V, E, P] { return he.pair }

// Origin returns the vertex the half-edge starts from.
func (he *HalfEdge[V, E, P]) Origin() *Vertex[V, E, P] { return he.origin }

// End returns the vertex the half-edge points to.
func (he *HalfEdge[V, E, P]) End() *Vertex[V, E, P] { return he.pair.origin }

// Edge returns the undirected edge the half-edge belongs to.
func (he *HalfEdge[V, E, P]) Edge() *Edge[V, E, P] { return he.edge }

// Polygon returns the polygon bounded by the half-edge, or nil if the
// half-edge lies on a boundary loop.
func (he *HalfEdge[V, E, P]) Polygon() *Polygon[V, E, P] { return he.polygon }

// IsBoundary reports whether the half-edge lies on a boundary loop. Such a
// half-edge is free: a polygon may still be attached to it.
func (he *HalfEdge[V, E, P]) IsBoundary() bool { return he.polygon == nil }

// Pre returns the half-edge whose Next is he. It walks the loop.
func (he *HalfEdge[V, E, P]) Pre() *HalfEdge[V, E, P] {
	p := he
	for p.next != he {
		p = p.next
	}
	return p
}

// RotateNext returns the next outgoing half-edge around he's origin.
func (he *HalfEdge[V, E, P]) RotateNext() *HalfEdge[V, E, P] { return he.pair.next }

// RotatePre returns the previous outgoing half-edge around he's origin.
func (he *HalfEdge[V, E, P]) RotatePre() *HalfEdge[V, E, P] { return he.Pre().pair }

// NextTo returns the half-edges [he, end) following Next. If end is he the
// whole loop is returned.
func (he *HalfEdge[V, E, P]) NextTo(end *HalfEdge[V, E, P]) []*HalfEdge[V, E, P] {
	var hes []*HalfEdge[V, E, P]
	for cur := he; ; {
		hes = append(hes, cur)
		cur = cur.next
		if cur == end {
			return hes
		}
	}
}

// RotateNextTo returns the half-edges [he, end) following RotateNext. If
// end is he every outgoing half-edge of he's origin is returned.
func (he *HalfEdge[V, E, P]) RotateNextTo(end *HalfEdge[V, E, P]) []*HalfEdge[V, E, P] {
	var hes []*HalfEdge[V, E, P]
	for cur := he; ; {
		hes = append(hes, cur)
		cur = cur.RotateNext()
		if cur == end {
			return hes
		}
	}
}

// Loop returns the loop of half-edges starting at he.
func (he *HalfEdge[V, E, P]) Loop() []*HalfEdge[V, E, P] { return he.NextTo(he) }

// NextAt returns the first half-edge of the loop, starting at he, whose
// origin is v, or nil if the loop does not pass through v.
func (he *HalfEdge[V, E, P]) NextAt(v *Vertex[V, E, P]) *HalfEdge[V, E, P] {
	for cur := he; ; {
		if cur.origin == v {
			return cur
		}
		cur = cur.next
		if cur == he {
			return nil
		}
	}
}

func (he *HalfEdge[V, E, P]) loopLen() int {
	n := 0
	for cur := he; ; {
		n++
		cur = cur.next
		if cur == he {
			return n
		}
	}
}

// findFreeIncident searches the incoming half-edges of a vertex in the range
// [begin, end) for a free one. Incoming half-edges are visited by
// Next().Pair(). If begin is end the whole fan is searched.
func findFreeIncident[V, E, P any](begin, end *HalfEdge[V, E, P]) *HalfEdge[V, E, P] {
	for he := begin; ; {
		if he.IsBoundary() {
			return he
		}
		he = he.next.pair
		if he == end {
			return nil
		}
	}
}

// makeAdjacent relinks the free half-edges around the vertex between in and
// out so that in.Next() is out. It reports false when no free incoming
// half-edge can take out's old place in the fan.
func makeAdjacent[V, E, P any](in, out *HalfEdge[V, E, P], j *nextJournal[V, E, P]) bool {
	if in.next == out {
		return true
	}
	freeIn := findFreeIncident(out.pair, in)
	if freeIn == nil {
		return false
	}
	inNext := in.next
	outPre := out.Pre()
	freeInNext := freeIn.next

	j.setNext(in, out)
	j.setNext(outPre, freeInNext)
	j.setNext(freeIn, inNext)
	return true
}

func (he *HalfEdge[V, E, P]) clear() {
	he.next = nil
	he.pair = nil
	he.origin = nil
	he.edge = nil
	he.polygon = nil
}

// nextJournal records Next rewrites so a multi-step relink can be undone.
type nextJournal[V, E, P any] struct {
	entries []journalEntry[V, E, P]
}

type journalEntry[V, E, P any] struct {
	he, next *HalfEdge[V, E, P]
}

func (j *nextJournal[V, E, P]) setNext(he, next *HalfEdge[V, E, P]) {
	j.entries = append(j.entries, journalEntry[V, E, P]{he, he.next})
	he.next = next
}

func (j *nextJournal[V, E, P]) rollback() {
	for i := len(j.entries) - 1; i >= 0; i-- {
		e := j.entries[i]
		e.he.next = e.next
	}
	j.entries = nil
}
