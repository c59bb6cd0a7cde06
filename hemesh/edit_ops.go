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

import "fmt"

// AddEdgeVertex inserts a new vertex on e, splitting it into two edges
// without touching the polygons beyond adding one side to each. With e
// running v0 to v1, e keeps the v0 side and a new edge joins the new vertex
// to v1. The new vertex's HalfEdge points toward v1 and its payload is the
// zero value.
func (m *Mesh[V, E, P]) AddEdgeVertex(e *Edge[V, E, P]) (*Vertex[V, E, P], error) {
	if !m.edges.contains(e) {
		return nil, precondition(ErrNotInMesh)
	}
	v, _ := m.addEdgeVertex(e)
	return v, nil
}

// addEdgeVertex returns the new vertex and the new edge.
func (m *Mesh[V, E, P]) addEdgeVertex(e *Edge[V, E, P]) (*Vertex[V, E, P], *Edge[V, E, P]) {
	var (
		zeroV V
		zeroE E
	)
	he01 := e.halfEdge
	he10 := he01.pair
	v1 := he10.origin
	next01 := he01.next
	pre10 := he10.Pre()

	v := m.newVertex(zeroV)
	hv1 := m.newHalfEdge()
	h1v := m.newHalfEdge()
	e1 := m.newEdge(zeroE)
	e1.halfEdge = hv1

	hv1.pair, hv1.origin, hv1.edge, hv1.polygon = h1v, v, e1, he01.polygon
	h1v.pair, h1v.origin, h1v.edge, h1v.polygon = hv1, v1, e1, he10.polygon

	// v0 -> v -> v1 on he01's side, v1 -> v -> v0 on he10's side.
	he01.next = hv1
	if next01 == he10 {
		hv1.next = h1v
	} else {
		hv1.next = next01
		pre10.next = h1v
	}
	h1v.next = he10
	he10.origin = v

	if v1.halfEdge == he10 {
		v1.halfEdge = h1v
	}
	v.halfEdge = hv1
	return v, e1
}

// SplitEdge replaces e by two new edges meeting at a new vertex, which is
// returned. Adjacent polygons gain one side each; no retriangulation is
// done and the new vertex's payload is the zero value, so placing it is up
// to the caller.
func (m *Mesh[V, E, P]) SplitEdge(e *Edge[V, E, P]) (*Vertex[V, E, P], error) {
	if !m.edges.contains(e) {
		return nil, precondition(ErrNotInMesh)
	}
	var zeroE E
	he01 := e.halfEdge
	v, _ := m.addEdgeVertex(e)

	e0 := m.newEdge(zeroE)
	e0.halfEdge = he01
	he01.edge = e0
	he01.pair.edge = e0
	m.deleteEdge(e)
	return v, nil
}

// RotateEdge turns e counter-clockwise inside the region formed by its two
// polygons: each endpoint moves one step forward along its polygon. The
// edge and its half-edges keep their identity, so rotating while iterating
// Edges is safe. Side counts are preserved.
func (m *Mesh[V, E, P]) RotateEdge(e *Edge[V, E, P]) error {
	if !m.edges.contains(e) {
		return precondition(ErrNotInMesh)
	}
	if e.IsBoundary() {
		return precondition(ErrBoundaryEdge)
	}

	he1 := e.halfEdge
	he2 := he1.pair
	v1, v2 := he1.origin, he2.origin
	he1Next, he2Next := he1.next, he2.next
	v3, v4 := he1Next.End(), he2Next.End()

	if v3 == v4 || v3.IsConnected(v4) {
		return ErrDuplicateEdge
	}
	if he1.polygon == he2.polygon || v1.Degree() < 3 || v2.Degree() < 3 {
		return ErrNonManifoldResult
	}

	he1Pre, he2Pre := he1.Pre(), he2.Pre()
	he1NextNext, he2NextNext := he1Next.next, he2Next.next
	p1, p2 := he1.polygon, he2.polygon

	if v1.halfEdge == he1 {
		v1.halfEdge = he2Next
	}
	if v2.halfEdge == he2 {
		v2.halfEdge = he1Next
	}

	he1.origin = v4
	he2.origin = v3
	he1.next = he1NextNext
	he2.next = he2NextNext
	he1Pre.next = he2Next
	he2Pre.next = he1Next
	he1Next.next = he2
	he2Next.next = he1
	he1Next.polygon = p2
	he2Next.polygon = p1

	if p1.halfEdge == he1Next {
		p1.halfEdge = he1
	}
	if p2.halfEdge == he2Next {
		p2.halfEdge = he2
	}
	m.generation++
	return nil
}

// EraseVertex removes v with its edges and polygons. For an interior vertex
// the polygons around it are merged into one new polygon, which is
// returned. A boundary vertex leaves a hole open to the boundary and a nil
// polygon is returned. It fails without changes if the merged polygon would
// not be a simple loop, or if removing a boundary star would pinch a
// neighbouring vertex between two boundary gaps.
func (m *Mesh[V, E, P]) EraseVertex(v *Vertex[V, E, P]) (*Polygon[V, E, P], error) {
	if !m.vertices.contains(v) {
		return nil, precondition(ErrNotInMesh)
	}
	if v.IsIsolated() {
		m.deleteVertex(v)
		return nil, nil
	}
	if v.IsBoundary() {
		if pinchesBoundary(v) {
			return nil, ErrNonManifoldResult
		}
		for _, e := range v.AdjEdges() {
			m.removeEdgeAndPolygons(e)
		}
		m.deleteVertex(v)
		return nil, nil
	}

	// The link of v: for each outgoing half-edge, in RotatePre order, the
	// part of its polygon's loop that does not touch v.
	var link []*HalfEdge[V, E, P]
	start := v.halfEdge
	for out := start; ; {
		for he := out.next; he.End() != v; he = he.next {
			if he.origin == v {
				return nil, ErrNonManifoldResult
			}
			link = append(link, he)
		}
		out = out.RotatePre()
		if out == start {
			break
		}
	}
	if len(link) < 3 {
		return nil, ErrNonManifoldResult
	}
	for i, he := range link {
		if he.End() != link[(i+1)%len(link)].origin {
			return nil, ErrNonManifoldResult
		}
		for _, other := range link[:i] {
			if other.origin == he.origin {
				return nil, ErrNonManifoldResult
			}
		}
	}

	for _, e := range v.AdjEdges() {
		m.removeEdgeAndPolygons(e)
	}
	m.deleteVertex(v)

	var zeroP P
	p, err := m.addPolygon(link, zeroP)
	if err != nil {
		return nil, fmt.Errorf("EraseVertex: %w", err)
	}
	return p, nil
}

// pinchesBoundary reports whether removing the boundary vertex v with its
// polygons would leave some other vertex with two boundary gaps.
func pinchesBoundary[V, E, P any](v *Vertex[V, E, P]) bool {
	removed := v.AdjPolygons()
	gone := func(p *Polygon[V, E, P]) bool {
		return p == nil || containsPtr(removed, p)
	}
	for _, p := range removed {
		for _, x := range p.BoundaryVertices() {
			if x == v {
				continue
			}
			gaps := 0
			for _, h := range x.OutHalfEdges() {
				if h.End() != v && gone(h.polygon) && !gone(h.pair.polygon) {
					gaps++
				}
			}
			if gaps > 1 {
				return true
			}
		}
	}
	return false
}

// CollapseEdge merges e's endpoints into e's origin, which is returned.
// Triangles on either side of e degenerate and are removed with one of
// their remaining edges. It fails without changes if the result would have
// duplicate edges or a pinched vertex.
func (m *Mesh[V, E, P]) CollapseEdge(e *Edge[V, E, P]) (*Vertex[V, E, P], error) {
	if !m.edges.contains(e) {
		return nil, precondition(ErrNotInMesh)
	}
	he01 := e.halfEdge
	he10 := he01.pair
	if err := m.checkCollapse(he01); err != nil {
		return nil, err
	}

	v0, v1 := he01.origin, he10.origin
	tri01 := !he01.IsBoundary() && he01.loopLen() == 3
	tri10 := !he10.IsBoundary() && he10.loopLen() == 3

	outs := v1.OutHalfEdges()
	pre01, next01 := he01.Pre(), he01.next
	pre10, next10 := he10.Pre(), he10.next

	for _, he := range outs {
		he.origin = v0
	}
	// A dangling end has the two half-edges of e adjacent on one loop.
	switch {
	case next01 == he10:
		pre01.next = next10
	case next10 == he01:
		pre10.next = next01
	default:
		pre01.next = next01
		pre10.next = next10
	}

	if v0.halfEdge == he01 {
		if next10 != he01 {
			v0.halfEdge = next10
		} else {
			v0.halfEdge = next01
		}
	}
	if p := he01.polygon; p != nil && p.halfEdge == he01 {
		p.halfEdge = next01
	}
	if p := he10.polygon; p != nil && p.halfEdge == he10 {
		p.halfEdge = next10
	}

	m.deleteHalfEdge(he01)
	m.deleteHalfEdge(he10)
	m.deleteEdge(e)
	m.deleteVertex(v1)

	if tri01 {
		m.dissolveDigon(next01, pre01)
	}
	if tri10 {
		m.dissolveDigon(next10, pre10)
	}
	return v0, nil
}

// checkCollapse tests the link condition for collapsing he's edge.
func (m *Mesh[V, E, P]) checkCollapse(he01 *HalfEdge[V, E, P]) error {
	he10 := he01.pair
	v0, v1 := he01.origin, he10.origin

	var apexes []*Vertex[V, E, P]
	for _, he := range []*HalfEdge[V, E, P]{he01, he10} {
		n := he.loopLen()
		if he.IsBoundary() {
			if n <= 3 {
				return ErrNonManifoldResult
			}
			continue
		}
		if n == 3 {
			apexes = append(apexes, he.next.End())
		}
	}
	if len(apexes) == 2 && apexes[0] == apexes[1] {
		return ErrDuplicateEdge
	}

	for _, u := range v0.AdjVertices() {
		if u != v1 && u.IsConnected(v1) && !containsPtr(apexes, u) {
			return ErrDuplicateEdge
		}
	}

	if len(apexes) == 2 {
		a, b := apexes[0], apexes[1]
		if hasTriangle(v0, a, b) && hasTriangle(v1, a, b) {
			return ErrDuplicateEdge
		}
	}

	if !he01.Edge().IsBoundary() && v0.IsBoundary() && v1.IsBoundary() {
		return ErrNonManifoldResult
	}
	return nil
}

// hasTriangle reports whether a triangle polygon spans x, y and z.
func hasTriangle[V, E, P any](x, y, z *Vertex[V, E, P]) bool {
	he := x.HalfEdgeTo(y)
	if he == nil {
		return false
	}
	for _, side := range []*HalfEdge[V, E, P]{he, he.pair} {
		if side.polygon != nil && side.loopLen() == 3 && side.next.End() == z {
			return true
		}
	}
	return false
}

// dissolveDigon removes the two-sided polygon formed by h1 and h2, which run
// v -> a and a -> v, and glues their pairs into a single edge.
func (m *Mesh[V, E, P]) dissolveDigon(h1, h2 *HalfEdge[V, E, P]) {
	t := h1.polygon
	v, a := h1.origin, h2.origin
	p1, p2 := h1.pair, h2.pair
	keep, drop := h2.edge, h1.edge

	p1.pair = p2
	p2.pair = p1
	p1.edge = keep
	keep.halfEdge = p2

	if v.halfEdge == h1 {
		v.halfEdge = p2
	}
	if a.halfEdge == h2 {
		a.halfEdge = p1
	}

	m.deleteHalfEdge(h1)
	m.deleteHalfEdge(h2)
	m.deleteEdge(drop)
	m.deletePolygon(t)
}

// AddPolygonVertex adds a new vertex inside he's polygon (which may be the
// boundary) joined to he's origin by a new edge. The loop becomes
// ... -> origin -> new -> origin -> he -> ...; the new vertex is returned.
func (m *Mesh[V, E, P]) AddPolygonVertex(he *HalfEdge[V, E, P]) (*Vertex[V, E, P], error) {
	if !m.halfEdges.contains(he) {
		return nil, precondition(ErrNotInMesh)
	}
	return m.addPolygonVertex(he), nil
}

func (m *Mesh[V, E, P]) addPolygonVertex(he *HalfEdge[V, E, P]) *Vertex[V, E, P] {
	var (
		zeroV V
		zeroE E
	)
	o, p := he.origin, he.polygon
	pre := he.Pre()

	v := m.newVertex(zeroV)
	toV := m.newHalfEdge()
	fromV := m.newHalfEdge()
	e := m.newEdge(zeroE)
	e.halfEdge = toV

	toV.next, toV.pair, toV.origin, toV.edge, toV.polygon = fromV, fromV, o, e, p
	fromV.next, fromV.pair, fromV.origin, fromV.edge, fromV.polygon = he, toV, v, e, p
	pre.next = toV
	v.halfEdge = fromV
	return v
}

// AddPolygonVertexAt is AddPolygonVertex for the corner of p at v. A nil p
// selects the boundary at v; an isolated v then gets a dangling edge to the
// new vertex.
func (m *Mesh[V, E, P]) AddPolygonVertexAt(p *Polygon[V, E, P], v *Vertex[V, E, P]) (*Vertex[V, E, P], error) {
	if !m.vertices.contains(v) {
		return nil, precondition(ErrNotInMesh)
	}
	if p != nil {
		if !m.polygons.contains(p) {
			return nil, precondition(ErrNotInMesh)
		}
		he := p.halfEdge.NextAt(v)
		if he == nil {
			return nil, precondition(ErrNotOnPolygon)
		}
		return m.addPolygonVertex(he), nil
	}

	if v.IsIsolated() {
		var (
			zeroV V
			zeroE E
		)
		u := m.newVertex(zeroV)
		if _, err := m.addEdge(v, u, zeroE); err != nil {
			m.deleteVertex(u)
			return nil, fmt.Errorf("AddPolygonVertexAt: %w", err)
		}
		return u, nil
	}
	free := v.freeOutgoing()
	if len(free) == 0 {
		return nil, precondition(ErrNotOnPolygon)
	}
	return m.addPolygonVertex(free[0]), nil
}

// ConnectVertex adds an edge from he0's origin to he1's origin across the
// polygon (or boundary loop) both half-edges lie on, splitting it in two.
// The returned edge's HalfEdge runs he0.Origin() -> he1.Origin() and bounds
// a new polygon; the loop through he0 keeps the original face, so splitting
// a boundary loop yields one new real polygon.
func (m *Mesh[V, E, P]) ConnectVertex(he0, he1 *HalfEdge[V, E, P]) (*Edge[V, E, P], error) {
	if !m.halfEdges.contains(he0) || !m.halfEdges.contains(he1) {
		return nil, precondition(ErrNotInMesh)
	}
	if he0.polygon != he1.polygon || (he0.polygon == nil && !onLoop(he0, he1)) {
		return nil, precondition(ErrDifferentPolygon)
	}
	v0, v1 := he0.origin, he1.origin
	if v0 == v1 {
		return nil, precondition(ErrSameVertex)
	}
	if v0.IsConnected(v1) {
		return nil, ErrConnected
	}

	var (
		zeroE E
		zeroP P
	)
	pre0, pre1 := he0.Pre(), he1.Pre()
	h01 := m.newHalfEdge()
	h10 := m.newHalfEdge()
	e := m.newEdge(zeroE)
	e.halfEdge = h01

	h01.pair, h01.origin, h01.edge = h10, v0, e
	h10.pair, h10.origin, h10.edge = h01, v1, e

	pre0.next = h01
	h01.next = he1
	pre1.next = h10
	h10.next = he0

	p := he0.polygon
	h10.polygon = p
	if p != nil {
		p.halfEdge = h10
	}
	q := m.newPolygon(zeroP)
	q.halfEdge = h01
	for _, he := range h01.Loop() {
		he.polygon = q
	}
	return e, nil
}

// onLoop reports whether he is reached from start by following Next.
func onLoop[V, E, P any](start, he *HalfEdge[V, E, P]) bool {
	for cur := start; ; {
		if cur == he {
			return true
		}
		cur = cur.next
		if cur == start {
			return false
		}
	}
}

// ConnectVertexIn connects v0 and v1 across polygon p.
func (m *Mesh[V, E, P]) ConnectVertexIn(p *Polygon[V, E, P], v0, v1 *Vertex[V, E, P]) (*Edge[V, E, P], error) {
	if !m.polygons.contains(p) {
		return nil, precondition(ErrNotInMesh)
	}
	he0, he1 := p.halfEdge.NextAt(v0), p.halfEdge.NextAt(v1)
	if he0 == nil || he1 == nil {
		return nil, precondition(ErrNotOnPolygon)
	}
	return m.ConnectVertex(he0, he1)
}
