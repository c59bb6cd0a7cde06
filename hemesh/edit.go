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

// AddVertex adds an isolated vertex carrying data.
func (m *Mesh[V, E, P]) AddVertex(data V) *Vertex[V, E, P] {
	return m.newVertex(data)
}

// AddEdge adds an edge between v0 and v1 whose HalfEdge runs from v0 to v1.
// Both half-edges are free. It fails if v0 and v1 are the same or already
// connected, or if either end is enclosed by polygons on every side.
func (m *Mesh[V, E, P]) AddEdge(v0, v1 *Vertex[V, E, P], data E) (*Edge[V, E, P], error) {
	e, err := m.addEdge(v0, v1, data)
	return e, precondition(err)
}

func (m *Mesh[V, E, P]) addEdge(v0, v1 *Vertex[V, E, P], data E) (*Edge[V, E, P], error) {
	if !m.vertices.contains(v0) || !m.vertices.contains(v1) {
		return nil, ErrNotInMesh
	}
	if v0 == v1 {
		return nil, ErrSameVertex
	}
	if v0.IsConnected(v1) {
		return nil, ErrConnected
	}

	var in0, in1 *HalfEdge[V, E, P]
	if !v0.IsIsolated() {
		if in0 = v0.FindFreeIncident(); in0 == nil {
			return nil, ErrNonManifoldVertex
		}
	}
	if !v1.IsIsolated() {
		if in1 = v1.FindFreeIncident(); in1 == nil {
			return nil, ErrNonManifoldVertex
		}
	}

	he0 := m.newHalfEdge()
	he1 := m.newHalfEdge()
	e := m.newEdge(data)
	e.halfEdge = he0

	he0.next, he0.pair, he0.origin, he0.edge = he1, he1, v0, e
	he1.next, he1.pair, he1.origin, he1.edge = he0, he0, v1, e

	// Splice each half-edge into the free gap of its origin's fan.
	if in0 != nil {
		out0 := in0.next
		in0.next = he0
		he1.next = out0
	} else {
		v0.halfEdge = he0
	}
	if in1 != nil {
		out1 := in1.next
		in1.next = he1
		he0.next = out1
	} else {
		v1.halfEdge = he1
	}
	return e, nil
}

// AddPolygon attaches a polygon to a loop of free half-edges, listed in
// loop order. The polygon's HalfEdge is heLoop[0]. Free half-edges around
// the loop's vertices are reordered as needed; if that is impossible no
// link is changed.
func (m *Mesh[V, E, P]) AddPolygon(heLoop []*HalfEdge[V, E, P], data P) (*Polygon[V, E, P], error) {
	p, err := m.addPolygon(heLoop, data)
	return p, precondition(err)
}

func (m *Mesh[V, E, P]) addPolygon(heLoop []*HalfEdge[V, E, P], data P) (*Polygon[V, E, P], error) {
	n := len(heLoop)
	if n < 3 {
		return nil, ErrDegeneratePolygon
	}
	for i, he := range heLoop {
		if !m.halfEdges.contains(he) {
			return nil, ErrNotInMesh
		}
		if !he.IsBoundary() {
			return nil, ErrHalfEdgeNotFree
		}
		for _, other := range heLoop[:i] {
			if other.origin == he.origin {
				return nil, ErrDegeneratePolygon
			}
		}
	}
	for i, he := range heLoop {
		if he.End() != heLoop[(i+1)%n].origin {
			return nil, ErrNotLoop
		}
	}

	var j nextJournal[V, E, P]
	for i, he := range heLoop {
		if !makeAdjacent(he, heLoop[(i+1)%n], &j) {
			j.rollback()
			return nil, ErrNonManifoldVertex
		}
	}

	p := m.newPolygon(data)
	p.halfEdge = heLoop[0]
	for _, he := range heLoop {
		he.polygon = p
	}
	return p, nil
}

// RemovePolygon deletes p. Its half-edges stay in place as boundary.
func (m *Mesh[V, E, P]) RemovePolygon(p *Polygon[V, E, P]) error {
	if !m.polygons.contains(p) {
		return precondition(ErrNotInMesh)
	}
	m.removePolygon(p)
	return nil
}

func (m *Mesh[V, E, P]) removePolygon(p *Polygon[V, E, P]) {
	for _, he := range p.BoundaryHalfEdges() {
		he.polygon = nil
	}
	m.deletePolygon(p)
}

// RemoveEdge deletes e and its half-edges. Neither side of e may bound a
// polygon.
func (m *Mesh[V, E, P]) RemoveEdge(e *Edge[V, E, P]) error {
	if !m.edges.contains(e) {
		return precondition(ErrNotInMesh)
	}
	if !e.IsFree() {
		return precondition(ErrEdgeNotFree)
	}
	m.removeEdge(e)
	return nil
}

// removeEdge unlinks and deletes a free edge.
func (m *Mesh[V, E, P]) removeEdge(e *Edge[V, E, P]) {
	he0 := e.halfEdge
	he1 := he0.pair
	v0, v1 := he0.origin, he1.origin
	in0, in1 := he0.Pre(), he1.Pre()
	out0, out1 := he1.next, he0.next

	if v0.halfEdge == he0 {
		if out0 == he0 {
			v0.halfEdge = nil
		} else {
			v0.halfEdge = out0
		}
	}
	in0.next = out0

	if v1.halfEdge == he1 {
		if out1 == he1 {
			v1.halfEdge = nil
		} else {
			v1.halfEdge = out1
		}
	}
	in1.next = out1

	m.deleteHalfEdge(he0)
	m.deleteHalfEdge(he1)
	m.deleteEdge(e)
}

// removeEdgeAndPolygons deletes e after deleting the polygons on its sides.
func (m *Mesh[V, E, P]) removeEdgeAndPolygons(e *Edge[V, E, P]) {
	if p := e.halfEdge.polygon; p != nil {
		m.removePolygon(p)
	}
	if p := e.halfEdge.pair.polygon; p != nil {
		m.removePolygon(p)
	}
	m.removeEdge(e)
}

// RemoveVertex deletes an isolated vertex.
func (m *Mesh[V, E, P]) RemoveVertex(v *Vertex[V, E, P]) error {
	if !m.vertices.contains(v) {
		return precondition(ErrNotInMesh)
	}
	if !v.IsIsolated() {
		return precondition(ErrNotIsolated)
	}
	m.deleteVertex(v)
	return nil
}
