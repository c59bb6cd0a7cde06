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

// Vertex is a mesh vertex carrying a payload of type V. Degree and boundary
// status are derived from the half-edge structure.
type Vertex[V, E, P any] struct {
	slot
	Data V

	halfEdge *HalfEdge[V, E, P]
}

// HalfEdge returns one half-edge originating at v, or nil if v is isolated.
func (v *Vertex[V, E, P]) HalfEdge() *HalfEdge[V, E, P] { return v.halfEdge }

// IsIsolated reports whether v has no incident edges.
func (v *Vertex[V, E, P]) IsIsolated() bool { return v.halfEdge == nil }

// IsBoundary reports whether v lies on a boundary loop. Isolated vertices
// are on the boundary since no polygon surrounds them.
func (v *Vertex[V, E, P]) IsBoundary() bool {
	if v.IsIsolated() {
		return true
	}
	for he := v.halfEdge; ; {
		if he.IsBoundary() {
			return true
		}
		he = he.RotateNext()
		if he == v.halfEdge {
			return false
		}
	}
}

// OutHalfEdges returns the half-edges originating at v in RotateNext order.
func (v *Vertex[V, E, P]) OutHalfEdges() []*HalfEdge[V, E, P] {
	if v.IsIsolated() {
		return nil
	}
	return v.halfEdge.RotateNextTo(v.halfEdge)
}

// Degree returns the number of edges incident to v.
func (v *Vertex[V, E, P]) Degree() int {
	if v.IsIsolated() {
		return 0
	}
	n := 0
	for he := v.halfEdge; ; {
		n++
		he = he.RotateNext()
		if he == v.halfEdge {
			return n
		}
	}
}

// AdjVertices returns the vertices connected to v by an edge.
func (v *Vertex[V, E, P]) AdjVertices() []*Vertex[V, E, P] {
	var vs []*Vertex[V, E, P]
	for _, he := range v.OutHalfEdges() {
		vs = append(vs, he.End())
	}
	return vs
}

// AdjEdges returns the edges incident to v.
func (v *Vertex[V, E, P]) AdjEdges() []*Edge[V, E, P] {
	var es []*Edge[V, E, P]
	for _, he := range v.OutHalfEdges() {
		es = append(es, he.edge)
	}
	return es
}

// AdjPolygons returns the distinct polygons around v.
func (v *Vertex[V, E, P]) AdjPolygons() []*Polygon[V, E, P] {
	var ps []*Polygon[V, E, P]
	for _, he := range v.OutHalfEdges() {
		if he.polygon != nil && !containsPtr(ps, he.polygon) {
			ps = append(ps, he.polygon)
		}
	}
	return ps
}

// HalfEdgeTo returns the half-edge from v to u, or nil if there is none.
func (v *Vertex[V, E, P]) HalfEdgeTo(u *Vertex[V, E, P]) *HalfEdge[V, E, P] {
	if v.IsIsolated() {
		return nil
	}
	for he := v.halfEdge; ; {
		if he.End() == u {
			return he
		}
		he = he.RotateNext()
		if he == v.halfEdge {
			return nil
		}
	}
}

// IsConnected reports whether an edge joins v and u.
func (v *Vertex[V, E, P]) IsConnected(u *Vertex[V, E, P]) bool {
	return v.HalfEdgeTo(u) != nil
}

// FindFreeIncident returns a boundary half-edge pointing into v, or nil if
// v is isolated or completely surrounded by polygons.
func (v *Vertex[V, E, P]) FindFreeIncident() *HalfEdge[V, E, P] {
	if v.IsIsolated() {
		return nil
	}
	begin := v.halfEdge.pair
	return findFreeIncident(begin, begin)
}

// freeOutgoing returns the boundary half-edges leaving v.
func (v *Vertex[V, E, P]) freeOutgoing() []*HalfEdge[V, E, P] {
	var hes []*HalfEdge[V, E, P]
	for _, he := range v.OutHalfEdges() {
		if he.IsBoundary() {
			hes = append(hes, he)
		}
	}
	return hes
}

func (v *Vertex[V, E, P]) clear() {
	v.halfEdge = nil
}

func containsPtr[T comparable](xs []T, x T) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}
	return false
}
