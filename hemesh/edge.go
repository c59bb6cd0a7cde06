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

// Edge is an undirected edge carrying a payload of type E. It references one
// of its half-edges; the other is reachable through Pair.
type Edge[V, E, P any] struct {
	slot
	Data E

	halfEdge *HalfEdge[V, E, P]
}

// HalfEdge returns the half-edge running from the edge's first vertex to its
// second.
func (e *Edge[V, E, P]) HalfEdge() *HalfEdge[V, E, P] { return e.halfEdge }

// Vertices returns the two endpoints in the direction of HalfEdge.
func (e *Edge[V, E, P]) Vertices() (*Vertex[V, E, P], *Vertex[V, E, P]) {
	return e.halfEdge.origin, e.halfEdge.End()
}

// IsBoundary reports whether either side of the edge is a boundary.
func (e *Edge[V, E, P]) IsBoundary() bool {
	return e.halfEdge.IsBoundary() || e.halfEdge.pair.IsBoundary()
}

// IsFree reports whether neither side of the edge bounds a polygon.
func (e *Edge[V, E, P]) IsFree() bool {
	return e.halfEdge.IsBoundary() && e.halfEdge.pair.IsBoundary()
}

// AdjPolygons returns the real polygons on either side of the edge.
func (e *Edge[V, E, P]) AdjPolygons() []*Polygon[V, E, P] {
	var ps []*Polygon[V, E, P]
	if p := e.halfEdge.polygon; p != nil {
		ps = append(ps, p)
	}
	if p := e.halfEdge.pair.polygon; p != nil && !containsPtr(ps, p) {
		ps = append(ps, p)
	}
	return ps
}

func (e *Edge[V, E, P]) clear() {
	e.halfEdge = nil
}
