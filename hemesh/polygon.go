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

// Polygon is a face carrying a payload of type P. Walking Next from
// HalfEdge enumerates its boundary loop. The boundary face is never a
// Polygon; it is represented by a nil polygon on the half-edge.
type Polygon[V, E, P any] struct {
	slot
	Data P

	halfEdge *HalfEdge[V, E, P]
}

// HalfEdge returns the half-edge the polygon's loop starts at.
func (p *Polygon[V, E, P]) HalfEdge() *HalfEdge[V, E, P] { return p.halfEdge }

// Degree returns the number of sides.
func (p *Polygon[V, E, P]) Degree() int { return p.halfEdge.loopLen() }

// IsTriangle reports whether the polygon has exactly three sides.
func (p *Polygon[V, E, P]) IsTriangle() bool {
	he := p.halfEdge
	return he.next.next.next == he
}

// BoundaryHalfEdges returns the half-edges of the polygon's loop.
func (p *Polygon[V, E, P]) BoundaryHalfEdges() []*HalfEdge[V, E, P] {
	return p.halfEdge.Loop()
}

// BoundaryVertices returns the origins of the loop's half-edges in order.
func (p *Polygon[V, E, P]) BoundaryVertices() []*Vertex[V, E, P] {
	var vs []*Vertex[V, E, P]
	for he := p.halfEdge; ; {
		vs = append(vs, he.origin)
		he = he.next
		if he == p.halfEdge {
			return vs
		}
	}
}

// BoundaryEdges returns the edges around the polygon in loop order.
func (p *Polygon[V, E, P]) BoundaryEdges() []*Edge[V, E, P] {
	var es []*Edge[V, E, P]
	for he := p.halfEdge; ; {
		es = append(es, he.edge)
		he = he.next
		if he == p.halfEdge {
			return es
		}
	}
}

// AdjPolygons returns the distinct real polygons sharing an edge with p.
func (p *Polygon[V, E, P]) AdjPolygons() []*Polygon[V, E, P] {
	var ps []*Polygon[V, E, P]
	for he := p.halfEdge; ; {
		if q := he.pair.polygon; q != nil && q != p && !containsPtr(ps, q) {
			ps = append(ps, q)
		}
		he = he.next
		if he == p.halfEdge {
			return ps
		}
	}
}

func (p *Polygon[V, E, P]) clear() {
	p.halfEdge = nil
}
