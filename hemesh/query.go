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

// HaveBoundary reports whether any half-edge lies on a boundary loop.
func (m *Mesh[V, E, P]) HaveBoundary() bool {
	for _, he := range m.halfEdges.slice() {
		if he.IsBoundary() {
			return true
		}
	}
	return false
}

// Boundaries returns every boundary loop as an ordered list of half-edges.
func (m *Mesh[V, E, P]) Boundaries() [][]*HalfEdge[V, E, P] {
	var loops [][]*HalfEdge[V, E, P]
	visited := make(map[*HalfEdge[V, E, P]]bool)
	for _, he := range m.halfEdges.slice() {
		if !he.IsBoundary() || visited[he] {
			continue
		}
		loop := he.Loop()
		for _, b := range loop {
			visited[b] = true
		}
		loops = append(loops, loop)
	}
	return loops
}

// NumBoundaries returns the number of boundary loops.
func (m *Mesh[V, E, P]) NumBoundaries() int { return len(m.Boundaries()) }

// IsTriMesh reports whether every polygon is a triangle.
func (m *Mesh[V, E, P]) IsTriMesh() bool {
	for _, p := range m.polygons.slice() {
		if !p.IsTriangle() {
			return false
		}
	}
	return true
}

// HaveIsolatedVertices reports whether any vertex has no incident edge.
func (m *Mesh[V, E, P]) HaveIsolatedVertices() bool {
	for _, v := range m.vertices.slice() {
		if v.IsIsolated() {
			return true
		}
	}
	return false
}

// IsValid checks the structural invariants over the whole mesh: pairing,
// loop closure, edge and vertex back references, and store membership. It
// walks everything and is meant for tests and debugging.
func (m *Mesh[V, E, P]) IsValid() bool {
	return m.check() == ""
}

// check returns a description of the first violated invariant, or "".
func (m *Mesh[V, E, P]) check() string {
	if m.vertices.empty() &&
		!(m.halfEdges.empty() && m.edges.empty() && m.polygons.empty()) {
		return "entities without vertices"
	}
	if m.halfEdges.size() != 2*m.edges.size() {
		return "half-edge count is not twice the edge count"
	}

	for _, he := range m.halfEdges.slice() {
		switch {
		case !m.halfEdges.contains(he.next):
			return "next not in mesh"
		case !m.halfEdges.contains(he.pair):
			return "pair not in mesh"
		case !m.vertices.contains(he.origin):
			return "origin not in mesh"
		case !m.edges.contains(he.edge):
			return "edge not in mesh"
		case he.polygon != nil && !m.polygons.contains(he.polygon):
			return "polygon not in mesh"
		case he.pair == he || he.pair.pair != he:
			return "pair is not an involution"
		case he.next.origin != he.pair.origin:
			return "next does not start at the end of the half-edge"
		case he.pair.edge != he.edge:
			return "pair on a different edge"
		case he.edge.halfEdge != he && he.edge.halfEdge != he.pair:
			return "edge does not reference its half-edges"
		}
	}

	// Every half-edge lies on exactly one closed loop with a single polygon.
	visited := make(map[*HalfEdge[V, E, P]]bool, m.halfEdges.size())
	loops := make(map[*Polygon[V, E, P]]int, m.polygons.size())
	for _, start := range m.halfEdges.slice() {
		if visited[start] {
			continue
		}
		if start.polygon != nil {
			if loops[start.polygon]++; loops[start.polygon] > 1 {
				return "polygon spans several loops"
			}
		}
		for he := start; ; {
			if visited[he] {
				return "loop does not close"
			}
			visited[he] = true
			if he.polygon != start.polygon {
				return "loop mixes polygons"
			}
			he = he.next
			if he == start {
				break
			}
		}
	}

	for _, e := range m.edges.slice() {
		if !m.halfEdges.contains(e.halfEdge) || e.halfEdge.edge != e {
			return "edge half-edge mismatch"
		}
	}
	for _, v := range m.vertices.slice() {
		if v.halfEdge == nil {
			continue
		}
		if !m.halfEdges.contains(v.halfEdge) || v.halfEdge.origin != v {
			return "vertex half-edge does not originate at the vertex"
		}
	}
	for _, p := range m.polygons.slice() {
		if !m.halfEdges.contains(p.halfEdge) || p.halfEdge.polygon != p {
			return "polygon half-edge on another polygon"
		}
	}
	return ""
}
