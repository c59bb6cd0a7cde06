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

// Mesh is a half-edge mesh over vertex, edge and polygon payload types. It
// is the sole owner of its entities; every entity is allocated and freed
// through it. The zero value is an empty mesh ready to use.
//
// A Mesh is not safe for concurrent use. Concurrent reads are fine as long
// as no edit is in flight.
type Mesh[V, E, P any] struct {
	vertices  entitySet[*Vertex[V, E, P]]
	halfEdges entitySet[*HalfEdge[V, E, P]]
	edges     entitySet[*Edge[V, E, P]]
	polygons  entitySet[*Polygon[V, E, P]]

	generation uint64
}

// New returns an empty mesh.
func New[V, E, P any]() *Mesh[V, E, P] {
	return &Mesh[V, E, P]{}
}

// Vertices returns the vertices in dense index order. The slice is owned by
// the mesh and must not be modified or retained across edits.
func (m *Mesh[V, E, P]) Vertices() []*Vertex[V, E, P] { return m.vertices.slice() }

// HalfEdges returns the half-edges in dense index order.
func (m *Mesh[V, E, P]) HalfEdges() []*HalfEdge[V, E, P] { return m.halfEdges.slice() }

// Edges returns the edges in dense index order.
func (m *Mesh[V, E, P]) Edges() []*Edge[V, E, P] { return m.edges.slice() }

// Polygons returns the polygons in dense index order.
func (m *Mesh[V, E, P]) Polygons() []*Polygon[V, E, P] { return m.polygons.slice() }

func (m *Mesh[V, E, P]) NumVertices() int  { return m.vertices.size() }
func (m *Mesh[V, E, P]) NumHalfEdges() int { return m.halfEdges.size() }
func (m *Mesh[V, E, P]) NumEdges() int     { return m.edges.size() }
func (m *Mesh[V, E, P]) NumPolygons() int  { return m.polygons.size() }

// IsEmpty reports whether the mesh has no vertices. An empty vertex store
// implies every other store is empty too.
func (m *Mesh[V, E, P]) IsEmpty() bool { return m.vertices.empty() }

// Generation returns a counter that changes on every structural edit.
// Dense indices obtained at one generation are invalid at any other.
func (m *Mesh[V, E, P]) Generation() uint64 { return m.generation }

// HasVertex reports whether v belongs to m.
func (m *Mesh[V, E, P]) HasVertex(v *Vertex[V, E, P]) bool { return m.vertices.contains(v) }

// HasHalfEdge reports whether he belongs to m.
func (m *Mesh[V, E, P]) HasHalfEdge(he *HalfEdge[V, E, P]) bool { return m.halfEdges.contains(he) }

// HasEdge reports whether e belongs to m.
func (m *Mesh[V, E, P]) HasEdge(e *Edge[V, E, P]) bool { return m.edges.contains(e) }

// HasPolygon reports whether p belongs to m.
func (m *Mesh[V, E, P]) HasPolygon(p *Polygon[V, E, P]) bool { return m.polygons.contains(p) }

// Indices returns the dense vertex indices of p's boundary in loop order.
func (m *Mesh[V, E, P]) Indices(p *Polygon[V, E, P]) []int {
	var idx []int
	for _, v := range p.BoundaryVertices() {
		i, _ := m.vertices.index(v)
		idx = append(idx, i)
	}
	return idx
}

// Reserve grows vertex capacity to at least n. It has no other effect.
func (m *Mesh[V, E, P]) Reserve(n int) {
	m.vertices.reserve(n)
}

// Clear removes every entity, leaving an empty mesh.
func (m *Mesh[V, E, P]) Clear() {
	for _, he := range m.halfEdges.slice() {
		he.clear()
	}
	for _, v := range m.vertices.slice() {
		v.clear()
	}
	for _, e := range m.edges.slice() {
		e.clear()
	}
	for _, p := range m.polygons.slice() {
		p.clear()
	}
	m.halfEdges.clear()
	m.vertices.clear()
	m.edges.clear()
	m.polygons.clear()
	m.generation++
}

func (m *Mesh[V, E, P]) newVertex(data V) *Vertex[V, E, P] {
	v := &Vertex[V, E, P]{Data: data}
	m.vertices.insert(v)
	m.generation++
	return v
}

func (m *Mesh[V, E, P]) newHalfEdge() *HalfEdge[V, E, P] {
	he := &HalfEdge[V, E, P]{}
	m.halfEdges.insert(he)
	m.generation++
	return he
}

func (m *Mesh[V, E, P]) newEdge(data E) *Edge[V, E, P] {
	e := &Edge[V, E, P]{Data: data}
	m.edges.insert(e)
	m.generation++
	return e
}

func (m *Mesh[V, E, P]) newPolygon(data P) *Polygon[V, E, P] {
	p := &Polygon[V, E, P]{Data: data}
	m.polygons.insert(p)
	m.generation++
	return p
}

// The delete helpers clear the entity's relations before dropping it so that
// a stale pointer held by a caller cannot reach live entities.

func (m *Mesh[V, E, P]) deleteVertex(v *Vertex[V, E, P]) {
	v.clear()
	m.vertices.erase(v)
	m.generation++
}

func (m *Mesh[V, E, P]) deleteHalfEdge(he *HalfEdge[V, E, P]) {
	he.clear()
	m.halfEdges.erase(he)
	m.generation++
}

func (m *Mesh[V, E, P]) deleteEdge(e *Edge[V, E, P]) {
	e.clear()
	m.edges.erase(e)
	m.generation++
}

func (m *Mesh[V, E, P]) deletePolygon(p *Polygon[V, E, P]) {
	p.clear()
	m.polygons.erase(p)
	m.generation++
}

// Indexer resolves dense indices for one generation of a mesh.
type Indexer[V, E, P any] struct {
	m          *Mesh[V, E, P]
	generation uint64
}

// Snapshot returns an Indexer bound to the current generation. Its lookups
// fail with ErrStaleIndex once the mesh is edited.
func (m *Mesh[V, E, P]) Snapshot() Indexer[V, E, P] {
	return Indexer[V, E, P]{m: m, generation: m.generation}
}

func (ix Indexer[V, E, P]) check() error {
	if ix.m == nil || ix.m.generation != ix.generation {
		return ErrStaleIndex
	}
	return nil
}

// Vertex returns the dense index of v.
func (ix Indexer[V, E, P]) Vertex(v *Vertex[V, E, P]) (int, error) {
	if err := ix.check(); err != nil {
		return -1, err
	}
	return lookup(&ix.m.vertices, v)
}

// HalfEdge returns the dense index of he.
func (ix Indexer[V, E, P]) HalfEdge(he *HalfEdge[V, E, P]) (int, error) {
	if err := ix.check(); err != nil {
		return -1, err
	}
	return lookup(&ix.m.halfEdges, he)
}

// Edge returns the dense index of e.
func (ix Indexer[V, E, P]) Edge(e *Edge[V, E, P]) (int, error) {
	if err := ix.check(); err != nil {
		return -1, err
	}
	return lookup(&ix.m.edges, e)
}

// Polygon returns the dense index of p.
func (ix Indexer[V, E, P]) Polygon(p *Polygon[V, E, P]) (int, error) {
	if err := ix.check(); err != nil {
		return -1, err
	}
	return lookup(&ix.m.polygons, p)
}

func lookup[T storable](s *entitySet[T], x T) (int, error) {
	i, ok := s.index(x)
	if !ok {
		return -1, ErrNotInMesh
	}
	return i, nil
}
