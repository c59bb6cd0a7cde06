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

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testMesh = Mesh[int, int, int]

var (
	triangleFaces = [][]int{{0, 1, 2}}
	squareFaces   = [][]int{{0, 1, 2}, {0, 2, 3}}
	tetraFaces    = [][]int{{0, 1, 2}, {0, 3, 1}, {1, 3, 2}, {2, 3, 0}}
	octaFaces     = [][]int{
		{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 1},
		{5, 2, 1}, {5, 3, 2}, {5, 4, 3}, {5, 1, 4},
	}
	// fanFaces is a square split into four triangles around vertex 4.
	fanFaces = [][]int{{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4}}
)

func mustInit(t *testing.T, faces [][]int) *testMesh {
	t.Helper()
	m := New[int, int, int]()
	if err := m.Init(faces); err != nil {
		t.Fatalf("Init(%v) = %v", faces, err)
	}
	checkValid(t, m)
	return m
}

func checkValid(t *testing.T, m *testMesh) {
	t.Helper()
	if msg := m.check(); msg != "" {
		t.Fatalf("mesh is invalid: %s", msg)
	}
}

type counts struct {
	Vertices, HalfEdges, Edges, Polygons int
}

func countsOf(m *testMesh) counts {
	return counts{m.NumVertices(), m.NumHalfEdges(), m.NumEdges(), m.NumPolygons()}
}

// cyclicEqual reports whether b is a rotation of a.
func cyclicEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	for shift := range b {
		match := true
		for i := range a {
			if a[i] != b[(i+shift)%len(b)] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func edgeBetween(t *testing.T, m *testMesh, i, j int) *Edge[int, int, int] {
	t.Helper()
	vs := m.Vertices()
	he := vs[i].HalfEdgeTo(vs[j])
	if he == nil {
		t.Fatalf("no edge between %d and %d", i, j)
	}
	return he.Edge()
}

func TestInitSingleTriangle(t *testing.T) {
	m := mustInit(t, triangleFaces)
	if diff := cmp.Diff(counts{3, 6, 3, 1}, countsOf(m)); diff != "" {
		t.Errorf("counts (-want +got):\n%s", diff)
	}
	if !m.HaveBoundary() {
		t.Error("HaveBoundary() = false, want true")
	}
	b := m.Boundaries()
	if len(b) != 1 || len(b[0]) != 3 {
		t.Fatalf("Boundaries() = %d loops, want one loop of 3", len(b))
	}
	for _, he := range b[0] {
		if !he.IsBoundary() || he.Pair().IsBoundary() {
			t.Errorf("boundary half-edge %d has wrong sides", he.Index())
		}
	}
	if !m.IsTriMesh() {
		t.Error("IsTriMesh() = false")
	}
	if m.HaveIsolatedVertices() {
		t.Error("HaveIsolatedVertices() = true")
	}
}

func TestInitTwoTriangles(t *testing.T) {
	m := mustInit(t, squareFaces)
	if got, want := m.NumEdges(), 5; got != want {
		t.Errorf("NumEdges() = %d, want %d", got, want)
	}
	if !m.IsTriMesh() {
		t.Error("IsTriMesh() = false")
	}
	interior := 0
	for _, e := range m.Edges() {
		if !e.IsBoundary() {
			interior++
			if got := e.AdjPolygons(); len(got) != 2 {
				t.Errorf("interior edge has %d polygons", len(got))
			}
		}
	}
	if interior != 1 {
		t.Errorf("%d interior edges, want 1", interior)
	}
	if got := m.NumBoundaries(); got != 1 {
		t.Errorf("NumBoundaries() = %d, want 1", got)
	}
	if got := len(m.Boundaries()[0]); got != 4 {
		t.Errorf("boundary length = %d, want 4", got)
	}
}

func TestInitTetrahedron(t *testing.T) {
	m := mustInit(t, tetraFaces)
	if diff := cmp.Diff(counts{4, 12, 6, 4}, countsOf(m)); diff != "" {
		t.Errorf("counts (-want +got):\n%s", diff)
	}
	if m.HaveBoundary() {
		t.Error("HaveBoundary() = true, want false")
	}
	if !m.IsValid() {
		t.Error("IsValid() = false")
	}
	for _, v := range m.Vertices() {
		if v.IsBoundary() {
			t.Errorf("vertex %d is on the boundary", v.Index())
		}
		if got := v.Degree(); got != 3 {
			t.Errorf("vertex %d degree = %d, want 3", v.Index(), got)
		}
	}
	for _, he := range m.HalfEdges() {
		if he.Pair().Pair() != he {
			t.Fatalf("pair of pair of %d is not itself", he.Index())
		}
		if got := len(he.Loop()); got != 3 {
			t.Errorf("loop of %d has %d half-edges", he.Index(), got)
		}
	}
}

func TestInitRejects(t *testing.T) {
	tests := []struct {
		name  string
		faces [][]int
		want  error
	}{
		{"index gap", [][]int{{0, 1, 2}, {0, 2, 3}, {2, 1, 5}}, ErrIndexGap},
		{"huge index", [][]int{{0, 1, 1 << 62}}, ErrIndexGap},
		{"index past count", [][]int{{0, 1, 2}, {0, 2, 6}}, ErrIndexGap},
		{"negative index", [][]int{{0, 1, -1}}, ErrIndexRange},
		{"no zero index", [][]int{{1, 2, 3}}, ErrIndexRange},
		{"two sides", [][]int{{0, 1}}, ErrDegeneratePolygon},
		{"repeated vertex", [][]int{{0, 1, 1}}, ErrDegeneratePolygon},
		{"three polygons on an edge", [][]int{{0, 1, 2}, {1, 0, 3}, {0, 1, 4}}, ErrNonManifoldEdge},
		{"flipped neighbour", [][]int{{0, 1, 2}, {0, 1, 3}}, ErrNonManifoldEdge},
		{"bowtie", [][]int{{0, 1, 2}, {0, 3, 4}}, ErrNonManifoldVertex},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := New[int, int, int]()
			if err := m.Init(test.faces); !errors.Is(err, test.want) {
				t.Fatalf("Init(%v) = %v, want %v", test.faces, err, test.want)
			}
			if !m.IsEmpty() || m.NumHalfEdges() != 0 || m.NumPolygons() != 0 {
				t.Errorf("mesh not empty after failed Init: %+v", countsOf(m))
			}
		})
	}
}

func TestInitReplacesContents(t *testing.T) {
	m := mustInit(t, tetraFaces)
	old := m.Vertices()[0]
	if err := m.Init(triangleFaces); err != nil {
		t.Fatal(err)
	}
	if m.HasVertex(old) {
		t.Error("vertex from the previous contents is still in the mesh")
	}
	if old.Index() != -1 || old.HalfEdge() != nil {
		t.Error("vertex from the previous contents was not cleared")
	}
	if diff := cmp.Diff(counts{3, 6, 3, 1}, countsOf(m)); diff != "" {
		t.Errorf("counts (-want +got):\n%s", diff)
	}

	if err := m.Init(nil); err != nil {
		t.Fatalf("Init(nil) = %v", err)
	}
	if !m.IsEmpty() {
		t.Error("Init(nil) left entities behind")
	}
}

func TestInitFlat(t *testing.T) {
	m := New[int, int, int]()
	if err := m.InitFlat([]int{0, 1, 2, 0, 2, 3}, 3); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(squareFaces, m.Export()); diff != "" {
		t.Errorf("Export() (-want +got):\n%s", diff)
	}

	if err := m.InitFlat([]int{0, 1, 2, 3}, 3); !errors.Is(err, ErrFlatLength) {
		t.Errorf("InitFlat with leftover indices = %v, want %v", err, ErrFlatLength)
	}
	if err := m.InitFlat([]int{0, 1, 2, 3}, 2); !errors.Is(err, ErrDegeneratePolygon) {
		t.Errorf("InitFlat with 2 sides = %v, want %v", err, ErrDegeneratePolygon)
	}
	if !m.IsEmpty() {
		t.Error("mesh not empty after failed InitFlat")
	}
}

func TestExportRoundTrip(t *testing.T) {
	for _, faces := range [][][]int{
		triangleFaces,
		squareFaces,
		tetraFaces,
		octaFaces,
		fanFaces,
		{{0, 1, 2, 3}, {3, 2, 4, 5}},
	} {
		m := mustInit(t, faces)
		if diff := cmp.Diff(faces, m.Export()); diff != "" {
			t.Errorf("Export() after Init(%v) (-want +got):\n%s", faces, diff)
		}
	}
}

func TestIndexAfterErase(t *testing.T) {
	m := mustInit(t, fanFaces)
	last := m.Polygons()[3]
	if err := m.RemovePolygon(m.Polygons()[1]); err != nil {
		t.Fatal(err)
	}
	if got := last.Index(); got != 1 {
		t.Errorf("last polygon moved to %d, want 1", got)
	}
	for i, p := range m.Polygons() {
		if p.Index() != i {
			t.Errorf("polygon at %d reports index %d", i, p.Index())
		}
	}
	checkValid(t, m)
}

func TestSnapshot(t *testing.T) {
	m := mustInit(t, squareFaces)
	ix := m.Snapshot()
	v := m.Vertices()[2]
	if got, err := ix.Vertex(v); err != nil || got != 2 {
		t.Errorf("Vertex() = %d, %v, want 2, nil", got, err)
	}
	e := m.Edges()[0]
	if got, err := ix.Edge(e); err != nil || got != 0 {
		t.Errorf("Edge() = %d, %v, want 0, nil", got, err)
	}

	other := mustInit(t, triangleFaces)
	if _, err := ix.Polygon(other.Polygons()[0]); !errors.Is(err, ErrNotInMesh) {
		t.Errorf("Polygon(foreign) = %v, want %v", err, ErrNotInMesh)
	}

	m.AddVertex(7)
	if _, err := ix.Vertex(v); !errors.Is(err, ErrStaleIndex) {
		t.Errorf("Vertex() after edit = %v, want %v", err, ErrStaleIndex)
	}
	if _, err := m.Snapshot().Vertex(v); err != nil {
		t.Errorf("fresh snapshot: %v", err)
	}

	var zero Indexer[int, int, int]
	if _, err := zero.HalfEdge(nil); !errors.Is(err, ErrStaleIndex) {
		t.Errorf("zero Indexer = %v, want %v", err, ErrStaleIndex)
	}
}

func TestClearAndReserve(t *testing.T) {
	m := mustInit(t, octaFaces)
	gen := m.Generation()
	he := m.HalfEdges()[0]
	m.Clear()
	if !m.IsEmpty() || m.NumEdges() != 0 || m.NumHalfEdges() != 0 || m.NumPolygons() != 0 {
		t.Errorf("Clear left %+v", countsOf(m))
	}
	if m.Generation() == gen {
		t.Error("Clear did not change the generation")
	}
	if he.Next() != nil || he.Pair() != nil || he.Origin() != nil {
		t.Error("Clear left relations on a half-edge")
	}

	m.Reserve(100)
	if !m.IsEmpty() {
		t.Error("Reserve added entities")
	}
	if cap(m.vertices.items) < 100 {
		t.Errorf("vertex capacity = %d, want >= 100", cap(m.vertices.items))
	}
	checkValid(t, m)
}

func TestPolygonAndVertexQueries(t *testing.T) {
	m := mustInit(t, fanFaces)
	center := m.Vertices()[4]
	if center.IsBoundary() {
		t.Error("center vertex is on the boundary")
	}
	if got := center.Degree(); got != 4 {
		t.Errorf("center degree = %d, want 4", got)
	}
	if got := len(center.AdjPolygons()); got != 4 {
		t.Errorf("center has %d polygons, want 4", got)
	}
	var adj []int
	for _, u := range center.AdjVertices() {
		adj = append(adj, u.Index())
	}
	if !cyclicEqual([]int{0, 1, 2, 3}, adj) && !cyclicEqual([]int{3, 2, 1, 0}, adj) {
		t.Errorf("center neighbours = %v, want a rotation of 0..3", adj)
	}

	corner := m.Vertices()[0]
	if !corner.IsBoundary() {
		t.Error("corner vertex is not on the boundary")
	}
	p := m.Polygons()[0]
	if got := p.Degree(); got != 3 {
		t.Errorf("polygon degree = %d", got)
	}
	if got := len(p.AdjPolygons()); got != 2 {
		t.Errorf("polygon has %d neighbours, want 2", got)
	}
	if got := p.HalfEdge().NextAt(center); got == nil || got.Origin() != center {
		t.Error("NextAt(center) did not find the corner")
	}
	if got := p.HalfEdge().NextAt(m.Vertices()[2]); got != nil {
		t.Error("NextAt found a vertex that is not on the polygon")
	}
}
