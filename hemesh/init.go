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
	"fmt"
)

// Init replaces the contents of m with the polygons described by lists of
// vertex indices. Indices must cover 0..max without gaps; vertex i of the
// result has dense index i. Each list gives one polygon's vertices in loop
// order and must have at least three distinct entries.
//
// On failure the mesh is left empty.
func (m *Mesh[V, E, P]) Init(polygons [][]int) error {
	m.Clear()
	if len(polygons) == 0 {
		return nil
	}

	n, err := checkPolygons(polygons)
	if err != nil {
		return err
	}

	m.Reserve(n)
	var zeroV V
	for i := 0; i < n; i++ {
		m.newVertex(zeroV)
	}

	if err := m.buildPolygons(polygons); err != nil {
		m.Clear()
		return err
	}

	// Two free half-edges leaving one vertex means several boundary fans
	// meet there.
	for i, v := range m.vertices.slice() {
		if len(v.freeOutgoing()) > 1 {
			m.Clear()
			return fmt.Errorf("vertex %d: %w", i, ErrNonManifoldVertex)
		}
	}
	return nil
}

// InitFlat is Init for polygons that all have the same number of sides,
// given as one flat list of indices.
func (m *Mesh[V, E, P]) InitFlat(indices []int, sides int) error {
	if sides < 3 {
		m.Clear()
		return ErrDegeneratePolygon
	}
	if len(indices)%sides != 0 {
		m.Clear()
		return fmt.Errorf("%d indices, %d sides: %w", len(indices), sides, ErrFlatLength)
	}
	polygons := make([][]int, 0, len(indices)/sides)
	for i := 0; i < len(indices); i += sides {
		polygons = append(polygons, indices[i:i+sides])
	}
	return m.Init(polygons)
}

// checkPolygons validates the index lists and returns the vertex count.
func checkPolygons(polygons [][]int) (int, error) {
	maxIdx := -1
	minIdx := -1
	total := 0
	for i, poly := range polygons {
		total += len(poly)
		if len(poly) < 3 {
			return 0, fmt.Errorf("polygon %d: %w", i, ErrDegeneratePolygon)
		}
		for j, idx := range poly {
			if idx < 0 {
				return 0, fmt.Errorf("polygon %d: index %d: %w", i, idx, ErrIndexRange)
			}
			for _, other := range poly[:j] {
				if other == idx {
					return 0, fmt.Errorf("polygon %d: %w", i, ErrDegeneratePolygon)
				}
			}
			if idx > maxIdx {
				maxIdx = idx
			}
			if minIdx < 0 || idx < minIdx {
				minIdx = idx
			}
		}
	}
	if minIdx != 0 {
		return 0, fmt.Errorf("minimum index %d: %w", minIdx, ErrIndexRange)
	}

	// Fewer index slots than maxIdx+1 cannot cover 0..maxIdx.
	if maxIdx >= total {
		return 0, fmt.Errorf("index %d exceeds %d indices: %w", maxIdx, total, ErrIndexGap)
	}
	used := make([]bool, maxIdx+1)
	for _, poly := range polygons {
		for _, idx := range poly {
			used[idx] = true
		}
	}
	for i, ok := range used {
		if !ok {
			return 0, fmt.Errorf("index %d unused: %w", i, ErrIndexGap)
		}
	}
	return maxIdx + 1, nil
}

func (m *Mesh[V, E, P]) buildPolygons(polygons [][]int) error {
	var (
		zeroE E
		zeroP P
	)
	verts := m.vertices.slice()
	for i, poly := range polygons {
		loop := make([]*HalfEdge[V, E, P], len(poly))
		for j := range poly {
			u := verts[poly[j]]
			w := verts[poly[(j+1)%len(poly)]]
			he := u.HalfEdgeTo(w)
			if he == nil {
				e, err := m.addEdge(u, w, zeroE)
				if err != nil {
					return fmt.Errorf("polygon %d: %w", i, err)
				}
				he = e.halfEdge
			}
			loop[j] = he
		}
		if _, err := m.addPolygon(loop, zeroP); err != nil {
			if errors.Is(err, ErrHalfEdgeNotFree) {
				err = ErrNonManifoldEdge
			}
			return fmt.Errorf("polygon %d: %w", i, err)
		}
	}
	return nil
}

// Export returns one list of dense vertex indices per polygon, in polygon
// index order, each starting at the origin of the polygon's HalfEdge.
func (m *Mesh[V, E, P]) Export() [][]int {
	out := make([][]int, 0, m.polygons.size())
	for _, p := range m.polygons.slice() {
		out = append(out, m.Indices(p))
	}
	return out
}
