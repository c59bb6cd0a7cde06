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

package meshedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhenakh/hemesh/hemesh"
)

// grid returns an n by n triangulated unit grid in the z=0 plane with every
// interior vertex lifted to height lift.
func grid(n int, lift float64) ([]Point, [][3]int) {
	var pts []Point
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p := Point{float64(j) / float64(n-1), float64(i) / float64(n-1), 0}
			if i > 0 && j > 0 && i < n-1 && j < n-1 {
				p.Z = lift
			}
			pts = append(pts, p)
		}
	}
	var tris [][3]int
	for i := 0; i+1 < n; i++ {
		for j := 0; j+1 < n; j++ {
			a, b := i*n+j, i*n+j+1
			c, d := a+n, b+n
			tris = append(tris, [3]int{a, b, d}, [3]int{a, d, c})
		}
	}
	return pts, tris
}

func TestMinSurfFlattensGrid(t *testing.T) {
	pts, tris := grid(6, 1)
	s := NewMinSurf(Options{Tolerance: 1e-18, Logger: discardLogger()})
	require.NoError(t, s.Init(pts, tris))
	require.NoError(t, s.Run())
	assert.True(t, s.Converged())
	assert.Greater(t, s.Iterations(), 1)

	got := s.Positions()
	require.Len(t, got, len(pts))
	for i, p := range got {
		assert.InDelta(t, 0, p.Z, 1e-5, "vertex %d", i)
		assert.InDelta(t, pts[i].X, p.X, 1e-9, "vertex %d", i)
		assert.InDelta(t, pts[i].Y, p.Y, 1e-9, "vertex %d", i)
	}
	assert.Equal(t, tris, s.Triangles())
	assert.True(t, s.Mesh().IsValid())
}

func TestMinSurfFan(t *testing.T) {
	pts := []Point{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {0.2, 0.9, 3}}
	tris := [][3]int{{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4}}
	s := NewMinSurf(Options{Logger: discardLogger()})
	require.NoError(t, s.Init(pts, tris))
	require.NoError(t, s.Run())

	assert.True(t, s.Converged())
	assert.Equal(t, 2, s.Iterations())
	center := s.Positions()[4]
	assert.InDelta(t, 0, center.Distance(Point{0.5, 0.5, 0}), 1e-12)
	for i := 0; i < 4; i++ {
		assert.Equal(t, pts[i], s.Positions()[i], "boundary vertex %d moved", i)
	}
}

func TestMinSurfDamped(t *testing.T) {
	pts, tris := grid(4, 2)
	s := NewMinSurf(Options{Weight: 0.5, MaxIterations: 3, Logger: discardLogger()})
	require.NoError(t, s.Init(pts, tris))
	require.NoError(t, s.Run())
	assert.False(t, s.Converged())
	assert.Equal(t, 3, s.Iterations())
	for _, p := range s.Positions() {
		assert.GreaterOrEqual(t, p.Z, 0.0)
		assert.Less(t, p.Z, 2.0)
	}
}

func TestMinSurfInitErrors(t *testing.T) {
	s := NewMinSurf(Options{Logger: discardLogger()})
	assert.ErrorIs(t, s.Run(), ErrEmpty)

	tetra := [][3]int{{0, 1, 2}, {0, 3, 1}, {1, 3, 2}, {2, 3, 0}}
	pts := make([]Point, 4)
	assert.ErrorIs(t, s.Init(pts, tetra), ErrNotTriMesh)
	assert.True(t, s.Mesh().IsEmpty())

	assert.ErrorIs(t, s.Init(pts[:3], [][3]int{{0, 1, 2}, {0, 2, 3}}), ErrPositionCount)
	assert.True(t, s.Mesh().IsEmpty())

	assert.ErrorIs(t, s.Init(pts, [][3]int{{0, 1, 2}, {0, 2, 5}}), hemesh.ErrIndexGap)

	require.NoError(t, s.Init(nil, nil))
	assert.ErrorIs(t, s.Run(), ErrEmpty)
}

func TestMinSurfClear(t *testing.T) {
	pts, tris := grid(3, 1)
	s := NewMinSurf(DefaultOptions())
	require.NoError(t, s.Init(pts, tris))
	assert.Equal(t, 9, s.Mesh().NumVertices())
	s.Clear()
	assert.True(t, s.Mesh().IsEmpty())
	assert.Empty(t, s.Positions())
	assert.Empty(t, s.Triangles())
}
