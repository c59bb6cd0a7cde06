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
	"fmt"
	"log/slog"

	"github.com/akhenakh/hemesh/hemesh"
)

// SurfMesh is the mesh type relaxed by MinSurf: vertices carry positions,
// edges and polygons carry nothing.
type SurfMesh = hemesh.Mesh[Point, struct{}, struct{}]

// Options controls MinSurf.
type Options struct {
	// MaxIterations bounds the number of relaxation sweeps.
	MaxIterations int
	// Tolerance stops the iteration once no vertex moves by more than its
	// square root in a sweep.
	Tolerance float64
	// Weight is the relaxation factor in (0, 1]. 1 is plain Jacobi.
	Weight float64
	// Logger receives progress records. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 10000,
		Tolerance:     1e-12,
		Weight:        1,
	}
}

// MinSurf relaxes the interior of an open triangle mesh toward the minimal
// surface spanned by its fixed boundary, using the uniform (umbrella)
// Laplacian: every interior vertex converges to the mean of its neighbours.
type MinSurf struct {
	opts   Options
	logger *slog.Logger
	mesh   *SurfMesh

	iterations int
	converged  bool
}

// NewMinSurf returns an empty MinSurf. Zero fields of opts take their
// DefaultOptions values.
func NewMinSurf(opts Options) *MinSurf {
	def := DefaultOptions()
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = def.MaxIterations
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = def.Tolerance
	}
	if opts.Weight <= 0 || opts.Weight > 1 {
		opts.Weight = def.Weight
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &MinSurf{
		opts:   opts,
		logger: logger,
		mesh:   hemesh.New[Point, struct{}, struct{}](),
	}
}

// Mesh returns the underlying mesh.
func (s *MinSurf) Mesh() *SurfMesh { return s.mesh }

// Iterations returns the number of sweeps done by the last Run.
func (s *MinSurf) Iterations() int { return s.iterations }

// Converged reports whether the last Run met the tolerance.
func (s *MinSurf) Converged() bool { return s.converged }

// Clear drops the loaded mesh.
func (s *MinSurf) Clear() {
	s.mesh.Clear()
	s.iterations = 0
	s.converged = false
}

// Init loads a triangle mesh. Vertex i takes positions[i]. The mesh must be
// a triangle mesh with at least one boundary; otherwise it is cleared and
// an error returned.
func (s *MinSurf) Init(positions []Point, triangles [][3]int) error {
	s.Clear()
	if len(triangles) == 0 {
		return nil
	}

	polys := make([][]int, len(triangles))
	for i, tri := range triangles {
		polys[i] = []int{tri[0], tri[1], tri[2]}
	}
	s.mesh.Reserve(len(positions))
	if err := s.mesh.Init(polys); err != nil {
		return fmt.Errorf("init mesh: %w", err)
	}
	if n := s.mesh.NumVertices(); n != len(positions) {
		s.mesh.Clear()
		return fmt.Errorf("%d positions for %d vertices: %w", len(positions), n, ErrPositionCount)
	}
	for i, v := range s.mesh.Vertices() {
		v.Data = positions[i]
	}
	if !s.mesh.IsTriMesh() || !s.mesh.HaveBoundary() {
		s.mesh.Clear()
		return ErrNotTriMesh
	}

	s.logger.Debug("minsurf loaded",
		slog.Int("vertices", s.mesh.NumVertices()),
		slog.Int("triangles", s.mesh.NumPolygons()),
		slog.Int("boundaries", s.mesh.NumBoundaries()))
	return nil
}

// Run relaxes the interior vertices. Boundary vertices do not move. Running
// out of iterations is not an error; Converged reports it.
func (s *MinSurf) Run() error {
	if s.mesh.IsEmpty() {
		return ErrEmpty
	}

	before := s.Area()
	s.minimize()

	if !s.mesh.IsTriMesh() || !s.mesh.HaveBoundary() {
		return fmt.Errorf("after relaxation: %w", ErrNotTriMesh)
	}
	s.logger.Debug("minsurf area",
		slog.Float64("before", before),
		slog.Float64("after", s.Area()))
	if !s.converged {
		s.logger.Warn("minsurf did not converge",
			slog.Int("iterations", s.iterations),
			slog.Float64("tolerance", s.opts.Tolerance))
	}
	return nil
}

// minimize runs Jacobi sweeps over the interior vertices.
func (s *MinSurf) minimize() {
	s.iterations = 0
	s.converged = false

	verts := s.mesh.Vertices()
	full := makeCoords(len(verts))
	for i, v := range verts {
		full.set(i, v.Data)
	}

	// Interior vertices and their neighbours in compressed rows.
	var interior, offsets, nbrs []int
	for i, v := range verts {
		if v.IsBoundary() {
			continue
		}
		interior = append(interior, i)
		offsets = append(offsets, len(nbrs))
		for _, u := range v.AdjVertices() {
			nbrs = append(nbrs, u.Index())
		}
	}
	offsets = append(offsets, len(nbrs))

	n := len(interior)
	if n == 0 {
		s.converged = true
		return
	}
	cur, avg, next := makeCoords(n), makeCoords(n), makeCoords(n)
	for k, i := range interior {
		cur.set(k, full.at(i))
	}

	w := s.opts.Weight
	for s.iterations < s.opts.MaxIterations {
		s.iterations++
		for k := range interior {
			var sum Point
			row := nbrs[offsets[k]:offsets[k+1]]
			for _, j := range row {
				sum = sum.Add(full.at(j))
			}
			avg.set(k, sum.Mul(1/float64(len(row))))
		}

		BaseRelaxStep(w, cur.xs, cur.ys, cur.zs, avg.xs, avg.ys, avg.zs, next.xs, next.ys, next.zs)
		delta := BaseMaxSquaredDelta(cur.xs, cur.ys, cur.zs, next.xs, next.ys, next.zs)

		for k, i := range interior {
			full.set(i, next.at(k))
		}
		cur, next = next, cur

		if delta < s.opts.Tolerance {
			s.converged = true
			break
		}
	}

	for k, i := range interior {
		verts[i].Data = cur.at(k)
	}
	s.logger.Debug("minsurf relaxed",
		slog.Int("interior", n),
		slog.Int("iterations", s.iterations),
		slog.Bool("converged", s.converged))
}

// Positions returns the vertex positions in dense index order.
func (s *MinSurf) Positions() []Point {
	ps := make([]Point, 0, s.mesh.NumVertices())
	for _, v := range s.mesh.Vertices() {
		ps = append(ps, v.Data)
	}
	return ps
}

// Triangles returns the triangles as dense vertex indices.
func (s *MinSurf) Triangles() [][3]int {
	tris := make([][3]int, 0, s.mesh.NumPolygons())
	for _, idx := range s.mesh.Export() {
		tris = append(tris, [3]int{idx[0], idx[1], idx[2]})
	}
	return tris
}

// Area returns the total triangle area of the current positions.
func (s *MinSurf) Area() float64 {
	a, _ := Area(s.Positions(), s.Triangles())
	return a
}
