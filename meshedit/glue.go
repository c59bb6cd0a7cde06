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
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrIndexRange is returned when a triangle refers past the position list.
	ErrIndexRange = errors.New("meshedit: triangle index out of range")
	// ErrNotTriMesh is returned when a mesh is not an open triangle mesh.
	ErrNotTriMesh = errors.New("meshedit: mesh is not a triangle mesh with a boundary")
	// ErrPositionCount is returned when positions and mesh vertices disagree.
	ErrPositionCount = errors.New("meshedit: position count does not match vertex count")
	// ErrEmpty is returned when running on a mesh that was never loaded.
	ErrEmpty = errors.New("meshedit: no mesh loaded")
)

// Glue welds positions that compare equal into shared vertices. Triangles
// index into positions; the result is a flat index list suitable for
// InitFlat with three sides, over the unique positions in first-use order.
// Unreferenced positions are dropped.
func Glue(positions []Point, triangles [][3]int) (indices []int, unique []Point, err error) {
	return GlueWithLogger(slog.Default(), positions, triangles)
}

// GlueWithLogger is Glue reporting to logger.
func GlueWithLogger(logger *slog.Logger, positions []Point, triangles [][3]int) ([]int, []Point, error) {
	indices := make([]int, 0, 3*len(triangles))
	var unique []Point
	index := make(map[Point]int)

	for i, tri := range triangles {
		for _, k := range tri {
			if k < 0 || k >= len(positions) {
				return nil, nil, fmt.Errorf("triangle %d: index %d: %w", i, k, ErrIndexRange)
			}
			p := positions[k]
			idx, ok := index[p]
			if !ok {
				idx = len(unique)
				index[p] = idx
				unique = append(unique, p)
			}
			indices = append(indices, idx)
		}
	}
	logger.Info("glued positions",
		slog.Int("positions", len(positions)),
		slog.Int("unique", len(unique)),
		slog.Int("triangles", len(triangles)))
	return indices, unique, nil
}
