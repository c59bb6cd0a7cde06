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
	"math"
)

// Bounds returns the corners of the axis-aligned box around points. Both
// are the origin for an empty slice.
func Bounds(points []Point) (lo, hi Point) {
	c := makeCoords(len(points))
	for i, p := range points {
		c.set(i, p)
	}
	lo.X, hi.X = BaseBatchMinMax(c.xs)
	lo.Y, hi.Y = BaseBatchMinMax(c.ys)
	lo.Z, hi.Z = BaseBatchMinMax(c.zs)
	return lo, hi
}

// Area returns the total area of the triangles over positions.
func Area(positions []Point, triangles [][3]int) (float64, error) {
	n := len(triangles)
	ab, ac, cr := makeCoords(n), makeCoords(n), makeCoords(n)
	for i, tri := range triangles {
		for _, k := range tri {
			if k < 0 || k >= len(positions) {
				return 0, fmt.Errorf("triangle %d: index %d: %w", i, k, ErrIndexRange)
			}
		}
		a := positions[tri[0]]
		ab.set(i, positions[tri[1]].Sub(a))
		ac.set(i, positions[tri[2]].Sub(a))
	}
	BaseBatchCross(ab.xs, ab.ys, ab.zs, ac.xs, ac.ys, ac.zs, cr.xs, cr.ys, cr.zs)

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Sqrt(cr.at(i).Norm2())
	}
	return sum / 2, nil
}
