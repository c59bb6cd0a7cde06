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

// Package meshedit holds geometry processing built on hemesh meshes: welding
// triangle soups into indexed meshes and relaxing meshes toward minimal
// surfaces.
package meshedit

import "math"

// Point is a position in 3D space.
type Point struct {
	X, Y, Z float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Mul returns p scaled by m.
func (p Point) Mul(m float64) Point { return Point{p.X * m, p.Y * m, p.Z * m} }

// Norm2 returns the squared length of p.
func (p Point) Norm2() float64 { return p.X*p.X + p.Y*p.Y + p.Z*p.Z }

// Distance returns the distance between p and q.
func (p Point) Distance(q Point) float64 { return math.Sqrt(p.Sub(q).Norm2()) }

// coords holds points in de-interleaved form for the batch kernels.
type coords struct {
	xs, ys, zs []float64
}

func makeCoords(n int) coords {
	return coords{make([]float64, n), make([]float64, n), make([]float64, n)}
}

func (c coords) len() int { return len(c.xs) }

func (c coords) at(i int) Point { return Point{c.xs[i], c.ys[i], c.zs[i]} }

func (c coords) set(i int, p Point) {
	c.xs[i], c.ys[i], c.zs[i] = p.X, p.Y, p.Z
}

// Centroid returns the mean of points, or the origin for an empty slice.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	c := makeCoords(len(points))
	for i, p := range points {
		c.set(i, p)
	}
	x, y, z := BaseSumCoords(c.xs, c.ys, c.zs)
	return Point{x, y, z}.Mul(1 / float64(len(points)))
}
