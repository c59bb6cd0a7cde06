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

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseRelaxStep moves each point a fraction w of the way toward its target
// (SoA layout):
// n = p + w*(a - p)
func BaseRelaxStep[T hwy.Floats](
	w T,
	px, py, pz []T,
	ax, ay, az []T,
	nx, ny, nz []T,
) {
	size := min(len(px), len(py), len(pz), len(ax), len(ay), len(az), len(nx), len(ny), len(nz))
	vW := hwy.Set(w)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vPx := hwy.Load(px[offset:])
			vPy := hwy.Load(py[offset:])
			vPz := hwy.Load(pz[offset:])

			vNx := hwy.FMA(vW, hwy.Sub(hwy.Load(ax[offset:]), vPx), vPx)
			vNy := hwy.FMA(vW, hwy.Sub(hwy.Load(ay[offset:]), vPy), vPy)
			vNz := hwy.FMA(vW, hwy.Sub(hwy.Load(az[offset:]), vPz), vPz)

			hwy.Store(vNx, nx[offset:])
			hwy.Store(vNy, ny[offset:])
			hwy.Store(vNz, nz[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vPx := hwy.MaskLoad(mask, px[offset:])
			vPy := hwy.MaskLoad(mask, py[offset:])
			vPz := hwy.MaskLoad(mask, pz[offset:])

			vNx := hwy.FMA(vW, hwy.Sub(hwy.MaskLoad(mask, ax[offset:]), vPx), vPx)
			vNy := hwy.FMA(vW, hwy.Sub(hwy.MaskLoad(mask, ay[offset:]), vPy), vPy)
			vNz := hwy.FMA(vW, hwy.Sub(hwy.MaskLoad(mask, az[offset:]), vPz), vPz)

			hwy.MaskStore(mask, vNx, nx[offset:])
			hwy.MaskStore(mask, vNy, ny[offset:])
			hwy.MaskStore(mask, vNz, nz[offset:])
		},
	)
}

// BaseMaxSquaredDelta returns the largest squared distance between
// corresponding points of two SoA point sets. Masked-off lanes load zero in
// both sets and contribute nothing.
func BaseMaxSquaredDelta[T hwy.Floats](ax, ay, az, bx, by, bz []T) T {
	size := min(len(ax), len(ay), len(az), len(bx), len(by), len(bz))
	vMax := hwy.Zero[T]()

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			dx := hwy.Sub(hwy.Load(ax[offset:]), hwy.Load(bx[offset:]))
			dy := hwy.Sub(hwy.Load(ay[offset:]), hwy.Load(by[offset:]))
			dz := hwy.Sub(hwy.Load(az[offset:]), hwy.Load(bz[offset:]))

			d2 := hwy.FMA(dz, dz, hwy.FMA(dy, dy, hwy.Mul(dx, dx)))
			vMax = hwy.Max(vMax, d2)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			dx := hwy.Sub(hwy.MaskLoad(mask, ax[offset:]), hwy.MaskLoad(mask, bx[offset:]))
			dy := hwy.Sub(hwy.MaskLoad(mask, ay[offset:]), hwy.MaskLoad(mask, by[offset:]))
			dz := hwy.Sub(hwy.MaskLoad(mask, az[offset:]), hwy.MaskLoad(mask, bz[offset:]))

			d2 := hwy.FMA(dz, dz, hwy.FMA(dy, dy, hwy.Mul(dx, dx)))
			vMax = hwy.Max(vMax, d2)
		},
	)

	return hwy.ReduceMax(vMax)
}

// BaseSumCoords computes the vector sum of a list of coordinates.
// Input is de-interleaved (separate slices for X, Y, Z coordinates).
func BaseSumCoords[T hwy.Floats](xs, ys, zs []T) (sumX, sumY, sumZ T) {
	size := min(len(xs), len(ys), len(zs))

	vSumX := hwy.Zero[T]()
	vSumY := hwy.Zero[T]()
	vSumZ := hwy.Zero[T]()

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vSumX = hwy.Add(vSumX, hwy.Load(xs[offset:]))
			vSumY = hwy.Add(vSumY, hwy.Load(ys[offset:]))
			vSumZ = hwy.Add(vSumZ, hwy.Load(zs[offset:]))
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vSumX = hwy.Add(vSumX, hwy.MaskLoad(mask, xs[offset:]))
			vSumY = hwy.Add(vSumY, hwy.MaskLoad(mask, ys[offset:]))
			vSumZ = hwy.Add(vSumZ, hwy.MaskLoad(mask, zs[offset:]))
		},
	)

	return hwy.ReduceSum(vSumX), hwy.ReduceSum(vSumY), hwy.ReduceSum(vSumZ)
}
