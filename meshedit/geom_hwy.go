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

// BaseBatchCross computes c = a x b for SoA vector sets.
func BaseBatchCross[T hwy.Floats](
	ax, ay, az []T,
	bx, by, bz []T,
	cx, cy, cz []T,
) {
	size := min(len(ax), len(ay), len(az), len(bx), len(by), len(bz), len(cx), len(cy), len(cz))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vAx := hwy.Load(ax[offset:])
			vAy := hwy.Load(ay[offset:])
			vAz := hwy.Load(az[offset:])
			vBx := hwy.Load(bx[offset:])
			vBy := hwy.Load(by[offset:])
			vBz := hwy.Load(bz[offset:])

			hwy.Store(hwy.Sub(hwy.Mul(vAy, vBz), hwy.Mul(vAz, vBy)), cx[offset:])
			hwy.Store(hwy.Sub(hwy.Mul(vAz, vBx), hwy.Mul(vAx, vBz)), cy[offset:])
			hwy.Store(hwy.Sub(hwy.Mul(vAx, vBy), hwy.Mul(vAy, vBx)), cz[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vAx := hwy.MaskLoad(mask, ax[offset:])
			vAy := hwy.MaskLoad(mask, ay[offset:])
			vAz := hwy.MaskLoad(mask, az[offset:])
			vBx := hwy.MaskLoad(mask, bx[offset:])
			vBy := hwy.MaskLoad(mask, by[offset:])
			vBz := hwy.MaskLoad(mask, bz[offset:])

			hwy.MaskStore(mask, hwy.Sub(hwy.Mul(vAy, vBz), hwy.Mul(vAz, vBy)), cx[offset:])
			hwy.MaskStore(mask, hwy.Sub(hwy.Mul(vAz, vBx), hwy.Mul(vAx, vBz)), cy[offset:])
			hwy.MaskStore(mask, hwy.Sub(hwy.Mul(vAx, vBy), hwy.Mul(vAy, vBx)), cz[offset:])
		},
	)
}

// BaseBatchMinMax returns the smallest and largest values in data, or zeros
// for empty input.
func BaseBatchMinMax[T hwy.Floats](data []T) (minVal, maxVal T) {
	if len(data) == 0 {
		return 0, 0
	}

	// Seeding with a real element keeps masked tail lanes neutral.
	vMin := hwy.Set(data[0])
	vMax := hwy.Set(data[0])

	hwy.ProcessWithTail[T](len(data),
		func(offset int) {
			v := hwy.Load(data[offset:])
			vMin = hwy.Min(vMin, v)
			vMax = hwy.Max(vMax, v)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, data[offset:])
			vMin = hwy.Min(vMin, hwy.IfThenElse(mask, v, vMin))
			vMax = hwy.Max(vMax, hwy.IfThenElse(mask, v, vMax))
		},
	)

	return hwy.ReduceMin(vMin), hwy.ReduceMax(vMax)
}
