// Copyright 2026 mafs Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mafs

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Batch application of a 4x4 transform to structure-of-arrays coordinate
// data. One vector or matrix at a time, the fixed-lane kernels win; for
// thousands of points the matrix should stay broadcast in registers while
// the point stream flows through full-width vectors, which is what the
// highway transforms below do.

// TransformPoints applies m to a set of 3D points in SoA layout, treating
// every point as homogeneous with w = 1 (the translation column applies).
// All slices must have the same length; src and dst may alias.
func (m Dmat4) TransformPoints(srcX, srcY, srcZ, dstX, dstY, dstZ []float64) {
	affineMulBatch(
		m[0][0], m[1][0], m[2][0], m[3][0],
		m[0][1], m[1][1], m[2][1], m[3][1],
		m[0][2], m[1][2], m[2][2], m[3][2],
		srcX, srcY, srcZ, dstX, dstY, dstZ,
	)
}

// TransformDirections applies m to a set of 3D directions in SoA layout,
// treating every direction as homogeneous with w = 0 (no translation).
func (m Dmat4) TransformDirections(srcX, srcY, srcZ, dstX, dstY, dstZ []float64) {
	affineMulBatch(
		m[0][0], m[1][0], m[2][0], 0,
		m[0][1], m[1][1], m[2][1], 0,
		m[0][2], m[1][2], m[2][2], 0,
		srcX, srcY, srcZ, dstX, dstY, dstZ,
	)
}

// TransformPoints applies m to a set of 3D points in SoA layout with w = 1.
func (m Fmat4) TransformPoints(srcX, srcY, srcZ, dstX, dstY, dstZ []float32) {
	affineMulBatch(
		m[0][0], m[1][0], m[2][0], m[3][0],
		m[0][1], m[1][1], m[2][1], m[3][1],
		m[0][2], m[1][2], m[2][2], m[3][2],
		srcX, srcY, srcZ, dstX, dstY, dstZ,
	)
}

// TransformDirections applies m to a set of 3D directions in SoA layout
// with w = 0.
func (m Fmat4) TransformDirections(srcX, srcY, srcZ, dstX, dstY, dstZ []float32) {
	affineMulBatch(
		m[0][0], m[1][0], m[2][0], 0,
		m[0][1], m[1][1], m[2][1], 0,
		m[0][2], m[1][2], m[2][2], 0,
		srcX, srcY, srcZ, dstX, dstY, dstZ,
	)
}

// affineMulBatch computes DST = A * SRC for the affine 3x4 matrix A given
// row-major. The bottom row is implicitly [0,0,0,1] and never evaluated.
func affineMulBatch[T hwy.Floats](
	m00, m01, m02, m03 T,
	m10, m11, m12, m13 T,
	m20, m21, m22, m23 T,
	srcX, srcY, srcZ []T,
	dstX, dstY, dstZ []T,
) {
	size := min(len(srcX), len(srcY), len(srcZ), len(dstX), len(dstY), len(dstZ))

	// Broadcast the matrix once, outside the loop.
	vM00 := hwy.Set(m00)
	vM01 := hwy.Set(m01)
	vM02 := hwy.Set(m02)
	vM03 := hwy.Set(m03)
	vM10 := hwy.Set(m10)
	vM11 := hwy.Set(m11)
	vM12 := hwy.Set(m12)
	vM13 := hwy.Set(m13)
	vM20 := hwy.Set(m20)
	vM21 := hwy.Set(m21)
	vM22 := hwy.Set(m22)
	vM23 := hwy.Set(m23)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			x := hwy.Load(srcX[offset:])
			y := hwy.Load(srcY[offset:])
			z := hwy.Load(srcZ[offset:])

			resX := hwy.FMA(x, vM00, vM03)
			resX = hwy.FMA(y, vM01, resX)
			resX = hwy.FMA(z, vM02, resX)

			resY := hwy.FMA(x, vM10, vM13)
			resY = hwy.FMA(y, vM11, resY)
			resY = hwy.FMA(z, vM12, resY)

			resZ := hwy.FMA(x, vM20, vM23)
			resZ = hwy.FMA(y, vM21, resZ)
			resZ = hwy.FMA(z, vM22, resZ)

			hwy.Store(resX, dstX[offset:])
			hwy.Store(resY, dstY[offset:])
			hwy.Store(resZ, dstZ[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			x := hwy.MaskLoad(mask, srcX[offset:])
			y := hwy.MaskLoad(mask, srcY[offset:])
			z := hwy.MaskLoad(mask, srcZ[offset:])

			resX := hwy.FMA(x, vM00, vM03)
			resX = hwy.FMA(y, vM01, resX)
			resX = hwy.FMA(z, vM02, resX)

			resY := hwy.FMA(x, vM10, vM13)
			resY = hwy.FMA(y, vM11, resY)
			resY = hwy.FMA(z, vM12, resY)

			resZ := hwy.FMA(x, vM20, vM23)
			resZ = hwy.FMA(y, vM21, resZ)
			resZ = hwy.FMA(z, vM22, resZ)

			hwy.MaskStore(mask, resX, dstX[offset:])
			hwy.MaskStore(mask, resY, dstY[offset:])
			hwy.MaskStore(mask, resZ, dstZ[offset:])
		},
	)
}
