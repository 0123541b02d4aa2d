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
	"math/rand"
	"testing"
)

// 7 forces a masked tail on every vector width.
var batchSizes = []int{0, 1, 7, 64, 100}

func TestTransformPointsMatchesMulVec(t *testing.T) {
	m := Dmat4{
		{0, 1, 0, 0},
		{-1, 0, 0, 0},
		{0, 0, 1, 0},
		{1, 2, 3, 1},
	}
	rng := rand.New(rand.NewSource(30))

	for _, n := range batchSizes {
		srcX := make([]float64, n)
		srcY := make([]float64, n)
		srcZ := make([]float64, n)
		for i := 0; i < n; i++ {
			srcX[i] = rng.NormFloat64()
			srcY[i] = rng.NormFloat64()
			srcZ[i] = rng.NormFloat64()
		}
		dstX := make([]float64, n)
		dstY := make([]float64, n)
		dstZ := make([]float64, n)

		m.TransformPoints(srcX, srcY, srcZ, dstX, dstY, dstZ)

		for i := 0; i < n; i++ {
			want := m.MulVec(DPoint(srcX[i], srcY[i], srcZ[i]))
			if !close64(dstX[i], want[0]) || !close64(dstY[i], want[1]) || !close64(dstZ[i], want[2]) {
				t.Fatalf("n=%d point %d: got (%v, %v, %v), want %v",
					n, i, dstX[i], dstY[i], dstZ[i], want)
			}
		}
	}
}

func TestTransformDirectionsIgnoresTranslation(t *testing.T) {
	m := Dmat4{
		{0, 1, 0, 0},
		{-1, 0, 0, 0},
		{0, 0, 1, 0},
		{100, 200, 300, 1},
	}
	srcX := []float64{1, 0, 0.5}
	srcY := []float64{0, 1, -0.5}
	srcZ := []float64{0, 0, 2}
	dstX := make([]float64, 3)
	dstY := make([]float64, 3)
	dstZ := make([]float64, 3)

	m.TransformDirections(srcX, srcY, srcZ, dstX, dstY, dstZ)

	for i := range srcX {
		want := m.MulVec(DDirection(srcX[i], srcY[i], srcZ[i]))
		if !close64(dstX[i], want[0]) || !close64(dstY[i], want[1]) || !close64(dstZ[i], want[2]) {
			t.Fatalf("direction %d: got (%v, %v, %v), want %v",
				i, dstX[i], dstY[i], dstZ[i], want)
		}
	}
}

func TestTransformPointsFloat32(t *testing.T) {
	m := Fmat4{
		{0, 1, 0, 0},
		{-1, 0, 0, 0},
		{0, 0, 1, 0},
		{1, 2, 3, 1},
	}
	rng := rand.New(rand.NewSource(31))

	for _, n := range batchSizes {
		srcX := make([]float32, n)
		srcY := make([]float32, n)
		srcZ := make([]float32, n)
		for i := 0; i < n; i++ {
			srcX[i] = float32(rng.NormFloat64())
			srcY[i] = float32(rng.NormFloat64())
			srcZ[i] = float32(rng.NormFloat64())
		}
		dstX := make([]float32, n)
		dstY := make([]float32, n)
		dstZ := make([]float32, n)

		m.TransformPoints(srcX, srcY, srcZ, dstX, dstY, dstZ)

		for i := 0; i < n; i++ {
			want := m.MulVec(FPoint(srcX[i], srcY[i], srcZ[i]))
			if !close32(dstX[i], want[0]) || !close32(dstY[i], want[1]) || !close32(dstZ[i], want[2]) {
				t.Fatalf("n=%d point %d: got (%v, %v, %v), want %v",
					n, i, dstX[i], dstY[i], dstZ[i], want)
			}
		}
	}
}
