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

//go:build amd64 && goexperiment.simd

package mafs

import "simd/archsimd"

// SIMD kernels for the fixed-lane types. Dvec2 rides a 128-bit register,
// Dvec4 and the Dmat4 columns a 256-bit register, Fvec4 a 128-bit register.
// Each kernel loads its operands once, stays in registers, and stores the
// result once. The double-precision 256-bit paths require AVX2 and FMA on
// the executing CPU; that is a deployment precondition, not a runtime check.

// ---------------------------------------------------------------- Dvec2

func dvec2Add(a, b Dvec2) (out Dvec2) {
	va := archsimd.LoadFloat64x2Slice(a[:])
	vb := archsimd.LoadFloat64x2Slice(b[:])
	va.Add(vb).StoreSlice(out[:])
	return
}

func dvec2Sub(a, b Dvec2) (out Dvec2) {
	va := archsimd.LoadFloat64x2Slice(a[:])
	vb := archsimd.LoadFloat64x2Slice(b[:])
	va.Sub(vb).StoreSlice(out[:])
	return
}

func dvec2Mul(a, b Dvec2) (out Dvec2) {
	va := archsimd.LoadFloat64x2Slice(a[:])
	vb := archsimd.LoadFloat64x2Slice(b[:])
	va.Mul(vb).StoreSlice(out[:])
	return
}

func dvec2Div(a, b Dvec2) (out Dvec2) {
	va := archsimd.LoadFloat64x2Slice(a[:])
	vb := archsimd.LoadFloat64x2Slice(b[:])
	va.Div(vb).StoreSlice(out[:])
	return
}

func dvec2Min(a, b Dvec2) (out Dvec2) {
	va := archsimd.LoadFloat64x2Slice(a[:])
	vb := archsimd.LoadFloat64x2Slice(b[:])
	va.Min(vb).StoreSlice(out[:])
	return
}

func dvec2Max(a, b Dvec2) (out Dvec2) {
	va := archsimd.LoadFloat64x2Slice(a[:])
	vb := archsimd.LoadFloat64x2Slice(b[:])
	va.Max(vb).StoreSlice(out[:])
	return
}

func dvec2Dot(a, b Dvec2) float64 {
	va := archsimd.LoadFloat64x2Slice(a[:])
	vb := archsimd.LoadFloat64x2Slice(b[:])
	var t [2]float64
	va.Mul(vb).StoreSlice(t[:])
	return t[0] + t[1]
}

func dvec2ReduceMin(a Dvec2) float64 {
	v := archsimd.LoadFloat64x2Slice(a[:])
	e0 := v.GetElem(0)
	e1 := v.GetElem(1)
	if e1 < e0 {
		return e1
	}
	return e0
}

func dvec2ReduceMax(a Dvec2) float64 {
	v := archsimd.LoadFloat64x2Slice(a[:])
	e0 := v.GetElem(0)
	e1 := v.GetElem(1)
	if e1 > e0 {
		return e1
	}
	return e0
}

// ---------------------------------------------------------------- Dvec4

func dvec4Add(a, b Dvec4) (out Dvec4) {
	va := archsimd.LoadFloat64x4Slice(a[:])
	vb := archsimd.LoadFloat64x4Slice(b[:])
	va.Add(vb).StoreSlice(out[:])
	return
}

func dvec4Sub(a, b Dvec4) (out Dvec4) {
	va := archsimd.LoadFloat64x4Slice(a[:])
	vb := archsimd.LoadFloat64x4Slice(b[:])
	va.Sub(vb).StoreSlice(out[:])
	return
}

func dvec4Mul(a, b Dvec4) (out Dvec4) {
	va := archsimd.LoadFloat64x4Slice(a[:])
	vb := archsimd.LoadFloat64x4Slice(b[:])
	va.Mul(vb).StoreSlice(out[:])
	return
}

func dvec4Div(a, b Dvec4) (out Dvec4) {
	va := archsimd.LoadFloat64x4Slice(a[:])
	vb := archsimd.LoadFloat64x4Slice(b[:])
	va.Div(vb).StoreSlice(out[:])
	return
}

func dvec4Min(a, b Dvec4) (out Dvec4) {
	va := archsimd.LoadFloat64x4Slice(a[:])
	vb := archsimd.LoadFloat64x4Slice(b[:])
	va.Min(vb).StoreSlice(out[:])
	return
}

func dvec4Max(a, b Dvec4) (out Dvec4) {
	va := archsimd.LoadFloat64x4Slice(a[:])
	vb := archsimd.LoadFloat64x4Slice(b[:])
	va.Max(vb).StoreSlice(out[:])
	return
}

func dvec4Dot(a, b Dvec4) float64 {
	va := archsimd.LoadFloat64x4Slice(a[:])
	vb := archsimd.LoadFloat64x4Slice(b[:])
	var t [4]float64
	va.Mul(vb).StoreSlice(t[:])
	return t[0] + t[1] + t[2] + t[3]
}

// dvec4Cross multiplies against yzx-rotated copies of the operands and
// rotates the difference back, the classic two-shuffle cross product. The
// w lanes ride along and cancel to a[3]*b[3] - b[3]*a[3].
func dvec4Cross(a, b Dvec4) (out Dvec4) {
	ap := [4]float64{a[1], a[2], a[0], a[3]}
	bp := [4]float64{b[1], b[2], b[0], b[3]}
	va := archsimd.LoadFloat64x4Slice(a[:])
	vb := archsimd.LoadFloat64x4Slice(b[:])
	vap := archsimd.LoadFloat64x4Slice(ap[:])
	vbp := archsimd.LoadFloat64x4Slice(bp[:])
	var t [4]float64
	va.Mul(vbp).Sub(vb.Mul(vap)).StoreSlice(t[:])
	out = Dvec4{t[1], t[2], t[0], t[3]}
	return
}

func dvec4ReduceMin(a Dvec4) float64 {
	v := archsimd.LoadFloat64x4Slice(a[:])
	// Reduce 4 -> 2 -> 1
	m2 := v.GetLo().Min(v.GetHi())
	e0 := m2.GetElem(0)
	e1 := m2.GetElem(1)
	if e1 < e0 {
		return e1
	}
	return e0
}

func dvec4ReduceMax(a Dvec4) float64 {
	v := archsimd.LoadFloat64x4Slice(a[:])
	// Reduce 4 -> 2 -> 1
	m2 := v.GetLo().Max(v.GetHi())
	e0 := m2.GetElem(0)
	e1 := m2.GetElem(1)
	if e1 > e0 {
		return e1
	}
	return e0
}

// ---------------------------------------------------------------- Dmat4

func dmat4MulVec(m Dmat4, v Dvec4) (out Dvec4) {
	acc := archsimd.LoadFloat64x4Slice(m[0][:]).Mul(archsimd.BroadcastFloat64x4(v[0]))
	acc = archsimd.LoadFloat64x4Slice(m[1][:]).MulAdd(archsimd.BroadcastFloat64x4(v[1]), acc)
	acc = archsimd.LoadFloat64x4Slice(m[2][:]).MulAdd(archsimd.BroadcastFloat64x4(v[2]), acc)
	acc = archsimd.LoadFloat64x4Slice(m[3][:]).MulAdd(archsimd.BroadcastFloat64x4(v[3]), acc)
	acc.StoreSlice(out[:])
	return
}

func dmat4Mul(a, b Dmat4) (out Dmat4) {
	c0 := archsimd.LoadFloat64x4Slice(a[0][:])
	c1 := archsimd.LoadFloat64x4Slice(a[1][:])
	c2 := archsimd.LoadFloat64x4Slice(a[2][:])
	c3 := archsimd.LoadFloat64x4Slice(a[3][:])
	for j := 0; j < 4; j++ {
		acc := c0.Mul(archsimd.BroadcastFloat64x4(b[j][0]))
		acc = c1.MulAdd(archsimd.BroadcastFloat64x4(b[j][1]), acc)
		acc = c2.MulAdd(archsimd.BroadcastFloat64x4(b[j][2]), acc)
		acc = c3.MulAdd(archsimd.BroadcastFloat64x4(b[j][3]), acc)
		acc.StoreSlice(out[j][:])
	}
	return
}

// ---------------------------------------------------------------- Fvec4

func fvec4Add(a, b Fvec4) (out Fvec4) {
	va := archsimd.LoadFloat32x4Slice(a[:])
	vb := archsimd.LoadFloat32x4Slice(b[:])
	va.Add(vb).StoreSlice(out[:])
	return
}

func fvec4Sub(a, b Fvec4) (out Fvec4) {
	va := archsimd.LoadFloat32x4Slice(a[:])
	vb := archsimd.LoadFloat32x4Slice(b[:])
	va.Sub(vb).StoreSlice(out[:])
	return
}

func fvec4Mul(a, b Fvec4) (out Fvec4) {
	va := archsimd.LoadFloat32x4Slice(a[:])
	vb := archsimd.LoadFloat32x4Slice(b[:])
	va.Mul(vb).StoreSlice(out[:])
	return
}

func fvec4Div(a, b Fvec4) (out Fvec4) {
	va := archsimd.LoadFloat32x4Slice(a[:])
	vb := archsimd.LoadFloat32x4Slice(b[:])
	va.Div(vb).StoreSlice(out[:])
	return
}

func fvec4Min(a, b Fvec4) (out Fvec4) {
	va := archsimd.LoadFloat32x4Slice(a[:])
	vb := archsimd.LoadFloat32x4Slice(b[:])
	va.Min(vb).StoreSlice(out[:])
	return
}

func fvec4Max(a, b Fvec4) (out Fvec4) {
	va := archsimd.LoadFloat32x4Slice(a[:])
	vb := archsimd.LoadFloat32x4Slice(b[:])
	va.Max(vb).StoreSlice(out[:])
	return
}

func fvec4Dot(a, b Fvec4) float32 {
	va := archsimd.LoadFloat32x4Slice(a[:])
	vb := archsimd.LoadFloat32x4Slice(b[:])
	var t [4]float32
	va.Mul(vb).StoreSlice(t[:])
	return t[0] + t[1] + t[2] + t[3]
}

func fvec4Cross(a, b Fvec4) (out Fvec4) {
	ap := [4]float32{a[1], a[2], a[0], a[3]}
	bp := [4]float32{b[1], b[2], b[0], b[3]}
	va := archsimd.LoadFloat32x4Slice(a[:])
	vb := archsimd.LoadFloat32x4Slice(b[:])
	vap := archsimd.LoadFloat32x4Slice(ap[:])
	vbp := archsimd.LoadFloat32x4Slice(bp[:])
	var t [4]float32
	va.Mul(vbp).Sub(vb.Mul(vap)).StoreSlice(t[:])
	out = Fvec4{t[1], t[2], t[0], t[3]}
	return
}

// ---------------------------------------------------------------- Fmat4

func fmat4MulVec(m Fmat4, v Fvec4) (out Fvec4) {
	acc := archsimd.LoadFloat32x4Slice(m[0][:]).Mul(archsimd.BroadcastFloat32x4(v[0]))
	acc = archsimd.LoadFloat32x4Slice(m[1][:]).MulAdd(archsimd.BroadcastFloat32x4(v[1]), acc)
	acc = archsimd.LoadFloat32x4Slice(m[2][:]).MulAdd(archsimd.BroadcastFloat32x4(v[2]), acc)
	acc = archsimd.LoadFloat32x4Slice(m[3][:]).MulAdd(archsimd.BroadcastFloat32x4(v[3]), acc)
	acc.StoreSlice(out[:])
	return
}

func fmat4Mul(a, b Fmat4) (out Fmat4) {
	c0 := archsimd.LoadFloat32x4Slice(a[0][:])
	c1 := archsimd.LoadFloat32x4Slice(a[1][:])
	c2 := archsimd.LoadFloat32x4Slice(a[2][:])
	c3 := archsimd.LoadFloat32x4Slice(a[3][:])
	for j := 0; j < 4; j++ {
		acc := c0.Mul(archsimd.BroadcastFloat32x4(b[j][0]))
		acc = c1.MulAdd(archsimd.BroadcastFloat32x4(b[j][1]), acc)
		acc = c2.MulAdd(archsimd.BroadcastFloat32x4(b[j][2]), acc)
		acc = c3.MulAdd(archsimd.BroadcastFloat32x4(b[j][3]), acc)
		acc.StoreSlice(out[j][:])
	}
	return
}
