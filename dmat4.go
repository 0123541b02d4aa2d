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

// Dmat4 is a 4x4 double-precision matrix stored as four Dvec4 columns.
// Element (row r, col c) is m[c][r]. The layout is identical to
// [4]Dvec4, so a Dmat4 literal lists columns.
type Dmat4 [4]Dvec4

// Dmat4Identity returns the identity matrix.
func Dmat4Identity() Dmat4 {
	return Dmat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Dmat4Splat returns a matrix with every element set to s.
func Dmat4Splat(s float64) Dmat4 {
	c := DV4Splat(s)
	return Dmat4{c, c, c, c}
}

// Dmat4FromRows builds a matrix from its four rows.
func Dmat4FromRows(r0, r1, r2, r3 Dvec4) Dmat4 {
	return Dmat4{
		{r0[0], r1[0], r2[0], r3[0]},
		{r0[1], r1[1], r2[1], r3[1]},
		{r0[2], r1[2], r2[2], r3[2]},
		{r0[3], r1[3], r2[3], r3[3]},
	}
}

// Add returns the componentwise sum m + rhs, column by column.
func (m Dmat4) Add(rhs Dmat4) Dmat4 {
	return Dmat4{
		m[0].Add(rhs[0]),
		m[1].Add(rhs[1]),
		m[2].Add(rhs[2]),
		m[3].Add(rhs[3]),
	}
}

// Sub returns the componentwise difference m - rhs, column by column.
func (m Dmat4) Sub(rhs Dmat4) Dmat4 {
	return Dmat4{
		m[0].Sub(rhs[0]),
		m[1].Sub(rhs[1]),
		m[2].Sub(rhs[2]),
		m[3].Sub(rhs[3]),
	}
}

// Neg returns 0 - m.
func (m Dmat4) Neg() Dmat4 {
	return Dmat4{m[0].Neg(), m[1].Neg(), m[2].Neg(), m[3].Neg()}
}

// MulVec returns m * v, accumulated as the sum over k of column[k]*v[k]
// with fused multiply-adds. The columns are combined directly rather than
// taking per-row dot products, since they are already register-resident.
func (m Dmat4) MulVec(v Dvec4) Dvec4 {
	return dmat4MulVec(m, v)
}

// Mul returns the matrix product m * rhs. Result column j is the sum over
// k of m.column[k] * rhs[j][k], each term a broadcast multiply folded into
// an FMA chain, so the left matrix is never materialized row-major.
func (m Dmat4) Mul(rhs Dmat4) Dmat4 {
	return dmat4Mul(m, rhs)
}

// Transpose returns the transposed matrix: out[j][r] == m[r][j].
func (m Dmat4) Transpose() Dmat4 {
	var out Dmat4
	for c := 0; c < 4; c++ {
		out[c] = Dvec4{m[0][c], m[1][c], m[2][c], m[3][c]}
	}
	return out
}

// InvertSE3 inverts a rigid transform: for m = [R | t; 0 0 0 1] with
// orthonormal R, the inverse is [Rᵀ | -Rᵀ·t; 0 0 0 1]. This is a fixed
// handful of vector ops instead of a general elimination.
//
// The caller must guarantee m really is SE(3). On scaled, skewed, or
// otherwise non-rigid input the result is numerically well-defined nonsense.
func (m Dmat4) InvertSE3() Dmat4 {
	t := m[3]
	m[3] = Dvec4{0, 0, 0, 1}
	inv := m.Transpose()
	inv[3] = inv.MulVec(t).Neg()
	inv[3][3] = 1
	return inv
}
