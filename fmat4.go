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

// Fmat4 is a 4x4 single-precision matrix stored as four Fvec4 columns,
// mirroring Dmat4. Element (row r, col c) is m[c][r].
type Fmat4 [4]Fvec4

// Fmat4Identity returns the identity matrix.
func Fmat4Identity() Fmat4 {
	return Fmat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Fmat4Splat returns a matrix with every element set to s.
func Fmat4Splat(s float32) Fmat4 {
	c := FV4Splat(s)
	return Fmat4{c, c, c, c}
}

// Fmat4FromRows builds a matrix from its four rows.
func Fmat4FromRows(r0, r1, r2, r3 Fvec4) Fmat4 {
	return Fmat4{
		{r0[0], r1[0], r2[0], r3[0]},
		{r0[1], r1[1], r2[1], r3[1]},
		{r0[2], r1[2], r2[2], r3[2]},
		{r0[3], r1[3], r2[3], r3[3]},
	}
}

// Add returns the componentwise sum m + rhs, column by column.
func (m Fmat4) Add(rhs Fmat4) Fmat4 {
	return Fmat4{
		m[0].Add(rhs[0]),
		m[1].Add(rhs[1]),
		m[2].Add(rhs[2]),
		m[3].Add(rhs[3]),
	}
}

// Sub returns the componentwise difference m - rhs, column by column.
func (m Fmat4) Sub(rhs Fmat4) Fmat4 {
	return Fmat4{
		m[0].Sub(rhs[0]),
		m[1].Sub(rhs[1]),
		m[2].Sub(rhs[2]),
		m[3].Sub(rhs[3]),
	}
}

// Neg returns 0 - m.
func (m Fmat4) Neg() Fmat4 {
	return Fmat4{m[0].Neg(), m[1].Neg(), m[2].Neg(), m[3].Neg()}
}

// MulVec returns m * v, the FMA-accumulated combination of the columns.
func (m Fmat4) MulVec(v Fvec4) Fvec4 {
	return fmat4MulVec(m, v)
}

// Mul returns the matrix product m * rhs, column by column as for Dmat4.Mul.
func (m Fmat4) Mul(rhs Fmat4) Fmat4 {
	return fmat4Mul(m, rhs)
}

// Transpose returns the transposed matrix: out[j][r] == m[r][j].
func (m Fmat4) Transpose() Fmat4 {
	var out Fmat4
	for c := 0; c < 4; c++ {
		out[c] = Fvec4{m[0][c], m[1][c], m[2][c], m[3][c]}
	}
	return out
}

// InvertSE3 inverts a rigid transform, as for Dmat4.InvertSE3. The caller
// must guarantee m is SE(3); non-rigid input yields well-defined nonsense.
func (m Fmat4) InvertSE3() Fmat4 {
	t := m[3]
	m[3] = Fvec4{0, 0, 0, 1}
	inv := m.Transpose()
	inv[3] = inv.MulVec(t).Neg()
	inv[3][3] = 1
	return inv
}
