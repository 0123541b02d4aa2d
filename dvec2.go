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

import "math"

// Dvec2 is a 2D double-precision vector occupying one 128-bit register.
// Components are laid out [x, y] and accessed by indexing.
type Dvec2 [2]float64

// DV2 builds a Dvec2 from its components.
func DV2(x, y float64) Dvec2 {
	return Dvec2{x, y}
}

// DV2Splat builds a Dvec2 with both components set to s.
func DV2Splat(s float64) Dvec2 {
	return Dvec2{s, s}
}

// Add returns the componentwise sum v + rhs.
func (v Dvec2) Add(rhs Dvec2) Dvec2 {
	return dvec2Add(v, rhs)
}

// Sub returns the componentwise difference v - rhs.
func (v Dvec2) Sub(rhs Dvec2) Dvec2 {
	return dvec2Sub(v, rhs)
}

// Mul returns the componentwise product v * rhs.
func (v Dvec2) Mul(rhs Dvec2) Dvec2 {
	return dvec2Mul(v, rhs)
}

// Div returns the componentwise quotient v / rhs. Division by zero follows
// IEEE-754 and yields an infinity or NaN in that lane.
func (v Dvec2) Div(rhs Dvec2) Dvec2 {
	return dvec2Div(v, rhs)
}

// AddScalar adds s to both components.
func (v Dvec2) AddScalar(s float64) Dvec2 {
	return dvec2Add(v, DV2Splat(s))
}

// SubScalar subtracts s from both components.
func (v Dvec2) SubScalar(s float64) Dvec2 {
	return dvec2Sub(v, DV2Splat(s))
}

// MulScalar multiplies both components by s.
func (v Dvec2) MulScalar(s float64) Dvec2 {
	return dvec2Mul(v, DV2Splat(s))
}

// DivScalar divides both components by s.
func (v Dvec2) DivScalar(s float64) Dvec2 {
	return dvec2Div(v, DV2Splat(s))
}

// Neg returns 0 - v.
func (v Dvec2) Neg() Dvec2 {
	return dvec2Sub(Dvec2{}, v)
}

// Min returns the componentwise minimum of v and rhs. When a lane compare
// is unordered because of a NaN, the lane is taken from rhs, the rule x86
// MINPD uses: v.Min(nan) is NaN while nan.Min(rhs) is rhs.
func (v Dvec2) Min(rhs Dvec2) Dvec2 {
	return dvec2Min(v, rhs)
}

// Max returns the componentwise maximum of v and rhs, with the same
// unordered rule as Min.
func (v Dvec2) Max(rhs Dvec2) Dvec2 {
	return dvec2Max(v, rhs)
}

// Floor rounds both components toward negative infinity.
func (v Dvec2) Floor() Dvec2 {
	return Dvec2{math.Floor(v[0]), math.Floor(v[1])}
}

// ReduceMin returns the smaller of the two components.
// The result is unspecified if any component is NaN.
func (v Dvec2) ReduceMin() float64 {
	return dvec2ReduceMin(v)
}

// ReduceMax returns the larger of the two components.
// The result is unspecified if any component is NaN.
func (v Dvec2) ReduceMax() float64 {
	return dvec2ReduceMax(v)
}

// Dot returns the dot product of v and rhs.
func (v Dvec2) Dot(rhs Dvec2) float64 {
	return dvec2Dot(v, rhs)
}

// Norm returns the Euclidean norm of v.
func (v Dvec2) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize divides v by its norm. A zero vector normalizes to NaN lanes.
func (v Dvec2) Normalize() Dvec2 {
	return v.DivScalar(v.Norm())
}
