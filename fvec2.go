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

import "github.com/chewxy/math32"

// Fvec2 is a 2D single-precision vector. Unlike the other types it is not
// SIMD-backed: packing two float32 lanes buys nothing over plain scalar
// arithmetic on the target hardware.
type Fvec2 [2]float32

// FV2 builds an Fvec2 from its components.
func FV2(x, y float32) Fvec2 {
	return Fvec2{x, y}
}

// FV2Splat builds an Fvec2 with both components set to s.
func FV2Splat(s float32) Fvec2 {
	return Fvec2{s, s}
}

// Add returns the componentwise sum v + rhs.
func (v Fvec2) Add(rhs Fvec2) Fvec2 {
	return Fvec2{v[0] + rhs[0], v[1] + rhs[1]}
}

// Sub returns the componentwise difference v - rhs.
func (v Fvec2) Sub(rhs Fvec2) Fvec2 {
	return Fvec2{v[0] - rhs[0], v[1] - rhs[1]}
}

// Mul returns the componentwise product v * rhs.
func (v Fvec2) Mul(rhs Fvec2) Fvec2 {
	return Fvec2{v[0] * rhs[0], v[1] * rhs[1]}
}

// Div returns the componentwise quotient v / rhs. Division by zero follows
// IEEE-754 and yields an infinity or NaN in that lane.
func (v Fvec2) Div(rhs Fvec2) Fvec2 {
	return Fvec2{v[0] / rhs[0], v[1] / rhs[1]}
}

// AddScalar adds s to both components.
func (v Fvec2) AddScalar(s float32) Fvec2 {
	return v.Add(FV2Splat(s))
}

// SubScalar subtracts s from both components.
func (v Fvec2) SubScalar(s float32) Fvec2 {
	return v.Sub(FV2Splat(s))
}

// MulScalar multiplies both components by s.
func (v Fvec2) MulScalar(s float32) Fvec2 {
	return v.Mul(FV2Splat(s))
}

// DivScalar divides both components by s.
func (v Fvec2) DivScalar(s float32) Fvec2 {
	return v.Div(FV2Splat(s))
}

// Neg returns 0 - v.
func (v Fvec2) Neg() Fvec2 {
	return Fvec2{}.Sub(v)
}

// Min returns the componentwise minimum of v and rhs, with the same
// unordered-lane rule as Dvec4.Min.
func (v Fvec2) Min(rhs Fvec2) Fvec2 {
	return Fvec2{minLane32(v[0], rhs[0]), minLane32(v[1], rhs[1])}
}

// Max returns the componentwise maximum of v and rhs, with the same
// unordered-lane rule as Dvec4.Max.
func (v Fvec2) Max(rhs Fvec2) Fvec2 {
	return Fvec2{maxLane32(v[0], rhs[0]), maxLane32(v[1], rhs[1])}
}

// Floor rounds both components toward negative infinity.
func (v Fvec2) Floor() Fvec2 {
	return Fvec2{math32.Floor(v[0]), math32.Floor(v[1])}
}

// ReduceMin returns the smaller of the two components.
// The result is unspecified if any component is NaN.
func (v Fvec2) ReduceMin() float32 {
	return minLane32(v[0], v[1])
}

// ReduceMax returns the larger of the two components.
// The result is unspecified if any component is NaN.
func (v Fvec2) ReduceMax() float32 {
	return maxLane32(v[0], v[1])
}

// Dot returns the dot product of v and rhs.
func (v Fvec2) Dot(rhs Fvec2) float32 {
	return v[0]*rhs[0] + v[1]*rhs[1]
}

// Norm returns the Euclidean norm of v.
func (v Fvec2) Norm() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize divides v by its norm. A zero vector normalizes to NaN lanes.
func (v Fvec2) Normalize() Fvec2 {
	return v.DivScalar(v.Norm())
}
