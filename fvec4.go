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

// Fvec4 is a 4D single-precision vector occupying one 128-bit register.
// It mirrors Dvec4 at half the lane width.
type Fvec4 [4]float32

// FV4 builds an Fvec4 from its components.
func FV4(x, y, z, w float32) Fvec4 {
	return Fvec4{x, y, z, w}
}

// FV4Splat builds an Fvec4 with all four components set to s.
func FV4Splat(s float32) Fvec4 {
	return Fvec4{s, s, s, s}
}

// FPoint builds a homogeneous 3D point, w = 1.
func FPoint(x, y, z float32) Fvec4 {
	return Fvec4{x, y, z, 1}
}

// FDirection builds a homogeneous 3D direction, w = 0.
func FDirection(x, y, z float32) Fvec4 {
	return Fvec4{x, y, z, 0}
}

// Add returns the componentwise sum v + rhs.
func (v Fvec4) Add(rhs Fvec4) Fvec4 {
	return fvec4Add(v, rhs)
}

// Sub returns the componentwise difference v - rhs.
func (v Fvec4) Sub(rhs Fvec4) Fvec4 {
	return fvec4Sub(v, rhs)
}

// Mul returns the componentwise product v * rhs.
func (v Fvec4) Mul(rhs Fvec4) Fvec4 {
	return fvec4Mul(v, rhs)
}

// Div returns the componentwise quotient v / rhs. Division by zero follows
// IEEE-754 and yields an infinity or NaN in that lane.
func (v Fvec4) Div(rhs Fvec4) Fvec4 {
	return fvec4Div(v, rhs)
}

// AddScalar adds s to every component.
func (v Fvec4) AddScalar(s float32) Fvec4 {
	return fvec4Add(v, FV4Splat(s))
}

// SubScalar subtracts s from every component.
func (v Fvec4) SubScalar(s float32) Fvec4 {
	return fvec4Sub(v, FV4Splat(s))
}

// MulScalar multiplies every component by s.
func (v Fvec4) MulScalar(s float32) Fvec4 {
	return fvec4Mul(v, FV4Splat(s))
}

// DivScalar divides every component by s.
func (v Fvec4) DivScalar(s float32) Fvec4 {
	return fvec4Div(v, FV4Splat(s))
}

// Neg returns 0 - v.
func (v Fvec4) Neg() Fvec4 {
	return fvec4Sub(Fvec4{}, v)
}

// Min returns the componentwise minimum of v and rhs, with the same
// unordered-lane rule as Dvec4.Min.
func (v Fvec4) Min(rhs Fvec4) Fvec4 {
	return fvec4Min(v, rhs)
}

// Max returns the componentwise maximum of v and rhs, with the same
// unordered-lane rule as Dvec4.Max.
func (v Fvec4) Max(rhs Fvec4) Fvec4 {
	return fvec4Max(v, rhs)
}

// Floor rounds every component toward negative infinity.
func (v Fvec4) Floor() Fvec4 {
	return Fvec4{math32.Floor(v[0]), math32.Floor(v[1]), math32.Floor(v[2]), math32.Floor(v[3])}
}

// ReduceMin returns the smallest of the four components, by pairwise
// compare-and-select. The result is unspecified if any component is NaN.
func (v Fvec4) ReduceMin() float32 {
	return minLane32(minLane32(v[0], v[2]), minLane32(v[1], v[3]))
}

// ReduceMax returns the largest of the four components, by pairwise
// compare-and-select. The result is unspecified if any component is NaN.
func (v Fvec4) ReduceMax() float32 {
	return maxLane32(maxLane32(v[0], v[2]), maxLane32(v[1], v[3]))
}

// Dot returns the dot product across all four lanes.
func (v Fvec4) Dot(rhs Fvec4) float32 {
	return fvec4Dot(v, rhs)
}

// Cross returns the 3D cross product of the leading three lanes, as for
// Dvec4.Cross: the w components are ignored and the result w is zero.
func (v Fvec4) Cross(rhs Fvec4) Fvec4 {
	return fvec4Cross(v, rhs)
}

// Norm returns the Euclidean norm over all four lanes.
func (v Fvec4) Norm() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize divides v by its norm. A zero vector normalizes to NaN lanes.
func (v Fvec4) Normalize() Fvec4 {
	return v.DivScalar(v.Norm())
}
