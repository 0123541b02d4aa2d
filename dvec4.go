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

// Dvec4 is a 4D double-precision vector occupying one 256-bit register.
// Components are laid out [x, y, z, w]. The w component's meaning is the
// caller's convention; DPoint and DDirection build the two usual ones.
type Dvec4 [4]float64

// DV4 builds a Dvec4 from its components.
func DV4(x, y, z, w float64) Dvec4 {
	return Dvec4{x, y, z, w}
}

// DV4Splat builds a Dvec4 with all four components set to s.
func DV4Splat(s float64) Dvec4 {
	return Dvec4{s, s, s, s}
}

// DPoint builds a homogeneous 3D point, w = 1.
func DPoint(x, y, z float64) Dvec4 {
	return Dvec4{x, y, z, 1}
}

// DDirection builds a homogeneous 3D direction, w = 0.
func DDirection(x, y, z float64) Dvec4 {
	return Dvec4{x, y, z, 0}
}

// Add returns the componentwise sum v + rhs.
func (v Dvec4) Add(rhs Dvec4) Dvec4 {
	return dvec4Add(v, rhs)
}

// Sub returns the componentwise difference v - rhs.
func (v Dvec4) Sub(rhs Dvec4) Dvec4 {
	return dvec4Sub(v, rhs)
}

// Mul returns the componentwise product v * rhs.
func (v Dvec4) Mul(rhs Dvec4) Dvec4 {
	return dvec4Mul(v, rhs)
}

// Div returns the componentwise quotient v / rhs. Division by zero follows
// IEEE-754 and yields an infinity or NaN in that lane.
func (v Dvec4) Div(rhs Dvec4) Dvec4 {
	return dvec4Div(v, rhs)
}

// AddScalar adds s to every component.
func (v Dvec4) AddScalar(s float64) Dvec4 {
	return dvec4Add(v, DV4Splat(s))
}

// SubScalar subtracts s from every component.
func (v Dvec4) SubScalar(s float64) Dvec4 {
	return dvec4Sub(v, DV4Splat(s))
}

// MulScalar multiplies every component by s.
func (v Dvec4) MulScalar(s float64) Dvec4 {
	return dvec4Mul(v, DV4Splat(s))
}

// DivScalar divides every component by s.
func (v Dvec4) DivScalar(s float64) Dvec4 {
	return dvec4Div(v, DV4Splat(s))
}

// Neg returns 0 - v.
func (v Dvec4) Neg() Dvec4 {
	return dvec4Sub(Dvec4{}, v)
}

// Min returns the componentwise minimum of v and rhs. When a lane compare
// is unordered because of a NaN, the lane is taken from rhs, the rule x86
// MINPD uses: v.Min(nan) is NaN while nan.Min(rhs) is rhs.
func (v Dvec4) Min(rhs Dvec4) Dvec4 {
	return dvec4Min(v, rhs)
}

// Max returns the componentwise maximum of v and rhs, with the same
// unordered rule as Min.
func (v Dvec4) Max(rhs Dvec4) Dvec4 {
	return dvec4Max(v, rhs)
}

// Floor rounds every component toward negative infinity.
func (v Dvec4) Floor() Dvec4 {
	return Dvec4{math.Floor(v[0]), math.Floor(v[1]), math.Floor(v[2]), math.Floor(v[3])}
}

// ReduceMin returns the smallest of the four components.
// The result is unspecified if any component is NaN.
func (v Dvec4) ReduceMin() float64 {
	return dvec4ReduceMin(v)
}

// ReduceMax returns the largest of the four components.
// The result is unspecified if any component is NaN.
func (v Dvec4) ReduceMax() float64 {
	return dvec4ReduceMax(v)
}

// Dot returns the dot product across all four lanes.
func (v Dvec4) Dot(rhs Dvec4) float64 {
	return dvec4Dot(v, rhs)
}

// Cross returns the 3D cross product of the leading three lanes. The w
// components of the operands are ignored and the w of the result is zero;
// there is no 4D generalization here.
func (v Dvec4) Cross(rhs Dvec4) Dvec4 {
	return dvec4Cross(v, rhs)
}

// Norm returns the Euclidean norm over all four lanes.
func (v Dvec4) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize divides v by its norm. A zero vector normalizes to NaN lanes.
func (v Dvec4) Normalize() Dvec4 {
	return v.DivScalar(v.Norm())
}
