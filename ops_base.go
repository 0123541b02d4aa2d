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

//go:build !amd64 || !goexperiment.simd

package mafs

// Pure Go kernels, compiled when the SIMD kernels are not. They are
// lane-for-lane equivalent to ops_avx2.go, including the MINPD/MAXPD
// unordered rule for Min and Max.

// ---------------------------------------------------------------- Dvec2

func dvec2Add(a, b Dvec2) Dvec2 {
	return Dvec2{a[0] + b[0], a[1] + b[1]}
}

func dvec2Sub(a, b Dvec2) Dvec2 {
	return Dvec2{a[0] - b[0], a[1] - b[1]}
}

func dvec2Mul(a, b Dvec2) Dvec2 {
	return Dvec2{a[0] * b[0], a[1] * b[1]}
}

func dvec2Div(a, b Dvec2) Dvec2 {
	return Dvec2{a[0] / b[0], a[1] / b[1]}
}

func dvec2Min(a, b Dvec2) Dvec2 {
	return Dvec2{minLane64(a[0], b[0]), minLane64(a[1], b[1])}
}

func dvec2Max(a, b Dvec2) Dvec2 {
	return Dvec2{maxLane64(a[0], b[0]), maxLane64(a[1], b[1])}
}

func dvec2Dot(a, b Dvec2) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

func dvec2ReduceMin(a Dvec2) float64 {
	if a[1] < a[0] {
		return a[1]
	}
	return a[0]
}

func dvec2ReduceMax(a Dvec2) float64 {
	if a[1] > a[0] {
		return a[1]
	}
	return a[0]
}

// ---------------------------------------------------------------- Dvec4

func dvec4Add(a, b Dvec4) Dvec4 {
	return Dvec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func dvec4Sub(a, b Dvec4) Dvec4 {
	return Dvec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func dvec4Mul(a, b Dvec4) Dvec4 {
	return Dvec4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func dvec4Div(a, b Dvec4) Dvec4 {
	return Dvec4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

func dvec4Min(a, b Dvec4) Dvec4 {
	return Dvec4{
		minLane64(a[0], b[0]),
		minLane64(a[1], b[1]),
		minLane64(a[2], b[2]),
		minLane64(a[3], b[3]),
	}
}

func dvec4Max(a, b Dvec4) Dvec4 {
	return Dvec4{
		maxLane64(a[0], b[0]),
		maxLane64(a[1], b[1]),
		maxLane64(a[2], b[2]),
		maxLane64(a[3], b[3]),
	}
}

func dvec4Dot(a, b Dvec4) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func dvec4Cross(a, b Dvec4) Dvec4 {
	return Dvec4{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
		// w rides through the shuffled multiplies in the SIMD path and
		// cancels; zero unless the operands' w lanes are NaN or Inf.
		a[3]*b[3] - b[3]*a[3],
	}
}

func dvec4ReduceMin(a Dvec4) float64 {
	return minLane64(minLane64(a[0], a[2]), minLane64(a[1], a[3]))
}

func dvec4ReduceMax(a Dvec4) float64 {
	return maxLane64(maxLane64(a[0], a[2]), maxLane64(a[1], a[3]))
}

// ---------------------------------------------------------------- Dmat4

func dmat4MulVec(m Dmat4, v Dvec4) Dvec4 {
	var out Dvec4
	for k := 0; k < 4; k++ {
		s := v[k]
		for r := 0; r < 4; r++ {
			out[r] += m[k][r] * s
		}
	}
	return out
}

func dmat4Mul(a, b Dmat4) Dmat4 {
	var out Dmat4
	for j := 0; j < 4; j++ {
		out[j] = dmat4MulVec(a, b[j])
	}
	return out
}

// ---------------------------------------------------------------- Fvec4

func fvec4Add(a, b Fvec4) Fvec4 {
	return Fvec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func fvec4Sub(a, b Fvec4) Fvec4 {
	return Fvec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func fvec4Mul(a, b Fvec4) Fvec4 {
	return Fvec4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func fvec4Div(a, b Fvec4) Fvec4 {
	return Fvec4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

func fvec4Min(a, b Fvec4) Fvec4 {
	return Fvec4{
		minLane32(a[0], b[0]),
		minLane32(a[1], b[1]),
		minLane32(a[2], b[2]),
		minLane32(a[3], b[3]),
	}
}

func fvec4Max(a, b Fvec4) Fvec4 {
	return Fvec4{
		maxLane32(a[0], b[0]),
		maxLane32(a[1], b[1]),
		maxLane32(a[2], b[2]),
		maxLane32(a[3], b[3]),
	}
}

func fvec4Dot(a, b Fvec4) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func fvec4Cross(a, b Fvec4) Fvec4 {
	return Fvec4{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
		a[3]*b[3] - b[3]*a[3],
	}
}

// ---------------------------------------------------------------- Fmat4

func fmat4MulVec(m Fmat4, v Fvec4) Fvec4 {
	var out Fvec4
	for k := 0; k < 4; k++ {
		s := v[k]
		for r := 0; r < 4; r++ {
			out[r] += m[k][r] * s
		}
	}
	return out
}

func fmat4Mul(a, b Fmat4) Fmat4 {
	var out Fmat4
	for j := 0; j < 4; j++ {
		out[j] = fmat4MulVec(a, b[j])
	}
	return out
}
