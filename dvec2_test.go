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
	"math"
	"math/rand"
	"testing"
)

func TestDvec2Arithmetic(t *testing.T) {
	a := DV2(2, 3)
	b := DV2(6, 9)

	if got := a.Add(b); got != DV2(8, 12) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != DV2(-4, -6) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Mul(b); got != DV2(12, 27) {
		t.Errorf("Mul: got %v", got)
	}
	if got := b.Div(a); got != DV2(3, 3) {
		t.Errorf("Div: got %v", got)
	}
	if got := a.AddScalar(1); got != DV2(3, 4) {
		t.Errorf("AddScalar: got %v", got)
	}
	if got := a.Neg(); got != DV2(-2, -3) {
		t.Errorf("Neg: got %v", got)
	}
}

func TestDvec2AddSubRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for i := 0; i < 100; i++ {
		a := DV2(rng.NormFloat64(), rng.NormFloat64())
		b := DV2(rng.NormFloat64(), rng.NormFloat64())
		dvec2Close(t, a.Add(b).Sub(b), a)
	}
}

func TestDvec2DotNorm(t *testing.T) {
	a := DV2(2, 3)
	b := DV2(6, 9)
	if got := a.Dot(b); got != 39 {
		t.Errorf("Dot: got %v, want 39", got)
	}
	if got, want := a.Dot(b), b.Dot(a); got != want {
		t.Errorf("Dot not commutative: %v vs %v", got, want)
	}
	if got := a.Norm(); !close64(got, math.Sqrt(13)) {
		t.Errorf("Norm: got %v, want sqrt(13)", got)
	}
	if got := a.Normalize().Norm(); !close64(got, 1) {
		t.Errorf("Normalize().Norm(): got %v, want 1", got)
	}
}

func TestDvec2MinMaxReduce(t *testing.T) {
	a := DV2(2, 3)
	b := DV2(6, 9)
	if got := a.Min(b); got != DV2(2, 3) {
		t.Errorf("Min: got %v", got)
	}
	if got := a.Max(b); got != DV2(6, 9) {
		t.Errorf("Max: got %v", got)
	}
	if got := a.ReduceMin(); got != 2 {
		t.Errorf("ReduceMin: got %v, want 2", got)
	}
	if got := b.ReduceMax(); got != 9 {
		t.Errorf("ReduceMax: got %v, want 9", got)
	}

	lo, hi := a.Min(b), a.Max(b)
	for l := range lo {
		if lo[l] > hi[l] {
			t.Errorf("lane %d: min %v > max %v", l, lo[l], hi[l])
		}
	}
}

func TestDvec2Floor(t *testing.T) {
	if got := DV2(-0.5, 0.5).Floor(); got != DV2(-1, 0) {
		t.Errorf("Floor: got %v", got)
	}
}

func TestDvec2DivByZero(t *testing.T) {
	got := DV2(1, 0).Div(DV2(0, 0))
	if !math.IsInf(got[0], 1) {
		t.Errorf("1/0: got %v, want +Inf", got[0])
	}
	if !math.IsNaN(got[1]) {
		t.Errorf("0/0: got %v, want NaN", got[1])
	}
}
