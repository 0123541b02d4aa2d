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
	"testing"

	"github.com/chewxy/math32"
)

func TestFvec2Arithmetic(t *testing.T) {
	a := FV2(2, 3)
	b := FV2(6, 9)

	if got := a.Add(b); got != FV2(8, 12) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != FV2(-4, -6) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Mul(b); got != FV2(12, 27) {
		t.Errorf("Mul: got %v", got)
	}
	if got := b.Div(a); got != FV2(3, 3) {
		t.Errorf("Div: got %v", got)
	}
	if got := a.MulScalar(2); got != FV2(4, 6) {
		t.Errorf("MulScalar: got %v", got)
	}
}

func TestFvec2DotNormReduce(t *testing.T) {
	a := FV2(2, 3)
	b := FV2(6, 9)
	if got := a.Dot(b); got != 39 {
		t.Errorf("Dot: got %v, want 39", got)
	}
	if got := a.Norm(); !close32(got, math32.Sqrt(13)) {
		t.Errorf("Norm: got %v, want sqrt(13)", got)
	}
	if got := a.Normalize().Norm(); !close32(got, 1) {
		t.Errorf("Normalize().Norm(): got %v, want 1", got)
	}
	if got := a.ReduceMin(); got != 2 {
		t.Errorf("ReduceMin: got %v, want 2", got)
	}
	if got := b.ReduceMax(); got != 9 {
		t.Errorf("ReduceMax: got %v, want 9", got)
	}
}

func TestFvec2FloorMinMax(t *testing.T) {
	if got := FV2(-0.5, 0.5).Floor(); got != FV2(-1, 0) {
		t.Errorf("Floor: got %v", got)
	}
	a := FV2(2, 9)
	b := FV2(6, 3)
	if got := a.Min(b); got != FV2(2, 3) {
		t.Errorf("Min: got %v", got)
	}
	if got := a.Max(b); got != FV2(6, 9) {
		t.Errorf("Max: got %v", got)
	}
}
