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
	"testing"
)

const (
	tol64 = 1e-9
	tol32 = 1e-5
)

func close64(a, b float64) bool {
	return math.Abs(a-b) <= tol64
}

func close32(a, b float32) bool {
	return math.Abs(float64(a)-float64(b)) <= tol32
}

func dvec4Close(t *testing.T, got, want Dvec4) {
	t.Helper()
	for i := range got {
		if !close64(got[i], want[i]) {
			t.Errorf("lane %d: got %v, want %v", i, got, want)
			return
		}
	}
}

func dvec2Close(t *testing.T, got, want Dvec2) {
	t.Helper()
	for i := range got {
		if !close64(got[i], want[i]) {
			t.Errorf("lane %d: got %v, want %v", i, got, want)
			return
		}
	}
}

func fvec4Close(t *testing.T, got, want Fvec4) {
	t.Helper()
	for i := range got {
		if !close32(got[i], want[i]) {
			t.Errorf("lane %d: got %v, want %v", i, got, want)
			return
		}
	}
}

func dmat4Close(t *testing.T, got, want Dmat4) {
	t.Helper()
	for c := range got {
		for r := range got[c] {
			if !close64(got[c][r], want[c][r]) {
				t.Errorf("col %d row %d: got %v, want %v", c, r, got, want)
				return
			}
		}
	}
}

func fmat4Close(t *testing.T, got, want Fmat4) {
	t.Helper()
	for c := range got {
		for r := range got[c] {
			if !close32(got[c][r], want[c][r]) {
				t.Errorf("col %d row %d: got %v, want %v", c, r, got, want)
				return
			}
		}
	}
}
