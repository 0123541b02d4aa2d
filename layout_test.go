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
	"unsafe"
)

// The types are documented as layout-transparent for bulk copy and
// serialization; these sizes are part of the contract.
func TestSizes(t *testing.T) {
	if got := unsafe.Sizeof(Fvec2{}); got != 8 {
		t.Errorf("Sizeof(Fvec2) = %d, want 8", got)
	}
	if got := unsafe.Sizeof(Dvec2{}); got != 16 {
		t.Errorf("Sizeof(Dvec2) = %d, want 16", got)
	}
	if got := unsafe.Sizeof(Fvec4{}); got != 16 {
		t.Errorf("Sizeof(Fvec4) = %d, want 16", got)
	}
	if got := unsafe.Sizeof(Dvec4{}); got != 32 {
		t.Errorf("Sizeof(Dvec4) = %d, want 32", got)
	}
	if got := unsafe.Sizeof(Fmat4{}); got != 64 {
		t.Errorf("Sizeof(Fmat4) = %d, want 64", got)
	}
	if got := unsafe.Sizeof(Dmat4{}); got != 128 {
		t.Errorf("Sizeof(Dmat4) = %d, want 128", got)
	}
}

func TestColumnLayout(t *testing.T) {
	m := Dmat4{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	// Element (row r, col c) is m[c][r]; the flat layout is column-major.
	flat := (*[16]float64)(unsafe.Pointer(&m))
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			if flat[c*4+r] != m[c][r] {
				t.Fatalf("flat[%d] = %v, want %v", c*4+r, flat[c*4+r], m[c][r])
			}
		}
	}
}
