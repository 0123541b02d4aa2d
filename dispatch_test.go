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

import "testing"

func TestDispatchReport(t *testing.T) {
	level := CurrentLevel()
	if level != DispatchScalar && level != DispatchAVX2 {
		t.Errorf("CurrentLevel() = %v, want scalar or avx2", level)
	}
	if CurrentName() != level.String() {
		t.Errorf("CurrentName() = %q, want %q", CurrentName(), level.String())
	}
	switch level {
	case DispatchScalar:
		if CurrentWidth() != 16 {
			t.Errorf("CurrentWidth() = %d, want 16", CurrentWidth())
		}
	case DispatchAVX2:
		if CurrentWidth() != 32 {
			t.Errorf("CurrentWidth() = %d, want 32", CurrentWidth())
		}
	}
}

func TestDispatchLevelString(t *testing.T) {
	if DispatchScalar.String() != "scalar" {
		t.Errorf("DispatchScalar.String() = %q", DispatchScalar.String())
	}
	if DispatchAVX2.String() != "avx2" {
		t.Errorf("DispatchAVX2.String() = %q", DispatchAVX2.String())
	}
}
