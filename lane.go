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

// Single-lane min/max with the x86 MINPD/MAXPD selection rule: whenever the
// compare fails, including the unordered NaN case and exact equality, the
// lane comes from the second operand.

func minLane64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxLane64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minLane32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxLane32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
