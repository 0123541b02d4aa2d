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

import "os"

// DispatchLevel identifies which kernel set was compiled into this build.
// It is purely informational: the kernel width is fixed at build time and
// no operation branches on it.
type DispatchLevel int

const (
	// DispatchScalar indicates the pure Go kernels.
	DispatchScalar DispatchLevel = iota

	// DispatchAVX2 indicates the 256-bit AVX2+FMA kernels
	// (amd64 with GOEXPERIMENT=simd).
	DispatchAVX2
)

func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
)

// CurrentLevel returns the kernel set compiled into this build.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the widest vector register used, in bytes.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the kernel set.
func CurrentName() string {
	return currentName
}

// NoSimdEnv reports whether the MAFS_NO_SIMD environment variable is set.
// It only affects the reported level; it cannot disable kernels that are
// already compiled in.
func NoSimdEnv() bool {
	return os.Getenv("MAFS_NO_SIMD") != ""
}
