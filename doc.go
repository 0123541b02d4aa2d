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

// Package mafs provides small fixed-width SIMD vectors and 4x4 matrices for
// computer graphics: transforms, geometric queries, and the arithmetic around
// them.
//
// Types:
//
//   - Double precision: Dvec2 (one 128-bit register), Dvec4 (one 256-bit
//     register), Dmat4 (four Dvec4 columns, column-major).
//   - Single precision: Fvec4 and Fmat4 (128-bit registers), and Fvec2,
//     which is deliberately plain scalar arithmetic (packing two float32
//     lanes buys nothing on current hardware).
//
// All types are plain fixed arrays. They have value semantics, compare with
// ==, index like arrays, and carry no hidden state, so they can be bulk
// copied or reinterpreted for serialization: a Dvec4 is exactly four
// contiguous float64 in x, y, z, w order, and a Dmat4 is exactly four
// contiguous columns.
//
// Operations never allocate and never return errors. Floating-point edge
// cases (NaN, infinities, signed zero, division by zero) follow IEEE-754;
// the one precondition-based contract is Dmat4.InvertSE3, which assumes a
// rigid transform and produces undefined numeric output otherwise.
//
// # Hardware requirements
//
// The vector kernels are compiled on amd64 with GOEXPERIMENT=simd and use
// 256-bit AVX2 and FMA instructions for the double-precision paths. Support
// is a build/deployment precondition, not a runtime check: executing the
// SIMD build on a CPU without AVX2+FMA faults with an illegal instruction.
// The internal/cpuinfo tool reports whether the current machine qualifies.
// On other architectures, or without the experiment, lane-identical scalar
// kernels are compiled instead.
package mafs
