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
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// Metric queries between vectors. These go through vek, which picks its own
// acceleration; NaN behavior is whatever IEEE-754 produces, in particular
// cosine similarity against a zero vector is NaN.

// Distance returns the Euclidean distance between v and rhs.
func (v Dvec2) Distance(rhs Dvec2) float64 {
	return vek.Distance(v[:], rhs[:])
}

// CosineSimilarity returns the cosine of the angle between v and rhs.
func (v Dvec2) CosineSimilarity(rhs Dvec2) float64 {
	return vek.CosineSimilarity(v[:], rhs[:])
}

// Distance returns the Euclidean distance between v and rhs over all four
// lanes.
func (v Dvec4) Distance(rhs Dvec4) float64 {
	return vek.Distance(v[:], rhs[:])
}

// CosineSimilarity returns the cosine of the angle between v and rhs over
// all four lanes.
func (v Dvec4) CosineSimilarity(rhs Dvec4) float64 {
	return vek.CosineSimilarity(v[:], rhs[:])
}

// Distance returns the Euclidean distance between v and rhs over all four
// lanes.
func (v Fvec4) Distance(rhs Fvec4) float32 {
	return vek32.Distance(v[:], rhs[:])
}

// CosineSimilarity returns the cosine of the angle between v and rhs over
// all four lanes.
func (v Fvec4) CosineSimilarity(rhs Fvec4) float32 {
	return vek32.CosineSimilarity(v[:], rhs[:])
}
