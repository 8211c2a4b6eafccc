// Copyright 2025 go-vec3 Authors
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

package vec3

import "math"

// F32x4 is the narrow vector backend: single-precision coordinates in the
// first three lanes of a 128-bit 4-lane register image. Lane 3 is padding.
//
// Arithmetic runs uniformly over all 4 lanes, the way addps/subps/mulps/
// divps do; callers never read the padding lane. Reductions (Dot, Length)
// mask the padding lane out, so its value never influences a result.
//
// RLength and Normalize use a reciprocal-square-root estimate (rsqrtps
// semantics): fast, approximate, not bit-exact with the scalar backend.
// Expect relative error up to about 1e-3.
type F32x4 struct {
	m [4]float32

	// inserted is the builder protocol counter, see builder.go.
	inserted uint8
}

// NewF32x4 returns the vector (x, y, z) with the padding lane zeroed.
func NewF32x4(x, y, z float32) F32x4 {
	return F32x4{m: [4]float32{x, y, z, 0}}
}

// LoadF32x4 copies a raw 4-lane register image, padding lane included.
// Exposed operations never read the padding lane, so a garbage lane 3 is
// harmless; it is the caller's register to waste.
func LoadF32x4(lanes [4]float32) F32x4 {
	return F32x4{m: lanes}
}

// Lanes returns the raw 4-lane register image, padding lane included.
func (v F32x4) Lanes() [4]float32 { return v.m }

// X returns the first coordinate.
func (v F32x4) X() float32 { return v.m[0] }

// Y returns the second coordinate.
func (v F32x4) Y() float32 { return v.m[1] }

// Z returns the third coordinate.
func (v F32x4) Z() float32 { return v.m[2] }

// Set assigns all three coordinates, zeroes the padding lane, and resets
// the builder counter.
func (v *F32x4) Set(x, y, z float32) {
	v.m = [4]float32{x, y, z, 0}
	v.inserted = buildIdle
}

// Fill assigns the same scalar to all three coordinates. The padding lane
// stays zero.
func (v *F32x4) Fill(s float32) {
	v.m = [4]float32{s, s, s, 0}
}

// Add returns v + o lane-wise.
func (v F32x4) Add(o F32x4) F32x4 {
	return F32x4{m: [4]float32{
		v.m[0] + o.m[0],
		v.m[1] + o.m[1],
		v.m[2] + o.m[2],
		v.m[3] + o.m[3],
	}}
}

// Sub returns v - o lane-wise.
func (v F32x4) Sub(o F32x4) F32x4 {
	return F32x4{m: [4]float32{
		v.m[0] - o.m[0],
		v.m[1] - o.m[1],
		v.m[2] - o.m[2],
		v.m[3] - o.m[3],
	}}
}

// Mul returns v * o lane-wise.
func (v F32x4) Mul(o F32x4) F32x4 {
	return F32x4{m: [4]float32{
		v.m[0] * o.m[0],
		v.m[1] * o.m[1],
		v.m[2] * o.m[2],
		v.m[3] * o.m[3],
	}}
}

// Div returns v / o lane-wise. The padding quotient may be NaN (0/0); it is
// never read. Zero coordinates in o yield Inf or NaN per IEEE semantics.
func (v F32x4) Div(o F32x4) F32x4 {
	return F32x4{m: [4]float32{
		v.m[0] / o.m[0],
		v.m[1] / o.m[1],
		v.m[2] / o.m[2],
		v.m[3] / o.m[3],
	}}
}

// AddInPlace adds o to v lane-wise.
func (v *F32x4) AddInPlace(o F32x4) {
	for i := range v.m {
		v.m[i] += o.m[i]
	}
}

// SubInPlace subtracts o from v lane-wise.
func (v *F32x4) SubInPlace(o F32x4) {
	for i := range v.m {
		v.m[i] -= o.m[i]
	}
}

// MulInPlace multiplies v by o lane-wise.
func (v *F32x4) MulInPlace(o F32x4) {
	for i := range v.m {
		v.m[i] *= o.m[i]
	}
}

// DivInPlace divides v by o lane-wise.
func (v *F32x4) DivInPlace(o F32x4) {
	for i := range v.m {
		v.m[i] /= o.m[i]
	}
}

// AddScalar returns v with s added to every lane (set1 broadcast).
func (v F32x4) AddScalar(s float32) F32x4 {
	return v.Add(F32x4{m: [4]float32{s, s, s, s}})
}

// SubScalar returns v with s subtracted from every lane.
func (v F32x4) SubScalar(s float32) F32x4 {
	return v.Sub(F32x4{m: [4]float32{s, s, s, s}})
}

// MulScalar returns v with every lane multiplied by s.
func (v F32x4) MulScalar(s float32) F32x4 {
	return v.Mul(F32x4{m: [4]float32{s, s, s, s}})
}

// DivScalar returns v with every lane divided by s.
func (v F32x4) DivScalar(s float32) F32x4 {
	return v.Div(F32x4{m: [4]float32{s, s, s, s}})
}

// AddScalarInPlace adds s to every lane.
func (v *F32x4) AddScalarInPlace(s float32) {
	v.AddInPlace(F32x4{m: [4]float32{s, s, s, s}})
}

// SubScalarInPlace subtracts s from every lane.
func (v *F32x4) SubScalarInPlace(s float32) {
	v.SubInPlace(F32x4{m: [4]float32{s, s, s, s}})
}

// MulScalarInPlace multiplies every lane by s.
func (v *F32x4) MulScalarInPlace(s float32) {
	v.MulInPlace(F32x4{m: [4]float32{s, s, s, s}})
}

// DivScalarInPlace divides every lane by s.
func (v *F32x4) DivScalarInPlace(s float32) {
	v.DivInPlace(F32x4{m: [4]float32{s, s, s, s}})
}

// ScaleF32x4 returns s * v, the commutative form of v.MulScalar(s).
func ScaleF32x4(s float32, v F32x4) F32x4 {
	return v.MulScalar(s)
}

// yzx returns the lanes reordered to (y, z, x, w): the shufps
// _MM_SHUFFLE(3, 0, 2, 1) ordering.
func (v F32x4) yzx() F32x4 {
	return F32x4{m: [4]float32{v.m[1], v.m[2], v.m[0], v.m[3]}}
}

// zxy returns the lanes reordered to (z, x, y, w): the shufps
// _MM_SHUFFLE(3, 1, 0, 2) ordering.
func (v F32x4) zxy() F32x4 {
	return F32x4{m: [4]float32{v.m[2], v.m[0], v.m[1], v.m[3]}}
}

// Dot returns the dot product of v and o: a masked reduction over the
// three coordinate lanes only (dpps imm 0x71), so the padding lane never
// contributes.
func (v F32x4) Dot(o F32x4) float32 {
	return v.m[0]*o.m[0] + v.m[1]*o.m[1] + v.m[2]*o.m[2]
}

// Cross returns the cross product of v and o: two shuffles per operand,
// one multiply, one subtract. No lane leaves the register.
func (v F32x4) Cross(o F32x4) F32x4 {
	return v.yzx().Mul(o.zxy()).Sub(v.zxy().Mul(o.yzx()))
}

// Length returns the Euclidean length of v, from the masked dot reduction.
func (v F32x4) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// RLength returns an approximate reciprocal length (rsqrtss estimate of the
// masked dot product). Not bit-exact with 1/Length.
func (v F32x4) RLength() float32 {
	return rsqrtEstimate(v.Dot(v))
}

// Normalize returns v scaled by an approximate reciprocal length broadcast
// to all lanes. The receiver is not mutated. Approximate: the result's
// length is 1 only to within the rsqrt estimate's error.
func (v F32x4) Normalize() F32x4 {
	return v.MulScalar(rsqrtEstimate(v.Dot(v)))
}

// rsqrtEstimate computes an approximate 1/sqrt(x) with rsqrtps-like
// accuracy: the classic bit-pattern seed refined by one Newton step.
// Relative error stays below about 1e-3 for normal positive inputs.
func rsqrtEstimate(x float32) float32 {
	seed := math.Float32frombits(0x5f375a86 - math.Float32bits(x)>>1)
	return seed * (1.5 - 0.5*x*seed*seed)
}
