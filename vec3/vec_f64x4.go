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

// F64x4 is the wide vector backend: double-precision coordinates in the
// first three lanes of a 256-bit 4-lane register image. Lane 3 is padding.
//
// The padding invariant is enforced at every operation boundary: divisors
// get their padding lane replaced by the neutral 1.0 before the lane-wise
// divide (a zero pad would NaN-poison the quotient register), scalar
// broadcasts carry the operation's neutral element in the pad lane, and
// reductions force the pad product to zero before folding.
//
// Unlike F32x4, RLength and Normalize are exact: there is no fast
// reciprocal-square-root at this width worth the accuracy loss, so the
// reciprocal length is a true 1/sqrt.
type F64x4 struct {
	m [4]float64

	// inserted is the builder protocol counter, see builder.go.
	inserted uint8
}

// NewF64x4 returns the vector (x, y, z) with the padding lane zeroed.
func NewF64x4(x, y, z float64) F64x4 {
	return F64x4{m: [4]float64{x, y, z, 0}}
}

// LoadF64x4 copies a raw 4-lane register image, padding lane included.
// Exposed operations neutralize or mask the padding lane, so a garbage
// lane 3 (zero included) cannot influence any result.
func LoadF64x4(lanes [4]float64) F64x4 {
	return F64x4{m: lanes}
}

// Lanes returns the raw 4-lane register image, padding lane included.
func (v F64x4) Lanes() [4]float64 { return v.m }

// X returns the first coordinate.
func (v F64x4) X() float64 { return v.m[0] }

// Y returns the second coordinate.
func (v F64x4) Y() float64 { return v.m[1] }

// Z returns the third coordinate.
func (v F64x4) Z() float64 { return v.m[2] }

// Set assigns all three coordinates, zeroes the padding lane, and resets
// the builder counter.
func (v *F64x4) Set(x, y, z float64) {
	v.m = [4]float64{x, y, z, 0}
	v.inserted = buildIdle
}

// Fill assigns the same scalar to all three coordinates. The padding lane
// stays zero.
func (v *F64x4) Fill(s float64) {
	v.m = [4]float64{s, s, s, 0}
}

// Add returns v + o lane-wise.
func (v F64x4) Add(o F64x4) F64x4 {
	return F64x4{m: [4]float64{
		v.m[0] + o.m[0],
		v.m[1] + o.m[1],
		v.m[2] + o.m[2],
		v.m[3] + o.m[3],
	}}
}

// Sub returns v - o lane-wise.
func (v F64x4) Sub(o F64x4) F64x4 {
	return F64x4{m: [4]float64{
		v.m[0] - o.m[0],
		v.m[1] - o.m[1],
		v.m[2] - o.m[2],
		v.m[3] - o.m[3],
	}}
}

// Mul returns v * o lane-wise.
func (v F64x4) Mul(o F64x4) F64x4 {
	return F64x4{m: [4]float64{
		v.m[0] * o.m[0],
		v.m[1] * o.m[1],
		v.m[2] * o.m[2],
		v.m[3] * o.m[3],
	}}
}

// Div returns v / o lane-wise. The divisor's padding lane is replaced by
// 1.0 first: it may hold anything, zero included, and must not corrupt the
// quotient. Zero coordinates in o still yield Inf or NaN per IEEE
// semantics.
func (v F64x4) Div(o F64x4) F64x4 {
	return F64x4{m: [4]float64{
		v.m[0] / o.m[0],
		v.m[1] / o.m[1],
		v.m[2] / o.m[2],
		v.m[3] / 1.0,
	}}
}

// AddInPlace adds o to v lane-wise.
func (v *F64x4) AddInPlace(o F64x4) {
	for i := range v.m {
		v.m[i] += o.m[i]
	}
}

// SubInPlace subtracts o from v lane-wise.
func (v *F64x4) SubInPlace(o F64x4) {
	for i := range v.m {
		v.m[i] -= o.m[i]
	}
}

// MulInPlace multiplies v by o lane-wise.
func (v *F64x4) MulInPlace(o F64x4) {
	for i := range v.m {
		v.m[i] *= o.m[i]
	}
}

// DivInPlace divides v by o lane-wise, with the divisor's padding lane
// neutralized to 1.0 as in Div.
func (v *F64x4) DivInPlace(o F64x4) {
	o.m[3] = 1.0
	for i := range v.m {
		v.m[i] /= o.m[i]
	}
}

// AddScalar returns v with s added to every coordinate. The broadcast
// carries 0, addition's neutral element, in the padding lane.
func (v F64x4) AddScalar(s float64) F64x4 {
	return v.Add(F64x4{m: [4]float64{s, s, s, 0}})
}

// SubScalar returns v with s subtracted from every coordinate.
func (v F64x4) SubScalar(s float64) F64x4 {
	return v.Sub(F64x4{m: [4]float64{s, s, s, 0}})
}

// MulScalar returns v with every coordinate multiplied by s. The padding
// lane is multiplied by 0, keeping it zero.
func (v F64x4) MulScalar(s float64) F64x4 {
	return v.Mul(F64x4{m: [4]float64{s, s, s, 0}})
}

// DivScalar returns v with every coordinate divided by s. The broadcast
// carries 1, division's neutral element, in the padding lane.
func (v F64x4) DivScalar(s float64) F64x4 {
	return F64x4{m: [4]float64{
		v.m[0] / s,
		v.m[1] / s,
		v.m[2] / s,
		v.m[3] / 1.0,
	}}
}

// AddScalarInPlace adds s to every coordinate.
func (v *F64x4) AddScalarInPlace(s float64) {
	v.AddInPlace(F64x4{m: [4]float64{s, s, s, 0}})
}

// SubScalarInPlace subtracts s from every coordinate.
func (v *F64x4) SubScalarInPlace(s float64) {
	v.SubInPlace(F64x4{m: [4]float64{s, s, s, 0}})
}

// MulScalarInPlace multiplies every coordinate by s.
func (v *F64x4) MulScalarInPlace(s float64) {
	v.MulInPlace(F64x4{m: [4]float64{s, s, s, 0}})
}

// DivScalarInPlace divides every coordinate by s.
func (v *F64x4) DivScalarInPlace(s float64) {
	v.DivInPlace(F64x4{m: [4]float64{s, s, s, 1}})
}

// ScaleF64x4 returns s * v, the commutative form of v.MulScalar(s).
func ScaleF64x4(s float64, v F64x4) F64x4 {
	return v.MulScalar(s)
}

// yzx returns the lanes reordered to (y, z, x, w): the vpermpd
// _MM_SHUFFLE(3, 0, 2, 1) ordering.
func (v F64x4) yzx() F64x4 {
	return F64x4{m: [4]float64{v.m[1], v.m[2], v.m[0], v.m[3]}}
}

// zxy returns the lanes reordered to (z, x, y, w): the vpermpd
// _MM_SHUFFLE(3, 1, 0, 2) ordering.
func (v F64x4) zxy() F64x4 {
	return F64x4{m: [4]float64{v.m[2], v.m[0], v.m[1], v.m[3]}}
}

// dot3 is the shared reduction behind Dot and Length. There is no masked
// horizontal sum at this width, so: multiply lane-wise with the padding
// product forced to zero, fold pairs within each 128-bit half (haddpd),
// then add the two halves and extract the low lane.
func (v F64x4) dot3(o F64x4) float64 {
	p0 := v.m[0] * o.m[0]
	p1 := v.m[1] * o.m[1]
	p2 := v.m[2] * o.m[2]
	const p3 = 0.0 // padding product excluded from the reduction

	lo := p0 + p1
	hi := p2 + p3
	return lo + hi
}

// Dot returns the dot product of v and o.
func (v F64x4) Dot(o F64x4) float64 {
	return v.dot3(o)
}

// Cross returns the cross product of v and o: two permutes per operand,
// one multiply, one subtract. No lane leaves the register.
func (v F64x4) Cross(o F64x4) F64x4 {
	return v.yzx().Mul(o.zxy()).Sub(v.zxy().Mul(o.yzx()))
}

// Length returns the Euclidean length of v.
func (v F64x4) Length() float64 {
	return math.Sqrt(v.dot3(v))
}

// RLength returns the exact reciprocal length of v. Exact where F32x4's is
// an estimate; the asymmetry between the two register backends is
// deliberate.
func (v F64x4) RLength() float64 {
	return 1 / v.Length()
}

// Normalize returns v scaled by the exact reciprocal length broadcast to
// all lanes. The receiver is not mutated.
func (v F64x4) Normalize() F64x4 {
	r := v.RLength()
	return v.Mul(F64x4{m: [4]float64{r, r, r, r}})
}
