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

// This file provides the pure scalar implementation of the vector contract.
// It is the correctness reference for the register backends in vec_f32x4.go
// and vec_f64x4.go: every operation here is computed independently per
// coordinate with no cross-coordinate coupling, so there is nothing a
// padding lane could leak into.

// Vec is the scalar backend: three independent coordinates of element type T.
// The zero value is the zero vector.
type Vec[T Floats] struct {
	x, y, z T

	// inserted is the builder protocol counter, see builder.go.
	inserted uint8
}

// New returns the vector (x, y, z).
func New[T Floats](x, y, z T) Vec[T] {
	return Vec[T]{x: x, y: y, z: z}
}

// X returns the first coordinate.
func (v Vec[T]) X() T { return v.x }

// Y returns the second coordinate.
func (v Vec[T]) Y() T { return v.y }

// Z returns the third coordinate.
func (v Vec[T]) Z() T { return v.z }

// Set assigns all three coordinates and resets the builder counter, making
// the instance reusable for a new Begin/Next sequence.
func (v *Vec[T]) Set(x, y, z T) {
	v.x, v.y, v.z = x, y, z
	v.inserted = buildIdle
}

// Fill assigns the same scalar to all three coordinates.
func (v *Vec[T]) Fill(s T) {
	v.x, v.y, v.z = s, s, s
}

// Add returns v + o component-wise.
func (v Vec[T]) Add(o Vec[T]) Vec[T] {
	return Vec[T]{x: v.x + o.x, y: v.y + o.y, z: v.z + o.z}
}

// Sub returns v - o component-wise.
func (v Vec[T]) Sub(o Vec[T]) Vec[T] {
	return Vec[T]{x: v.x - o.x, y: v.y - o.y, z: v.z - o.z}
}

// Mul returns v * o component-wise.
func (v Vec[T]) Mul(o Vec[T]) Vec[T] {
	return Vec[T]{x: v.x * o.x, y: v.y * o.y, z: v.z * o.z}
}

// Div returns v / o component-wise. A zero coordinate in o yields Inf or
// NaN per IEEE semantics; there is no guard.
func (v Vec[T]) Div(o Vec[T]) Vec[T] {
	return Vec[T]{x: v.x / o.x, y: v.y / o.y, z: v.z / o.z}
}

// AddInPlace adds o to v component-wise.
func (v *Vec[T]) AddInPlace(o Vec[T]) {
	v.x += o.x
	v.y += o.y
	v.z += o.z
}

// SubInPlace subtracts o from v component-wise.
func (v *Vec[T]) SubInPlace(o Vec[T]) {
	v.x -= o.x
	v.y -= o.y
	v.z -= o.z
}

// MulInPlace multiplies v by o component-wise.
func (v *Vec[T]) MulInPlace(o Vec[T]) {
	v.x *= o.x
	v.y *= o.y
	v.z *= o.z
}

// DivInPlace divides v by o component-wise.
func (v *Vec[T]) DivInPlace(o Vec[T]) {
	v.x /= o.x
	v.y /= o.y
	v.z /= o.z
}

// AddScalar returns v with s added to every coordinate.
func (v Vec[T]) AddScalar(s T) Vec[T] {
	return Vec[T]{x: v.x + s, y: v.y + s, z: v.z + s}
}

// SubScalar returns v with s subtracted from every coordinate.
func (v Vec[T]) SubScalar(s T) Vec[T] {
	return Vec[T]{x: v.x - s, y: v.y - s, z: v.z - s}
}

// MulScalar returns v with every coordinate multiplied by s.
func (v Vec[T]) MulScalar(s T) Vec[T] {
	return Vec[T]{x: v.x * s, y: v.y * s, z: v.z * s}
}

// DivScalar returns v with every coordinate divided by s.
func (v Vec[T]) DivScalar(s T) Vec[T] {
	return Vec[T]{x: v.x / s, y: v.y / s, z: v.z / s}
}

// AddScalarInPlace adds s to every coordinate.
func (v *Vec[T]) AddScalarInPlace(s T) {
	v.x += s
	v.y += s
	v.z += s
}

// SubScalarInPlace subtracts s from every coordinate.
func (v *Vec[T]) SubScalarInPlace(s T) {
	v.x -= s
	v.y -= s
	v.z -= s
}

// MulScalarInPlace multiplies every coordinate by s.
func (v *Vec[T]) MulScalarInPlace(s T) {
	v.x *= s
	v.y *= s
	v.z *= s
}

// DivScalarInPlace divides every coordinate by s.
func (v *Vec[T]) DivScalarInPlace(s T) {
	v.x /= s
	v.y /= s
	v.z /= s
}

// Scale returns s * v. Scalar multiplication commutes, so this equals
// v.MulScalar(s); the free function exists for the natural s*v spelling.
func Scale[T Floats](s T, v Vec[T]) Vec[T] {
	return v.MulScalar(s)
}

// Dot returns the dot product of v and o.
func (v Vec[T]) Dot(o Vec[T]) T {
	return v.x*o.x + v.y*o.y + v.z*o.z
}

// Cross returns the cross product of v and o by the standard determinant
// expansion.
func (v Vec[T]) Cross(o Vec[T]) Vec[T] {
	return Vec[T]{
		x: v.y*o.z - v.z*o.y,
		y: v.z*o.x - v.x*o.z,
		z: v.x*o.y - v.y*o.x,
	}
}

// Length returns the Euclidean length of v.
func (v Vec[T]) Length() T {
	return T(math.Sqrt(float64(v.Dot(v))))
}

// RLength returns the reciprocal of the length of v.
func (v Vec[T]) RLength() T {
	return 1 / v.Length()
}

// Normalize returns v scaled to unit length. The receiver is not mutated.
// A zero vector yields NaN coordinates, matching IEEE division semantics.
func (v Vec[T]) Normalize() Vec[T] {
	abs := v.Length()
	return Vec[T]{x: v.x / abs, y: v.y / abs, z: v.z / abs}
}
