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

import "log/slog"

// Incremental builder: sequential assignment of the three coordinates as an
// alternative to New or Set.
//
//	var v vec3.Vec3
//	v.Begin(1.0).Next(2.0).Next(3.0) // v is now (1, 2, 3)
//
// Each instance carries a four-state counter: Idle -> First -> Second ->
// Third (terminal). Begin is the only legal entry and always (re)arms the
// sequence. Next advances First->Second (assigns y) and Second->Third
// (assigns z). Next while Idle, or past Third, is a reported, non-fatal
// usage error: a diagnostic goes to the package logger and the vector is
// returned unmodified.
//
// The counter does not reset on reaching Third: an instance that completed
// a sequence is terminal until Set (which resets the counter) or a fresh
// Begin. Arithmetic never touches the counter.

// chainNext is the shared continuation transition. It assigns through putY
// or putZ according to the state and advances it, or reports misuse and
// leaves the vector alone.
func chainNext[T Floats](state *uint8, putY, putZ func(T), val T) {
	switch *state {
	case buildFirst:
		putY(val)
		*state = buildSecond
	case buildSecond:
		putZ(val)
		*state = buildThird
	case buildIdle:
		logger().Error("vec3: Next without Begin; vector unchanged",
			slog.Float64("value", float64(val)))
	default:
		logger().Error("vec3: Next after three coordinates; vector unchanged",
			slog.Float64("value", float64(val)))
	}
}

// Begin starts (or restarts) an insertion sequence, assigning the first
// coordinate. Returns the receiver for chaining.
func (v *Vec[T]) Begin(x T) *Vec[T] {
	v.x = x
	v.inserted = buildFirst
	return v
}

// Next assigns the second, then the third coordinate of a sequence started
// by Begin. Out-of-sequence calls are reported and ignored. Returns the
// receiver for chaining.
func (v *Vec[T]) Next(val T) *Vec[T] {
	chainNext(&v.inserted,
		func(t T) { v.y = t },
		func(t T) { v.z = t },
		val)
	return v
}

// Begin starts (or restarts) an insertion sequence, assigning the first
// coordinate. Returns the receiver for chaining.
func (v *F32x4) Begin(x float32) *F32x4 {
	v.m[0] = x
	v.inserted = buildFirst
	return v
}

// Next assigns the second, then the third coordinate of a sequence started
// by Begin. Out-of-sequence calls are reported and ignored. Returns the
// receiver for chaining.
func (v *F32x4) Next(val float32) *F32x4 {
	chainNext(&v.inserted,
		func(t float32) { v.m[1] = t },
		func(t float32) { v.m[2] = t },
		val)
	return v
}

// Begin starts (or restarts) an insertion sequence, assigning the first
// coordinate. Returns the receiver for chaining.
func (v *F64x4) Begin(x float64) *F64x4 {
	v.m[0] = x
	v.inserted = buildFirst
	return v
}

// Next assigns the second, then the third coordinate of a sequence started
// by Begin. Out-of-sequence calls are reported and ignored. Returns the
// receiver for chaining.
func (v *F64x4) Next(val float64) *F64x4 {
	chainNext(&v.inserted,
		func(t float64) { v.m[1] = t },
		func(t float64) { v.m[2] = t },
		val)
	return v
}
