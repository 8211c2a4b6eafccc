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

import (
	"fmt"
	"io"
)

// Textual interchange: a vector renders as three space-separated numeric
// tokens, each followed by one space ("x y z "), using default %v
// formatting of the element type. Fscan reads the same format back. The
// trailing space is part of the format so that consecutively written
// vectors stay token-separated.

// String renders v as "x y z " with a trailing space.
func (v Vec[T]) String() string {
	return fmt.Sprintf("%v %v %v ", v.x, v.y, v.z)
}

// Fscan reads three whitespace-separated numeric tokens from r into x, y, z
// in order. No validation beyond fmt's token scanning: on short or
// malformed input the coordinates already scanned keep their new values,
// the rest are untouched, and the fmt error is returned.
func (v *Vec[T]) Fscan(r io.Reader) error {
	_, err := fmt.Fscan(r, &v.x, &v.y, &v.z)
	return err
}

// String renders v as "x y z " with a trailing space. The padding lane is
// not part of the textual format.
func (v F32x4) String() string {
	return fmt.Sprintf("%v %v %v ", v.m[0], v.m[1], v.m[2])
}

// Fscan reads three whitespace-separated numeric tokens from r into x, y, z
// in order, leaving the padding lane untouched. Error semantics match
// Vec.Fscan.
func (v *F32x4) Fscan(r io.Reader) error {
	_, err := fmt.Fscan(r, &v.m[0], &v.m[1], &v.m[2])
	return err
}

// String renders v as "x y z " with a trailing space. The padding lane is
// not part of the textual format.
func (v F64x4) String() string {
	return fmt.Sprintf("%v %v %v ", v.m[0], v.m[1], v.m[2])
}

// Fscan reads three whitespace-separated numeric tokens from r into x, y, z
// in order, leaving the padding lane untouched. Error semantics match
// Vec.Fscan.
func (v *F64x4) Fscan(r io.Reader) error {
	_, err := fmt.Fscan(r, &v.m[0], &v.m[1], &v.m[2])
	return err
}
