// Package vec3 provides a three-component vector value type with
// interchangeable storage backends.
//
// Three structurally parallel types implement one operation contract:
//
//   - Vec[T]: three scalar fields, any floating element type. The portable
//     correctness reference and the fallback for hardware without vector
//     extensions.
//   - F32x4: single precision packed into a 128-bit 4-lane register image
//     (3 coordinate lanes + 1 padding lane).
//   - F64x4: double precision packed into a 256-bit 4-lane register image
//     (3 coordinate lanes + 1 padding lane).
//
// Backend selection is static: use the concrete type, or alias one the way
// Vec3 aliases the scalar backend. There is no interface dispatch in the
// data path. CurrentLevel reports which backends the host CPU would
// accelerate.
//
// Basic usage:
//
//	a := vec3.New(1.0, 2.0, 3.0)
//	b := vec3.New(4.0, 5.0, 6.0)
//	c := a.Cross(b)
//	n := c.Normalize()
//
// Vectors are plain values: copying duplicates all lanes, no operation
// allocates, and instances are safe for concurrent use as long as no two
// goroutines write to the same instance.
package vec3

// Floats is the constraint for vector element types.
type Floats interface {
	~float32 | ~float64
}

// Builder protocol states, tracked per instance. The counter advances
// Begin -> Next -> Next and stays at buildThird until Set or Begin restarts
// the sequence.
const (
	buildIdle uint8 = iota
	buildFirst
	buildSecond
	buildThird
)
