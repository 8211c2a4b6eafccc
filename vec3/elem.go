//go:build !vec3f32

package vec3

// Elem is the element type of the default scalar backend. Double precision
// unless the vec3f32 build tag selects single precision.
type Elem = float64

// Vec3 is the default vector type: the scalar backend at the configured
// precision. Code that wants a register backend uses F32x4 or F64x4
// directly.
type Vec3 = Vec[Elem]
