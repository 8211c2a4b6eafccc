//go:build vec3f32

package vec3

// Elem is the element type of the default scalar backend. Single precision,
// selected by the vec3f32 build tag.
type Elem = float32

// Vec3 is the default vector type: the scalar backend at the configured
// precision.
type Vec3 = Vec[Elem]
