//go:build !amd64 && !arm64

package vec3

func init() {
	// Other architectures report scalar mode for now. The register
	// backends still run there; they just emulate the lane semantics.
	setScalarMode()
}
