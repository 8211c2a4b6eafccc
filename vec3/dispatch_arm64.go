//go:build arm64

package vec3

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// NEON (ASIMD) is part of the ARMv8-A base architecture, so this is
	// effectively always true on arm64. Checked anyway for consistency
	// with the amd64 path.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit; no 256-bit double lanes
	} else {
		setScalarMode()
	}
}
