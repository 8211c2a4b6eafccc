//go:build amd64

package vec3

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	switch {
	case cpu.X86.HasAVX2:
		// 256-bit double lanes plus vpermpd cross-half permutes: both
		// register backends accelerated.
		currentLevel = DispatchAVX2
		currentWidth = 32
	case cpu.X86.HasSSE41:
		// dpps masked dot reduction is SSE4.1; without it the narrow
		// backend's reductions fall back to scalar extracts.
		currentLevel = DispatchSSE41
		currentWidth = 16
	default:
		setScalarMode()
	}
}
