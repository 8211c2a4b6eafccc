package vec3

import (
	"os"
	"strconv"
)

// Backend selection is compile-time, but callers picking between the
// scalar and register backends still want to know what the host would
// accelerate. The dispatch level is detected once at init by the
// architecture-specific files (dispatch_amd64.go, dispatch_arm64.go,
// dispatch_other.go) and only reported; it never changes behavior inside
// this package.

// DispatchLevel identifies the widest vector extension the host CPU offers
// for the register backends.
type DispatchLevel int

const (
	// DispatchScalar indicates no usable vector extension; only the
	// scalar backend runs at native width.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE41 indicates 128-bit float lanes with masked dot
	// reduction (dpps), accelerating the narrow backend.
	DispatchSSE41

	// DispatchAVX2 indicates 256-bit double lanes with cross-half
	// permutes (vpermpd), accelerating both register backends.
	DispatchAVX2

	// DispatchNEON indicates ARM 128-bit lanes, accelerating the narrow
	// backend.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE41:
		return "sse4.1"
	case DispatchAVX2:
		return "avx2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this host.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the widest usable register width in bytes.
// Set by init() in dispatch_*.go files.
var currentWidth int

// CurrentLevel returns the detected vector extension level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the widest usable register width in bytes:
// 16 for SSE4.1/NEON, 32 for AVX2, 16 in scalar mode for consistency.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the human-readable name of the detected level.
func CurrentName() string {
	return currentLevel.String()
}

// HasNarrow reports whether the host accelerates the 128-bit narrow
// backend (F32x4).
func HasNarrow() bool {
	return currentLevel != DispatchScalar
}

// HasWide reports whether the host accelerates the 256-bit wide backend
// (F64x4).
func HasWide() bool {
	return currentLevel == DispatchAVX2
}

// NoSimdEnv checks the VEC3_NO_SIMD environment variable. When set, the
// capability report is forced to scalar regardless of the CPU. Useful for
// testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("VEC3_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value counts, but honor an explicit "false".
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
}
