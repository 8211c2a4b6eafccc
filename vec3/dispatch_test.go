package vec3

import "testing"

func TestDispatchLevelString(t *testing.T) {
	cases := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE41, "sse4.1"},
		{DispatchAVX2, "avx2"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.level.String(); got != tc.want {
			t.Errorf("DispatchLevel(%d).String(): got %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestCurrentReportConsistency(t *testing.T) {
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName %q != CurrentLevel().String() %q", CurrentName(), CurrentLevel().String())
	}
	if w := CurrentWidth(); w != 16 && w != 32 {
		t.Errorf("CurrentWidth: got %d, want 16 or 32", w)
	}
	if HasWide() && !HasNarrow() {
		t.Error("HasWide implies HasNarrow")
	}
	if HasWide() && CurrentWidth() < 32 {
		t.Errorf("HasWide with width %d", CurrentWidth())
	}
}

func TestNoSimdEnv(t *testing.T) {
	cases := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}
	for _, tc := range cases {
		t.Setenv("VEC3_NO_SIMD", tc.val)
		if got := NoSimdEnv(); got != tc.want {
			t.Errorf("NoSimdEnv with %q: got %v, want %v", tc.val, got, tc.want)
		}
	}
}
