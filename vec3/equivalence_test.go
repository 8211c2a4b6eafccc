package vec3

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// The backends must be numerically equivalent despite different storage
// and reduction strategies: the scalar backend is the reference, and each
// register backend must agree with it within a precision-appropriate
// tolerance on identical inputs.

// opResults flattens every contract operation on one input pair into
// comparable float64s.
type opResults struct {
	Add, Sub, Mul, Div [3]float64
	Cross              [3]float64
	Dot, Length        float64
}

func scalarResults(a, b Vec[float64]) opResults {
	flat := func(v Vec[float64]) [3]float64 { return [3]float64{v.X(), v.Y(), v.Z()} }
	return opResults{
		Add:    flat(a.Add(b)),
		Sub:    flat(a.Sub(b)),
		Mul:    flat(a.Mul(b)),
		Div:    flat(a.Div(b)),
		Cross:  flat(a.Cross(b)),
		Dot:    a.Dot(b),
		Length: a.Length(),
	}
}

func wideResults(a, b F64x4) opResults {
	flat := func(v F64x4) [3]float64 { return [3]float64{v.X(), v.Y(), v.Z()} }
	return opResults{
		Add:    flat(a.Add(b)),
		Sub:    flat(a.Sub(b)),
		Mul:    flat(a.Mul(b)),
		Div:    flat(a.Div(b)),
		Cross:  flat(a.Cross(b)),
		Dot:    a.Dot(b),
		Length: a.Length(),
	}
}

func narrowResults(a, b F32x4) opResults {
	flat := func(v F32x4) [3]float64 {
		return [3]float64{float64(v.X()), float64(v.Y()), float64(v.Z())}
	}
	return opResults{
		Add:    flat(a.Add(b)),
		Sub:    flat(a.Sub(b)),
		Mul:    flat(a.Mul(b)),
		Div:    flat(a.Div(b)),
		Cross:  flat(a.Cross(b)),
		Dot:    float64(a.Dot(b)),
		Length: float64(a.Length()),
	}
}

var equivalenceInputs = [][2][3]float64{
	{{1, 2, 3}, {4, 5, 6}},
	{{-1.5, 2.25, -3.75}, {0.5, -0.25, 8}},
	{{1e3, -2e3, 3e3}, {7, 11, 13}},
	{{0.001, 0.002, 0.003}, {-0.004, 0.005, -0.006}},
	{{3, 4, 0}, {1, 1, 1}},
}

func TestWideBackendMatchesScalar(t *testing.T) {
	approx := cmpopts.EquateApprox(1e-12, 0)
	for _, in := range equivalenceInputs {
		a, b := in[0], in[1]
		want := scalarResults(New(a[0], a[1], a[2]), New(b[0], b[1], b[2]))
		got := wideResults(NewF64x4(a[0], a[1], a[2]), NewF64x4(b[0], b[1], b[2]))
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("F64x4 vs scalar for %v: (-scalar +wide):\n%s", in, diff)
		}
	}
}

func TestNarrowBackendMatchesScalar(t *testing.T) {
	// Inputs cast to float32 first, so the float32 scalar backend is the
	// reference; comparison in float64 with single-precision tolerance.
	approx := cmpopts.EquateApprox(1e-6, 1e-6)
	for _, in := range equivalenceInputs {
		a, b := in[0], in[1]
		sa := New(float32(a[0]), float32(a[1]), float32(a[2]))
		sb := New(float32(b[0]), float32(b[1]), float32(b[2]))
		want := narrowFromScalar(sa, sb)
		got := narrowResults(
			NewF32x4(float32(a[0]), float32(a[1]), float32(a[2])),
			NewF32x4(float32(b[0]), float32(b[1]), float32(b[2])))
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("F32x4 vs scalar for %v: (-scalar +narrow):\n%s", in, diff)
		}
	}
}

func narrowFromScalar(a, b Vec[float32]) opResults {
	flat := func(v Vec[float32]) [3]float64 {
		return [3]float64{float64(v.X()), float64(v.Y()), float64(v.Z())}
	}
	return opResults{
		Add:    flat(a.Add(b)),
		Sub:    flat(a.Sub(b)),
		Mul:    flat(a.Mul(b)),
		Div:    flat(a.Div(b)),
		Cross:  flat(a.Cross(b)),
		Dot:    float64(a.Dot(b)),
		Length: float64(a.Length()),
	}
}
