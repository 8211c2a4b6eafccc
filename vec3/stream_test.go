package vec3

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringFormat(t *testing.T) {
	v := New(1.5, -2.25, 3.0)
	assert.Equal(t, "1.5 -2.25 3 ", v.String())

	f := NewF32x4(1.5, -2.25, 3)
	assert.Equal(t, "1.5 -2.25 3 ", f.String())

	d := NewF64x4(1.5, -2.25, 3)
	assert.Equal(t, "1.5 -2.25 3 ", d.String())
}

func TestStringWorksWithFprint(t *testing.T) {
	var sb strings.Builder
	fmt.Fprint(&sb, New(1.0, 2.0, 3.0))
	assert.Equal(t, "1 2 3 ", sb.String())
}

func TestRoundTripScalar(t *testing.T) {
	v := New[Elem](1.5, -2.25, 3.0)
	var got Vec3
	require.NoError(t, got.Fscan(strings.NewReader(v.String())))
	assert.Equal(t, v, got)
}

func TestRoundTripF32x4(t *testing.T) {
	v := NewF32x4(1.5, -2.25, 3)
	var got F32x4
	require.NoError(t, got.Fscan(strings.NewReader(v.String())))
	assert.Equal(t, v.Lanes(), got.Lanes())
}

func TestRoundTripF64x4(t *testing.T) {
	v := NewF64x4(1.5, -2.25, 3)
	var got F64x4
	require.NoError(t, got.Fscan(strings.NewReader(v.String())))
	assert.Equal(t, v.Lanes(), got.Lanes())
}

// Two vectors written back to back stay token-separated thanks to the
// trailing space, and scan back in order.
func TestConsecutiveVectorsRoundTrip(t *testing.T) {
	var sb strings.Builder
	fmt.Fprint(&sb, New[Elem](1.0, 2.0, 3.0), New[Elem](4.0, 5.0, 6.0))

	r := strings.NewReader(sb.String())
	var a, b Vec3
	require.NoError(t, a.Fscan(r))
	require.NoError(t, b.Fscan(r))
	assert.Equal(t, New[Elem](1.0, 2.0, 3.0), a)
	assert.Equal(t, New[Elem](4.0, 5.0, 6.0), b)
}

func TestFscanShortInput(t *testing.T) {
	var v Vec3
	err := v.Fscan(strings.NewReader("1.5 2.5"))
	require.Error(t, err)
	// Tokens read before the error are kept, the rest untouched.
	assert.Equal(t, Elem(1.5), v.X())
	assert.Equal(t, Elem(2.5), v.Y())
	assert.Equal(t, Elem(0), v.Z())
}

func TestFscanMalformedToken(t *testing.T) {
	var v Vec3
	err := v.Fscan(strings.NewReader("1.5 bogus 3"))
	require.Error(t, err)
	assert.Equal(t, Elem(1.5), v.X())
}

func TestFscanLeavesPaddingAlone(t *testing.T) {
	v := LoadF64x4([4]float64{0, 0, 0, 42})
	require.NoError(t, v.Fscan(strings.NewReader("1 2 3")))
	assert.Equal(t, [4]float64{1, 2, 3, 42}, v.Lanes())
}
