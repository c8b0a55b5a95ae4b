package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kaleido/transform"
)

const eps = 1e-9

func TestCompose_EmptyIsIdentity(t *testing.T) {
	require.Equal(t, transform.Mat2{A: 1, B: 0, C: 0, D: 1}, transform.Compose(nil))
	require.Equal(t, transform.Identity(), transform.Compose([]float64{}))
}

func TestReflection_MatchesDoubleAngleForm(t *testing.T) {
	for _, theta := range []float64{0, math.Pi / 6, math.Pi / 2, 7 * math.Pi / 6, 11 * math.Pi / 6, 1.234} {
		want := transform.Mat2{
			A: -math.Cos(2 * theta),
			B: -math.Sin(2 * theta),
			C: -math.Sin(2 * theta),
			D: math.Cos(2 * theta),
		}
		got := transform.Compose([]float64{theta})
		require.True(t, got.ApproxEqual(want, eps), "theta=%v: got %+v want %+v", theta, got, want)
		require.Equal(t, transform.Reflection(theta), got)
	}
}

func TestReflection_Properties(t *testing.T) {
	for _, theta := range []float64{math.Pi / 6, math.Pi / 2, 3 * math.Pi / 2, 0.3} {
		r := transform.Reflection(theta)
		require.InDelta(t, -1, r.Det(), eps)
		require.True(t, r.Mul(r).ApproxEqual(transform.Identity(), eps))

		// The direction theta itself is flipped.
		x, y := r.Apply(math.Cos(theta), math.Sin(theta))
		require.InDelta(t, -math.Cos(theta), x, eps)
		require.InDelta(t, -math.Sin(theta), y, eps)
	}
}

func TestCompose_OrderMatters(t *testing.T) {
	t1, t2 := math.Pi/2, 7*math.Pi/6
	ab := transform.Compose([]float64{t1, t2})
	ba := transform.Compose([]float64{t2, t1})
	require.False(t, ab.ApproxEqual(ba, eps))

	// Path order means the first reflection is applied first.
	want := transform.Reflection(t2).Mul(transform.Reflection(t1))
	require.True(t, ab.ApproxEqual(want, eps))
	require.InDelta(t, 1, ab.Det(), eps)
}

func TestCompose_ExplicitRecurrence(t *testing.T) {
	path := []float64{math.Pi / 2, math.Pi / 6, 7 * math.Pi / 6, 5 * math.Pi / 6}
	a, b, c, d := 1.0, 0.0, 0.0, 1.0
	for _, angle := range path {
		cos, sin := math.Cos(angle), math.Sin(angle)
		a2 := -math.Pow(cos, 2) + math.Pow(sin, 2)
		b2 := -2 * cos * sin
		c2 := -2 * cos * sin
		d2 := math.Pow(cos, 2) - math.Pow(sin, 2)
		a, b, c, d = a2*a+c2*b, b2*a+d2*b, a2*c+c2*d, b2*c+d2*d
	}
	got := transform.Compose(path)
	require.True(t, got.ApproxEqual(transform.Mat2{A: a, B: b, C: c, D: d}, 1e-12))
	require.InDelta(t, 1, math.Abs(got.Det()), eps)
}

func TestMat2_CSS(t *testing.T) {
	require.Equal(t, "matrix(1.00,0.00,0.00,1.00,0,0)", transform.Identity().CSS(2))
	m := transform.Mat2{A: 0.5, B: -0.866025, C: -0.866025, D: -0.5}
	require.Equal(t, "matrix(0.50,-0.87,-0.87,-0.50,0,0)", m.CSS(2))
}
