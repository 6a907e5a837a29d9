package geodesic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinCosSeriesMatchesDirectSum(t *testing.T) {
	c := []float64{0, 0.3, -0.2, 0.1, 0.05, -0.025, 0.0125}
	for _, x := range []float64{-2.5, -0.3, 0, 0.4, 1.2, 3} {
		s, co := math.Sin(x), math.Cos(x)

		want := 0.0
		for i := 1; i < len(c); i++ {
			want += c[i] * math.Sin(2*float64(i)*x)
		}
		assert.InDelta(t, want, sinCosSeries(true, s, co, c), 1e-14, "sin series x=%v", x)

		want = 0.0
		for i := 0; i < len(c); i++ {
			want += c[i] * math.Cos(float64(2*i+1)*x)
		}
		assert.InDelta(t, want, sinCosSeries(false, s, co, c), 1e-14, "cos series x=%v", x)
	}
}

func TestSinCosSeriesOddLength(t *testing.T) {
	c := []float64{0.5, 0.25, 0.125}
	x := 0.7
	want := 0.5*math.Cos(x) + 0.25*math.Cos(3*x) + 0.125*math.Cos(5*x)
	assert.InDelta(t, want, sinCosSeries(false, math.Sin(x), math.Cos(x), c), 1e-15)
}

func TestCoefficientTableSizes(t *testing.T) {
	// A1 and A2 are polynomials in eps^2.
	assert.Equal(t, nA1/2, a1Coeff.degree())
	assert.Equal(t, nA2/2, a2Coeff.degree())
	assert.Len(t, a3Coeff, nA3)
	assert.Len(t, c1Coeff, nC1)
	assert.Len(t, c1pCoeff, nC1p)
	assert.Len(t, c2Coeff, nC2)

	total := 0
	for _, row := range WGS84.c3x {
		total += len(row)
	}
	assert.Equal(t, nC3x, total)

	total = 0
	for _, row := range WGS84.c4x {
		total += len(row)
	}
	assert.Equal(t, nC4x, total)
	assert.Len(t, WGS84.a3x, nA3x)
}

func TestScaleFactorsVanishOnSphere(t *testing.T) {
	assert.Equal(t, 0.0, a1m1f(0))
	assert.Equal(t, 0.0, a2m1f(0))

	sphere := MustNew(6371e3, 0)
	assert.InDelta(t, 1.0, sphere.a3f(0), 1e-15)
}

// The C1p series inverts the C1 series: tau = sig + B1(sig) gives back
// sig = tau + B1p(tau) up to truncation.
func TestC1pInvertsC1(t *testing.T) {
	eps := 0.01
	c1 := make([]float64, nC1+1)
	c1p := make([]float64, nC1p+1)
	c1f(eps, c1)
	c1pf(eps, c1p)

	for _, sig := range []float64{0.1, 0.7, 1.5, 2.9} {
		tau := sig + sinCosSeries(true, math.Sin(sig), math.Cos(sig), c1)
		back := tau + sinCosSeries(true, math.Sin(tau), math.Cos(tau), c1p)
		assert.InDelta(t, sig, back, 1e-12, "sig=%v", sig)
	}
}

func TestRatPolyEval(t *testing.T) {
	// (2x^2 + 3x + 4) / 8
	p := ratPoly{2, 3, 4, 8}
	require.Equal(t, 2, p.degree())
	assert.Equal(t, 2.25, p.eval(1))
	assert.Equal(t, 0.5, p.eval(0))
}

func TestAstroidRoot(t *testing.T) {
	// k is the positive root of
	// k^4 + 2 k^3 - (x^2 + y^2 - 1) k^2 - 2 y^2 k - y^2 = 0
	tests := []struct{ x, y float64 }{
		{-0.5, 0.3},
		{-1.2, 0.01},
		{0.2, -2},
		{-3, 1.5},
		{1.5, 0},
	}
	for _, tt := range tests {
		k := astroid(tt.x, tt.y)
		require.Greater(t, k, 0.0, "x=%v y=%v", tt.x, tt.y)
		p, q := sq(tt.x), sq(tt.y)
		res := k*k*k*k + 2*k*k*k - (p+q-1)*k*k - 2*q*k - q
		scale := math.Max(1, k*k*k*k)
		assert.InDelta(t, 0, res/scale, 1e-12, "x=%v y=%v k=%v", tt.x, tt.y, k)
	}
	assert.Equal(t, 0.0, astroid(0.5, 0))
	assert.Equal(t, 0.0, astroid(-1, 0))
}
