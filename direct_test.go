package geodesic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectJFK(t *testing.T) {
	r := WGS84.Direct(40.63972222, -73.77888889, 53.5, 5850e3)
	assert.InDelta(t, 49.01467, r.Lat2, 0.5e-5)
	assert.InDelta(t, 2.56106, r.Lon2, 0.5e-5)
	assert.InDelta(t, 111.62947, r.Azi2, 0.5e-5)
	assert.Equal(t, 5850e3, r.S12)
	assert.True(t, r.Has(STANDARD))
	assert.False(t, r.Has(REDUCED_LENGTH))
}

func TestDirectThroughPole(t *testing.T) {
	r := WGS84.Direct(0.01777745589997, 30, 0, 10e6)
	assert.InDelta(t, 90, r.Lat2, 0.5e-5)
	if r.Lon2 < 0 {
		assert.InDelta(t, -150, r.Lon2, 0.5e-5)
		assert.InDelta(t, 180, math.Abs(r.Azi2), 0.5e-5)
	} else {
		assert.InDelta(t, 30, r.Lon2, 0.5e-5)
		assert.InDelta(t, 0, r.Azi2, 0.5e-5)
	}

	r = WGS84.Direct(90, 10, 180, -1e6)
	assert.InDelta(t, 81.04623, r.Lat2, 0.5e-5)
	assert.InDelta(t, -170, r.Lon2, 0.5e-5)
	assert.InDelta(t, 0, r.Azi2, 0.5e-5)
}

func TestDirectLongUnroll(t *testing.T) {
	r := WGS84.DirectWithMask(40, -75, -10, 2e7, STANDARD|LONG_UNROLL)
	assert.InDelta(t, -39, r.Lat2, 1)
	assert.InDelta(t, -254, r.Lon2, 1)
	assert.InDelta(t, -170, r.Azi2, 1)

	r = WGS84.Direct(40, -75, -10, 2e7)
	assert.InDelta(t, -39, r.Lat2, 1)
	assert.InDelta(t, 105, r.Lon2, 1)
	assert.InDelta(t, -170, r.Azi2, 1)

	l := WGS84.Line(40, -75, -10, STANDARD|DISTANCE_IN)
	r = l.Position(2e7, STANDARD|LONG_UNROLL)
	assert.InDelta(t, -254, r.Lon2, 1)
	r = l.Position(2e7, STANDARD)
	assert.InDelta(t, 105, r.Lon2, 1)

	r = WGS84.DirectWithMask(45, 0, -0.000000000000000003, 1e7, STANDARD|LONG_UNROLL)
	assert.InDelta(t, 45.30632, r.Lat2, 0.5e-5)
	assert.InDelta(t, -180, r.Lon2, 0.5e-5)
	assert.InDelta(t, 180, math.Abs(r.Azi2), 0.5e-5)
}

func TestDirectArea(t *testing.T) {
	g, err := New(6.4e6, -1/150.0)
	require.NoError(t, err)
	r := g.DirectWithMask(1, 2, 3, 4, AREA)
	assert.InDelta(t, 23700, r.Area, 0.5)
	assert.True(t, r.Has(AREA))
}

func TestDirectLargeFlattening(t *testing.T) {
	g, err := New(6.4e6, 0.1)
	require.NoError(t, err)
	r := g.Direct(1, 2, 10, 5e6)
	assert.InDelta(t, 48.55570690, r.A12, 0.5e-8)
}

func TestDirectMatchesInverseOutputs(t *testing.T) {
	inv := WGS84.InverseWithMask(54.1589, 15.3872, 54.1591, 15.3877, ALL)
	dir := WGS84.DirectWithMask(54.1589, 15.3872, inv.Azi1, inv.S12, ALL)
	assert.InDelta(t, 54.1591, dir.Lat2, 1e-12)
	assert.InDelta(t, 15.3877, dir.Lon2, 1e-12)
	assert.InDelta(t, inv.Azi2, dir.Azi2, 1e-9)
	assert.InDelta(t, inv.A12, dir.A12, 1e-12)
	assert.InDelta(t, inv.ReducedLength, dir.ReducedLength, 1e-9)
	assert.InDelta(t, inv.M12, dir.M12, 1e-12)
	assert.InDelta(t, inv.M21, dir.M21, 1e-12)
	assert.InDelta(t, inv.Area, dir.Area, 1e-3)
	assert.True(t, dir.Has(ALL))
}

func TestArcDirect(t *testing.T) {
	r := WGS84.Direct(-30, 100, 45, 7e6)
	a := WGS84.ArcDirect(-30, 100, 45, r.A12, STANDARD)
	assert.InDelta(t, r.Lat2, a.Lat2, 1e-12)
	assert.InDelta(t, r.Lon2, a.Lon2, 1e-12)
	assert.InDelta(t, r.Azi2, a.Azi2, 1e-12)
	assert.InDelta(t, 7e6, a.S12, 1e-6)
	assert.Equal(t, r.A12, a.A12)
	assert.True(t, a.Has(DISTANCE))
}

func TestDirectZeroDistance(t *testing.T) {
	r := WGS84.DirectWithMask(12, 34, 56, 0, ALL)
	assert.InDelta(t, 12, r.Lat2, 1e-13)
	assert.InDelta(t, 34, r.Lon2, 1e-13)
	assert.InDelta(t, 56, r.Azi2, 1e-13)
	assert.InDelta(t, 0, r.A12, 1e-12)
	assert.InDelta(t, 0, r.ReducedLength, 1e-9)
	assert.InDelta(t, 1, r.M12, 1e-15)
	assert.InDelta(t, 0, r.Area, 1e-2)
}

func TestDirectNonFinite(t *testing.T) {
	r := WGS84.Direct(0, 0, 90, math.Inf(1))
	assert.True(t, math.IsNaN(r.Lat2))
	assert.True(t, math.IsNaN(r.Lon2))

	r = WGS84.Direct(math.NaN(), 0, 90, 1000)
	assert.True(t, math.IsNaN(r.Lat2))
}

func TestLinePositionsMatchDirect(t *testing.T) {
	l := NewLine(WGS84, 10, -20, 30, STANDARD|DISTANCE_IN)
	assert.Equal(t, 10.0, l.Latitude())
	assert.Equal(t, -20.0, l.Longitude())
	assert.Equal(t, 30.0, l.Azimuth())
	assert.True(t, l.Capabilities()&DISTANCE_IN == DISTANCE_IN)

	for s := 0.0; s <= 2e7; s += 1e6 {
		p := l.Position(s, STANDARD)
		d := WGS84.Direct(10, -20, 30, s)
		assert.Equal(t, d.Lat2, p.Lat2, "s=%v", s)
		assert.Equal(t, d.Lon2, p.Lon2, "s=%v", s)
		assert.Equal(t, d.Azi2, p.Azi2, "s=%v", s)
	}
}

func TestLineWithoutDistanceIn(t *testing.T) {
	l := NewLine(WGS84, 10, -20, 30, LATITUDE|LONGITUDE)
	r := l.Position(1e6, STANDARD)
	assert.True(t, math.IsNaN(r.Lat2))
	assert.Equal(t, 1e6, r.S12)

	r = l.ArcPosition(10, LATITUDE|LONGITUDE)
	assert.False(t, math.IsNaN(r.Lat2))
	assert.False(t, math.IsNaN(r.Lon2))
	// not requested at construction
	assert.True(t, math.IsNaN(r.S12))
	assert.False(t, r.Has(DISTANCE))
}

func TestInverseLine(t *testing.T) {
	inv := WGS84.Inverse(-41.32, 174.81, 40.96, -5.50)
	l := WGS84.InverseLine(-41.32, 174.81, 40.96, -5.50, STANDARD|DISTANCE_IN)
	assert.InDelta(t, inv.Azi1, l.Azimuth(), 1e-12)

	r := l.Position(inv.S12, STANDARD)
	assert.InDelta(t, 40.96, r.Lat2, 1e-9)
	assert.InDelta(t, -5.50, r.Lon2, 1e-9)
	assert.InDelta(t, inv.Azi2, r.Azi2, 1e-9)

	mid := l.Position(inv.S12/2, STANDARD)
	a := WGS84.Inverse(-41.32, 174.81, mid.Lat2, mid.Lon2)
	b := WGS84.Inverse(mid.Lat2, mid.Lon2, 40.96, -5.50)
	assert.InDelta(t, a.S12, b.S12, 1e-6)
}
