// Package geodesic solves the direct and inverse geodesic problems on an
// ellipsoid of revolution.
//
// The algorithms are those of C. F. F. Karney, Algorithms for geodesics,
// J. Geodesy 87, 43-55 (2013). Results are accurate to round-off for
// |f| < 0.01 and remain usable for much larger flattening, including prolate
// ellipsoids (f < 0).
package geodesic

import (
	"fmt"
	"math"
)

const geographicLibGeodesicOrder = 6
const nA1 = geographicLibGeodesicOrder
const nC1 = geographicLibGeodesicOrder
const nC1p = geographicLibGeodesicOrder
const nA2 = geographicLibGeodesicOrder
const nC2 = geographicLibGeodesicOrder
const nA3 = geographicLibGeodesicOrder
const nA3x = nA3
const nC3 = geographicLibGeodesicOrder
const nC3x = (nC3 * (nC3 - 1)) / 2
const nC4 = geographicLibGeodesicOrder
const nC4x = (nC4 * (nC4 + 1)) / 2
const digits = 53
const maxIt1 = 20
const maxIt2 = maxIt1 + digits + 10

var (
	epsilon = math.Pow(2.0, 1-digits)
	tol0    = epsilon
	tol1    = 200 * tol0
	tol2    = math.Sqrt(tol0)
	tolb    = tol0 * tol2
	xthresh = 1000 * tol2
	tiny    = math.Sqrt(math.Pow(2.0, -1022))
)

// WGS84 is the World Geodetic System 1984 ellipsoid.
var WGS84 = MustNew(6378137, 1/298.257223563)

// Geodesic holds the constants of an ellipsoid and the coefficient tables
// derived from its third flattening. It is immutable once built and may be
// shared between goroutines.
type Geodesic struct {
	a, f, f1, e2, ep2, n, b, c2, etol2 float64

	a3x      []float64
	c3x, c4x [][]float64
}

// New builds a Geodesic for an ellipsoid with equatorial radius a (meters)
// and flattening f. A value f > 1 is taken to be the inverse flattening.
// Negative f gives a prolate ellipsoid.
//
// ErrInvalidParameter is returned if a or the polar semi-axis b = a (1 - f)
// is not a finite positive quantity.
func New(a, f float64) (*Geodesic, error) {
	if f > 1 {
		f = 1 / f
	}
	e2 := f * (2 - f)
	b := a * (1 - f)

	if !(!math.IsInf(a, 0) && a > 0) {
		return nil, fmt.Errorf("%w: equatorial radius %v is not positive", ErrInvalidParameter, a)
	}
	if !(!math.IsInf(b, 0) && b > 0) {
		return nil, fmt.Errorf("%w: polar semi-axis %v is not positive", ErrInvalidParameter, b)
	}

	// authalic radius squared
	var c2 float64
	switch {
	case e2 == 0:
		c2 = (sq(a) + sq(b)) / 2
	case e2 > 0:
		c2 = (sq(a) + sq(b)*math.Atanh(math.Sqrt(e2))/math.Sqrt(e2)) / 2
	default:
		c2 = (sq(a) + sq(b)*math.Atan(math.Sqrt(-e2))/math.Sqrt(-e2)) / 2
	}

	g := &Geodesic{
		a:   a,
		f:   f,
		f1:  1 - f,
		e2:  e2,
		ep2: e2 / sq(1-f),
		n:   f / (2 - f),
		b:   b,
		c2:  c2,
		// Below this sig12 a short line is solved on the auxiliary sphere
		// with an error under epsilon.
		etol2: 0.1 * tol2 / math.Sqrt(math.Max(0.001, math.Abs(f))*
			math.Min(1.0, 1-f/2)/2),
	}
	g.a3Coeff()
	g.c3Coeff()
	g.c4Coeff()
	return g, nil
}

// MustNew is like New but panics if the parameters are invalid.
func MustNew(a, f float64) *Geodesic {
	g, err := New(a, f)
	if err != nil {
		panic(err)
	}
	return g
}

// EquatorialRadius returns a in meters.
func (g *Geodesic) EquatorialRadius() float64 { return g.a }

// Flattening returns f.
func (g *Geodesic) Flattening() float64 { return g.f }

// PolarRadius returns b = a (1 - f) in meters.
func (g *Geodesic) PolarRadius() float64 { return g.b }

// AuthalicRadiusSquared returns c², the square of the radius of the sphere
// with the same area as the ellipsoid.
func (g *Geodesic) AuthalicRadiusSquared() float64 { return g.c2 }

// EllipsoidArea returns the total area of the ellipsoid in square meters.
func (g *Geodesic) EllipsoidArea() float64 { return 4 * math.Pi * g.c2 }

func (g *Geodesic) a3Coeff() {
	g.a3x = make([]float64, 0, nA3x)
	for _, p := range a3Coeff {
		g.a3x = append(g.a3x, p.eval(g.n))
	}
}

func (g *Geodesic) c3Coeff() {
	g.c3x = make([][]float64, len(c3Coeff))
	for l, ps := range c3Coeff {
		g.c3x[l] = make([]float64, len(ps))
		for k, p := range ps {
			g.c3x[l][k] = p.eval(g.n)
		}
	}
}

func (g *Geodesic) c4Coeff() {
	g.c4x = make([][]float64, len(c4Coeff))
	for l, ps := range c4Coeff {
		g.c4x[l] = make([]float64, len(ps))
		for k, p := range ps {
			g.c4x[l][k] = p.eval(g.n)
		}
	}
}
