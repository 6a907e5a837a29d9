// Package s2geo exposes the ellipsoidal solver through s2 types.
package s2geo

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/lazylynx/geodesic"
)

// Spheroid is an ellipsoid of revolution that accepts s2 coordinates.
type Spheroid struct {
	g            *geodesic.Geodesic
	sphereRadius float64
}

// WGS84Spheroid is the WGS84 ellipsoid.
var WGS84Spheroid = NewSpheroidFromGeodesic(geodesic.WGS84)

// NewSpheroid creates a spheroid from an equatorial radius (meters) and a
// flattening.
func NewSpheroid(radius, flattening float64) (*Spheroid, error) {
	g, err := geodesic.New(radius, flattening)
	if err != nil {
		return nil, err
	}
	return NewSpheroidFromGeodesic(g), nil
}

// NewSpheroidFromGeodesic wraps an existing solver.
func NewSpheroidFromGeodesic(g *geodesic.Geodesic) *Spheroid {
	return &Spheroid{
		g:            g,
		sphereRadius: (2*g.EquatorialRadius() + g.PolarRadius()) / 3,
	}
}

// Geodesic returns the underlying solver.
func (s *Spheroid) Geodesic() *geodesic.Geodesic { return s.g }

// SphereRadius returns the mean radius (2a + b) / 3, for callers that fall
// back to spherical approximations.
func (s *Spheroid) SphereRadius() float64 { return s.sphereRadius }

// Inverse returns the distance in meters and the azimuths in degrees at a
// and b of the geodesic from a to b.
func (s *Spheroid) Inverse(a, b s2.LatLng) (s12, az1, az2 float64) {
	r := s.g.Inverse(a.Lat.Degrees(), a.Lng.Degrees(), b.Lat.Degrees(), b.Lng.Degrees())
	return r.S12, r.Azi1, r.Azi2
}

// InverseBatch returns the sum of the lengths of the geodesics joining
// consecutive points.
func (s *Spheroid) InverseBatch(points []s2.Point) float64 {
	sum := 0.0
	for i := 1; i < len(points); i++ {
		a := s2.LatLngFromPoint(points[i-1])
		b := s2.LatLngFromPoint(points[i])
		sum += s.g.InverseWithMask(a.Lat.Degrees(), a.Lng.Degrees(),
			b.Lat.Degrees(), b.Lng.Degrees(), geodesic.DISTANCE).S12
	}
	return sum
}

// ArcLength returns the length of the geodesic from a to b measured on the
// auxiliary sphere.
func (s *Spheroid) ArcLength(a, b s2.LatLng) s1.Angle {
	r := s.g.InverseWithMask(a.Lat.Degrees(), a.Lng.Degrees(), b.Lat.Degrees(), b.Lng.Degrees(), 0)
	return s1.Angle(r.A12) * s1.Degree
}

// Direct returns the point s12 meters from p along the geodesic with
// initial azimuth az1 degrees, and the azimuth there.
func (s *Spheroid) Direct(p s2.LatLng, az1, s12 float64) (s2.LatLng, float64) {
	r := s.g.Direct(p.Lat.Degrees(), p.Lng.Degrees(), az1, s12)
	return s2.LatLngFromDegrees(r.Lat2, r.Lon2), r.Azi2
}
