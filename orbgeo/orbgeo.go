// Package orbgeo measures orb geometries on an ellipsoid. Points are
// [lon, lat] in degrees, following the orb convention.
package orbgeo

import (
	"github.com/lazylynx/geodesic"
	"github.com/paulmach/orb"
)

// Distance returns the geodesic distance in meters between p1 and p2.
func Distance(g *geodesic.Geodesic, p1, p2 orb.Point) float64 {
	return g.InverseWithMask(p1.Lat(), p1.Lon(), p2.Lat(), p2.Lon(), geodesic.DISTANCE).S12
}

// Bearing returns the azimuth in degrees, clockwise from north, at from of
// the geodesic to to. The result is in [-180, 180].
func Bearing(g *geodesic.Geodesic, from, to orb.Point) float64 {
	return g.InverseWithMask(from.Lat(), from.Lon(), to.Lat(), to.Lon(), geodesic.AZIMUTH).Azi1
}

// PointAtBearingAndDistance returns the point reached by travelling
// distance meters from p with initial azimuth bearing degrees.
func PointAtBearingAndDistance(g *geodesic.Geodesic, p orb.Point, bearing, distance float64) orb.Point {
	r := g.DirectWithMask(p.Lat(), p.Lon(), bearing, distance, geodesic.LATITUDE|geodesic.LONGITUDE)
	return orb.Point{r.Lon2, r.Lat2}
}

// Midpoint returns the point halfway along the geodesic from p1 to p2.
func Midpoint(g *geodesic.Geodesic, p1, p2 orb.Point) orb.Point {
	inv := g.InverseWithMask(p1.Lat(), p1.Lon(), p2.Lat(), p2.Lon(), geodesic.AZIMUTH|geodesic.DISTANCE)
	return PointAtBearingAndDistance(g, p1, inv.Azi1, inv.S12/2)
}

// Length returns the length in meters of the geometry: the perimeter for
// areal geometries and zero for points.
func Length(g *geodesic.Geodesic, geom orb.Geometry) float64 {
	switch geom := geom.(type) {
	case orb.Point, orb.MultiPoint:
		return 0
	case orb.LineString:
		return lineLength(g, geom)
	case orb.MultiLineString:
		sum := 0.0
		for _, ls := range geom {
			sum += lineLength(g, ls)
		}
		return sum
	case orb.Ring:
		return lineLength(g, orb.LineString(geom))
	case orb.Polygon:
		sum := 0.0
		for _, r := range geom {
			sum += lineLength(g, orb.LineString(r))
		}
		return sum
	case orb.MultiPolygon:
		sum := 0.0
		for _, p := range geom {
			sum += Length(g, p)
		}
		return sum
	case orb.Collection:
		sum := 0.0
		for _, c := range geom {
			sum += Length(g, c)
		}
		return sum
	case orb.Bound:
		return Length(g, geom.ToRing())
	}
	return 0
}

func lineLength(g *geodesic.Geodesic, ls orb.LineString) float64 {
	sum := 0.0
	for i := 1; i < len(ls); i++ {
		sum += Distance(g, ls[i-1], ls[i])
	}
	return sum
}
