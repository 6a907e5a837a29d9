package geodesic

// Direct solves the direct geodesic problem: starting at (lat1, lon1) with
// azimuth azi1 (degrees), travel s12 meters along the geodesic. s12 may be
// negative. The STANDARD outputs are returned.
func (g *Geodesic) Direct(lat1, lon1, azi1, s12 float64) Result {
	return g.GenDirect(lat1, lon1, azi1, false, s12, STANDARD)
}

// DirectWithMask is like Direct but computes the outputs selected by
// outmask.
func (g *Geodesic) DirectWithMask(lat1, lon1, azi1, s12 float64, outmask int) Result {
	return g.GenDirect(lat1, lon1, azi1, false, s12, outmask)
}

// ArcDirect solves the direct problem with the length of the geodesic given
// as the arc length a12 on the auxiliary sphere, in degrees.
func (g *Geodesic) ArcDirect(lat1, lon1, azi1, a12 float64, outmask int) Result {
	return g.GenDirect(lat1, lon1, azi1, true, a12, outmask)
}

// GenDirect is the general direct problem. With arcmode, s12a12 is the arc
// length in degrees, otherwise the distance in meters.
func (g *Geodesic) GenDirect(lat1, lon1, azi1 float64, arcmode bool, s12a12 float64, outmask int) Result {
	caps := outmask
	if !arcmode {
		// a distance needs the reverted series
		caps |= DISTANCE_IN
	}
	return NewLine(g, lat1, lon1, azi1, caps).GenPosition(arcmode, s12a12, outmask)
}

// Line returns the geodesic line starting at (lat1, lon1) with azimuth
// azi1. See NewLine.
func (g *Geodesic) Line(lat1, lon1, azi1 float64, caps int) *Line {
	return NewLine(g, lat1, lon1, azi1, caps)
}

// InverseLine returns the geodesic line from (lat1, lon1) through
// (lat2, lon2), with the azimuth found by the inverse solver.
func (g *Geodesic) InverseLine(lat1, lon1, lat2, lon2 float64, caps int) *Line {
	v := g.genInverse(lat1, lon1, lat2, lon2, 0)
	return NewLine(g, lat1, lon1, atan2d(v.salp1, v.calp1), caps)
}
