package geodesic

import "math"

// Line is a geodesic starting at a given point with a given azimuth. The
// series coefficients for the requested capabilities are computed once, so
// evaluating several positions on the same line is cheaper than repeated
// calls to Direct. A Line is immutable and may be shared between goroutines.
type Line struct {
	lat1, lon1, azi1 float64
	a, f, b, c2, f1  float64
	salp1, calp1     float64
	dn1              float64
	salp0, calp0     float64
	ssig1, csig1     float64
	somg1, comg1     float64
	stau1, ctau1     float64
	k2               float64
	caps             int

	A1m1, A2m1, A3c, A4      float64
	B11, B21, B31, B41       float64
	C1a, C1pa, C2a, C3a, C4a []float64
}

// NewLine returns the geodesic through (lat1, lon1) with azimuth azi1, all
// in degrees. caps selects the outputs GenPosition will be able to return;
// include DISTANCE_IN to position the line by distance. LATITUDE, AZIMUTH
// and LONG_UNROLL are always included.
func NewLine(g *Geodesic, lat1, lon1, azi1 float64, caps int) *Line {
	l := &Line{
		a:    g.a,
		f:    g.f,
		b:    g.b,
		c2:   g.c2,
		f1:   g.f1,
		caps: caps | LATITUDE | AZIMUTH | LONG_UNROLL,
		lat1: latFix(lat1),
		lon1: lon1,
		azi1: angNormalize(azi1),

		C1a:  make([]float64, nC1+1),
		C1pa: make([]float64, nC1p+1),
		C2a:  make([]float64, nC2+1),
		C3a:  make([]float64, nC3),
		C4a:  make([]float64, nC4),
	}
	l.salp1, l.calp1 = sincosd(angRound(azi1))

	sbet1, cbet1 := sincosd(angRound(l.lat1))
	sbet1 *= l.f1
	// Poles get a tiny positive cbet1 so the azimuth stays meaningful.
	sbet1, cbet1 = norm(sbet1, cbet1)
	cbet1 = math.Max(tiny, cbet1)
	l.dn1 = math.Sqrt(1 + g.ep2*sq(sbet1))

	// Equatorial azimuth by Clairaut's relation.
	l.salp0 = l.salp1 * cbet1
	l.calp0 = math.Hypot(l.calp1, l.salp1*sbet1)
	// Arc and spherical longitude of the start. sig = 0 is the nearest northward crossing of the equator; an
	// equatorial line starts at sig1 = 0.
	l.ssig1 = sbet1
	l.somg1 = l.salp0 * sbet1
	if sbet1 != 0 || l.calp1 != 0 {
		l.csig1 = cbet1 * l.calp1
	} else {
		l.csig1 = 1
	}
	l.comg1 = l.csig1
	l.ssig1, l.csig1 = norm(l.ssig1, l.csig1)
	// somg1 and comg1 only ever appear as a ratio.

	l.k2 = sq(l.calp0) * g.ep2
	eps := l.k2 / (2*(1+math.Sqrt(1+l.k2)) + l.k2)

	if l.caps&capC1 > 0 {
		l.A1m1 = a1m1f(eps)
		c1f(eps, l.C1a)
		l.B11 = sinCosSeries(true, l.ssig1, l.csig1, l.C1a)
		s := math.Sin(l.B11)
		c := math.Cos(l.B11)
		// Rotate sig1 by B11 to get tau1.
		l.stau1 = l.ssig1*c + l.csig1*s
		l.ctau1 = l.csig1*c - l.ssig1*s
	}
	if l.caps&capC1p > 0 {
		c1pf(eps, l.C1pa)
	}
	if l.caps&capC2 > 0 {
		l.A2m1 = a2m1f(eps)
		c2f(eps, l.C2a)
		l.B21 = sinCosSeries(true, l.ssig1, l.csig1, l.C2a)
	}
	if l.caps&capC3 > 0 {
		g.c3f(eps, l.C3a)
		l.A3c = -l.f * l.salp0 * g.a3f(eps)
		l.B31 = sinCosSeries(true, l.ssig1, l.csig1, l.C3a)
	}
	if l.caps&capC4 > 0 {
		g.c4f(eps, l.C4a)
		l.A4 = sq(l.a) * l.calp0 * l.salp0 * g.e2
		l.B41 = sinCosSeries(false, l.ssig1, l.csig1, l.C4a)
	}
	return l
}

// Latitude returns the latitude of the starting point in degrees.
func (l *Line) Latitude() float64 { return l.lat1 }

// Longitude returns the longitude of the starting point in degrees.
func (l *Line) Longitude() float64 { return l.lon1 }

// Azimuth returns the azimuth at the starting point in degrees.
func (l *Line) Azimuth() float64 { return l.azi1 }

// Capabilities returns the capability mask the line was built with.
func (l *Line) Capabilities() int { return l.caps }

// Position returns the point at distance s12 meters along the line, with
// the outputs selected by outmask. The line needs DISTANCE_IN.
func (l *Line) Position(s12 float64, outmask int) Result {
	return l.GenPosition(false, s12, outmask)
}

// ArcPosition returns the point at arc length a12 degrees along the line.
func (l *Line) ArcPosition(a12 float64, outmask int) Result {
	return l.GenPosition(true, a12, outmask)
}

// GenPosition returns the point at arc length (arcmode) or distance s12a12
// along the line. Outputs not covered by the line's capabilities are NaN, as
// are all outputs if a distance is given to a line lacking DISTANCE_IN.
func (l *Line) GenPosition(arcmode bool, s12a12 float64, outmask int) Result {
	r := newResult()
	outmask &= l.caps & outMask

	r.Lat1 = l.lat1
	r.Azi1 = l.azi1
	if outmask&LONG_UNROLL > 0 {
		r.Lon1 = l.lon1
	} else {
		r.Lon1 = angNormalize(l.lon1)
	}
	if arcmode {
		r.A12 = s12a12
	} else {
		r.S12 = s12a12
	}
	if !(arcmode || l.caps&(outMask&DISTANCE_IN) > 0) {
		// Distance requested from a line built without DISTANCE_IN
		return r
	}

	B12 := 0.0
	AB1 := 0.0
	var sig12, ssig12, csig12 float64
	if arcmode {
		// Interpret s12a12 as spherical arc length
		sig12 = radians(s12a12)
		ssig12, csig12 = sincosd(s12a12)
	} else {
		// Interpret s12a12 as distance
		tau12 := s12a12 / (l.b * (1 + l.A1m1))
		if math.IsInf(tau12, 0) {
			tau12 = math.NaN()
		}
		s := math.Sin(tau12)
		c := math.Cos(tau12)
		// tau2 = tau1 + tau12
		B12 = -sinCosSeries(true,
			l.stau1*c+l.ctau1*s,
			l.ctau1*c-l.stau1*s,
			l.C1pa)
		sig12 = tau12 - (B12 - l.B11)
		ssig12 = math.Sin(sig12)
		csig12 = math.Cos(sig12)
		if math.Abs(l.f) > 0.01 {
			// The reverted distance series loses accuracy for |f| > 1/100,
			// so correct sig12 with one Newton iteration.
			ssig2 := l.ssig1*csig12 + l.csig1*ssig12
			csig2 := l.csig1*csig12 - l.ssig1*ssig12
			B12 = sinCosSeries(true, ssig2, csig2, l.C1a)
			serr := (1+l.A1m1)*(sig12+(B12-l.B11)) - s12a12/l.b
			sig12 = sig12 - serr/math.Sqrt(1+l.k2*sq(ssig2))
			ssig12 = math.Sin(sig12)
			csig12 = math.Cos(sig12)
			// Update B12 below
		}
	}
	if !arcmode {
		r.A12 = degrees(sig12)
	}

	// sig2 = sig1 + sig12
	ssig2 := l.ssig1*csig12 + l.csig1*ssig12
	csig2 := l.csig1*csig12 - l.ssig1*ssig12
	dn2 := math.Sqrt(1 + l.k2*sq(ssig2))
	if outmask&(DISTANCE|REDUCED_LENGTH|GEODESIC_SCALE) > 0 {
		if arcmode || math.Abs(l.f) > 0.01 {
			B12 = sinCosSeries(true, ssig2, csig2, l.C1a)
		}
		AB1 = (1 + l.A1m1) * (B12 - l.B11)
	}
	sbet2 := l.calp0 * ssig2
	cbet2 := math.Hypot(l.salp0, l.calp0*csig2)
	if cbet2 == 0 {
		// Meridian through a pole; nudge off the singular point.
		cbet2 = tiny
		csig2 = tiny
	}
	salp2 := l.salp0
	calp2 := l.calp0 * csig2 // unnormalized, fine for atan2d

	r.Mask = outmask | LATITUDE&outMask
	if !arcmode {
		r.Mask |= DISTANCE & outMask
	}
	if outmask&DISTANCE > 0 && arcmode {
		r.S12 = l.b * ((1+l.A1m1)*sig12 + AB1)
	}
	if outmask&LONGITUDE > 0 {
		somg2 := l.salp0 * ssig2
		comg2 := csig2
		E := math.Copysign(1, l.salp0)
		var omg12 float64
		if outmask&LONG_UNROLL > 0 {
			omg12 = E * (sig12 -
				(math.Atan2(ssig2, csig2) - math.Atan2(l.ssig1, l.csig1)) +
				(math.Atan2(E*somg2, comg2) - math.Atan2(E*l.somg1, l.comg1)))
		} else {
			omg12 = math.Atan2(somg2*l.comg1-comg2*l.somg1,
				comg2*l.comg1+somg2*l.somg1)
		}
		lam12 := omg12 + l.A3c*(sig12+(sinCosSeries(true, ssig2, csig2, l.C3a)-l.B31))
		lon12 := degrees(lam12)
		if outmask&LONG_UNROLL > 0 {
			r.Lon2 = l.lon1 + lon12
		} else {
			r.Lon2 = angNormalize(angNormalize(l.lon1) + angNormalize(lon12))
		}
	}
	r.Lat2 = atan2d(sbet2, l.f1*cbet2)
	if outmask&AZIMUTH > 0 {
		r.Azi2 = atan2d(salp2, calp2)
	}
	if outmask&(REDUCED_LENGTH|GEODESIC_SCALE) > 0 {
		B22 := sinCosSeries(true, ssig2, csig2, l.C2a)
		AB2 := (1 + l.A2m1) * (B22 - l.B21)
		J12 := (l.A1m1-l.A2m1)*sig12 + (AB1 - AB2)
		if outmask&REDUCED_LENGTH > 0 {
			// Grouped so that coincident points cancel exactly.
			r.ReducedLength = l.b * ((dn2*(l.csig1*ssig2) - l.dn1*(l.ssig1*csig2)) -
				l.csig1*csig2*J12)
		}
		if outmask&GEODESIC_SCALE > 0 {
			t := l.k2 * (ssig2 - l.ssig1) * (ssig2 + l.ssig1) / (l.dn1 + dn2)
			r.M12 = csig12 + (t*ssig2-csig2*J12)*l.ssig1/l.dn1
			r.M21 = csig12 - (t*l.ssig1-l.csig1*J12)*ssig2/dn2
		}
	}
	if outmask&AREA > 0 {
		B42 := sinCosSeries(false, ssig2, csig2, l.C4a)
		var salp12, calp12 float64
		if l.calp0 == 0 || l.salp0 == 0 {
			// Meridional or equatorial: subtract the azimuths directly.
			salp12 = salp2*l.calp1 - calp2*l.salp1
			calp12 = calp2*l.calp1 + salp2*l.salp1
		} else {
			// The azimuth change follows from tan(alp) = tan(alp0)/cos(sig).
			// Its numerator carries csig1 - csig2, which is rewritten in
			// terms of the arc sig12 to avoid cancellation on short lines.
			if csig12 <= 0 {
				salp12 = l.calp0 * l.salp0 * (l.csig1*(1-csig12) + ssig12*l.ssig1)
			} else {
				salp12 = l.calp0 * l.salp0 * ssig12 * (l.csig1*ssig12/(1+csig12) + l.ssig1)
			}
			calp12 = sq(l.salp0) + sq(l.calp0)*l.csig1*csig2
		}
		r.Area = l.c2*math.Atan2(salp12, calp12) + l.A4*(B42-l.B41)
	}
	return r
}
