package geodesic

import (
	"context"
	"log/slog"
	"math"
)

// Inverse solves the inverse geodesic problem between (lat1, lon1) and
// (lat2, lon2), all in degrees, returning the STANDARD outputs: azimuths,
// distance and arc length.
//
// Latitudes outside [-90, 90] give NaN results. Azimuths are returned in
// [-180, 180]. Newton's method is used, falling back to bisection for very
// eccentric ellipsoids.
func (g *Geodesic) Inverse(lat1, lon1, lat2, lon2 float64) Result {
	return g.InverseWithMask(lat1, lon1, lat2, lon2, STANDARD)
}

// InverseWithMask is like Inverse but computes the outputs selected by
// outmask. With LONG_UNROLL, Lon1 is returned unchanged and Lon2 is Lon1
// plus the longitude difference, instead of both being reduced to
// [-180, 180].
func (g *Geodesic) InverseWithMask(lat1, lon1, lat2, lon2 float64, outmask int) Result {
	v := g.genInverse(lat1, lon1, lat2, lon2, outmask)
	outmask &= outMask

	r := newResult()
	r.Mask = outmask | LATITUDE&outMask | LONGITUDE&outMask
	r.Lat1 = latFix(lat1)
	r.Lat2 = latFix(lat2)
	if outmask&LONG_UNROLL > 0 {
		lon12, e := angDiff(lon1, lon2)
		r.Lon1 = lon1
		r.Lon2 = (lon1 + lon12) + e
	} else {
		r.Lon1 = angNormalize(lon1)
		r.Lon2 = angNormalize(lon2)
	}
	r.A12 = v.a12
	if outmask&DISTANCE > 0 {
		r.S12 = v.s12
	}
	if outmask&AZIMUTH > 0 {
		r.Azi1 = atan2d(v.salp1, v.calp1)
		r.Azi2 = atan2d(v.salp2, v.calp2)
	}
	if outmask&REDUCED_LENGTH > 0 {
		r.ReducedLength = v.m12
	}
	if outmask&GEODESIC_SCALE > 0 {
		r.M12 = v.M12
		r.M21 = v.M21
	}
	if outmask&AREA > 0 {
		r.Area = v.S12
	}
	return r
}

type inverseResult struct {
	a12, s12, salp1, calp1, salp2, calp2, m12, M12, M21, S12 float64
}

func (g *Geodesic) genInverse(lat1, lon1, lat2, lon2 float64, outmask int) inverseResult {
	nan := math.NaN()
	var (
		a12, s12, m12, M12, M21, S12 = nan, nan, nan, nan, nan, nan
		salp1, calp1, salp2, calp2   float64
	)

	outmask &= outMask
	// lon12 in [-180, 180]; -180 only for west-going lines. lon12s is the
	// rounding error, reused below to get 180 - lon12 exactly.
	lon12, lon12s := angDiff(lon1, lon2)
	lonsign := math.Copysign(1, lon12)
	lon12 = lonsign * angRound(lon12)
	lon12s = angRound((180 - lon12) - lonsign*lon12s)
	lam12 := radians(lon12)
	var slam12, clam12 float64
	if lon12 > 90 {
		slam12, clam12 = sincosd(lon12s)
		clam12 = -clam12
	} else {
		slam12, clam12 = sincosd(lon12)
	}
	lat1 = angRound(latFix(lat1))
	lat2 = angRound(latFix(lat2))
	// Point 1 gets the larger |lat|; a NaN latitude ends up in lat1.
	swapp := -1.0
	if math.Abs(lat1) >= math.Abs(lat2) {
		swapp = 1
	}
	if swapp < 0 {
		lonsign *= -1
		lat2, lat1 = lat1, lat2
	}
	latsign := 1.0
	if lat1 >= 0 {
		latsign = -1
	}
	lat1 *= latsign
	lat2 *= latsign
	// Canonical form:
	//
	//	0 <= lon12 <= 180, -90 <= lat1 <= 0, lat1 <= lat2 <= -lat1
	//
	// lonsign, swapp and latsign undo it at the end; 1 means unchanged.

	sbet1, cbet1 := sincosd(lat1)
	sbet1 *= g.f1
	sbet1, cbet1 = norm(sbet1, cbet1)
	cbet1 = math.Max(tiny, cbet1) // positive at the poles
	sbet2, cbet2 := sincosd(lat2)
	sbet2 *= g.f1
	sbet2, cbet2 = norm(sbet2, cbet2)
	cbet2 = math.Max(tiny, cbet2)
	// lambda12 measures |bet1| - |bet2| by cbet2 - cbet1 or by
	// |sbet2| + sbet1, whichever is better conditioned. When that measure
	// vanishes, make bet2 = +/-bet1 exactly.
	if cbet1 < -sbet1 {
		if cbet2 == cbet1 {
			if sbet2 < 0 {
				sbet2 = sbet1
			} else {
				sbet2 = -sbet1
			}
		}
	} else if math.Abs(sbet2) == -sbet1 {
		cbet2 = cbet1
	}
	dn1 := math.Sqrt(1 + g.ep2*sq(sbet1))
	dn2 := math.Sqrt(1 + g.ep2*sq(sbet2))

	// C1a[0], C2a[0] and C3a[0] are unused.
	C1a := make([]float64, nC1+1)
	C2a := make([]float64, nC2+1)
	C3a := make([]float64, nC3)
	var sig12, s12x, m12x float64

	meridian := lat1 == -90 || slam12 == 0
	if meridian {
		// Both points lie on one full meridian; try the meridian itself.
		calp1 = clam12
		salp1 = slam12
		calp2 = 1.0
		salp2 = 0.0
		// Meridian: the arc starts at the reduced latitude.
		ssig1 := sbet1
		csig1 := calp1 * cbet1
		ssig2 := sbet2
		csig2 := calp2 * cbet2

		// arc between the points
		sig12 = math.Atan2(math.Max(0.0, csig1*ssig2-ssig1*csig2),
			csig1*csig2+ssig1*ssig2)

		l := g.lengths(
			g.n, sig12, ssig1, csig1, dn1, ssig2, csig2, dn2, cbet1, cbet2,
			outmask|DISTANCE|REDUCED_LENGTH, C1a, C2a)
		s12x, m12x, M12, M21 = l.s12b, l.m12b, l.M12, l.M21
		// A zero length line can give m12 < 0, hence the sig12 test. The
		// meridian is not shortest once it passes a conjugate point.
		if sig12 < 1 || m12x >= 0 {
			// 3*tiny covers 90 0 90 180
			if sig12 < 3*tiny {
				sig12 = 0
				m12x = 0
				s12x = 0
			}
			m12x *= g.b
			s12x *= g.b
			a12 = degrees(sig12)
		} else {
			// prolate and nearly antipodal
			meridian = false
		}
	}

	// somg12 > 1 means not yet computed
	somg12 := 2.0
	comg12 := 0.0
	omg12 := 0.0
	if !meridian && sbet1 == 0 && (g.f <= 0 || lon12s >= g.f*180) {
		// Along the equator, as lambda12 would do with calp1 = 0.
		calp1 = 0
		calp2 = 0
		salp1 = 1
		salp2 = 1
		s12x = g.a * lam12
		sig12 = lam12 / g.f1
		omg12 = sig12
		m12x = g.b * math.Sin(sig12)
		if outmask&GEODESIC_SCALE > 0 {
			M12 = math.Cos(sig12)
			M21 = M12
		}
		a12 = lon12 / g.f1
	} else if !meridian {
		// General case.
		st := g.inverseStart(
			sbet1, cbet1, dn1, sbet2, cbet2, dn2, lam12, slam12, clam12, C1a, C2a)
		sig12, salp1, calp1 = st.sig12, st.salp1, st.calp1
		if sig12 >= 0 {
			// Short line, solved by inverseStart.
			salp2, calp2 = st.salp2, st.calp2
			dnm := st.dnm
			s12x = sig12 * g.b * dnm
			m12x = sq(dnm) * g.b * math.Sin(sig12/dnm)
			if outmask&GEODESIC_SCALE > 0 {
				M12 = math.Cos(sig12 / dnm)
				M21 = M12
			}
			a12 = degrees(sig12)
			omg12 = lam12 / (g.f1 * dnm)
		} else {
			lr := g.newton(sbet1, cbet1, dn1, sbet2, cbet2, dn2,
				salp1, calp1, slam12, clam12, C1a, C2a, C3a)
			salp1, calp1, salp2, calp2, sig12 = lr.salp1, lr.calp1, lr.salp2, lr.calp2, lr.sig12

			lengthMask := outmask
			if outmask&(REDUCED_LENGTH|GEODESIC_SCALE) > 0 {
				lengthMask |= DISTANCE
			}
			l := g.lengths(
				lr.eps, sig12, lr.ssig1, lr.csig1, dn1, lr.ssig2, lr.csig2, dn2,
				cbet1, cbet2, lengthMask, C1a, C2a)
			s12x, m12x, M12, M21 = l.s12b, l.m12b, l.M12, l.M21

			m12x *= g.b
			s12x *= g.b
			a12 = degrees(sig12)
			if outmask&AREA > 0 {
				sdomg12 := math.Sin(lr.domg12)
				cdomg12 := math.Cos(lr.domg12)
				somg12 = slam12*cdomg12 - clam12*sdomg12
				comg12 = clam12*cdomg12 + slam12*sdomg12
			}
		}
	}

	if outmask&DISTANCE > 0 {
		s12 = 0.0 + s12x // -0 becomes 0
	}
	if outmask&REDUCED_LENGTH > 0 {
		m12 = 0.0 + m12x
	}

	if outmask&AREA > 0 {
		salp0 := salp1 * cbet1
		calp0 := math.Hypot(calp1, salp1*sbet1)
		if calp0 != 0 && salp0 != 0 {
			ssig1, csig1 := norm(sbet1, calp1*cbet1)
			ssig2, csig2 := norm(sbet2, calp2*cbet2)
			k2 := sq(calp0) * g.ep2
			eps := k2 / (2*(1+math.Sqrt(1+k2)) + k2)
			A4 := sq(g.a) * calp0 * salp0 * g.e2
			C4a := make([]float64, nC4)
			g.c4f(eps, C4a)
			B41 := sinCosSeries(false, ssig1, csig1, C4a)
			B42 := sinCosSeries(false, ssig2, csig2, C4a)
			S12 = A4 * (B42 - B41)
		} else {
			// sig1 and sig2 are indeterminate on the equator
			S12 = 0.0
		}
		if !meridian && somg12 > 1 {
			somg12 = math.Sin(omg12)
			comg12 = math.Cos(omg12)
		}
		var alp12 float64
		if !meridian && comg12 > -0.7071 && sbet2-sbet1 < 1.75 {
			// Half-angle formula for the spherical excess, valid for
			// omg12 < 3/4 pi and a moderate latitude difference.
			domg12 := 1 + comg12
			dbet1 := 1 + cbet1
			dbet2 := 1 + cbet2
			alp12 = 2 * math.Atan2(somg12*(sbet1*dbet2+sbet2*dbet1),
				domg12*(sbet1*sbet2+dbet1*dbet2))
		} else {
			salp12 := salp2*calp1 - calp2*salp1
			calp12 := calp2*calp1 + salp2*salp1
			// alp1 = +/-180 with alp2 = 0 must give alp12 = -180 whatever the
			// sign of the zero.
			if salp12 == 0 && calp12 < 0 {
				salp12 = tiny * calp1
				calp12 = -1.0
			}
			alp12 = math.Atan2(salp12, calp12)
		}
		S12 += g.c2 * alp12
		S12 *= swapp * lonsign * latsign
		S12 += 0.0
	}

	// Undo the canonical transformation.
	if swapp < 0 {
		salp2, salp1 = salp1, salp2
		calp2, calp1 = calp1, calp2
		if outmask&GEODESIC_SCALE > 0 {
			M21, M12 = M12, M21
		}
	}
	salp1 *= swapp * lonsign
	calp1 *= swapp * latsign
	salp2 *= swapp * lonsign
	calp2 *= swapp * latsign
	return inverseResult{
		a12: a12, s12: s12,
		salp1: salp1, calp1: calp1, salp2: salp2, calp2: calp2,
		m12: m12, M12: M12, M21: M21, S12: S12,
	}
}

// newtonResult is the converged hybrid solution together with the starting
// azimuth that produced it.
type newtonResult struct {
	lambda12Result
	salp1, calp1 float64
}

// newton finds the root of the lambda12 residual in alp1, starting from
// (salp1, calp1). The residual has a single root in (0, pi), negative below
// it and positive above, so every evaluation narrows a bracket
// (alp1a, alp1b). A step with a non-positive slope, or one leaving (0, pi),
// is replaced by the bracket midpoint, as is every step after maxIt1.
func (g *Geodesic) newton(sbet1, cbet1, dn1, sbet2, cbet2, dn2,
	salp1, calp1, slam12, clam12 float64, C1a, C2a, C3a []float64) newtonResult {
	log := Logger()
	debug := log.Enabled(context.Background(), slog.LevelDebug)

	var lr lambda12Result
	numit := 0
	tripn := false
	tripb := false
	converged := false
	salp1a, calp1a := tiny, 1.0
	salp1b, calp1b := tiny, -1.0
	for ; numit < maxIt2; numit++ {
		lr = g.lambda12(
			sbet1, cbet1, dn1, sbet2, cbet2, dn2,
			salp1, calp1, slam12, clam12, numit < maxIt1,
			C1a, C2a, C3a)
		v := lr.lam12
		if debug {
			log.Debug("geodesic: newton iteration",
				"numit", numit, "alp1", atan2d(salp1, calp1), "v", v, "dv", lr.dlam12)
		}
		// written so that NaN ends the loop
		mult := 1.0
		if tripn {
			mult = 8
		}
		if tripb || !(math.Abs(v) >= mult*tol0) {
			converged = true
			break
		}
		if v > 0 && (numit > maxIt1 || calp1/salp1 > calp1b/salp1b) {
			salp1b = salp1
			calp1b = calp1
		} else if v < 0 && (numit > maxIt1 || calp1/salp1 < calp1a/salp1a) {
			salp1a = salp1
			calp1a = calp1
		}
		if debug && calp1a/salp1a < calp1b/salp1b {
			// The residual must be negative below the root and positive
			// above it, so the bracket ends can never cross.
			log.Warn("geodesic: lambda12 residual not monotonic across bracket",
				"numit", numit, "alp1a", atan2d(salp1a, calp1a), "alp1b", atan2d(salp1b, calp1b))
		}
		if numit < maxIt1 && lr.dlam12 > 0 {
			dalp1 := -v / lr.dlam12
			if math.Abs(dalp1) < math.Pi {
				sdalp1 := math.Sin(dalp1)
				cdalp1 := math.Cos(dalp1)
				nsalp1 := salp1*cdalp1 + calp1*sdalp1
				if nsalp1 > 0 {
					calp1 = calp1*cdalp1 - salp1*sdalp1
					salp1, calp1 = norm(nsalp1, calp1)
					// Convergence is not quadratic where the slope tends to
					// zero, so tighten the exit test.
					tripn = math.Abs(v) <= 16*tol0
					continue
				}
			}
		}
		// Bisect. Only eccentric ellipsoids get here in practice.
		salp1, calp1 = norm((salp1a+salp1b)/2, (calp1a+calp1b)/2)
		tripn = false
		tripb = math.Abs(salp1a-salp1)+(calp1a-calp1) < tolb ||
			math.Abs(salp1-salp1b)+(calp1-calp1b) < tolb
	}
	if !converged {
		log.Warn("geodesic: inverse iteration cap reached",
			"maxit", maxIt2, "residual", lr.lam12, "alp1", atan2d(salp1, calp1))
	}
	return newtonResult{lambda12Result: lr, salp1: salp1, calp1: calp1}
}
