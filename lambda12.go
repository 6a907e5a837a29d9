package geodesic

import "math"

// lambda12Result is the hybrid problem's solution for a trial azimuth.
// lam12 is the longitude difference minus the target (the Newton residual);
// dlam12 is its derivative with respect to alp1, NaN unless requested.
type lambda12Result struct {
	lam12, salp2, calp2, sig12              float64
	ssig1, csig1, ssig2, csig2, eps, domg12 float64
	dlam12                                  float64
}

// lambda12 solves the hybrid problem: given bet1, bet2 and alp1, find the
// longitude difference to the point where the geodesic reaches bet2.
func (g *Geodesic) lambda12(sbet1, cbet1, dn1, sbet2, cbet2, dn2, salp1, calp1,
	slam120, clam120 float64, diffp bool, C1a, C2a, C3a []float64) lambda12Result {
	var r lambda12Result
	if sbet1 == 0 && calp1 == 0 {
		// equatorial, handled by genInverse
		calp1 = -tiny
	}
	// Clairaut: the equatorial azimuth alp0 follows from the start.
	salp0 := salp1 * cbet1
	calp0 := math.Hypot(calp1, salp1*sbet1) // positive

	// Arc and longitude on the auxiliary sphere, measured from the
	// northward equator crossing.
	somg1 := salp0 * sbet1
	comg1 := calp1 * cbet1
	r.ssig1, r.csig1 = norm(sbet1, comg1)
	// only the ratio of somg1 and comg1 is used

	// sin(alp2) * cos(bet2) = sin(alp0), exact when |bet2| = -bet1
	r.salp2 = salp1
	if cbet2 != cbet1 {
		r.salp2 = salp0 / cbet2
	}
	// calp2 = sqrt(calp0^2 - sbet2^2) / cbet2 >= 0, rearranged for
	// accuracy
	if cbet2 != cbet1 || math.Abs(sbet2) != -sbet1 {
		if cbet1 < -sbet1 {
			r.calp2 = math.Sqrt(sq(calp1*cbet1)+(cbet2-cbet1)*(cbet1+cbet2)) / cbet2
		} else {
			r.calp2 = math.Sqrt(sq(calp1*cbet1)+(sbet1-sbet2)*(sbet1+sbet2)) / cbet2
		}
	} else {
		r.calp2 = math.Abs(calp1)
	}
	// Same construction at the end point.
	somg2 := salp0 * sbet2
	comg2 := r.calp2 * cbet2
	r.ssig2, r.csig2 = norm(sbet2, comg2)

	// Arc between the points, clamped to [0, pi].
	r.sig12 = math.Atan2(math.Max(0.0, r.csig1*r.ssig2-r.ssig1*r.csig2),
		r.csig1*r.csig2+r.ssig1*r.ssig2)
	// Spherical longitude between the points, also in [0, pi].
	somg12 := math.Max(0.0, comg1*somg2-somg1*comg2)
	comg12 := comg1*comg2 + somg1*somg2
	// Rotate by the target longitude so eta is measured from it.
	eta := math.Atan2(somg12*clam120-comg12*slam120,
		comg12*clam120+somg12*slam120)

	k2 := sq(calp0) * g.ep2
	r.eps = k2 / (2*(1+math.Sqrt(1+k2)) + k2)
	g.c3f(r.eps, C3a)
	B312 := sinCosSeries(true, r.ssig2, r.csig2, C3a) -
		sinCosSeries(true, r.ssig1, r.csig1, C3a)
	r.domg12 = -g.f * g.a3f(r.eps) * salp0 * (r.sig12 + B312)
	r.lam12 = eta + r.domg12

	r.dlam12 = math.NaN()
	if diffp {
		if r.calp2 == 0 {
			r.dlam12 = -2 * g.f1 * dn1 / sbet1
		} else {
			l := g.lengths(
				r.eps, r.sig12, r.ssig1, r.csig1, dn1, r.ssig2, r.csig2, dn2,
				cbet1, cbet2, REDUCED_LENGTH, C1a, C2a)
			r.dlam12 = l.m12b * g.f1 / (r.calp2 * cbet2)
		}
	}
	return r
}
