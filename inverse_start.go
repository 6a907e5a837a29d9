package geodesic

import "math"

// inverseStartResult is a starting point for Newton's method. sig12 is -1
// unless the line is short enough to be solved directly, in which case
// sig12 >= 0 and salp2, calp2, dnm are set as well.
type inverseStartResult struct {
	sig12, salp1, calp1, salp2, calp2, dnm float64
}

func (g *Geodesic) inverseStart(sbet1, cbet1, dn1, sbet2, cbet2, dn2,
	lam12, slam12, clam12 float64, C1a, C2a []float64) inverseStartResult {
	r := inverseStartResult{
		sig12: -1,
		salp2: math.NaN(),
		calp2: math.NaN(),
		dnm:   math.NaN(),
	}
	// Difference and sum of the reduced latitudes; canonical order puts
	// the first in [0, pi) and the second in (-pi, 0].
	sbet12 := sbet2*cbet1 - cbet2*sbet1
	cbet12 := cbet2*cbet1 + sbet2*sbet1
	sbet12a := sbet2*cbet1 + cbet2*sbet1

	var somg12, comg12 float64
	shortline := cbet12 >= 0 && sbet12 < 0.5 && cbet2*lam12 < 0.5
	if shortline {
		// Squared sine of the mean reduced latitude, from half-angle sums.
		sbetm2 := sq(sbet1 + sbet2)
		sbetm2 /= sbetm2 + sq(cbet1+cbet2)
		r.dnm = math.Sqrt(1 + g.ep2*sbetm2)
		omg12 := lam12 / (g.f1 * r.dnm)
		somg12 = math.Sin(omg12)
		comg12 = math.Cos(omg12)
	} else {
		somg12 = slam12
		comg12 = clam12
	}

	salp1 := cbet2 * somg12
	var calp1 float64
	if comg12 >= 0 {
		calp1 = sbet12 + cbet2*sbet1*sq(somg12)/(1+comg12)
	} else {
		calp1 = sbet12a - cbet2*sbet1*sq(somg12)/(1-comg12)
	}
	ssig12 := math.Hypot(salp1, calp1)
	csig12 := sbet1*sbet2 + cbet1*cbet2*comg12

	switch {
	case shortline && ssig12 < g.etol2:
		// Short enough that the spherical solution is final.
		salp2 := cbet1 * somg12
		var mult float64
		if comg12 >= 0 {
			mult = sq(somg12) / (1 + comg12)
		} else {
			mult = 1 - comg12
		}
		calp2 := sbet12 - cbet1*sbet2*mult
		r.salp2, r.calp2 = norm(salp2, calp2)
		r.sig12 = math.Atan2(ssig12, csig12)
	case math.Abs(g.n) > 0.1 || // too eccentric for the astroid
		csig12 >= 0 ||
		ssig12 >= 6*math.Abs(g.n)*math.Pi*sq(cbet1):
		// keep the spherical estimate
	default:
		// Nearly antipodal. Rescale so the antipode is at the origin and
		// the singular point at (x, y) = (-1, 0).
		var x, y, lamscale float64
		lam12x := math.Atan2(-slam12, -clam12) // lam12 - pi
		if g.f >= 0 {
			// Oblate: x scales longitude, y latitude. A sphere never
			// reaches this branch.
			k2 := sq(sbet1) * g.ep2
			eps := k2 / (2*(1+math.Sqrt(1+k2)) + k2)
			lamscale = g.f * cbet1 * g.a3f(eps) * math.Pi
			betscale := lamscale * cbet1
			x = lam12x / lamscale
			y = sbet12a / betscale
		} else {
			// Prolate: the roles of x and y swap.
			cbet12a := cbet2*cbet1 - sbet2*sbet1
			bet12a := math.Atan2(sbet12a, cbet12a)
			l := g.lengths(
				g.n, math.Pi+bet12a, sbet1, -cbet1, dn1, sbet2, cbet2, dn2,
				cbet1, cbet2, REDUCED_LENGTH, C1a, C2a)
			x = -1 + l.m12b/(cbet1*cbet2*l.m0*math.Pi)
			var betscale float64
			if x < -0.01 {
				betscale = sbet12a / x
			} else {
				betscale = -g.f * sq(cbet1) * math.Pi
			}
			lamscale = betscale / cbet1
			y = lam12x / lamscale
		}
		if y > -tol1 && x > -1-xthresh {
			// Close to the cut through the antipode; the astroid is
			// ill-conditioned there.
			if g.f >= 0 {
				salp1 = math.Min(1.0, -x)
				calp1 = -math.Sqrt(1 - sq(salp1))
			} else {
				if x > -tol1 {
					calp1 = math.Max(0.0, x)
				} else {
					calp1 = math.Max(-1.0, x)
				}
				salp1 = math.Sqrt(1 - sq(calp1))
			}
		} else {
			// Solve the astroid for omg12a = pi - omg12, then get alp1 from
			// the spherical formula.
			k := astroid(x, y)
			var omg12a float64
			if g.f >= 0 {
				omg12a = lamscale * (-x * k / (1 + k))
			} else {
				omg12a = lamscale * (-y * (1 + k) / k)
			}
			somg12 = math.Sin(omg12a)
			comg12 = -math.Cos(omg12a)
			salp1 = cbet2 * somg12
			calp1 = sbet12a - cbet2*sbet1*sq(somg12)/(1-comg12)
		}
	}
	// NaN passes through to the normalisation.
	if !(salp1 <= 0) {
		r.salp1, r.calp1 = norm(salp1, calp1)
	} else {
		r.salp1 = 1
		r.calp1 = 0
	}
	return r
}

// astroid solves k^4+2*k^3-(x^2+y^2-1)*k^2-2*y^2*k-y^2 = 0 for the positive
// root k.
func astroid(x, y float64) float64 {
	p := sq(x)
	q := sq(y)
	r := (p + q - 1) / 6
	if q == 0 && r <= 0 {
		// y = 0 with |x| <= 1: the root tends to |y|/sqrt(1-x^2) = 0.
		return 0
	}
	// Work with r^3 s and r t so that r = 0 does not divide.
	S := p * q / 4 // r^3 s
	r2 := sq(r)
	r3 := r * r2
	// Discriminant of the quadratic for T3, zero on the evolute
	// p^(1/3) + q^(1/3) = 1.
	disc := S * (S + 2*r3)
	u := r
	if disc >= 0 {
		T3 := S + r3
		// Sign chosen to maximise |T3|; u does not depend on it.
		if T3 < 0 {
			T3 -= math.Sqrt(disc)
		} else {
			T3 += math.Sqrt(disc) // cube of r t
		}
		T := math.Cbrt(T3) // T = r * t, real root
		// r2 / T vanishes along with T.
		var rT float64
		if T != 0 {
			rT = r2 / T
		}
		u += T + rT
	} else {
		// Complex T, real u.
		ang := math.Atan2(math.Sqrt(-disc), -(S + r3))
		// Of the three cube roots take the one free of cancellation; here
		// r < 0.
		u += 2 * r * math.Cos(ang/3)
	}
	v := math.Sqrt(sq(u) + q) // guaranteed positive

	var uv float64
	if u < 0 {
		uv = q / (v - u)
	} else {
		uv = u + v // no cancellation for u >= 0
	}
	w := (uv - q) / (2 * v)
	// uv > 0 and w >= 0
	return uv / (math.Sqrt(uv+sq(w)) + w)
}
