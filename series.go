package geodesic

// sinCosSeries evaluates
//
//	sinp ? sum(c[i] * sin( 2*i    * x), i, 1, n) :
//	       sum(c[i] * cos((2*i+1) * x), i, 0, n-1)
//
// by Clenshaw summation, where n = len(c) - 1 for the sine series (c[0] is
// unused) and n = len(c) for the cosine series.
func sinCosSeries(sinp bool, sinx, cosx float64, c []float64) float64 {
	k := len(c) // next coefficient is c[k-1]
	n := k
	if sinp {
		n -= 1
	}
	ar := 2 * (cosx - sinx) * (cosx + sinx) // twice cos(2x)
	y1 := 0.0                               // Clenshaw recurrence state
	y0 := 0.0
	if n&1 > 0 {
		k -= 1
		y0 = c[k]
	}
	// pairs of terms remain
	n = n / 2
	for n > 0 {
		n -= 1
		k -= 1
		y1 = ar*y0 - y1 + c[k]
		k -= 1
		y0 = ar*y1 - y0 + c[k]
	}
	if sinp {
		return 2 * sinx * cosx * y0
	}
	return cosx * (y0 - y1)
}

// a1m1f returns A1-1, the mean value of (d/dsigma)I1 - 1.
func a1m1f(eps float64) float64 {
	t := a1Coeff.eval(sq(eps))
	return (t + eps) / (1 - eps)
}

// a2m1f returns A2-1, the mean value of (d/dsigma)I2 - 1.
func a2m1f(eps float64) float64 {
	t := a2Coeff.eval(sq(eps))
	return (t - eps) / (1 + eps)
}

// fourierCoeffs sets c[1..len(coeff)] to eps^l times the tabulated
// polynomial in eps^2.
func fourierCoeffs(coeff []ratPoly, eps float64, c []float64) {
	eps2 := sq(eps)
	d := eps
	for l := 1; l <= len(coeff); l++ {
		c[l] = d * coeff[l-1].eval(eps2)
		d *= eps
	}
}

// c1f sets c[1..nC1] to the coefficients of the Fourier expansion of B1.
func c1f(eps float64, c []float64) {
	fourierCoeffs(c1Coeff, eps, c)
}

// c1pf sets c[1..nC1p] to the coefficients of the Fourier expansion of B1p,
// the inverse of the B1 series.
func c1pf(eps float64, c []float64) {
	fourierCoeffs(c1pCoeff, eps, c)
}

// c2f sets c[1..nC2] to the coefficients of the Fourier expansion of B2.
func c2f(eps float64, c []float64) {
	fourierCoeffs(c2Coeff, eps, c)
}

func (g *Geodesic) a3f(eps float64) float64 {
	return polyval(nA3-1, g.a3x, 0, eps)
}

// c3f sets c[1..nC3-1].
func (g *Geodesic) c3f(eps float64, c []float64) {
	mult := 1.0
	for l := 1; l < nC3; l++ {
		p := g.c3x[l-1]
		mult *= eps
		c[l] = mult * polyval(len(p)-1, p, 0, eps)
	}
}

// c4f sets c[0..nC4-1].
func (g *Geodesic) c4f(eps float64, c []float64) {
	mult := 1.0
	for l := 0; l < nC4; l++ {
		p := g.c4x[l]
		c[l] = mult * polyval(len(p)-1, p, 0, eps)
		mult *= eps
	}
}
