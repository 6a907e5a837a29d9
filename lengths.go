package geodesic

import "math"

// lengthsResult holds the output of lengths. Quantities that were not
// requested are NaN.
type lengthsResult struct {
	s12b float64 // distance / b
	m12b float64 // reduced length / b
	m0   float64 // coefficient of the secular term in m12b
	M12  float64
	M21  float64
}

// lengths integrates along the auxiliary sphere between sig1 and sig2.
//
//	outmask & DISTANCE: set s12b
//	outmask & REDUCED_LENGTH: set m12b & m0
//	outmask & GEODESIC_SCALE: set M12 & M21
//
// C1a and C2a are scratch buffers of length nC1+1 and nC2+1.
func (g *Geodesic) lengths(eps, sig12, ssig1, csig1, dn1, ssig2, csig2, dn2, cbet1, cbet2 float64,
	outmask int, C1a, C2a []float64) lengthsResult {
	outmask &= outMask
	r := lengthsResult{
		s12b: math.NaN(),
		m12b: math.NaN(),
		m0:   math.NaN(),
		M12:  math.NaN(),
		M21:  math.NaN(),
	}
	A1 := math.NaN()
	A2 := math.NaN()
	m0x := math.NaN()
	J12 := math.NaN()
	if outmask&(DISTANCE|REDUCED_LENGTH|GEODESIC_SCALE) > 0 {
		A1 = a1m1f(eps)
		c1f(eps, C1a)
		if outmask&(REDUCED_LENGTH|GEODESIC_SCALE) > 0 {
			A2 = a2m1f(eps)
			c2f(eps, C2a)
			m0x = A1 - A2
			A2 = 1 + A2
		}
		A1 = 1 + A1
	}
	if outmask&DISTANCE > 0 {
		B1 := sinCosSeries(true, ssig2, csig2, C1a) -
			sinCosSeries(true, ssig1, csig1, C1a)
		// Scaled by 1/b; the caller multiplies back.
		r.s12b = A1 * (sig12 + B1)
		if outmask&(REDUCED_LENGTH|GEODESIC_SCALE) > 0 {
			B2 := sinCosSeries(true, ssig2, csig2, C2a) -
				sinCosSeries(true, ssig1, csig1, C2a)
			J12 = m0x*sig12 + (A1*B1 - A2*B2)
		}
	} else if outmask&(REDUCED_LENGTH|GEODESIC_SCALE) > 0 {
		// C1a covers every index of C2a since nC1 >= nC2.
		for l := 1; l <= nC2; l++ {
			C2a[l] = A1*C1a[l] - A2*C2a[l]
		}
		J12 = m0x*sig12 + (sinCosSeries(true, ssig2, csig2, C2a) -
			sinCosSeries(true, ssig1, csig1, C2a))
	}
	if outmask&REDUCED_LENGTH > 0 {
		r.m0 = m0x
		// Also in units of b. The products are grouped so coincident
		// points give exactly zero.
		r.m12b = dn2*(csig1*ssig2) - dn1*(ssig1*csig2) - csig1*csig2*J12
	}
	if outmask&GEODESIC_SCALE > 0 {
		csig12 := csig1*csig2 + ssig1*ssig2
		t := g.ep2 * (cbet1 - cbet2) * (cbet1 + cbet2) / (dn1 + dn2)
		r.M12 = csig12 + (t*ssig2-csig2*J12)*ssig1/dn1
		r.M21 = csig12 - (t*ssig1-csig1*J12)*ssig2/dn2
	}
	return r
}
