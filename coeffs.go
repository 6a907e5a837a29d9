package geodesic

// ratPoly is a polynomial with rational coefficients: the numerator
// coefficients, highest degree first, followed by the common denominator.
type ratPoly []float64

// degree of the numerator polynomial.
func (p ratPoly) degree() int {
	return len(p) - 2
}

func (p ratPoly) eval(x float64) float64 {
	m := p.degree()
	return polyval(m, p, 0, x) / p[m+1]
}

// (1-eps)*A1-1, polynomial in eps2 of order 3
var a1Coeff = ratPoly{1, 4, 64, 0, 256}

// (eps+1)*A2-1, polynomial in eps2 of order 3
var a2Coeff = ratPoly{-11, -28, -192, 0, 256}

// C1[l]/eps^l as polynomials in eps2, l = 1..6.
var c1Coeff = []ratPoly{
	{-1, 6, -16, 32},
	{-9, 64, -128, 2048},
	{9, -16, 768},
	{3, -5, 512},
	{-7, 1280},
	{-7, 2048},
}

// C1p[l]/eps^l as polynomials in eps2, l = 1..6.
var c1pCoeff = []ratPoly{
	{205, -432, 768, 1536},
	{4005, -4736, 3840, 12288},
	{-225, 116, 384},
	{-7173, 2695, 7680},
	{3467, 7680},
	{38081, 61440},
}

// C2[l]/eps^l as polynomials in eps2, l = 1..6.
var c2Coeff = []ratPoly{
	{1, 2, 16, 32},
	{35, 64, 384, 2048},
	{15, 80, 768},
	{7, 35, 512},
	{63, 1280},
	{77, 2048},
}

// A3 as a polynomial in eps whose coefficients are polynomials in n.
// Entry k is the coefficient of eps^(nA3-1-k).
var a3Coeff = []ratPoly{
	{-3, 128},
	{-2, -3, 64},
	{-1, -3, -1, 16},
	{3, -1, -2, 8},
	{1, -1, 2},
	{1, 1},
}

// C3[l]/eps^l for l = 1..5; within each, entry k is the coefficient of
// eps^(nC3-1-k), a polynomial in n.
var c3Coeff = [][]ratPoly{
	{
		{3, 128},
		{2, 5, 128},
		{-1, 3, 3, 64},
		{-1, 0, 1, 8},
		{-1, 1, 4},
	},
	{
		{5, 256},
		{1, 3, 128},
		{-3, -2, 3, 64},
		{1, -3, 2, 32},
	},
	{
		{7, 512},
		{-10, 9, 384},
		{5, -9, 5, 192},
	},
	{
		{7, 512},
		{-14, 7, 512},
	},
	{
		{21, 2560},
	},
}

// C4[l]/eps^l for l = 0..5; within each, entry k is the coefficient of
// eps^(nC4-1-k), a polynomial in n.
var c4Coeff = [][]ratPoly{
	{
		{97, 15015},
		{1088, 156, 45045},
		{-224, -4784, 1573, 45045},
		{-10656, 14144, -4576, -858, 45045},
		{64, 624, -4576, 6864, -3003, 15015},
		{100, 208, 572, 3432, -12012, 30030, 45045},
	},
	{
		{1, 9009},
		{-2944, 468, 135135},
		{5792, 1040, -1287, 135135},
		{5952, -11648, 9152, -2574, 135135},
		{-64, -624, 4576, -6864, 3003, 135135},
	},
	{
		{8, 10725},
		{1856, -936, 225225},
		{-8448, 4992, -1144, 225225},
		{-1440, 4160, -4576, 1716, 225225},
	},
	{
		{-136, 63063},
		{1024, -208, 105105},
		{3584, -3328, 1144, 315315},
	},
	{
		{-128, 135135},
		{-2560, 832, 405405},
	},
	{
		{128, 99099},
	},
}
