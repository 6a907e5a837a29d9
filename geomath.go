package geodesic

import "math"

func sq(x float64) float64 {
	return x * x
}

// polyval evaluates the polynomial of degree N with coefficients p[s:s+N+1],
// highest degree first, by Horner's method.
func polyval(N int, p []float64, s int, x float64) float64 {
	var y float64
	if N < 0 {
		y = 0
	} else {
		y = p[s]
	}
	for N > 0 {
		N -= 1
		s += 1
		y = y*x + p[s]
	}
	return y
}

// sum returns s = round(u + v) and the exact error t = u + v - s.
func sum(u, v float64) (s, t float64) {
	s = u + v
	up := s - v
	vpp := s - up
	up -= u
	vpp -= v
	t = -(up + vpp)
	return s, t
}

// remainder reduces x to [-y/2, y/2).
func remainder(x, y float64) float64 {
	z := math.NaN()
	if !math.IsInf(x, 0) {
		z = math.Mod(x, y)
	}
	switch {
	case z < -y/2:
		return z + y
	case z < y/2:
		return z
	default:
		return z - y
	}
}

// angNormalize reduces x to (-180, 180].
func angNormalize(x float64) float64 {
	y := remainder(x, 360)
	if y == -180 {
		return 180
	}
	return y
}

// angDiff returns y - x reduced to [-180,180] as d + e, where e is the
// rounding error of d.
func angDiff(x, y float64) (float64, float64) {
	d, t := sum(angNormalize(-x), angNormalize(y))
	d = angNormalize(d)
	if d == 180 && t > 0 {
		return sum(-180, t)
	}
	return sum(d, t)
}

// angRound snaps |x| < 1/16 degree to a grid of 2^-57 so that angles
// within about 1 pm of zero become exactly zero.
func angRound(x float64) float64 {
	z := 1 / 16.0
	y := math.Abs(x)
	if y < z {
		y = z - (z - y)
	}
	switch {
	case x == 0:
		return 0.0
	case x < 0:
		return -y
	default:
		return y
	}
}

func radians(deg float64) float64 {
	return math.Pi * deg / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// atan2d computes atan2(y, x) in degrees, reducing the arguments so the
// underlying atan2 works in [-45, 45].
func atan2d(y, x float64) float64 {
	q := 0
	if math.Abs(y) > math.Abs(x) {
		q = 2
		x, y = y, x
	}
	if x < 0 {
		q++
		x = -x
	}
	ang := degrees(math.Atan2(y, x))
	switch q {
	case 1:
		if y >= 0 {
			ang = 180 - ang
		} else {
			ang = -180 - ang
		}
	case 2:
		ang = 90 - ang
	case 3:
		ang = -90 + ang
	}
	return ang
}

// norm scales (x, y) to unit length.
func norm(x, y float64) (float64, float64) {
	r := math.Hypot(x, y)
	return x / r, y / r
}

// latFix maps latitudes outside [-90, 90] to NaN.
func latFix(x float64) float64 {
	if math.Abs(x) > 90 {
		return math.NaN()
	}
	return x
}

// sincosd computes the sine and cosine of x in degrees. The argument is
// reduced exactly to [-45, 45] before conversion to radians, so multiples of
// 90 give exact results.
func sincosd(x float64) (float64, float64) {
	r := math.NaN()
	if !math.IsInf(x, 0) {
		r = math.Mod(x, 360)
	}
	q := 0
	if !math.IsNaN(r) {
		q = int(math.Round(r / 90))
	}
	r -= float64(90 * q)
	r = radians(r)
	s := math.Sin(r)
	c := math.Cos(r)
	switch q & 3 {
	case 1:
		s, c = c, -s
	case 2:
		s, c = -s, -c
	case 3:
		s, c = -c, s
	}
	// Convert -0 to 0, keep the sign of a zero argument.
	c += 0
	if x == 0 {
		return x, c
	}
	return s, c
}
