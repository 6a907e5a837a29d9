package geodesic

import "math"

// Result is the solution of a direct or inverse problem. Mask records which
// outputs were computed; the others are NaN.
//
// Lat1, Lon1, Lat2 and A12 are always set. Lon2 is always set by the inverse
// problem and needs LONGITUDE in the direct problem. Azi1 and Azi2 need
// AZIMUTH (Azi1 is always set by the direct problem), S12 needs DISTANCE
// unless it was the input of the direct problem,
// ReducedLength needs REDUCED_LENGTH, M12 and M21 need GEODESIC_SCALE, Area
// needs AREA.
type Result struct {
	Lat1, Lon1, Azi1 float64 // degrees
	Lat2, Lon2, Azi2 float64 // degrees

	S12           float64 // distance, meters
	A12           float64 // arc length on the auxiliary sphere, degrees
	ReducedLength float64 // m12, meters
	M12, M21      float64 // geodesic scales, dimensionless
	Area          float64 // S12, area between the geodesic and the equator, meters²

	Mask int
}

func newResult() Result {
	nan := math.NaN()
	return Result{
		Lat1: nan, Lon1: nan, Azi1: nan,
		Lat2: nan, Lon2: nan, Azi2: nan,
		S12: nan, A12: nan, ReducedLength: nan,
		M12: nan, M21: nan, Area: nan,
	}
}

// Has reports whether every output in mask was computed.
func (r Result) Has(mask int) bool {
	mask &= outMask
	return r.Mask&mask == mask
}
