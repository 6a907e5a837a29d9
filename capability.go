package geodesic

// Capability bits select which series coefficient sets are precomputed.
// Each output bit below carries the capabilities it needs, so an output mask
// is also a valid capability mask for NewLine.

const capNone = 0
const capC1 = 1 << 0
const capC1p = 1 << 1
const capC2 = 1 << 2
const capC3 = 1 << 3
const capC4 = 1 << 4
const capAll = 0x1F
const capMask = capAll
const outAll = 0x7F80
const outMask = 0xFF80 // Includes LONG_UNROLL

// Output mask bits.
const (
	// LATITUDE requests lat2.
	LATITUDE = 1<<7 | capNone
	// LONGITUDE requests lon2.
	LONGITUDE = 1<<8 | capC3
	// AZIMUTH requests azi1 and azi2.
	AZIMUTH = 1<<9 | capNone
	// DISTANCE requests s12.
	DISTANCE = 1<<10 | capC1
	// DISTANCE_IN allows a Line to be positioned by distance.
	DISTANCE_IN = 1<<11 | capC1 | capC1p
	// REDUCED_LENGTH requests m12.
	REDUCED_LENGTH = 1<<12 | capC1 | capC2
	// GEODESIC_SCALE requests M12 and M21.
	GEODESIC_SCALE = 1<<13 | capC1 | capC2
	// AREA requests S12.
	AREA = 1<<14 | capC4
	// LONG_UNROLL reports longitudes without reducing them to [-180, 180].
	LONG_UNROLL = 1 << 15
	// STANDARD is lat, lon, azimuth and distance.
	STANDARD = LATITUDE | LONGITUDE | AZIMUTH | DISTANCE
	// ALL does not include LONG_UNROLL.
	ALL = outAll | capAll
)
