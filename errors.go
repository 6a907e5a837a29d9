package geodesic

import "errors"

// ErrInvalidParameter is returned when an ellipsoid cannot be constructed
// from the given radius and flattening.
var ErrInvalidParameter = errors.New("geodesic: invalid parameter")
