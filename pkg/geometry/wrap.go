package geometry

// WrapAround maps x into the half-open interval [min, max) by repeatedly
// adding or subtracting the interval length. It handles values arbitrarily
// far outside the interval in either direction, not just a single wrap.
// Requires min < max.
func WrapAround(x, min, max float64) float64 {
	gap := max - min
	for x < min {
		x += gap
	}
	for x >= max {
		x -= gap
	}
	return x
}
