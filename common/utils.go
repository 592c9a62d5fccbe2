package common

// Coalesce returns the first value that is not the zero value of T, or the
// zero value when every argument is zero. Used for filling optional staging
// fields (sampler address modes, filters, LOD clamps) with defaults.
//
// Parameters:
//   - values: candidate values in priority order
//
// Returns:
//   - T: the first non-zero value, or the zero value of T
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
