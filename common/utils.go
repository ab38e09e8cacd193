package common

// Number is the set of numeric types accepted by the generic helpers below.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Sign returns +1 for positive values, -1 for negative values and 0 for zero.
//
// Parameters:
//   - v: the value to inspect
//
// Returns:
//   - T: the sign of v in the same numeric type
func Sign[T Number](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
