package sanitizer

// Numeric represents numeric types that support basic comparisons.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Clamp constrains a numeric value to be within the specified range [min, max].
func Clamp[T Numeric](value T, min T, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampMin ensures a numeric value is not less than the specified minimum.
func ClampMin[T Numeric](value T, min T) T {
	if value < min {
		return min
	}
	return value
}
