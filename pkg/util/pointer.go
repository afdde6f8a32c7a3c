package util

// Value dereferences v, returning the zero value for a nil pointer.
func Value[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

// Pointer returns a pointer to v. Handy for literal optional fields.
func Pointer[T any](v T) *T {
	return &v
}
