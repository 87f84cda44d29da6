// Package ptr provides helpers for the optional (pointer) cells of a channel record.
package ptr

// Float64 creates a pointer to the given float64 value.
func Float64(f float64) *float64 {
	return &f
}

// ValueOr returns *p, or fallback when p is nil.
func ValueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
