package domain

import "time"

// Helpers used by the per-entity projectors to implement sparse merges.
// A source value that is "absent" (empty string, nil pointer, nil slice)
// never overwrites the destination.

// MergeString overwrites dst when src is non-empty.
func MergeString[S ~string](dst *S, src S) {
	if src != "" {
		*dst = src
	}
}

// MergeValue overwrites dst with *src when src is non-nil.
func MergeValue[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// MergeTime overwrites dst with *src when src is non-nil and not zero.
func MergeTime(dst *time.Time, src *time.Time) {
	if src != nil && !src.IsZero() {
		*dst = src.UTC()
	}
}

// MergeSlice replaces dst with a copy of src when src is non-nil. An empty
// non-nil slice clears the destination.
func MergeSlice[T any](dst *[]T, src []T) {
	if src != nil {
		*dst = append([]T(nil), src...)
	}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns *p, or the zero value when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// TimePtr returns nil for the zero time and a pointer to t otherwise.
func TimePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
