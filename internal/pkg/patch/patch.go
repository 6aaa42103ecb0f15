// Package patch applies partial updates where a nil pointer means "leave as is".
package patch

// Apply overwrites *dst with *src when src is set and reports whether it did.
func Apply[T any](dst *T, src *T) bool {
	if src == nil {
		return false
	}
	*dst = *src
	return true
}
