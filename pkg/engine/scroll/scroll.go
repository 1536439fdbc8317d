// Package scroll provides the scroll-offset clamp shared by every
// scrollable panel (the poem reader and the arcade menu).
package scroll

// MaxOffset returns the largest legal scroll offset for a viewport of
// the given extent over the given content extent. Content smaller than
// the viewport never scrolls.
func MaxOffset(viewport, content float64) float64 {
	max := content - viewport
	if max < 0 {
		return 0
	}
	return max
}

// Clamp applies delta to offset and clamps the result to
// [0, MaxOffset(viewport, content)]. Out-of-range requests are clamped,
// never rejected.
func Clamp(offset, delta, viewport, content float64) float64 {
	next := offset + delta
	if next < 0 {
		return 0
	}
	if max := MaxOffset(viewport, content); next > max {
		return max
	}
	return next
}
