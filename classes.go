package hxrating

import (
	"sort"
	"strings"
)

// ComposeClasses joins a base class, variant classes, and conditionally
// included classes into a single class attribute value.
//
// Empty variants are skipped. Conditional classes are emitted in sorted
// order so renders are deterministic.
func ComposeClasses(base string, variants []string, cond map[string]bool) string {
	parts := make([]string, 0, 1+len(variants)+len(cond))
	if base != "" {
		parts = append(parts, base)
	}
	for _, v := range variants {
		if v != "" {
			parts = append(parts, v)
		}
	}

	keys := make([]string, 0, len(cond))
	for k, on := range cond {
		if on && k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	parts = append(parts, keys...)

	return strings.Join(parts, " ")
}

// starState computes the visual state of star s (1-5) for a rating and an
// active hover index (0 for none).
//
// An active hover previews the would-be rating: every star up to the
// hovered one is selected and half-star styling never applies. Otherwise a
// star is selected when the rating reaches s-0.25, and half-filled in the
// band just below that. The 0.25/0.75 boundaries are product copy from the
// original UI, not a derived rule; keep them exact.
func starState(s int, rating RatingValue, hovering int) (selected, half bool) {
	if hovering > 0 {
		return s <= hovering, false
	}
	d := float64(s) - rating.orZero()
	return d <= 0.25, d > 0.25 && d <= 0.75
}
