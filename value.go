package hxrating

import "fmt"

// ratingKind discriminates the three observable rating states.
type ratingKind uint8

const (
	ratingUnknown ratingKind = iota // not yet loaded
	ratingEmpty                     // loaded, no ratings exist
	ratingKnown                     // loaded, numeric value present
)

// RatingValue is the rating supplied by the host application.
//
// The zero value means "not yet loaded" and renders the widget in its
// loading state. NoRating() means "loaded, but nothing to show" - the two
// are visually distinct and must not be conflated. RatingOf(v) carries a
// numeric rating in [0,5].
//
// RatingValue is immutable; the widget never modifies the value it is
// given.
type RatingValue struct {
	kind  ratingKind
	value float64
}

// RatingOf returns a known rating value. Values are expected in [0,5];
// the widget clamps star math rather than rejecting out-of-range input.
func RatingOf(v float64) RatingValue {
	return RatingValue{kind: ratingKnown, value: v}
}

// NoRating returns the explicit "loaded, no ratings" value.
func NoRating() RatingValue {
	return RatingValue{kind: ratingEmpty}
}

// IsLoading reports whether the rating has not been loaded yet.
func (r RatingValue) IsLoading() bool {
	return r.kind == ratingUnknown
}

// IsEmpty reports whether the rating loaded but no rating exists.
func (r RatingValue) IsEmpty() bool {
	return r.kind == ratingEmpty
}

// Value returns the numeric rating and whether one is present.
func (r RatingValue) Value() (float64, bool) {
	if r.kind != ratingKnown {
		return 0, false
	}
	return r.value, true
}

// orZero returns the numeric rating, treating loading/empty as zero.
// Star selection math uses this: both non-numeric states render zero
// selected stars.
func (r RatingValue) orZero() float64 {
	return r.value
}

// String implements fmt.Stringer for logs and test failures.
func (r RatingValue) String() string {
	switch r.kind {
	case ratingEmpty:
		return "none"
	case ratingKnown:
		return fmt.Sprintf("%.2f", r.value)
	default:
		return "loading"
	}
}
