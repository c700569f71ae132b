package hxrating

import (
	"fmt"

	"github.com/hxui/hxrating/i18n"
)

// description is the overall accessible summary of the widget: the rating
// when one exists, otherwise the "no ratings yet" copy. Loading and empty
// share the same description; they differ visually via the loading class.
func description(t i18n.Translator, rating RatingValue) string {
	if v, ok := rating.Value(); ok {
		return t.Translate(i18n.KeyRatedOutOf, v)
	}
	return t.Translate(i18n.KeyNoRatings)
}

// starTitle is the per-star title in editable mode: confirmation copy for
// the star matching the current rating exactly, update copy for every other
// star, and first-rating copy when no rating exists yet.
//
// Star indexes outside 1..5 are a contract violation by the caller, not a
// runtime condition, and panic.
func starTitle(t i18n.Translator, rating RatingValue, star int) string {
	if star < 1 || star > 5 {
		panic(fmt.Sprintf("hxrating: star index %d out of range 1..5", star))
	}
	v, ok := rating.Value()
	if !ok {
		return t.Translate(i18n.KeyRateThis, star)
	}
	if float64(star) == v {
		return t.Translate(i18n.KeyRatedOutOf, v)
	}
	return t.Translate(i18n.KeyUpdateRating, star)
}
