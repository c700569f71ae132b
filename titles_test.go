package hxrating

import (
	"strings"
	"testing"

	"github.com/hxui/hxrating/i18n"
)

func TestDescription(t *testing.T) {
	tr := i18n.Default()

	tests := []struct {
		name   string
		rating RatingValue
		expect string
	}{
		{"known rating", RatingOf(3.5), "Rated 3.5 out of 5"},
		{"whole rating keeps one decimal", RatingOf(4), "Rated 4.0 out of 5"},
		{"empty rating", NoRating(), "There are no ratings yet."},
		{"loading rating", RatingValue{}, "There are no ratings yet."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := description(tr, tt.rating); got != tt.expect {
				t.Errorf("description() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestStarTitle(t *testing.T) {
	tr := i18n.Default()

	tests := []struct {
		name   string
		rating RatingValue
		star   int
		expect string
	}{
		{"exact match confirms", RatingOf(4), 4, "Rated 4.0 out of 5"},
		{"other star offers update", RatingOf(4), 5, "Update your rating to 5 out of 5"},
		{"fractional rating never matches", RatingOf(3.5), 3, "Update your rating to 3 out of 5"},
		{"no rating invites first one", NoRating(), 2, "Rate this add-on 2 out of 5"},
		{"loading invites first one", RatingValue{}, 1, "Rate this add-on 1 out of 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := starTitle(tr, tt.rating, tt.star); got != tt.expect {
				t.Errorf("starTitle() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestStarTitleOutOfRangePanics(t *testing.T) {
	for _, star := range []int{0, 6, -1} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Errorf("starTitle with star %d did not panic", star)
					return
				}
				if msg, ok := r.(string); !ok || !strings.Contains(msg, "out of range") {
					t.Errorf("unexpected panic value: %v", r)
				}
			}()
			starTitle(i18n.Default(), RatingOf(3), star)
		}()
	}
}
