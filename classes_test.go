package hxrating

import (
	"math"
	"testing"
)

func TestComposeClasses(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		variants []string
		cond     map[string]bool
		expect   string
	}{
		{
			name:   "base only",
			base:   "Rating",
			expect: "Rating",
		},
		{
			name:     "variants skip empties",
			base:     "Rating",
			variants: []string{"Rating--large", ""},
			expect:   "Rating Rating--large",
		},
		{
			name:   "conditionals sorted and filtered",
			base:   "Rating",
			cond:   map[string]bool{"b-on": true, "a-on": true, "off": false},
			expect: "Rating a-on b-on",
		},
		{
			name:     "everything together",
			base:     "Rating",
			variants: []string{"Rating--small", "extra"},
			cond:     map[string]bool{"Rating--editable": true},
			expect:   "Rating Rating--small extra Rating--editable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComposeClasses(tt.base, tt.variants, tt.cond); got != tt.expect {
				t.Errorf("ComposeClasses() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestStarStateThresholds(t *testing.T) {
	tests := []struct {
		name     string
		star     int
		rating   float64
		selected bool
		half     bool
	}{
		{"exact match selects", 3, 3.0, true, false},
		{"quarter above still selects", 4, 3.75, true, false},
		{"just past quarter is half", 4, 3.74, false, true},
		{"half point is half", 4, 3.5, false, true},
		{"three-quarter boundary is half", 4, 3.25, false, true},
		{"past three quarters is empty", 4, 3.24, false, false},
		{"zero rating selects nothing", 1, 0, false, false},
		{"full rating selects last star", 5, 5, true, false},
		{"4.8 rounds star five up", 5, 4.8, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected, half := starState(tt.star, RatingOf(tt.rating), 0)
			if selected != tt.selected || half != tt.half {
				t.Errorf("starState(%d, %v) = (%v, %v), want (%v, %v)",
					tt.star, tt.rating, selected, half, tt.selected, tt.half)
			}
		})
	}
}

// For any rating r in [0,5] with no hover, exactly floor(r+0.25) stars are
// selected and at most one star is half.
func TestStarStateSelectionCount(t *testing.T) {
	ratings := []float64{0, 0.2, 0.25, 0.3, 0.75, 0.76, 1, 1.5, 2.2, 2.5,
		2.8, 3, 3.25, 3.49, 3.5, 3.75, 4, 4.2, 4.74, 4.75, 4.76, 5}

	for _, r := range ratings {
		var selected, half int
		for s := 1; s <= 5; s++ {
			sel, hf := starState(s, RatingOf(r), 0)
			if sel {
				selected++
			}
			if hf {
				half++
			}
			if sel && hf {
				t.Errorf("rating %v star %d both selected and half", r, s)
			}
		}

		want := int(math.Floor(r + 0.25))
		if want > 5 {
			want = 5
		}
		if selected != want {
			t.Errorf("rating %v: %d selected stars, want %d", r, selected, want)
		}
		if half > 1 {
			t.Errorf("rating %v: %d half stars, want at most 1", r, half)
		}
	}
}

func TestStarStateHoverOverridesRating(t *testing.T) {
	for h := 1; h <= 5; h++ {
		for s := 1; s <= 5; s++ {
			selected, half := starState(s, RatingOf(2.5), h)
			if selected != (s <= h) {
				t.Errorf("hover %d star %d selected = %v, want %v", h, s, selected, s <= h)
			}
			if half {
				t.Errorf("hover %d star %d is half; hover never yields half stars", h, s)
			}
		}
	}
}

func TestStarStateLoadingAndEmptySelectNothing(t *testing.T) {
	for _, rating := range []RatingValue{{}, NoRating()} {
		for s := 1; s <= 5; s++ {
			selected, half := starState(s, rating, 0)
			if selected || half {
				t.Errorf("rating %v star %d = (%v, %v), want no styling", rating, s, selected, half)
			}
		}
	}
}
