// Package i18n supplies the translation and number-formatting collaborator
// used by the rating widget for its accessible titles and descriptions.
//
// The widget only depends on the Translator interface; hosts with their own
// localization stack can satisfy it directly. Catalog is the built-in
// implementation, backed by golang.org/x/text for locale-aware formatting.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Key identifies a translatable message.
type Key string

// Message keys used by the widget. The argument conventions are part of the
// contract: RatedOutOf takes the float64 rating, UpdateRating and RateThis
// take the int star value, NoRatings takes no arguments.
const (
	KeyRatedOutOf   Key = "rating.rated_out_of"
	KeyNoRatings    Key = "rating.no_ratings"
	KeyUpdateRating Key = "rating.update_to"
	KeyRateThis     Key = "rating.rate_this"
	KeySaved        Key = "rating.saved"
)

// Translator renders a templated, localized message for a key.
type Translator interface {
	Translate(key Key, args ...any) string
}

// Catalog is a Translator backed by an x/text message printer, giving
// locale-aware number formatting for substituted values.
type Catalog struct {
	printer  *message.Printer
	messages map[Key]string
}

// englishMessages carries the exact UI copy for the widget.
var englishMessages = map[Key]string{
	KeyRatedOutOf:   "Rated %.1f out of 5",
	KeyNoRatings:    "There are no ratings yet.",
	KeyUpdateRating: "Update your rating to %d out of 5",
	KeyRateThis:     "Rate this add-on %d out of 5",
	KeySaved:        "Your rating was saved.",
}

// NewCatalog creates a catalog for the given language, seeded with the
// English messages. Use Set to override copy for other locales.
func NewCatalog(tag language.Tag) *Catalog {
	msgs := make(map[Key]string, len(englishMessages))
	for k, v := range englishMessages {
		msgs[k] = v
	}
	return &Catalog{
		printer:  message.NewPrinter(tag),
		messages: msgs,
	}
}

// Default returns the English catalog.
func Default() *Catalog {
	return NewCatalog(language.English)
}

// Set overrides the format string for a key.
func (c *Catalog) Set(key Key, format string) {
	c.messages[key] = format
}

// Translate renders the message for key with the given arguments. Unknown
// keys fall back to the key itself so a missing translation is visible
// rather than silent.
func (c *Catalog) Translate(key Key, args ...any) string {
	format, ok := c.messages[key]
	if !ok {
		return string(key)
	}
	return c.printer.Sprintf(format, args...)
}
