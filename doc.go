// Package hxrating provides a server-rendered, interactive star-rating
// widget for Go web applications using Templ templates and HTMX.
//
// The widget renders a row of five stars reflecting a numeric rating in
// [0,5], with hover preview, click-to-select, half-star styling for
// fractional ratings, accessible titles, and a distinct loading state.
// All business logic around a selection (persisting the rating, deciding
// what the new value means) stays with the host application, which supplies
// a SelectFunc when constructing an editable widget.
//
// # State Model
//
// The widget itself holds no per-request state. Everything needed to render
// is carried in Props, which round-trip through URLs as HMAC-signed (or,
// for sensitive widgets, AES-GCM encrypted) msgpack payloads. The only
// transient state is the hover preview, a single star index in Props that
// the hover/leave actions update through HTMX requests:
//
//	mouseenter star 3 -> GET  <prefix>/hover  -> re-render with Hovering=3
//	mouseleave widget -> GET  <prefix>/leave  -> re-render with Hovering=0
//	click star 5      -> POST <prefix>/select -> SelectFunc(ctx, 5), re-render
//
// # Rating Values
//
// RatingValue distinguishes three cases the UI renders differently:
//
//	hxrating.RatingValue{}   // zero value: not yet loaded (loading state)
//	hxrating.NoRating()      // loaded, no ratings exist yet
//	hxrating.RatingOf(3.5)   // a known rating
//
// # Variants
//
// Editable widgets are built with New and require a SelectFunc; display-only
// widgets are built with NewReadOnly and carry no callback at all:
//
//	w := hxrating.New("addon-rating", func(ctx context.Context, stars int) error {
//	    return store.Rate(ctx, addonID, stars)
//	})
//
//	avg := hxrating.NewReadOnly("addon-average")
//
// Read-only widgets never wire any HTMX actions and can be rendered directly
// without mounting. Editable widgets are mounted on a Registry, which owns
// the props codec and the HTTP error policy:
//
//	reg := hxrating.NewRegistry([]byte(signingKey))
//	reg.Add(w)
//	http.Handle("/_c/", reg.Handler())
//
// # Collaborators
//
// Title and description strings come from an i18n.Translator (the default is
// an English catalog built on golang.org/x/text); selection events are
// logged through an injected *slog.Logger before the SelectFunc runs.
// Both are optional and have working defaults.
//
// # Errors
//
// Misconfiguration fails loudly and synchronously: an unrecognized Size
// aborts rendering before any markup is written (ErrInvalidSize), and a
// select request reaching an editable widget that has no SelectFunc is a
// programmer error (ErrNoSelectHandler). Codec failures surface as
// ErrSignatureInvalid, ErrDecryptFailed, or ErrInvalidFormat and map to
// 400 responses by default.
package hxrating
