package hxrating

import "fmt"

// Size selects the widget's size variant. Anything other than the two
// recognized values (or empty, which defaults to SizeLarge) is a
// configuration error and aborts rendering.
type Size string

const (
	SizeSmall Size = "small"
	SizeLarge Size = "large"
)

// Props is the per-render configuration of a widget.
//
// Props must stay lean and serializable - they are encoded into action URLs
// and round-trip with every HTMX request. Hovering is the only field the
// widget writes; everything else is caller-supplied and passed through
// unchanged.
type Props struct {
	// Rating is the value to display. The zero RatingValue renders the
	// loading state.
	Rating RatingValue

	// ReadOnly disables all interaction. Read-only widgets render plain
	// elements with no HTMX wiring and ignore hover state entirely.
	ReadOnly bool

	// Size is the size variant. Empty defaults to SizeLarge.
	Size Size

	// Yellow switches the stars to the yellow color variant.
	Yellow bool

	// Class is an extra CSS class appended to the container.
	Class string

	// Hovering is the hover-preview star index (1-5), or 0 for none.
	// Owned by the widget; hosts should leave it zero.
	Hovering int
}

// effectiveSize resolves the size default and validates the variant.
func (p Props) effectiveSize() (Size, error) {
	switch p.Size {
	case "":
		return SizeLarge, nil
	case SizeSmall, SizeLarge:
		return p.Size, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSize, string(p.Size))
	}
}

// Short map keys keep the encoded payload small; fields are omitted at
// their zero values. This is the hand-written equivalent of the codec
// interface a code generator would emit.
func (p Props) toMap() map[string]any {
	m := map[string]any{"rk": int(p.Rating.kind)}
	if p.Rating.kind == ratingKnown {
		m["r"] = p.Rating.value
	}
	if p.ReadOnly {
		m["ro"] = true
	}
	if p.Size != "" {
		m["sz"] = string(p.Size)
	}
	if p.Yellow {
		m["y"] = true
	}
	if p.Class != "" {
		m["cl"] = p.Class
	}
	if p.Hovering != 0 {
		m["h"] = p.Hovering
	}
	return m
}

func propsFromMap(m map[string]any) (Props, error) {
	var p Props

	kind, ok := asInt(m["rk"])
	if !ok {
		return p, fmt.Errorf("%w: missing rating kind", ErrInvalidFormat)
	}
	switch ratingKind(kind) {
	case ratingUnknown:
		p.Rating = RatingValue{}
	case ratingEmpty:
		p.Rating = NoRating()
	case ratingKnown:
		v, ok := asFloat(m["r"])
		if !ok {
			return p, fmt.Errorf("%w: missing rating value", ErrInvalidFormat)
		}
		p.Rating = RatingOf(v)
	default:
		return p, fmt.Errorf("%w: rating kind %d", ErrInvalidFormat, kind)
	}

	if v, ok := asBool(m["ro"]); ok {
		p.ReadOnly = v
	}
	if v, ok := asString(m["sz"]); ok {
		p.Size = Size(v)
	}
	if v, ok := asBool(m["y"]); ok {
		p.Yellow = v
	}
	if v, ok := asString(m["cl"]); ok {
		p.Class = v
	}
	if v, ok := asInt(m["h"]); ok {
		p.Hovering = v
	}
	return p, nil
}

// msgpack decodes numbers into whichever integer width fits, so the
// coercions below accept the whole family.

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	if n, ok := asInt(v); ok {
		return float64(n), true
	}
	return 0, false
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
