package hxrating

import (
	"context"
	"encoding/json"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Render returns the widget markup for the given props.
//
// Rendering is a pure function of props: the same props always produce the
// same markup, and nothing caller-supplied is mutated. An unrecognized size
// variant fails the render before any markup is written.
func (w *Widget) Render(props Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		var sb strings.Builder
		if err := w.writeMarkup(&sb, props); err != nil {
			return err
		}
		_, err := io.WriteString(out, sb.String())
		return err
	})
}

// writeMarkup emits the container, the visually-hidden description, and the
// five stars. Structure:
//
//	<div class="Rating ..." [title]>            container
//	  <span class="visually-hidden">...</span>  description for AT
//	  editable:  <span .Rating-star-slot (hover)><button (select)/></span> x5
//	  read-only: <div .Rating-star title/> x5
//	</div>
//
// Hover wiring sits on the slot wrapper and select wiring on the button,
// since one element can only carry a single HTMX verb.
func (w *Widget) writeMarkup(sb *strings.Builder, props Props) error {
	size, err := props.effectiveSize()
	if err != nil {
		return err
	}

	editable := !props.ReadOnly
	loading := props.Rating.IsLoading()
	hovering := props.Hovering
	if !editable {
		// Hover state is meaningless in read-only mode.
		hovering = 0
	}
	desc := description(w.translator, props.Rating)

	classes := ComposeClasses("Rating",
		[]string{"Rating--" + string(size), props.Class},
		map[string]bool{
			"Rating--editable":    editable,
			"Rating--loading":     loading,
			"Rating--yellowStars": props.Yellow,
		})

	var encoded string
	if editable && w.codec != nil {
		encoded, err = w.codec.Encode(props.toMap(), w.sensitive)
		if err != nil {
			return err
		}
	}

	sb.WriteString(`<div`)
	writeAttr(sb, "class", classes)
	if !editable {
		// Only read-only mode sets the container title, so the summary
		// doubles as a hoverable tooltip.
		writeAttr(sb, "title", desc)
	}
	if editable {
		writeAttr(sb, "hx-get", w.prefix+"/leave"+actionQuery(encoded, 0))
		writeAttr(sb, "hx-trigger", "mouseleave")
		writeAttr(sb, "hx-swap", string(SwapOuter))
	}
	sb.WriteString(`>`)

	sb.WriteString(`<span class="visually-hidden">`)
	sb.WriteString(html.EscapeString(desc))
	sb.WriteString(`</span>`)

	for s := 1; s <= 5; s++ {
		selected, half := starState(s, props.Rating, hovering)
		starClasses := ComposeClasses("Rating-star", nil, map[string]bool{
			"Rating-selected-star": selected,
			"Rating-half-star":     half,
		})

		if !editable {
			sb.WriteString(`<div`)
			writeAttr(sb, "class", starClasses)
			writeAttr(sb, "title", desc)
			sb.WriteString(`></div>`)
			continue
		}

		sb.WriteString(`<span class="Rating-star-slot"`)
		writeAttr(sb, "hx-get", w.prefix+"/hover"+actionQuery(encoded, s))
		writeAttr(sb, "hx-trigger", "mouseenter")
		writeAttr(sb, "hx-target", "closest .Rating")
		writeAttr(sb, "hx-swap", string(SwapOuter))
		sb.WriteString(`>`)

		sb.WriteString(`<button type="button"`)
		writeAttr(sb, "class", starClasses)
		writeAttr(sb, "title", starTitle(w.translator, props.Rating, s))
		if !loading {
			// Selection stays disabled until the rating has loaded; the
			// hover affordance on the slot remains.
			writeAttr(sb, "hx-post", w.prefix+"/select")
			writeAttr(sb, "hx-vals", selectVals(encoded, s))
			writeAttr(sb, "hx-target", "closest .Rating")
			writeAttr(sb, "hx-swap", string(SwapOuter))
		}
		sb.WriteString(`></button></span>`)
	}

	sb.WriteString(`</div>`)
	return nil
}

// writeAttr writes an HTML attribute with an escaped value.
func writeAttr(sb *strings.Builder, name, value string) {
	sb.WriteString(` `)
	sb.WriteString(name)
	sb.WriteString(`="`)
	sb.WriteString(html.EscapeString(value))
	sb.WriteString(`"`)
}

// actionQuery builds the query string for GET actions: encoded props plus
// an optional star index.
func actionQuery(encoded string, star int) string {
	var params []string
	if encoded != "" {
		params = append(params, "p="+encoded)
	}
	if star > 0 {
		params = append(params, "star="+strconv.Itoa(star))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + strings.Join(params, "&")
}

// selectVals builds the hx-vals JSON carrying encoded props and the star
// value for the POST select action.
func selectVals(encoded string, star int) string {
	vals := map[string]string{"star": strconv.Itoa(star)}
	if encoded != "" {
		vals["p"] = encoded
	}
	data, _ := json.Marshal(vals)
	return string(data)
}
