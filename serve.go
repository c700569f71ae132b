package hxrating

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/hxui/hxrating/i18n"
)

// ServeHTTP dispatches requests under the widget's prefix to its actions:
//
//	GET  <prefix>/         default render
//	GET  <prefix>/hover    set hover preview to ?star
//	GET  <prefix>/leave    clear hover preview
//	POST <prefix>/select   forward the selection to SelectFunc
//
// Mount the widget through a Registry rather than calling this directly;
// the registry supplies the props codec and the CSRF guard.
func (w *Widget) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	action := strings.Trim(strings.TrimPrefix(r.URL.Path, w.prefix), "/")

	props, err := w.decodeProps(r)
	if err != nil {
		w.fail(rw, r, err)
		return
	}

	var res Result
	switch action {
	case "":
		if !requireMethod(rw, r, http.MethodGet) {
			return
		}
		res = OK(props)
	case "hover":
		if !requireMethod(rw, r, http.MethodGet) {
			return
		}
		res = w.handleHover(props, r)
	case "leave":
		if !requireMethod(rw, r, http.MethodGet) {
			return
		}
		res = w.handleLeave(props)
	case "select":
		if !requireMethod(rw, r, http.MethodPost) {
			return
		}
		res = w.handleSelect(r.Context(), props, r)
	default:
		w.fail(rw, r, fmt.Errorf("%w: %q", ErrUnknownAction, action))
		return
	}

	w.writeResult(rw, r, res)
}

// handleHover sets the hover preview. A no-op for read-only props; harmless
// if it is ever reached there, since read-only markup wires no actions.
func (w *Widget) handleHover(props Props, r *http.Request) Result {
	if props.ReadOnly {
		return OK(props)
	}
	star, err := starParam(r)
	if err != nil {
		return Err(props, err)
	}
	props.Hovering = star
	return OK(props)
}

// handleLeave clears the hover preview.
func (w *Widget) handleLeave(props Props) Result {
	if !props.ReadOnly {
		props.Hovering = 0
	}
	return OK(props)
}

// handleSelect logs the raw selection, forwards it to the SelectFunc
// exactly once, and re-renders with the chosen rating. The selection event
// is always emitted for host-page listeners.
func (w *Widget) handleSelect(ctx context.Context, props Props, r *http.Request) Result {
	star, err := starParam(r)
	if err != nil {
		return Err(props, err)
	}
	if props.ReadOnly || props.Rating.IsLoading() {
		return Err(props, ErrSelectDisabled)
	}
	if w.selectFn == nil {
		// Caller misconfiguration: an editable widget without a callback
		// should have been NewReadOnly.
		return Err(props, ErrNoSelectHandler)
	}

	w.log.LogAttrs(ctx, slog.LevelInfo, "rating star selected",
		slog.String("widget", w.name),
		slog.Int("stars", star))

	if err := w.selectFn(ctx, star); err != nil {
		return Err(props, err)
	}

	props.Rating = RatingOf(float64(star))
	props.Hovering = 0

	res := OK(props).Trigger(EventRatingSelected, map[string]any{"stars": star})
	if w.savedFlash {
		res = res.Flash(FlashSuccess, w.translator.Translate(i18n.KeySaved))
	}
	return res
}

// decodeProps extracts and verifies the encoded props from the request.
// A request without props renders the widget's defaults.
func (w *Widget) decodeProps(r *http.Request) (Props, error) {
	encoded := r.URL.Query().Get("p")
	if encoded == "" && r.Method != http.MethodGet {
		if err := r.ParseForm(); err != nil {
			return Props{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		encoded = r.PostFormValue("p")
	}
	if encoded == "" {
		return Props{}, nil
	}
	if w.codec == nil {
		return Props{}, fmt.Errorf("%w: widget not mounted", ErrInvalidFormat)
	}

	m, err := w.codec.Decode(encoded, w.sensitive)
	if err != nil {
		return Props{}, wrapCodecError(err)
	}
	return propsFromMap(m)
}

// writeResult renders the result props to a buffer first, so a render
// failure (invalid size) produces an error response instead of partial
// markup, then applies headers, trigger, and flashes.
func (w *Widget) writeResult(rw http.ResponseWriter, r *http.Request, res Result) {
	if res.err != nil {
		w.fail(rw, r, res.err)
		return
	}

	var buf bytes.Buffer
	if err := w.Render(res.props).Render(r.Context(), &buf); err != nil {
		w.fail(rw, r, err)
		return
	}
	buf.WriteString(renderFlashesOOB(res.flashes))

	for k, v := range res.headers {
		rw.Header().Set(k, v)
	}
	if trigger := buildTriggerHeader(res.trigger, res.triggerData); trigger != "" {
		rw.Header().Set("HX-Trigger", trigger)
	}
	rw.Header().Set("Content-Type", "text/html; charset=utf-8")

	status := res.status
	if status == 0 {
		status = http.StatusOK
	}
	rw.WriteHeader(status)
	_, _ = io.Copy(rw, &buf)
}

// fail routes an error through the registry's OnError handler, falling back
// to the default policy for unmounted widgets.
func (w *Widget) fail(rw http.ResponseWriter, r *http.Request, err error) {
	if w.onError != nil {
		w.onError(rw, r, err)
		return
	}
	defaultErrorHandler(rw, r, err)
}

// starParam parses and validates the star index from query or form values.
func starParam(r *http.Request) (int, error) {
	raw := r.FormValue("star")
	star, err := strconv.Atoi(raw)
	if err != nil || star < 1 || star > 5 {
		return 0, fmt.Errorf("%w: star %q", ErrInvalidFormat, raw)
	}
	return star, nil
}

func requireMethod(rw http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method || (method == http.MethodGet && r.Method == http.MethodHead) {
		return true
	}
	rw.Header().Set("Allow", method)
	http.Error(rw, "Method not allowed", http.StatusMethodNotAllowed)
	return false
}
