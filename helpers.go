package hxrating

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response with the right
// content type. Useful for host pages embedding the widget; the widget's
// own responses go through its dispatcher.
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// IsHTMX reports whether the request originated from HTMX. HTMX sends
// HX-Request: true on every request it issues; the registry's CSRF guard
// relies on this for mutating methods.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// buildTriggerHeader formats the HX-Trigger header value: a bare event name
// when there is no payload, otherwise a JSON object keyed by event name so
// HTMX exposes the data on evt.detail.
func buildTriggerHeader(event string, data map[string]any) string {
	if event == "" {
		return ""
	}
	if data == nil {
		return event
	}
	payload, err := json.Marshal(map[string]any{event: data})
	if err != nil {
		return event
	}
	return string(payload)
}
