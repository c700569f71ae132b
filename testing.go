package hxrating

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
)

// TestResult holds the outcome of rendering a widget or exercising one of
// its actions in a test, with convenience assertions on the HTML, headers,
// triggered events, and flashes.
type TestResult struct {
	HTML       string
	StatusCode int
	Headers    http.Header
	Events     []string
	Flashes    []Flash
}

// TestRender renders a widget directly with the given props, bypassing
// HTTP. The widget does not need to be mounted; an unmounted widget renders
// action URLs without encoded props.
func TestRender(w *Widget, props Props) (*TestResult, error) {
	var buf bytes.Buffer
	if err := w.Render(props).Render(context.Background(), &buf); err != nil {
		return nil, err
	}
	return &TestResult{
		HTML:       buf.String(),
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
	}, nil
}

// TestAction runs a request through the registry's full handler chain,
// including the CSRF guard, props decoding, and result processing. The
// HX-Request header is set the way HTMX would.
//
//	res, err := hxrating.TestAction(reg, w.URL("select", props), http.MethodPost,
//	    map[string]string{"star": "5"})
func TestAction(reg *Registry, actionURL, method string, formData map[string]string) (*TestResult, error) {
	form := url.Values{}
	for k, v := range formData {
		form.Set(k, v)
	}

	req := httptest.NewRequest(method, actionURL, strings.NewReader(form.Encode()))
	if len(formData) > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("HX-Request", "true")

	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, req)

	res := &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}
	if trigger := rec.Header().Get("HX-Trigger"); trigger != "" {
		res.Events = parseTriggerHeader(trigger)
	}
	res.Flashes = parseFlashesFromHTML(res.HTML)
	return res, nil
}

// TestGet simulates a GET request against a mounted widget.
func TestGet(reg *Registry, url string) (*TestResult, error) {
	return TestAction(reg, url, http.MethodGet, nil)
}

// HTMLContains checks whether the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks whether the HTML contains every given substring.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLCount counts non-overlapping occurrences of a substring.
func (r *TestResult) HTMLCount(substr string) int {
	return strings.Count(r.HTML, substr)
}

// HasEvent checks whether an event was triggered via HX-Trigger.
func (r *TestResult) HasEvent(event string) bool {
	for _, e := range r.Events {
		if e == event {
			return true
		}
	}
	return false
}

// HasFlash checks whether a flash with the given level and message was
// rendered.
func (r *TestResult) HasFlash(level, message string) bool {
	for _, f := range r.Flashes {
		if f.Level == level && f.Message == message {
			return true
		}
	}
	return false
}

// IsOK checks for a 200 status.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// parseTriggerHeader extracts event names from an HX-Trigger value, which
// is either a bare event name or a JSON object keyed by event name.
func parseTriggerHeader(trigger string) []string {
	trigger = strings.TrimSpace(trigger)
	if trigger == "" {
		return nil
	}
	if strings.HasPrefix(trigger, "{") {
		var payload map[string]json.RawMessage
		if err := json.Unmarshal([]byte(trigger), &payload); err != nil {
			return []string{trigger}
		}
		events := make([]string, 0, len(payload))
		for name := range payload {
			events = append(events, name)
		}
		return events
	}

	parts := strings.Split(trigger, ",")
	events := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			events = append(events, p)
		}
	}
	return events
}

// parseFlashesFromHTML extracts flashes from the OOB toast markup.
func parseFlashesFromHTML(html string) []Flash {
	var flashes []Flash
	const prefix = `<div class="hxr-toast hxr-toast-`

	idx := 0
	for {
		start := strings.Index(html[idx:], prefix)
		if start == -1 {
			break
		}
		start += idx + len(prefix)

		levelEnd := strings.Index(html[start:], `"`)
		if levelEnd == -1 {
			break
		}
		level := html[start : start+levelEnd]

		tagEnd := strings.Index(html[start:], ">")
		if tagEnd == -1 {
			break
		}
		contentStart := start + tagEnd + 1

		contentEnd := strings.Index(html[contentStart:], "</div>")
		if contentEnd == -1 {
			break
		}

		flashes = append(flashes, Flash{
			Level:   level,
			Message: html[contentStart : contentStart+contentEnd],
		})
		idx = contentStart + contentEnd
	}
	return flashes
}
