package hxrating

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestIsHTMX(t *testing.T) {
	tests := []struct {
		name   string
		header string
		expect bool
	}{
		{"with HX-Request true", "true", true},
		{"with HX-Request false", "false", false},
		{"without header", "", false},
		{"with other value", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("HX-Request", tt.header)
			}
			if got := IsHTMX(req); got != tt.expect {
				t.Errorf("IsHTMX() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestBuildTriggerHeader(t *testing.T) {
	tests := []struct {
		name   string
		event  string
		data   map[string]any
		expect string
	}{
		{"empty", "", nil, ""},
		{"bare event", "rating:selected", nil, "rating:selected"},
		{"event with data", "rating:selected", map[string]any{"stars": 5},
			`{"rating:selected":{"stars":5}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildTriggerHeader(tt.event, tt.data); got != tt.expect {
				t.Errorf("buildTriggerHeader() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestParseTriggerHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		expect []string
	}{
		{"bare event", "rating:selected", []string{"rating:selected"}},
		{"comma list", "a, b", []string{"a", "b"}},
		{"json payload", `{"rating:selected":{"stars":5}}`, []string{"rating:selected"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTriggerHeader(tt.header)
			if len(got) != len(tt.expect) {
				t.Fatalf("parseTriggerHeader() = %v, want %v", got, tt.expect)
			}
			for i := range got {
				if got[i] != tt.expect[i] {
					t.Errorf("event[%d] = %q, want %q", i, got[i], tt.expect[i])
				}
			}
		})
	}
}

func TestRenderFlashesOOB(t *testing.T) {
	if got := renderFlashesOOB(nil); got != "" {
		t.Errorf("renderFlashesOOB(nil) = %q, want empty", got)
	}

	html := renderFlashesOOB([]Flash{
		{Level: FlashSuccess, Message: "Saved!"},
		{Level: FlashError, Message: "a < b"},
	})
	for _, want := range []string{
		`<div id="hxr-toasts" hx-swap-oob="beforeend">`,
		`hxr-toast-success">Saved!</div>`,
		`a &lt; b`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("OOB markup missing %q in %q", want, html)
		}
	}

	parsed := parseFlashesFromHTML(html)
	if len(parsed) != 2 || parsed[0].Level != FlashSuccess || parsed[0].Message != "Saved!" {
		t.Errorf("parseFlashesFromHTML() = %v", parsed)
	}
}
