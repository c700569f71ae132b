package hxrating

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Flash levels for toast notifications.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Flash is a one-time toast notification appended to the #hxr-toasts
// container via an out-of-band swap. The widget emits one after a
// successful selection when built with WithSavedFlash.
type Flash struct {
	Level   string
	Message string
}

// renderFlashesOOB renders flashes as OOB swap HTML appended after the
// widget markup in the response body.
func renderFlashesOOB(flashes []Flash) string {
	if len(flashes) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<div id="hxr-toasts" hx-swap-oob="beforeend">`)
	for _, f := range flashes {
		sb.WriteString(`<div class="hxr-toast hxr-toast-`)
		sb.WriteString(html.EscapeString(f.Level))
		sb.WriteString(`">`)
		sb.WriteString(html.EscapeString(f.Message))
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

// ToastContainer returns the toast container targeted by flash OOB swaps.
// Add it once to the host page layout, typically near the end of <body>.
func ToastContainer() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="hxr-toasts" class="hxr-toast-container"></div>`)
		return err
	})
}
