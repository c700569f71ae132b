package hxrating

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/hxui/hxrating/i18n"
)

// EventRatingSelected is emitted via HX-Trigger after every successful
// selection, with {"stars": n} as the event payload.
const EventRatingSelected = "rating:selected"

// SelectFunc receives the user's selection, an integer star value 1-5.
// It runs synchronously inside the select action; returning an error aborts
// the re-render and routes through the error handler.
type SelectFunc func(ctx context.Context, stars int) error

// Widget is a five-star rating component.
//
// A Widget is a long-lived, stateless handler: per-render configuration
// lives in Props, and the hover preview round-trips through encoded props.
// Construct editable widgets with New and display-only widgets with
// NewReadOnly, then mount editable ones on a Registry.
type Widget struct {
	name       string
	prefix     string
	sensitive  bool
	selectFn   SelectFunc
	translator i18n.Translator
	log        *slog.Logger
	savedFlash bool

	// Set by Registry.Add.
	codec   *Codec
	onError func(http.ResponseWriter, *http.Request, error)
}

// Option configures a Widget at construction time.
type Option func(*Widget)

// WithTranslator replaces the default English catalog for titles and
// descriptions.
func WithTranslator(t i18n.Translator) Option {
	return func(w *Widget) { w.translator = t }
}

// WithLogger sets the logger used for selection events. Defaults to
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(w *Widget) { w.log = l }
}

// WithSavedFlash makes the widget append a confirmation toast after every
// successful selection.
func WithSavedFlash() Option {
	return func(w *Widget) { w.savedFlash = true }
}

// Sensitive encrypts the widget's props instead of signing them. Use when
// props context should be opaque to clients.
func Sensitive() Option {
	return func(w *Widget) { w.sensitive = true }
}

// New creates an editable widget. onSelect is the selection callback and is
// mandatory for editable use; a widget that should never accept selections
// belongs to NewReadOnly instead. Passing nil does not fail here, but any
// select request will fail loudly with ErrNoSelectHandler.
func New(name string, onSelect SelectFunc, opts ...Option) *Widget {
	w := &Widget{
		name:       name,
		prefix:     "/_c/" + name + "-" + widgetHash(name, 1),
		selectFn:   onSelect,
		translator: i18n.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.log == nil {
		w.log = slog.Default()
	}
	return w
}

// NewReadOnly creates a display-only widget: no selection callback, no
// action wiring in the rendered markup. Render it with ReadOnly props; it
// does not need to be mounted unless the host wants refresh round-trips.
func NewReadOnly(name string, opts ...Option) *Widget {
	return New(name, nil, opts...)
}

// Name returns the widget's name.
func (w *Widget) Name() string {
	return w.name
}

// Prefix returns the URL prefix all widget actions are mounted under.
func (w *Widget) Prefix() string {
	return w.prefix
}

// URL builds the URL for an action with encoded props. An empty action
// names the default GET render. Before the widget is mounted the URL
// carries no props.
func (w *Widget) URL(action string, props Props) string {
	path := w.prefix + "/"
	if action != "" {
		path = w.prefix + "/" + action
	}
	if w.codec == nil {
		return path
	}
	encoded, err := w.codec.Encode(props.toMap(), w.sensitive)
	if err != nil {
		return path
	}
	return path + "?p=" + encoded
}

// widgetHash derives a deterministic suffix from the widget name and the
// construction call site, so two widgets with different names or created in
// different places never collide on a prefix.
func widgetHash(name string, skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	input := name
	if ok {
		input = fmt.Sprintf("%s:%d:%s", filepath.Base(file), line, name)
	}
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:4])
}
