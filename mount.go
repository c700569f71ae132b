package hxrating

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// Registry mounts widgets and owns the props codec and error policy.
//
// All widget routes live under each widget's prefix; mount the registry's
// Handler at "/_c/" in the host application. The key signs (and, for
// sensitive widgets, encrypts) props in URLs; every instance of the host
// application must share it.
type Registry struct {
	mu      sync.RWMutex
	mux     *http.ServeMux
	codec   *Codec
	widgets map[string]*Widget

	// OnError is called when an action or decode fails. Replace it to
	// customize error responses; the default maps tampered or malformed
	// requests to 400, unknown actions to 404, and everything else to 500.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// NewRegistry creates a registry with the given signing/encryption key.
// Panics when the key cannot initialize the codec, since no widget can be
// served without one.
func NewRegistry(key []byte) *Registry {
	codec, err := NewCodec(key)
	if err != nil {
		panic(fmt.Sprintf("hxrating: failed to create codec: %v", err))
	}
	return &Registry{
		mux:     http.NewServeMux(),
		codec:   codec,
		widgets: make(map[string]*Widget),
		OnError: defaultErrorHandler,
	}
}

// Codec returns the registry's props codec.
func (reg *Registry) Codec() *Codec {
	return reg.codec
}

// Add mounts widgets on the registry, wiring in the codec and error
// handler. Panics on a prefix collision; prefixes derive from widget name
// and construction site, so a collision means two widgets are genuinely
// indistinguishable.
func (reg *Registry) Add(widgets ...*Widget) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, w := range widgets {
		if _, exists := reg.widgets[w.prefix]; exists {
			panic(fmt.Sprintf("hxrating: prefix collision for %q", w.prefix))
		}
		w.codec = reg.codec
		w.onError = reg.fail
		reg.widgets[w.prefix] = w
		reg.mux.Handle(w.prefix+"/", w)
	}
}

// Handler returns the HTTP handler for all mounted widgets, with CSRF
// protection: mutating methods must carry the HX-Request header HTMX sends
// on every request, which blocks cross-origin form posts without extra
// tokens.
func (reg *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead && !IsHTMX(r) {
			http.Error(w, "Forbidden: HTMX request required", http.StatusForbidden)
			return
		}
		reg.mux.ServeHTTP(w, r)
	})
}

func (reg *Registry) fail(w http.ResponseWriter, r *http.Request, err error) {
	reg.mu.RLock()
	onError := reg.OnError
	reg.mu.RUnlock()
	if onError == nil {
		onError = defaultErrorHandler
	}
	onError(w, r, err)
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case IsBadRequest(err):
		http.Error(w, "Bad request", http.StatusBadRequest)
	case errors.Is(err, ErrUnknownAction):
		http.Error(w, "Not found", http.StatusNotFound)
	default:
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}
