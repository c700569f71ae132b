// Command stardemo serves a small add-on catalog demonstrating the rating
// widget: editable yellow stars that persist selections to an in-memory
// store, read-only averages, an add-on with no ratings yet, and one still
// in the loading state.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/hxui/hxrating"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}
	log := newLogger(cfg)

	store := seedStore()
	reg := hxrating.NewRegistry([]byte(cfg.SigningKey))

	// One editable widget per add-on; the closure captures the add-on ID so
	// the widget's SelectFunc writes to the right tally.
	widgets := make(map[uuid.UUID]*hxrating.Widget)
	for _, view := range store.List() {
		id := view.ID
		w := hxrating.New("rate-"+view.Slug,
			func(ctx context.Context, stars int) error {
				return store.Rate(id, stars)
			},
			hxrating.WithLogger(log),
			hxrating.WithSavedFlash(),
		)
		reg.Add(w)
		widgets[id] = w
	}
	average := hxrating.NewReadOnly("addon-average")

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Widget prefixes are absolute ("/_c/<name>-<hash>"), so the registry
	// handler must see the unmodified request path.
	r.Handle("/_c/*", reg.Handler())
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		items := make([]catalogItem, 0, len(widgets))
		for _, view := range store.List() {
			items = append(items, catalogItem{view: view, widget: widgets[view.ID]})
		}
		if err := hxrating.Render(w, req, homePage(items, average)); err != nil {
			log.Error("page render failed", "error", err)
		}
	})

	log.Info("stardemo listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// newLogger builds a slog logger from config and installs it as the
// default. Format "json" is for production; "text" for development.
func newLogger(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
