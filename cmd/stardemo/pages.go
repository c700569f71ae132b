package main

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/hxui/hxrating"
)

// catalogItem pairs an add-on view with its mounted rating widget.
type catalogItem struct {
	view   AddonView
	widget *hxrating.Widget
}

const pageHead = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>stardemo - rate some add-ons</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<style>
body { font-family: system-ui, sans-serif; max-width: 640px; margin: 2rem auto; }
.addon { padding: 1rem 0; border-bottom: 1px solid #ddd; }
.addon h2 { margin: 0 0 0.25rem; font-size: 1.1rem; }
.addon p { margin: 0 0 0.5rem; color: #555; }
.Rating { display: inline-flex; gap: 2px; }
.Rating-star { width: 1.25em; height: 1.25em; border: none; background: none; padding: 0; color: #c6c6c6; cursor: default; }
.Rating-star::before { content: "\2605"; font-size: 1.25em; line-height: 1; }
.Rating--editable .Rating-star { cursor: pointer; }
.Rating-selected-star { color: #6f6f6f; }
.Rating--yellowStars .Rating-selected-star { color: #e0a800; }
.Rating-half-star { color: #9f9f9f; }
.Rating--loading { opacity: 0.5; }
.Rating--small .Rating-star::before { font-size: 0.9em; }
.visually-hidden { position: absolute; width: 1px; height: 1px; overflow: hidden; clip: rect(0 0 0 0); white-space: nowrap; }
.hxr-toast-container { position: fixed; top: 1rem; right: 1rem; }
.hxr-toast { background: #2e7d32; color: white; padding: 0.5rem 1rem; border-radius: 4px; margin-bottom: 0.5rem; }
</style>
</head>
<body>
<h1>Add-on catalog</h1>
`

const pageFoot = `</body>
</html>
`

// homePage renders the catalog with one editable widget per add-on and a
// small yellow read-only average next to it.
func homePage(items []catalogItem, average *hxrating.Widget) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageHead); err != nil {
			return err
		}

		for _, item := range items {
			if _, err := io.WriteString(w, `<div class="addon"><h2>`+
				html.EscapeString(item.view.Name)+`</h2><p>`+
				html.EscapeString(item.view.Summary)+`</p>`); err != nil {
				return err
			}

			editable := item.widget.Render(hxrating.Props{
				Rating: item.view.Rating,
				Yellow: true,
			})
			if err := editable.Render(ctx, w); err != nil {
				return err
			}

			readonly := average.Render(hxrating.Props{
				Rating:   item.view.Rating,
				ReadOnly: true,
				Size:     hxrating.SizeSmall,
				Class:    "addon-average",
			})
			if err := readonly.Render(ctx, w); err != nil {
				return err
			}

			if _, err := io.WriteString(w, `</div>`); err != nil {
				return err
			}
		}

		if err := hxrating.ToastContainer().Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, pageFoot)
		return err
	})
}
