package hxrating

// SwapMode is an HTMX hx-swap strategy. The widget always swaps itself
// whole (SwapOuter) so classes, titles, and wiring stay consistent.
type SwapMode string

const (
	// SwapOuter replaces the entire element including its tag (outerHTML).
	SwapOuter SwapMode = "outerHTML"

	// SwapInner replaces only the element's contents (innerHTML).
	SwapInner SwapMode = "innerHTML"

	// SwapNone performs no swap; the response body is discarded.
	SwapNone SwapMode = "none"
)
