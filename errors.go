package hxrating

import "errors"

// Sentinel errors for widget configuration and request handling.
var (
	// ErrInvalidSize is raised during render when Props.Size is not one of
	// the recognized variants. This is a programmer error and propagates to
	// the host before any markup is written.
	ErrInvalidSize = errors.New("hxrating: invalid size variant")

	// ErrNoSelectHandler is raised when a select request reaches an editable
	// widget constructed without a SelectFunc. The caller should have used
	// NewReadOnly instead.
	ErrNoSelectHandler = errors.New("hxrating: no select handler configured")

	// ErrSelectDisabled is returned when a select request arrives for props
	// that do not allow selection (read-only, or still loading).
	ErrSelectDisabled = errors.New("hxrating: selection disabled for current props")

	// ErrUnknownAction is returned for requests under the widget prefix that
	// name no registered action.
	ErrUnknownAction = errors.New("hxrating: unknown action")

	// Codec failures, re-exported from internal/propcode via codec.go.
	ErrInvalidFormat    = errors.New("hxrating: invalid props format")
	ErrSignatureInvalid = errors.New("hxrating: props signature verification failed")
	ErrDecryptFailed    = errors.New("hxrating: props decryption failed")
)

// IsBadRequest reports whether err indicates a malformed or tampered
// request rather than a server-side failure. The default error handler maps
// these to 400 responses.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrSignatureInvalid) ||
		errors.Is(err, ErrDecryptFailed) ||
		errors.Is(err, ErrSelectDisabled)
}
