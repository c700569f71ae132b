package hxrating

import (
	"errors"

	"github.com/hxui/hxrating/internal/propcode"
)

// Codec is an alias for propcode.Codec for convenience.
type Codec = propcode.Codec

// NewCodec creates a props codec from a signing/encryption key.
func NewCodec(key []byte) (*Codec, error) {
	return propcode.New(key)
}

// wrapCodecError maps propcode sentinels onto the package's own, so hosts
// only ever match against hxrating errors.
func wrapCodecError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, propcode.ErrSignatureInvalid):
		return ErrSignatureInvalid
	case errors.Is(err, propcode.ErrDecryptFailed):
		return ErrDecryptFailed
	case errors.Is(err, propcode.ErrInvalidFormat):
		return ErrInvalidFormat
	}
	return err
}
