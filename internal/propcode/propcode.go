// Package propcode encodes widget props for transport in URLs and form
// values.
//
// Props are marshalled with msgpack and either HMAC-signed (default:
// visible but tamper-proof, debuggable as base64) or AES-256-GCM encrypted
// (opaque, for widgets marked sensitive). Both encodings use unpadded
// URL-safe base64.
package propcode

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Sentinel errors returned by Decode.
var (
	ErrInvalidFormat    = errors.New("propcode: invalid format")
	ErrSignatureInvalid = errors.New("propcode: signature verification failed")
	ErrDecryptFailed    = errors.New("propcode: decryption failed")
)

// sigLen truncates the HMAC-SHA256 tag to 128 bits, which keeps URLs short
// without weakening forgery resistance meaningfully.
const sigLen = 16

// Codec signs or encrypts prop maps. A Codec is safe for concurrent use.
type Codec struct {
	key []byte
	gcm cipher.AEAD
}

// New creates a codec from a key. Keys shorter than 32 bytes are stretched
// with SHA-256 so callers can pass human-managed secrets directly.
func New(key []byte) (*Codec, error) {
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}

	block, err := aes.NewCipher(key[:32])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Codec{key: key, gcm: gcm}, nil
}

// Encode serializes a prop map. When sensitive is true the payload is
// encrypted; otherwise it is signed but visible.
func (c *Codec) Encode(props map[string]any, sensitive bool) (string, error) {
	packed, err := msgpack.Marshal(props)
	if err != nil {
		return "", err
	}
	if sensitive {
		return c.encrypt(packed)
	}
	return c.sign(packed), nil
}

// Decode reverses Encode. The sensitive flag must match the one used when
// encoding; a mismatch surfaces as a format or verification error.
func (c *Codec) Decode(encoded string, sensitive bool) (map[string]any, error) {
	var packed []byte
	var err error
	if sensitive {
		packed, err = c.decrypt(encoded)
	} else {
		packed, err = c.verify(encoded)
	}
	if err != nil {
		return nil, err
	}

	var props map[string]any
	if err := msgpack.Unmarshal(packed, &props); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return props, nil
}

// sign produces "payload.signature", both base64url.
func (c *Codec) sign(data []byte) string {
	mac := hmac.New(sha256.New, c.key)
	mac.Write(data)
	sig := mac.Sum(nil)[:sigLen]
	return base64.RawURLEncoding.EncodeToString(data) + "." + base64.RawURLEncoding.EncodeToString(sig)
}

func (c *Codec) verify(encoded string) ([]byte, error) {
	payload, sigPart, ok := strings.Cut(encoded, ".")
	if !ok {
		return nil, fmt.Errorf("%w: missing signature", ErrInvalidFormat)
	}

	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	sig, err := base64.RawURLEncoding.DecodeString(sigPart)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	mac := hmac.New(sha256.New, c.key)
	mac.Write(data)
	if !hmac.Equal(sig, mac.Sum(nil)[:sigLen]) {
		return nil, ErrSignatureInvalid
	}
	return data, nil
}

func (c *Codec) encrypt(data []byte) (string, error) {
	nonce := make([]byte, c.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := c.gcm.Seal(nonce, nonce, data, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (c *Codec) decrypt(encoded string) ([]byte, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(sealed) < c.gcm.NonceSize() {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrInvalidFormat)
	}

	nonce, ciphertext := sealed[:c.gcm.NonceSize()], sealed[c.gcm.NonceSize():]
	plain, err := c.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return plain, nil
}
