package propcode

import (
	"errors"
	"strings"
	"testing"
)

func newCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := New([]byte("short human key"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return c
}

func TestSignedRoundTrip(t *testing.T) {
	c := newCodec(t)
	props := map[string]any{"rk": int8(2), "r": 3.5, "h": int8(4)}

	encoded, err := c.Encode(props, false)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.Contains(encoded, ".") {
		t.Errorf("signed encoding %q missing signature separator", encoded)
	}

	decoded, err := c.Decode(encoded, false)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if v, ok := decoded["r"].(float64); !ok || v != 3.5 {
		t.Errorf("decoded r = %v, want 3.5", decoded["r"])
	}
}

func TestEncryptedRoundTrip(t *testing.T) {
	c := newCodec(t)
	props := map[string]any{"cl": "secret-class"}

	encoded, err := c.Encode(props, true)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if strings.Contains(encoded, "secret-class") {
		t.Error("encrypted encoding leaks plaintext")
	}

	decoded, err := c.Decode(encoded, true)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if decoded["cl"] != "secret-class" {
		t.Errorf("decoded cl = %v, want secret-class", decoded["cl"])
	}
}

func TestTamperedSignatureRejected(t *testing.T) {
	c := newCodec(t)
	encoded, err := c.Encode(map[string]any{"h": int8(1)}, false)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	payload, sig, _ := strings.Cut(encoded, ".")
	flipped := "A"
	if payload[0] == 'A' {
		flipped = "B"
	}
	tampered := flipped + payload[1:] + "." + sig

	if _, err := c.Decode(tampered, false); !errors.Is(err, ErrSignatureInvalid) && !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Decode(tampered) error = %v, want signature/format error", err)
	}
}

func TestDifferentKeysReject(t *testing.T) {
	a := newCodec(t)
	b, err := New([]byte("a completely different key"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	encoded, err := a.Encode(map[string]any{"h": int8(2)}, false)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if _, err := b.Decode(encoded, false); !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("cross-key Decode error = %v, want ErrSignatureInvalid", err)
	}

	sealed, err := a.Encode(map[string]any{"h": int8(2)}, true)
	if err != nil {
		t.Fatalf("Encode(sensitive) error: %v", err)
	}
	if _, err := b.Decode(sealed, true); !errors.Is(err, ErrDecryptFailed) {
		t.Errorf("cross-key decrypt error = %v, want ErrDecryptFailed", err)
	}
}

func TestMalformedInputs(t *testing.T) {
	c := newCodec(t)
	tests := []struct {
		name      string
		encoded   string
		sensitive bool
	}{
		{"no signature separator", "justonepart", false},
		{"bad base64 payload", "!!!.AAAA", false},
		{"bad base64 signature", "AAAA.!!!", false},
		{"bad base64 ciphertext", "!!!", true},
		{"ciphertext too short", "AAAA", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Decode(tt.encoded, tt.sensitive); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Decode(%q) error = %v, want ErrInvalidFormat", tt.encoded, err)
			}
		})
	}
}

func TestLongKeysUsedDirectly(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	c, err := New(key)
	if err != nil {
		t.Fatalf("New() with 32-byte key error: %v", err)
	}
	encoded, err := c.Encode(map[string]any{"x": true}, false)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if _, err := c.Decode(encoded, false); err != nil {
		t.Errorf("Decode() error: %v", err)
	}
}
