package imagex

import (
	"encoding/base64"
	"errors"
	"testing"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func TestDecodePlainBase64(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString(pngHeader)
	image, err := Decode(payload, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if image.MIME != "image/png" {
		t.Fatalf("expected image/png, got %s", image.MIME)
	}
	if len(image.Data) != len(pngHeader) {
		t.Fatalf("unexpected data length: %d", len(image.Data))
	}
}

func TestDecodeDataURL(t *testing.T) {
	payload := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte{0xFF, 0xD8, 0xFF, 0xE0})
	image, err := Decode(payload, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if image.MIME != "image/jpeg" {
		t.Fatalf("expected hinted mime, got %s", image.MIME)
	}
}

func TestDecodeJPEGMagicBytes(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00})
	image, err := Decode(payload, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if image.MIME != "image/jpeg" {
		t.Fatalf("expected image/jpeg, got %s", image.MIME)
	}
}

func TestDecodeWebP(t *testing.T) {
	data := []byte("RIFF????WEBPVP8 ")
	image, err := Decode(base64.StdEncoding.EncodeToString(data), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if image.MIME != "image/webp" {
		t.Fatalf("expected image/webp, got %s", image.MIME)
	}
}

func TestDecodeURLSafeBase64(t *testing.T) {
	payload := base64.URLEncoding.EncodeToString([]byte{0xFF, 0xD8, 0xFF, 0xFB, 0xEF})
	if _, err := Decode(payload, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode("not base64 at all!!!", 0); err == nil {
		t.Fatalf("expected error for invalid base64")
	}
	if _, err := Decode("", 0); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestDecodeEnforcesSizeCap(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString(pngHeader)
	if _, err := Decode(payload, 4); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if _, err := Decode(payload, len(pngHeader)); err != nil {
		t.Fatalf("payload at the cap must pass: %v", err)
	}
}
