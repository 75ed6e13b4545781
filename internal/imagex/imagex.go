package imagex

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrTooLarge is returned when a decoded payload exceeds the configured cap.
var ErrTooLarge = errors.New("image payload too large")

// Image is one decoded inbound image.
type Image struct {
	Data []byte
	MIME string
}

// Decode turns a base64 payload (plain or data: URI) into image bytes with a
// resolved MIME type. maxBytes <= 0 disables the size cap.
func Decode(payload string, maxBytes int) (Image, error) {
	data, hint, err := decodeBase64MaybeDataURL(payload)
	if err != nil {
		return Image{}, fmt.Errorf("decode image: %w", err)
	}
	if len(data) == 0 {
		return Image{}, errors.New("empty image payload")
	}
	if maxBytes > 0 && len(data) > maxBytes {
		return Image{}, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}
	return Image{Data: data, MIME: pickMIME(hint, data)}, nil
}

// decodeBase64MaybeDataURL decodes base64; for a data: URI the MIME from the
// prefix is returned as a hint.
func decodeBase64MaybeDataURL(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	var hintMIME string
	if strings.HasPrefix(s, "data:") {
		// data:<mime>;base64,<payload>
		if idx := strings.IndexByte(s, ','); idx > 0 {
			meta := s[len("data:"):idx]
			if semi := strings.IndexByte(meta, ';'); semi >= 0 {
				hintMIME = meta[:semi]
			} else {
				hintMIME = meta
			}
			s = s[idx+1:]
		}
	}
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, hintMIME, nil
	}
	b, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, "", err
	}
	return b, hintMIME, nil
}

// pickMIME prefers the data: URI hint, then magic bytes, then stdlib sniffing.
func pickMIME(hint string, data []byte) string {
	if h := strings.TrimSpace(hint); h != "" {
		return h
	}
	if m := sniffMIME(data); m != "" {
		return m
	}
	return http.DetectContentType(data)
}

func sniffMIME(b []byte) string {
	// JPEG: FF D8
	if len(b) >= 2 && b[0] == 0xFF && b[1] == 0xD8 {
		return "image/jpeg"
	}
	// PNG
	if len(b) >= 8 &&
		b[0] == 0x89 && b[1] == 0x50 && b[2] == 0x4E && b[3] == 0x47 &&
		b[4] == 0x0D && b[5] == 0x0A && b[6] == 0x1A && b[7] == 0x0A {
		return "image/png"
	}
	// WebP: RIFF....WEBP
	if len(b) >= 12 &&
		b[0] == 'R' && b[1] == 'I' && b[2] == 'F' && b[3] == 'F' &&
		b[8] == 'W' && b[9] == 'E' && b[10] == 'B' && b[11] == 'P' {
		return "image/webp"
	}
	return ""
}
