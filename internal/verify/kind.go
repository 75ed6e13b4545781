// Package verify holds the verification core: the prompt catalog, the
// response extractor, and the verdict parser that gate habit proof photos
// and videos on upstream model output.
package verify

import "fmt"

// Kind selects which prompt and response schema apply to a request.
type Kind string

const (
	KindBed         Kind = "bed"
	KindSunlight    Kind = "sunlight"
	KindHydration   Kind = "hydration"
	KindCustomPhoto Kind = "custom-photo"
	KindCustomVideo Kind = "custom-video"
)

// Kinds lists every verification kind in registration order.
func Kinds() []Kind {
	return []Kind{KindBed, KindSunlight, KindHydration, KindCustomPhoto, KindCustomVideo}
}

// Valid reports whether k names a known verification kind.
func (k Kind) Valid() bool {
	switch k {
	case KindBed, KindSunlight, KindHydration, KindCustomPhoto, KindCustomVideo:
		return true
	}
	return false
}

func (k Kind) String() string { return string(k) }

// ParseKind converts a string to a Kind.
func ParseKind(value string) (Kind, error) {
	k := Kind(value)
	if !k.Valid() {
		return "", fmt.Errorf("unknown verification kind: %q", value)
	}
	return k, nil
}
