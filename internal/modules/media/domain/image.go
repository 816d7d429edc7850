package domain

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidImage marks payloads that are not a decodable image data URI.
var ErrInvalidImage = errors.New("invalid image payload")

const dataURIPrefix = "data:image/"

// Image is an inline image submitted by the back office. Raw keeps the full
// data URI because the asset host accepts it verbatim as the file parameter.
type Image struct {
	ContentType string
	Raw         string
	Size        int
}

// ParseDataURI validates a base64 image data URI of the form
// data:image/<subtype>;base64,<payload>.
func ParseDataURI(raw string) (Image, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Image{}, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}
	if !strings.HasPrefix(trimmed, dataURIPrefix) {
		return Image{}, fmt.Errorf("%w: missing %s prefix", ErrInvalidImage, dataURIPrefix)
	}

	meta, payload, found := strings.Cut(trimmed[len("data:"):], ",")
	if !found {
		return Image{}, fmt.Errorf("%w: missing payload separator", ErrInvalidImage)
	}
	contentType, encoding, found := strings.Cut(meta, ";")
	if !found || encoding != "base64" {
		return Image{}, fmt.Errorf("%w: only base64 encoding is accepted", ErrInvalidImage)
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("%w: undecodable base64: %v", ErrInvalidImage, err)
	}
	if len(decoded) == 0 {
		return Image{}, fmt.Errorf("%w: empty image data", ErrInvalidImage)
	}

	return Image{ContentType: contentType, Raw: trimmed, Size: len(decoded)}, nil
}
