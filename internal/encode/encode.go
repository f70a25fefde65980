// Package encode serializes rasterized pages into transport payloads for the
// messages API.
package encode

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
)

// MediaTypePNG is the MIME type attached to every encoded page.
const MediaTypePNG = "image/png"

// EncodedPage is a base64 image payload ready to send to the model.
type EncodedPage struct {
	Data      string // standard base64
	MediaType string
}

// PNG losslessly encodes the image and wraps it in base64.
func PNG(img image.Image) (EncodedPage, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return EncodedPage{}, fmt.Errorf("failed to encode page image: %w", err)
	}
	return EncodedPage{
		Data:      base64.StdEncoding.EncodeToString(buf.Bytes()),
		MediaType: MediaTypePNG,
	}, nil
}
