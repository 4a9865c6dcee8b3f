package skinviewer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/HugoSmits86/nativewebp"
)

// Encoding is the raster format a portrait is serialised to.
type Encoding int

const (
	PNG Encoding = iota
	WebP
)

func (e Encoding) MIMEType() string {
	if e == WebP {
		return "image/webp"
	}
	return "image/png"
}

// ParseEncoding accepts "png" and "webp"; the empty string means PNG.
func ParseEncoding(name string) (Encoding, error) {
	switch name {
	case "", "png":
		return PNG, nil
	case "webp":
		return WebP, nil
	}
	return PNG, fmt.Errorf("skinviewer: unknown encoding %q", name)
}

// Encode writes im in the given encoding and returns the raw bytes.
func Encode(im image.Image, enc Encoding) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch enc {
	case WebP:
		err = nativewebp.Encode(&buf, im, nil)
	default:
		err = png.Encode(&buf, im)
	}
	if err != nil {
		return nil, fmt.Errorf("skinviewer: encode %s: %w", enc.MIMEType(), err)
	}
	return buf.Bytes(), nil
}

// EncodeDataURL serialises im as a base64 data URL.
func EncodeDataURL(im image.Image, enc Encoding) (string, error) {
	raw, err := Encode(im, enc)
	if err != nil {
		return "", err
	}
	return "data:" + enc.MIMEType() + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}
