package gallery

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

const (
	MaxWidth    = 1600
	webpQuality = 80
)

// Encoded is a downscaled WebP rendition ready for upload.
type Encoded struct {
	Data   []byte
	Width  int
	Height int
}

// Process decodes JPEG, PNG or WebP, shrinks anything wider than MaxWidth
// keeping the aspect ratio, and re-encodes to WebP.
func Process(r io.Reader) (*Encoded, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, httperr.Field("file", "invalid_image", "Upload a JPEG, PNG or WebP image.")
	}

	img := src
	b := src.Bounds()
	if b.Dx() > MaxWidth {
		h := b.Dy() * MaxWidth / b.Dx()
		if h < 1 {
			h = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, MaxWidth, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}

	out := img.Bounds()
	return &Encoded{Data: buf.Bytes(), Width: out.Dx(), Height: out.Dy()}, nil
}
