package media

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/barberclubbr/barberclub-api/internal/httperr"
)

const avatarMaxSide = 256

// processAvatar decodifica JPEG/PNG, redimensiona para caber em 256px
// mantendo a proporção e recodifica em webp.
func processAvatar(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > avatarMaxSide || h > avatarMaxSide {
		if w >= h {
			h = h * avatarMaxSide / w
			w = avatarMaxSide
		} else {
			w = w * avatarMaxSide / h
			h = avatarMaxSide
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: 85}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
