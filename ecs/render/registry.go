package render

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	pixelOnce sync.Once
	pixel     *ebiten.Image

	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
	fontErr    error

	faces = map[float64]*text.GoTextFace{}
)

// Pixel returns a shared 1x1 white image. Filled shapes are drawn by scaling
// it and tinting through ColorScale.
func Pixel() *ebiten.Image {
	pixelOnce.Do(func() {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(colorWhite)
	})
	return pixel
}

// Face returns a cached Go Regular face of the given pixel size.
func Face(size float64) (*text.GoTextFace, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	if fontErr != nil {
		return nil, fmt.Errorf("render: load font: %w", fontErr)
	}
	if face, ok := faces[size]; ok {
		return face, nil
	}
	face := &text.GoTextFace{Source: fontSource, Size: size}
	faces[size] = face
	return face, nil
}
