// Package texture rasterizes text labels into alpha masks used to cut
// shapes out of mesh surfaces.
package texture

import (
	"errors"
	"image"
	"image/color"
	gomath "math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/gobold"
)

// ErrNoContext is returned when a 2D drawing context cannot be acquired.
var ErrNoContext = errors.New("2d drawing context unavailable")

// Canvas is a 2D drawing surface that text can be filled onto.
type Canvas interface {
	// FillText draws s with its baseline at (x, y). Text wider than maxWidth
	// is condensed horizontally to fit; maxWidth <= 0 disables the limit.
	FillText(s string, x, y, maxWidth float64)
	// Image returns the current pixels. Untouched pixels are transparent.
	Image() image.Image
	Close() error
}

// ContextFunc acquires a width x height canvas.
type ContextFunc func(width, height int) (Canvas, error)

var boldSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(gobold.TTF)
})

// BoldContext returns a ContextFunc producing canvases that fill white text
// in Go Bold at the given pixel size.
func BoldContext(size float64) ContextFunc {
	return func(width, height int) (Canvas, error) {
		if width <= 0 || height <= 0 {
			return nil, errors.New("canvas size must be positive")
		}
		src, err := boldSource()
		if err != nil {
			return nil, err
		}
		return &ggCanvas{
			face:   src.Face(size),
			width:  width,
			height: height,
			out:    image.NewRGBA(image.Rect(0, 0, width, height)),
		}, nil
	}
}

// ggCanvas draws each FillText call on a scratch gg context wide enough for
// the whole string, then composites it into out, scaling when needed.
type ggCanvas struct {
	face   text.Face
	width  int
	height int
	out    *image.RGBA
}

func (c *ggCanvas) FillText(s string, x, y, maxWidth float64) {
	if s == "" {
		return
	}
	w, _ := text.Measure(s, c.face)

	scratchWidth := int(gomath.Ceil(x + w))
	if scratchWidth < c.width {
		scratchWidth = c.width
	}
	dc := gg.NewContext(scratchWidth, c.height)
	defer dc.Close()
	dc.SetFont(c.face)
	dc.SetColor(color.White)
	dc.DrawString(s, x, y)
	src := dc.Image()

	if maxWidth > 0 && w > maxWidth {
		srcRect := image.Rect(int(x), 0, int(gomath.Ceil(x+w)), c.height)
		dstRect := image.Rect(int(x), 0, int(x+maxWidth), c.height)
		xdraw.BiLinear.Scale(c.out, dstRect, src, srcRect, xdraw.Over, nil)
		return
	}
	xdraw.Draw(c.out, c.out.Bounds(), src, image.Point{}, xdraw.Over)
}

func (c *ggCanvas) Image() image.Image {
	return c.out
}

func (c *ggCanvas) Close() error {
	return nil
}
