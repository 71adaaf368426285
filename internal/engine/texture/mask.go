package texture

import (
	"errors"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// Ring label texture layout.
const (
	MaskWidth       = 4096
	MaskHeight      = 256
	DefaultFontSize = 300
	DefaultBaseline = 240
)

// MaskOptions controls text mask rasterization.
type MaskOptions struct {
	Width    int
	Height   int
	Baseline float64
	// Context acquires the drawing surface. Nil uses BoldContext(DefaultFontSize).
	Context ContextFunc
}

// DefaultMaskOptions returns the ring label layout: 4096x256, baseline 240.
func DefaultMaskOptions() MaskOptions {
	return MaskOptions{
		Width:    MaskWidth,
		Height:   MaskHeight,
		Baseline: DefaultBaseline,
	}
}

// RenderMask rasterizes label left-aligned into an alpha mask where covered
// pixels are opaque.
//
// If no drawing context can be acquired, RenderMask returns a blank mask of
// the requested size together with an error wrapping ErrNoContext; the mask
// is still usable.
func RenderMask(label string, opts MaskOptions) (*image.Alpha, error) {
	mask := image.NewAlpha(image.Rect(0, 0, opts.Width, opts.Height))

	acquire := opts.Context
	if acquire == nil {
		acquire = BoldContext(DefaultFontSize)
	}

	canvas, err := acquire(opts.Width, opts.Height)
	if err == nil && canvas == nil {
		err = errors.New("no canvas returned")
	}
	if err != nil {
		return mask, fmt.Errorf("%w: %w", ErrNoContext, err)
	}
	defer canvas.Close()

	canvas.FillText(label, 0, opts.Baseline, float64(opts.Width))
	xdraw.Draw(mask, mask.Bounds(), canvas.Image(), image.Point{}, xdraw.Src)

	return mask, nil
}

// Coverage returns the fraction of mask pixels that are at least half opaque.
func Coverage(mask *image.Alpha) float64 {
	b := mask.Bounds()
	total := b.Dx() * b.Dy()
	if total == 0 {
		return 0
	}
	covered := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := mask.Pix[(y-b.Min.Y)*mask.Stride:]
		for x := 0; x < b.Dx(); x++ {
			if row[x] >= 128 {
				covered++
			}
		}
	}
	return float64(covered) / float64(total)
}

// InkBounds returns the smallest rectangle holding every pixel that is at
// least half opaque. It is empty for a blank mask.
func InkBounds(mask *image.Alpha) image.Rectangle {
	b := mask.Bounds()
	ink := image.Rectangle{}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := mask.Pix[(y-b.Min.Y)*mask.Stride:]
		for x := 0; x < b.Dx(); x++ {
			if row[x] < 128 {
				continue
			}
			px := image.Rect(b.Min.X+x, y, b.Min.X+x+1, y+1)
			ink = ink.Union(px)
		}
	}
	return ink
}
