package imagefile

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/draw"
)

// Drawer paints itself onto a renderer.
type Drawer interface {
	Draw(r chart.Renderer) error
}

// canvasSizer is implemented by drawers with their own canvas size; the
// renderer is sized to match and the result fitted to the target.
type canvasSizer interface {
	Canvas() (width, height int)
}

// Render draws d and returns the cropped, target-sized image.
func Render(d Drawer, opts ...Option) (*image.RGBA, error) {
	cfg := newConfig(opts)
	tw, th := cfg.target()
	if tw <= 0 || th <= 0 {
		return nil, fmt.Errorf("%w: target %dx%d px", ErrWrite, tw, th)
	}

	cw, ch := tw, th
	if s, ok := d.(canvasSizer); ok {
		cw, ch = s.Canvas()
	}

	// Stage 1: rasterize.
	r, err := chart.PNG(cw, ch)
	if err != nil {
		return nil, fmt.Errorf("imagefile: renderer: %w", err)
	}
	r.SetDPI(cfg.dpi)
	if err = d.Draw(r); err != nil {
		return nil, fmt.Errorf("imagefile: draw: %w", err)
	}
	var buf bytes.Buffer
	if err = r.Save(&buf); err != nil {
		return nil, fmt.Errorf("%w: rasterize: %w", ErrWrite, err)
	}
	src, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrWrite, err)
	}

	// Stage 2: crop to content plus padding.
	box := contentBounds(src, cfg.background)
	if box.Empty() {
		box = src.Bounds()
	}
	pad := int(math.Round(cfg.padIn * cfg.dpi))
	box = box.Inset(-pad).Intersect(src.Bounds())

	// Stage 3: fit into the target.
	return fit(src, box, tw, th, cfg.background), nil
}

// Encode runs Render and writes the PNG bytes to w.
func Encode(w io.Writer, d Drawer, opts ...Option) error {
	img, err := Render(d, opts...)
	if err != nil {
		return err
	}
	if err = png.Encode(w, img); err != nil {
		return fmt.Errorf("%w: encode: %w", ErrWrite, err)
	}

	return nil
}

// contentBounds returns the smallest rectangle holding every pixel that
// differs from bg. Empty when the image is blank.
func contentBounds(img image.Image, bg color.RGBA) image.Rectangle {
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.RGBAModel.Convert(img.At(x, y)) == bg {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < minX {
		return image.Rectangle{}
	}

	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// fit scales src[box] uniformly into a w×h canvas of bg, centered.
func fit(src image.Image, box image.Rectangle, w, h int, bg color.RGBA) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	bw, bh := box.Dx(), box.Dy()
	if bw == w && bh == h {
		draw.Draw(dst, dst.Bounds(), src, box.Min, draw.Src)
		return dst
	}

	k := math.Min(float64(w)/float64(bw), float64(h)/float64(bh))
	dw := max(1, int(math.Round(float64(bw)*k)))
	dh := max(1, int(math.Round(float64(bh)*k)))
	x0, y0 := (w-dw)/2, (h-dh)/2
	draw.CatmullRom.Scale(dst, image.Rect(x0, y0, x0+dw, y0+dh), src, box, draw.Over, nil)

	return dst
}
