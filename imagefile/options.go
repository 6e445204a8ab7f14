package imagefile

import (
	"fmt"
	"image/color"
	"math"
)

// Defaults: an 8×8 inch figure at 64 dpi, i.e. 512×512 px.
const (
	DefaultSizeInches = 8.0
	DefaultDPI        = 64.0
	DefaultPadInches  = 0.1
)

type config struct {
	widthIn, heightIn float64
	dpi               float64
	padIn             float64
	background        color.RGBA
}

func newConfig(opts []Option) config {
	c := config{
		widthIn:    DefaultSizeInches,
		heightIn:   DefaultSizeInches,
		dpi:        DefaultDPI,
		padIn:      DefaultPadInches,
		background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// target returns the output size in pixels.
func (c config) target() (w, h int) {
	return int(math.Round(c.widthIn * c.dpi)), int(math.Round(c.heightIn * c.dpi))
}

// Option customizes encoding. Constructors panic on programmer errors.
type Option func(*config)

// WithSize sets the logical figure size in inches. Panics unless both are > 0.
func WithSize(widthIn, heightIn float64) Option {
	if !(widthIn > 0 && heightIn > 0) {
		panic(fmt.Sprintf("imagefile: WithSize(%v, %v): sizes must be > 0", widthIn, heightIn))
	}
	return func(c *config) { c.widthIn, c.heightIn = widthIn, heightIn }
}

// WithDPI sets pixels per inch. Panics unless dpi > 0.
func WithDPI(dpi float64) Option {
	if !(dpi > 0) {
		panic(fmt.Sprintf("imagefile: WithDPI(%v): dpi must be > 0", dpi))
	}
	return func(c *config) { c.dpi = dpi }
}

// WithPadding sets the margin kept around cropped content, in inches.
// Panics on negative values.
func WithPadding(inches float64) Option {
	if !(inches >= 0) {
		panic(fmt.Sprintf("imagefile: WithPadding(%v): must be >= 0", inches))
	}
	return func(c *config) { c.padIn = inches }
}

// WithBackground sets the color treated as empty when cropping and used to
// fill around the fitted content.
func WithBackground(bg color.RGBA) Option {
	return func(c *config) { c.background = bg }
}
