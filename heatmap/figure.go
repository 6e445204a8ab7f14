package heatmap

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/katalvlaran/corrmap/correlation"
)

// Figure is a ready-to-draw heatmap of one correlation table.
type Figure struct {
	table  *correlation.Table
	title  string
	width  int
	height int
	dpi    float64
	norm   Norm
	center *float64 // requested midpoint, resolved by New
	cmap   Colormap
	style  Style
	format func(float64) string
	ticks  []float64
}

// New prepares a figure for t with the defaults: RdYlGn over [-1, 1], talk
// style, 512×512 px at 64 dpi, "%.2f" annotations.
func New(t *correlation.Table, opts ...Option) (*Figure, error) {
	if t == nil {
		return nil, ErrNilTable
	}

	f := &Figure{
		table:  t,
		title:  DefaultTitle,
		width:  DefaultWidth,
		height: DefaultHeight,
		dpi:    DefaultDPI,
		norm:   Norm{Min: DefaultVMin, Center: 0, Max: DefaultVMax},
		cmap:   RdYlGn(),
		style:  TalkStyle(),
		format: correlation.FormatValue,
		ticks:  []float64{-1, -0.5, 0, 0.5, 1},
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.center != nil {
		c := *f.center
		if !(c > f.norm.Min && c < f.norm.Max) {
			return nil, fmt.Errorf("%w: %v not in (%v, %v)", ErrBadCenter, c, f.norm.Min, f.norm.Max)
		}
		f.norm.Center = c
	}

	return f, nil
}

// Canvas returns the canvas size in pixels.
func (f *Figure) Canvas() (width, height int) { return f.width, f.height }

// DPI returns the figure resolution.
func (f *Figure) DPI() float64 { return f.dpi }

// Title returns the title text.
func (f *Figure) Title() string { return f.title }

// Color returns the fill for value v. NaN maps to the style's NaN color.
func (f *Figure) Color(v float64) drawing.Color {
	if math.IsNaN(v) {
		return f.style.NaNColor
	}

	return f.cmap.At(f.norm.Apply(v))
}

// Draw paints the figure onto r. The renderer must span the figure canvas.
func (f *Figure) Draw(r chart.Renderer) error {
	l, err := f.Layout(r)
	if err != nil {
		return err
	}
	paint(r, f, l)

	return nil
}
