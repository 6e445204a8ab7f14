package heatmap

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Colormap maps t ∈ [0, 1] onto evenly spaced color stops with linear
// interpolation in RGB.
type Colormap struct {
	Name  string
	stops []drawing.Color
}

// NewColormap builds a colormap from at least two stops.
// Panics on fewer stops (programmer error).
func NewColormap(name string, stops ...drawing.Color) Colormap {
	if len(stops) < 2 {
		panic("heatmap: NewColormap needs at least two stops")
	}
	s := make([]drawing.Color, len(stops))
	copy(s, stops)

	return Colormap{Name: name, stops: s}
}

// RdYlGn is the ColorBrewer red-yellow-green diverging scheme (11 classes):
// red for -1, pale yellow at the midpoint, green for +1.
func RdYlGn() Colormap {
	hex := []string{
		"a50026", "d73027", "f46d43", "fdae61", "fee08b",
		"ffffbf",
		"d9ef8b", "a6d96a", "66bd63", "1a9850", "006837",
	}
	stops := make([]drawing.Color, len(hex))
	for i, h := range hex {
		stops[i] = drawing.ColorFromHex(h)
	}

	return NewColormap("RdYlGn", stops...)
}

// At returns the color for t; t is clamped into [0, 1].
func (c Colormap) At(t float64) drawing.Color {
	if math.IsNaN(t) || t <= 0 {
		return c.stops[0]
	}
	last := len(c.stops) - 1
	if t >= 1 {
		return c.stops[last]
	}

	pos := t * float64(last)
	i := int(pos)
	frac := pos - float64(i)
	a, b := c.stops[i], c.stops[i+1]

	return drawing.Color{
		R: lerp8(a.R, b.R, frac),
		G: lerp8(a.G, b.G, frac),
		B: lerp8(a.B, b.B, frac),
		A: lerp8(a.A, b.A, frac),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Norm maps data values onto [0, 1] around a center: [Min, Center] onto
// [0, 0.5] and [Center, Max] onto [0.5, 1]. With Center at the midpoint of
// the range this is plain linear scaling.
type Norm struct {
	Min, Center, Max float64
}

// Apply returns the normalized position of v, clamped into [0, 1].
// NaN stays NaN.
func (n Norm) Apply(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	var t float64
	if v < n.Center {
		t = 0.5 * (v - n.Min) / (n.Center - n.Min)
	} else {
		t = 0.5 + 0.5*(v-n.Center)/(n.Max-n.Center)
	}

	return math.Max(0, math.Min(1, t))
}

// relativeLuminance is the WCAG relative luminance of an sRGB color.
func relativeLuminance(c drawing.Color) float64 {
	lin := func(u uint8) float64 {
		v := float64(u) / 255
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}

	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}
