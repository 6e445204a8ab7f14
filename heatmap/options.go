package heatmap

import "fmt"

// Default figure settings.
const (
	DefaultTitle  = "Customer Engagement Metrics Correlation Matrix"
	DefaultWidth  = 512 // px
	DefaultHeight = 512 // px
	DefaultDPI    = 64.0
	DefaultVMin   = -1.0
	DefaultVMax   = 1.0
)

// Option customizes a Figure. Constructors panic on programmer errors.
type Option func(*Figure)

// WithTitle sets the title drawn above the grid; "" draws none.
func WithTitle(title string) Option {
	return func(f *Figure) { f.title = title }
}

// WithCanvas sets the canvas size in pixels. Panics on non-positive sizes.
func WithCanvas(width, height int) Option {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("heatmap: WithCanvas(%d, %d): sizes must be > 0", width, height))
	}
	return func(f *Figure) { f.width, f.height = width, height }
}

// WithDPI sets the resolution used to convert points into pixels.
// Panics unless dpi > 0.
func WithDPI(dpi float64) Option {
	if !(dpi > 0) {
		panic(fmt.Sprintf("heatmap: WithDPI(%v): dpi must be > 0", dpi))
	}
	return func(f *Figure) { f.dpi = dpi }
}

// WithRange fixes the colormap domain and centers it at its midpoint.
// Panics unless vmin < vmax.
func WithRange(vmin, vmax float64) Option {
	if !(vmin < vmax) {
		panic(fmt.Sprintf("heatmap: WithRange(%v, %v): need vmin < vmax", vmin, vmax))
	}
	return func(f *Figure) {
		f.norm = Norm{Min: vmin, Center: (vmin + vmax) / 2, Max: vmax}
	}
}

// WithCenter moves the colormap midpoint, in either order with WithRange.
// New returns ErrBadCenter unless it lies strictly inside the range.
func WithCenter(center float64) Option {
	return func(f *Figure) {
		c := center
		f.center = &c
	}
}

// WithColormap replaces the RdYlGn default.
func WithColormap(c Colormap) Option {
	return func(f *Figure) { f.cmap = c }
}

// WithStyle replaces the talk-sized default style.
func WithStyle(s Style) Option {
	return func(f *Figure) { f.style = s }
}

// WithAnnotationFormat sets the cell text formatter. Panics on nil.
func WithAnnotationFormat(format func(float64) string) Option {
	if format == nil {
		panic("heatmap: WithAnnotationFormat(nil)")
	}
	return func(f *Figure) { f.format = format }
}

// WithColorbarTicks sets the values marked on the colorbar. Ticks outside
// the range are skipped when drawing.
func WithColorbarTicks(ticks ...float64) Option {
	t := make([]float64, len(ticks))
	copy(t, ticks)
	return func(f *Figure) { f.ticks = t }
}
