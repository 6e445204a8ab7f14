package heatmap

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// paint draws a resolved layout back to front: background, cells,
// separators, annotations, axis labels, title, colorbar.
func paint(r chart.Renderer, f *Figure, l *Layout) {
	st := l.Style

	fillBox(r, chart.Box{Right: f.width, Bottom: f.height}, st.Background)

	for _, c := range l.Cells {
		fillBox(r, c.Box, c.Fill)
	}
	if n := f.table.Size(); n > 1 {
		r.SetStrokeColor(st.LineColor)
		r.SetStrokeWidth(st.CellLine * f.dpi / 72)
		for k := 1; k < n; k++ {
			x := l.Grid.Left + k*l.CellSize
			y := l.Grid.Top + k*l.CellSize
			line(r, x, l.Grid.Top, x, l.Grid.Bottom)
			line(r, l.Grid.Left, y, l.Grid.Right, y)
		}
	}

	for _, t := range l.Texts() {
		drawText(r, t)
	}

	// colorbar: one pixel row per color step, top is Max
	cb := l.Colorbar
	h := cb.Height()
	for y := cb.Top; y < cb.Bottom; y++ {
		v := f.norm.Max - (float64(y-cb.Top)+0.5)/float64(h)*(f.norm.Max-f.norm.Min)
		fillBox(r, chart.Box{Top: y, Left: cb.Left, Right: cb.Right, Bottom: y + 1}, f.Color(v))
	}
	r.SetStrokeColor(st.TextColor)
	r.SetStrokeWidth(1)
	tickLen := int(st.TickLength*f.dpi/72 + 0.5)
	for _, t := range l.Ticks {
		line(r, cb.Right, t.Y, cb.Right+tickLen, t.Y)
	}
}

func fillBox(r chart.Renderer, b chart.Box, c drawing.Color) {
	r.SetFillColor(c)
	r.MoveTo(b.Left, b.Top)
	r.LineTo(b.Right, b.Top)
	r.LineTo(b.Right, b.Bottom)
	r.LineTo(b.Left, b.Bottom)
	r.Close()
	r.Fill()
}

func line(r chart.Renderer, x0, y0, x1, y1 int) {
	r.MoveTo(x0, y0)
	r.LineTo(x1, y1)
	r.Stroke()
}

func drawText(r chart.Renderer, t Text) {
	r.SetFontSize(t.Size)
	r.SetFontColor(t.Color)
	if t.Rotation == 0 {
		r.Text(t.Body, t.X, t.Y)
		return
	}
	r.SetTextRotation(t.Rotation)
	r.Text(t.Body, t.X, t.Y)
	r.ClearTextRotation()
}
