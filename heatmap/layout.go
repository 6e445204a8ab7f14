package heatmap

import (
	"fmt"
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	shrinkFactor = 0.9 // font scale step per failed attempt
	maxAttempts  = 12  // 0.9^11 ≈ 0.31 of the requested sizes
)

// Text is one positioned string. X, Y is the baseline origin passed to the
// renderer; Bounds is its approximate extent on the canvas.
type Text struct {
	Body     string
	X, Y     int
	Size     float64 // points
	Color    drawing.Color
	Rotation float64 // radians, negative rises to the right
	Bounds   chart.Box
}

// Cell is one grid square.
type Cell struct {
	Row, Col int
	Value    float64
	Box      chart.Box
	Fill     drawing.Color
	Label    Text
}

// Tick is one colorbar mark.
type Tick struct {
	Value float64
	Y     int
	Label Text
}

// Layout is the resolved geometry of a figure for one renderer.
type Layout struct {
	Scale     float64 // applied font scale, 1 when nothing shrank
	Style     Style   // style with scaled fonts
	Title     Text
	Grid      chart.Box
	CellSize  int
	Cells     []Cell
	RowLabels []Text
	ColLabels []Text
	Colorbar  chart.Box
	Ticks     []Tick
}

// Layout loads the default font into r, applies the figure DPI and
// resolves every position. Fonts shrink by 10% per attempt until the
// annotations fit their cells and the title fits the canvas.
func (f *Figure) Layout(r chart.Renderer) (*Layout, error) {
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("heatmap: load font: %w", err)
	}
	r.SetFont(font)
	r.SetDPI(f.dpi)

	scale := 1.0
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if l, ok := f.tryLayout(r, scale); ok {
			return l, nil
		}
		scale *= shrinkFactor
	}

	return nil, fmt.Errorf("%w: %dx%d px at %v dpi, %d fields",
		ErrLayout, f.width, f.height, f.dpi, f.table.Size())
}

func measure(r chart.Renderer, size float64, s string) (w, h int) {
	r.SetFontSize(size)
	b := r.MeasureText(s)

	return b.Width(), b.Height()
}

// tickLabel renders colorbar values with one decimal ("-0.5", "1.0").
func tickLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func (f *Figure) tryLayout(r chart.Renderer, scale float64) (*Layout, bool) {
	st := f.style.scaled(scale)
	px := func(pt float64) int { return int(math.Round(pt * f.dpi / 72)) }

	n := f.table.Size()
	labels := f.table.Labels()
	pad := px(st.OuterPad)
	labelPad := px(st.LabelPad)
	inset := px(st.CellInset)
	tickLen := px(st.TickLength)
	cbGap := px(st.ColorbarGap)

	// Stage 1: measure every text block.
	var titleW, titleH int
	top := pad
	if f.title != "" {
		titleW, titleH = measure(r, st.TitleFontSize, f.title)
		if titleW > f.width-2*pad {
			return nil, false
		}
		top += titleH + px(st.TitlePad)
	}

	_, labelCap := measure(r, st.LabelFontSize, "H")
	rowW := make([]int, n)
	colExt := make([]int, n)
	maxRow, maxCol := 0, 0
	for i, s := range labels {
		w, h := measure(r, st.LabelFontSize, s)
		rowW[i] = w
		// rotated 45°: the label box reaches (w+h)·√½ both down and left
		colExt[i] = int(math.Ceil(float64(w+h) * math.Sqrt2 / 2))
		maxRow = max(maxRow, w)
		maxCol = max(maxCol, colExt[i])
	}

	ticks := f.visibleTicks()
	_, tickCap := measure(r, st.TickFontSize, "0")
	maxTick := 0
	for _, v := range ticks {
		w, _ := measure(r, st.TickFontSize, tickLabel(v))
		maxTick = max(maxTick, w)
	}

	_, annCap := measure(r, st.AnnotationFontSize, "0")
	maxAnn := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w, _ := measure(r, st.AnnotationFontSize, f.format(f.table.At(i, j)))
			maxAnn = max(maxAnn, w)
		}
	}

	// Stage 2: margins, then the largest square grid that fits.
	left := pad + maxRow + labelPad
	bottom := pad + maxCol + labelPad
	rightFixed := cbGap + tickLen + labelPad + maxTick + pad

	// Widening the left margin for rotated column labels shrinks the cells,
	// which can push the labels further left; a few passes settle it.
	side, cell := 0, 0
	for pass := 0; ; pass++ {
		availW := int(float64(f.width-left-rightFixed) / (1 + st.ColorbarAspect))
		side = min(availW, f.height-top-bottom)
		if side <= 0 {
			return nil, false
		}
		if n == 0 {
			break
		}
		cell = side / n
		if cell <= 0 {
			return nil, false
		}
		need := 0
		for i, e := range colExt {
			need = max(need, e-(i*cell+cell/2))
		}
		if left-pad >= need {
			break
		}
		if pass == 3 {
			return nil, false
		}
		left = pad + need
	}
	if n > 0 {
		if cell < maxAnn+2*inset || cell < annCap+2*inset {
			return nil, false
		}
		side = cell * n
	}

	cbW := max(1, int(math.Round(st.ColorbarAspect*float64(side))))
	cbH := int(math.Round(st.ColorbarShrink * float64(side)))
	if cbH <= 0 {
		return nil, false
	}

	// Stage 3: center the composition on the canvas.
	dx := max(0, (f.width-(left+side+cbW+rightFixed))/2)
	dy := max(0, (f.height-(top+side+bottom))/2)
	grid := chart.Box{Top: top + dy, Left: left + dx, Right: left + dx + side, Bottom: top + dy + side}

	l := &Layout{Scale: scale, Style: st, Grid: grid, CellSize: cell}

	// Stage 4: place everything.
	if f.title != "" {
		x := grid.Left + side/2 - titleW/2
		x = max(pad, min(x, f.width-pad-titleW))
		y := grid.Top - px(st.TitlePad)
		l.Title = Text{
			Body: f.title, X: x, Y: y, Size: st.TitleFontSize, Color: st.TextColor,
			Bounds: chart.Box{Top: y - titleH, Left: x, Right: x + titleW, Bottom: y},
		}
	}

	l.Cells = make([]Cell, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := f.table.At(i, j)
			box := chart.Box{
				Top:    grid.Top + i*cell,
				Left:   grid.Left + j*cell,
				Right:  grid.Left + (j+1)*cell,
				Bottom: grid.Top + (i+1)*cell,
			}
			fill := f.Color(v)
			body := f.format(v)
			w, h := measure(r, st.AnnotationFontSize, body)
			cx, cy := box.Left+cell/2, box.Top+cell/2
			l.Cells = append(l.Cells, Cell{
				Row: i, Col: j, Value: v, Box: box, Fill: fill,
				Label: Text{
					Body: body, X: cx - w/2, Y: cy + annCap/2,
					Size: st.AnnotationFontSize, Color: st.annotationColor(fill),
					Bounds: chart.Box{Top: cy - h/2, Left: cx - w/2, Right: cx - w/2 + w, Bottom: cy - h/2 + h},
				},
			})
		}
	}

	l.RowLabels = make([]Text, n)
	l.ColLabels = make([]Text, n)
	c45 := math.Sqrt2 / 2
	for i, s := range labels {
		cy := grid.Top + i*cell + cell/2
		x := grid.Left - labelPad - rowW[i]
		l.RowLabels[i] = Text{
			Body: s, X: x, Y: cy + labelCap/2, Size: st.LabelFontSize, Color: st.TextColor,
			Bounds: chart.Box{Top: cy - labelCap/2, Left: x, Right: grid.Left - labelPad, Bottom: cy + labelCap/2},
		}

		w, h := measure(r, st.LabelFontSize, s)
		ax, ay := grid.Left+i*cell+cell/2, grid.Bottom+labelPad
		l.ColLabels[i] = Text{
			Body:     s,
			X:        ax - int(math.Round(float64(w)*c45)),
			Y:        ay + int(math.Round(float64(w+h)*c45)),
			Size:     st.LabelFontSize,
			Color:    st.TextColor,
			Rotation: -math.Pi / 4,
			Bounds:   chart.Box{Top: ay, Left: ax - colExt[i], Right: ax, Bottom: ay + colExt[i]},
		}
	}

	l.Colorbar = chart.Box{
		Top:    grid.Top + (side-cbH)/2,
		Left:   grid.Right + cbGap,
		Right:  grid.Right + cbGap + cbW,
		Bottom: grid.Top + (side-cbH)/2 + cbH,
	}
	span := f.norm.Max - f.norm.Min
	for _, v := range ticks {
		y := l.Colorbar.Top + int(math.Round((f.norm.Max-v)/span*float64(cbH)))
		x := l.Colorbar.Right + tickLen + labelPad
		body := tickLabel(v)
		w, _ := measure(r, st.TickFontSize, body)
		l.Ticks = append(l.Ticks, Tick{
			Value: v, Y: y,
			Label: Text{
				Body: body, X: x, Y: y + tickCap/2, Size: st.TickFontSize, Color: st.TextColor,
				Bounds: chart.Box{Top: y - tickCap/2, Left: x, Right: x + w, Bottom: y + tickCap/2},
			},
		})
	}

	return l, true
}

func (f *Figure) visibleTicks() []float64 {
	out := make([]float64, 0, len(f.ticks))
	for _, v := range f.ticks {
		if v >= f.norm.Min && v <= f.norm.Max {
			out = append(out, v)
		}
	}

	return out
}

// Texts returns every text block of the layout in paint order.
func (l *Layout) Texts() []Text {
	out := make([]Text, 0, len(l.Cells)+len(l.RowLabels)+len(l.ColLabels)+len(l.Ticks)+1)
	for _, c := range l.Cells {
		out = append(out, c.Label)
	}
	out = append(out, l.RowLabels...)
	out = append(out, l.ColLabels...)
	if l.Title.Body != "" {
		out = append(out, l.Title)
	}
	for _, t := range l.Ticks {
		out = append(out, t.Label)
	}

	return out
}
