package heatmap

import "github.com/wcharczuk/go-chart/v2/drawing"

// Style holds typography and spacing in points, plus colors.
// Points are converted to pixels with the renderer DPI (px = pt·dpi/72).
type Style struct {
	TitleFontSize      float64
	LabelFontSize      float64
	AnnotationFontSize float64
	TickFontSize       float64

	OuterPad   float64 // blank border kept around all content
	TitlePad   float64 // gap between title baseline and grid top
	LabelPad   float64 // gap between grid and its tick labels
	CellLine   float64 // separator width between cells
	CellInset  float64 // minimum horizontal room around an annotation
	TickLength float64 // colorbar tick mark length

	ColorbarShrink float64 // colorbar height as a fraction of grid height
	ColorbarAspect float64 // colorbar width as a fraction of grid side
	ColorbarGap    float64 // gap between grid and colorbar

	Background    drawing.Color
	TextColor     drawing.Color
	DarkAnnotate  drawing.Color
	LightAnnotate drawing.Color
	LineColor     drawing.Color
	NaNColor      drawing.Color

	// LuminanceCutoff picks dark annotation text above it, light below.
	LuminanceCutoff float64
}

// TalkStyle returns presentation-sized fonts on a white grid background.
func TalkStyle() Style {
	return Style{
		TitleFontSize:      18,
		LabelFontSize:      16.5,
		AnnotationFontSize: 18,
		TickFontSize:       16.5,

		OuterPad:   7.2,
		TitlePad:   20,
		LabelPad:   5.25,
		CellLine:   0.5,
		CellInset:  2,
		TickLength: 5.25,

		ColorbarShrink: 0.8,
		ColorbarAspect: 0.05,
		ColorbarGap:    12,

		Background:    drawing.ColorWhite,
		TextColor:     drawing.ColorFromHex("262626"),
		DarkAnnotate:  drawing.ColorFromHex("262626"),
		LightAnnotate: drawing.ColorWhite,
		LineColor:     drawing.ColorWhite,
		NaNColor:      drawing.ColorFromHex("e0e0e0"),

		LuminanceCutoff: 0.408,
	}
}

// scaled returns a copy with every font size multiplied by s.
func (s Style) scaled(k float64) Style {
	s.TitleFontSize *= k
	s.LabelFontSize *= k
	s.AnnotationFontSize *= k
	s.TickFontSize *= k

	return s
}

// annotationColor picks readable text for a cell fill.
func (s Style) annotationColor(fill drawing.Color) drawing.Color {
	if relativeLuminance(fill) > s.LuminanceCutoff {
		return s.DarkAnnotate
	}

	return s.LightAnnotate
}
