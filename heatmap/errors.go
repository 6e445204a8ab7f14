package heatmap

import "errors"

var (
	// ErrNilTable is returned by New when no correlation table is given.
	ErrNilTable = errors.New("heatmap: nil table")

	// ErrBadCenter is returned by New when the colormap center lies outside
	// the open value range.
	ErrBadCenter = errors.New("heatmap: colormap center outside range")

	// ErrLayout is returned when the canvas cannot hold the chart at any
	// supported font scale.
	ErrLayout = errors.New("heatmap: canvas too small for layout")
)
