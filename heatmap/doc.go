// Package heatmap lays out and draws an annotated correlation heatmap on a
// go-chart raster renderer.
//
// A Figure is a pure function of its correlation table, labels and style:
// the same inputs always produce the same layout and the same pixels.
//
// Layout policy:
//
//   - square cells colored on a diverging colormap with a fixed value range
//     (default [-1, 1], RdYlGn), so colors are comparable across runs;
//   - every cell annotated with its value ("%.2f", or "nan");
//   - row labels horizontal, column labels rotated 45° and right-aligned;
//   - a title above the grid with top padding, a colorbar at 80% of the
//     grid height on the right;
//   - margins come from measured text extents; when annotations would not
//     fit their cells every font shrinks by 10% and layout is retried.
//
// Drawing needs a renderer whose DPI is already set (points are converted
// with it); imagefile does this for PNG output.
package heatmap
