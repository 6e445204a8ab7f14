// SPDX-License-Identifier: MIT
// Package imagefile rasterizes a chart to PNG and writes it to disk.
//
// The pipeline is: draw onto a go-chart PNG renderer, decode, crop to the
// bounding box of non-background pixels plus a small padding, then fit the
// crop into the exact target size (CatmullRom, centered on the background).
// Output is always target-sized regardless of how much margin the chart
// left. WritePNG replaces the destination atomically; on any failure the
// destination is untouched and no temp file remains.
package imagefile
