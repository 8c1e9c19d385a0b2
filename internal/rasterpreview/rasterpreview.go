// Package rasterpreview implements a "rasterizer" collaborator for the
// packing core: it reads each Placement's position and effective
// dimensions, and renders one page at a time filtered by page_index
// into an image.RGBA, using image.NewRGBA plus image/draw.Draw per
// packed rect — a quick on-screen preview without a PDF toolchain.
package rasterpreview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/piwi3910/photopack/pkg/pack"
)

// palette mirrors internal/pdfexport's palette so a raster preview and a
// printed proof read the same way.
var palette = []color.RGBA{
	{R: 76, G: 175, B: 80, A: 255},
	{R: 33, G: 150, B: 243, A: 255},
	{R: 255, G: 152, B: 0, A: 255},
	{R: 156, G: 39, B: 176, A: 255},
	{R: 0, G: 188, B: 212, A: 255},
	{R: 244, G: 67, B: 54, A: 255},
	{R: 255, G: 235, B: 59, A: 255},
	{R: 121, G: 85, B: 72, A: 255},
}

var (
	pageBackground = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	borderColor    = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

// RenderPage rasterizes the placements on pageIndex into an image.RGBA of
// size (config.PageWidth*scale, config.PageHeight*scale) pixels. scale
// converts from config's linear unit to pixels per unit (e.g. a DPI value
// when the unit is inches); it must be positive.
func RenderPage(placements []pack.Placement, config pack.PageConfig, pageIndex int, scale float64) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("rasterpreview: scale must be positive, got %v", scale)
	}

	w := int(config.PageWidth*scale + 0.5)
	h := int(config.PageHeight*scale + 0.5)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("rasterpreview: page dimensions scale to a non-positive image size")
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: pageBackground}, image.Point{}, draw.Src)

	for i, p := range pageIndexed(placements, pageIndex) {
		drawPlacement(dst, p, palette[i%len(palette)], scale)
	}

	return dst, nil
}

func pageIndexed(placements []pack.Placement, pageIndex int) []pack.Placement {
	var onPage []pack.Placement
	for _, p := range placements {
		if p.PageIndex == pageIndex {
			onPage = append(onPage, p)
		}
	}
	return onPage
}

func drawPlacement(dst *image.RGBA, p pack.Placement, fill color.RGBA, scale float64) {
	x0 := int(p.X * scale)
	y0 := int(p.Y * scale)
	x1 := x0 + int(p.EffectiveWidth*scale)
	y1 := y0 + int(p.EffectiveHeight*scale)

	rect := image.Rect(x0, y0, x1, y1)
	draw.Draw(dst, rect, &image.Uniform{C: fill}, image.Point{}, draw.Src)
	drawBorder(dst, rect)
}

// drawBorder outlines rect with a one-pixel border so adjoining
// placements remain visually distinguishable even when the fill colors
// repeat.
func drawBorder(dst *image.RGBA, rect image.Rectangle) {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		dst.Set(x, rect.Min.Y, borderColor)
		dst.Set(x, rect.Max.Y-1, borderColor)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		dst.Set(rect.Min.X, y, borderColor)
		dst.Set(rect.Max.X-1, y, borderColor)
	}
}

// EncodePNG writes img to w as a PNG, for callers that want bytes rather
// than an in-memory image.RGBA (e.g. an HTTP handler or a thumbnail
// cache).
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
