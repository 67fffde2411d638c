// Package render draws packing layouts as PNG images, one per sheet.
// The renderer trusts the engine's geometry: placements never overlap and
// never exceed the sheet bounds, so nothing is re-validated here.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"glasscut/internal/model"
)

// Options controls the rendered image size and decorations.
type Options struct {
	// MaxSize bounds the longer image edge in pixels.
	MaxSize int
	// DrawOffcuts shades usable remnants.
	DrawOffcuts bool
}

// DefaultOptions renders 1200px images with offcuts shaded.
func DefaultOptions() Options {
	return Options{MaxSize: 1200, DrawOffcuts: true}
}

var (
	sheetFill   = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	sheetBorder = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	pieceBorder = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	offcutFill  = color.NRGBA{R: 214, G: 230, B: 214, A: 255}
)

// pieceFills mirrors the PDF exporter's palette.
var pieceFills = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 255},
	{R: 33, G: 150, B: 243, A: 255},
	{R: 255, G: 152, B: 0, A: 255},
	{R: 156, G: 39, B: 176, A: 255},
	{R: 0, G: 188, B: 212, A: 255},
	{R: 244, G: 67, B: 54, A: 255},
	{R: 255, G: 235, B: 59, A: 255},
	{R: 121, G: 85, B: 72, A: 255},
}

// RenderSheet draws one sheet's layout into an image.
func RenderSheet(sheet model.Sheet, opts Options) *image.NRGBA {
	if opts.MaxSize <= 0 {
		opts.MaxSize = DefaultOptions().MaxSize
	}

	scale := float64(opts.MaxSize) / math.Max(sheet.Width, sheet.Height)
	w := int(math.Round(sheet.Width * scale))
	h := int(math.Round(sheet.Height * scale))

	img := imaging.New(w, h, sheetFill)

	if opts.DrawOffcuts {
		for _, o := range sheet.Offcuts {
			fillRect(img, scaledRect(o.X, o.Y, o.Width, o.Height, scale), offcutFill)
		}
	}

	for i, p := range sheet.Placements {
		r := scaledRect(p.X, p.Y, p.Width, p.Height, scale)
		fillRect(img, r, pieceFills[i%len(pieceFills)])
		strokeRect(img, r, pieceBorder)
	}

	strokeRect(img, image.Rect(0, 0, w, h), sheetBorder)
	return img
}

// RenderAll writes one PNG per sheet into dir, named sheet_001.png and so
// on, and returns the written paths.
func RenderAll(dir string, result model.PackResult, opts Options) ([]string, error) {
	if len(result.Sheets) == 0 {
		return nil, fmt.Errorf("no sheets to render")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(result.Sheets))
	for _, sheet := range result.Sheets {
		img := RenderSheet(sheet, opts)
		path := filepath.Join(dir, fmt.Sprintf("sheet_%03d.png", sheet.Index+1))
		if err := imaging.Save(img, path); err != nil {
			return nil, fmt.Errorf("save %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func scaledRect(x, y, w, h, scale float64) image.Rectangle {
	return image.Rect(
		int(math.Round(x*scale)),
		int(math.Round(y*scale)),
		int(math.Round((x+w)*scale)),
		int(math.Round((y+h)*scale)),
	)
}

func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// strokeRect draws a one-pixel border just inside the rectangle.
func strokeRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	if r.Empty() {
		return
	}
	u := &image.Uniform{C: c}
	draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}
