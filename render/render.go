// Package render rasterizes outline paths for previews and visual tests.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/outline"
)

// Options controls how a path is stroked. The zero value strokes a
// 1-unit black line with the default flattening tolerance.
type Options struct {
	StrokeWidth float64
	Color       color.Color
	Background  color.Color // filled before stroking when non-nil
	Tolerance   float64
	Offset      outline.Point // added to every path coordinate
}

func (o Options) withDefaults() Options {
	if !(o.StrokeWidth > 0) {
		o.StrokeWidth = 1
	}
	if o.Color == nil {
		o.Color = color.Black
	}
	if !(o.Tolerance > 0) {
		o.Tolerance = outline.DefaultTolerance
	}
	return o
}

// capSegments is the number of edges approximating a round join.
const capSegments = 16

// Stroke draws p onto dst with round joins and caps.
func Stroke(dst draw.Image, p *outline.Path, opts Options) {
	opts = opts.withDefaults()
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	hw := math.Min(opts.StrokeWidth/2, float64(b.Dx()+b.Dy()))
	origin := outline.Pt(float64(b.Min.X), float64(b.Min.Y))

	// Points are clamped to the raster grown by the stroke, which keeps
	// every coordinate representable as float32. Non-finite points break
	// the polyline.
	m := hw + 1
	lo := outline.Pt(-m, -m)
	hi := outline.Pt(float64(b.Dx())+m, float64(b.Dy())+m)

	var prev outline.Point
	var drawing bool
	var edges, dropped int
	p.FlattenCallback(opts.Tolerance, func(pt outline.Point, move bool) {
		pt = pt.Add(opts.Offset).Sub(origin)
		if !isFinite(pt) {
			drawing = false
			dropped++
			return
		}
		pt = clampPoint(pt, lo, hi)
		if !move && drawing {
			addQuad(r, prev, pt, hw)
			edges++
		}
		addDisc(r, pt, hw)
		prev = pt
		drawing = true
	})

	r.Draw(dst, b, image.NewUniform(opts.Color), image.Point{})
	outline.Logger().Debug("render: outline stroked",
		slog.Int("edges", edges),
		slog.Int("dropped", dropped),
		slog.Float64("strokeWidth", opts.StrokeWidth))
}

func isFinite(p outline.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func clampPoint(p, lo, hi outline.Point) outline.Point {
	return outline.Pt(math.Max(lo.X, math.Min(hi.X, p.X)), math.Max(lo.Y, math.Min(hi.Y, p.Y)))
}

// addQuad adds the rectangle covering the segment a-b at half width hw.
// Every quad and disc is wound the same way so overlaps accumulate.
func addQuad(r *vector.Rasterizer, a, b outline.Point, hw float64) {
	d := b.Sub(a).Normalize()
	if d == (outline.Point{}) {
		return
	}
	n := outline.Pt(-d.Y, d.X).Mul(hw)
	moveTo(r, a.Add(n))
	lineTo(r, b.Add(n))
	lineTo(r, b.Sub(n))
	lineTo(r, a.Sub(n))
	r.ClosePath()
}

// addDisc adds a polygonal disc of radius hw centered at c.
func addDisc(r *vector.Rasterizer, c outline.Point, hw float64) {
	for i := 0; i < capSegments; i++ {
		theta := -2 * math.Pi * float64(i) / capSegments
		pt := c.Add(outline.Pt(math.Cos(theta), math.Sin(theta)).Mul(hw))
		if i == 0 {
			moveTo(r, pt)
		} else {
			lineTo(r, pt)
		}
	}
	r.ClosePath()
}

func moveTo(r *vector.Rasterizer, p outline.Point) { r.MoveTo(float32(p.X), float32(p.Y)) }
func lineTo(r *vector.Rasterizer, p outline.Point) { r.LineTo(float32(p.X), float32(p.Y)) }

// Image returns a width x height image with p stroked on it.
func Image(p *outline.Path, width, height int, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	Stroke(img, p, opts)
	return img
}

// WritePNG encodes Image(p, width, height, opts) as PNG to w.
func WritePNG(w io.Writer, p *outline.Path, width, height int, opts Options) error {
	return png.Encode(w, Image(p, width, height, opts))
}
