// Command outlinegen computes the notched outline of a text field and
// prints its SVG path data. It can also write SVG and PNG previews.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/outline"
	"github.com/gogpu/outline/label"
	"github.com/gogpu/outline/render"
	"github.com/gogpu/outline/svgdoc"
)

func main() {
	var (
		width      = flag.Float64("width", 200, "outline width")
		height     = flag.Float64("height", 56, "outline height")
		radius     = flag.Float64("radius", 4, "corner radius")
		text       = flag.String("label", "Label", "floating label text")
		fontSize   = flag.Float64("font-size", 16, "label font size before floating")
		labelWidth = flag.Float64("label-width", -1, "notch width; negative measures -label")
		clamp      = flag.Bool("clamp", false, "clamp the radius instead of rejecting inconsistent dimensions")
		svgOut     = flag.String("svg", "", "write an SVG preview to this file")
		pngOut     = flag.String("png", "", "write a PNG preview to this file")
		verbose    = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		outline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	notch := *labelWidth
	if notch < 0 {
		m, err := label.NewMeasurer()
		if err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
		notch = m.NotchWidth(*text, *fontSize)
	}

	w, h := int(math.Ceil(*width)), int(math.Ceil(*height))
	doc := svgdoc.New(w, h)

	opts := []outline.Option{outline.WithValidation()}
	if *clamp {
		opts = append(opts, outline.WithClamping())
	}
	f := outline.New(doc, opts...)
	if err := f.UpdateSVGPath(*width, *height, notch, *radius); err != nil {
		log.Fatalf("Invalid dimensions: %v", err)
	}
	p := f.LastPath()
	fmt.Println(p)

	if *svgOut != "" {
		floated := *fontSize * label.FloatingScale
		style := fmt.Sprintf("font-family:sans-serif;font-size:%gpx;dominant-baseline:middle;fill:#757575", floated)
		preview := svgdoc.New(w, h,
			svgdoc.WithMargin(int(math.Ceil(floated/2))),
			svgdoc.WithLabel(*text, p.CurrentPoint().X, style))
		preview.SetOutlinePathAttr(doc.D())
		err := writeFile(*svgOut, func(out io.Writer) error {
			_, err := preview.WriteTo(out)
			return err
		})
		if err != nil {
			log.Fatalf("Failed to write SVG: %v", err)
		}
		log.Printf("SVG saved to %s", *svgOut)
	}

	if *pngOut != "" {
		err := writeFile(*pngOut, func(out io.Writer) error {
			return render.WritePNG(out, p, w, h, render.Options{Background: color.White})
		})
		if err != nil {
			log.Fatalf("Failed to write PNG: %v", err)
		}
		log.Printf("PNG saved to %s (%dx%d)", *pngOut, w, h)
	}
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
