// Package svgdoc provides an outline.Adapter backed by an in-memory SVG
// outline element. The element can be written out as a standalone SVG
// document at any time.
package svgdoc

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"sync"

	svg "github.com/ajstarks/svgo"

	"github.com/gogpu/outline"
)

// ErrNoPath is returned by WriteTo before any path data has been applied.
var ErrNoPath = errors.New("svgdoc: no outline path applied")

// DefaultStroke is the style of the outline path unless WithStroke is used.
const DefaultStroke = "fill:none;stroke:#757575;stroke-width:1"

// Outline is an SVG document holding a single outline path.
// It is safe for concurrent use.
type Outline struct {
	width, height int
	margin        int
	stroke        string

	label      string
	labelX     float64
	labelStyle string

	mu sync.Mutex
	d  string
}

var _ outline.Adapter = (*Outline)(nil)

// Option configures an Outline.
type Option func(*Outline)

// WithStroke sets the CSS style of the outline path.
func WithStroke(style string) Option {
	return func(o *Outline) {
		o.stroke = style
	}
}

// WithMargin grows the canvas by m on every side and offsets the outline
// by (m, m). A floated label is centered on the top edge, so without a
// margin of about half its font size its upper half lies outside the canvas.
func WithMargin(m int) Option {
	return func(o *Outline) {
		o.margin = max(m, 0)
	}
}

// WithLabel places text in the notch, starting at x on the top edge.
// See WithMargin for keeping the label inside the canvas.
func WithLabel(text string, x float64, style string) Option {
	return func(o *Outline) {
		o.label = text
		o.labelX = x
		o.labelStyle = style
	}
}

// New returns an empty document of the given canvas size.
func New(width, height int, opts ...Option) *Outline {
	o := &Outline{
		width:      width,
		height:     height,
		stroke:     DefaultStroke,
		labelStyle: "font-family:sans-serif;font-size:12px;dominant-baseline:middle;fill:#757575",
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// SetOutlinePathAttr stores d as the outline's path data.
func (o *Outline) SetOutlinePathAttr(d string) {
	o.mu.Lock()
	o.d = d
	o.mu.Unlock()
}

// D returns the path data last applied, or "" if none.
func (o *Outline) D() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.d
}

// WriteTo writes the document to w.
func (o *Outline) WriteTo(w io.Writer) (int64, error) {
	d := o.D()
	if d == "" {
		return 0, ErrNoPath
	}

	cw := &countWriter{w: w}
	canvas := svg.New(cw)
	canvas.Start(o.width+2*o.margin, o.height+2*o.margin)
	if o.margin > 0 {
		canvas.Translate(o.margin, o.margin)
	}
	canvas.Path(d, o.stroke)
	if o.label != "" {
		canvas.Text(int(math.Round(o.labelX)), int(outline.StartY), o.label, o.labelStyle)
	}
	if o.margin > 0 {
		canvas.Gend()
	}
	canvas.End()

	outline.Logger().Debug("svgdoc: document written",
		slog.Int64("bytes", cw.n),
		slog.Int("width", o.width),
		slog.Int("height", o.height))
	return cw.n, cw.err
}

// countWriter counts bytes and keeps the first error, since svg.SVG
// discards both.
type countWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
