package outline

import (
	"log/slog"
	"sync"
)

// Adapter applies path data to the rendered outline element.
// SetOutlinePathAttr is expected to succeed synchronously.
type Adapter interface {
	SetOutlinePathAttr(d string)
}

// AdapterFunc is a function used as an Adapter.
type AdapterFunc func(d string)

// SetOutlinePathAttr calls f(d).
func (f AdapterFunc) SetOutlinePathAttr(d string) { f(d) }

type discardAdapter struct{}

func (discardAdapter) SetOutlinePathAttr(string) {}

// Foundation keeps the outline element of a text field in sync with the
// field dimensions. The owning component calls UpdateSVGPath whenever the
// outline size or the label width changes.
type Foundation struct {
	adapter Adapter
	opts    options

	mu   sync.Mutex
	last *Path
}

// New creates a Foundation writing through adapter. A nil adapter discards
// every update.
func New(adapter Adapter, opts ...Option) *Foundation {
	if adapter == nil {
		adapter = discardAdapter{}
	}
	f := &Foundation{adapter: adapter}
	for _, opt := range opts {
		opt(&f.opts)
	}
	return f
}

// UpdateSVGPath builds the notched outline for the given dimensions and
// applies it to the adapter. It returns an error only when the Foundation
// was created with WithValidation and the dimensions are inconsistent; in
// that case the adapter is not called.
func (f *Foundation) UpdateSVGPath(width, height, labelWidth, radius float64) error {
	d := Dimensions{Width: width, Height: height, LabelWidth: labelWidth, Radius: radius}
	log := Logger()

	if f.opts.clamp {
		if c := d.Clamp(); c != d {
			log.Warn("outline: dimensions clamped",
				slog.Any("requested", d),
				slog.Any("clamped", c))
			d = c
		}
	}
	if f.opts.validate {
		if err := d.Validate(); err != nil {
			log.Warn("outline: dimensions rejected", slog.Any("error", err))
			return err
		}
	}

	p := d.Path()
	data := p.String()
	f.adapter.SetOutlinePathAttr(data)

	f.mu.Lock()
	f.last = p
	f.mu.Unlock()

	log.Debug("outline path updated",
		slog.Float64("width", d.Width),
		slog.Float64("height", d.Height),
		slog.Float64("labelWidth", d.LabelWidth),
		slog.Float64("radius", d.Radius),
		slog.String("d", data))
	return nil
}

// LastPath returns the path most recently applied to the adapter, or nil
// before the first successful update.
func (f *Foundation) LastPath() *Path {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}
