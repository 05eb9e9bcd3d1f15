package label

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/outline"
)

// FloatingScale is the scale applied to a label once it floats above the
// input. The notch is the label width at this scale.
const FloatingScale = 0.75

// Measurer computes label advances. It is safe for concurrent use: the
// parsed font is shared read-only, while faces and shapers, which carry
// mutable state, are created per call or pooled.
type Measurer struct {
	font     *font.Font
	language language.Language
	shapers  sync.Pool
}

// NewMeasurer parses the configured font and returns a Measurer.
func NewMeasurer(opts ...Option) (*Measurer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.fontData) == 0 {
		return nil, ErrEmptyFontData
	}

	face, err := font.ParseTTF(bytes.NewReader(cfg.fontData))
	if err != nil {
		return nil, fmt.Errorf("label: parse font: %w", err)
	}

	return &Measurer{
		font:     face.Font,
		language: language.NewLanguage(cfg.language),
		shapers: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}, nil
}

// Width returns the advance of text set at size, in the same units as
// size. Text is NFC-normalized and split into bidirectional runs before
// shaping. Empty text or a non-positive size measures 0.
func (m *Measurer) Width(text string, size float64) float64 {
	if text == "" || !(size > 0) {
		return 0
	}
	text = norm.NFC.String(text)

	var total fixed.Int26_6
	for _, r := range splitRuns(text) {
		total += m.shape(r.runes, r.dir, size)
	}
	w := float64(total) / 64

	outline.Logger().Debug("label measured",
		slog.String("text", text),
		slog.Float64("size", size),
		slog.Float64("width", w))
	return w
}

// NotchWidth returns the width of the notch reserved for text rendered at
// size once the label has floated.
func (m *Measurer) NotchWidth(text string, size float64) float64 {
	return m.Width(text, size) * FloatingScale
}

func (m *Measurer) shape(runes []rune, dir di.Direction, size float64) fixed.Int26_6 {
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(m.font),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  m.language,
	}

	s := m.shapers.Get().(*shaping.HarfbuzzShaper)
	out := s.Shape(input)
	m.shapers.Put(s)
	return out.Advance
}

type run struct {
	runes []rune
	dir   di.Direction
}

// splitRuns splits text into directional runs. Text the bidi algorithm
// cannot order is measured as a single left-to-right run.
func splitRuns(text string) []run {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return []run{{runes: []rune(text), dir: di.DirectionLTR}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []run{{runes: []rune(text), dir: di.DirectionLTR}}
	}

	runs := make([]run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		text := r.String()
		if text == "" {
			continue
		}
		dir := di.DirectionLTR
		if r.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = append(runs, run{runes: []rune(text), dir: dir})
	}
	return runs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
