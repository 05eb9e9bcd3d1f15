package outline

import (
	"errors"
	"math"
)

// Dimensions groups the measurements a notched outline is built from.
type Dimensions struct {
	Width      float64 // width of the outline box
	Height     float64 // height of the outline box
	LabelWidth float64 // width of the notch cut for the label
	Radius     float64 // corner radius
}

// Path builds the outline path for d. It is equivalent to
// Build(d.Width, d.Height, d.LabelWidth, d.Radius).
func (d Dimensions) Path() *Path {
	return Build(d.Width, d.Height, d.LabelWidth, d.Radius)
}

type field struct {
	name  string
	value float64
}

func (d Dimensions) fields() []field {
	return []field{
		{"Width", d.Width},
		{"Height", d.Height},
		{"LabelWidth", d.LabelWidth},
		{"Radius", d.Radius},
	}
}

// Validate reports every dimension that would make Build draw a malformed
// outline. The returned error joins one *DimensionError per violation.
func (d Dimensions) Validate() error {
	var errs []error
	for _, f := range d.fields() {
		switch {
		case math.IsNaN(f.value) || math.IsInf(f.value, 0):
			errs = append(errs, &DimensionError{
				Field:  f.name,
				Value:  f.value,
				Reason: "is not finite",
				Err:    ErrNonFinite,
			})
		case f.value < 0:
			errs = append(errs, &DimensionError{
				Field:  f.name,
				Value:  f.value,
				Reason: "is negative",
				Err:    ErrNegative,
			})
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	lim := d.radiusLimits()
	if d.Radius > lim.height {
		errs = append(errs, &DimensionError{
			Field:  "Radius",
			Value:  d.Radius,
			Limit:  lim.height,
			Reason: "exceeds a third of the height",
			Err:    ErrGeometry,
		})
	}
	if d.Radius > lim.top {
		errs = append(errs, &DimensionError{
			Field:  "LabelWidth",
			Value:  d.LabelWidth,
			Limit:  nonNegative(d.Width - d.Radius - topInset),
			Reason: "leaves no room for the corners",
			Err:    ErrGeometry,
		})
	}
	if d.Radius > lim.bottom {
		errs = append(errs, &DimensionError{
			Field:  "Radius",
			Value:  d.Radius,
			Limit:  lim.bottom,
			Reason: "exceeds the bottom edge",
			Err:    ErrGeometry,
		})
	}
	return errors.Join(errs...)
}

// limits holds the largest radius each edge of the outline accepts.
type limits struct {
	height float64 // vertical edges: height - 3r >= 0
	top    float64 // top edge: width - r - labelWidth - 2 >= 0
	bottom float64 // bottom edge: width - 2.7r >= 0
}

// radiusLimits is shared by Validate and Clamp so that a clamped radius
// compares equal to its limit instead of rounding past it.
func (d Dimensions) radiusLimits() limits {
	return limits{
		height: d.Height / 3,
		top:    d.Width - d.LabelWidth - topInset,
		bottom: d.Width / bottomFactor,
	}
}

// Clamp returns a copy of d adjusted so that Build does not draw negative
// edges: NaN and negative values become 0, the label width is limited to
// the top edge, and the radius to what every edge accepts. Dimensions that
// already satisfy those limits are returned unchanged. A width below 2
// cannot be repaired and still fails Validate.
func (d Dimensions) Clamp() Dimensions {
	c := Dimensions{
		Width:      nonNegative(d.Width),
		Height:     nonNegative(d.Height),
		LabelWidth: nonNegative(d.LabelWidth),
		Radius:     nonNegative(d.Radius),
	}
	if c.LabelWidth > c.Width-topInset {
		c.LabelWidth = nonNegative(c.Width - topInset)
	}
	lim := c.radiusLimits()
	for _, l := range []float64{lim.height, lim.top, lim.bottom} {
		if c.Radius > l {
			c.Radius = nonNegative(l)
		}
	}
	return c
}

// nonNegative maps negative values and NaN to 0.
func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
