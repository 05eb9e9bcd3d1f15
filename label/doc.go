// Package label measures floating label text to size the outline notch.
//
// The notch cut into the top edge of an outline must be as wide as the
// label once it floats above the input. A Measurer shapes the label with
// HarfBuzz (go-text/typesetting) so kerning and ligatures are accounted
// for, then applies the floating scale:
//
//	m, err := label.NewMeasurer()
//	if err != nil {
//	    return err
//	}
//	notch := m.NotchWidth("Email address", 16)
//	f.UpdateSVGPath(width, height, notch, radius)
//
// The default face is Go Regular. Use WithFontData to measure with the
// font the label is actually rendered in.
package label
