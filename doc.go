// Package outline computes the notched outline of a text field: a rounded
// rectangle whose top edge leaves a gap for the floating label.
//
// # Overview
//
// Build maps the outline box size, the label (notch) width and the corner
// radius to a Path, an ordered list of move, line and arc segments. The
// path serializes to SVG path data:
//
//	p := outline.Build(200, 56, 40, 4)
//	fmt.Println(p)
//	// M40,1h154a4,4 0 0 1 4,4v44a4,4 0 0 1 -4,4h-189.2a4,4 0 0 1 -4,-4v-44a4,4 0 0 1 4,-4h6
//
// # Adapters
//
// A Foundation connects the geometry to whatever renders the outline. The
// renderer implements Adapter, a single method receiving the path data:
//
//	f := outline.New(outline.AdapterFunc(func(d string) {
//	    el.SetAttribute("d", d)
//	}))
//	f.UpdateSVGPath(width, height, labelWidth, radius)
//
// The svgdoc package provides an Adapter that writes standalone SVG
// documents, the render package rasterizes a Path, and the label package
// measures label text to obtain the notch width.
//
// # Coordinate System
//
// User space units (typically CSS pixels), origin at the top-left of the
// outline box, X increasing right and Y increasing down.
//
// # Validation
//
// Build never validates its inputs. Dimensions.Validate reports
// inconsistent dimensions and Dimensions.Clamp repairs them; a Foundation
// applies either when created with WithValidation or WithClamping.
package outline
