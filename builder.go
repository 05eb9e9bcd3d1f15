package outline

// Fixed offsets of the notched outline, in user units.
const (
	// StartY is the vertical position of the top edge stroke.
	StartY = 1
	// topInset shortens the top edge before the top-right corner.
	topInset = 2
	// bottomFactor scales the radius removed from the bottom edge. It is
	// intentionally not 2: the rendered outline depends on this value.
	bottomFactor = 2.7
	// ClosingLength is the length of the last segment drawn toward the notch.
	ClosingLength = 6
)

// Build returns the outline path of a width x height box with rounded
// corners of the given radius and a notch of labelWidth on the top edge.
//
// The path starts at (labelWidth, 1), runs clockwise around the box and
// stops short of its start, leaving the notch open. Inputs are not
// validated: callers should ensure labelWidth+2*radius < width and
// 3*radius <= height, otherwise the path self-intersects. Non-finite inputs
// propagate into the output. See Dimensions.Validate and Dimensions.Clamp.
func Build(width, height, labelWidth, radius float64) *Path {
	// Products are converted explicitly so they are rounded before the
	// following addition and never fused into an FMA.
	p := NewPath()
	p.MoveTo(labelWidth, StartY)
	p.HLine(width - radius - labelWidth - topInset)
	p.Arc(radius, radius, 0, false, true, radius, radius)
	p.VLine(height - float64(3*radius))
	p.Arc(radius, radius, 0, false, true, -radius, radius)
	p.HLine(-width + float64(bottomFactor*radius))
	p.Arc(radius, radius, 0, false, true, -radius, -radius)
	p.VLine(-height + float64(3*radius))
	p.Arc(radius, radius, 0, false, true, radius, -radius)
	p.HLine(ClosingLength)
	return p
}
