package outline

import "math"

// DefaultTolerance is the flattening tolerance used when a non-positive
// tolerance is given.
const DefaultTolerance = 0.1

// Flatten converts the path to a polyline in absolute coordinates.
// tolerance is the maximum distance between an arc and its chords.
// A MoveTo after the first segment starts a new polyline; use
// FlattenCallback to observe subpath boundaries.
func (p *Path) Flatten(tolerance float64) []Point {
	if len(p.segments) == 0 {
		return nil
	}
	points := make([]Point, 0, len(p.segments)*4)
	p.FlattenCallback(tolerance, func(pt Point, _ bool) {
		points = append(points, pt)
	})
	return points
}

// FlattenCallback calls fn for every point of the flattened path.
// move is true for the first point of each subpath.
func (p *Path) FlattenCallback(tolerance float64, fn func(pt Point, move bool)) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var current Point
	for _, seg := range p.segments {
		switch s := seg.(type) {
		case MoveTo:
			fn(s.Point, true)
		case HLine, VLine:
			fn(s.advance(current), false)
		case Arc:
			flattenArc(current, s, tolerance, func(pt Point) { fn(pt, false) })
		}
		current = seg.advance(current)
	}
}

// BoundingBox returns the axis-aligned bounding box of the path,
// including the extremes of its arcs.
func (p *Path) BoundingBox() Rect {
	if len(p.segments) == 0 {
		return Rect{}
	}

	bbox := Rect{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	var current Point
	for _, seg := range p.segments {
		next := seg.advance(current)
		if a, ok := seg.(Arc); ok {
			bbox = arcBounds(bbox, current, a)
		}
		bbox = bbox.expand(next)
		current = next
	}
	return bbox
}

// arcBounds expands bbox with the extremes of an arc starting at from.
// Axis-aligned arcs contribute their quadrant points; rotated arcs are
// sampled finely.
func arcBounds(bbox Rect, from Point, a Arc) Rect {
	if math.Mod(a.Rotation, 360) != 0 {
		flattenArc(from, a, DefaultTolerance/10, func(pt Point) {
			bbox = bbox.expand(pt)
		})
		return bbox
	}

	to := from.Add(Pt(a.DX, a.DY))
	c, rx, ry, theta0, theta1 := ArcCenter(from, a.RX, a.RY, 0, a.LargeArc, a.Sweep, to)
	if theta0 == theta1 {
		// Degenerate arcs draw a straight line to their end point.
		return bbox
	}
	lo, hi := math.Min(theta0, theta1), math.Max(theta0, theta1)
	for k := math.Ceil(lo / (math.Pi / 2)); k*math.Pi/2 <= hi; k++ {
		bbox = bbox.expand(ellipsePoint(c, rx, ry, 0, k*math.Pi/2))
	}
	return bbox
}
