package outline

import "math"

// ArcCenter converts an SVG endpoint arc to its center parameterization.
// phi is the x-axis rotation in radians. Radii that are too small to span
// from and to are scaled up uniformly, as SVG renderers do, and the
// corrected radii are returned. theta0 and theta1 are the start and end
// angles; theta1-theta0 is negative for counter-sweep arcs.
//
// When from equals to, or a radius is zero, the arc degenerates: the
// returned center is from and both angles are zero.
func ArcCenter(from Point, rx, ry, phi float64, large, sweep bool, to Point) (center Point, crx, cry, theta0, theta1 float64) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if from == to || rx == 0 || ry == 0 {
		return from, rx, ry, 0, 0
	}

	sinPhi, cosPhi := math.Sincos(phi)
	dx2 := (from.X - to.X) / 2
	dy2 := (from.Y - to.Y) / 2
	x1 := cosPhi*dx2 + sinPhi*dy2
	y1 := -sinPhi*dx2 + cosPhi*dy2

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1*y1 - ry2*x1*x1
	den := rx2*y1*y1 + ry2*x1*x1
	coef := 0.0
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	center = Point{
		X: cosPhi*cx1 - sinPhi*cy1 + (from.X+to.X)/2,
		Y: sinPhi*cx1 + cosPhi*cy1 + (from.Y+to.Y)/2,
	}

	theta0 = math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	delta := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx) - theta0
	switch {
	case sweep && delta < 0:
		delta += 2 * math.Pi
	case !sweep && delta > 0:
		delta -= 2 * math.Pi
	}
	return center, rx, ry, theta0, theta0 + delta
}

// ellipsePoint returns the point at angle theta on the ellipse centered at
// c with radii rx, ry rotated by phi radians.
func ellipsePoint(c Point, rx, ry, phi, theta float64) Point {
	sin, cos := math.Sincos(theta)
	return c.Add(Pt(rx*cos, ry*sin).Rotate(phi))
}

// maxArcSegments bounds the chords emitted for a single arc.
const maxArcSegments = 1024

// flattenArc calls fn with points along the arc from `from` (excluded) to
// `to` (included) so that no chord deviates more than tolerance from it.
func flattenArc(from Point, a Arc, tolerance float64, fn func(Point)) {
	to := from.Add(Pt(a.DX, a.DY))
	phi := a.Rotation * math.Pi / 180
	c, rx, ry, theta0, theta1 := ArcCenter(from, a.RX, a.RY, phi, a.LargeArc, a.Sweep, to)
	if theta0 == theta1 {
		fn(to)
		return
	}

	r := math.Max(rx, ry)
	step := math.Pi / 2
	if tolerance < r {
		step = math.Min(step, 2*math.Acos(1-tolerance/r))
	}
	count := math.Ceil(math.Abs(theta1-theta0) / step)
	if !(count >= 1) {
		count = 1
	}
	n := int(math.Min(count, maxArcSegments))
	for i := 1; i < n; i++ {
		theta := theta0 + (theta1-theta0)*float64(i)/float64(n)
		fn(ellipsePoint(c, rx, ry, phi, theta))
	}
	// Exact end point rather than a sampled one.
	fn(to)
}
