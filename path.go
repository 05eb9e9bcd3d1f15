package outline

// Segment is a single drawing command of a Path.
// The set of segment kinds is closed: MoveTo, HLine, VLine and Arc.
type Segment interface {
	// appendSVG appends the path data form of the segment.
	appendSVG(b []byte) []byte
	// advance returns the current point after the segment is drawn from cur.
	advance(cur Point) Point
}

// MoveTo starts a new subpath at an absolute position.
type MoveTo struct {
	Point Point
}

func (s MoveTo) appendSVG(b []byte) []byte {
	b = append(b, 'M')
	b = appendNumber(b, s.Point.X)
	b = append(b, ',')
	return appendNumber(b, s.Point.Y)
}

func (s MoveTo) advance(Point) Point { return s.Point }

// HLine draws a horizontal line DX units from the current point.
type HLine struct {
	DX float64
}

func (s HLine) appendSVG(b []byte) []byte {
	return appendNumber(append(b, 'h'), s.DX)
}

func (s HLine) advance(cur Point) Point { return Point{X: cur.X + s.DX, Y: cur.Y} }

// VLine draws a vertical line DY units from the current point.
type VLine struct {
	DY float64
}

func (s VLine) appendSVG(b []byte) []byte {
	return appendNumber(append(b, 'v'), s.DY)
}

func (s VLine) advance(cur Point) Point { return Point{X: cur.X, Y: cur.Y + s.DY} }

// Arc draws an elliptical arc to the point (DX, DY) relative to the current
// point. The flags follow the SVG arc command.
type Arc struct {
	RX, RY   float64
	Rotation float64 // x-axis rotation in degrees
	LargeArc bool
	Sweep    bool
	DX, DY   float64
}

func (s Arc) appendSVG(b []byte) []byte {
	b = append(b, 'a')
	b = appendNumber(b, s.RX)
	b = append(b, ',')
	b = appendNumber(b, s.RY)
	b = append(b, ' ')
	b = appendNumber(b, s.Rotation)
	b = append(b, ' ')
	b = appendFlag(b, s.LargeArc)
	b = append(b, ' ')
	b = appendFlag(b, s.Sweep)
	b = append(b, ' ')
	b = appendNumber(b, s.DX)
	b = append(b, ',')
	return appendNumber(b, s.DY)
}

func (s Arc) advance(cur Point) Point { return Point{X: cur.X + s.DX, Y: cur.Y + s.DY} }

// Path is an ordered list of segments describing an outline contour.
// The zero value is an empty path ready to use.
type Path struct {
	segments []Segment
	start    Point // start of the current subpath
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		segments: make([]Segment, 0, 10),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.push(MoveTo{Point: Pt(x, y)})
	p.start = p.current
}

// HLine draws a horizontal line of signed length dx.
func (p *Path) HLine(dx float64) {
	p.push(HLine{DX: dx})
}

// VLine draws a vertical line of signed length dy.
func (p *Path) VLine(dy float64) {
	p.push(VLine{DY: dy})
}

// Arc draws an elliptical arc ending at the current point plus (dx, dy).
func (p *Path) Arc(rx, ry, rotation float64, largeArc, sweep bool, dx, dy float64) {
	p.push(Arc{
		RX:       rx,
		RY:       ry,
		Rotation: rotation,
		LargeArc: largeArc,
		Sweep:    sweep,
		DX:       dx,
		DY:       dy,
	})
}

func (p *Path) push(s Segment) {
	p.segments = append(p.segments, s)
	p.current = s.advance(p.current)
}

// Segments returns the path segments. The returned slice must not be modified.
func (p *Path) Segments() []Segment {
	return p.segments
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segments)
}

// StartPoint returns the start of the current subpath.
func (p *Path) StartPoint() Point {
	return p.start
}

// CurrentPoint returns the point reached after the last segment.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Displacement returns the sum of the relative segment deltas, that is the
// vector from the last MoveTo to the current point.
func (p *Path) Displacement() Point {
	var d Point
	for _, s := range p.segments {
		switch s := s.(type) {
		case MoveTo:
			d = Point{}
		case HLine:
			d.X += s.DX
		case VLine:
			d.Y += s.DY
		case Arc:
			d = d.Add(Pt(s.DX, s.DY))
		}
	}
	return d
}

// AppendSVG appends the SVG path data ("d" attribute) form of the path to b.
func (p *Path) AppendSVG(b []byte) []byte {
	for _, s := range p.segments {
		b = s.appendSVG(b)
	}
	return b
}

// String returns the SVG path data of the path.
func (p *Path) String() string {
	return string(p.AppendSVG(make([]byte, 0, 16*len(p.segments))))
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		segments: make([]Segment, len(p.segments)),
		start:    p.start,
		current:  p.current,
	}
	copy(result.segments, p.segments)
	return result
}
