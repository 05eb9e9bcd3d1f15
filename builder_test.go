package outline

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuild_Literal(t *testing.T) {
	p := Build(200, 56, 40, 4)

	want := []Segment{
		MoveTo{Point: Pt(40, 1)},
		HLine{DX: 154},
		Arc{RX: 4, RY: 4, Sweep: true, DX: 4, DY: 4},
		VLine{DY: 44},
		Arc{RX: 4, RY: 4, Sweep: true, DX: -4, DY: 4},
		HLine{DX: -189.2},
		Arc{RX: 4, RY: 4, Sweep: true, DX: -4, DY: -4},
		VLine{DY: -44},
		Arc{RX: 4, RY: 4, Sweep: true, DX: 4, DY: -4},
		HLine{DX: 6},
	}
	if diff := cmp.Diff(want, p.Segments()); diff != "" {
		t.Errorf("Build(200, 56, 40, 4) segments mismatch (-want +got):\n%s", diff)
	}

	const wantD = "M40,1h154a4,4 0 0 1 4,4v44a4,4 0 0 1 -4,4h-189.2a4,4 0 0 1 -4,-4v-44a4,4 0 0 1 4,-4h6"
	if got := p.String(); got != wantD {
		t.Errorf("Build(200, 56, 40, 4).String() =\n%s\nwant\n%s", got, wantD)
	}
}

func TestBuild_Strings(t *testing.T) {
	tests := []struct {
		name                              string
		width, height, labelWidth, radius float64
		want                              string
	}{
		{
			name:  "dense",
			width: 100, height: 40, labelWidth: 10, radius: 2.5,
			want: "M10,1h85.5a2.5,2.5 0 0 1 2.5,2.5v32.5a2.5,2.5 0 0 1 -2.5,2.5h-93.25" +
				"a2.5,2.5 0 0 1 -2.5,-2.5v-32.5a2.5,2.5 0 0 1 2.5,-2.5h6",
		},
		{
			name:  "no label",
			width: 320, height: 48, labelWidth: 0, radius: 12,
			want: "M0,1h306a12,12 0 0 1 12,12v12a12,12 0 0 1 -12,12h-287.6" +
				"a12,12 0 0 1 -12,-12v-12a12,12 0 0 1 12,-12h6",
		},
		{
			name:  "square corners",
			width: 120, height: 30, labelWidth: 20, radius: 0,
			want: "M20,1h98a0,0 0 0 1 0,0v30a0,0 0 0 1 0,0h-120a0,0 0 0 1 0,0v-30a0,0 0 0 1 0,0h6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.width, tt.height, tt.labelWidth, tt.radius).String()
			if got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	inputs := [][4]float64{
		{200, 56, 40, 4},
		{333.3, 71.7, 41.25, 4.4},
		{1e6, 1e3, 17, 0.3},
	}
	for _, in := range inputs {
		a := Build(in[0], in[1], in[2], in[3]).String()
		b := Build(in[0], in[1], in[2], in[3]).String()
		if a != b {
			t.Errorf("Build%v not deterministic: %q != %q", in, a, b)
		}
	}
}

func TestBuild_ContourCloses(t *testing.T) {
	tests := []struct {
		width, height, labelWidth, radius float64
	}{
		{200, 56, 40, 4},
		{400, 112, 80, 8},
		{100, 40, 10, 2.5},
		{640, 48, 120, 16},
	}

	for _, tt := range tests {
		p := Build(tt.width, tt.height, tt.labelWidth, tt.radius)

		d := p.Displacement()
		if math.Abs(d.Y) > 1e-9 {
			t.Errorf("Build(%v): vertical displacement = %v, want 0", tt, d.Y)
		}

		// The contour ends on the top edge, left of the notch.
		end := p.CurrentPoint()
		wantEnd := Pt(4+1.7*tt.radius, StartY)
		if math.Abs(end.X-wantEnd.X) > 1e-9 || math.Abs(end.Y-wantEnd.Y) > 1e-9 {
			t.Errorf("Build(%v): end = %v, want %v", tt, end, wantEnd)
		}
		if end.X >= tt.labelWidth {
			t.Errorf("Build(%v): end %v is not left of the notch start %v", tt, end.X, tt.labelWidth)
		}

		// The right edge is reached at x = width - 2 and the bottom at y = height - radius + 1.
		bbox := p.BoundingBox()
		if math.Abs(bbox.Max.X-(tt.width-2)) > 1e-9 {
			t.Errorf("Build(%v): right edge at %v, want %v", tt, bbox.Max.X, tt.width-2)
		}
		if math.Abs(bbox.Max.Y-(tt.height-tt.radius+1)) > 1e-9 {
			t.Errorf("Build(%v): bottom edge at %v, want %v", tt, bbox.Max.Y, tt.height-tt.radius+1)
		}
	}
}

func TestBuild_ZeroLabelWidth(t *testing.T) {
	p := Build(200, 56, 0, 4)

	segs := p.Segments()
	last, ok := segs[len(segs)-1].(HLine)
	if !ok || last.DX != ClosingLength {
		t.Fatalf("last segment = %#v, want HLine{DX: %v}", segs[len(segs)-1], ClosingLength)
	}
	// The closing segment overshoots the start: the contour does not
	// close into a loop even without a label.
	if end := p.CurrentPoint(); end == p.StartPoint() {
		t.Errorf("path closed at %v, want an open contour", end)
	}
}

func TestBuild_Scaling(t *testing.T) {
	base := Build(200, 56, 40, 4).Segments()
	scaled := Build(400, 112, 80, 8).Segments()

	if len(base) != len(scaled) {
		t.Fatalf("segment count %d != %d", len(base), len(scaled))
	}

	for i := range base {
		switch b := base[i].(type) {
		case Arc:
			s := scaled[i].(Arc)
			if s.RX != 2*b.RX || s.RY != 2*b.RY || s.DX != 2*b.DX || s.DY != 2*b.DY {
				t.Errorf("segment %d: arc %+v is not %+v scaled by 2", i, s, b)
			}
		case VLine:
			if s := scaled[i].(VLine); s.DY != 2*b.DY {
				t.Errorf("segment %d: vline %v, want %v", i, s.DY, 2*b.DY)
			}
		}
	}

	// Bottom edge scales exactly; the top edge carries the fixed inset
	// and the closing segment a fixed length.
	if got, want := scaled[5].(HLine).DX, 2*base[5].(HLine).DX; got != want {
		t.Errorf("bottom edge = %v, want %v", got, want)
	}
	if got, want := scaled[1].(HLine).DX, 2*base[1].(HLine).DX+topInset; got != want {
		t.Errorf("top edge = %v, want %v", got, want)
	}
	if got := scaled[9].(HLine).DX; got != ClosingLength {
		t.Errorf("closing segment = %v, want %v", got, ClosingLength)
	}
}

// TestBuild_EdgeAsymmetry guards the different radius reductions of the
// top and bottom edges. Making them symmetric changes the rendered outline.
func TestBuild_EdgeAsymmetry(t *testing.T) {
	const width, height, labelWidth, radius float64 = 300, 60, 0, 10

	segs := Build(width, height, labelWidth, radius).Segments()
	top := segs[1].(HLine).DX
	bottom := segs[5].(HLine).DX

	if want := width - 2*radius + (radius - topInset); top != want {
		t.Errorf("top edge = %v, want %v", top, want)
	}
	if want := -(width - 2.7*radius); bottom != want {
		t.Errorf("bottom edge = %v, want %v", bottom, want)
	}
	if -bottom == width-2*radius {
		t.Errorf("bottom edge uses a 2*radius reduction (%v)", bottom)
	}
	if !strings.Contains(Build(width, height, labelWidth, radius).String(), "h-273") {
		t.Errorf("serialized bottom edge is not h-273")
	}
}

func TestBuild_NonFinitePropagates(t *testing.T) {
	got := Build(math.NaN(), 56, 40, 4).String()
	if !strings.Contains(got, "hNaN") {
		t.Errorf("NaN width not propagated: %s", got)
	}
	got = Build(math.Inf(1), 56, 40, 4).String()
	if !strings.Contains(got, "hInfinity") || !strings.Contains(got, "h-Infinity") {
		t.Errorf("infinite width not propagated: %s", got)
	}
}

func TestDimensionsPath(t *testing.T) {
	d := Dimensions{Width: 200, Height: 56, LabelWidth: 40, Radius: 4}
	if got, want := d.Path().String(), Build(200, 56, 40, 4).String(); got != want {
		t.Errorf("Dimensions.Path() = %q, want %q", got, want)
	}
}

func BenchmarkBuild(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Build(200, 56, 40, 4).String()
	}
}
