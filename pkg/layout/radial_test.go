package layout

import (
	"math"
	"testing"
)

func TestRadial_SymmetricDistance(t *testing.T) {
	// N identical square boxes in a square of side 2r: every box center
	// sits at distance r - S/2 from the bounds center.
	r := Radial{}
	const side, boxSize = 200.0, 20.0
	bounds := Rect{Size: Size{Width: side, Height: side}}

	for _, n := range []int{1, 2, 3, 4, 5, 8, 12} {
		boxes := make([]Box, n)
		for i := range boxes {
			boxes[i] = Fixed(boxSize, boxSize)
		}
		res, err := r.Place(boxes, bounds)
		if err != nil {
			t.Fatalf("n=%d: Place() error: %v", n, err)
		}

		center := bounds.Center()
		want := side/2 - boxSize/2
		for _, p := range res.Placements {
			c := p.Frame.Center()
			dist := math.Hypot(c.X-center.X, c.Y-center.Y)
			if !almostEqual(dist, want) {
				t.Errorf("n=%d box%d: distance = %v, want %v", n, p.Index, dist, want)
			}
		}
	}
}

func TestRadial_StartsAtTopClockwise(t *testing.T) {
	r := Radial{}
	boxes := []Box{Fixed(20, 20), Fixed(20, 20), Fixed(20, 20), Fixed(20, 20)}
	bounds := Rect{Size: Size{Width: 200, Height: 200}}

	res, err := r.Place(boxes, bounds)
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}

	// Inset radius 90 around center (100, 100). With +y down, the four
	// boxes land top, right, bottom, left in that order.
	want := []Point{
		{X: 100, Y: 10},
		{X: 190, Y: 100},
		{X: 100, Y: 190},
		{X: 10, Y: 100},
	}
	for i, p := range res.Placements {
		c := p.Frame.Center()
		if !almostEqual(c.X, want[i].X) || !almostEqual(c.Y, want[i].Y) {
			t.Errorf("box%d center = (%v, %v), want (%v, %v)", i, c.X, c.Y, want[i].X, want[i].Y)
		}
	}
}

func TestRadial_EvenAngularSpacing(t *testing.T) {
	r := Radial{}
	const n = 6
	boxes := make([]Box, n)
	for i := range boxes {
		boxes[i] = Fixed(10, 10)
	}
	bounds := Rect{Size: Size{Width: 300, Height: 300}}

	res, err := r.Place(boxes, bounds)
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}

	center := bounds.Center()
	step := 2 * math.Pi / n
	for i, p := range res.Placements {
		c := p.Frame.Center()
		angle := math.Atan2(c.Y-center.Y, c.X-center.X)
		want := step*float64(i) - math.Pi/2
		// Normalize both to [0, 2pi) before comparing.
		angle = math.Mod(angle+2*math.Pi, 2*math.Pi)
		want = math.Mod(want+2*math.Pi, 2*math.Pi)
		if !almostEqual(angle, want) {
			t.Errorf("box%d angle = %v, want %v", i, angle, want)
		}
	}
}

func TestRadial_LargerBoxSitsFurtherInward(t *testing.T) {
	r := Radial{}
	boxes := []Box{Fixed(10, 10), Fixed(60, 60)}
	bounds := Rect{Size: Size{Width: 200, Height: 200}}

	res, err := r.Place(boxes, bounds)
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}

	center := bounds.Center()
	small := res.Placements[0].Frame.Center()
	large := res.Placements[1].Frame.Center()
	distSmall := math.Hypot(small.X-center.X, small.Y-center.Y)
	distLarge := math.Hypot(large.X-center.X, large.Y-center.Y)
	if distLarge >= distSmall {
		t.Errorf("large box distance %v, small box distance %v; larger boxes should sit further inward",
			distLarge, distSmall)
	}
}

func TestRadial_NonSquareBoundsUseShorterAxis(t *testing.T) {
	r := Radial{}
	boxes := []Box{Fixed(20, 20)}
	bounds := Rect{Size: Size{Width: 400, Height: 100}}

	res, err := r.Place(boxes, bounds)
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	// Radius comes from the shorter axis: min(400, 100)/2 = 50. The
	// single box sits at the top of that circle.
	c := res.Placements[0].Frame.Center()
	if !almostEqual(c.X, 200) || !almostEqual(c.Y, 10) {
		t.Errorf("center = (%v, %v), want (200, 10)", c.X, c.Y)
	}
}

func TestRadial_NoBoxes(t *testing.T) {
	r := Radial{}

	res, err := r.Place(nil, Rect{Size: Size{Width: 100, Height: 100}})
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	if len(res.Placements) != 0 {
		t.Errorf("got %d placements, want 0", len(res.Placements))
	}
	if res.Size.Width != 100 || res.Size.Height != 100 {
		t.Errorf("Size = %+v, want bounds size", res.Size)
	}
}

func TestRadial_Measure(t *testing.T) {
	r := Radial{}

	size, err := r.Measure(nil, Constraint{Width: 320, Height: 240})
	if err != nil {
		t.Fatalf("Measure() error: %v", err)
	}
	if size.Width != 320 || size.Height != 240 {
		t.Errorf("Measure() = %+v, want {320 240}", size)
	}

	size, err = r.Measure(nil, Constraint{Width: 320, Height: Unbounded})
	if err != nil {
		t.Fatalf("Measure() error: %v", err)
	}
	if size.Width != 320 || size.Height != 0 {
		t.Errorf("Measure() = %+v, want {320 0} (unbounded axis resolves to 0)", size)
	}
}
