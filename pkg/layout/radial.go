package layout

import "math"

// Radial places boxes evenly spaced around the circle inscribed in the
// bounds, starting at the top and proceeding clockwise. Each box is
// anchored by its center and inset from the circle's edge by half its own
// size along each axis, so larger boxes sit slightly further inward. This
// per-box inset is an approximation of tangent packing, not the real
// thing: adjacent boxes are neither guaranteed to touch nor to avoid
// overlap.
//
// Radial has no configuration; the zero value is the engine.
type Radial struct{}

// Measure returns the resolved available size. Radial placement always
// fits within the bounds radius, so no tight content bound is computed;
// an unbounded axis resolves to zero.
func (Radial) Measure(boxes []Box, available Constraint) (Size, error) {
	var s Size
	if available.BoundedWidth() {
		s.Width = available.Width
	}
	if available.BoundedHeight() {
		s.Height = available.Height
	}
	return s, nil
}

// Place arranges the boxes around the inscribed circle. With no boxes
// there are no placements; a single box sits at the top of the circle.
func (Radial) Place(boxes []Box, bounds Rect) (Result, error) {
	result := Result{
		Size:       bounds.Size,
		Placements: make([]Placement, 0, len(boxes)),
	}
	if len(boxes) == 0 {
		return result, nil
	}

	radius := math.Min(bounds.Size.Width, bounds.Size.Height) / 2
	step := 2 * math.Pi / float64(len(boxes))
	center := bounds.Center()

	for i, b := range boxes {
		size := b.Measure(Unconstrained())

		// Start at the top; +y is down, so -pi/2 points up and
		// increasing angles proceed clockwise on screen.
		angle := step*float64(i) - math.Pi/2
		cx := center.X + (radius-size.Width/2)*math.Cos(angle)
		cy := center.Y + (radius-size.Height/2)*math.Sin(angle)

		result.Placements = append(result.Placements, Placement{
			Index: i,
			Frame: Rect{
				Origin: Point{X: cx - size.Width/2, Y: cy - size.Height/2},
				Size:   size,
			},
		})
	}
	return result, nil
}
