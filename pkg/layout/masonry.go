package layout

// Masonry splits the available width into Columns fixed-width columns and
// assigns each box, in input order, to the currently shortest column.
// This is a greedy online packing heuristic, not a globally optimal one:
// recomputation is cheap and visual balance matters more than perfect
// packing. The column scan uses a strict less-than comparison, so equal
// column heights always resolve to the lowest column index. That rule is
// load-bearing - it keeps repeated passes over unchanged input from
// jittering between equivalent assignments.
//
// Column width can go negative when the bounds are narrower than the
// spacing demands of the requested column count. This is not guarded; the
// degenerate frames propagate to the caller.
type Masonry struct {
	Columns int
	Spacing float64
}

func (m Masonry) validate() error {
	if m.Columns < 1 {
		return ErrInvalidColumns
	}
	if m.Spacing < 0 {
		return ErrNegativeSpacing
	}
	return nil
}

// computeFrames runs the packing over totalWidth and returns each box's
// frame in local coordinates plus the bottom edge of the tallest column.
// Measure and Place both delegate here so their results always agree.
func (m Masonry) computeFrames(boxes []Box, totalWidth float64) ([]Rect, float64) {
	columnWidth := totalWidth
	if m.Columns > 1 {
		columnWidth = (totalWidth - m.Spacing*float64(m.Columns-1)) / float64(m.Columns)
	}

	heights := make([]float64, m.Columns)
	frames := make([]Rect, len(boxes))
	var maxY float64

	for i, b := range boxes {
		size := b.Measure(Constraint{Width: columnWidth, Height: Unbounded})

		col := 0
		for j := 1; j < m.Columns; j++ {
			if heights[j] < heights[col] {
				col = j
			}
		}

		frames[i] = Rect{
			Origin: Point{X: float64(col) * (columnWidth + m.Spacing), Y: heights[col]},
			Size:   size,
		}
		heights[col] += size.Height + m.Spacing

		if bottom := frames[i].MaxY(); bottom > maxY {
			maxY = bottom
		}
	}
	return frames, maxY
}

// Measure reports the size the boxes occupy when packed into columns
// across the available width. The height is the bottom edge of the lowest
// frame, zero when there are no boxes.
func (m Masonry) Measure(boxes []Box, available Constraint) (Size, error) {
	if err := m.validate(); err != nil {
		return Size{}, err
	}
	_, height := m.computeFrames(boxes, available.Width)
	return Size{Width: available.Width, Height: height}, nil
}

// Place assigns a frame to every box within bounds, packing input order
// into the shortest column first.
func (m Masonry) Place(boxes []Box, bounds Rect) (Result, error) {
	if err := m.validate(); err != nil {
		return Result{}, err
	}
	frames, height := m.computeFrames(boxes, bounds.Size.Width)

	placements := make([]Placement, len(frames))
	for i, f := range frames {
		f.Origin.X += bounds.MinX()
		f.Origin.Y += bounds.MinY()
		placements[i] = Placement{Index: i, Frame: f}
	}

	return Result{
		Size:       Size{Width: bounds.Size.Width, Height: height},
		Placements: placements,
	}, nil
}
