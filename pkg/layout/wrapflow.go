package layout

// Alignment controls where each row starts horizontally within the
// available width.
type Alignment int

const (
	// AlignLeading starts every row at the left edge of the bounds.
	AlignLeading Alignment = iota
	// AlignCenter centers every row within the available width.
	AlignCenter
	// AlignTrailing ends every row at the right edge of the bounds.
	AlignTrailing
)

// String returns the lowercase name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeading:
		return "leading"
	case AlignCenter:
		return "center"
	case AlignTrailing:
		return "trailing"
	}
	return "unknown"
}

// WrapFlow arranges boxes left-to-right and wraps to a new row whenever
// the next box would exceed the available width. Boxes keep their
// unconstrained natural size: a box wider than the available width still
// occupies a row of its own, and boxes are top-aligned within their row
// (shorter boxes are not vertically centered against taller ones).
//
// The zero value is a valid engine: leading alignment, no spacing.
type WrapFlow struct {
	Alignment Alignment
	Spacing   float64
}

// flowRow is a run of boxes [start, end) sharing one row. width is the
// accumulated row width including the trailing spacing after the last
// box; it is the width the alignment offsets are computed from.
type flowRow struct {
	start, end int
	width      float64
	height     float64
}

func (w WrapFlow) validate() error {
	if w.Spacing < 0 {
		return ErrNegativeSpacing
	}
	if w.Alignment < AlignLeading || w.Alignment > AlignTrailing {
		return ErrInvalidAlignment
	}
	return nil
}

// buildRows measures every box unconstrained and greedily packs them into
// rows against availableWidth. Both Measure and Place go through this
// single routine so their results always agree.
func (w WrapFlow) buildRows(boxes []Box, availableWidth float64) ([]Size, []flowRow) {
	sizes := make([]Size, len(boxes))
	var rows []flowRow

	row := flowRow{}
	for i, b := range boxes {
		size := b.Measure(Unconstrained())
		sizes[i] = size

		if row.width+size.Width+w.Spacing > availableWidth && row.end > row.start {
			rows = append(rows, row)
			row = flowRow{start: i}
		}
		row.end = i + 1
		row.width += size.Width + w.Spacing
		if size.Height > row.height {
			row.height = size.Height
		}
	}
	if row.end > row.start {
		rows = append(rows, row)
	}
	return sizes, rows
}

// totalHeight is the sum of row heights plus spacing between rows, with
// no trailing spacing after the last row.
func (w WrapFlow) totalHeight(rows []flowRow) float64 {
	var h float64
	for i, row := range rows {
		if i > 0 {
			h += w.Spacing
		}
		h += row.height
	}
	return h
}

// Measure reports the size the boxes occupy when wrapped against the
// available width. With a bounded width the reported width is the
// available width itself; with an unbounded width it is the widest
// accumulated row (zero when there are no boxes).
func (w WrapFlow) Measure(boxes []Box, available Constraint) (Size, error) {
	if err := w.validate(); err != nil {
		return Size{}, err
	}
	_, rows := w.buildRows(boxes, available.Width)

	width := available.Width
	if !available.BoundedWidth() {
		width = 0
		for _, row := range rows {
			if row.width > width {
				width = row.width
			}
		}
	}
	return Size{Width: width, Height: w.totalHeight(rows)}, nil
}

// Place assigns a frame to every box within bounds. Rows stack top to
// bottom; within a row, boxes run left to right from the row's aligned
// start position and share the row's top edge.
func (w WrapFlow) Place(boxes []Box, bounds Rect) (Result, error) {
	if err := w.validate(); err != nil {
		return Result{}, err
	}
	sizes, rows := w.buildRows(boxes, bounds.Size.Width)

	placements := make([]Placement, 0, len(boxes))
	y := bounds.MinY()
	for ri, row := range rows {
		if ri > 0 {
			y += w.Spacing
		}

		x := bounds.MinX()
		switch w.Alignment {
		case AlignCenter:
			x += (bounds.Size.Width - row.width) / 2
		case AlignTrailing:
			x = bounds.MaxX() - row.width
		}

		for i := row.start; i < row.end; i++ {
			placements = append(placements, Placement{
				Index: i,
				Frame: Rect{Origin: Point{X: x, Y: y}, Size: sizes[i]},
			})
			x += sizes[i].Width + w.Spacing
		}
		y += row.height
	}

	return Result{
		Size:       Size{Width: bounds.Size.Width, Height: w.totalHeight(rows)},
		Placements: placements,
	}, nil
}
