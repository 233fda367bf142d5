package layout

import "errors"

var (
	// ErrInvalidColumns is returned by [Masonry.Measure] and [Masonry.Place]
	// when the configured column count is below one.
	ErrInvalidColumns = errors.New("column count must be at least 1")

	// ErrNegativeSpacing is returned by engine operations when the
	// configured spacing is negative. Spacing must be zero or positive.
	ErrNegativeSpacing = errors.New("spacing must not be negative")

	// ErrInvalidAlignment is returned by [WrapFlow.Measure] and
	// [WrapFlow.Place] when the alignment is outside the defined enum.
	ErrInvalidAlignment = errors.New("unknown alignment")
)

// Box is an opaque handle to one measurable item, supplied by the host for
// the duration of a single layout computation. Measure returns the item's
// natural size under the proposed constraint. Engines treat boxes as
// read-only and never retain them across calls.
type Box interface {
	Measure(c Constraint) Size
}

// MeasureFunc adapts a plain function to the [Box] interface.
type MeasureFunc func(c Constraint) Size

// Measure calls f with the proposed constraint.
func (f MeasureFunc) Measure(c Constraint) Size { return f(c) }

// Fixed returns a box that reports the same size regardless of the
// proposed constraint. Useful for tests and fixed-size content.
func Fixed(width, height float64) Box {
	return fixedBox{size: Size{Width: width, Height: height}}
}

type fixedBox struct {
	size Size
}

func (b fixedBox) Measure(Constraint) Size { return b.size }

// Memoize wraps a box with a per-constraint measurement cache. Layout
// engines never cache measurements themselves; hosts with expensive
// measurement can wrap their boxes before a pass. The returned box is not
// safe for concurrent use.
func Memoize(b Box) Box {
	return &memoBox{inner: b, cache: make(map[Constraint]Size)}
}

type memoBox struct {
	inner Box
	cache map[Constraint]Size
}

func (m *memoBox) Measure(c Constraint) Size {
	if s, ok := m.cache[c]; ok {
		return s
	}
	s := m.inner.Measure(c)
	m.cache[c] = s
	return s
}

// Placement correlates a box, by its index in the input sequence, to the
// frame the engine assigned to it.
type Placement struct {
	Index int
	Frame Rect
}

// Result is the output of a placement pass: the total size the
// arrangement occupies and one placement per input box, in input order.
type Result struct {
	Size       Size
	Placements []Placement
}

// Engine is the contract shared by all layout strategies. Measure reports
// the total size the boxes would occupy within the available constraint;
// Place assigns a frame to every box within the given bounds. Both are
// pure: no engine holds state across calls.
type Engine interface {
	Measure(boxes []Box, available Constraint) (Size, error)
	Place(boxes []Box, bounds Rect) (Result, error)
}
