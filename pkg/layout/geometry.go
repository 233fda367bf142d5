package layout

import "math"

// Unbounded marks a constraint axis that imposes no limit.
// Use it as the Width or Height of a [Constraint] to propose measurement
// without a bound on that axis.
var Unbounded = math.Inf(1)

// Size is a non-negative width/height pair in user units.
type Size struct {
	Width  float64
	Height float64
}

// Point is a position in the host's coordinate space.
// The y axis grows downward, matching screen coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle described by its top-left origin and
// size. A valid Rect has non-negative width and height.
type Rect struct {
	Origin Point
	Size   Size
}

// MinX returns the left edge of the rectangle.
func (r Rect) MinX() float64 { return r.Origin.X }

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }

// MinY returns the top edge of the rectangle.
func (r Rect) MinY() float64 { return r.Origin.Y }

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Origin.X + r.Size.Width/2, Y: r.Origin.Y + r.Size.Height/2}
}

// Constraint proposes measurement bounds for a box. Either axis may be
// [Unbounded], meaning the axis imposes no limit.
type Constraint struct {
	Width  float64
	Height float64
}

// Unconstrained returns a constraint with no limit on either axis.
func Unconstrained() Constraint {
	return Constraint{Width: Unbounded, Height: Unbounded}
}

// Fit returns a constraint bounded by the given size on both axes.
func Fit(s Size) Constraint {
	return Constraint{Width: s.Width, Height: s.Height}
}

// BoundedWidth reports whether the width axis imposes a limit.
func (c Constraint) BoundedWidth() bool { return !math.IsInf(c.Width, 1) }

// BoundedHeight reports whether the height axis imposes a limit.
func (c Constraint) BoundedHeight() bool { return !math.IsInf(c.Height, 1) }
