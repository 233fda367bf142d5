// Package layout provides stateless layout engines that compute box
// placements for a host UI framework's layout pass.
//
// # Overview
//
// The package implements three independent layout strategies over a common
// contract: a wrap/flow layout that breaks boxes into rows, a masonry
// layout that packs boxes into the currently shortest of N columns, and a
// radial layout that spaces boxes evenly around a circle. Each engine is a
// small value-typed configuration struct; the engine never owns, mutates,
// or renders the boxes it arranges.
//
// # Measurement
//
// Engines never compute sizes themselves. The host adapts its native view
// objects to the [Box] interface, whose single Measure method returns the
// natural size of an item under a proposed [Constraint]. A constraint axis
// set to [Unbounded] imposes no limit. Measurement may be arbitrarily
// expensive; engines call it once per box per pass and never cache results
// across calls. Hosts that want caching can wrap a box with [Memoize].
//
// # Contract
//
// Every engine exposes two pure operations:
//
//	Measure(boxes, available) - the total size the arrangement would occupy
//	Place(boxes, bounds)      - the final frame of every box
//
// Place returns a [Result] whose placements are in input order and always
// contain exactly one entry per box. Both operations are deterministic:
// identical inputs produce identical output, with no hidden state between
// calls.
//
// # Error Policy
//
// Invalid configuration (column count below one, negative spacing, an
// alignment outside the enum) fails fast with a sentinel error before any
// arithmetic runs. Degenerate numeric input - zero or negative available
// width, bounds narrower than the requested column count - is not
// rejected: it propagates through the arithmetic and can produce
// zero-area or negative-width frames. Constraining inputs to sane values
// is the host's job.
//
// # Concurrency
//
// All engines are pure, synchronous functions over their arguments.
// Concurrent calls with independent inputs are safe as long as the
// supplied boxes are safe to measure concurrently. A box returned by
// [Memoize] is not safe for concurrent use.
package layout
