// Package scene loads TOML scene files that describe a set of boxes and a
// layout engine configuration.
//
// # Overview
//
// A scene is the CLI's stand-in for a host framework's subview list: it
// names the frame, the engine to run, and the boxes to arrange. Scenes
// are declarative and engine-agnostic - the same box list can be laid out
// by any engine by switching the [engine] table or overriding it on the
// command line.
//
// # File Format
//
//	[scene]
//	name   = "gallery"
//	width  = 800
//	height = 600
//
//	[engine]
//	kind    = "masonry"   # wrapflow | masonry | radial
//	columns = 3
//	spacing = 8
//
//	[[box]]
//	id     = "hero"
//	width  = 240
//	height = 160
//	mode   = "fixed"      # fixed | shrink | fluid
//
// # Box Modes
//
// A box's mode decides how it responds to measurement constraints:
//
//   - fixed: always reports its declared size
//   - shrink: clamps its width to the proposed constraint
//   - fluid: preserves its area when narrowed, growing taller instead -
//     the text-block model that makes masonry layouts interesting
//
// Boxes without an explicit id are assigned a generated UUID on load so
// every placement in sink output can be correlated back to its box.
package scene
