// Package sink provides output format renderers for computed layouts.
//
// # Overview
//
// A "sink" transforms a [layout.Result] into a final output format. This
// package provides renderers for:
//
//   - SVG: Scalable vector graphics for visual inspection
//   - JSON: Placement data export for external tools
//
// # SVG Output
//
// [RenderSVG] draws one rect per placement inside a viewBox sized to the
// layout result. Output is deterministic: the same result and options
// always produce byte-identical SVG.
//
// Basic usage:
//
//	svg := sink.RenderSVG(res,
//	    sink.WithIDs(ids),
//	    sink.WithLabels(),
//	    sink.WithOutline(),
//	)
//
// # JSON Output
//
// [RenderJSON] exports every placement with its frame, index, and box ID,
// enabling:
//
//   - Golden-file comparison of engine output
//   - Integration with external visualization tools
//
// # Adding New Formats
//
// To add a new output format:
//
//  1. Create a renderer function: func RenderFoo(res layout.Result, opts ...FooOption) ([]byte, error)
//  2. Define option types for configuration
//  3. Access res.Placements for positioned frames, res.Size for bounds
//  4. Register in internal/cli/render.go for CLI support
//
// [layout.Result]: github.com/mlauber/layoutkit/pkg/layout.Result
package sink
