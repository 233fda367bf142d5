// Package pkg provides the core libraries for layoutkit.
//
// # Overview
//
// Layoutkit arranges rectangular boxes inside a frame using pure-geometry
// layout engines. The pkg directory is organized into five main areas:
//
//  1. [layout] - Engines and geometry primitives (wrap-flow, masonry, radial)
//  2. [scene] - Declarative TOML scene files describing boxes and engine config
//  3. [sink] - Output renderers (SVG, JSON)
//  4. [pipeline] - Orchestration (load → layout → render)
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow through layoutkit:
//
//	Scene file (TOML)
//	         ↓
//	    [scene] package (parse + validate, build engine)
//	         ↓
//	    [layout] package (measure boxes, place frames)
//	         ↓
//	    [sink] package (render placements)
//	         ↓
//	    SVG/JSON output
//
// # Quick Start
//
// Lay out boxes and render an SVG:
//
//	import (
//	    "github.com/mlauber/layoutkit/pkg/layout"
//	    "github.com/mlauber/layoutkit/pkg/sink"
//	)
//
//	// 1. Describe the boxes
//	boxes := []layout.Box{
//	    layout.Fixed(120, 80),
//	    layout.Fixed(120, 60),
//	    layout.Fixed(120, 100),
//	}
//
//	// 2. Run an engine
//	engine := layout.Masonry{Columns: 2, Spacing: 8}
//	res, _ := engine.Place(boxes, layout.Rect{
//	    Size: layout.Size{Width: 400, Height: 300},
//	})
//
//	// 3. Render to SVG
//	svg := sink.RenderSVG(res)
//
// Or drive everything from a scene file:
//
//	s, _ := scene.Load("gallery.toml")
//	runner := pipeline.NewRunner(logger)
//	result, _ := runner.Execute(ctx, s, pipeline.Options{
//	    Formats: []string{"svg", "json"},
//	})
//
// # Main Packages
//
// [layout] - The engine core. Defines the Box measurement contract,
// geometry types (Size, Point, Rect, Constraint), and the three engines.
// Engines are stateless values; hosts own caching via [layout.Memoize].
//
// [scene] - TOML scene files: box lists with measurement modes (fixed,
// shrink, fluid) and an engine table. Scenes are the CLI's stand-in for a
// host framework's subview list.
//
// [sink] - Transforms a computed [layout.Result] into output bytes.
// Deterministic SVG for visual inspection, JSON for golden files and
// external tools.
//
// [pipeline] - Complete load → layout → render pipeline used by CLI,
// preview server, and TUI. Ensures consistent behavior across all entry
// points.
//
// [errors] - Structured error codes shared by CLI and server.
//
// [observability] - Optional instrumentation hooks with no-op defaults.
//
// [buildinfo] - ldflags-injected version information.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/layout/...    # Engine core only
//	go test -run Example        # Examples only
//
// [layout]: https://pkg.go.dev/github.com/mlauber/layoutkit/pkg/layout
// [scene]: https://pkg.go.dev/github.com/mlauber/layoutkit/pkg/scene
// [sink]: https://pkg.go.dev/github.com/mlauber/layoutkit/pkg/sink
// [pipeline]: https://pkg.go.dev/github.com/mlauber/layoutkit/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/mlauber/layoutkit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/mlauber/layoutkit/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/mlauber/layoutkit/pkg/buildinfo
// [layout.Memoize]: https://pkg.go.dev/github.com/mlauber/layoutkit/pkg/layout#Memoize
// [layout.Result]: https://pkg.go.dev/github.com/mlauber/layoutkit/pkg/layout#Result
package pkg
