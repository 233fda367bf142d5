// Package pipeline provides the core layout pipeline for layoutkit.
//
// This package implements the complete load → layout → render pipeline that
// can be used by CLI, preview server, and TUI components. By centralizing
// this logic, we ensure consistent behavior across all entry points and
// avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Parse and validate a scene description
//  2. Layout: Run the selected engine over the scene's boxes
//  3. Render: Generate output in various formats (SVG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Engine:  "masonry",
//	    Columns: 3,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, scn, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Layout only
//	res, err := runner.ComputeLayout(ctx, scn, opts)
//
//	// Render with existing layout
//	artifacts, err := runner.Render(ctx, scn, res, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mlauber/layoutkit/pkg/errors"
	"github.com/mlauber/layoutkit/pkg/layout"
	"github.com/mlauber/layoutkit/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, Server, and TUI
// =============================================================================

const (
	// DefaultWidth is the default frame width in pixels, used when neither
	// the scene nor the options specify one.
	DefaultWidth = 800.0

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = 600.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for server requests.
//
// Engine configuration fields override the scene's [engine] table when
// set, so one scene file can be rendered through every engine from the
// command line.
type Options struct {
	// Engine options
	Engine    string  `json:"engine,omitempty"`
	Columns   int     `json:"columns,omitempty"`
	Spacing   float64 `json:"spacing,omitempty"`
	Alignment string  `json:"alignment,omitempty"`

	// Frame options
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Labels  bool     `json:"labels,omitempty"`
	Outline bool     `json:"outline,omitempty"`
	Scale   float64  `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Engine is the engine kind that produced the layout.
	Engine string

	// Layout contains the computed placements and layout size.
	Layout layout.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BoxCount   int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults for the full
// pipeline. This method is idempotent - calling it multiple times has the
// same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Engine != "" && !scene.ValidKinds[o.Engine] {
		return errors.New(errors.ErrCodeInvalidEngine, "invalid engine: %q (must be one of: wrapflow, masonry, radial)", o.Engine)
	}
	if o.Alignment != "" {
		if _, err := scene.ParseAlignment(o.Alignment); err != nil {
			return err
		}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = 1
	}
}

// EngineConfig merges the options over the scene's engine table. Any
// engine field set in the options wins; everything else comes from the
// scene.
func (o *Options) EngineConfig(s *scene.Scene) scene.EngineConfig {
	cfg := s.Engine
	if o.Engine != "" {
		cfg.Kind = o.Engine
	}
	if o.Columns != 0 {
		cfg.Columns = o.Columns
	}
	if o.Spacing != 0 {
		cfg.Spacing = o.Spacing
	}
	if o.Alignment != "" {
		cfg.Alignment = o.Alignment
	}
	return cfg
}

// Frame resolves the layout frame from options, scene, and defaults, in
// that order of precedence.
func (o *Options) Frame(s *scene.Scene) layout.Rect {
	w, h := o.Width, o.Height
	if w == 0 {
		w = s.Width
	}
	if h == 0 {
		h = s.Height
	}
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	return layout.Rect{Size: layout.Size{Width: w, Height: h}}
}
