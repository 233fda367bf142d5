package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mlauber/layoutkit/pkg/layout"
	"github.com/mlauber/layoutkit/pkg/observability"
	"github.com/mlauber/layoutkit/pkg/scene"
	"github.com/mlauber/layoutkit/pkg/sink"
)

// Runner encapsulates pipeline execution. Both CLI and preview server use
// this to avoid duplicating stage orchestration.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner with the given logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, s *scene.Scene, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Engine:    opts.EngineConfig(s).Kind,
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Layout
	layoutStart := time.Now()
	res, err := r.ComputeLayout(ctx, s, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = res
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.BoxCount = len(res.Placements)

	r.Logger.Info("computed layout",
		"engine", result.Engine,
		"boxes", result.Stats.BoxCount,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, s, res, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeLayout runs the selected engine over the scene's boxes.
func (r *Runner) ComputeLayout(ctx context.Context, s *scene.Scene, opts Options) (layout.Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return layout.Result{}, err
	}
	r.applyLogger(&opts)

	cfg := opts.EngineConfig(s)
	merged := &scene.Scene{
		Name:   s.Name,
		Width:  s.Width,
		Height: s.Height,
		Engine: cfg,
		Boxes:  s.Boxes,
	}
	engine, err := merged.BuildEngine()
	if err != nil {
		return layout.Result{}, err
	}

	boxes := make([]layout.Box, len(s.Boxes))
	for i, b := range s.Boxes {
		boxes[i] = layout.Memoize(b.Box())
	}

	observability.Pipeline().OnLayoutStart(ctx, cfg.Kind, len(boxes))
	start := time.Now()
	res, err := engine.Place(boxes, opts.Frame(s))
	observability.Pipeline().OnLayoutComplete(ctx, cfg.Kind, time.Since(start), err)
	if err != nil {
		return layout.Result{}, err
	}
	return res, nil
}

// Render generates artifacts for every requested format from a computed
// layout.
func (r *Runner) Render(ctx context.Context, s *scene.Scene, res layout.Result, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	ids := s.IDs()
	engine := opts.EngineConfig(s).Kind

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	artifacts := make(map[string][]byte, len(opts.Formats))
	var renderErr error

	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			svgOpts := []sink.SVGOption{sink.WithIDs(ids), sink.WithScale(opts.Scale)}
			if opts.Labels {
				svgOpts = append(svgOpts, sink.WithLabels())
			}
			if opts.Outline {
				svgOpts = append(svgOpts, sink.WithOutline())
			}
			artifacts[format] = sink.RenderSVG(res, svgOpts...)
		case FormatJSON:
			data, err := sink.RenderJSON(res,
				sink.WithJSONIDs(ids),
				sink.WithJSONEngine(engine),
				sink.WithJSONScene(s.Name),
			)
			if err != nil {
				renderErr = fmt.Errorf("render %s: %w", format, err)
			}
			artifacts[format] = data
		default:
			renderErr = ValidateFormat(format)
		}
		if renderErr != nil {
			break
		}
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), renderErr)
	if renderErr != nil {
		return nil, renderErr
	}
	return artifacts, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
