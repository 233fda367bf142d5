package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlauber/layoutkit/pkg/pipeline"
	"github.com/mlauber/layoutkit/pkg/scene"
)

// renderOpts holds the command-line flags for the render command.
// These options control engine selection, frame size, and output formats.
type renderOpts struct {
	output    string   // output file path (or base path for multiple formats)
	formats   []string // output formats: "svg", "json"
	engine    string   // engine override: "wrapflow", "masonry", "radial"
	columns   int      // masonry column count override
	spacing   float64  // spacing override
	alignment string   // wrap-flow row alignment override
	width     float64  // frame width in pixels
	height    float64  // frame height in pixels
	labels    bool     // draw box IDs inside SVG rects
	outline   bool     // draw the frame bounds in SVG output
	scale     float64  // SVG raster scale factor
}

// newRenderCmd creates the render command for generating layout output.
// It loads a scene file, runs it through the selected engine, and writes
// the requested formats (SVG, JSON).
//
// Engine flags override the scene's [engine] table, so one scene can be
// rendered through every engine without editing the file.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: 1}

	cmd := &cobra.Command{
		Use:   "render [scene.toml]",
		Short: "Render a scene file to SVG or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().StringVarP(&opts.engine, "engine", "e", "", "engine override: wrapflow, masonry, radial")
	cmd.Flags().IntVar(&opts.columns, "columns", 0, "masonry column count")
	cmd.Flags().Float64Var(&opts.spacing, "spacing", 0, "spacing between boxes")
	cmd.Flags().StringVar(&opts.alignment, "align", "", "wrap-flow row alignment: leading, center, trailing")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "frame width")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "frame height")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "draw box IDs in SVG output")
	cmd.Flags().BoolVar(&opts.outline, "outline", false, "draw the frame bounds in SVG output")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "SVG raster scale factor")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .json), it strips that extension.
// This is used when generating multiple files (e.g., scene.svg, scene.json).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the scene from input, runs the pipeline, and writes every
// requested format next to the input file (or to --output).
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	s, err := scene.Load(input)
	if err != nil {
		printError("failed to load scene: %v", err)
		return err
	}
	logger.Debugf("Loaded scene %q: %d boxes", s.Name, len(s.Boxes))

	p := newProgress(logger)
	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, s, pipeline.Options{
		Engine:    opts.engine,
		Columns:   opts.columns,
		Spacing:   opts.spacing,
		Alignment: opts.alignment,
		Width:     opts.width,
		Height:    opts.height,
		Formats:   opts.formats,
		Labels:    opts.labels,
		Outline:   opts.outline,
		Scale:     opts.scale,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %d format(s)", len(result.Artifacts)))

	printSuccess("Rendered %s with %s", input, result.Engine)
	printStats(result.Engine, result.Stats.BoxCount, result.Layout.Size.Width, result.Layout.Size.Height)

	if len(opts.formats) == 1 {
		path := opts.output
		if path == "" {
			path = basePath("", input) + "." + opts.formats[0]
		}
		if err := writeArtifact(path, result.Artifacts[opts.formats[0]]); err != nil {
			return err
		}
		printFile(path)
	} else {
		base := basePath(opts.output, input)
		for _, format := range opts.formats {
			path := fmt.Sprintf("%s.%s", base, format)
			if err := writeArtifact(path, result.Artifacts[format]); err != nil {
				return err
			}
			printFile(path)
		}
	}

	printNextStep("Explore interactively", "layoutkit preview "+input)
	return nil
}

// writeArtifact writes rendered output to path, creating parent directories
// as needed.
func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
