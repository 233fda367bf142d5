package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	layouterrors "github.com/mlauber/layoutkit/pkg/errors"
	"github.com/mlauber/layoutkit/pkg/observability"
	"github.com/mlauber/layoutkit/pkg/pipeline"
	"github.com/mlauber/layoutkit/pkg/scene"
)

const serveShutdownTimeout = 5 * time.Second

// indexHTML is the browser preview page. The form reloads /render.svg
// with new query parameters; no scripting beyond plain form submission.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<title>layoutkit preview</title>
<style>
  body { font-family: sans-serif; margin: 2rem; background: #fafafa; }
  form { margin-bottom: 1rem; }
  label { margin-right: 1rem; }
  img { border: 1px solid #ccc; background: #fff; }
</style>
</head>
<body>
<h1>layoutkit preview</h1>
<form method="get" action="/">
  <label>engine
    <select name="engine">
      <option value="">scene default</option>
      <option value="wrapflow">wrapflow</option>
      <option value="masonry">masonry</option>
      <option value="radial">radial</option>
    </select>
  </label>
  <label>columns <input type="number" name="columns" min="1" size="3"></label>
  <label>spacing <input type="number" name="spacing" min="0" size="3"></label>
  <label>align
    <select name="align">
      <option value="">leading</option>
      <option value="center">center</option>
      <option value="trailing">trailing</option>
    </select>
  </label>
  <button type="submit">render</button>
</form>
<img src="/render.svg?%s" alt="layout">
</body>
</html>
`

// newServeCmd creates the serve command for the browser preview server.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [scene.toml]",
		Short: "Serve a live browser preview of a scene",
		Long: `Serve loads a scene file and starts an HTTP server with a browser
preview. The layout is re-rendered on every request, so query parameters
(engine, columns, spacing, align, width, height) select engine and frame
without restarting the server.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Load(args[0])
			if err != nil {
				printError("failed to load scene: %v", err)
				return err
			}
			logger := loggerFromContext(cmd.Context())
			return runServe(cmd.Context(), s, addr, logger)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")
	return cmd
}

// runServe starts the preview server and blocks until ctx is canceled or
// the listener fails.
func runServe(ctx context.Context, s *scene.Scene, addr string, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newServeHandler(s, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("preview server listening", "addr", addr)
		printInfo("Serving preview at http://localhost%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// newServeHandler builds the chi router for the preview server.
func newServeHandler(s *scene.Scene, logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, indexHTML, req.URL.RawQuery)
	})
	r.Get("/render.svg", renderHandler(s, logger, pipeline.FormatSVG, "image/svg+xml"))
	r.Get("/render.json", renderHandler(s, logger, pipeline.FormatJSON, "application/json"))

	return r
}

// requestLogger logs every request with method, path, status, and latency,
// and forwards the same data to the registered server hooks.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			observability.Server().OnRequest(req.Context(), req.Method, req.URL.Path)

			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, req)
			elapsed := time.Since(start)

			observability.Server().OnResponse(req.Context(), req.Method, req.URL.Path, ww.Status(), elapsed)
			logger.Debug("request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", ww.Status(),
				"duration", elapsed.Round(time.Microsecond))
		})
	}
}

// renderHandler runs the pipeline for one output format, with engine and
// frame overrides taken from query parameters.
func renderHandler(s *scene.Scene, logger *log.Logger, format, contentType string) http.HandlerFunc {
	runner := pipeline.NewRunner(logger)

	return func(w http.ResponseWriter, req *http.Request) {
		opts, err := optionsFromQuery(req)
		if err != nil {
			http.Error(w, layouterrors.UserMessage(err), http.StatusBadRequest)
			return
		}
		opts.Formats = []string{format}
		opts.Logger = logger

		result, err := runner.Execute(req.Context(), s, opts)
		if err != nil {
			status := http.StatusInternalServerError
			switch layouterrors.GetCode(err) {
			case layouterrors.ErrCodeInvalidEngine, layouterrors.ErrCodeInvalidAlignment, layouterrors.ErrCodeInvalidFormat:
				status = http.StatusBadRequest
			}
			http.Error(w, layouterrors.UserMessage(err), status)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Write(result.Artifacts[format])
	}
}

// optionsFromQuery parses engine and frame overrides from query parameters.
// Unknown parameters are ignored; malformed numbers are rejected.
func optionsFromQuery(req *http.Request) (pipeline.Options, error) {
	q := req.URL.Query()
	opts := pipeline.Options{
		Engine:    q.Get("engine"),
		Alignment: q.Get("align"),
		Labels:    q.Get("labels") == "true",
		Outline:   q.Get("outline") != "false",
	}

	var err error
	if opts.Columns, err = intParam(q.Get("columns")); err != nil {
		return opts, layouterrors.Wrap(layouterrors.ErrCodeInvalidConfig, err, "columns")
	}
	if opts.Spacing, err = floatParam(q.Get("spacing")); err != nil {
		return opts, layouterrors.Wrap(layouterrors.ErrCodeInvalidConfig, err, "spacing")
	}
	if opts.Width, err = floatParam(q.Get("width")); err != nil {
		return opts, layouterrors.Wrap(layouterrors.ErrCodeInvalidConfig, err, "width")
	}
	if opts.Height, err = floatParam(q.Get("height")); err != nil {
		return opts, layouterrors.Wrap(layouterrors.ErrCodeInvalidConfig, err, "height")
	}
	return opts, nil
}

func intParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func floatParam(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
