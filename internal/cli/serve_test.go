package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlauber/layoutkit/pkg/scene"
)

func serveTestScene() *scene.Scene {
	return &scene.Scene{
		Name:   "serve-test",
		Width:  200,
		Height: 200,
		Engine: scene.EngineConfig{Kind: scene.KindWrapFlow, Spacing: 10},
		Boxes: []scene.BoxSpec{
			{ID: "a", Width: 60, Height: 20, Mode: scene.ModeFixed},
			{ID: "b", Width: 60, Height: 20, Mode: scene.ModeFixed},
			{ID: "c", Width: 60, Height: 20, Mode: scene.ModeFixed},
		},
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	srv := httptest.NewServer(newServeHandler(serveTestScene(), logger))
	t.Cleanup(srv.Close)
	return srv
}

func TestServeIndex(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<form")
	assert.Contains(t, string(body), "/render.svg")
}

func TestServeRenderSVG(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/render.svg")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "<svg"), "body should be an SVG document")
	// One rect per box, identified by box ID.
	assert.Contains(t, string(body), `id="box-a"`)
	assert.Contains(t, string(body), `id="box-c"`)
}

func TestServeRenderSVGWithOverrides(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/render.svg?engine=masonry&columns=3&spacing=4")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServeRenderJSON(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/render.json?engine=radial")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var decoded struct {
		Scene  string `json:"scene"`
		Engine string `json:"engine"`
		Boxes  []struct {
			ID string `json:"id"`
		} `json:"boxes"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Equal(t, "serve-test", decoded.Scene)
	assert.Equal(t, "radial", decoded.Engine)
	assert.Len(t, decoded.Boxes, 3)
}

func TestServeRenderBadRequests(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		url  string
	}{
		{"unknown engine", "/render.svg?engine=waterfall"},
		{"unknown alignment", "/render.svg?align=justify"},
		{"malformed columns", "/render.svg?columns=abc"},
		{"malformed width", "/render.svg?width=wide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.url)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestOptionsFromQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/render.svg?engine=masonry&columns=4&spacing=8&width=640&height=480&labels=true", nil)

	opts, err := optionsFromQuery(req)
	require.NoError(t, err)

	assert.Equal(t, "masonry", opts.Engine)
	assert.Equal(t, 4, opts.Columns)
	assert.Equal(t, 8.0, opts.Spacing)
	assert.Equal(t, 640.0, opts.Width)
	assert.Equal(t, 480.0, opts.Height)
	assert.True(t, opts.Labels)
	assert.True(t, opts.Outline, "outline should default to on")
}
