package sink

import (
	"encoding/json"

	"github.com/mlauber/layoutkit/pkg/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	ids    []string
	engine string
	scene  string
}

// WithJSONIDs attaches box IDs, aligned with placement indices.
func WithJSONIDs(ids []string) JSONOption { return func(r *jsonRenderer) { r.ids = ids } }

// WithJSONEngine records the engine kind in the output for documentation
// and round-trip rendering.
func WithJSONEngine(kind string) JSONOption { return func(r *jsonRenderer) { r.engine = kind } }

// WithJSONScene records the scene name in the output.
func WithJSONScene(name string) JSONOption { return func(r *jsonRenderer) { r.scene = name } }

type jsonOutput struct {
	Scene  string    `json:"scene,omitempty"`
	Engine string    `json:"engine,omitempty"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Boxes  []jsonBox `json:"boxes"`
}

type jsonBox struct {
	ID     string  `json:"id,omitempty"`
	Index  int     `json:"index"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RenderJSON exports the layout result as a pretty-printed JSON document.
// Placements appear in placement order, so output is deterministic and
// suitable for golden-file comparison.
//
// RenderJSON returns an error only if JSON marshaling fails (should not
// happen with well-formed results). It does not modify res and is safe to
// call concurrently.
func RenderJSON(res layout.Result, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Scene:  r.scene,
		Engine: r.engine,
		Width:  res.Size.Width,
		Height: res.Size.Height,
		Boxes:  make([]jsonBox, len(res.Placements)),
	}

	for i, p := range res.Placements {
		b := jsonBox{
			Index:  p.Index,
			X:      p.Frame.MinX(),
			Y:      p.Frame.MinY(),
			Width:  p.Frame.Size.Width,
			Height: p.Frame.Size.Height,
		}
		if p.Index < len(r.ids) {
			b.ID = r.ids[p.Index]
		}
		out.Boxes[i] = b
	}

	return json.MarshalIndent(out, "", "  ")
}
