package sink

import (
	"bytes"
	"fmt"

	"github.com/mlauber/layoutkit/pkg/layout"
)

// Palette cycled through by placement index. Colors come from the
// charm-adjacent pastel range so SVG and terminal previews look related.
var fillPalette = []string{
	"#7D56F4", "#04B575", "#F25D94", "#FFB454", "#5A9CF8", "#C4A7E7",
}

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	ids     []string
	labels  bool
	outline bool
	scale   float64
}

// WithIDs attaches box IDs, aligned with placement indices. IDs become
// the id attribute of each rect and the label text when labels are on.
func WithIDs(ids []string) SVGOption { return func(r *svgRenderer) { r.ids = ids } }

// WithLabels draws each box's ID (or index) centered in its frame.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithOutline draws the layout bounds as a dashed frame around the boxes.
func WithOutline() SVGOption { return func(r *svgRenderer) { r.outline = true } }

// WithScale multiplies the rendered width and height attributes without
// changing the viewBox, for crisper output in raster converters.
func WithScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// RenderSVG renders the layout result as an SVG document. One rect is
// emitted per placement, in placement order, so output is deterministic.
func RenderSVG(res layout.Result, opts ...SVGOption) []byte {
	r := svgRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := res.Size.Width, res.Size.Height

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w*r.scale, h*r.scale)

	if r.outline {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="none" stroke="#666" stroke-dasharray="4 2"/>`+"\n", w, h)
	}

	for _, p := range res.Placements {
		label := r.labelFor(p.Index)
		fill := fillPalette[p.Index%len(fillPalette)]
		fmt.Fprintf(&buf, `  <rect id="box-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="0.85" stroke="#1a1a2e"/>`+"\n",
			label, p.Frame.MinX(), p.Frame.MinY(), p.Frame.Size.Width, p.Frame.Size.Height, fill)
	}

	if r.labels {
		for _, p := range res.Placements {
			c := p.Frame.Center()
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="11" fill="#fff">%s</text>`+"\n",
				c.X, c.Y, r.labelFor(p.Index))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) labelFor(index int) string {
	if index < len(r.ids) && r.ids[index] != "" {
		return r.ids[index]
	}
	return fmt.Sprintf("%d", index)
}
