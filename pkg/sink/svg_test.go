package sink

import (
	"strings"
	"testing"
)

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(sampleResult()))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200.0 120.0"`) {
		t.Errorf("missing or wrong viewBox, got prefix %q", svg[:min(len(svg), 80)])
	}
	if !strings.Contains(svg, `width="200" height="120"`) {
		t.Error("missing width/height attributes")
	}
	if !strings.Contains(svg, `id="box-0"`) || !strings.Contains(svg, `id="box-1"`) {
		t.Error("expected one rect per placement with index-based ids")
	}
	if !strings.Contains(svg, `x="90.0" y="0.0" width="80.0" height="60.0"`) {
		t.Error("second placement frame not rendered")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("missing closing tag")
	}
}

func TestRenderSVGWithIDs(t *testing.T) {
	svg := string(RenderSVG(sampleResult(), WithIDs([]string{"hero", "aside"})))

	if !strings.Contains(svg, `id="box-hero"`) {
		t.Error("expected rect id from box ID")
	}
	if strings.Contains(svg, `id="box-0"`) {
		t.Error("index id should be replaced by box ID")
	}
}

func TestRenderSVGWithLabels(t *testing.T) {
	plain := string(RenderSVG(sampleResult()))
	if strings.Contains(plain, "<text") {
		t.Error("labels rendered without WithLabels")
	}

	labeled := string(RenderSVG(sampleResult(), WithLabels(), WithIDs([]string{"hero"})))
	if !strings.Contains(labeled, ">hero</text>") {
		t.Error("expected label text for named box")
	}
	if !strings.Contains(labeled, ">1</text>") {
		t.Error("expected index fallback label for unnamed box")
	}
	// Label centered in the second frame: (90..170, 0..60) -> (130, 30).
	if !strings.Contains(labeled, `x="130.0" y="30.0"`) {
		t.Error("label not centered in frame")
	}
}

func TestRenderSVGWithOutline(t *testing.T) {
	svg := string(RenderSVG(sampleResult(), WithOutline()))
	if !strings.Contains(svg, `stroke-dasharray="4 2"`) {
		t.Error("expected dashed outline rect")
	}
}

func TestRenderSVGWithScale(t *testing.T) {
	svg := string(RenderSVG(sampleResult(), WithScale(2)))

	// The viewBox stays in layout units while the rendered size doubles.
	if !strings.Contains(svg, `viewBox="0 0 200.0 120.0"`) {
		t.Error("viewBox should not scale")
	}
	if !strings.Contains(svg, `width="400" height="240"`) {
		t.Error("rendered size should scale")
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	first := RenderSVG(sampleResult(), WithIDs([]string{"a", "b"}), WithLabels())
	for i := 0; i < 5; i++ {
		again := RenderSVG(sampleResult(), WithIDs([]string{"a", "b"}), WithLabels())
		if string(again) != string(first) {
			t.Fatal("RenderSVG() output differs between identical calls")
		}
	}
}
