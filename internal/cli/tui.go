package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mlauber/layoutkit/pkg/layout"
	"github.com/mlauber/layoutkit/pkg/scene"
)

// List styles
var (
	previewSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	previewDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	previewErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// previewEngines is the engine cycle order for the tab key.
var previewEngines = []string{scene.KindWrapFlow, scene.KindMasonry, scene.KindRadial}

// previewAlignments is the alignment cycle order for the "a" key.
var previewAlignments = []string{"leading", "center", "trailing"}

// =============================================================================
// PreviewModel - Interactive layout exploration
// =============================================================================

// PreviewModel is the bubbletea model for interactive layout preview.
// It re-runs the selected engine on every parameter change and draws the
// resulting placements as a character grid.
type PreviewModel struct {
	Scene     *scene.Scene
	EngineIdx int
	AlignIdx  int
	Columns   int
	Spacing   float64
	Width     int // terminal cells available for the grid
	Height    int
}

// NewPreviewModel creates a preview model seeded from the scene's engine
// configuration.
func NewPreviewModel(s *scene.Scene) PreviewModel {
	m := PreviewModel{
		Scene:   s,
		Columns: s.Engine.Columns,
		Spacing: s.Engine.Spacing,
		Width:   72,
		Height:  20,
	}
	if m.Columns < 1 {
		m.Columns = 1
	}
	for i, kind := range previewEngines {
		if kind == s.Engine.Kind {
			m.EngineIdx = i
		}
	}
	for i, align := range previewAlignments {
		if align == s.Engine.Alignment {
			m.AlignIdx = i
		}
	}
	return m
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.EngineIdx = (m.EngineIdx + 1) % len(previewEngines)
		case "a":
			m.AlignIdx = (m.AlignIdx + 1) % len(previewAlignments)
		case "+", "=":
			m.Columns++
		case "-", "_":
			if m.Columns > 1 {
				m.Columns--
			}
		case ">", ".":
			m.Spacing += 2
		case "<", ",":
			if m.Spacing >= 2 {
				m.Spacing -= 2
			}
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width - 4
		m.Height = msg.Height - 8
		if m.Width < 20 {
			m.Width = 20
		}
		if m.Height < 6 {
			m.Height = 6
		}
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layout Preview"))
	if m.Scene.Name != "" {
		b.WriteString(StyleDim.Render("  " + m.Scene.Name))
	}
	b.WriteString("\n")
	b.WriteString(previewDimStyle.Render("tab engine  a align  +/- columns  </> spacing  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n\n")

	res, err := m.computeLayout()
	if err != nil {
		b.WriteString(previewErrorStyle.Render("layout error: " + err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	frame := m.frameSize()
	b.WriteString(renderGrid(res, frame, m.Width, m.Height))
	return b.String()
}

// statusLine renders the current engine parameters, highlighting the
// selected engine.
func (m PreviewModel) statusLine() string {
	var parts []string
	for i, kind := range previewEngines {
		if i == m.EngineIdx {
			parts = append(parts, previewSelectedStyle.Render("["+kind+"]"))
		} else {
			parts = append(parts, previewDimStyle.Render(kind))
		}
	}
	line := strings.Join(parts, " ")

	switch previewEngines[m.EngineIdx] {
	case scene.KindMasonry:
		line += StyleDim.Render(fmt.Sprintf("   columns=%d spacing=%g", m.Columns, m.Spacing))
	case scene.KindWrapFlow:
		line += StyleDim.Render(fmt.Sprintf("   align=%s spacing=%g", previewAlignments[m.AlignIdx], m.Spacing))
	}
	return line
}

// computeLayout runs the currently selected engine over the scene's boxes.
func (m PreviewModel) computeLayout() (layout.Result, error) {
	cfg := scene.EngineConfig{
		Kind:      previewEngines[m.EngineIdx],
		Columns:   m.Columns,
		Spacing:   m.Spacing,
		Alignment: previewAlignments[m.AlignIdx],
	}
	s := &scene.Scene{Engine: cfg, Boxes: m.Scene.Boxes}
	engine, err := s.BuildEngine()
	if err != nil {
		return layout.Result{}, err
	}
	return engine.Place(s.LayoutBoxes(), layout.Rect{Size: m.frameSize()})
}

// frameSize resolves the scene's frame, falling back to a square frame so
// the radial engine has something to work with.
func (m PreviewModel) frameSize() layout.Size {
	w, h := m.Scene.Width, m.Scene.Height
	if w == 0 {
		w = 800
	}
	if h == 0 {
		h = 600
	}
	return layout.Size{Width: w, Height: h}
}

// =============================================================================
// Grid Rendering
// =============================================================================

// renderGrid draws placements as a character grid, scaling layout
// coordinates down to cols x rows terminal cells. Boxes are filled with
// their placement index (mod 10) so overlapping regions stay readable.
func renderGrid(res layout.Result, frame layout.Size, cols, rows int) string {
	if cols < 1 || rows < 1 {
		return ""
	}

	// The grid covers the larger of frame size and layout size, so
	// overflow (wrap-flow rows past the frame bottom) stays visible.
	worldW := frame.Width
	if res.Size.Width > worldW {
		worldW = res.Size.Width
	}
	worldH := frame.Height
	if res.Size.Height > worldH {
		worldH = res.Size.Height
	}
	if worldW <= 0 || worldH <= 0 {
		return ""
	}

	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = make([]rune, cols)
		for x := range grid[y] {
			grid[y][x] = '·'
		}
	}

	scaleX := float64(cols) / worldW
	scaleY := float64(rows) / worldH

	for _, p := range res.Placements {
		x0 := int(p.Frame.MinX() * scaleX)
		x1 := int(p.Frame.MaxX() * scaleX)
		y0 := int(p.Frame.MinY() * scaleY)
		y1 := int(p.Frame.MaxY() * scaleY)
		if x1 <= x0 {
			x1 = x0 + 1
		}
		if y1 <= y0 {
			y1 = y0 + 1
		}

		fill := rune('0' + p.Index%10)
		for y := y0; y < y1 && y < rows; y++ {
			if y < 0 {
				continue
			}
			for x := x0; x < x1 && x < cols; x++ {
				if x < 0 {
					continue
				}
				grid[y][x] = fill
			}
		}
	}

	var b strings.Builder
	for y, row := range grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	b.WriteByte('\n')
	return b.String()
}
