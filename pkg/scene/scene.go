package scene

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/mlauber/layoutkit/pkg/errors"
	"github.com/mlauber/layoutkit/pkg/layout"
)

// Engine kinds recognized in a scene's [engine] table.
const (
	KindWrapFlow = "wrapflow"
	KindMasonry  = "masonry"
	KindRadial   = "radial"
)

// DefaultKind is the engine used when a scene omits [engine].
const DefaultKind = KindWrapFlow

// ValidKinds is the set of supported engine kinds.
var ValidKinds = map[string]bool{
	KindWrapFlow: true,
	KindMasonry:  true,
	KindRadial:   true,
}

// Mode decides how a box responds to measurement constraints.
type Mode string

const (
	// ModeFixed boxes always report their declared size.
	ModeFixed Mode = "fixed"
	// ModeShrink boxes clamp their width to the proposed constraint.
	ModeShrink Mode = "shrink"
	// ModeFluid boxes preserve their area when narrowed, growing taller.
	ModeFluid Mode = "fluid"
)

// Scene is a parsed and validated scene file.
type Scene struct {
	Name   string
	Width  float64
	Height float64
	Engine EngineConfig
	Boxes  []BoxSpec
}

// EngineConfig selects and configures the layout engine for a scene.
type EngineConfig struct {
	Kind      string
	Columns   int
	Spacing   float64
	Alignment string
}

// BoxSpec describes one box in a scene.
type BoxSpec struct {
	ID     string
	Width  float64
	Height float64
	Mode   Mode
}

// fileDoc mirrors the TOML structure of a scene file.
type fileDoc struct {
	Scene struct {
		Name   string  `toml:"name"`
		Width  float64 `toml:"width"`
		Height float64 `toml:"height"`
	} `toml:"scene"`
	Engine struct {
		Kind      string  `toml:"kind"`
		Columns   int     `toml:"columns"`
		Spacing   float64 `toml:"spacing"`
		Alignment string  `toml:"alignment"`
	} `toml:"engine"`
	Boxes []struct {
		ID     string  `toml:"id"`
		Width  float64 `toml:"width"`
		Height float64 `toml:"height"`
		Mode   string  `toml:"mode"`
	} `toml:"box"`
}

// Load reads and parses a scene file from path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "read scene %s", path)
	}
	return Parse(data)
}

// Parse decodes a TOML scene document and validates it. Boxes without an
// id are assigned a generated UUID.
func Parse(data []byte) (*Scene, error) {
	var doc fileDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode scene")
	}

	s := &Scene{
		Name:   doc.Scene.Name,
		Width:  doc.Scene.Width,
		Height: doc.Scene.Height,
		Engine: EngineConfig{
			Kind:      doc.Engine.Kind,
			Columns:   doc.Engine.Columns,
			Spacing:   doc.Engine.Spacing,
			Alignment: doc.Engine.Alignment,
		},
	}
	if s.Engine.Kind == "" {
		s.Engine.Kind = DefaultKind
	}

	s.Boxes = make([]BoxSpec, len(doc.Boxes))
	for i, b := range doc.Boxes {
		spec := BoxSpec{ID: b.ID, Width: b.Width, Height: b.Height, Mode: Mode(b.Mode)}
		if spec.ID == "" {
			spec.ID = uuid.NewString()
		}
		if spec.Mode == "" {
			spec.Mode = ModeFixed
		}
		s.Boxes[i] = spec
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the scene for structural problems: unknown engine
// kinds, empty box lists, unknown box modes, and non-positive box
// sizes. Numeric engine
// configuration (column count, spacing) is validated by the engine
// itself when it runs.
func (s *Scene) Validate() error {
	if !ValidKinds[s.Engine.Kind] {
		return errors.New(errors.ErrCodeInvalidEngine, "unknown engine kind: %q", s.Engine.Kind)
	}
	if s.Engine.Alignment != "" {
		if _, err := ParseAlignment(s.Engine.Alignment); err != nil {
			return err
		}
	}
	if len(s.Boxes) == 0 {
		return errors.New(errors.ErrCodeInvalidScene, "scene has no boxes")
	}
	for i, b := range s.Boxes {
		if b.Width <= 0 || b.Height <= 0 {
			return errors.New(errors.ErrCodeInvalidBox, "box %d (%s): size must be positive, got %gx%g", i, b.ID, b.Width, b.Height)
		}
		switch b.Mode {
		case ModeFixed, ModeShrink, ModeFluid:
		default:
			return errors.New(errors.ErrCodeInvalidBox, "box %d (%s): unknown mode %q", i, b.ID, b.Mode)
		}
	}
	return nil
}

// ParseAlignment maps a scene alignment name to the layout enum.
func ParseAlignment(name string) (layout.Alignment, error) {
	switch name {
	case "leading", "":
		return layout.AlignLeading, nil
	case "center":
		return layout.AlignCenter, nil
	case "trailing":
		return layout.AlignTrailing, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidAlignment, "unknown alignment: %q", name)
}

// BuildEngine constructs the layout engine the scene's [engine] table
// selects. Numeric configuration errors surface from the engine's own
// validation on first use.
func (s *Scene) BuildEngine() (layout.Engine, error) {
	switch s.Engine.Kind {
	case KindWrapFlow:
		align, err := ParseAlignment(s.Engine.Alignment)
		if err != nil {
			return nil, err
		}
		return layout.WrapFlow{Alignment: align, Spacing: s.Engine.Spacing}, nil
	case KindMasonry:
		columns := s.Engine.Columns
		if columns == 0 {
			columns = 1
		}
		return layout.Masonry{Columns: columns, Spacing: s.Engine.Spacing}, nil
	case KindRadial:
		return layout.Radial{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidEngine, "unknown engine kind: %q", s.Engine.Kind)
}

// LayoutBoxes adapts every box spec to the layout.Box contract, in scene
// order.
func (s *Scene) LayoutBoxes() []layout.Box {
	boxes := make([]layout.Box, len(s.Boxes))
	for i, b := range s.Boxes {
		boxes[i] = b.Box()
	}
	return boxes
}

// IDs returns the box IDs in scene order, aligned with LayoutBoxes.
func (s *Scene) IDs() []string {
	ids := make([]string, len(s.Boxes))
	for i, b := range s.Boxes {
		ids[i] = b.ID
	}
	return ids
}

// Box adapts the spec to the layout.Box contract according to its mode.
func (b BoxSpec) Box() layout.Box {
	switch b.Mode {
	case ModeShrink:
		return layout.MeasureFunc(func(c layout.Constraint) layout.Size {
			w := b.Width
			if c.BoundedWidth() && c.Width < w {
				w = c.Width
			}
			return layout.Size{Width: w, Height: b.Height}
		})
	case ModeFluid:
		return layout.MeasureFunc(func(c layout.Constraint) layout.Size {
			if c.BoundedWidth() && c.Width > 0 && c.Width < b.Width {
				return layout.Size{Width: c.Width, Height: b.Width * b.Height / c.Width}
			}
			return layout.Size{Width: b.Width, Height: b.Height}
		})
	}
	return layout.Fixed(b.Width, b.Height)
}
