package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mlauber/layoutkit/pkg/scene"
)

// newPreviewCmd creates the preview command for interactive exploration.
// It loads a scene and opens a terminal UI where engines and parameters
// can be switched live.
func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [scene.toml]",
		Short: "Explore a scene interactively in the terminal",
		Long: `Preview opens a terminal UI that draws the scene's layout as a
character grid. Use tab to cycle engines, +/- to change masonry columns,
< and > to adjust spacing, and a to cycle wrap-flow alignment.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Load(args[0])
			if err != nil {
				printError("failed to load scene: %v", err)
				return err
			}

			model := NewPreviewModel(s)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}
