package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/glowbreak/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start glowbreak with the interactive menu",
	Long: `Start glowbreak in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, B returns to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  glowbreak menu
  glowbreak menu --fps 30
  glowbreak menu --db ./glowbreak.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := openApp(appOptions{sound: true})
	if err != nil {
		return err
	}
	defer a.close()

	return tui.RunSession(a.deps(), runtimeConfig())
}
