package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glowbreak/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [campaign|endless]",
	Short: "Play a game",
	Long: `Start playing glowbreak. Without a mode a selector picks campaign or
endless and the difficulty.

Controls:
  Left/Right, A/D  - Move paddle
  Space            - Start, launch, resume
  P/Esc            - Pause
  C                - Accept continue after game over
  R                - Restart (after game over)
  M                - Toggle sound
  B                - Back (when paused or game over)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Five lives, wider paddle, slower ball
  normal - Default tuning
  hard   - Two lives, narrower paddle, faster ball, fewer drops

Examples:
  glowbreak play
  glowbreak play campaign --difficulty easy
  glowbreak play endless --seed 42
  glowbreak play --config ./my-glowbreak.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// modeID resolves a mode name or game ID to a registered game ID.
func modeID(name string) (string, error) {
	switch strings.ToLower(name) {
	case "campaign", tui.CampaignID:
		return tui.CampaignID, nil
	case "endless", tui.EndlessID:
		return tui.EndlessID, nil
	}
	return "", fmt.Errorf("unknown mode %q (want campaign or endless); run 'glowbreak list'", name)
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg := runtimeConfig()

	gameID := ""
	if len(args) == 1 {
		id, err := modeID(args[0])
		if err != nil {
			return err
		}
		gameID = id
	}

	a, err := openApp(appOptions{sound: true})
	if err != nil {
		return err
	}
	defer a.close()

	deps := a.deps()
	if gameID == "" {
		// Show the mode/difficulty selector
		sel, _, selErr := tui.RunModeSelector(cfg, deps.Preset)
		if selErr != nil {
			return selErr
		}
		// User pressed back or quit
		if sel == nil {
			return nil
		}
		gameID = sel.GameID
		deps.Preset = sel.Preset
	}

	a.logger.Info("starting game", "game", gameID, "difficulty", deps.Preset, "fps", cfg.TickRate)
	if err := tui.Run(gameID, deps, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
