package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glowbreak/internal/registry"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [campaign|endless]",
	Short: "Show local high scores",
	Long: `Display the top 10 local high scores of a mode (campaign by default).

Examples:
  glowbreak scores
  glowbreak scores endless`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(_ *cobra.Command, args []string) error {
	name := "campaign"
	if len(args) == 1 {
		name = args[0]
	}
	gameID, err := modeID(name)
	if err != nil {
		return err
	}

	// Get mode title
	game, err := registry.Create(gameID, registry.DefaultEnv())
	if err != nil {
		return err
	}
	title := game.Title()

	a, err := openApp(appOptions{logToStderr: true})
	if err != nil {
		return err
	}
	defer a.close()
	if a.store == nil {
		return errors.New("scores database unavailable")
	}

	scores, err := a.store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'glowbreak play %s' to set the first high score!\n", name)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, err := a.store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	return nil
}
