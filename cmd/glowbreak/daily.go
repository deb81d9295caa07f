package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glowbreak/internal/games/glowbreak"
	"github.com/vovakirdan/glowbreak/internal/leaderboard"
)

var dailyCmd = &cobra.Command{
	Use:   "daily [YYYYMMDD]",
	Short: "Show the daily leaderboard",
	Long: `Display the daily leaderboard. Every player gets the same brick layout
on a given day; runs are ranked by score.

Examples:
  glowbreak daily
  glowbreak daily 20250101`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDaily,
}

func runDaily(cmd *cobra.Command, args []string) error {
	seed := glowbreak.DailySeed(time.Now())
	if flagDailySeed != 0 {
		seed = flagDailySeed
	}
	if len(args) == 1 {
		v, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q: %w", args[0], err)
		}
		seed = v
	}
	key := glowbreak.SeedString(seed)

	a, err := openApp(appOptions{logToStderr: true})
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	entries, err := a.board.Top(ctx, key)
	if err != nil {
		if !errors.Is(err, leaderboard.ErrOffline) || len(entries) == 0 {
			return err
		}
		fmt.Println("Leaderboard offline, showing cached scores.")
	}

	fmt.Printf("Daily Leaderboard - %s\n", key)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores for this day yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-*s  %-10s  %s\n", "Rank", a.cfg.Leaderboard.MaxNameLen, "Name", "Score", "Combo")
	fmt.Printf("  %-4s  %-*s  %-10s  %s\n", "----", a.cfg.Leaderboard.MaxNameLen, "----", "-----", "-----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-*s  %-10d  x%d\n", i+1, a.cfg.Leaderboard.MaxNameLen, e.Name, e.Score, e.MaxCombo)
	}
	return nil
}
