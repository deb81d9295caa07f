package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glowbreak/internal/core"
	"github.com/vovakirdan/glowbreak/internal/games/glowbreak"
	"github.com/vovakirdan/glowbreak/internal/platform/tui"
)

// rankedLevels is how many levels the rank summary scans.
const rankedLevels = 28

var flagStatsInteractive bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime stats and achievements",
	Long: `Display the lifetime counters, the best level ranks and the
achievement list.

Examples:
  glowbreak stats
  glowbreak stats -i`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVarP(&flagStatsInteractive, "interactive", "i", false, "Open the interactive stats screen")
}

func runStats(_ *cobra.Command, _ []string) error {
	a, err := openApp(appOptions{logToStderr: !flagStatsInteractive})
	if err != nil {
		return err
	}
	defer a.close()

	if flagStatsInteractive {
		cfg := runtimeConfig()
		_, err := tui.RunStats(a.store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	svc := core.Services{Log: a.logger}
	if a.store != nil {
		svc.Store = a.store
	}
	p := glowbreak.NewProgress(svc.WithDefaults())
	s := p.Stats

	fmt.Println("Lifetime Stats")
	fmt.Println()
	fmt.Printf("  %-20s %d\n", "Perfect bounces", s.PerfectBounces)
	fmt.Printf("  %-20s %d\n", "Bombs detonated", s.BombExplosions)
	fmt.Printf("  %-20s %d\n", "Lightning triggers", s.LightningTriggers)
	fmt.Printf("  %-20s %d\n", "Freeze triggers", s.FreezeTriggers)
	fmt.Printf("  %-20s %d\n", "S ranks", s.SRankCount)
	fmt.Printf("  %-20s %d\n", "Bosses defeated", s.BossKills)
	fmt.Printf("  %-20s %.0f\n", "Best campaign", p.HighScore("glowbreak"))
	fmt.Printf("  %-20s %.0f\n", "Best endless", p.HighScore("glowbreak_endless"))

	fmt.Println()
	fmt.Println("Best Ranks")
	fmt.Println()
	ranked := 0
	for level := 1; level <= rankedLevels; level++ {
		if r := p.BestRank(level); r != glowbreak.RankNone {
			fmt.Printf("  Level %-3d %s\n", level, r)
			ranked++
		}
	}
	if ranked == 0 {
		fmt.Println("  No levels cleared yet.")
	}

	fmt.Println()
	fmt.Printf("Achievements (%d/%d)\n", p.UnlockedCount(), len(glowbreak.Achievements))
	fmt.Println()
	for _, ach := range glowbreak.Achievements {
		mark := " "
		if p.Unlocked(ach.ID) {
			mark = "*"
		}
		progress := ""
		if cur, goal, ok := ach.Goal(s); ok {
			progress = fmt.Sprintf("  (%d/%d)", cur, goal)
		}
		fmt.Printf("  [%s] %-16s %s%s\n", mark, ach.Name, ach.Description, progress)
	}
	return nil
}
