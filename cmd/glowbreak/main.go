// glowbreak is a neon brick breaker for the terminal.
//
// Usage:
//
//	glowbreak list              - List game modes
//	glowbreak play [mode]       - Play campaign or endless
//	glowbreak menu              - Start the interactive menu
//	glowbreak serve             - Start SSH server for remote play
//	glowbreak scores [mode]     - Show local high scores
//	glowbreak daily [seed]      - Show the daily leaderboard
//	glowbreak stats             - Show lifetime stats and achievements
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--daily-seed <value>  - Play a given day's layout (YYYYMMDD)
//	--db <path>           - Set database path (default: ~/.glowbreak/glowbreak.db)
//	--config <path>       - Custom glowbreak.yaml
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDailySeed  int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagName       string
	flagNoSound    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glowbreak",
	Short: "Glowbreak - a neon brick breaker in your terminal",
	Long: `Glowbreak is a brick breaker with special bricks, power-ups, boss
fights and a daily leaderboard, played in the terminal or over SSH.

Available commands:
  list     - Show the game modes
  play     - Play campaign or endless directly
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  scores   - View local high scores
  daily    - View the daily leaderboard
  stats    - View lifetime stats and achievements

Examples:
  glowbreak play
  glowbreak play endless --difficulty hard
  glowbreak menu
  glowbreak serve --ssh :2222
  glowbreak daily`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.Int64Var(&flagDailySeed, "daily-seed", 0, "Brick layout seed as YYYYMMDD (0 = today)")
	pf.StringVar(&flagDBPath, "db", "~/.glowbreak/glowbreak.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom glowbreak.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "~/.glowbreak/glowbreak.log", "Log file for terminal sessions")
	pf.StringVar(&flagName, "name", "", "Name on the daily leaderboard (default: $USER)")
	pf.BoolVar(&flagNoSound, "no-sound", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(statsCmd)
}
