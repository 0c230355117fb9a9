// skygate is a terminal side-scroller: keep the flyer airborne and
// thread it through the gaps in oncoming gates.
//
// Usage:
//
//	skygate play              - Play in the current terminal
//	skygate scores            - Show high scores
//	skygate serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gate layouts
//	--db <path>     - Set database path (default: ~/.skygate/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skygate",
	Short: "Skygate - fly through the gates in your terminal",
	Long: `Skygate is a terminal side-scroller. Gravity pulls the flyer down,
a tap sends it up, and every gate you pass is a point. Touching a gate,
the ceiling, or the ground ends the run.

Examples:
  skygate play
  skygate play --seed 42
  skygate scores
  skygate scores --tui
  skygate serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skygate/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
