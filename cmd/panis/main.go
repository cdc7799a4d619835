// panis is a terminal rendition of a pocket side-scroller: walk, jump, and
// collect every pill across a three-screen world.
//
// Usage:
//
//	panis play               - Start a session
//	panis scores             - Show top sessions
//	panis stats              - Show aggregate statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible worlds
//	--db <path>     - Set database path (default: ~/.panis/scores.db)
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
	Use:   "panis",
	Short: "PANIS - A terminal side-scrolling platformer",
	Long: `PANIS is a terminal platformer. Jump across procedurally generated
blocks and collect every pill to win. Double-tap jump for extra height.

Available commands:
  play     - Start a session
  scores   - View top sessions
  stats    - View aggregate statistics

Examples:
  panis play
  panis play --difficulty hard
  panis play --seed 42
  panis scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.panis/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}
