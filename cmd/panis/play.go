package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/drpaneas/panis/internal/audio"
	"github.com/drpaneas/panis/internal/core"
	"github.com/drpaneas/panis/internal/game"
	"github.com/drpaneas/panis/internal/platform/tui"
	"github.com/drpaneas/panis/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a session",
	Long: `Start a play session.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Space/Up/W - Jump (double-tap for the big jump)
  P/Esc      - Pause
  M          - Toggle music
  Tab        - Toggle debug overlay
  R          - Restart (after winning)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Fewer blocks, more time for the double tap
  normal - Default density
  hard   - Dense blocks, tighter double-tap window

Examples:
  panis play
  panis play --difficulty easy
  panis play --seed 42
  panis play --config ./my-panis.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable all sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		TermW:    width,
		TermH:    height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)
	g := game.New()

	// Both persistence and sound are best effort; the session runs
	// without them.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("running without score persistence", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	sound := audio.NewManager()
	if !flagMute {
		if err := sound.Init(); err != nil {
			log.Warn("running without sound", "err", err)
		}
		defer sound.Close()
	}

	if err := tui.Run(g, store, sound, cfg); err != nil {
		log.Fatal("session failed", "err", err)
	}
}
