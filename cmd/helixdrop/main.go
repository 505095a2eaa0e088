// helixdrop is a terminal helix-jump game: spin the shaft, drop the ball
// through the gaps and chain combos on the way to the base.
//
// Usage:
//
//	helixdrop list              - List game modes
//	helixdrop play [mode]       - Play a mode (default: helix)
//	helixdrop menu              - Start menu with mode and level picker
//	helixdrop simulate          - Run a level headless with the autopilot
//	helixdrop serve             - Start SSH server for remote play
//	helixdrop scores [mode]     - Show recorded runs for a mode
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible layouts
//	--db <path>          - Set database path (default: ~/.helixdrop/scores.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/helix-drop/internal/audio"
	"github.com/vovakirdan/helix-drop/internal/config"
	"github.com/vovakirdan/helix-drop/internal/core"
	"github.com/vovakirdan/helix-drop/internal/games/helix"
	"github.com/vovakirdan/helix-drop/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Game flags shared by play, menu and simulate
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "helixdrop",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "helixdrop",
	Short: "Helix Drop - drop a ball down a spinning tower in your terminal",
	Long: `Helix Drop is a terminal helix-jump game. Spin the tower so the ball
falls through the gaps, bounce on chunks of its own color and avoid the black
destroy chunks unless you hit them fast enough to punch through.

Available commands:
  list      - Show all game modes
  play      - Play a mode directly
  menu      - Interactive mode and level picker
  simulate  - Headless autopilot run
  serve     - Start SSH server for remote play
  scores    - View recorded runs

Examples:
  helixdrop play
  helixdrop play helix_endless --difficulty hard
  helixdrop play --level 3 --color blue
  helixdrop simulate --seed 42 --level 2
  helixdrop serve --ssh :2222`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time, simulate uses it as is)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.helixdrop/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// addGameFlags registers the config and difficulty flags on a command.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom helix.yaml")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags validates the difficulty and hands config flags to the game package.
func applyGameFlags() error {
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}
	helix.SetConfigPath(flagConfig)
	helix.SetDifficultyPreset(flagDifficulty)
	return nil
}

// terminalConfig builds a runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the run history, continuing without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, runs will not be saved", "error", err)
		return nil
	}
	return store
}

// openAudio starts the sound output, falling back to silence on failure.
func openAudio() (core.AudioSink, func()) {
	if flagMute {
		return core.SilentAudio{}, func() {}
	}
	cfg, err := config.LoadHelix(flagConfig)
	if err != nil {
		logger.Warn("could not load config, using defaults", "error", err)
		cfg = config.DefaultHelixConfig()
	}
	sink, closeFn, err := audio.Open(cfg.Audio)
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
	}
	return sink, closeFn
}
