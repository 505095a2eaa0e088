package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/helix-drop/internal/platform/tui"
	"github.com/vovakirdan/helix-drop/internal/registry"
)

var (
	flagLevel int
	flagColor string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the specified mode (helix or helix_endless).

Controls:
  Left/A, Right/D  - Spin the tower
  Mouse drag       - Spin the tower
  P/Space          - Pause
  R                - Restart the level
  Enter            - Next level (after clearing one)
  Esc/B            - Leave (when paused or finished)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Towers grow slowly, fewer destroy chunks
  normal - Configured growth per level
  hard   - Taller towers and more destroy chunks per level
  fixed  - Every level uses the base layout parameters

Examples:
  helixdrop play
  helixdrop play helix_endless
  helixdrop play --level 5 --color purple
  helixdrop play --difficulty hard --mute
  helixdrop play --config ./my-helix.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at")
	playCmd.Flags().StringVar(&flagColor, "color", "", "Starting ball color: red, blue, amber, purple")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "helix"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'helixdrop list' to see available modes", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if ls, ok := game.(registry.LevelStarter); ok {
		if !ls.StartAt(flagLevel, flagColor) {
			return fmt.Errorf("unknown color %q (want red, blue, amber or purple)", flagColor)
		}
	}

	sink, closeAudio := openAudio()
	defer closeAudio()
	registry.AttachAudio(game, sink)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "mode", gameID, "level", flagLevel, "seed", flagSeed)
	if err := tui.Run(game, store, terminalConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
