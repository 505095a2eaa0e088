package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/helix-drop/internal/platform/tui"
	"github.com/vovakirdan/helix-drop/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode and level picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
"Select level..." lets you pick any unlocked level and the starting ball color.
Leaving a game (Esc when paused or finished) returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change ball color (level selector)
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  helixdrop menu
  helixdrop menu --fps 30
  helixdrop menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	sink, closeAudio := openAudio()
	defer closeAudio()

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "mode", menuResult.GameID, "error", err)
			continue
		}
		if ls, ok := game.(registry.LevelStarter); ok {
			ls.StartAt(menuResult.Level, menuResult.Color)
		}
		registry.AttachAudio(game, sink)

		// Fresh layout per game unless a seed was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.RunWithMenu(game, store, cfg)
		if err != nil {
			logger.Error("game failed", "mode", menuResult.GameID, "error", err)
			continue
		}
		if !back {
			return nil
		}
	}
}
