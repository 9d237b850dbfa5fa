package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Sky Jumper",
	Long: `Start a run in this terminal.

Controls:
  Space/Up/W/click - Jump (hold longer to jump higher)
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot to ~/.jumper/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at the floor, ramps up over time
  normal - Start at 1.0, ramps up over time
  hard   - Start well above 1.0, ramps up over time
  fixed  - No ramp, stays at the configured initial level`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closer, err := fileLogger("jumper")
	if err != nil {
		return err
	}
	defer closer.Close()
	jumper.SetLogger(logger)

	cfg, err := jumper.LoadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	logger.Info("starting", "size", fmt.Sprintf("%dx%d", width, height), "fps", flagFPS, "seed", flagSeed)

	return tui.Run(game, runtime, tui.Options{
		Store:      store,
		Logger:     logger,
		HoldWindow: time.Duration(cfg.Input.HoldWindowMS) * time.Millisecond,
	})
}
