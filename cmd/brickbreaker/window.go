package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Brick Breaker in a resizable desktop window. The paddle follows
the mouse or a finger on touch screens.

Requires a binary built with the ebiten tag:
  go build -tags ebiten ./cmd/brickbreaker

Controls:
  Mouse/Touch    - Move the paddle
  Enter/Space    - Start a run
  Esc            - Close the game
  G              - Open the game
  Q              - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window size relative to the 800x600 canvas")
}

func runWindow(_ *cobra.Command, _ []string) {
	game, err := loadGame()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("brickbreaker", os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	opts := window.Options{
		Layout:   game.layout,
		Palette:  game.palette,
		Logger:   logger,
		Scale:    flagScale,
		TickRate: game.tickRate,
	}

	store := openStore(logger)
	if store != nil {
		opts.Store = store
	}

	runErr := window.Run(opts)

	if store != nil {
		store.Close()
	}

	if errors.Is(runErr, window.ErrNoWindow) {
		closeLog()
		fail("%v\nRebuild with: go build -tags ebiten ./cmd/brickbreaker", runErr)
	}
	if runErr != nil {
		closeLog()
		fail("running game: %v", runErr)
	}
}
