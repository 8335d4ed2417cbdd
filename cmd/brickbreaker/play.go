package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Brick Breaker in the terminal.

Controls:
  Mouse          - Move the paddle
  Left/Right     - Nudge the paddle (also a/d, h/l)
  Enter/Space    - Start a run
  Esc            - Close the game
  G              - Open the game
  Tab            - Scores
  Ctrl+S         - Save a text screenshot
  Q/Ctrl+C       - Quit

Examples:
  brickbreaker play
  brickbreaker play --fps 30
  brickbreaker play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	game, err := loadGame()
	if err != nil {
		fail("%v", err)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The TUI owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger("brickbreaker", io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	opts := tui.Options{
		Layout:  game.layout,
		Palette: game.palette,
		Logger:  logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: game.tickRate,
		},
		NudgeStep: game.nudge,
	}

	// Open score storage; the game still works without it
	store := openStore(logger)
	if store != nil {
		opts.Store = store
	}

	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fail("running game: %v", runErr)
	}
}
