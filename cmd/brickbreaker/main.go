// brickbreaker is a brick breaker game for the terminal and the desktop.
//
// Usage:
//
//	brickbreaker [play]      - Play in the terminal (default)
//	brickbreaker window      - Play in a desktop window (needs -tags ebiten)
//	brickbreaker scores      - Show the top 10 scores
//	brickbreaker board       - Browse scores interactively
//	brickbreaker api         - Serve scores over HTTP
//	brickbreaker config      - Print the default game config
//
// Global flags:
//
//	--fps <rate>        - Override the config tick rate
//	--db <path>         - Set database path (default: ~/.arcade/brickbreaker.db)
//	--config <path>     - Use a custom game config YAML
//	--log-file <path>   - Write logs to a file
//
// BRICKBREAKER_DB, BRICKBREAKER_CONFIG and BRICKBREAKER_LOG set the defaults
// for --db, --config and --log-file. A .env file in the working directory is
// loaded first.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

const defaultDBPath = "~/.arcade/brickbreaker.db"

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - break bricks in your terminal",
	Long: `Brick Breaker is a one-ball, one-paddle brick breaker that runs in
the terminal or in a desktop window.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  scores   - Show the top scores
  board    - Interactive scoreboard
  api      - Serve scores over HTTP
  config   - Print the default config

Examples:
  brickbreaker
  brickbreaker play --fps 30
  brickbreaker window --scale 1.5
  brickbreaker api --addr :8080
  brickbreaker config > ~/.arcade/configs/breakout.yaml`,
	PersistentPreRun: loadEnv,
	Run:              runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config tick_rate)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(configCmd)
}

// loadEnv reads .env and fills unset flags from the environment.
func loadEnv(cmd *cobra.Command, _ []string) {
	// A missing .env is fine
	_ = godotenv.Load()

	fromEnv := func(flag, env string, dst *string) {
		if cmd.Flags().Changed(flag) {
			return
		}
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}
	fromEnv("db", "BRICKBREAKER_DB", &flagDBPath)
	fromEnv("config", "BRICKBREAKER_CONFIG", &flagConfig)
	fromEnv("log-file", "BRICKBREAKER_LOG", &flagLogFile)
}

// gameSettings is everything a host needs from the config file.
type gameSettings struct {
	layout   breakout.Layout
	palette  breakout.Palette
	tickRate int
	nudge    float64
}

// loadGame loads the config and applies the --fps override.
func loadGame() (gameSettings, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return gameSettings{}, err
	}
	layout, palette, err := breakout.FromConfig(cfg)
	if err != nil {
		return gameSettings{}, err
	}

	tick := cfg.TickRate
	if flagFPS > 0 {
		tick = flagFPS
	}
	return gameSettings{
		layout:   layout,
		palette:  palette,
		tickRate: tick,
		nudge:    cfg.Controls.NudgeStep,
	}, nil
}

// newLogger writes to --log-file when set, otherwise to fallback.
// The returned function closes the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn, nil
}

// openStore opens the scores database. Games still run without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
