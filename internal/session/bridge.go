// Package session is the host side of the brick breaker: it opens and closes
// the game overlay, starts runs, tracks the live and best score, and saves
// finished runs.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
)

// Phase is where the host is in the open/start/close cycle.
type Phase int

const (
	PhaseHome    Phase = iota // Overlay closed
	PhaseIntro                // Overlay open, waiting for start
	PhasePlaying              // A run is in progress
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseHome:
		return "home"
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// ScoreStore persists finished runs.
type ScoreStore interface {
	SaveScore(host string, score int) (int64, error)
	HighScore() (int, error)
}

// Options configures a Bridge.
type Options struct {
	Layout  breakout.Layout
	Palette breakout.Palette
	Store   ScoreStore  // Optional; runs are not saved when nil
	Logger  *log.Logger // Optional; discards when nil
	Host    string      // Recorded with each saved score
}

// Bridge owns one breakout.Game and reacts to its callbacks.
// Like the game, it must only be used from the host's event loop.
type Bridge struct {
	game   *breakout.Game
	store  ScoreStore
	logger *log.Logger
	host   string

	phase     Phase
	score     int
	lastScore int
	best      int
	runs      int
}

// New creates a bridge in PhaseHome. The best score is loaded from the store
// when one is given; a failed load is logged and treated as zero.
func New(canvas breakout.Canvas, frames breakout.FrameRequester, opts Options) *Bridge {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	b := &Bridge{
		store:  opts.Store,
		logger: logger,
		host:   opts.Host,
	}
	b.game = breakout.New(canvas, frames, breakout.Config{
		Layout:  opts.Layout,
		Palette: opts.Palette,
		OnScore: b.handleScore,
		OnEnd:   b.handleEnd,
	})

	if b.store != nil {
		best, err := b.store.HighScore()
		if err != nil {
			logger.Warn("cannot load best score", "error", err)
		} else {
			b.best = best
		}
	}
	return b
}

// Open shows the game overlay. It does nothing while a run is in progress.
func (b *Bridge) Open() {
	if b.phase == PhaseHome {
		b.phase = PhaseIntro
	}
}

// Close stops any run without saving it and hides the overlay.
func (b *Bridge) Close() {
	b.game.Stop()
	b.phase = PhaseHome
}

// StartGame stops any run and starts a fresh one, opening the overlay if needed.
func (b *Bridge) StartGame() error {
	if err := b.game.Start(); err != nil {
		b.logger.Error("cannot start run", "error", err)
		if b.phase == PhasePlaying {
			b.phase = PhaseIntro
		}
		return err
	}
	b.phase = PhasePlaying
	b.score = 0
	b.runs++
	b.logger.Info("run started", "run", b.runs, "host", b.host)
	return nil
}

func (b *Bridge) handleScore(score int) {
	b.score = score
}

func (b *Bridge) handleEnd() {
	b.lastScore = b.score
	b.logger.Info("run ended", "run", b.runs, "score", b.score)

	if b.score > b.best {
		b.best = b.score
	}
	if b.store != nil && b.score > 0 {
		if _, err := b.store.SaveScore(b.host, b.score); err != nil {
			b.logger.Error("cannot save score", "score", b.score, "error", err)
		}
	}
	b.Close()
}

// Phase returns the current phase.
func (b *Bridge) Phase() Phase { return b.phase }

// Score returns the live score of the current (or most recent) run.
func (b *Bridge) Score() int { return b.score }

// LastScore returns the final score of the last run that ended by losing the ball.
func (b *Bridge) LastScore() int { return b.lastScore }

// Best returns the best score seen, including stored scores.
func (b *Bridge) Best() int { return b.best }

// Runs returns how many runs were started.
func (b *Bridge) Runs() int { return b.runs }

// Snapshot returns a copy of the current run.
func (b *Bridge) Snapshot() breakout.Snapshot { return b.game.Snapshot() }
