//go:build !ebiten

package window

import (
	"errors"
	"testing"

	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
)

func TestRunWithoutTag(t *testing.T) {
	if err := Run(Options{Layout: breakout.DefaultLayout()}); !errors.Is(err, ErrNoWindow) {
		t.Errorf("Run() error = %v, expected ErrNoWindow", err)
	}
}
