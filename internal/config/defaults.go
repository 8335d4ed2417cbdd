package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default brick breaker configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Canvas:   CanvasConfig{Width: 800, Height: 600},
		TickRate: 60,
		Ball: BallConfig{
			X:      400,
			Y:      480,
			DX:     4,
			DY:     -4,
			Radius: 8,
		},
		Paddle: PaddleConfig{
			Width:  120,
			Height: 20,
			Y:      540,
		},
		Bricks: BricksConfig{
			Rows:       4,
			Cols:       8,
			Width:      90,
			Height:     30,
			Padding:    10,
			OffsetTop:  60,
			OffsetLeft: 10,
		},
		Scoring:  ScoringConfig{BrickReward: 100},
		Rules:    RulesConfig{ReflectPerBrick: false},
		Controls: ControlsConfig{NudgeStep: 40},
		Palette: PaletteConfig{
			Background: "#000000",
			Paddle:     "#00f2ff",
			Ball:       "#ffffff",
			Brick:      "#3b82f6",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "breakout":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
