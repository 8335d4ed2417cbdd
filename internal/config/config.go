// Package config provides YAML-based configuration loading for the brick
// breaker and its hosts.
package config

// BreakoutConfig contains all configuration for the brick breaker.
type BreakoutConfig struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	TickRate int            `yaml:"tick_rate"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Rules    RulesConfig    `yaml:"rules"`
	Controls ControlsConfig `yaml:"controls"`
	Palette  PaletteConfig  `yaml:"palette"`
}

// CanvasConfig is the fixed logical resolution of the playfield.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig is the ball's start position, velocity and radius.
type BallConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	DX     float64 `yaml:"dx"`
	DY     float64 `yaml:"dy"`
	Radius float64 `yaml:"radius"`
}

// PaddleConfig defines paddle size and its fixed row.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"`
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
}

// ScoringConfig defines point rewards.
type ScoringConfig struct {
	BrickReward int `yaml:"brick_reward"`
}

// RulesConfig toggles collision rule variants.
type RulesConfig struct {
	ReflectPerBrick bool `yaml:"reflect_per_brick"`
}

// ControlsConfig tunes keyboard control in hosts without pointer motion.
type ControlsConfig struct {
	NudgeStep float64 `yaml:"nudge_step"`
}

// PaletteConfig holds hex colors ("#rrggbb") for each drawn element.
type PaletteConfig struct {
	Background string `yaml:"background"`
	Paddle     string `yaml:"paddle"`
	Ball       string `yaml:"ball"`
	Brick      string `yaml:"brick"`
}
