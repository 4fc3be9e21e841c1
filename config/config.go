package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/yohamta/donburi/ecs"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned when a loaded value cannot drive the motor.
var ErrInvalidTuning = errors.New("invalid tuning")

// Render layers
const (
	Default ecs.LayerID = iota
)

// MonsterConfig holds the per-instance tunables of a monster motor.
type MonsterConfig struct {
	MoveSpeed      float64 `yaml:"move_speed"`       // units/second at full input
	SmoothMoveTime float64 `yaml:"smooth_move_time"` // seconds for input magnitude to settle
	TurnSpeed      float64 `yaml:"turn_speed"`       // heading lerp rate per second at full input
	JumpHeight     float64 `yaml:"jump_height"`      // peak lift above the take-off point
	JumpDuration   float64 `yaml:"jump_duration"`    // seconds from take-off to landing
}

// MotorConfig holds the fixed limits shared by every motor.
type MotorConfig struct {
	MaxVelocity     float64 // hard cap on velocity magnitude
	VelocityEpsilon float64 // velocities shorter than this are snapped to zero

	// Animation parameter names
	VelocityParam string
	JumpingParam  string

	// Magnitude above which the animator reports walking
	WalkThreshold float64
}

// ClipConfig describes the frame range and rate of one pose animation.
type ClipConfig struct {
	First            int
	Last             int
	FPS              float64
	FreezeOnComplete bool
}

// AnimationConfig maps poses to their clips.
type AnimationConfig struct {
	Clips map[StateID]ClipConfig

	// Walk clip playback rate at zero speed and at MoveSpeed
	MinWalkRate float64
	MaxWalkRate float64
}

// LoopConfig controls the frame/fixed-step scheduler.
type LoopConfig struct {
	TickRate         int `yaml:"tick_rate"`           // fixed steps per second
	FrameRate        int `yaml:"frame_rate"`          // headless frames per second
	MaxStepsPerFrame int `yaml:"max_steps_per_frame"` // fixed steps allowed to catch up in one frame
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// WindowConfig describes the windowed client.
type WindowConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"` // pixels per world unit
}

// ScriptStep is one segment of a recorded input timeline.
type ScriptStep struct {
	Duration   float64 `yaml:"duration"`
	Horizontal float64 `yaml:"horizontal"`
	Vertical   float64 `yaml:"vertical"`
	Jump       bool    `yaml:"jump"`
}

// Config is the on-disk layout of a monster config file.
type Config struct {
	Monster MonsterConfig `yaml:"monster"`
	Loop    LoopConfig    `yaml:"loop"`
	Logging LoggingConfig `yaml:"logging"`
	Window  WindowConfig  `yaml:"window"`
	Script  []ScriptStep  `yaml:"script"`
}

// Global configuration instances
var C *Config
var Monster MonsterConfig
var Motor MotorConfig
var Loop LoopConfig
var Window WindowConfig
var Render RenderConfig
var Animation AnimationConfig

// RenderConfig contains colors for the top-down view.
type RenderConfig struct {
	Background color.RGBA
	Grid       color.RGBA
	Body       color.RGBA
	BodyJump   color.RGBA
	Facing     color.RGBA
	Shadow     color.RGBA
	HUDText    color.RGBA
	GridStep   float64 // world units between grid lines
	BodyRadius float64 // world units
}

func init() {
	Monster = MonsterConfig{
		MoveSpeed:      7,
		SmoothMoveTime: 0.1,
		TurnSpeed:      8,
		JumpHeight:     2,
		JumpDuration:   1,
	}

	Motor = MotorConfig{
		MaxVelocity:     7,
		VelocityEpsilon: 0.01,
		VelocityParam:   "velocity",
		JumpingParam:    "isjumping",
		WalkThreshold:   0.1,
	}

	Animation = AnimationConfig{
		Clips: map[StateID]ClipConfig{
			Idle: {First: 0, Last: 3, FPS: 4},
			Walk: {First: 4, Last: 11, FPS: 12},
			Jump: {First: 12, Last: 15, FPS: 8, FreezeOnComplete: true},
		},
		MinWalkRate: 0.25,
		MaxWalkRate: 1.5,
	}

	Loop = LoopConfig{
		TickRate:         50,
		FrameRate:        60,
		MaxStepsPerFrame: 5,
	}

	Window = WindowConfig{
		Width:  640,
		Height: 360,
		Scale:  24,
	}

	Render = RenderConfig{
		Background: color.RGBA{R: 24, G: 26, B: 32, A: 255},
		Grid:       color.RGBA{R: 48, G: 52, B: 64, A: 255},
		Body:       color.RGBA{R: 120, G: 200, B: 90, A: 255},
		BodyJump:   color.RGBA{R: 170, G: 235, B: 120, A: 255},
		Facing:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Shadow:     color.RGBA{R: 0, G: 0, B: 0, A: 120},
		HUDText:    color.RGBA{R: 220, G: 220, B: 220, A: 255},
		GridStep:   1,
		BodyRadius: 0.5,
	}

	C = Defaults()
}

// Defaults returns a Config populated from the package defaults.
func Defaults() *Config {
	return &Config{
		Monster: Monster,
		Loop:    Loop,
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Window:  Window,
	}
}

// Load reads a YAML config file over the defaults and validates it.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first value that cannot drive the motor or the loop.
func (c *Config) Validate() error {
	if err := c.Monster.Validate(); err != nil {
		return err
	}
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidTuning, c.Loop.TickRate)
	}
	if c.Loop.FrameRate <= 0 {
		return fmt.Errorf("%w: frame_rate must be positive, got %d", ErrInvalidTuning, c.Loop.FrameRate)
	}
	if c.Loop.MaxStepsPerFrame <= 0 {
		return fmt.Errorf("%w: max_steps_per_frame must be positive, got %d", ErrInvalidTuning, c.Loop.MaxStepsPerFrame)
	}
	for i, step := range c.Script {
		if step.Duration <= 0 {
			return fmt.Errorf("%w: script step %d has non-positive duration", ErrInvalidTuning, i)
		}
	}
	return nil
}

func (m MonsterConfig) Validate() error {
	switch {
	case m.MoveSpeed < 0:
		return fmt.Errorf("%w: move_speed must not be negative, got %g", ErrInvalidTuning, m.MoveSpeed)
	case m.SmoothMoveTime <= 0:
		return fmt.Errorf("%w: smooth_move_time must be positive, got %g", ErrInvalidTuning, m.SmoothMoveTime)
	case m.TurnSpeed < 0:
		return fmt.Errorf("%w: turn_speed must not be negative, got %g", ErrInvalidTuning, m.TurnSpeed)
	case m.JumpHeight < 0:
		return fmt.Errorf("%w: jump_height must not be negative, got %g", ErrInvalidTuning, m.JumpHeight)
	case m.JumpDuration <= 0:
		return fmt.Errorf("%w: jump_duration must be positive, got %g", ErrInvalidTuning, m.JumpDuration)
	}
	return nil
}
