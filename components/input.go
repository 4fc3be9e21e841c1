package components

import (
	cfg "github.com/automoto/doomerang-monster/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// MotorInputData is the input snapshot a motor consumes each frame.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type MotorInputData struct {
	Axes     [cfg.AxisCount]float64 // raw axis values, clamped to [-1, 1]
	Current  [cfg.ActionCount]bool  // Current frame's Pressed state
	Previous [cfg.ActionCount]bool  // Previous frame's Pressed state
}

var MotorInput = donburi.NewComponentType[MotorInputData]()
