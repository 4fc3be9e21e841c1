package config

// ActionID represents a logical digital action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionCount // Must be last - used for array sizing
)

// AxisID represents a raw analog axis
type AxisID int

const (
	AxisHorizontal AxisID = iota
	AxisVertical
	AxisCount
)

var axisNames = [AxisCount]string{
	AxisHorizontal: "Horizontal",
	AxisVertical:   "Vertical",
}

func (a AxisID) String() string {
	if a < 0 || a >= AxisCount {
		return "Unknown"
	}
	return axisNames[a]
}

// InputConfig holds input tuning that is not a key binding.
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
	}
}
