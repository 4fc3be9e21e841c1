package components

import "github.com/yohamta/donburi"

// ClockData is the singleton time source systems read instead of a global
// clock. FrameDelta is valid during the frame phase, FixedDelta during the
// fixed phase.
type ClockData struct {
	FrameDelta float64
	FixedDelta float64
	Frame      int64 // frames run so far
	Step       int64 // fixed steps run so far
	Elapsed    float64
}

var Clock = donburi.NewComponentType[ClockData]()
