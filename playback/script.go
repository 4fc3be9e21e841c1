// Package playback replays a recorded input timeline as an input source.
package playback

import (
	cfg "github.com/automoto/doomerang-monster/config"
)

// Script plays config.ScriptStep segments back to back. After the last
// segment it reports neutral input.
type Script struct {
	steps   []cfg.ScriptStep
	index   int
	elapsed float64 // seconds into steps[index]
}

func NewScript(steps []cfg.ScriptStep) *Script {
	return &Script{steps: append([]cfg.ScriptStep(nil), steps...)}
}

// Duration is the total length of the script in seconds.
func (s *Script) Duration() float64 {
	total := 0.0
	for _, step := range s.steps {
		total += step.Duration
	}
	return total
}

// Done reports whether every segment has been played.
func (s *Script) Done() bool {
	return s.index >= len(s.steps)
}

func (s *Script) current() (cfg.ScriptStep, bool) {
	if s.Done() {
		return cfg.ScriptStep{}, false
	}
	return s.steps[s.index], true
}

func (s *Script) Axis(id cfg.AxisID) float64 {
	step, ok := s.current()
	if !ok {
		return 0
	}
	switch id {
	case cfg.AxisHorizontal:
		return step.Horizontal
	case cfg.AxisVertical:
		return step.Vertical
	}
	return 0
}

func (s *Script) Pressed(id cfg.ActionID) bool {
	step, ok := s.current()
	return ok && id == cfg.ActionJump && step.Jump
}

// Advance moves the playhead forward by dt, skipping any segments it passes.
func (s *Script) Advance(dt float64) {
	s.elapsed += dt
	for !s.Done() && s.elapsed >= s.steps[s.index].Duration {
		s.elapsed -= s.steps[s.index].Duration
		s.index++
	}
}

// Reset rewinds to the first segment.
func (s *Script) Reset() {
	s.index = 0
	s.elapsed = 0
}
