// Package engine schedules the frame and fixed-step phases of a world.
package engine

import (
	"context"
	"time"

	cfg "github.com/automoto/doomerang-monster/config"
	"github.com/automoto/doomerang-monster/logger"
	"github.com/automoto/doomerang-monster/systems"
	"github.com/yohamta/donburi/ecs"
)

// Loop runs the systems registered on its ECS once per frame, then as many
// fixed steps as the accumulated frame time allows.
type Loop struct {
	ecs         *ecs.ECS
	fixed       []func(*ecs.ECS)
	tickRate    int
	frameRate   int
	fixedDelta  float64
	maxSteps    int
	accumulator float64
	running     bool
	stopChan    chan struct{}
}

func NewLoop(e *ecs.ECS, loop cfg.LoopConfig) *Loop {
	return &Loop{
		ecs:        e,
		tickRate:   loop.TickRate,
		frameRate:  loop.FrameRate,
		fixedDelta: 1 / float64(loop.TickRate),
		maxSteps:   loop.MaxStepsPerFrame,
		stopChan:   make(chan struct{}),
	}
}

// AddFixedSystem appends a system to the fixed phase. Fixed systems run in
// the order they were added.
func (l *Loop) AddFixedSystem(s func(*ecs.ECS)) *Loop {
	l.fixed = append(l.fixed, s)
	return l
}

func (l *Loop) FixedDelta() float64 {
	return l.fixedDelta
}

// Advance runs one frame of frameDelta seconds and returns how many fixed
// steps ran. Backlog beyond the per-frame step budget is dropped.
func (l *Loop) Advance(frameDelta float64) int {
	clock := systems.GetClock(l.ecs)
	clock.FrameDelta = frameDelta
	clock.FixedDelta = l.fixedDelta

	l.ecs.Update()

	clock.Frame++
	clock.Elapsed += frameDelta
	l.accumulator += frameDelta

	steps := 0
	for l.accumulator >= l.fixedDelta && steps < l.maxSteps {
		for _, s := range l.fixed {
			s(l.ecs)
		}
		l.accumulator -= l.fixedDelta
		clock.Step++
		steps++
	}

	if l.accumulator >= l.fixedDelta {
		logger.L().Warn("fixed step backlog dropped",
			"frame", clock.Frame,
			"backlog", l.accumulator)
		l.accumulator = 0
	}
	return steps
}

// RunFor advances frames frames of frameDelta each without waiting.
func (l *Loop) RunFor(frames int, frameDelta float64) {
	for i := 0; i < frames; i++ {
		l.Advance(frameDelta)
	}
}

// Run drives the loop in real time at the configured frame rate until ctx is
// done or Stop is called. Each frame advances by the measured wall time.
func (l *Loop) Run(ctx context.Context) {
	l.running = true
	ticker := time.NewTicker(time.Second / time.Duration(l.frameRate))
	defer ticker.Stop()

	logger.L().Info("loop started", "frame_rate", l.frameRate, "tick_rate", l.tickRate)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			l.running = false
			logger.L().Info("loop stopped", "reason", ctx.Err())
			return
		case <-l.stopChan:
			l.running = false
			logger.L().Info("loop stopped")
			return
		case now := <-ticker.C:
			l.Advance(now.Sub(last).Seconds())
			last = now
		}
	}
}

func (l *Loop) Stop() {
	close(l.stopChan)
}

func (l *Loop) Running() bool {
	return l.running
}
