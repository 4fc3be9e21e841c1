package main

import (
	"context"
	"flag"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/doomerang-monster/components"
	"github.com/automoto/doomerang-monster/config"
	"github.com/automoto/doomerang-monster/engine"
	"github.com/automoto/doomerang-monster/logger"
	"github.com/automoto/doomerang-monster/playback"
	"github.com/automoto/doomerang-monster/shared/gamemath"
	"github.com/automoto/doomerang-monster/systems"
	"github.com/automoto/doomerang-monster/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func main() {
	configPath := flag.String("config", "monster.yaml", "Path to a YAML config file with a script section")
	realtime := flag.Bool("realtime", false, "Run at wall-clock speed instead of as fast as possible")
	level := flag.String("log-level", "", "Override the configured log level")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *level != "" {
		cfg.Logging.Level = *level
	}
	log := logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	script := playback.NewScript(cfg.Script)
	world := ecs.NewECS(donburi.NewWorld())
	world.AddSystem(systems.UpdateInput(script))
	world.AddSystem(systems.UpdateJumpTrigger)
	world.AddSystem(systems.UpdateMotion)
	world.AddSystem(systems.UpdateAnimator)

	loop := engine.NewLoop(world, cfg.Loop).AddFixedSystem(systems.UpdateIntegration)

	monster, err := factory.CreateMonster(world, gamemath.Zero, cfg.Monster)
	if err != nil {
		log.Error("Failed to create monster", "error", err)
		os.Exit(1)
	}

	frameDelta := 1 / float64(cfg.Loop.FrameRate)
	frames := int(math.Ceil(script.Duration() / frameDelta))
	log.Info("Starting simulation",
		"steps", len(cfg.Script),
		"duration", script.Duration(),
		"frames", frames,
		"realtime", *realtime)

	if *realtime {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		// Stop once the script has played out
		world.AddSystem(func(*ecs.ECS) {
			if script.Done() {
				cancel()
			}
		})
		loop.Run(ctx)
	} else {
		loop.RunFor(frames, frameDelta)
	}

	transform := components.Transform.Get(monster)
	motion := components.Motion.Get(monster)
	anim := components.Animator.Get(monster)
	clock := systems.GetClock(world)
	log.Info("Simulation finished",
		"frames", clock.Frame,
		"fixed_steps", clock.Step,
		"position", transform.Position,
		"yaw", transform.Yaw,
		"speed", motion.Speed(),
		"state", anim.CurrentState.String())
}
