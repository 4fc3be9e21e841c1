package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/automoto/doomerang-monster/config"
	"github.com/automoto/doomerang-monster/logger"
	"github.com/automoto/doomerang-monster/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	config *config.Config
	scene  Scene
}

func NewGame(cfg *config.Config) *Game {
	return &Game{
		config: cfg,
		scene:  scenes.NewMonsterScene(cfg),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.config.Window.Width, g.config.Window.Height
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (defaults when empty)")
	flag.Parse()

	cfg := config.C
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("Failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	log := logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	ebiten.SetWindowSize(cfg.Window.Width*2, cfg.Window.Height*2)
	ebiten.SetWindowTitle("Monster")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(cfg)); err != nil && !errors.Is(err, scenes.ErrQuit) {
		log.Error("Game exited", "error", err)
		os.Exit(1)
	}
}
