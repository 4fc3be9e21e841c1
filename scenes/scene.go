package scenes

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/automoto/doomerang-monster/components"
	cfg "github.com/automoto/doomerang-monster/config"
	"github.com/automoto/doomerang-monster/engine"
	"github.com/automoto/doomerang-monster/input"
	"github.com/automoto/doomerang-monster/logger"
	"github.com/automoto/doomerang-monster/shared/gamemath"
	"github.com/automoto/doomerang-monster/systems"
	"github.com/automoto/doomerang-monster/systems/factory"
	"github.com/automoto/doomerang-monster/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

// ErrQuit is returned from Update when the player closes the scene.
var ErrQuit = errors.New("quit")

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// MonsterScene is a top-down view of a single monster driven by the
// keyboard or a gamepad.
type MonsterScene struct {
	config *cfg.Config
	ecs    *ecs.ECS
	loop   *engine.Loop
	once   sync.Once
	err    error
}

func NewMonsterScene(config *cfg.Config) *MonsterScene {
	return &MonsterScene{config: config}
}

func (ms *MonsterScene) Update() error {
	ms.once.Do(ms.configure)
	if ms.err != nil {
		return ms.err
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ErrQuit
	}

	ms.loop.Advance(1 / float64(ebiten.TPS()))
	return nil
}

func (ms *MonsterScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Frame phase, in order
	ecs.AddSystem(systems.UpdateInput(input.NewDevice()))
	ecs.AddSystem(systems.UpdateJumpTrigger)
	ecs.AddSystem(systems.UpdateMotion)
	ecs.AddSystem(systems.UpdateAnimator)

	ms.ecs = ecs
	ms.loop = engine.NewLoop(ecs, ms.config.Loop).
		AddFixedSystem(systems.UpdateIntegration)

	if _, err := factory.CreateMonster(ecs, gamemath.Zero, ms.config.Monster); err != nil {
		ms.err = fmt.Errorf("configure scene: %w", err)
		return
	}
	logger.L().Info("scene ready", "tick_rate", ms.config.Loop.TickRate, "tps", ebiten.TPS())
}

func (ms *MonsterScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)
	if ms.ecs == nil {
		return
	}

	entry, ok := tags.Monster.First(ms.ecs.World)
	if !ok {
		return
	}
	transform := components.Transform.Get(entry)
	anim := components.Animator.Get(entry)

	scale := ms.config.Window.Scale
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	// The camera follows the monster on the ground plane
	cx, cz := transform.Position.X, transform.Position.Z
	toScreen := func(x, z float64) (float32, float32) {
		return float32(float64(w)/2 + (x-cx)*scale), float32(float64(h)/2 - (z-cz)*scale)
	}

	drawGrid(screen, cx, cz, scale, w, h)

	gx, gy := toScreen(transform.Position.X, transform.Position.Z)
	radius := float32(cfg.Render.BodyRadius * scale)
	vector.DrawFilledCircle(screen, gx, gy, radius, cfg.Render.Shadow, true)

	// Lift draws the body up the screen and slightly larger
	lift := float32(transform.Position.Y * scale * 0.5)
	bodyColor := cfg.Render.Body
	if anim.Bool(cfg.Motor.JumpingParam) {
		bodyColor = cfg.Render.BodyJump
	}
	grow := 1 + float32(transform.Position.Y)*0.1
	if anim.CurrentState == cfg.Walk && anim.CurrentAnimation != nil {
		// Bob once per walk cycle
		lift += float32(math.Abs(math.Sin(anim.CurrentAnimation.Progress()*2*math.Pi))) * radius * 0.15
	}
	vector.DrawFilledCircle(screen, gx, gy-lift, radius*grow, bodyColor, true)

	fwd := gamemath.Forward(transform.Yaw)
	fx := gx + float32(fwd.X)*radius*grow
	fy := gy - lift - float32(fwd.Z)*radius*grow
	vector.StrokeLine(screen, gx, gy-lift, fx, fy, 2, cfg.Render.Facing, true)

	drawHUD(screen, transform, anim)
}

func drawGrid(screen *ebiten.Image, cx, cz, scale float64, w, h int) {
	step := cfg.Render.GridStep
	halfW := float64(w) / 2 / scale
	halfH := float64(h) / 2 / scale

	for x := math.Floor((cx-halfW)/step) * step; x <= cx+halfW; x += step {
		sx := float32(float64(w)/2 + (x-cx)*scale)
		vector.StrokeLine(screen, sx, 0, sx, float32(h), 1, cfg.Render.Grid, false)
	}
	for z := math.Floor((cz-halfH)/step) * step; z <= cz+halfH; z += step {
		sy := float32(float64(h)/2 - (z-cz)*scale)
		vector.StrokeLine(screen, 0, sy, float32(w), sy, 1, cfg.Render.Grid, false)
	}
}

func drawHUD(screen *ebiten.Image, transform *components.TransformData, anim *components.AnimatorData) {
	lines := []string{
		fmt.Sprintf("%s: %.2f", cfg.Motor.VelocityParam, anim.Float(cfg.Motor.VelocityParam)),
		fmt.Sprintf("%s: %t", cfg.Motor.JumpingParam, anim.Bool(cfg.Motor.JumpingParam)),
		fmt.Sprintf("state: %s (%d)  frame: %d", anim.CurrentState, anim.StateTimer, clipFrame(anim)),
		fmt.Sprintf("pos: %.2f %.2f %.2f  yaw: %.1f",
			transform.Position.X, transform.Position.Y, transform.Position.Z, transform.Yaw),
	}
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, 8+float64(i)*16)
		op.ColorScale.ScaleWithColor(cfg.Render.HUDText)
		text.Draw(screen, line, hudFace, op)
	}
}


func clipFrame(anim *components.AnimatorData) int {
	if anim.CurrentAnimation == nil {
		return -1
	}
	return anim.CurrentAnimation.Frame()
}
