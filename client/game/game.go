package game

import (
	"fmt"

	"github.com/cbodonnell/reaction/client/input"
	"github.com/cbodonnell/reaction/client/scenes"
	"github.com/cbodonnell/reaction/pkg/log"
	"github.com/cbodonnell/reaction/pkg/reaction"
	"github.com/cbodonnell/reaction/pkg/stats"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jonboulle/clockwork"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// clock timestamps pointer presses. It is shared with the controller.
	clock clockwork.Clock
	// controller runs the reaction test.
	controller *reaction.Controller
	// pointer turns mouse and touch input into logical presses.
	pointer *input.Pointer
	// router sends each press to either the reset button or the controller.
	router *stats.PressRouter
	// scene is the current scene.
	scene scenes.Scene
	// screenWidth and screenHeight are the logical screen size.
	screenWidth  int
	screenHeight int
}

const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480
)

type NewGameOptions struct {
	Debug        bool
	Clock        clockwork.Clock
	Controller   *reaction.Controller
	Pointer      *input.Pointer
	ScreenWidth  int
	ScreenHeight int
}

func NewGame(opts NewGameOptions) (*Game, error) {
	if opts.Controller == nil {
		return nil, fmt.Errorf("controller is required")
	}
	g := &Game{
		debug:        opts.Debug,
		clock:        opts.Clock,
		controller:   opts.Controller,
		pointer:      opts.Pointer,
		screenWidth:  opts.ScreenWidth,
		screenHeight: opts.ScreenHeight,
	}
	if g.clock == nil {
		g.clock = clockwork.NewRealClock()
	}
	if g.pointer == nil {
		g.pointer = input.NewPointer(0)
	}
	if g.screenWidth <= 0 || g.screenHeight <= 0 {
		g.screenWidth, g.screenHeight = DefaultScreenWidth, DefaultScreenHeight
	}

	view := stats.NewView(g.controller)
	g.router = stats.NewPressRouter(view, g.controller)
	scene, err := scenes.NewReactionScene(scenes.ReactionSceneOptions{
		Prompt: g.controller.Prompt,
		Stats:  view,
		Router: g.router,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create reaction scene: %v", err)
	}
	if err := g.SetScene(scene); err != nil {
		return nil, fmt.Errorf("failed to set reaction scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) Update() error {
	// Input is handled before the cue is polled, so a press made while the
	// screen still showed the waiting prompt counts as premature.
	g.handleInput()
	g.controller.Tick()

	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) handleInput() {
	x, y, ok := g.pointer.JustPressed(g.clock.Now())
	if !ok {
		return
	}
	log.Trace("Press at (%d, %d) in state %s", x, y, g.controller.State())
	g.router.Press(x, y)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   State: %s", g.controller.State()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Pending: %t", g.controller.Pending()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.screenWidth, g.screenHeight
}

// Close tears down the scene and cancels any pending cue.
func (g *Game) Close() error {
	g.controller.Close()
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy scene: %v", err)
		}
		g.scene = nil
	}
	return nil
}
