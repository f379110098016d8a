// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/cakegamba/internal/application/scene"
	"github.com/younwookim/cakegamba/internal/application/state"
	"github.com/younwookim/cakegamba/internal/application/system"
	"github.com/younwookim/cakegamba/internal/domain/entity"
)

// FrameRecorder receives the input of every frame before it is used
type FrameRecorder interface {
	RecordFrame(input system.InputState)
}

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	router   scene.Router
	machine  *state.Machine
	ctx      *system.Context
	input    system.InputReader
	recorder FrameRecorder
	current  scene.Scene
	screenW  int
	screenH  int
	dt       float64
}

// New creates a new Game starting in the Loading scene.
// The initial scene's OnEnter is called immediately.
func New(ctx *system.Context, router scene.Router, input system.InputReader, screenW, screenH int) (*Game, error) {
	machine := state.NewMachine()
	initial, ok := router.Get(machine.Current())
	if !ok {
		return nil, fmt.Errorf("no scene registered for %s", machine.Current())
	}

	g := &Game{
		router:  router,
		machine: machine,
		ctx:     ctx,
		input:   input,
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g, nil
}

// SetRecorder records every frame's input from now on
func (g *Game) SetRecorder(r FrameRecorder) {
	g.recorder = r
}

// Update reads input, updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	input := g.input.GetInput()
	if g.recorder != nil {
		g.recorder.RecordFrame(input)
	}
	g.ctx.Input = input

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next == g.current.ID() {
		return nil
	}
	return g.transition(next)
}

func (g *Game) transition(next entity.Scene) error {
	target, ok := g.router.Get(next)
	if !ok {
		return fmt.Errorf("no scene registered for %s", next)
	}
	from := g.machine.Current()
	firstCake := next == entity.SceneCake && !g.machine.CakeEntered()
	if err := g.machine.Transition(next); err != nil {
		return err
	}

	g.current.OnExit()
	g.current = target
	g.current.OnEnter()

	g.ctx.Log.Debug("scene transition", "from", from, "to", next, "count", g.machine.Transitions())
	if firstCake {
		g.ctx.Log.Info("cake served")
	}
	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Current returns the active scene
func (g *Game) Current() entity.Scene {
	return g.machine.Current()
}

// Context returns the shared session state
func (g *Game) Context() *system.Context {
	return g.ctx
}
