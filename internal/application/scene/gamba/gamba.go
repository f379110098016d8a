// Package gamba provides the betting scene with the sugar-cane towers.
package gamba

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/cakegamba/internal/application/scene"
	"github.com/younwookim/cakegamba/internal/application/system"
	"github.com/younwookim/cakegamba/internal/application/ui"
	"github.com/younwookim/cakegamba/internal/domain/entity"
	"github.com/younwookim/cakegamba/internal/ecs"
)

// Gamba is the betting scene
type Gamba struct {
	ctx      *system.Context
	renderer scene.Renderer
}

// New creates the gamba scene
func New(ctx *system.Context, renderer scene.Renderer) *Gamba {
	return &Gamba{ctx: ctx, renderer: renderer}
}

func (s *Gamba) ID() entity.Scene {
	return entity.SceneGamba
}

// Update resolves last frame's intents in order, ages the banner,
// moves the camera, refreshes the displays, then handles this frame's press
func (s *Gamba) Update(dt float64) (entity.Scene, error) {
	c := s.ctx

	for _, intent := range c.Intents.Drain() {
		if enter, ok := intent.(system.EnterSceneIntent); ok {
			return enter.Scene, nil
		}
		system.HandleGambaIntent(c, intent)
	}

	ecs.UpdateBanners(c.World, dt)
	c.Camera.Update(dt)
	ui.UpdateDisplays(c)

	if !ui.Press(c) {
		if id, ok := scene.Pick(c); ok {
			system.PressGambaScene(c, id)
		}
	}

	return entity.SceneGamba, nil
}

func (s *Gamba) Draw(screen *ebiten.Image) {
	scene.Draw(s.renderer, screen, s.ctx)
}

// OnEnter resets the towers and spawns the board; score and bet carry over
func (s *Gamba) OnEnter() {
	system.SetupGamba(s.ctx)
	ui.SpawnGamba(s.ctx)
}

func (s *Gamba) OnExit() {
	removed := scene.Leave(s.ctx, entity.SceneGamba)
	s.ctx.Log.Debug("gamba scene cleared", "entities", removed)
}
