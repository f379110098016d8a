// Package cake provides the birthday cake scene.
package cake

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/cakegamba/internal/application/scene"
	"github.com/younwookim/cakegamba/internal/application/system"
	"github.com/younwookim/cakegamba/internal/application/ui"
	"github.com/younwookim/cakegamba/internal/domain/entity"
	"github.com/younwookim/cakegamba/internal/ecs"
)

// Cake is the scene with the cake, its guests and their candles
type Cake struct {
	ctx      *system.Context
	renderer scene.Renderer
}

// New creates the cake scene
func New(ctx *system.Context, renderer scene.Renderer) *Cake {
	return &Cake{ctx: ctx, renderer: renderer}
}

func (s *Cake) ID() entity.Scene {
	return entity.SceneCake
}

// Update resolves last frame's intents, animates flames and smoke,
// then handles this frame's press
func (s *Cake) Update(dt float64) (entity.Scene, error) {
	c := s.ctx

	for _, intent := range c.Intents.Drain() {
		if enter, ok := intent.(system.EnterSceneIntent); ok {
			return enter.Scene, nil
		}
	}

	ecs.UpdateAnimations(c.World, dt)

	if !ui.Press(c) {
		if id, ok := scene.Pick(c); ok {
			system.Apply(c, system.PressCakeScene(c, id))
		}
	}

	return entity.SceneCake, nil
}

func (s *Cake) Draw(screen *ebiten.Image) {
	scene.Draw(s.renderer, screen, s.ctx)
}

// OnEnter runs the full setup every time, including the pickle mew roll
func (s *Cake) OnEnter() {
	system.SetupCake(s.ctx)
	system.SpawnCreatures(s.ctx)
	ui.SpawnCake(s.ctx)
}

func (s *Cake) OnExit() {
	removed := scene.Leave(s.ctx, entity.SceneCake)
	s.ctx.Log.Debug("cake scene cleared", "entities", removed)
}
