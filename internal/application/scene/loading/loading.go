// Package loading provides the asset loading scene shown at startup.
package loading

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/cakegamba/internal/application/scene"
	"github.com/younwookim/cakegamba/internal/application/system"
	"github.com/younwookim/cakegamba/internal/application/ui"
	"github.com/younwookim/cakegamba/internal/domain/entity"
)

// Loader loads every declared asset
type Loader interface {
	Load() error
}

// Loading shows a message while assets load, then moves on to the cake.
// A failed load keeps the game here with the error on screen.
type Loading struct {
	ctx      *system.Context
	loader   Loader
	renderer scene.Renderer
	frames   int
	err      error
}

// New creates the loading scene
func New(ctx *system.Context, loader Loader, renderer scene.Renderer) *Loading {
	return &Loading{ctx: ctx, loader: loader, renderer: renderer}
}

func (l *Loading) ID() entity.Scene {
	return entity.SceneLoading
}

// Update loads on the second frame so the message is drawn at least once
func (l *Loading) Update(_ float64) (entity.Scene, error) {
	l.frames++
	if l.err != nil || l.frames < 2 {
		return entity.SceneLoading, nil
	}

	if err := l.loader.Load(); err != nil {
		l.err = err
		l.ctx.Log.Error("asset loading failed", "err", err)
		ui.ShowError(l.ctx, err)
		return entity.SceneLoading, nil
	}

	l.ctx.Log.Info("assets loaded")
	return entity.SceneCake, nil
}

func (l *Loading) Draw(screen *ebiten.Image) {
	scene.Draw(l.renderer, screen, l.ctx)
}

func (l *Loading) OnEnter() {
	l.ctx.Camera.Reset(l.ctx.Tuning.Cake.ClearColor, 1)
	ui.SpawnLoading(l.ctx)
}

func (l *Loading) OnExit() {
	scene.Leave(l.ctx, entity.SceneLoading)
}
