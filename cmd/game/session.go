package main

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/cakegamba/internal/application/game"
	"github.com/younwookim/cakegamba/internal/application/scene"
	"github.com/younwookim/cakegamba/internal/application/scene/cake"
	"github.com/younwookim/cakegamba/internal/application/scene/gamba"
	"github.com/younwookim/cakegamba/internal/application/scene/loading"
	"github.com/younwookim/cakegamba/internal/application/system"
	"github.com/younwookim/cakegamba/internal/infrastructure/config"
)

// sessionOptions wires one session; run and replay differ only in these
type sessionOptions struct {
	config   *config.GameConfig
	seed     int64
	loader   loading.Loader
	sounds   system.SoundPlayer
	renderer scene.Renderer
	input    system.InputReader
	logger   *log.Logger
}

func newSession(opts sessionOptions) (*game.Game, error) {
	ctx := system.NewContext(
		system.LoadTuning(opts.config),
		rand.New(rand.NewSource(opts.seed)),
		opts.sounds,
		opts.logger,
	)

	router := scene.NewRouter(
		loading.New(ctx, opts.loader, opts.renderer),
		cake.New(ctx, opts.renderer),
		gamba.New(ctx, opts.renderer),
	)

	d := opts.config.Display
	g, err := game.New(ctx, router, opts.input, d.ScreenWidth, d.ScreenHeight)
	if err != nil {
		return nil, err
	}
	g.SetDT(1.0 / float64(d.Framerate))
	return g, nil
}
