package system

import (
	"image/color"
	"io"

	"github.com/charmbracelet/log"

	"github.com/younwookim/cakegamba/internal/domain/entity"
	"github.com/younwookim/cakegamba/internal/ecs"
)

// RNG is the random source used for every game draw
type RNG interface {
	Uint32() uint32
}

// SoundPlayer plays fire-and-forget sound cues
type SoundPlayer interface {
	Play(s entity.Sound)
}

// NopSounds discards every sound
type NopSounds struct{}

func (NopSounds) Play(entity.Sound) {}

// Camera is the vertical camera offset plus the scene lighting
type Camera struct {
	Y          float64
	Pan        entity.CameraPan
	ClearColor color.RGBA
	Ambient    float64
}

// Reset puts the camera back at the origin with the given lighting
func (c *Camera) Reset(clear color.RGBA, ambient float64) {
	c.Y = 0
	c.Pan = entity.CameraPan{}
	c.ClearColor = clear
	c.Ambient = ambient
}

// Update advances a running pan. The camera holds its position otherwise.
func (c *Camera) Update(dt float64) {
	if y, ok := c.Pan.Advance(dt); ok {
		c.Y = y
	}
}

// ScreenToWorld converts a screen pixel into world coordinates (Y up, origin at screen center)
func (c *Camera) ScreenToWorld(sx, sy float64, screenW, screenH int) (x, y float64) {
	return sx - float64(screenW)/2, float64(screenH)/2 - sy + c.Y
}

// WorldToScreen converts a world position into screen pixels
func (c *Camera) WorldToScreen(x, y float64, screenW, screenH int) (sx, sy float64) {
	return x + float64(screenW)/2, float64(screenH)/2 - (y - c.Y)
}

// Context is the shared mutable state passed to every scene and system.
// It replaces global singletons so scenes can run without an engine.
type Context struct {
	World   *ecs.World
	Wallet  *entity.Wallet
	Towers  *entity.TowerHeights
	Camera  *Camera
	Intents *IntentQueue
	Input   InputState // pointer state for the current frame
	RNG     RNG
	Sounds  SoundPlayer
	Log     *log.Logger
	Tuning  Tuning
}

// NewContext creates a context with a fresh world and the starting wallet
func NewContext(tuning Tuning, rng RNG, sounds SoundPlayer, logger *log.Logger) *Context {
	if sounds == nil {
		sounds = NopSounds{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Context{
		World:   ecs.NewWorld(),
		Wallet:  entity.NewWallet(tuning.Gamba.StartScore, tuning.Gamba.StartBet),
		Towers:  &entity.TowerHeights{},
		Camera:  &Camera{},
		Intents: &IntentQueue{},
		RNG:     rng,
		Sounds:  sounds,
		Log:     logger,
		Tuning:  tuning,
	}
}
