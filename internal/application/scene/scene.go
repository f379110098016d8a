// Package scene defines the Scene interface for game screens.
//
// Each screen (loading, cake, gamba) implements the Scene interface
// to handle its own update logic and rendering.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/cakegamba/internal/application/system"
	"github.com/younwookim/cakegamba/internal/domain/entity"
	"github.com/younwookim/cakegamba/internal/ecs"
)

// Scene represents a game screen (loading, cake, gamba)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning another scene's ID from Update.
type Scene interface {
	// ID returns which scene this is.
	ID() entity.Scene

	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the scene to show next; returning ID() stays on this scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next entity.Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	// Entering spawns everything the scene owns, every time.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Everything the scene spawned must be gone afterwards.
	OnExit()
}

// Renderer draws a context to the screen
type Renderer interface {
	Draw(screen *ebiten.Image, c *system.Context)
}

// Router finds scenes by ID
type Router map[entity.Scene]Scene

// NewRouter indexes scenes by their ID
func NewRouter(scenes ...Scene) Router {
	r := make(Router, len(scenes))
	for _, s := range scenes {
		r[s.ID()] = s
	}
	return r
}

// Get returns the scene with the given ID
func (r Router) Get(id entity.Scene) (Scene, bool) {
	s, ok := r[id]
	return s, ok
}

// Leave destroys every entity the scene owns and drops intents it never handled.
// Returns the number of root entities removed.
func Leave(c *system.Context, id entity.Scene) int {
	c.Intents.Clear()
	return c.World.DespawnScene(id)
}

// Pick returns the world entity under a new press, if any
func Pick(c *system.Context) (ecs.EntityID, bool) {
	if !c.Input.Pressed {
		return 0, false
	}
	x, y := c.Camera.ScreenToWorld(float64(c.Input.X), float64(c.Input.Y),
		int(c.Tuning.ScreenWidth), int(c.Tuning.ScreenHeight))
	return ecs.PickAt(c.World, x, y, c.Tuning.TileSize)
}

// Draw renders c with r when a renderer is present
func Draw(r Renderer, screen *ebiten.Image, c *system.Context) {
	if r != nil {
		r.Draw(screen, c)
	}
}
