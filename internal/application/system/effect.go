package system

import (
	"fmt"

	"github.com/younwookim/cakegamba/internal/domain/entity"
	"github.com/younwookim/cakegamba/internal/ecs"
)

// Effect is a side effect requested by a decision function.
// Decisions never touch the world themselves; Apply carries them out.
type Effect interface {
	isEffect()
}

// DespawnVariants destroys every creature of the listed variants
type DespawnVariants struct {
	Variants []entity.Variant
}

func (DespawnVariants) isEffect() {}

// RespawnCreatures runs the five-creature spawn routine again
type RespawnCreatures struct{}

func (RespawnCreatures) isEffect() {}

// PlaySound plays a sound cue
type PlaySound struct {
	Sound entity.Sound
}

func (PlaySound) isEffect() {}

// SetFrame changes the atlas index of an entity's sprite
type SetFrame struct {
	ID    ecs.EntityID
	Index int
}

func (SetFrame) isEffect() {}

// Extinguish turns a flame into smoke
type Extinguish struct {
	ID ecs.EntityID
}

func (Extinguish) isEffect() {}

// Despawn destroys one entity and its descendants
type Despawn struct {
	ID ecs.EntityID
}

func (Despawn) isEffect() {}

// SpawnSegment adds a tower segment with the given atlas index
type SpawnSegment struct {
	Side   entity.Side
	Lane   int
	Height int
	Index  int
}

func (SpawnSegment) isEffect() {}

// StartPan pans the camera from its current position to Target
type StartPan struct {
	Target float64
}

func (StartPan) isEffect() {}

// ShowBanner shows the bankruptcy banner, replacing any existing one
type ShowBanner struct {
	Amount uint64
}

func (ShowBanner) isEffect() {}

// Apply carries out effects in order.
// Effects aimed at entities that no longer exist are ignored.
func Apply(c *Context, effects []Effect) {
	for _, e := range effects {
		switch e := e.(type) {
		case DespawnVariants:
			c.World.DespawnCreatures(e.Variants...)
		case RespawnCreatures:
			SpawnCreatures(c)
		case PlaySound:
			c.Sounds.Play(e.Sound)
		case SetFrame:
			if sprite, ok := c.World.Sprite[e.ID]; ok {
				sprite.Index = e.Index
				c.World.Sprite[e.ID] = sprite
			}
		case Extinguish:
			extinguish(c, e.ID)
		case Despawn:
			if c.World.Exists(e.ID) {
				c.World.DestroyEntity(e.ID)
			}
		case SpawnSegment:
			SpawnTowerSegment(c, e.Side, e.Lane, e.Height, e.Index)
		case StartPan:
			c.Camera.Pan = entity.NewCameraPan(c.Camera.Y, e.Target, c.Tuning.Gamba.PanDuration)
		case ShowBanner:
			showBanner(c, e.Amount)
		}
	}
}

func extinguish(c *Context, id ecs.EntityID) {
	w := c.World
	if _, ok := w.IsFlame[id]; !ok {
		return
	}
	smoke := c.Tuning.Cake.Smoke

	if light, ok := w.Light[id]; ok {
		light.Radius = 0
		w.Light[id] = light
	}
	w.Animation[id] = ecs.NewAnimation(smoke)
	if sprite, ok := w.Sprite[id]; ok {
		sprite.Index = smoke.Offset
		w.Sprite[id] = sprite
	}
	delete(w.IsFlame, id)
	delete(w.IsPickable, id)
}

// BannerText is the bankruptcy message for the granted amount
func BannerText(amount uint64) string {
	return fmt.Sprintf("Damn, you're broke! Here, have $%d", amount)
}

func showBanner(c *Context, amount uint64) {
	w := c.World
	w.DespawnBanners()

	id := w.Spawn(entity.SceneGamba)
	w.Banner[id] = ecs.Banner{Timer: entity.NewTimer(c.Tuning.Gamba.BannerDuration, entity.TimerOnce)}
	w.Label[id] = ecs.Label{
		Text:  BannerText(amount),
		X:     c.Tuning.ScreenWidth * 0.4,
		Y:     c.Tuning.ScreenHeight * 0.6,
		Size:  24,
		Color: c.Tuning.Gamba.BannerColor,
	}
}
