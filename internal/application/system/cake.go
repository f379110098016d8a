package system

import (
	"github.com/younwookim/cakegamba/internal/domain/entity"
	"github.com/younwookim/cakegamba/internal/ecs"
)

// BiteCake decides what a bite does given the cake's frame index before the bite.
// It returns the next frame index and the effects to apply.
//
//	v == base      -> variant 1 leaves
//	v == base+1    -> variant 2 leaves
//	v == base+3    -> variants 4 and 5 leave
//	v == base+4    -> variant 3 leaves
//	v == base+span-1 -> five new creatures, no eating sound
func BiteCake(v int, cake entity.Palette) (int, []Effect) {
	var effects []Effect

	last := cake.Size - 1
	switch v - cake.Offset {
	case 0:
		effects = append(effects, DespawnVariants{Variants: []entity.Variant{entity.Variant1}})
	case 1:
		effects = append(effects, DespawnVariants{Variants: []entity.Variant{entity.Variant2}})
	case 3:
		effects = append(effects, DespawnVariants{Variants: []entity.Variant{entity.Variant4, entity.Variant5}})
	case 4:
		effects = append(effects, DespawnVariants{Variants: []entity.Variant{entity.Variant3}})
	case last:
		effects = append(effects, RespawnCreatures{})
	}

	if v-cake.Offset != last {
		effects = append(effects, PlaySound{Sound: entity.SoundEating})
	}

	return cake.Next(v), effects
}

// PressCakeScene decides what a press on a cake scene entity does.
// Presses on entities that are gone or not interactive do nothing.
func PressCakeScene(c *Context, id ecs.EntityID) []Effect {
	w := c.World
	if !w.Exists(id) {
		return nil
	}

	if _, ok := w.IsCake[id]; ok {
		sprite, ok := w.Sprite[id]
		if !ok {
			return nil
		}
		next, effects := BiteCake(sprite.Index, c.Tuning.Cake.Cake)
		return append([]Effect{SetFrame{ID: id, Index: next}}, effects...)
	}
	if _, ok := w.IsFlame[id]; ok {
		return []Effect{Extinguish{ID: id}}
	}
	if _, ok := w.IsPickleMew[id]; ok {
		return []Effect{PlaySound{Sound: entity.SoundPickleMew}, Despawn{ID: id}}
	}
	return nil
}

// SpawnCreatures spawns one creature per variant at its fixed position.
// Each creature draws its atlas cell, then its mirror flag, and carries a lit flame.
// Existing creatures are left alone.
func SpawnCreatures(c *Context) {
	w := c.World
	t := c.Tuning.Cake

	for i, variant := range entity.Variants {
		if i >= len(t.CreaturePositions) {
			break
		}
		index := t.Creature.Pick(c.RNG.Uint32())
		flip := c.RNG.Uint32()%2 == 0

		id := w.Spawn(entity.SceneCake)
		w.Transform[id] = ecs.Transform{Translation: t.CreaturePositions[i], Scale: t.CreatureScale}
		w.Sprite[id] = ecs.Sprite{Index: index, FlipX: flip}
		w.Creature[id] = variant

		flame := w.SpawnChild(id)
		w.Transform[flame] = ecs.Transform{Translation: ecs.Vec3{Z: 3}}
		w.Sprite[flame] = ecs.Sprite{Index: t.Flame.Offset, FlipX: flip}
		w.Animation[flame] = ecs.NewAnimation(t.Flame)
		w.Light[flame] = t.FlameLight
		w.IsFlame[flame] = struct{}{}
		w.IsPickable[flame] = struct{}{}
	}
}

// SetupCake resets the lighting and spawns the plate, the cake and maybe the pickle mew
func SetupCake(c *Context) {
	w := c.World
	t := c.Tuning.Cake

	c.Camera.Reset(t.ClearColor, t.Ambient)

	if t.BonusChance > 0 && c.RNG.Uint32()%t.BonusChance == 0 {
		mew := w.Spawn(entity.SceneCake)
		w.Transform[mew] = ecs.Transform{Translation: t.PickleMewPosition}
		w.Sprite[mew] = ecs.Sprite{Index: t.PickleMewIndex}
		w.IsPickleMew[mew] = struct{}{}
		w.IsPickable[mew] = struct{}{}
	}

	plate := w.Spawn(entity.SceneCake)
	w.Transform[plate] = ecs.Transform{Translation: ecs.Vec3{Z: -1}, Scale: t.CakeScale}
	w.Sprite[plate] = ecs.Sprite{Index: t.PlateIndex}

	cake := w.Spawn(entity.SceneCake)
	w.Transform[cake] = ecs.Transform{Scale: t.CakeScale}
	w.Sprite[cake] = ecs.Sprite{Index: t.Cake.Offset}
	w.IsCake[cake] = struct{}{}
	w.IsPickable[cake] = struct{}{}
}
