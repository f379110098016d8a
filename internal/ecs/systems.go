package ecs

import (
	"cmp"
	"slices"
)

// UpdateAnimations ticks every animation and advances its sprite when the timer fires.
// Flame and smoke share this routine; the clip decides the frame range.
func UpdateAnimations(w *World, dt float64) {
	for _, id := range Sorted(w.Animation) {
		anim := w.Animation[id]
		anim.Timer.Tick(dt)
		w.Animation[id] = anim

		sprite, ok := w.Sprite[id]
		if !ok || !anim.Timer.Finished() {
			continue
		}
		sprite.Index = anim.Clip.Next(sprite.Index)
		w.Sprite[id] = sprite
	}
}

// UpdateBanners ticks banner timers and destroys finished banners.
// Returns the number of banners removed.
func UpdateBanners(w *World, dt float64) int {
	removed := 0
	for _, id := range Sorted(w.Banner) {
		banner := w.Banner[id]
		banner.Timer.Tick(dt)
		if banner.Timer.Finished() {
			w.DestroyEntity(id)
			removed++
			continue
		}
		w.Banner[id] = banner
	}
	return removed
}

// DrawOrder returns sprite entities sorted back to front (by global Z, then creation order)
func DrawOrder(w *World) []EntityID {
	ids := Sorted(w.Sprite)
	z := make(map[EntityID]float64, len(ids))
	for _, id := range ids {
		z[id] = w.GlobalTransform(id).Translation.Z
	}
	slices.SortStableFunc(ids, func(a, b EntityID) int {
		return cmp.Compare(z[a], z[b])
	})
	return ids
}

// PickAt returns the top-most sprite whose bounds contain the world point,
// if it is pickable. Sprites that are not pickable still block the press.
// tileSize is the unscaled edge length of one atlas cell; solid quads are one unit.
func PickAt(w *World, x, y, tileSize float64) (EntityID, bool) {
	order := DrawOrder(w)
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		g := w.GlobalTransform(id)
		half := tileSize * g.Scale / 2
		if w.Sprite[id].Solid {
			half = g.Scale / 2
		}
		if x < g.Translation.X-half || x >= g.Translation.X+half ||
			y < g.Translation.Y-half || y >= g.Translation.Y+half {
			continue
		}
		if _, ok := w.IsPickable[id]; !ok {
			return 0, false
		}
		return id, true
	}
	return 0, false
}

// ButtonAt returns the button under the screen point, preferring the newest one
func ButtonAt(w *World, x, y float64) (EntityID, bool) {
	ids := Sorted(w.Button)
	for i := len(ids) - 1; i >= 0; i-- {
		if w.Button[ids[i]].Rect.Contains(x, y) {
			return ids[i], true
		}
	}
	return 0, false
}
