package ecs

import (
	"maps"
	"slices"

	"github.com/younwookim/cakegamba/internal/domain/entity"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID
	alive  map[EntityID]struct{}

	// Components
	Transform map[EntityID]Transform
	Sprite    map[EntityID]Sprite
	Light     map[EntityID]Light
	Animation map[EntityID]Animation
	Parent    map[EntityID]EntityID
	Marker    map[EntityID]entity.Scene // owning scene
	Creature  map[EntityID]entity.Variant
	Segment   map[EntityID]Segment
	Banner    map[EntityID]Banner
	Label     map[EntityID]Label
	Button    map[EntityID]Button

	// Tags
	IsPickable  map[EntityID]struct{}
	IsCake      map[EntityID]struct{}
	IsFlame     map[EntityID]struct{}
	IsPickleMew map[EntityID]struct{}
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:      1, // 0 is "nil"
		alive:       make(map[EntityID]struct{}),
		Transform:   make(map[EntityID]Transform),
		Sprite:      make(map[EntityID]Sprite),
		Light:       make(map[EntityID]Light),
		Animation:   make(map[EntityID]Animation),
		Parent:      make(map[EntityID]EntityID),
		Marker:      make(map[EntityID]entity.Scene),
		Creature:    make(map[EntityID]entity.Variant),
		Segment:     make(map[EntityID]Segment),
		Banner:      make(map[EntityID]Banner),
		Label:       make(map[EntityID]Label),
		Button:      make(map[EntityID]Button),
		IsPickable:  make(map[EntityID]struct{}),
		IsCake:      make(map[EntityID]struct{}),
		IsFlame:     make(map[EntityID]struct{}),
		IsPickleMew: make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = struct{}{}
	return id
}

// Spawn creates an entity owned by the given scene
func (w *World) Spawn(owner entity.Scene) EntityID {
	id := w.NewEntity()
	w.Marker[id] = owner
	return id
}

// SpawnChild creates an entity attached to parent.
// Children are destroyed together with their parent.
func (w *World) SpawnChild(parent EntityID) EntityID {
	id := w.NewEntity()
	w.Parent[id] = parent
	return id
}

// Exists reports whether the entity has been created and not destroyed
func (w *World) Exists(id EntityID) bool {
	_, ok := w.alive[id]
	return ok
}

// Count returns the number of live entities
func (w *World) Count() int {
	return len(w.alive)
}

// Children returns the direct children of an entity in creation order
func (w *World) Children(id EntityID) []EntityID {
	var children []EntityID
	for child, parent := range w.Parent {
		if parent == id {
			children = append(children, child)
		}
	}
	slices.Sort(children)
	return children
}

// DestroyEntity removes an entity, its components and all its descendants
func (w *World) DestroyEntity(id EntityID) {
	for _, child := range w.Children(id) {
		w.DestroyEntity(child)
	}

	delete(w.alive, id)
	delete(w.Transform, id)
	delete(w.Sprite, id)
	delete(w.Light, id)
	delete(w.Animation, id)
	delete(w.Parent, id)
	delete(w.Marker, id)
	delete(w.Creature, id)
	delete(w.Segment, id)
	delete(w.Banner, id)
	delete(w.Label, id)
	delete(w.Button, id)
	delete(w.IsPickable, id)
	delete(w.IsCake, id)
	delete(w.IsFlame, id)
	delete(w.IsPickleMew, id)
}

// DespawnScene destroys every entity owned by the scene and returns how many roots were removed
func (w *World) DespawnScene(scene entity.Scene) int {
	var roots []EntityID
	for id, owner := range w.Marker {
		if owner == scene {
			roots = append(roots, id)
		}
	}
	for _, id := range roots {
		w.DestroyEntity(id)
	}
	return len(roots)
}

// DespawnCreatures destroys all creatures of the given variants and returns how many were removed
func (w *World) DespawnCreatures(variants ...entity.Variant) int {
	var doomed []EntityID
	for id, v := range w.Creature {
		if slices.Contains(variants, v) {
			doomed = append(doomed, id)
		}
	}
	for _, id := range doomed {
		w.DestroyEntity(id)
	}
	return len(doomed)
}

// DespawnBanners destroys every banner and returns how many were removed
func (w *World) DespawnBanners() int {
	doomed := slices.Collect(maps.Keys(w.Banner))
	for _, id := range doomed {
		w.DestroyEntity(id)
	}
	return len(doomed)
}

// CountCreatures returns the number of live creatures of a variant
func (w *World) CountCreatures(v entity.Variant) int {
	n := 0
	for _, cv := range w.Creature {
		if cv == v {
			n++
		}
	}
	return n
}

// CountOwned returns the number of live entities owned by the scene, not counting children
func (w *World) CountOwned(scene entity.Scene) int {
	n := 0
	for _, owner := range w.Marker {
		if owner == scene {
			n++
		}
	}
	return n
}

// GlobalTransform composes an entity's transform with its ancestors'
func (w *World) GlobalTransform(id EntityID) Transform {
	local := w.Transform[id]
	parent, ok := w.Parent[id]
	if !ok {
		return Transform{Translation: local.Translation, Scale: local.ScaleOrOne()}
	}
	pg := w.GlobalTransform(parent)
	return Transform{
		Translation: pg.Translation.Add(local.Translation.Scaled(pg.Scale)),
		Scale:       pg.Scale * local.ScaleOrOne(),
	}
}

// Sorted returns the keys of a component map in creation order
func Sorted[T any](m map[EntityID]T) []EntityID {
	return slices.Sorted(maps.Keys(m))
}
