package ecs

import (
	"image/color"

	"github.com/younwookim/cakegamba/internal/domain/entity"
)

// Vec3 is a world-space vector. Y points up, Z orders drawing (higher on top).
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scaled returns v * s
func (v Vec3) Scaled(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Transform places an entity relative to its parent (or the world if it has none)
type Transform struct {
	Translation Vec3
	Scale       float64 // uniform; 0 is treated as 1
}

// ScaleOrOne returns the scale, treating 0 as 1
func (t Transform) ScaleOrOne() float64 {
	if t.Scale == 0 {
		return 1
	}
	return t.Scale
}

// Sprite draws one atlas cell, or a flat coloured quad when Solid is set
type Sprite struct {
	Index int  // atlas cell
	FlipX bool // mirror horizontally
	Solid bool
	Color color.RGBA // fill for Solid sprites
}

// Light is a 2D point light attached to an entity
type Light struct {
	Radius    float64
	Intensity float64
	Falloff   float64
	Color     color.RGBA
}

// Animation drives Sprite.Index through a clip on a repeating timer
type Animation struct {
	Clip  entity.Clip
	Timer entity.Timer
}

// NewAnimation creates an animation with a repeating timer at the clip's frame time
func NewAnimation(clip entity.Clip) Animation {
	return Animation{
		Clip:  clip,
		Timer: entity.NewTimer(clip.FrameTime, entity.TimerRepeating),
	}
}

// Segment is one piece of a sugar-cane tower
type Segment struct {
	Side   entity.Side
	Lane   int
	Height int
}

// Banner is a transient message that despawns when its timer finishes
type Banner struct {
	Timer entity.Timer
}

// Rect is an axis-aligned screen rectangle in pixels
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the rectangle's center point
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Binding ties a label's text to live session values
type Binding int

const (
	BindNone Binding = iota
	BindScore
	BindBet
)

// Label is screen-space text centered on (X, Y)
type Label struct {
	Text    string
	Prefix  string // static text drawn before bound values
	X, Y    float64
	Size    float64
	Color   color.RGBA
	Binding Binding
}

// Button is a pressable screen-space rectangle
type Button struct {
	Rect      Rect
	Action    entity.Action
	Text      string
	TextSize  float64
	Fill      color.RGBA
	TextColor color.RGBA
}
