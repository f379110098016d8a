// Package render draws a game context with ebiten: atlas sprites, flat quads,
// point-light glows, labels and buttons.
package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/younwookim/cakegamba/internal/application/system"
	"github.com/younwookim/cakegamba/internal/ecs"
	"github.com/younwookim/cakegamba/internal/infrastructure/assets"
)

// AtlasSource provides the texture atlas once it is loaded
type AtlasSource interface {
	Atlas() *assets.Atlas
}

// Renderer draws the world, lights and UI of a context
type Renderer struct {
	atlas AtlasSource
	font  *text.GoTextFaceSource
	faces map[float64]*text.GoTextFace
}

// NewRenderer creates a renderer using the Go regular font for all text
func NewRenderer(atlas AtlasSource) (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Renderer{
		atlas: atlas,
		font:  src,
		faces: make(map[float64]*text.GoTextFace),
	}, nil
}

// Draw renders the whole frame
func (r *Renderer) Draw(screen *ebiten.Image, c *system.Context) {
	screen.Fill(c.Camera.ClearColor)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	var atlas *assets.Atlas
	if r.atlas != nil {
		atlas = r.atlas.Atlas()
	}
	tile := c.Tuning.TileSize
	if atlas != nil {
		tile = float64(atlas.TileSize())
	}

	for _, id := range ecs.DrawOrder(c.World) {
		r.drawSprite(screen, c, id, atlas, tile, sw, sh)
	}
	r.drawLights(screen, c, sw, sh)

	for _, id := range ecs.Sorted(c.World.Button) {
		r.drawButton(screen, c.World.Button[id])
	}
	for _, id := range ecs.Sorted(c.World.Label) {
		l := c.World.Label[id]
		r.drawText(screen, l.Text, l.X, l.Y, l.Size, l.Color)
	}
}

func (r *Renderer) drawSprite(screen *ebiten.Image, c *system.Context, id ecs.EntityID, atlas *assets.Atlas, tile float64, sw, sh int) {
	sprite := c.World.Sprite[id]
	rect := Placement(c.Camera, c.World.GlobalTransform(id), sprite.Solid, tile, sw, sh)
	if !Visible(rect, sw, sh) {
		return
	}
	ambient := float32(c.Camera.Ambient)

	if sprite.Solid {
		clr := Shade(sprite.Color, c.Camera.Ambient)
		vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), clr, false)
		return
	}
	if atlas == nil {
		return
	}
	cell := atlas.Cell(sprite.Index)
	if cell == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	scale := rect.W / tile
	if sprite.FlipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(tile, 0)
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(rect.X, rect.Y)
	op.ColorScale.Scale(ambient, ambient, ambient, 1)
	screen.DrawImage(cell, op)
}

// drawLights adds a soft glow for every lit point light.
// Glows are skipped in fully lit scenes.
func (r *Renderer) drawLights(screen *ebiten.Image, c *system.Context, sw, sh int) {
	if c.Camera.Ambient >= 1 {
		return
	}
	for _, id := range ecs.Sorted(c.World.Light) {
		light := c.World.Light[id]
		if light.Radius <= 0 {
			continue
		}
		g := c.World.GlobalTransform(id)
		x, y := c.Camera.WorldToScreen(g.Translation.X, g.Translation.Y, sw, sh)

		// Rings from the edge inward, each adding a little more light
		const rings = 6
		for i := rings; i >= 1; i-- {
			radius := light.Radius * float64(i) / rings
			alpha := GlowAlpha(light, float64(i)/rings)
			clr := color.RGBA{R: light.Color.R, G: light.Color.G, B: light.Color.B, A: alpha}
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), premultiply(clr), true)
		}
	}
}

func (r *Renderer) drawButton(screen *ebiten.Image, b ecs.Button) {
	if b.Fill.A > 0 {
		vector.DrawFilledRect(screen, float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.W), float32(b.Rect.H), b.Fill, false)
	}
	cx, cy := b.Rect.Center()
	r.drawText(screen, b.Text, cx, cy, b.TextSize, b.TextColor)
}

// drawText draws s centered on (x, y)
func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y, size float64, clr color.RGBA) {
	if s == "" || size <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, r.face(size), op)
}

func (r *Renderer) face(size float64) *text.GoTextFace {
	f, ok := r.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: r.font, Size: size}
		r.faces[size] = f
	}
	return f
}

// Placement returns the screen rectangle covered by a sprite with the given global transform.
// Atlas sprites are one tile wide before scaling; solid quads are one pixel.
func Placement(cam *system.Camera, g ecs.Transform, solid bool, tile float64, sw, sh int) ecs.Rect {
	size := tile * g.Scale
	if solid {
		size = g.Scale
	}
	cx, cy := cam.WorldToScreen(g.Translation.X, g.Translation.Y, sw, sh)
	return ecs.Rect{X: cx - size/2, Y: cy - size/2, W: size, H: size}
}

// Visible reports whether the rectangle overlaps the screen
func Visible(r ecs.Rect, sw, sh int) bool {
	return r.X < float64(sw) && r.Y < float64(sh) && r.X+r.W > 0 && r.Y+r.H > 0
}

// Shade darkens a colour by the ambient brightness
func Shade(c color.RGBA, ambient float64) color.RGBA {
	if ambient >= 1 {
		return c
	}
	if ambient < 0 {
		ambient = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * ambient),
		G: uint8(float64(c.G) * ambient),
		B: uint8(float64(c.B) * ambient),
		A: c.A,
	}
}

// GlowAlpha is the alpha of a glow ring at fraction t of the radius.
// Higher intensity brightens the glow; higher falloff fades it faster towards the edge.
func GlowAlpha(l ecs.Light, t float64) uint8 {
	if t <= 0 || t > 1 {
		return 0
	}
	base := float64(l.Color.A) / 255
	strength := base * l.Intensity / (1 + l.Falloff*t*t)
	a := strength * 255 / 6
	if a > 255 {
		a = 255
	}
	return uint8(a)
}

func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
