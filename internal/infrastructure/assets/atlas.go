// Package assets loads the texture atlas and the sound cues named in the asset manifest.
package assets

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/cakegamba/internal/infrastructure/config"
)

// Layout is the grid geometry of a texture atlas
type Layout struct {
	TileSize int
	Columns  int
	Rows     int
}

// LayoutFrom converts the atlas section of the manifest
func LayoutFrom(cfg config.AtlasConfig) Layout {
	return Layout{TileSize: cfg.TileSize, Columns: cfg.Columns, Rows: cfg.Rows}
}

// Cells returns the number of cells in the grid
func (l Layout) Cells() int {
	return l.Columns * l.Rows
}

// Size returns the pixel size an image needs to hold the whole grid
func (l Layout) Size() (w, h int) {
	return l.Columns * l.TileSize, l.Rows * l.TileSize
}

// CellRect returns the pixel rectangle of a cell, row-major from the top-left.
// ok is false for indices outside the grid.
func (l Layout) CellRect(index int) (r image.Rectangle, ok bool) {
	if index < 0 || index >= l.Cells() {
		return image.Rectangle{}, false
	}
	x := (index % l.Columns) * l.TileSize
	y := (index / l.Columns) * l.TileSize
	return image.Rect(x, y, x+l.TileSize, y+l.TileSize), true
}

// Fits reports whether an image of the given bounds holds the whole grid
func (l Layout) Fits(bounds image.Rectangle) bool {
	w, h := l.Size()
	return bounds.Dx() >= w && bounds.Dy() >= h
}

// Atlas is a texture atlas sliced into equally sized cells
type Atlas struct {
	layout Layout
	cells  []*ebiten.Image
}

// NewAtlas slices img into cells according to layout
func NewAtlas(img *ebiten.Image, layout Layout) (*Atlas, error) {
	if !layout.Fits(img.Bounds()) {
		w, h := layout.Size()
		return nil, fmt.Errorf("atlas image is %dx%d, layout needs %dx%d",
			img.Bounds().Dx(), img.Bounds().Dy(), w, h)
	}

	cells := make([]*ebiten.Image, layout.Cells())
	for i := range cells {
		r, _ := layout.CellRect(i)
		cells[i] = img.SubImage(r).(*ebiten.Image)
	}
	return &Atlas{layout: layout, cells: cells}, nil
}

// Cell returns the image of one cell, or nil if the index is outside the atlas
func (a *Atlas) Cell(index int) *ebiten.Image {
	if index < 0 || index >= len(a.cells) {
		return nil
	}
	return a.cells[index]
}

// TileSize returns the edge length of one cell in pixels
func (a *Atlas) TileSize() int {
	return a.layout.TileSize
}

// PlaceholderColor is the flat colour used for a cell of the generated atlas.
// Each atlas row gets its own hue so neighbouring palettes stay distinguishable.
func PlaceholderColor(index, columns int) color.RGBA {
	row, col := index/columns, index%columns
	return color.RGBA{
		R: uint8(60 + (row*53)%196),
		G: uint8(60 + (row*97+col*17)%196),
		B: uint8(60 + (row*29+col*41)%196),
		A: 255,
	}
}

// NewPlaceholderAtlas generates an atlas of flat coloured cells.
// It stands in for textures.png when running without the art files.
func NewPlaceholderAtlas(layout Layout) (*Atlas, error) {
	w, h := layout.Size()
	img := ebiten.NewImage(w, h)
	for i := 0; i < layout.Cells(); i++ {
		r, _ := layout.CellRect(i)
		// one pixel border keeps cells apart when scaled up
		inner := r.Inset(1)
		img.SubImage(inner).(*ebiten.Image).Fill(PlaceholderColor(i, layout.Columns))
	}
	return NewAtlas(img, layout)
}
