package entity

// Variant identifies one of the five decorative creatures around the cake.
// Despawning works per variant, so each spawn slot has its own variant.
type Variant int

const (
	Variant1 Variant = iota + 1
	Variant2
	Variant3
	Variant4
	Variant5
)

// Variants lists all creature variants in spawn order
var Variants = [...]Variant{Variant1, Variant2, Variant3, Variant4, Variant5}

// Palette is a contiguous run of atlas cells
type Palette struct {
	Offset int // first atlas index
	Size   int // number of cells
}

// Contains reports whether the atlas index belongs to the palette
func (p Palette) Contains(index int) bool {
	return index >= p.Offset && index < p.Offset+p.Size
}

// Pick maps a random draw onto an atlas index inside the palette
func (p Palette) Pick(draw uint32) int {
	if p.Size <= 0 {
		return p.Offset
	}
	return p.Offset + int(draw%uint32(p.Size))
}

// Next returns the index following index, wrapping back to Offset.
// Indices outside the palette restart at Offset.
func (p Palette) Next(index int) int {
	if p.Size <= 0 || !p.Contains(index) {
		return p.Offset
	}
	return (index+1-p.Offset)%p.Size + p.Offset
}

// Clip is a looping animation over a palette at a fixed frame time
type Clip struct {
	Palette
	FrameTime float64 // seconds per frame
}
