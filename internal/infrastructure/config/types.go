// Package config provides YAML-based configuration loading for the card.
package config

import "image/color"

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Assets  AssetsConfig  `yaml:"assets"`
	Cake    CakeConfig    `yaml:"cake"`
	Gamba   GambaConfig   `yaml:"gamba"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
	Title        string `yaml:"title"`
}

// AssetsConfig is the asset manifest: file names inside Dir and the atlas layout
type AssetsConfig struct {
	Dir            string      `yaml:"dir"`
	Textures       string      `yaml:"textures"`
	EatingSound    string      `yaml:"eating_sound"`
	PickleMewSound string      `yaml:"pickle_mew_sound"`
	SampleRate     int         `yaml:"sample_rate"`
	Atlas          AtlasConfig `yaml:"atlas"`
}

type AtlasConfig struct {
	TileSize int `yaml:"tile_size"`
	Columns  int `yaml:"columns"`
	Rows     int `yaml:"rows"`
}

// Cells returns the number of cells in the atlas grid
func (a AtlasConfig) Cells() int {
	return a.Columns * a.Rows
}

type CakeConfig struct {
	ClearColor        ColorConfig      `yaml:"clear_color"`
	Ambient           float64          `yaml:"ambient"`
	Title             string           `yaml:"title"`
	TitleColor        ColorConfig      `yaml:"title_color"`
	Cake              PaletteConfig    `yaml:"cake"`
	CakeScale         float64          `yaml:"cake_scale"`
	PlateIndex        int              `yaml:"plate_index"`
	PickleMewIndex    int              `yaml:"pickle_mew_index"`
	PickleMewPosition PositionConfig   `yaml:"pickle_mew_position"`
	BonusChance       uint32           `yaml:"bonus_chance"` // 1 in N
	Creature          PaletteConfig    `yaml:"creature"`
	CreatureScale     float64          `yaml:"creature_scale"`
	CreaturePositions []PositionConfig `yaml:"creature_positions"`
	Flame             ClipConfig       `yaml:"flame"`
	Smoke             ClipConfig       `yaml:"smoke"`
	FlameLight        LightConfig      `yaml:"flame_light"`
}

type GambaConfig struct {
	ClearColor     ColorConfig      `yaml:"clear_color"`
	GroundColor    ColorConfig      `yaml:"ground_color"`
	TextColor      ColorConfig      `yaml:"text_color"`
	BannerColor    ColorConfig      `yaml:"banner_color"`
	Ambient        float64          `yaml:"ambient"`
	Segment        PaletteConfig    `yaml:"segment"`
	SegmentSize    float64          `yaml:"segment_size"`
	SegmentScale   float64          `yaml:"segment_scale"`
	SignIndex      int              `yaml:"sign_index"`
	PanDuration    float64          `yaml:"pan_duration"`    // seconds
	BannerDuration float64          `yaml:"banner_duration"` // seconds
	Bankruptcy     BankruptcyConfig `yaml:"bankruptcy"`
	StartScore     uint64           `yaml:"start_score"`
	StartBet       uint64           `yaml:"start_bet"`
}

// BankruptcyConfig draws the new score from [Min, Min+Span)
type BankruptcyConfig struct {
	Min  uint64 `yaml:"min"`
	Span uint64 `yaml:"span"`
}

type PaletteConfig struct {
	Index int `yaml:"index"`
	Size  int `yaml:"size"`
}

type ClipConfig struct {
	Index     int     `yaml:"index"`
	Size      int     `yaml:"size"`
	FrameTime float64 `yaml:"frame_time"` // seconds
}

type LightConfig struct {
	Radius    float64     `yaml:"radius"`
	Intensity float64     `yaml:"intensity"`
	Falloff   float64     `yaml:"falloff"`
	Color     ColorConfig `yaml:"color"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColorConfig struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// RGBA converts the config color to color.RGBA
func (c ColorConfig) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
