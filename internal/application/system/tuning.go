package system

import (
	"image/color"

	"github.com/younwookim/cakegamba/internal/domain/entity"
	"github.com/younwookim/cakegamba/internal/ecs"
	"github.com/younwookim/cakegamba/internal/infrastructure/config"
)

// Tuning is the game configuration converted to domain values
type Tuning struct {
	ScreenWidth  float64
	ScreenHeight float64
	TileSize     float64
	Cake         CakeTuning
	Gamba        GambaTuning
}

// CakeTuning holds the cake scene's look, layout and bonus roll
type CakeTuning struct {
	ClearColor        color.RGBA
	Ambient           float64
	Title             string
	TitleColor        color.RGBA
	Cake              entity.Palette
	CakeScale         float64
	PlateIndex        int
	PickleMewIndex    int
	PickleMewPosition ecs.Vec3
	BonusChance       uint32
	Creature          entity.Palette
	CreatureScale     float64
	CreaturePositions []ecs.Vec3
	Flame             entity.Clip
	Smoke             entity.Clip
	FlameLight        ecs.Light
}

// GambaTuning holds the gamba board's look, timings and wallet rules
type GambaTuning struct {
	ClearColor     color.RGBA
	GroundColor    color.RGBA
	TextColor      color.RGBA
	BannerColor    color.RGBA
	Ambient        float64
	Segment        entity.Palette
	SegmentSize    float64
	SegmentScale   float64
	SignIndex      int
	PanDuration    float64
	BannerDuration float64
	BankruptcyMin  uint64
	BankruptcySpan uint64
	StartScore     uint64
	StartBet       uint64
}

// LoadTuning converts a GameConfig into Tuning
func LoadTuning(cfg *config.GameConfig) Tuning {
	positions := make([]ecs.Vec3, len(cfg.Cake.CreaturePositions))
	for i, p := range cfg.Cake.CreaturePositions {
		positions[i] = ecs.Vec3{X: p.X, Y: p.Y, Z: 2}
	}

	return Tuning{
		ScreenWidth:  float64(cfg.Display.ScreenWidth),
		ScreenHeight: float64(cfg.Display.ScreenHeight),
		TileSize:     float64(cfg.Assets.Atlas.TileSize),
		Cake: CakeTuning{
			ClearColor:        cfg.Cake.ClearColor.RGBA(),
			Ambient:           cfg.Cake.Ambient,
			Title:             cfg.Cake.Title,
			TitleColor:        cfg.Cake.TitleColor.RGBA(),
			Cake:              palette(cfg.Cake.Cake),
			CakeScale:         cfg.Cake.CakeScale,
			PlateIndex:        cfg.Cake.PlateIndex,
			PickleMewIndex:    cfg.Cake.PickleMewIndex,
			PickleMewPosition: ecs.Vec3{X: cfg.Cake.PickleMewPosition.X, Y: cfg.Cake.PickleMewPosition.Y, Z: 1},
			BonusChance:       cfg.Cake.BonusChance,
			Creature:          palette(cfg.Cake.Creature),
			CreatureScale:     cfg.Cake.CreatureScale,
			CreaturePositions: positions,
			Flame:             clip(cfg.Cake.Flame),
			Smoke:             clip(cfg.Cake.Smoke),
			FlameLight: ecs.Light{
				Radius:    cfg.Cake.FlameLight.Radius,
				Intensity: cfg.Cake.FlameLight.Intensity,
				Falloff:   cfg.Cake.FlameLight.Falloff,
				Color:     cfg.Cake.FlameLight.Color.RGBA(),
			},
		},
		Gamba: GambaTuning{
			ClearColor:     cfg.Gamba.ClearColor.RGBA(),
			GroundColor:    cfg.Gamba.GroundColor.RGBA(),
			TextColor:      cfg.Gamba.TextColor.RGBA(),
			BannerColor:    cfg.Gamba.BannerColor.RGBA(),
			Ambient:        cfg.Gamba.Ambient,
			Segment:        palette(cfg.Gamba.Segment),
			SegmentSize:    cfg.Gamba.SegmentSize,
			SegmentScale:   cfg.Gamba.SegmentScale,
			SignIndex:      cfg.Gamba.SignIndex,
			PanDuration:    cfg.Gamba.PanDuration,
			BannerDuration: cfg.Gamba.BannerDuration,
			BankruptcyMin:  cfg.Gamba.Bankruptcy.Min,
			BankruptcySpan: cfg.Gamba.Bankruptcy.Span,
			StartScore:     cfg.Gamba.StartScore,
			StartBet:       cfg.Gamba.StartBet,
		},
	}
}

func palette(p config.PaletteConfig) entity.Palette {
	return entity.Palette{Offset: p.Index, Size: p.Size}
}

func clip(c config.ClipConfig) entity.Clip {
	return entity.Clip{Palette: entity.Palette{Offset: c.Index, Size: c.Size}, FrameTime: c.FrameTime}
}
