package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/cakegamba/internal/domain/entity"
)

// FileName is the config file a Loader reads from its filesystem
const FileName = "game.yaml"

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.yaml on top of the embedded defaults
func (l *Loader) LoadGame() (*GameConfig, error) {
	return l.LoadFile(FileName)
}

// LoadFile loads the named YAML file on top of the embedded defaults
func (l *Loader) LoadFile(name string) (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}

	return cfg, nil
}

// Default returns the embedded default configuration
func Default() (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse embedded defaults: %w", err)
	}
	return &cfg, nil
}

// Load resolves the game configuration.
// Search order: customPath -> ./configs/game.yaml -> embedded default
func Load(customPath string) (*GameConfig, error) {
	if customPath != "" {
		return NewLoader(filepath.Dir(customPath)).LoadFile(filepath.Base(customPath))
	}

	local := NewLoader("configs")
	cfg, err := local.LoadGame()
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg, err = Default()
	if err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// Validate checks values that would otherwise break the game at runtime
func (c *GameConfig) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d",
			c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Assets.Atlas.TileSize <= 0 || c.Assets.Atlas.Cells() <= 0 {
		return errors.New("atlas must have a positive tile size and at least one cell")
	}
	if c.Assets.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.Assets.SampleRate)
	}

	cells := c.Assets.Atlas.Cells()
	for name, p := range map[string]PaletteConfig{
		"cake":     c.Cake.Cake,
		"creature": c.Cake.Creature,
		"flame":    {Index: c.Cake.Flame.Index, Size: c.Cake.Flame.Size},
		"smoke":    {Index: c.Cake.Smoke.Index, Size: c.Cake.Smoke.Size},
		"segment":  c.Gamba.Segment,
	} {
		if p.Size <= 0 {
			return fmt.Errorf("%s palette must not be empty", name)
		}
		if p.Index < 0 || p.Index+p.Size > cells {
			return fmt.Errorf("%s palette [%d, %d) is outside the atlas", name, p.Index, p.Index+p.Size)
		}
	}

	// One position per creature variant; the palette size only limits the looks
	if len(c.Cake.CreaturePositions) != len(entity.Variants) {
		return fmt.Errorf("need %d creature positions, got %d",
			len(entity.Variants), len(c.Cake.CreaturePositions))
	}
	if c.Cake.BonusChance == 0 {
		return errors.New("bonus chance must be at least 1")
	}
	if c.Cake.Flame.FrameTime <= 0 || c.Cake.Smoke.FrameTime <= 0 {
		return errors.New("animation frame times must be positive")
	}
	if c.Gamba.Bankruptcy.Span == 0 {
		return errors.New("bankruptcy span must be at least 1")
	}
	if c.Gamba.StartScore == 0 || c.Gamba.StartBet == 0 || c.Gamba.StartBet > c.Gamba.StartScore {
		return fmt.Errorf("start bet %d must be in [1, %d]", c.Gamba.StartBet, c.Gamba.StartScore)
	}

	return nil
}
