package assets

import (
	"bytes"
	"fmt"
	_ "image/png" // atlas decoder
	"io"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/cakegamba/internal/domain/entity"
	"github.com/younwookim/cakegamba/internal/infrastructure/config"
)

// Manager owns the loaded atlas and sounds.
// It also plays sounds, doing nothing until the sounds are loaded.
type Manager struct {
	fsys        fs.FS
	manifest    config.AssetsConfig
	audio       *audio.Context
	placeholder bool

	atlas  *Atlas
	sounds map[entity.Sound][]byte
	loaded bool
}

// NewManager creates a manager reading the manifest's files from fsys.
// audioCtx may be nil to run without sound.
func NewManager(fsys fs.FS, manifest config.AssetsConfig, audioCtx *audio.Context) *Manager {
	return &Manager{
		fsys:     fsys,
		manifest: manifest,
		audio:    audioCtx,
		sounds:   make(map[entity.Sound][]byte),
	}
}

// NewPlaceholderManager creates a manager that generates a coloured atlas and loads no sounds
func NewPlaceholderManager(manifest config.AssetsConfig) *Manager {
	m := NewManager(nil, manifest, nil)
	m.placeholder = true
	return m
}

// Load loads every asset in the manifest.
// Sounds are decoded first so a broken file fails before any GPU work.
func (m *Manager) Load() error {
	if m.loaded {
		return nil
	}
	layout := LayoutFrom(m.manifest.Atlas)

	if m.placeholder {
		atlas, err := NewPlaceholderAtlas(layout)
		if err != nil {
			return fmt.Errorf("failed to build placeholder atlas: %w", err)
		}
		m.atlas = atlas
		m.loaded = true
		return nil
	}

	for sound, name := range map[entity.Sound]string{
		entity.SoundEating:    m.manifest.EatingSound,
		entity.SoundPickleMew: m.manifest.PickleMewSound,
	} {
		pcm, err := m.decodeSound(name)
		if err != nil {
			return err
		}
		m.sounds[sound] = pcm
	}

	img, _, err := ebitenutil.NewImageFromFileSystem(m.fsys, m.manifest.Textures)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", m.manifest.Textures, err)
	}
	atlas, err := NewAtlas(img, layout)
	if err != nil {
		return fmt.Errorf("failed to slice %s: %w", m.manifest.Textures, err)
	}
	m.atlas = atlas
	m.loaded = true
	return nil
}

func (m *Manager) decodeSound(name string) ([]byte, error) {
	data, err := fs.ReadFile(m.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	stream, err := vorbis.DecodeWithSampleRate(m.manifest.SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return pcm, nil
}

// Atlas returns the loaded atlas, or nil before Load succeeds
func (m *Manager) Atlas() *Atlas {
	return m.atlas
}

// Play starts a sound and forgets about it
func (m *Manager) Play(s entity.Sound) {
	if m.audio == nil {
		return
	}
	pcm, ok := m.sounds[s]
	if !ok {
		return
	}
	m.audio.NewPlayerFromBytes(pcm).Play()
}
