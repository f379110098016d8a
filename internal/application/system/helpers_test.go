package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/cakegamba/internal/domain/entity"
	"github.com/younwookim/cakegamba/internal/infrastructure/config"
)

// scriptedRNG returns its values in order, then zeros
type scriptedRNG struct {
	values []uint32
	next   int
}

func (r *scriptedRNG) Uint32() uint32 {
	if r.next >= len(r.values) {
		return 0
	}
	v := r.values[r.next]
	r.next++
	return v
}

type recordingSounds struct {
	played []entity.Sound
}

func (s *recordingSounds) Play(sound entity.Sound) {
	s.played = append(s.played, sound)
}

func testTuning(t *testing.T) Tuning {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return LoadTuning(cfg)
}

func newTestContext(t *testing.T, rng RNG) (*Context, *recordingSounds) {
	t.Helper()
	sounds := &recordingSounds{}
	return NewContext(testTuning(t), rng, sounds, nil), sounds
}
