package loading

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/cakegamba/internal/application/system"
	"github.com/younwookim/cakegamba/internal/application/ui"
	"github.com/younwookim/cakegamba/internal/domain/entity"
	"github.com/younwookim/cakegamba/internal/infrastructure/config"
)

type fakeLoader struct {
	err   error
	calls int
}

func (f *fakeLoader) Load() error {
	f.calls++
	return f.err
}

func newTestContext(t *testing.T) *system.Context {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return system.NewContext(system.LoadTuning(cfg), rand.New(rand.NewSource(1)), nil, nil)
}

func labels(c *system.Context) []string {
	var out []string
	for _, l := range c.World.Label {
		out = append(out, l.Text)
	}
	return out
}

func TestLoading_Success(t *testing.T) {
	c := newTestContext(t)
	loader := &fakeLoader{}
	l := New(c, loader, nil)

	l.OnEnter()
	assert.Equal(t, entity.SceneLoading, l.ID())
	assert.Equal(t, []string{ui.LoadingText}, labels(c))

	next, err := l.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Equal(t, entity.SceneLoading, next, "message is shown for a frame first")
	assert.Equal(t, 0, loader.calls)

	next, err = l.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Equal(t, entity.SceneCake, next)
	assert.Equal(t, 1, loader.calls)
	assert.NoError(t, l.err)

	l.OnExit()
	assert.Equal(t, 0, c.World.Count())
}

func TestLoading_Failure(t *testing.T) {
	c := newTestContext(t)
	loader := &fakeLoader{err: errors.New("failed to read textures.png: file does not exist")}
	l := New(c, loader, nil)
	l.OnEnter()

	for i := 0; i < 10; i++ {
		next, err := l.Update(1.0 / 60.0)
		require.NoError(t, err)
		assert.Equal(t, entity.SceneLoading, next, "a failed load never reaches the cake")
	}

	assert.Equal(t, 1, loader.calls, "no retry")
	assert.ErrorIs(t, l.err, loader.err)
	assert.ElementsMatch(t, []string{ui.LoadingText, loader.err.Error()}, labels(c))
}
