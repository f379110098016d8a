package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/cakegamba/internal/application/system"
)

func TestFrameInput_JSONOmitsIdleFlag(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 3, X: 10, Y: 20})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":3,"x":10,"y":20}`, string(data))

	data, err = json.Marshal(FrameInput{F: 4, X: 10, Y: 20, P: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":4,"x":10,"y":20,"p":true}`, string(data))
}

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder(42)
	assert.True(t, r.recording)

	r.RecordFrame(system.InputState{X: 640, Y: 360, Pressed: true})
	r.RecordFrame(system.InputState{X: 641, Y: 361})

	data := r.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(42), data.Seed)
	require.Len(t, data.Frames, 2)
	assert.Equal(t, FrameInput{F: 0, X: 640, Y: 360, P: true}, data.Frames[0])
	assert.Equal(t, FrameInput{F: 1, X: 641, Y: 361}, data.Frames[1])
}

func TestRecorder_Stop(t *testing.T) {
	r := NewRecorder(1)
	r.RecordFrame(system.InputState{})
	r.Stop()
	r.RecordFrame(system.InputState{})

	assert.False(t, r.recording)
	assert.Equal(t, 1, r.FrameCount())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder(1)
	err := r.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	r := NewRecorder(7)
	for i := 0; i < 5; i++ {
		r.RecordFrame(system.InputState{X: i, Y: 2 * i, Pressed: i == 3})
	}
	require.NoError(t, r.Save(path))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, r.Data().Seed, loaded.Seed)
	assert.Equal(t, r.Data().Frames, loaded.Frames)
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = LoadReplay(bad)
	assert.ErrorContains(t, err, "failed to decode replay")
}

func TestReplayer_GetInput(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(9, 3, 100, 200, 1))

	assert.Equal(t, system.InputState{X: 100, Y: 200}, replayer.GetInput())
	assert.Equal(t, system.InputState{X: 100, Y: 200, Pressed: true}, replayer.GetInput())
	assert.False(t, replayer.Done())
	assert.Equal(t, system.InputState{X: 100, Y: 200}, replayer.GetInput())
	assert.True(t, replayer.Done())

	// Past the end the pointer is idle
	assert.Equal(t, system.InputState{}, replayer.GetInput())
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestReplayer_Accessors(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(99999, 10, 0, 0))

	assert.Equal(t, int64(99999), replayer.Seed())
	assert.Equal(t, 10, replayer.TotalFrames())
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(12345, 60, 200, 150, 10, 20, 99)

	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(12345), data.Seed)
	require.Len(t, data.Frames, 60)

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.Equal(t, 200, frame.X)
		assert.Equal(t, 150, frame.Y)
		assert.Equal(t, i == 10 || i == 20, frame.P)
	}
}

// Replayer must satisfy the input reader used by the game loop
var _ system.InputReader = (*Replayer)(nil)
