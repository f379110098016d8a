package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/cakegamba/internal/application/replay"
	"github.com/younwookim/cakegamba/internal/application/system"
	"github.com/younwookim/cakegamba/internal/domain/entity"
	"github.com/younwookim/cakegamba/internal/infrastructure/config"
)

// Screen positions of the buttons at the default 1280x720 layout
var (
	secretGamba = system.InputState{X: 1270, Y: 710, Pressed: true}
	betLeft     = system.InputState{X: 550, Y: 576, Pressed: true}
	betRight    = system.InputState{X: 730, Y: 576, Pressed: true}
	idle        = system.InputState{}
)

func testConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return cfg
}

func quietLogger() *log.Logger {
	return log.New(&bytes.Buffer{})
}

// record builds replay data from a frame-by-frame input script
func record(seed int64, inputs ...system.InputState) replay.ReplayData {
	r := replay.NewRecorder(seed)
	for _, in := range inputs {
		r.RecordFrame(in)
	}
	return r.Data()
}

// bettingSession loads, opens the gamba and alternates bets
func bettingSession(seed int64, bets int) replay.ReplayData {
	inputs := []system.InputState{idle, idle, secretGamba, idle}
	for i := 0; i < bets; i++ {
		if i%2 == 0 {
			inputs = append(inputs, betLeft, idle)
		} else {
			inputs = append(inputs, betRight, idle)
		}
	}
	return record(seed, inputs...)
}

func TestSimulate_IdleEndsOnCake(t *testing.T) {
	summary, err := simulate(testConfig(t), replay.CreateTestReplayData(1, 30, 0, 0), quietLogger())
	require.NoError(t, err)

	assert.Equal(t, 30, summary.Frames)
	assert.Equal(t, entity.SceneCake, summary.Scene)
	assert.Equal(t, uint64(1), summary.Score)
	assert.Equal(t, uint64(1), summary.Bet)
	assert.Equal(t, 0, summary.Towers.Total())
}

func TestSimulate_Betting(t *testing.T) {
	summary, err := simulate(testConfig(t), bettingSession(7, 20), quietLogger())
	require.NoError(t, err)

	assert.Equal(t, entity.SceneGamba, summary.Scene)
	assert.Equal(t, 20, summary.Towers.Total(), "every bet grows exactly one lane")
	assert.GreaterOrEqual(t, summary.Score, uint64(1))
	assert.GreaterOrEqual(t, summary.Bet, uint64(1))
	assert.LessOrEqual(t, summary.Bet, summary.Score)
}

func TestReplaySeedDeterminism(t *testing.T) {
	cfg := testConfig(t)
	data := bettingSession(12345, 30)

	first, err := simulate(cfg, data, quietLogger())
	require.NoError(t, err)
	second, err := simulate(cfg, data, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, first, second, "same recording and seed must end in the same state")
}

func TestRecorderAndReplayCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	r := replay.NewRecorder(99)
	for _, in := range bettingSession(99, 3).Frames {
		r.RecordFrame(system.InputState{X: in.X, Y: in.Y, Pressed: in.P})
	}
	require.NoError(t, r.Save(path))

	want, err := simulate(testConfig(t), r.Data(), quietLogger())
	require.NoError(t, err)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"replay", path, "--log-level", "error"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	require.NoError(t, rootCmd.Execute())

	var expected bytes.Buffer
	printSummary(&expected, want)
	assert.Equal(t, expected.String(), out.String())
	assert.Contains(t, out.String(), "scene:  Gamba")
}

func TestReplayCommand_MissingFile(t *testing.T) {
	rootCmd.SetArgs([]string{"replay", filepath.Join(t.TempDir(), "nope.json"), "--log-level", "error"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	rootCmd.SetErr(&bytes.Buffer{})

	assert.Error(t, rootCmd.Execute())
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug")
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestRecordFilename(t *testing.T) {
	assert.Equal(t, "", recordFilename(""))
	assert.Equal(t, "session.json", recordFilename("session.json"))
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, recordFilename(recordAuto))
}

func TestRecordFlag_BareValue(t *testing.T) {
	flag := rootCmd.Flags().Lookup("record")
	require.NotNil(t, flag)
	assert.Equal(t, recordAuto, flag.NoOptDefVal)
}

func TestResolveSeed(t *testing.T) {
	assert.Equal(t, int64(42), resolveSeed(42))
	assert.NotZero(t, resolveSeed(0))
}
