package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/cakegamba/internal/application/system"
)

// Replayer plays recorded input back frame by frame.
// It implements system.InputReader; past the last frame it reports no press.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() system.InputState {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{X: fi.X, Y: fi.Y, Pressed: fi.P}
}

// Done reports whether every recorded frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// CreateTestReplayData creates replay data for testing: an idle pointer
// at (x, y) with a press on each listed frame
func CreateTestReplayData(seed int64, frames, x, y int, presses ...int) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      seed,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i, X: x, Y: y}
	}
	for _, f := range presses {
		if f >= 0 && f < frames {
			data.Frames[f].P = true
		}
	}

	return data
}
