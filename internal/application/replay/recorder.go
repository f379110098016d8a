package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/cakegamba/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameInput{
		F: r.frame,
		X: input.X,
		Y: input.Y,
		P: input.Pressed,
	})
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded replay data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
