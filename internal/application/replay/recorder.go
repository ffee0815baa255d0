package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/jumper/internal/application/system"
)

// ErrNoFrames is returned when saving a recording with nothing in it
var ErrNoFrames = errors.New("no frames to save")

// Recorder handles input recording
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder
func NewRecorder(edgeMode string, tps int) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			EdgeMode:  edgeMode,
			TPS:       tps,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60 TPS
		},
		recording: true,
	}
}

// RecordFrame records a single tick's input
func (r *Recorder) RecordFrame(input system.RawInput) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameInput{
		F: r.frame,
		L: input.Left,
		R: input.Right,
		J: input.Jump,
	})
	r.frame++
}

// Data returns the recorded replay
func (r *Recorder) Data() ReplayData {
	return r.data
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	data := r.Data()
	if len(data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
