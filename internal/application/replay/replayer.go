package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/jumper/internal/application/system"
)

// Replayer handles input playback from recorded data
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
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if len(data.Frames) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoFrames)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.RawInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.RawInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.RawInput{
		Left:  fi.L,
		Right: fi.R,
		Jump:  fi.J,
	}, true
}

// Done returns true once every frame was played
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

// EdgeMode returns the edge mode the replay was recorded with
func (r *Replayer) EdgeMode() string {
	return r.data.EdgeMode
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
