package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/gladiator/internal/domain/entity"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
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

// Next returns the input and frame time for the current frame and advances
func (r *Replayer) Next() (entity.Input, float64, bool) {
	if r.frame >= len(r.data.Frames) {
		return entity.Input{}, 0, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), fi.DT, true
}

// Done reports whether every frame has been played
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

// Data returns the replay being played
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing: walk forward, then idle
func CreateTestReplayData(walkFrames, idleFrames int, dt float64) ReplayData {
	data := ReplayData{
		Version:   Version,
		Arena:     "test",
		FixedRate: 50,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, 0, walkFrames+idleFrames),
	}

	for i := 0; i < walkFrames+idleFrames; i++ {
		fi := FrameInput{F: i, DT: dt}
		if i < walkFrames {
			fi.MY = 1
		}
		data.Frames = append(data.Frames, fi)
	}

	return data
}
