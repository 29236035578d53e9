package segment

import (
	"encoding/json"
	"fmt"
	"os"
)

// Transcript is the transcription collaborator's output: ordered
// segments plus the detected language and total audio duration.
type Transcript struct {
	Segments []Segment `json:"segments"`
	Language string    `json:"language"`
	Duration float64   `json:"duration"`
}

// LoadTranscript reads a transcript JSON file produced by the
// transcription collaborator.
func LoadTranscript(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript %s: %w", path, err)
	}
	var t Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse transcript %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("transcript %s: %w", path, err)
	}
	return &t, nil
}

// Validate checks the collaborator's contract: non-negative timestamps
// and non-decreasing start times across the sequence.
func (t *Transcript) Validate() error {
	prevStart := 0.0
	for i, seg := range t.Segments {
		if seg.Start < 0 || seg.End < 0 {
			return fmt.Errorf("segment %d has a negative timestamp", i)
		}
		if seg.Start < prevStart {
			return fmt.Errorf("segment %d starts at %.2fs, before the previous segment", i, seg.Start)
		}
		prevStart = seg.Start
	}
	return nil
}
