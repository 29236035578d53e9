package segment

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTranscript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.json")
	doc := `{
		"segments": [
			{"start": 0.0, "end": 2.0, "text": "Hello."},
			{"start": 2.5, "end": 4.0, "text": "World."}
		],
		"language": "en",
		"duration": 4.0
	}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	tr, err := LoadTranscript(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(tr.Segments) != 2 || tr.Language != "en" || tr.Duration != 4.0 {
		t.Errorf("transcript = %+v", tr)
	}
}

func TestLoadTranscriptMissingFile(t *testing.T) {
	if _, err := LoadTranscript(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		segments []Segment
		wantErr  bool
	}{
		{"empty", nil, false},
		{"ordered", []Segment{{Start: 0, End: 1}, {Start: 1, End: 2}}, false},
		{"equal starts", []Segment{{Start: 1, End: 2}, {Start: 1, End: 3}}, false},
		{"negative start", []Segment{{Start: -1, End: 1}}, true},
		{"negative end", []Segment{{Start: 0, End: -1}}, true},
		{"decreasing starts", []Segment{{Start: 2, End: 3}, {Start: 1, End: 2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Transcript{Segments: tt.segments}
			err := tr.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
