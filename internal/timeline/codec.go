package timeline

import (
	"encoding/json"
	"fmt"

	"github.com/pders01/slidedraft/internal/models"
)

// Encode serializes the timeline to JSON.
func (t *Timeline) Encode() ([]byte, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode timeline: %w", err)
	}
	return data, nil
}

// Decode deserializes a timeline. Documents written before optional
// fields existed still decode, with those fields defaulted; anything
// structurally invalid is a hard error.
func Decode(data []byte) (*Timeline, error) {
	var t Timeline
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode timeline: %w", err)
	}
	return &t, nil
}

// UnmarshalJSON keeps the global style at its defaults when the stored
// document predates it.
func (t *Timeline) UnmarshalJSON(data []byte) error {
	type plain Timeline
	tmp := plain{GlobalStyle: models.DefaultStyle()}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*t = Timeline(tmp)
	return nil
}
