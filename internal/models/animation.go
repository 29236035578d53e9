package models

import "encoding/json"

// Animation, transition and effect records are declarative pass-through
// data: the editing core never interprets them, it only stores them for
// the rendering backend.

// Keyframe is a single animated value at a time offset from slide start.
type Keyframe struct {
	TimeOffset float64 `json:"time_offset"`
	Value      float64 `json:"value"`
}

// TextAnimation animates one text element (title or body). It either
// names a preset shorthand or carries explicit keyframes.
type TextAnimation struct {
	Target         string     `json:"target"`
	Property       string     `json:"property"`
	Keyframes      []Keyframe `json:"keyframes,omitempty"`
	Preset         string     `json:"preset,omitempty"`
	PresetDuration float64    `json:"preset_duration"`
}

// AnimationPresets are the recognized preset shorthands.
var AnimationPresets = []string{
	"fade_in", "fade_out", "fade_in_out",
	"slide_left", "slide_right", "slide_up", "slide_down",
	"scale_up", "scale_down",
}

// DefaultTextAnimation returns an animation targeting the title's opacity.
func DefaultTextAnimation() TextAnimation {
	return TextAnimation{Target: "title", Property: "opacity", PresetDuration: 0.5}
}

func (a *TextAnimation) UnmarshalJSON(data []byte) error {
	type plain TextAnimation
	tmp := plain(DefaultTextAnimation())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*a = TextAnimation(tmp)
	return nil
}

// Transition describes how a slide hands over to the next one.
// A zero duration means an instant cut.
type Transition struct {
	Type     string  `json:"type"`
	Duration float64 `json:"duration"`
}

// TransitionTypes are the recognized transition kinds.
var TransitionTypes = []string{
	"cut", "cross_dissolve", "gamma_cross",
	"wipe_single", "wipe_double", "wipe_iris", "wipe_clock",
}

// DefaultTransition returns an instant cut.
func DefaultTransition() Transition {
	return Transition{Type: "cut"}
}

func (t *Transition) UnmarshalJSON(data []byte) error {
	type plain Transition
	tmp := plain(DefaultTransition())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*t = Transition(tmp)
	return nil
}

// Effect is a visual effect applied to a whole slide. Type-specific
// fields are optional and ignored for non-matching types.
type Effect struct {
	Type string `json:"type"`

	// blur
	SizeX *float64 `json:"size_x,omitempty"`
	SizeY *float64 `json:"size_y,omitempty"`

	// glow
	Threshold *float64 `json:"threshold,omitempty"`

	// transform
	TranslateX *float64 `json:"translate_x,omitempty"`
	TranslateY *float64 `json:"translate_y,omitempty"`
	Rotation   *float64 `json:"rotation,omitempty"`
	ScaleX     *float64 `json:"scale_x,omitempty"`
	ScaleY     *float64 `json:"scale_y,omitempty"`

	// speed
	SpeedFactor *float64 `json:"speed_factor,omitempty"`
}
