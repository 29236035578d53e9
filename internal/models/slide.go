package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// Slide is one unit of the presentation timeline. Order always equals the
// slide's zero-based position in its owning timeline; the timeline
// re-establishes that after every mutation.
type Slide struct {
	ID           string  `json:"id"`
	Order        int     `json:"order"`
	StartTime    float64 `json:"start_time"`
	EndTime      float64 `json:"end_time"`
	Title        string  `json:"title"`
	BodyText     string  `json:"body_text"`
	SpeakerNotes string  `json:"speaker_notes"`

	// BackgroundImageRef is an opaque asset reference set by the caller;
	// empty means no background.
	BackgroundImageRef string `json:"background_image_ref,omitempty"`

	// StyleOverrides, when present, is the highest-priority style scope.
	StyleOverrides *Style `json:"style_overrides,omitempty"`

	// TemplateID references a template in the session's library.
	TemplateID string `json:"template_id,omitempty"`

	// Declarative render data, opaque to the editing core.
	Animations []TextAnimation `json:"animations,omitempty"`
	Transition Transition      `json:"transition"`
	Effects    []Effect        `json:"effects,omitempty"`
}

// NewSlide creates a slide with a fresh id and default render data.
func NewSlide() *Slide {
	return &Slide{
		ID:         newSlideID(),
		Transition: DefaultTransition(),
	}
}

// newSlideID returns the first 8 hex characters of a random UUID.
func newSlideID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// Duration returns the slide's length in seconds.
func (s *Slide) Duration() float64 {
	return s.EndTime - s.StartTime
}

// UnmarshalJSON fills fields introduced after the original schema with
// their defaults when decoding older documents.
func (s *Slide) UnmarshalJSON(data []byte) error {
	type plain Slide
	tmp := plain{Transition: DefaultTransition()}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*s = Slide(tmp)
	return nil
}

// Clone returns a deep copy of the slide.
func (s *Slide) Clone() *Slide {
	out := *s
	if s.StyleOverrides != nil {
		st := s.StyleOverrides.Clone()
		out.StyleOverrides = &st
	}
	if s.Animations != nil {
		out.Animations = make([]TextAnimation, len(s.Animations))
		for i, a := range s.Animations {
			out.Animations[i] = a
			if a.Keyframes != nil {
				out.Animations[i].Keyframes = append([]Keyframe(nil), a.Keyframes...)
			}
		}
	}
	if s.Effects != nil {
		out.Effects = append([]Effect(nil), s.Effects...)
	}
	return &out
}
