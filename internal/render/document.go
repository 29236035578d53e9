// Package render builds the handoff document for the rendering backend:
// every slide's raw content plus its fully resolved style and render
// data. The backend consumes this document; nothing here renders.
package render

import (
	"github.com/pders01/slidedraft/internal/models"
	"github.com/pders01/slidedraft/internal/style"
	"github.com/pders01/slidedraft/internal/timeline"
)

// SlideView is one slide prepared for rendering.
type SlideView struct {
	ID           string  `json:"id"`
	Order        int     `json:"order"`
	StartTime    float64 `json:"start_time"`
	EndTime      float64 `json:"end_time"`
	Title        string  `json:"title"`
	BodyText     string  `json:"body_text"`
	SpeakerNotes string  `json:"speaker_notes,omitempty"`
	Background   string  `json:"background_image_ref,omitempty"`

	Style      models.Style           `json:"style"`
	Animations []models.TextAnimation `json:"animations,omitempty"`
	Transition models.Transition      `json:"transition"`
	Effects    []models.Effect        `json:"effects,omitempty"`

	ShowTitle bool `json:"show_title"`
	ShowBody  bool `json:"show_body"`
}

// Document is the full render handoff for one timeline.
type Document struct {
	ProjectName string      `json:"project_name,omitempty"`
	SlideCount  int         `json:"slide_count"`
	Slides      []SlideView `json:"slides"`
}

// BuildDocument resolves every slide against the template library. A
// slide without its own animations, transition, or effects inherits the
// template's defaults for those; explicit slide data always wins.
func BuildDocument(projectName string, tl *timeline.Timeline, lib *models.Library) Document {
	doc := Document{
		ProjectName: projectName,
		SlideCount:  len(tl.Slides),
		Slides:      make([]SlideView, 0, len(tl.Slides)),
	}

	for _, s := range tl.Slides {
		view := SlideView{
			ID:           s.ID,
			Order:        s.Order,
			StartTime:    s.StartTime,
			EndTime:      s.EndTime,
			Title:        s.Title,
			BodyText:     s.BodyText,
			SpeakerNotes: s.SpeakerNotes,
			Background:   s.BackgroundImageRef,
			Style:        style.ForSlide(tl.GlobalStyle, lib, s),
			Animations:   s.Animations,
			Transition:   s.Transition,
			Effects:      s.Effects,
			ShowTitle:    true,
			ShowBody:     true,
		}

		if tmpl := lib.Get(s.TemplateID); tmpl != nil {
			view.ShowTitle = tmpl.ShowTitle
			view.ShowBody = tmpl.ShowBody
			if len(view.Animations) == 0 {
				view.Animations = tmpl.Animations
			}
			if view.Transition == models.DefaultTransition() && tmpl.Transition != nil {
				view.Transition = *tmpl.Transition
			}
			if len(view.Effects) == 0 {
				view.Effects = tmpl.Effects
			}
		}

		doc.Slides = append(doc.Slides, view)
	}
	return doc
}
