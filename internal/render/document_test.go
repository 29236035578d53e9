package render

import (
	"testing"

	"github.com/pders01/slidedraft/internal/models"
	"github.com/pders01/slidedraft/internal/timeline"
)

func TestBuildDocumentResolvesStyles(t *testing.T) {
	tl := timeline.New()
	tl.GlobalStyle.FontColor = "#AAAAAA"

	plain := models.NewSlide()
	plain.BodyText = "global styled"
	tl.Add(plain)

	overridden := models.NewSlide()
	ov := models.DefaultStyle()
	ov.FontColor = "#CCCCCC"
	overridden.StyleOverrides = &ov
	tl.Add(overridden)

	doc := BuildDocument("demo", tl, models.NewLibrary())
	if doc.ProjectName != "demo" || doc.SlideCount != 2 {
		t.Fatalf("document header = %q/%d", doc.ProjectName, doc.SlideCount)
	}
	if doc.Slides[0].Style.FontColor != "#AAAAAA" {
		t.Errorf("first slide color = %q", doc.Slides[0].Style.FontColor)
	}
	if doc.Slides[1].Style.FontColor != "#CCCCCC" {
		t.Errorf("second slide color = %q", doc.Slides[1].Style.FontColor)
	}
}

func TestBuildDocumentTemplateInheritance(t *testing.T) {
	lib := models.NewLibrary()
	tpl := models.NewTemplate("lower-third", "Lower third")
	tpl.ShowTitle = false
	tpl.Animations = []models.TextAnimation{{Target: "body", Property: "opacity", Preset: "fade_in", PresetDuration: 0.5}}
	tpl.Transition = &models.Transition{Type: "cross_dissolve", Duration: 0.4}
	lib.Add(tpl)

	tl := timeline.New()
	inheriting := models.NewSlide()
	inheriting.TemplateID = "lower-third"
	tl.Add(inheriting)

	explicit := models.NewSlide()
	explicit.TemplateID = "lower-third"
	explicit.Animations = []models.TextAnimation{{Target: "title", Property: "position_y", PresetDuration: 1.0}}
	explicit.Transition = models.Transition{Type: "wipe_iris", Duration: 1.0}
	tl.Add(explicit)

	doc := BuildDocument("", tl, lib)

	inh := doc.Slides[0]
	if inh.ShowTitle || !inh.ShowBody {
		t.Errorf("visibility = %v/%v", inh.ShowTitle, inh.ShowBody)
	}
	if len(inh.Animations) != 1 || inh.Animations[0].Preset != "fade_in" {
		t.Errorf("inherited animations = %+v", inh.Animations)
	}
	if inh.Transition.Type != "cross_dissolve" {
		t.Errorf("inherited transition = %+v", inh.Transition)
	}

	exp := doc.Slides[1]
	if len(exp.Animations) != 1 || exp.Animations[0].Property != "position_y" {
		t.Errorf("explicit animations overridden: %+v", exp.Animations)
	}
	if exp.Transition.Type != "wipe_iris" {
		t.Errorf("explicit transition overridden: %+v", exp.Transition)
	}
}

func TestBuildDocumentDefaultsWithoutTemplate(t *testing.T) {
	tl := timeline.New()
	s := models.NewSlide()
	s.Title = "Visible"
	tl.Add(s)

	doc := BuildDocument("", tl, models.NewLibrary())
	v := doc.Slides[0]
	if !v.ShowTitle || !v.ShowBody {
		t.Errorf("visibility = %v/%v; want both true", v.ShowTitle, v.ShowBody)
	}
	if v.Transition.Type != "cut" {
		t.Errorf("transition = %q", v.Transition.Type)
	}
}

func TestBuildDocumentEmptyTimeline(t *testing.T) {
	doc := BuildDocument("empty", timeline.New(), models.NewLibrary())
	if doc.SlideCount != 0 || len(doc.Slides) != 0 {
		t.Errorf("document = %+v", doc)
	}
}
