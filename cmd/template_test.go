package cmd

import (
	"testing"

	"github.com/pders01/slidedraft/internal/testutil"
)

func resetTemplateFlags() {
	templateDescription = ""
	templatePreset = ""
	templateFromGlobal = false
}

func TestTemplateAddWithPreset(t *testing.T) {
	p := testutil.NewTempProject(t)
	projectDir = p.Dir
	p.SeedDeck("slide")

	resetTemplateFlags()
	templatePreset = "youtube"
	templateDescription = "Big bold titles"
	if err := runTemplateAdd(nil, []string{"yt", "YouTube look"}); err != nil {
		t.Fatalf("template add failed: %v", err)
	}

	sess := p.LoadSession()
	tmpl := sess.Templates.Get("yt")
	if tmpl == nil {
		t.Fatal("template not stored")
	}
	if tmpl.Style == nil || tmpl.Style.FontSizeTitle != 80 {
		t.Errorf("template style = %+v", tmpl.Style)
	}
	if tmpl.Description != "Big bold titles" {
		t.Errorf("description = %q", tmpl.Description)
	}
	if !tmpl.ShowTitle || !tmpl.ShowBody {
		t.Error("visibility defaults wrong")
	}
}

func TestTemplateAddFromGlobal(t *testing.T) {
	p := testutil.NewTempProject(t)
	projectDir = p.Dir
	sess := p.SeedDeck("slide")
	sess.Deck.GlobalStyle.FontColor = "#FFD700"
	p.SaveSession(sess)

	resetTemplateFlags()
	templateFromGlobal = true
	if err := runTemplateAdd(nil, []string{"gold", "Golden"}); err != nil {
		t.Fatalf("template add failed: %v", err)
	}

	tmpl := p.LoadSession().Templates.Get("gold")
	if tmpl == nil || tmpl.Style == nil || tmpl.Style.FontColor != "#FFD700" {
		t.Errorf("template = %+v", tmpl)
	}
}

func TestTemplateAddConflictingFlags(t *testing.T) {
	p := testutil.NewTempProject(t)
	projectDir = p.Dir
	p.SeedDeck("slide")

	resetTemplateFlags()
	templatePreset = "youtube"
	templateFromGlobal = true
	if err := runTemplateAdd(nil, []string{"x", "X"}); err == nil {
		t.Error("expected error for --preset together with --from-global")
	}
}

func TestTemplateAssignAndClear(t *testing.T) {
	p := testutil.NewTempProject(t)
	projectDir = p.Dir
	sess := p.SeedDeck("slide")
	id := sess.Deck.Slides[0].ID

	resetTemplateFlags()
	if err := runTemplateAdd(nil, []string{"plain", "Plain"}); err != nil {
		t.Fatalf("template add failed: %v", err)
	}

	if err := runTemplateAssign(nil, []string{id, "plain"}); err != nil {
		t.Fatalf("template assign failed: %v", err)
	}
	if got := p.LoadSession().Deck.Get(id).TemplateID; got != "plain" {
		t.Errorf("template id = %q", got)
	}

	if err := runTemplateAssign(nil, []string{id, "missing"}); err == nil {
		t.Error("expected error for unknown template id")
	}
	if err := runTemplateAssign(nil, []string{"deadbeef", "plain"}); err == nil {
		t.Error("expected error for unknown slide id")
	}

	if err := runTemplateClear(nil, []string{id}); err != nil {
		t.Fatalf("template clear failed: %v", err)
	}
	if got := p.LoadSession().Deck.Get(id).TemplateID; got != "" {
		t.Errorf("template id = %q after clear", got)
	}
}

func TestTemplateRemove(t *testing.T) {
	p := testutil.NewTempProject(t)
	projectDir = p.Dir
	p.SeedDeck("slide")

	resetTemplateFlags()
	if err := runTemplateAdd(nil, []string{"ephemeral", "Gone soon"}); err != nil {
		t.Fatalf("template add failed: %v", err)
	}

	if err := runTemplateRemove(nil, []string{"ephemeral"}); err != nil {
		t.Fatalf("template remove failed: %v", err)
	}
	if p.LoadSession().Templates.Get("ephemeral") != nil {
		t.Error("template still present")
	}

	if err := runTemplateRemove(nil, []string{"ephemeral"}); err == nil {
		t.Error("expected error for removing a missing template")
	}
}
