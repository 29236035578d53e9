package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pders01/slidedraft/internal/render"
	"github.com/pders01/slidedraft/internal/testutil"
)

func TestExportWritesRenderDocument(t *testing.T) {
	p := testutil.NewTempProject(t)
	projectDir = p.Dir
	sess := p.SeedDeck("first", "second")
	sess.Deck.Slides[0].Title = "Opening"
	p.SaveSession(sess)

	exportToon = false
	exportOut = "deck.json"
	if err := runExport(nil, nil); err != nil {
		t.Fatalf("export command failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(p.Dir, "exports", "deck.json"))
	if err != nil {
		t.Fatalf("export file not written: %v", err)
	}

	var doc render.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if doc.SlideCount != 2 || len(doc.Slides) != 2 {
		t.Fatalf("document = %+v", doc)
	}
	if doc.Slides[0].Title != "Opening" {
		t.Errorf("first title = %q", doc.Slides[0].Title)
	}
	if doc.Slides[0].Style.FontFamily != "Bfont" {
		t.Errorf("resolved style = %+v", doc.Slides[0].Style)
	}
	if !doc.Slides[0].ShowTitle || !doc.Slides[0].ShowBody {
		t.Error("visibility defaults wrong in export")
	}
}

func TestExportToStdout(t *testing.T) {
	p := testutil.NewTempProject(t)
	projectDir = p.Dir
	p.SeedDeck("only")

	exportToon = false
	exportOut = ""
	if err := runExport(nil, nil); err != nil {
		t.Fatalf("export command failed: %v", err)
	}
}

func TestListCommand(t *testing.T) {
	p := testutil.NewTempProject(t)
	projectDir = p.Dir
	p.SeedDeck("alpha", "beta")

	for _, mode := range []struct{ json, toon bool }{
		{false, false}, {true, false}, {false, true},
	} {
		listJSON = mode.json
		listToon = mode.toon
		if err := runList(nil, nil); err != nil {
			t.Fatalf("list (json=%v toon=%v) failed: %v", mode.json, mode.toon, err)
		}
	}
	listJSON = false
	listToon = false
}

func TestListOutsideProject(t *testing.T) {
	projectDir = t.TempDir()
	if err := runList(nil, nil); err == nil {
		t.Error("expected error outside a project")
	}
}
