package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pders01/slidedraft/internal/models"
)

func addSlide(s *Session, body string) *models.Slide {
	sl := models.NewSlide()
	sl.BodyText = body
	sl.EndTime = 2.0
	return s.Deck.Add(sl)
}

func TestCheckpointAndUndo(t *testing.T) {
	sess := New()
	addSlide(sess, "original")

	before, err := sess.Deck.Encode()
	if err != nil {
		t.Fatal(err)
	}

	if err := sess.Checkpoint("edit slide"); err != nil {
		t.Fatal(err)
	}
	sess.Deck.Slides[0].BodyText = "changed"
	addSlide(sess, "extra")

	desc, err := sess.Undo()
	if err != nil {
		t.Fatal(err)
	}
	if desc != "edit slide" {
		t.Errorf("description = %q", desc)
	}

	after, err := sess.Deck.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Errorf("restored timeline differs:\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestUndoEmptyStack(t *testing.T) {
	sess := New()
	desc, err := sess.Undo()
	if err != nil {
		t.Fatalf("undo on empty stack errored: %v", err)
	}
	if desc != "" {
		t.Errorf("description = %q; want empty", desc)
	}
}

func TestUndoIsLIFO(t *testing.T) {
	sess := New()
	for i := 0; i < 3; i++ {
		if err := sess.Checkpoint(fmt.Sprintf("step %d", i)); err != nil {
			t.Fatal(err)
		}
	}

	for want := 2; want >= 0; want-- {
		desc, err := sess.Undo()
		if err != nil {
			t.Fatal(err)
		}
		if desc != fmt.Sprintf("step %d", want) {
			t.Errorf("description = %q; want step %d", desc, want)
		}
	}
}

func TestCheckpointDepthCap(t *testing.T) {
	sess := New()
	for i := 0; i < MaxUndoDepth+10; i++ {
		if err := sess.Checkpoint(fmt.Sprintf("step %d", i)); err != nil {
			t.Fatal(err)
		}
	}

	hist := sess.History()
	if len(hist) != MaxUndoDepth {
		t.Fatalf("history depth = %d; want %d", len(hist), MaxUndoDepth)
	}
	if hist[0] != fmt.Sprintf("step %d", MaxUndoDepth+9) {
		t.Errorf("newest entry = %q", hist[0])
	}
	if hist[len(hist)-1] != "step 10" {
		t.Errorf("oldest entry = %q; the oldest checkpoints should be discarded", hist[len(hist)-1])
	}
}

func TestUndoCorruptSnapshot(t *testing.T) {
	sess := New()
	addSlide(sess, "kept")
	sess.undoStack = append(sess.undoStack, Entry{
		Description: "bad",
		Snapshot:    json.RawMessage(`{"slides": [{`),
	})

	if _, err := sess.Undo(); err == nil {
		t.Fatal("expected error for corrupt snapshot")
	}
	if len(sess.undoStack) != 1 {
		t.Errorf("stack depth = %d; corrupt entry should stay put", len(sess.undoStack))
	}
	if len(sess.Deck.Slides) != 1 || sess.Deck.Slides[0].BodyText != "kept" {
		t.Error("failed undo modified the timeline")
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	sess := New()
	for _, d := range []string{"first", "second", "third"} {
		if err := sess.Checkpoint(d); err != nil {
			t.Fatal(err)
		}
	}

	hist := sess.History()
	want := []string{"third", "second", "first"}
	if len(hist) != len(want) {
		t.Fatalf("history = %v", hist)
	}
	for i := range want {
		if hist[i] != want[i] {
			t.Errorf("history[%d] = %q; want %q", i, hist[i], want[i])
		}
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()

	sess := New()
	addSlide(sess, "persisted")
	sess.Templates.Add(models.NewTemplate("t1", "themed"))
	if err := sess.Checkpoint("before edit"); err != nil {
		t.Fatal(err)
	}
	if err := sess.Save(dir); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Deck.Slides) != 1 || loaded.Deck.Slides[0].BodyText != "persisted" {
		t.Errorf("loaded deck = %+v", loaded.Deck.Slides)
	}
	if loaded.Templates.Get("t1") == nil {
		t.Error("template library not persisted")
	}
	if hist := loaded.History(); len(hist) != 1 || hist[0] != "before edit" {
		t.Errorf("loaded history = %v", hist)
	}
}

func TestLoadMissingFile(t *testing.T) {
	sess, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if sess.Deck == nil || sess.Templates == nil {
		t.Fatal("fresh session has nil components")
	}
	if len(sess.Deck.Slides) != 0 {
		t.Error("fresh session is not empty")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, StateFile), []byte("{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for corrupt state file")
	}
	if !strings.Contains(err.Error(), "decode session state") {
		t.Errorf("error = %v", err)
	}
}

func TestLoadPartialDocument(t *testing.T) {
	// A state file written by a version that had no template library.
	dir := t.TempDir()
	doc := []byte(`{"deck": {"slides": []}}`)
	if err := os.WriteFile(filepath.Join(dir, StateFile), doc, 0644); err != nil {
		t.Fatal(err)
	}

	sess, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if sess.Templates == nil {
		t.Error("template library not defaulted")
	}
	if sess.Deck.GlobalStyle.FontFamily != "Bfont" {
		t.Errorf("global style not defaulted: %q", sess.Deck.GlobalStyle.FontFamily)
	}
}
