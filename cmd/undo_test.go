package cmd

import (
	"testing"

	"github.com/pders01/slidedraft/internal/testutil"
)

func TestUndoCommand(t *testing.T) {
	p := testutil.NewTempProject(t)
	projectDir = p.Dir
	p.SeedDeck("only")

	addTitle = "Extra"
	addBody = ""
	addNotes = ""
	addStart = 2.0
	addEnd = 4.0
	if err := runAdd(nil, nil); err != nil {
		t.Fatalf("add command failed: %v", err)
	}
	if got := len(p.LoadSession().Deck.Slides); got != 2 {
		t.Fatalf("expected 2 slides before undo, got %d", got)
	}

	undoList = false
	if err := runUndo(nil, nil); err != nil {
		t.Fatalf("undo command failed: %v", err)
	}

	sess := p.LoadSession()
	if len(sess.Deck.Slides) != 1 {
		t.Fatalf("expected 1 slide after undo, got %d", len(sess.Deck.Slides))
	}
	if len(sess.History()) != 0 {
		t.Errorf("history = %v; the checkpoint should be consumed", sess.History())
	}
}

func TestUndoCommandEmptyStack(t *testing.T) {
	p := testutil.NewTempProject(t)
	projectDir = p.Dir
	p.SeedDeck("untouched")

	undoList = false
	if err := runUndo(nil, nil); err != nil {
		t.Fatalf("undo on empty stack errored: %v", err)
	}
	if got := len(p.LoadSession().Deck.Slides); got != 1 {
		t.Errorf("empty undo modified the timeline: %d slides", got)
	}
}

func TestUndoCommandList(t *testing.T) {
	p := testutil.NewTempProject(t)
	projectDir = p.Dir
	p.SeedDeck("a", "b")

	addTitle = ""
	addBody = "added"
	addNotes = ""
	addStart = 0
	addEnd = 1
	if err := runAdd(nil, nil); err != nil {
		t.Fatalf("add command failed: %v", err)
	}

	undoList = true
	if err := runUndo(nil, nil); err != nil {
		t.Fatalf("undo --list failed: %v", err)
	}
	undoList = false

	// Listing must not consume checkpoints.
	if hist := p.LoadSession().History(); len(hist) != 1 || hist[0] != "add slide" {
		t.Errorf("history = %v", hist)
	}
}
