package cmd

import (
	"testing"

	"github.com/pders01/slidedraft/internal/testutil"
)

func TestReorderCommand(t *testing.T) {
	p := testutil.NewTempProject(t)
	projectDir = p.Dir
	sess := p.SeedDeck("a", "b", "c")
	ids := testutil.DeckIDs(sess.Deck)

	if err := runReorder(nil, []string{ids[2], ids[0], ids[1]}); err != nil {
		t.Fatalf("reorder command failed: %v", err)
	}

	reloaded := p.LoadSession()
	got := testutil.DeckIDs(reloaded.Deck)
	want := []string{ids[2], ids[0], ids[1]}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v; want %v", got, want)
		}
	}
	for i, s := range reloaded.Deck.Slides {
		if s.Order != i {
			t.Errorf("slide %d has order %d", i, s.Order)
		}
	}
}

func TestReorderCommandRejectsPartialList(t *testing.T) {
	p := testutil.NewTempProject(t)
	projectDir = p.Dir
	sess := p.SeedDeck("a", "b", "c")
	ids := testutil.DeckIDs(sess.Deck)

	if err := runReorder(nil, []string{ids[0], ids[1]}); err == nil {
		t.Error("expected error for incomplete id list")
	}
	if err := runReorder(nil, []string{ids[0], ids[1], "deadbeef"}); err == nil {
		t.Error("expected error for unknown id")
	}

	reloaded := p.LoadSession()
	got := testutil.DeckIDs(reloaded.Deck)
	for i := range ids {
		if got[i] != ids[i] {
			t.Fatal("failed reorder modified the saved timeline")
		}
	}
}

func TestRemoveCommand(t *testing.T) {
	p := testutil.NewTempProject(t)
	projectDir = p.Dir
	sess := p.SeedDeck("keep", "drop", "keep too")
	victim := sess.Deck.Slides[1].ID

	if err := runRemove(nil, []string{victim}); err != nil {
		t.Fatalf("remove command failed: %v", err)
	}

	reloaded := p.LoadSession()
	if len(reloaded.Deck.Slides) != 2 {
		t.Fatalf("expected 2 slides, got %d", len(reloaded.Deck.Slides))
	}
	if reloaded.Deck.Get(victim) != nil {
		t.Error("removed slide still present")
	}
	for i, s := range reloaded.Deck.Slides {
		if s.Order != i {
			t.Errorf("slide %d has order %d", i, s.Order)
		}
	}

	if err := runRemove(nil, []string{"deadbeef"}); err == nil {
		t.Error("expected error for unknown slide id")
	}
}
