// Package session owns the editing state for one project: the slide
// timeline, the template library, and the checkpoint stack that backs
// undo. A Session is an explicit handle created per project and passed
// into every operation; there is no shared global state.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pders01/slidedraft/internal/models"
	"github.com/pders01/slidedraft/internal/timeline"
)

// MaxUndoDepth caps the checkpoint stack; the oldest entries are
// discarded beyond it.
const MaxUndoDepth = 50

// StateFile is the session document inside a project workspace.
const StateFile = "draft.json"

// Entry is one undo checkpoint: a whole-timeline snapshot plus the
// description shown when it is undone. Snapshots are immutable once
// stored; memory cost is O(depth x timeline size).
type Entry struct {
	Description string          `json:"description"`
	Snapshot    json.RawMessage `json:"snapshot"`
}

// Session is the editing state for one project.
type Session struct {
	Deck      *timeline.Timeline
	Templates *models.Library

	undoStack []Entry
}

// New returns a session with an empty timeline and template library.
func New() *Session {
	return &Session{
		Deck:      timeline.New(),
		Templates: models.NewLibrary(),
	}
}

// Checkpoint snapshots the whole timeline onto the undo stack. Callers
// invoke it immediately before every mutating operation.
func (s *Session) Checkpoint(description string) error {
	snapshot, err := s.Deck.Encode()
	if err != nil {
		return fmt.Errorf("checkpoint %q: %w", description, err)
	}
	s.undoStack = append(s.undoStack, Entry{
		Description: description,
		Snapshot:    snapshot,
	})
	if len(s.undoStack) > MaxUndoDepth {
		s.undoStack = s.undoStack[len(s.undoStack)-MaxUndoDepth:]
	}
	return nil
}

// Undo restores the most recent checkpoint, replacing the timeline
// wholesale, and returns its description. An empty stack is a no-op
// returning "". A snapshot that fails to deserialize is a hard error and
// leaves both the timeline and the stack untouched.
func (s *Session) Undo() (string, error) {
	if len(s.undoStack) == 0 {
		return "", nil
	}
	entry := s.undoStack[len(s.undoStack)-1]
	restored, err := timeline.Decode(entry.Snapshot)
	if err != nil {
		return "", fmt.Errorf("restore checkpoint %q: %w", entry.Description, err)
	}
	s.undoStack = s.undoStack[:len(s.undoStack)-1]
	s.Deck = restored
	return entry.Description, nil
}

// History returns the checkpoint descriptions, most recent first.
func (s *Session) History() []string {
	out := make([]string, 0, len(s.undoStack))
	for i := len(s.undoStack) - 1; i >= 0; i-- {
		out = append(out, s.undoStack[i].Description)
	}
	return out
}

// stateDoc is the on-disk shape of a session.
type stateDoc struct {
	Deck      *timeline.Timeline `json:"deck"`
	Templates *models.Library    `json:"templates"`
	UndoStack []Entry            `json:"undo_stack"`
}

// StatePath returns the session document path for a project directory.
func StatePath(projectDir string) string {
	return filepath.Join(projectDir, StateFile)
}

// Load reads the session for a project directory. A missing state file
// yields a fresh session; a file that exists but does not decode is a
// hard error, never a silent reset.
func Load(projectDir string) (*Session, error) {
	data, err := os.ReadFile(StatePath(projectDir))
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session state: %w", err)
	}

	var doc stateDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode session state: %w", err)
	}

	sess := &Session{
		Deck:      doc.Deck,
		Templates: doc.Templates,
		undoStack: doc.UndoStack,
	}
	if sess.Deck == nil {
		sess.Deck = timeline.New()
	}
	if sess.Templates == nil {
		sess.Templates = models.NewLibrary()
	}
	return sess, nil
}

// Save writes the session document into the project directory.
func (s *Session) Save(projectDir string) error {
	doc := stateDoc{
		Deck:      s.Deck,
		Templates: s.Templates,
		UndoStack: s.undoStack,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}
	if err := os.WriteFile(StatePath(projectDir), data, 0644); err != nil {
		return fmt.Errorf("write session state: %w", err)
	}
	return nil
}
