package testutil

import (
	"os"
	"testing"

	"github.com/pders01/slidedraft/internal/models"
	"github.com/pders01/slidedraft/internal/project"
	"github.com/pders01/slidedraft/internal/session"
	"github.com/pders01/slidedraft/internal/timeline"
)

// TempProject is an initialized workspace in a temporary directory.
type TempProject struct {
	Dir string
	T   *testing.T
}

// NewTempProject creates a workspace for testing. The directory is
// removed automatically when the test finishes.
func NewTempProject(t *testing.T) *TempProject {
	t.Helper()

	dir := t.TempDir()
	if _, err := project.Initialize(dir, "test-project"); err != nil {
		t.Fatalf("failed to initialize project: %v", err)
	}
	return &TempProject{Dir: dir, T: t}
}

// SaveSession writes a session into the project directory.
func (p *TempProject) SaveSession(sess *session.Session) {
	p.T.Helper()
	if err := sess.Save(p.Dir); err != nil {
		p.T.Fatalf("failed to save session: %v", err)
	}
}

// LoadSession reads the project's session back.
func (p *TempProject) LoadSession() *session.Session {
	p.T.Helper()
	sess, err := session.Load(p.Dir)
	if err != nil {
		p.T.Fatalf("failed to load session: %v", err)
	}
	return sess
}

// SeedDeck saves a session whose timeline holds slides with the given
// bodies, each two seconds long, and returns the session.
func (p *TempProject) SeedDeck(bodies ...string) *session.Session {
	p.T.Helper()

	sess := session.New()
	for i, body := range bodies {
		s := models.NewSlide()
		s.StartTime = float64(i) * 2.0
		s.EndTime = float64(i)*2.0 + 2.0
		s.BodyText = body
		sess.Deck.Add(s)
	}
	p.SaveSession(sess)
	return sess
}

// WriteFile creates a file inside the project directory.
func (p *TempProject) WriteFile(name, content string) string {
	p.T.Helper()
	path := p.Dir + string(os.PathSeparator) + name
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		p.T.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// DeckIDs returns the slide ids of a timeline in sequence order.
func DeckIDs(tl *timeline.Timeline) []string {
	ids := make([]string, len(tl.Slides))
	for i, s := range tl.Slides {
		ids[i] = s.ID
	}
	return ids
}
