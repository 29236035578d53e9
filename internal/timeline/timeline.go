// Package timeline holds the ordered, mutable slide sequence for one
// drafting session and the edit operations on it.
package timeline

import (
	"strings"

	"github.com/pders01/slidedraft/internal/models"
)

// Timeline is the ordered slide sequence plus the project-wide style.
//
// Invariants, re-established after every mutating operation:
//   - Slides[i].Order == i for all i
//   - slide ids are unique across the sequence
type Timeline struct {
	Slides      []*models.Slide `json:"slides"`
	GlobalStyle models.Style    `json:"global_style"`
}

// New returns an empty timeline with the default global style.
func New() *Timeline {
	return &Timeline{GlobalStyle: models.DefaultStyle()}
}

// Get looks up a slide by id. A nil result is the normal not-found case.
func (t *Timeline) Get(id string) *models.Slide {
	for _, s := range t.Slides {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Add appends a slide at the end and assigns its order.
func (t *Timeline) Add(s *models.Slide) *models.Slide {
	if len(t.Slides) == 0 {
		s.Order = 0
	} else {
		max := t.Slides[0].Order
		for _, existing := range t.Slides[1:] {
			if existing.Order > max {
				max = existing.Order
			}
		}
		s.Order = max + 1
	}
	t.Slides = append(t.Slides, s)
	return s
}

// Remove deletes the slide with the given id and reports whether a
// deletion occurred. Remaining slides are reindexed.
func (t *Timeline) Remove(id string) bool {
	for i, s := range t.Slides {
		if s.ID == id {
			t.Slides = append(t.Slides[:i], t.Slides[i+1:]...)
			t.reindex()
			return true
		}
	}
	return false
}

// Split cuts a slide in two at the given time. It fails when the id is
// unknown or atTime is not strictly inside the slide's time range; the
// boundaries themselves are invalid split points. The body is divided
// into sentence-like units on ". ", the first half staying with the
// original slide. On success it returns (original, new slide, true).
func (t *Timeline) Split(id string, atTime float64) (*models.Slide, *models.Slide, bool) {
	slide := t.Get(id)
	if slide == nil {
		return nil, nil, false
	}
	if atTime <= slide.StartTime || atTime >= slide.EndTime {
		return nil, nil, false
	}

	units := strings.Split(slide.BodyText, ". ")
	mid := len(units) / 2
	if mid < 1 {
		mid = 1
	}
	firstText := strings.Join(units[:mid], ". ")
	secondText := strings.Join(units[mid:], ". ")
	if firstText != "" && !strings.HasSuffix(firstText, ".") {
		firstText += "."
	}

	created := models.NewSlide()
	created.StartTime = atTime
	created.EndTime = slide.EndTime
	created.BodyText = secondText

	slide.EndTime = atTime
	slide.BodyText = firstText

	// Insert the new slide immediately after the original.
	idx := t.indexOf(slide.ID)
	t.Slides = append(t.Slides, nil)
	copy(t.Slides[idx+2:], t.Slides[idx+1:])
	t.Slides[idx+1] = created
	t.reindex()
	return slide, created, true
}

// Merge absorbs one slide into the other. Whichever of the two comes
// first in sequence order is the base and survives; argument order does
// not matter. Returns the merged slide, or nil if either id is unknown.
func (t *Timeline) Merge(idA, idB string) *models.Slide {
	a := t.Get(idA)
	b := t.Get(idB)
	if a == nil || b == nil {
		return nil
	}
	if a.Order > b.Order {
		a, b = b, a
	}

	a.EndTime = b.EndTime
	a.BodyText = joinNonEmpty(a.BodyText, b.BodyText)
	if b.SpeakerNotes != "" {
		a.SpeakerNotes = joinNonEmpty(a.SpeakerNotes, b.SpeakerNotes)
	}

	for i, s := range t.Slides {
		if s.ID == b.ID {
			t.Slides = append(t.Slides[:i], t.Slides[i+1:]...)
			break
		}
	}
	t.reindex()
	return a
}

// Reorder rearranges slides to match the given id list. The list must be
// exactly the current id set: same cardinality, no duplicates, nothing
// added or missing. On failure the timeline is left unchanged.
func (t *Timeline) Reorder(ids []string) bool {
	if len(ids) != len(t.Slides) {
		return false
	}
	byID := make(map[string]*models.Slide, len(t.Slides))
	for _, s := range t.Slides {
		byID[s.ID] = s
	}
	reordered := make([]*models.Slide, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok || seen[id] {
			return false
		}
		seen[id] = true
		reordered = append(reordered, s)
	}
	t.Slides = reordered
	t.reindex()
	return true
}

func (t *Timeline) indexOf(id string) int {
	for i, s := range t.Slides {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (t *Timeline) reindex() {
	for i, s := range t.Slides {
		s.Order = i
	}
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
