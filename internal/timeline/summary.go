package timeline

import "fmt"

const snippetLimit = 80

// Summary is the read-only listing projection of one slide.
type Summary struct {
	ID            string `json:"id"`
	Order         int    `json:"order"`
	TimeRange     string `json:"time_range"`
	Title         string `json:"title"`
	BodySnippet   string `json:"body_snippet"`
	HasBackground bool   `json:"has_background"`
}

// Summaries projects every slide into its listing form, in sequence
// order. Untitled slides show the "(untitled)" placeholder and long
// bodies are truncated to 80 characters with a "..." suffix.
func (t *Timeline) Summaries() []Summary {
	out := make([]Summary, 0, len(t.Slides))
	for _, s := range t.Slides {
		title := s.Title
		if title == "" {
			title = "(untitled)"
		}
		snippet := s.BodyText
		if runes := []rune(snippet); len(runes) > snippetLimit {
			snippet = string(runes[:snippetLimit]) + "..."
		}
		out = append(out, Summary{
			ID:            s.ID,
			Order:         s.Order,
			TimeRange:     fmt.Sprintf("%.1fs - %.1fs", s.StartTime, s.EndTime),
			Title:         title,
			BodySnippet:   snippet,
			HasBackground: s.BackgroundImageRef != "",
		})
	}
	return out
}
