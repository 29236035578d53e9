// Package segment turns a timestamped speech transcript into an initial
// slide timeline using pause and sentence-boundary heuristics.
package segment

import (
	"math"
	"strings"

	"github.com/pders01/slidedraft/internal/models"
	"github.com/pders01/slidedraft/internal/timeline"
)

// Grouping thresholds, in seconds.
const (
	// MaxSlideDuration caps how far a subsequent segment may stretch the
	// slide under construction.
	MaxSlideDuration = 15.0
	// MinSlideDuration is the minimum length before a sentence boundary
	// is considered a split point.
	MinSlideDuration = 3.0
	// PauseThreshold is the silence gap that always starts a new slide.
	PauseThreshold = 1.5
	// PostSentencePause is the gap after a finished sentence that makes
	// it a good split point.
	PostSentencePause = 0.5
)

// Segment is one timestamped unit of transcribed speech.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Build groups transcript segments into slides. It is deterministic and
// total: empty input yields an empty timeline. Segments are visited in
// order with one segment of lookahead.
//
// The accumulator reset after a sentence-boundary flush advances the
// start to the next segment without consuming it; the next iteration's
// pause and duration checks are skipped because the accumulator is
// momentarily empty. Changing that ordering changes slide boundaries.
func Build(segments []Segment) *timeline.Timeline {
	tl := timeline.New()
	if len(segments) == 0 {
		return tl
	}

	var texts []string
	start := segments[0].Start
	end := segments[0].End

	flush := func() {
		if len(texts) == 0 {
			return
		}
		s := models.NewSlide()
		s.StartTime = round2(start)
		s.EndTime = round2(end)
		s.BodyText = strings.Join(texts, " ")
		tl.Add(s)
		texts = nil
	}

	for i, seg := range segments {
		if len(texts) > 0 && seg.Start-end > PauseThreshold {
			flush()
			start = seg.Start
		} else if len(texts) > 0 && seg.End-start > MaxSlideDuration {
			flush()
			start = seg.Start
		}

		texts = append(texts, seg.Text)
		end = seg.End

		if endsSentence(seg.Text) && end-start >= MinSlideDuration {
			if i+1 < len(segments) && segments[i+1].Start-seg.End > PostSentencePause {
				flush()
				start = segments[i+1].Start
			}
		}
	}

	flush()
	return tl
}

// endsSentence reports whether the text, right-trimmed, ends a sentence.
func endsSentence(text string) bool {
	t := strings.TrimRight(text, " \t\n\r")
	return strings.HasSuffix(t, ".") ||
		strings.HasSuffix(t, "?") ||
		strings.HasSuffix(t, "!")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
