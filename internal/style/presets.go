package style

import (
	"sort"

	"github.com/pders01/slidedraft/internal/models"
)

// Preset is a named, built-in style.
type Preset struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Style       models.Style
}

var builtinPresets = map[string]Preset{
	"youtube": {
		Name:        "youtube",
		Description: "Bold, high-contrast style for YouTube videos",
		Style: presetStyle(func(s *models.Style) {
			s.FontSizeTitle = 80
			s.FontSizeBody = 40
			s.BackgroundColor = "#0F0F0F"
			s.Padding = 50
		}),
	},
	"presentation": {
		Name:        "presentation",
		Description: "Clean, professional look for presentations",
		Style: presetStyle(func(s *models.Style) {
			s.FontSizeTitle = 64
			s.FontSizeBody = 32
			s.FontColor = "#333333"
			s.BackgroundColor = "#F5F5F5"
			s.TextAlignment = "left"
			s.Padding = 60
		}),
	},
	"cinematic": {
		Name:        "cinematic",
		Description: "Minimal, dramatic style for cinematic content",
		Style: presetStyle(func(s *models.Style) {
			s.FontSizeTitle = 56
			s.FontSizeBody = 28
			s.FontColor = "#E0E0E0"
			s.BackgroundColor = "#000000"
			s.Padding = 80
		}),
	},
}

func presetStyle(customize func(*models.Style)) models.Style {
	s := models.DefaultStyle()
	customize(&s)
	return s
}

// GetPreset looks up a built-in preset by name.
func GetPreset(name string) (Preset, bool) {
	p, ok := builtinPresets[name]
	return p, ok
}

// ListPresets returns all built-in presets sorted by name.
func ListPresets() []Preset {
	out := make([]Preset, 0, len(builtinPresets))
	for _, p := range builtinPresets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
