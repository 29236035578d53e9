// Package style resolves the three-scope style cascade and provides the
// built-in presets.
package style

import "github.com/pders01/slidedraft/internal/models"

// Resolve cascades the three style scopes into a concrete style. Priority
// low to high: global, template, slide override. Each present layer is a
// full-record overwrite, not a per-field merge: the highest present layer
// wins wholesale, including the fields it left at their defaults.
func Resolve(global models.Style, tmpl, override *models.Style) models.Style {
	switch {
	case override != nil:
		return override.Clone()
	case tmpl != nil:
		return tmpl.Clone()
	default:
		return global.Clone()
	}
}

// ForSlide resolves the style for one slide, looking its template up in
// the library. A template id that does not resolve is treated as an
// absent template scope.
func ForSlide(global models.Style, lib *models.Library, s *models.Slide) models.Style {
	var tmplStyle *models.Style
	if s.TemplateID != "" {
		if t := lib.Get(s.TemplateID); t != nil {
			tmplStyle = t.Style
		}
	}
	return Resolve(global, tmplStyle, s.StyleOverrides)
}
